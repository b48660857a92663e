package seeders

type employeeSeed struct {
	Name       string
	Birthday   string
	Salary     float64
	Role       string
	Department string
}

// sampleEmployees - фиксированный демонстрационный набор.
var sampleEmployees = []employeeSeed{
	{Name: "Jane Doe", Birthday: "1990-01-01", Salary: 70000, Role: "Engineer", Department: "Development"},
	{Name: "John Smith", Birthday: "1985-04-12", Salary: 65000, Role: "Manager", Department: "Operations"},
	{Name: "Alice Johnson", Birthday: "1992-06-30", Salary: 72000, Role: "QA Analyst", Department: "Quality Assurance"},
	{Name: "Bob Brown", Birthday: "1980-03-10", Salary: 80000, Role: "Designer", Department: "UX"},
	{Name: "Carol White", Birthday: "1995-07-20", Salary: 60000, Role: "Support Rep", Department: "Customer Service"},
	{Name: "Dan Green", Birthday: "1988-09-14", Salary: 75000, Role: "DevOps", Department: "Infrastructure"},
	{Name: "Eve Black", Birthday: "1993-11-22", Salary: 67000, Role: "Data Analyst", Department: "Data"},
	{Name: "Frank Gold", Birthday: "1982-08-18", Salary: 69000, Role: "Engineer", Department: "Development"},
	{Name: "Grace Blue", Birthday: "1987-05-25", Salary: 71000, Role: "Product Manager", Department: "Product"},
	{Name: "Hank Gray", Birthday: "1991-12-05", Salary: 73000, Role: "Recruiter", Department: "HR"},
}
