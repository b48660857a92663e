package entities

import "github.com/aarondl/null/v8"

// Employee - единственная сущность системы, одна строка таблицы employees.
type Employee struct {
	ID         uint64      `json:"id"`
	Name       string      `json:"name"`
	Birthday   string      `json:"birthday"`
	Salary     float64     `json:"salary"`
	Role       null.String `json:"role"`
	Department null.String `json:"department"`
}
