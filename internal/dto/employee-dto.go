package dto

import "github.com/aarondl/null/v8"

// CreateEmployeeDTO: что клиент присылает для создания.
// Нулевая зарплата не проходит required - как и в исходном контракте.
type CreateEmployeeDTO struct {
	Name       string      `json:"name" validate:"required"`
	Birthday   string      `json:"birthday" validate:"required,calendar_date"`
	Salary     float64     `json:"salary" validate:"required"`
	Role       null.String `json:"role"`
	Department null.String `json:"department"`
}

// UpdateEmployeeDTO: полный набор полей для замены записи.
// Валидации нет намеренно: непереданные поля уходят в БД как NULL,
// частичного обновления контракт не предусматривает.
type UpdateEmployeeDTO struct {
	Name       null.String  `json:"name"`
	Birthday   null.String  `json:"birthday"`
	Salary     null.Float64 `json:"salary"`
	Role       null.String  `json:"role"`
	Department null.String  `json:"department"`
}
