// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations регистрирует все наши кастомные правила валидации
// в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("calendar_date", isCalendarDate); err != nil {
		return err
	}

	return nil
}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// isCalendarDate проверяет дату рождения: строго YYYY-MM-DD и реально существующий день.
func isCalendarDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
