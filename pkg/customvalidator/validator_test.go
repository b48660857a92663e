package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type birthdayPayload struct {
	Birthday string `validate:"calendar_date"`
}

func TestCalendarDate(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))

	cases := []struct {
		name     string
		birthday string
		valid    bool
	}{
		{"обычная дата", "1990-01-01", true},
		{"конец месяца", "1992-06-30", true},
		{"високосный день", "2000-02-29", true},
		{"несуществующий день", "1990-02-30", false},
		{"несуществующий месяц", "1990-13-01", false},
		{"неверный формат", "01-01-1990", false},
		{"дата со временем", "1990-01-01T00:00:00Z", false},
		{"пустая строка", "", false},
		{"не дата", "yesterday", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(birthdayPayload{Birthday: tc.birthday})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
