package selection

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// All is the value that disables the month or day filter
const All = "all"

var (
	// Months supported by the datasets, in calendar order
	Months = []string{"january", "february", "march", "april", "may", "june"}

	// Days of the week in the order they are offered to the user
	Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	validate = validator.New()
)

// Selection struct that contains the filters chosen by the user
// + City: city whose dataset is loaded. Mandatory
// + Month: one of Months or All
// + Day: one of Days or All
type Selection struct {
	City  string `validate:"required"`
	Month string `validate:"required,oneof=all january february march april may june"`
	Day   string `validate:"required,oneof=all monday tuesday wednesday thursday friday saturday sunday"`
}

func NewSelection(city string, month string, day string) Selection {
	return Selection{
		City:  city,
		Month: month,
		Day:   day,
	}
}

// MonthNumber returns the 1-based number of the selected month, or 0 if Month is All
func (s Selection) MonthNumber() int {
	for idx, month := range Months {
		if month == s.Month {
			return idx + 1
		}
	}
	return 0
}

func (s Selection) FilterByMonth() bool {
	return s.Month != All
}

func (s Selection) FilterByDay() bool {
	return s.Day != All
}

// Validate checks the month and day values and that the city is one of the given cities
func (s Selection) Validate(cities []string) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid selection %+v: %w", s, err)
	}
	if err := ValidateCity(s.City, cities); err != nil {
		return fmt.Errorf("invalid selection %+v: %w", s, err)
	}
	return nil
}

// ValidateCity returns nil if city is one of cities
func ValidateCity(city string, cities []string) error {
	return validate.Var(city, "required,"+oneOfRule(cities))
}

// ValidateMonth returns nil if month is one of Months or All
func ValidateMonth(month string) error {
	return validate.Var(month, "required,"+oneOfRule(append([]string{All}, Months...)))
}

// ValidateDay returns nil if day is one of Days or All
func ValidateDay(day string) error {
	return validate.Var(day, "required,"+oneOfRule(append([]string{All}, Days...)))
}

// oneOfRule builds a oneof rule. Values with spaces (e.g. new york) are quoted
func oneOfRule(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, value := range values {
		if strings.Contains(value, " ") {
			value = "'" + value + "'"
		}
		quoted = append(quoted, value)
	}
	return "oneof=" + strings.Join(quoted, " ")
}
