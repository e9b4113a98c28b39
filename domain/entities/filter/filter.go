package filter

import (
	"fmt"
	"strconv"
	"strings"

	dataErrors "bikeshare/domain/errors"
)

const (
	All = "All"

	Chicago     = "Chicago"
	NewYorkCity = "New York City"
	Washington  = "Washington"
)

// Option a canonical value of an Enumeration plus the extra spellings accepted for it
type Option struct {
	Name     string
	Synonyms []string
}

// Enumeration fixed, ordered list of options a user token is resolved against.
// The position of each option (starting at 1) is also accepted as a token.
type Enumeration struct {
	name           string
	options        []Option
	invalidMessage string
}

func newEnumeration(name string, invalidMessage string, options ...Option) Enumeration {
	return Enumeration{
		name:           name,
		options:        options,
		invalidMessage: invalidMessage,
	}
}

// Name returns what the enumeration selects, e.g. city
func (e Enumeration) Name() string {
	return e.name
}

// InvalidMessage returns the message shown to the user when a token cannot be resolved
func (e Enumeration) InvalidMessage() string {
	return e.invalidMessage
}

// Names returns the canonical names in order
func (e Enumeration) Names() []string {
	names := make([]string, 0, len(e.options))
	for _, option := range e.options {
		names = append(names, option.Name)
	}
	return names
}


var (
	cities = newEnumeration("city", "Please make a valid choice - 1, 2 or 3.",
		Option{Name: Chicago},
		Option{Name: NewYorkCity, Synonyms: []string{"new york"}},
		Option{Name: Washington},
	)

	months = newEnumeration("month", "Please make a valid choice - 1 to 7.",
		Option{Name: "January"},
		Option{Name: "February"},
		Option{Name: "March"},
		Option{Name: "April"},
		Option{Name: "May"},
		Option{Name: "June"},
		Option{Name: All},
	)

	days = newEnumeration("day", "Please make a valid choice - 1 to 8.",
		Option{Name: "Monday"},
		Option{Name: "Tuesday"},
		Option{Name: "Wednesday"},
		Option{Name: "Thursday"},
		Option{Name: "Friday"},
		Option{Name: "Saturday"},
		Option{Name: "Sunday"},
		Option{Name: All},
	)
)

func Cities() Enumeration {
	return cities
}

func Months() Enumeration {
	return months
}

func Days() Enumeration {
	return days
}

// Resolve matches a raw user token against the enumeration. The token is trimmed and compared
// case-insensitively against the option position, the option name and its synonyms.
// The position must be written exactly as listed: "01" or "+1" are not positions.
// The canonical option name is returned. Any mismatch is reported as ErrInvalidSelection.
func Resolve(token string, enumeration Enumeration) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(token))

	for idx, option := range enumeration.options {
		if normalized == strconv.Itoa(idx+1) || normalized == strings.ToLower(option.Name) {
			return option.Name, nil
		}
		for _, synonym := range option.Synonyms {
			if normalized == synonym {
				return option.Name, nil
			}
		}
	}

	return "", invalidSelection(token, enumeration)
}

func invalidSelection(token string, enumeration Enumeration) error {
	return fmt.Errorf("%s %q: %w", enumeration.Name(), token, dataErrors.ErrInvalidSelection)
}

// FilterSpec resolved selection that drives which city file is loaded and which trips survive
// + City: Chicago, New York City or Washington
// + Month: January to June, or All
// + Day: Monday to Sunday, or All
type FilterSpec struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// NewFilterSpec resolves the three tokens. A FilterSpec is returned only if all of them are valid
func NewFilterSpec(cityToken string, monthToken string, dayToken string) (FilterSpec, error) {
	city, err := Resolve(cityToken, cities)
	if err != nil {
		return FilterSpec{}, err
	}

	month, err := Resolve(monthToken, months)
	if err != nil {
		return FilterSpec{}, err
	}

	day, err := Resolve(dayToken, days)
	if err != nil {
		return FilterSpec{}, err
	}

	return FilterSpec{City: city, Month: month, Day: day}, nil
}

func (fs FilterSpec) FiltersMonth() bool {
	return fs.Month != All
}

func (fs FilterSpec) FiltersDay() bool {
	return fs.Day != All
}

func (fs FilterSpec) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", fs.City, fs.Month, fs.Day)
}
