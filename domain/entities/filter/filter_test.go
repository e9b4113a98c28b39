package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dataErrors "bikeshare/domain/errors"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		enumeration Enumeration
		expected    string
	}{
		{name: "city by position", token: "1", enumeration: Cities(), expected: Chicago},
		{name: "city by name", token: "washington", enumeration: Cities(), expected: Washington},
		{name: "city synonym", token: "New York", enumeration: Cities(), expected: NewYorkCity},
		{name: "city full name mixed case", token: "  nEw YoRk CiTy ", enumeration: Cities(), expected: NewYorkCity},
		{name: "month by position", token: "6", enumeration: Months(), expected: "June"},
		{name: "month all by position", token: "7", enumeration: Months(), expected: All},
		{name: "month by name", token: "MARCH", enumeration: Months(), expected: "March"},
		{name: "day by position", token: "7", enumeration: Days(), expected: "Sunday"},
		{name: "day all", token: "all", enumeration: Days(), expected: All},
		{name: "day by name", token: "friday", enumeration: Days(), expected: "Friday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := Resolve(tt.token, tt.enumeration)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resolved)
		})
	}
}

func TestResolve_InvalidTokens(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		enumeration Enumeration
	}{
		{name: "city position out of range", token: "4", enumeration: Cities()},
		{name: "unknown city", token: "boston", enumeration: Cities()},
		{name: "zero position", token: "0", enumeration: Months()},
		{name: "month outside dataset", token: "july", enumeration: Months()},
		{name: "empty token", token: "", enumeration: Days()},
		{name: "day position out of range", token: "9", enumeration: Days()},
		{name: "partial name", token: "mon", enumeration: Days()},
		{name: "zero padded position", token: "01", enumeration: Cities()},
		{name: "signed position", token: "+3", enumeration: Cities()},
		{name: "position with decimals", token: "2.0", enumeration: Months()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := Resolve(tt.token, tt.enumeration)
			require.Error(t, err)
			assert.True(t, errors.Is(err, dataErrors.ErrInvalidSelection))
			assert.Empty(t, resolved)
		})
	}
}

func TestNewFilterSpec(t *testing.T) {
	spec, err := NewFilterSpec("2", "june", "8")
	require.NoError(t, err)
	assert.Equal(t, FilterSpec{City: NewYorkCity, Month: "June", Day: All}, spec)
	assert.True(t, spec.FiltersMonth())
	assert.False(t, spec.FiltersDay())
}

func TestNewFilterSpec_InvalidCity(t *testing.T) {
	for _, token := range []string{"4", "boston"} {
		spec, err := NewFilterSpec(token, "all", "all")
		assert.ErrorIs(t, err, dataErrors.ErrInvalidSelection)
		assert.Equal(t, FilterSpec{}, spec)
	}
}

func TestEnumerationNames(t *testing.T) {
	assert.Equal(t, []string{Chicago, NewYorkCity, Washington}, Cities().Names())
	assert.Len(t, Months().Names(), 7)
	assert.Len(t, Days().Names(), 8)
	assert.Equal(t, "day", Days().Name())
	assert.Equal(t, All, Days().Names()[7])
}
