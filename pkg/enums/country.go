package enums

import "fmt"

// Country represents the canonical market/product country values.
type Country string

const (
	CountryKorea    Country = "KOREA"
	CountryUSA      Country = "USA"
	CountryChina    Country = "CHINA"
	CountryJapan    Country = "JAPAN"
	CountryHongKong Country = "HONG_KONG"
	CountryGermany  Country = "GERMANY"
)

var validCountries = []Country{
	CountryKorea,
	CountryUSA,
	CountryChina,
	CountryJapan,
	CountryHongKong,
	CountryGermany,
}

// String implements fmt.Stringer.
func (c Country) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Country.
func (c Country) IsValid() bool {
	for _, candidate := range validCountries {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCountry converts raw input into a Country.
func ParseCountry(value string) (Country, error) {
	for _, candidate := range validCountries {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid country %q", value)
}
