package controller

import (
	"sort"
	"strings"
)

// countryNames maps ISO 3166-1 alpha-2 codes to English display names.
var countryNames = map[string]string{
	"AT": "Austria",
	"AU": "Australia",
	"BE": "Belgium",
	"BG": "Bulgaria",
	"CA": "Canada",
	"CH": "Switzerland",
	"CY": "Cyprus",
	"CZ": "Czechia",
	"DE": "Germany",
	"DK": "Denmark",
	"EE": "Estonia",
	"ES": "Spain",
	"FI": "Finland",
	"FR": "France",
	"GB": "United Kingdom",
	"GR": "Greece",
	"HR": "Croatia",
	"HU": "Hungary",
	"IE": "Ireland",
	"IS": "Iceland",
	"IT": "Italy",
	"LI": "Liechtenstein",
	"LT": "Lithuania",
	"LU": "Luxembourg",
	"LV": "Latvia",
	"MC": "Monaco",
	"MT": "Malta",
	"NL": "Netherlands",
	"NO": "Norway",
	"NZ": "New Zealand",
	"PL": "Poland",
	"PT": "Portugal",
	"RO": "Romania",
	"SE": "Sweden",
	"SI": "Slovenia",
	"SK": "Slovakia",
	"SM": "San Marino",
	"US": "United States",
}

// IsCountryCode reports whether code is a known country code.
func IsCountryCode(code string) bool {
	_, ok := countryNames[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// CountryName returns the English display name for code, or code itself.
func CountryName(code string) string {
	if name, ok := countryNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// CountryOptions builds dropdown options for codes, sorted by display name.
// Unknown codes are dropped. An empty list yields every known country.
func CountryOptions(codes []string) []DropdownOption {
	if len(codes) == 0 {
		codes = make([]string, 0, len(countryNames))
		for code := range countryNames {
			codes = append(codes, code)
		}
	}
	seen := make(map[string]struct{}, len(codes))
	out := make([]DropdownOption, 0, len(codes))
	for _, raw := range codes {
		code := strings.ToUpper(strings.TrimSpace(raw))
		name, ok := countryNames[code]
		if !ok {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, DropdownOption{Value: code, Label: name})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Label < out[j].Label
	})
	return out
}
