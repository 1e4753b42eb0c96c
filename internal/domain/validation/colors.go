// Package validation holds config-independent value checks.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ColorField is one named color of a palette.
type ColorField struct {
	Name  string
	Value string
}

func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidateHexColors reports every field that is not a #RRGGBB color.
func ValidateHexColors(prefix string, fields ...ColorField) []string {
	var errs []string
	for _, f := range fields {
		if !IsHexColor(f.Value) {
			errs = append(errs, prefix+"."+f.Name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
