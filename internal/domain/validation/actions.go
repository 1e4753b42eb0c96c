package validation

import (
	"regexp"
	"strings"
)

// Action ids are dotted lowercase segments: "debugger.step-over".
var actionIDRE = regexp.MustCompile(`^[a-z][a-z0-9-]*(\.[a-z0-9-]+)*$`)

func IsActionID(value string) bool {
	return actionIDRE.MatchString(value)
}

// ValidateActionID checks one action id. field prefixes every message.
func ValidateActionID(field, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return []string{field + " is required"}
	}
	if !IsActionID(value) {
		return []string{field + " must be dotted lowercase segments like \"debugger.step-over\" (got \"" + value + "\")"}
	}
	return nil
}
