package config

import (
	"fmt"
	"strings"

	"github.com/bnema/keyroute/internal/domain/keyboard"
	domainvalidation "github.com/bnema/keyroute/internal/domain/validation"
	"github.com/bnema/keyroute/internal/logging"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validatePlatform(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateBindings(config)...)
	validationErrors = append(validationErrors, validateActions(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validatePlatform(config *Config) []string {
	if config.Platform == "" || keyboard.Platform(config.Platform).Valid() {
		return nil
	}
	return []string{fmt.Sprintf("platform must be one of mac, windows, linux (got %q)", config.Platform)}
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, "logging.level: "+err.Error())
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return domainvalidation.ValidateHexColors("appearance.palette",
		domainvalidation.ColorField{Name: "background", Value: p.Background},
		domainvalidation.ColorField{Name: "surface", Value: p.Surface},
		domainvalidation.ColorField{Name: "surface_variant", Value: p.SurfaceVariant},
		domainvalidation.ColorField{Name: "text", Value: p.Text},
		domainvalidation.ColorField{Name: "muted", Value: p.Muted},
		domainvalidation.ColorField{Name: "accent", Value: p.Accent},
		domainvalidation.ColorField{Name: "border", Value: p.Border},
	)
}

func validateBindings(config *Config) []string {
	var validationErrors []string
	for i, b := range config.Bindings {
		validationErrors = append(validationErrors,
			domainvalidation.ValidateActionID(fmt.Sprintf("bindings[%d].action", i), b.ActionID)...)
		if strings.TrimSpace(b.Shortcut) == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("bindings[%d].shortcut is required", i))
		}
		for _, p := range strings.Split(b.Platform, ",") {
			p = strings.TrimSpace(p)
			if p != "" && !keyboard.Platform(p).Valid() {
				validationErrors = append(validationErrors,
					fmt.Sprintf("bindings[%d].platform has unknown tag %q", i, p))
			}
		}
	}
	return validationErrors
}

func validateActions(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]struct{}, len(config.Actions))
	for i, a := range config.Actions {
		if errs := domainvalidation.ValidateActionID(fmt.Sprintf("actions[%d].id", i), a.ID); len(errs) > 0 {
			validationErrors = append(validationErrors, errs...)
			continue
		}
		if _, dup := seen[a.ID]; dup {
			validationErrors = append(validationErrors, fmt.Sprintf("actions[%d].id %q is declared twice", i, a.ID))
		}
		seen[a.ID] = struct{}{}
		switch {
		case a.DialogTimeoutMS < 0:
			validationErrors = append(validationErrors, fmt.Sprintf("actions[%d].dialog_timeout_ms must be non-negative", i))
		case a.DialogTimeoutMS > 0 && a.Dialog == "":
			validationErrors = append(validationErrors, fmt.Sprintf("actions[%d].dialog_timeout_ms needs a dialog", i))
		}
	}
	return validationErrors
}
