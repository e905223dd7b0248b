package config

import "fmt"

// Lower bounds for numeric settings.
const (
	MinAutoSelectThreshold = 1.0
)

// Validate checks numeric settings are in range.
func (c Config) Validate() error {
	if err := validateHalfLife(c.Frecency.HalfLifeDays, "frecency.half_life_days"); err != nil {
		return err
	}
	return validateThreshold(c.Behavior.AutoSelectThreshold, "behavior.auto_select_threshold")
}

func validateHalfLife(days float64, field string) error {
	if !(days > 0) {
		return fmt.Errorf("invalid %s %v: must be greater than 0", field, days)
	}
	return nil
}

func validateThreshold(v float64, field string) error {
	if !(v >= MinAutoSelectThreshold) {
		return fmt.Errorf("invalid %s %v: must be at least %v", field, v, MinAutoSelectThreshold)
	}
	return nil
}
