package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and optionally a
// config file. Environment variables use the FOCUSFLOW_ prefix with
// underscores for nesting (e.g. FOCUSFLOW_SCHEDULER_HORIZON_DAYS) and take
// precedence over file values. Returns a populated Config or an error if
// loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("focusflow")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/focusflow")

	v.SetEnvPrefix("FOCUSFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine; env vars and defaults cover it.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers the default value for every key so a bare
// environment still yields a valid configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("scheduler.default_duration_minutes", 30)
	v.SetDefault("scheduler.horizon_days", 30)

	v.SetDefault("advisor.base_score", 100.0)
	v.SetDefault("advisor.per_day_penalty", 5.0)
	v.SetDefault("advisor.preferred_band_bonus", 20.0)
	v.SetDefault("advisor.off_hours_penalty", 30.0)
	v.SetDefault("advisor.priority_weight", 0.1)
	v.SetDefault("advisor.day_start_hour", 7)
	v.SetDefault("advisor.day_end_hour", 22)

	v.SetDefault("review.min_ease_factor", 1.3)
	v.SetDefault("review.initial_ease", 2.5)
	v.SetDefault("review.min_interval_days", 1)
	v.SetDefault("review.max_interval_days", 365)
	v.SetDefault("review.first_interval_days", 1)
	v.SetDefault("review.second_interval_days", 6)
	v.SetDefault("review.review_duration_factor", 0.3)
	v.SetDefault("review.min_review_minutes", 15)
	v.SetDefault("review.due_cap_percent", 30)
}
