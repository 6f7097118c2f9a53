package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate checks the configuration for structural and semantic errors.
//
// Struct tags cover field-level constraints (ranges, enumerations); the
// cross-field rules that tags cannot express are checked explicitly.
func Validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldError := range validationErrors {
				messages = append(messages, fmt.Sprintf("%s failed %q validation",
					fieldError.Namespace(), fieldError.Tag()))
			}
			return errors.New(strings.Join(messages, "; "))
		}
		return err
	}

	if err := cfg.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if cfg.Offline.Backend == "badger" && cfg.Offline.CachePath == "" {
		return errors.New("offline: cache_path is required with the badger backend")
	}

	if cfg.Export.S3.Bucket != "" && cfg.Export.S3.Region == "" {
		return errors.New("export: s3 region is required when a bucket is configured")
	}

	return nil
}
