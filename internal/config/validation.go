package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// validateConfig validates configuration values and returns an error if invalid.
func validateConfig(config *Config) error {
	var validationErrors []string

	if err := validateAbsoluteURL("home_url", config.HomeURL); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}
	if err := validateAbsoluteURL("search_url", config.SearchURL); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}

	if config.Screenshots.Scale <= 0 || config.Screenshots.Scale > 1 {
		validationErrors = append(validationErrors,
			fmt.Sprintf("screenshots.scale must be in (0, 1] (got %v)", config.Screenshots.Scale))
	}

	switch config.Tabs.ArchiveAfter {
	case entity.ArchiveAfterNever, entity.ArchiveAfter7Days, entity.ArchiveAfter30Days:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("tabs.archive_after must be one of never, after_7_days, after_30_days (got %q)", config.Tabs.ArchiveAfter))
	}

	switch config.Logging.Format {
	case "json", "console":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be json or console (got %q)", config.Logging.Format))
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, "; "))
	}
	return nil
}

func validateAbsoluteURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", key, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL (got %q)", key, raw)
	}
	return nil
}
