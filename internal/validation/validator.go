// Package validation hosts the shared validator instance and the input
// checks run before any remote lookup is issued.
package validation

import (
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	countryCodePattern = regexp.MustCompile(`^[A-Za-z]{2,3}$|^[0-9]{3}$`)
	logLevels          = map[string]struct{}{"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {}, "fatal": {}, "panic": {}, "disabled": {}}
	storeBackends      = map[string]struct{}{"memory": {}, "file": {}, "sqlite": {}, "redis": {}}
)

// Instance configures and returns the shared validator.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("country_code", func(fl validator.FieldLevel) bool {
			return countryCodePattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})

		_ = v.RegisterValidation("http_url", func(fl validator.FieldLevel) bool {
			raw := fl.Field().String()
			if raw == "" {
				return true
			}
			parsed, err := url.Parse(raw)
			if err != nil || parsed.Host == "" {
				return false
			}
			scheme := strings.ToLower(parsed.Scheme)
			return scheme == "http" || scheme == "https"
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			raw := strings.ToLower(fl.Field().String())
			if raw == "" {
				return true
			}
			_, ok := logLevels[raw]
			return ok
		})

		_ = v.RegisterValidation("store_backend", func(fl validator.FieldLevel) bool {
			raw := strings.ToLower(fl.Field().String())
			if raw == "" {
				return true
			}
			_, ok := storeBackends[raw]
			return ok
		})

		validateInst = v
	})

	return validateInst
}
