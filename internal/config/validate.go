package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/countryexplorer/internal/validation"
	apperrors "github.com/alexisbeaulieu97/countryexplorer/pkg/errors"
)

// ValidateConfig checks every section of cfg.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validation.Instance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// convertValidationError normalizes validator errors into app validation errors.
func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := yamlishFieldName(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

var fieldNames = map[string]string{
	"BaseURL":   "base_url",
	"UserAgent": "user_agent",
	"RedisAddr": "redis_addr",
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		if name, ok := fieldNames[part]; ok {
			lowered = append(lowered, name)
			continue
		}
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
