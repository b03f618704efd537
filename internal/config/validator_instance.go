package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern      = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	styleNamePattern   = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	variantNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("style_name", func(fl validator.FieldLevel) bool {
			return styleNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("variant_name", func(fl validator.FieldLevel) bool {
			return variantNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}
