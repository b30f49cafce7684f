package request

import (
	"regexp"
	"sync"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/domain/office"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	packageIDRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,31}$`)
	registerOnce   sync.Once
	registerErr    error
)

// RegisterValidators adds the custom binding tags to gin's validator engine.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		validations := map[string]validator.Func{
			"timeofday":   validateTimeOfDay,
			"officetype":  validateOfficeType,
			"durationpkg": validateDurationPackage,
		}
		for tag, fn := range validations {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = err
				return
			}
		}
	})
	return registerErr
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	_, err := booking.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

func validateOfficeType(fl validator.FieldLevel) bool {
	return office.Type(fl.Field().String()).IsValid()
}

// validateDurationPackage checks the id shape only; unknown ids still price to zero.
func validateDurationPackage(fl validator.FieldLevel) bool {
	return packageIDRegex.MatchString(fl.Field().String())
}
