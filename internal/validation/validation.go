package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var bloodGroups = map[string]struct{}{
	"A+": {}, "A-": {},
	"B+": {}, "B-": {},
	"AB+": {}, "AB-": {},
	"O+": {}, "O-": {},
}

// RegisterCustomValidators adds domain validation tags to gin's binding
// engine. Call once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("bloodgroup", validBloodGroup)
}

func validBloodGroup(fl validator.FieldLevel) bool {
	_, ok := bloodGroups[fl.Field().String()]
	return ok
}
