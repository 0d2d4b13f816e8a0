package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var hhmmRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("hhmm", validateHHMM); err != nil {
		// Registration only fails on a misdeclared tag, which is a
		// programming error.
		panic(err)
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateHHMM accepts 24-hour wall clock times like "08:00" or "23:00".
func validateHHMM(fl validator.FieldLevel) bool {
	return hhmmRe.MatchString(fl.Field().String())
}
