package validator

import (
	"hotel/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("notblank", func(fl val.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	if err != nil {
		panic(err)
	}
}

// ValidateStruct performs validation on the struct using the validator package.
// The first violated rule is reported as a bad request failure.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
