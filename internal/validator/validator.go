package validator

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type GistindexValidator struct {
	v *validator.Validate
}

func NewValidator() *GistindexValidator {
	v := validator.New()
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("port", validatePort)
	return &GistindexValidator{v}
}

func (cv *GistindexValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

func ValidationMessages(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	messages := make([]string, len(errs))
	for i, e := range errs {
		switch e.Tag() {
		case "required":
			messages[i] = e.Field() + " should not be empty"
		case "url":
			messages[i] = e.Field() + " should be a valid URL"
		case "gt":
			messages[i] = e.Field() + " should be greater than " + e.Param()
		case "loglevel":
			messages[i] = e.Field() + " is not a known log level"
		case "port":
			messages[i] = e.Field() + " should be a port number between 1 and 65535"
		default:
			messages[i] = "Invalid " + e.Field()
		}
	}

	return strings.Join(messages, " ; ")
}

func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := zerolog.ParseLevel(fl.Field().String())
	return err == nil
}

func validatePort(fl validator.FieldLevel) bool {
	port, err := strconv.Atoi(fl.Field().String())
	return err == nil && port > 0 && port <= 65535
}
