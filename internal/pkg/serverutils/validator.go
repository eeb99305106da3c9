package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return NewBadRequest(err.Error())
	}
	return nil
}
