package service

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateID rejects anything that is not a canonical table id.
func validateID(id string) []FieldError {
	if err := validate.Var(id, "required,uuid"); err != nil {
		return []FieldError{{Field: "id", Message: "must be a valid table id"}}
	}
	return nil
}

// validatePageSize mirrors the selector options.
func validatePageSize(size int) []FieldError {
	if err := validate.Var(size, "oneof=5 10 15 25"); err != nil {
		return []FieldError{{Field: "page_size", Message: "must be one of 5, 10, 15, 25"}}
	}
	return nil
}
