package service

import (
	"fmt"

	"go-pos-backend/pkg/apperror"
	"go-pos-backend/pkg/validator"
)

// validateStruct translates validator failures into the API error taxonomy
func validateStruct(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		first := errs[0]
		return apperror.Validation(fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag))
	}
	return nil
}
