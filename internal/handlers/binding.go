package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/utils"
)

// registerCustomValidations wires domain validations into gin's binding layer.
// The "rut" tag checks the modulo-11 digit of Chilean RUTs on request DTOs.
func registerCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("rut", func(fl validator.FieldLevel) bool {
			return utils.ValidateRUT(fl.Field().String())
		})
	}
}
