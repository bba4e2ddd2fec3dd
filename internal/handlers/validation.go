package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
)

// validVoucherType backs the "vouchertype" binding tag.
func validVoucherType(fl validator.FieldLevel) bool {
	return domain.VoucherType(fl.Field().String()).IsValid()
}

// registerValidators installs the custom binding validations on gin's validator engine.
func registerValidators() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("vouchertype", validVoucherType)
	}
	return nil
}
