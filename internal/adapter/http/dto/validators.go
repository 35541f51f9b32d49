package dto

import (
	"math/big"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	hexAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	weiAmountRe  = regexp.MustCompile(`^[0-9]{1,78}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("eth_address", validateEthAddress)
		_ = v.RegisterValidation("wei_amount", validateWeiAmount)
	}
}

// validateEthAddress accepts a 0x-prefixed 20-byte hex address.
func validateEthAddress(fl validator.FieldLevel) bool {
	return hexAddressRe.MatchString(fl.Field().String())
}

// validateWeiAmount accepts a positive decimal integer string.
func validateWeiAmount(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !weiAmountRe.MatchString(s) {
		return false
	}
	v, ok := new(big.Int).SetString(s, 10)
	return ok && v.Sign() > 0
}
