package validators

import (
	"math/big"

	"github.com/go-playground/validator/v10"
)

// DecimalValidation accepts a string holding a non-negative base-10 integer of any size.
// It is registered as "decimal".
func DecimalValidation(fl validator.FieldLevel) bool {
	_, ok := ParseDecimal(fl.Field().String())
	return ok
}

// ParseDecimal parses a non-negative base-10 integer without sign or prefix.
func ParseDecimal(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, false
		}
	}
	return new(big.Int).SetString(s, 10)
}

// New returns a validator with the custom validations of this package registered.
func New() *validator.Validate {
	validate := validator.New()
	// registration only fails for empty tags or nil functions
	_ = validate.RegisterValidation("rsaKeySize", KeySizeValidation)
	_ = validate.RegisterValidation("decimal", DecimalValidation)
	return validate
}
