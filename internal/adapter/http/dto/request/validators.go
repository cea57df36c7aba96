package request

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	registerOnce sync.Once
	registerErr  error
	hundred      = decimal.NewFromInt(100)
)

// RegisterValidators installs the custom binding tags on gin's validator.
//   - percent: a decimal in (0, 100]
//   - document: a CPF (11 digits) or CNPJ (14 digits), punctuation allowed
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = Register(v)
	})
	return registerErr
}

// Register installs the custom tags on v.
func Register(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := v.RegisterValidation("percent", validatePercent); err != nil {
		return err
	}
	return v.RegisterValidation("document", validateDocument)
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func validatePercent(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive() && d.LessThanOrEqual(hundred)
}

func validateDocument(fl validator.FieldLevel) bool {
	n := len(digitsOnly(fl.Field().String()))
	return n == 11 || n == 14
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
