package handlers

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		if err = v.RegisterValidation("ratesource", validateRateSource); err != nil {
			return
		}
		err = v.RegisterValidation("currencycode", validateCurrencyCode)
	})
	return err
}

func validateRateSource(fl validator.FieldLevel) bool {
	return domain.RateSource(fl.Field().String()).Valid()
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}
