package handlers

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/currency_companion_app/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding tags used by the request DTOs.
// Safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Gin validator engine is not go-playground/validator, custom tags unavailable")
			return
		}
		if err := v.RegisterValidation("currencycode", validateCurrencyCode); err != nil {
			slog.Error("Failed to register currencycode validator", slog.String("error", err.Error()))
		}
	})
}

// validateCurrencyCode accepts 3 ASCII letters in any case, ignoring surrounding spaces.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return utils.IsCurrencyCode(strings.TrimSpace(fl.Field().String()))
}
