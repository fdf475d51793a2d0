package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRatesUnavailable indicates that no exchange rate table could be fetched or none has been loaded yet.
var ErrRatesUnavailable = errors.New("exchange rates unavailable")

// ErrConfirmationRequired indicates that a destructive action was requested without explicit confirmation.
var ErrConfirmationRequired = errors.New("confirmation required")
