// Package remote types the failures coming back from the data gateway.
// Callers surface status+message verbatim; there is no implicit retry.
package remote

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("remote: %d %s", e.Status, e.Message)
}

// Wrap converts a gateway error into a *Error. Already-wrapped errors
// pass through unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var re *Error
	if errors.As(err, &re) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Status: http.StatusNotFound, Message: "record not found"}
	}
	return &Error{Status: http.StatusBadGateway, Message: err.Error()}
}

// StatusOf extracts the HTTP-style status, defaulting to 500.
func StatusOf(err error) int {
	var re *Error
	if errors.As(err, &re) {
		return re.Status
	}
	return http.StatusInternalServerError
}
