package services

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound means the interval CSV does not exist.
var ErrSourceNotFound = errors.New("source file not found")

// Messages shown to dashboard users.
const (
	msgSourceNotFound   = "No se encontró el archivo %s"
	msgInsufficientData = "Los datos no contienen registros suficientes para las fechas definidas."
)

// UserError is an analysis failure reported to the client as an error payload.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func sourceNotFound(path string, err error) *UserError {
	return &UserError{
		Message: fmt.Sprintf(msgSourceNotFound, path),
		Err:     fmt.Errorf("%w: %v", ErrSourceNotFound, err),
	}
}

func insufficientData(err error) *UserError {
	return &UserError{Message: msgInsufficientData, Err: err}
}
