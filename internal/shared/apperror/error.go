package apperror

import "fmt"

// AppError membawa kode stabil + status HTTP supaya handler tinggal
// memanggil ToHTTP tanpa switch-case per error.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error // penyebab asli, opsional
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap supaya errors.Is/As tembus ke penyebab asli.
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap membungkus err dengan kode + status; nil tetap nil.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}
