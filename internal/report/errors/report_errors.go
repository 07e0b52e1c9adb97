package reporterrors

import (
	"net/http"

	"github.com/ali44ashhad/contractor/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrRangeOutsideProject = apperror.New(
		apperror.CodeInvalidInput,
		"report range must fall within the project start and end dates",
		http.StatusBadRequest,
	)
)
