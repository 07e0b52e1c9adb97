package projecterrors

import (
	"net/http"

	"github.com/ali44ashhad/contractor/internal/shared/apperror"
)

var (
	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid project id",
		http.StatusBadRequest,
	)
	ErrInvalidAdminID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid admin id",
		http.StatusBadRequest,
	)
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
	ErrNegativeBudget = apperror.New(
		apperror.CodeInvalidInput,
		"budget must not be negative",
		http.StatusBadRequest,
	)
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"project not found",
		http.StatusNotFound,
	)
	ErrNotAContractor = apperror.New(
		apperror.CodeInvalidInput,
		"assigned user must have the contractor role",
		http.StatusBadRequest,
	)
	ErrContractorBusy = apperror.New(
		apperror.CodeInvalidState,
		"contractor is already assigned to an active project",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid project status transition",
		http.StatusBadRequest,
	)
	ErrPendingRequestsExist = apperror.New(
		apperror.CodeInvalidState,
		"resolve pending requests first",
		http.StatusBadRequest,
	)
)
