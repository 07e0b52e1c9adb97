package requesterrors

import (
	"net/http"

	"github.com/ali44ashhad/contractor/internal/shared/apperror"
)

var (
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request id",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"request not found",
		http.StatusNotFound,
	)
	ErrNotProjectContractor = apperror.New(
		apperror.CodeForbidden,
		"only the assigned contractor can create requests for this project",
		http.StatusForbidden,
	)
	ErrProjectNotInProgress = apperror.New(
		apperror.CodeInvalidState,
		"requests can only be created while the project is in progress",
		http.StatusBadRequest,
	)
	ErrPendingRequestExists = apperror.New(
		apperror.CodeConflict,
		"a pending request of this type already exists for the project",
		http.StatusConflict,
	)
	ErrAlreadyResolved = apperror.New(
		apperror.CodeInvalidState,
		"request has already been resolved",
		http.StatusBadRequest,
	)
	ErrInvalidExtensionDate = apperror.New(
		apperror.CodeInvalidInput,
		"requested end date must be strictly after the current project end date",
		http.StatusBadRequest,
	)
	ErrNotRequester = apperror.New(
		apperror.CodeForbidden,
		"only the original requester can cancel a pending request",
		http.StatusForbidden,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
