package updateerrors

import (
	"net/http"

	"github.com/ali44ashhad/contractor/internal/shared/apperror"
)

var (
	ErrInvalidUpdateID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid update id",
		http.StatusBadRequest,
	)
	ErrInvalidUpdateType = apperror.New(
		apperror.CodeInvalidInput,
		"update type must be MORNING or EVENING",
		http.StatusBadRequest,
	)
	ErrInvalidUpdateDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid update date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrUpdateNotFound = apperror.New(
		apperror.CodeNotFound,
		"update not found",
		http.StatusNotFound,
	)
	ErrDuplicateDailyUpdate = apperror.New(
		apperror.CodeConflict,
		"update for this slot already posted today",
		http.StatusConflict,
	)
	ErrDocumentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"at least one document is required",
		http.StatusBadRequest,
	)
	ErrProjectNotInProgress = apperror.New(
		apperror.CodeInvalidState,
		"updates can only be posted while the project is in progress",
		http.StatusBadRequest,
	)
	ErrNotProjectMember = apperror.New(
		apperror.CodeForbidden,
		"only the project contractor or a team member can post updates",
		http.StatusForbidden,
	)
)
