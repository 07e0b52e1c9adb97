package teamerrors

import (
	"net/http"

	"github.com/ali44ashhad/contractor/internal/shared/apperror"
)

var (
	ErrInvalidTeamID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid team id",
		http.StatusBadRequest,
	)
	ErrTeamNotFound = apperror.New(
		apperror.CodeNotFound,
		"team not found",
		http.StatusNotFound,
	)
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"project not found",
		http.StatusNotFound,
	)
	ErrNotProjectContractor = apperror.New(
		apperror.CodeForbidden,
		"only the assigned contractor can manage teams for this project",
		http.StatusForbidden,
	)
	ErrMemberRoleNotAllowed = apperror.New(
		apperror.CodeInvalidInput,
		"team members must have the member or contractor role",
		http.StatusBadRequest,
	)
	ErrDuplicateMember = apperror.New(
		apperror.CodeConflict,
		"user is already a member of this team",
		http.StatusConflict,
	)
	ErrMemberNotFound = apperror.New(
		apperror.CodeNotFound,
		"team member not found",
		http.StatusNotFound,
	)
)
