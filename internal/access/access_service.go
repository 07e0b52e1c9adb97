package access

import (
	"context"

	"github.com/ali44ashhad/contractor/internal/domain"
)

// Filter membatasi query list/read ke project yang boleh dilihat aktor.
// Unrestricted berarti tidak ada pembatasan (admin/accounts/developer).
type Filter struct {
	Unrestricted bool
	ProjectIDs   []string
}

// Allows melaporkan apakah sebuah project id lolos filter.
func (f Filter) Allows(projectID string) bool {
	if f.Unrestricted {
		return true
	}
	for _, id := range f.ProjectIDs {
		if id == projectID {
			return true
		}
	}
	return false
}

//go:generate mockgen -source=access_service.go -destination=mock/access_service_mock.go -package=mock
type Service interface {
	ProjectFilter(ctx context.Context, role, userID string) (Filter, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ProjectFilter(ctx context.Context, role, userID string) (Filter, error) {
	if domain.IsPrivilegedRole(role) {
		return Filter{Unrestricted: true}, nil
	}

	switch role {
	case domain.RoleContractor:
		// Direct assignment only, tanpa ekspansi team
		ids, err := s.repo.ContractorProjectIDs(ctx, userID)
		if err != nil {
			return Filter{}, err
		}
		return Filter{ProjectIDs: ids}, nil
	case domain.RoleMember:
		ids, err := s.repo.MemberProjectIDs(ctx, userID)
		if err != nil {
			return Filter{}, err
		}
		return Filter{ProjectIDs: ids}, nil
	default:
		// Role tidak dikenal tidak melihat apa-apa
		return Filter{ProjectIDs: []string{}}, nil
	}
}
