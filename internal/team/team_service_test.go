package team_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/access"
	"github.com/ali44ashhad/contractor/internal/domain"
	"github.com/ali44ashhad/contractor/internal/project"
	"github.com/ali44ashhad/contractor/internal/team"
	teamerrors "github.com/ali44ashhad/contractor/internal/team/errors"
	"github.com/ali44ashhad/contractor/internal/user"
)

type fakeTeamRepository struct {
	createFn           func(ctx context.Context, t *team.Team) error
	findByIDFn         func(ctx context.Context, id string) (*team.Team, error)
	findAllByProjectFn func(ctx context.Context, projectID string) ([]team.Team, error)
	deleteFn           func(ctx context.Context, id string) error
	addMemberFn        func(ctx context.Context, m *team.TeamMember) error
	removeMemberFn     func(ctx context.Context, teamID, userID string) (int64, error)
	isProjectMemberFn  func(ctx context.Context, projectID, userID string) (bool, error)
}

func (f *fakeTeamRepository) Create(ctx context.Context, t *team.Team) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTeamRepository) FindByID(ctx context.Context, id string) (*team.Team, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTeamRepository) FindAllByProject(ctx context.Context, projectID string) ([]team.Team, error) {
	if f.findAllByProjectFn != nil {
		return f.findAllByProjectFn(ctx, projectID)
	}
	return nil, nil
}

func (f *fakeTeamRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeTeamRepository) AddMember(ctx context.Context, m *team.TeamMember) error {
	if f.addMemberFn != nil {
		return f.addMemberFn(ctx, m)
	}
	return nil
}

func (f *fakeTeamRepository) RemoveMember(ctx context.Context, teamID, userID string) (int64, error) {
	if f.removeMemberFn != nil {
		return f.removeMemberFn(ctx, teamID, userID)
	}
	return 1, nil
}

func (f *fakeTeamRepository) IsProjectMember(ctx context.Context, projectID, userID string) (bool, error) {
	if f.isProjectMemberFn != nil {
		return f.isProjectMemberFn(ctx, projectID, userID)
	}
	return false, nil
}

type fakeProjectRepository struct {
	findByIDFn func(ctx context.Context, filter access.Filter, id string) (*project.Project, error)
}

func (f *fakeProjectRepository) WithTx(tx *sql.Tx) project.Repository { return f }
func (f *fakeProjectRepository) Create(ctx context.Context, p *project.Project) error {
	return nil
}
func (f *fakeProjectRepository) FindAll(ctx context.Context, filter access.Filter) ([]project.Project, error) {
	return nil, nil
}
func (f *fakeProjectRepository) FindByID(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, filter, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeProjectRepository) Update(ctx context.Context, p *project.Project) error { return nil }
func (f *fakeProjectRepository) Delete(ctx context.Context, id string) error          { return nil }
func (f *fakeProjectRepository) SetStatus(ctx context.Context, id, status string) error {
	return nil
}
func (f *fakeProjectRepository) SetEndDate(ctx context.Context, id string, endDate time.Time) error {
	return nil
}
func (f *fakeProjectRepository) CountPendingRequests(ctx context.Context, projectID string) (int64, error) {
	return 0, nil
}
func (f *fakeProjectRepository) ContractorHasActiveProject(ctx context.Context, contractorID string) (bool, error) {
	return false, nil
}

type fakeUserRepository struct {
	findByIDFn  func(ctx context.Context, id string) (*user.User, error)
	findByIDsFn func(ctx context.Context, ids []string) ([]user.User, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepository) FindByIDs(ctx context.Context, ids []string) ([]user.User, error) {
	if f.findByIDsFn != nil {
		return f.findByIDsFn(ctx, ids)
	}
	return nil, nil
}
func (f *fakeUserRepository) HasRole(ctx context.Context, id, role string) (bool, error) {
	return false, nil
}
func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepository) Delete(ctx context.Context, id string) error    { return nil }

func TestTeamService_Create(t *testing.T) {
	ctx := context.Background()
	contractorID := uuid.New()
	projectID := uuid.New()

	inProgressProject := func() *project.Project {
		return &project.Project{
			ID:           projectID,
			Name:         "Gedung A",
			Status:       project.StatusInProgress,
			ContractorID: &contractorID,
		}
	}

	t.Run("contractor creates team on own project", func(t *testing.T) {
		projectRepo := &fakeProjectRepository{
			findByIDFn: func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
				assert.True(t, filter.Unrestricted)
				return inProgressProject(), nil
			},
		}
		var created *team.Team
		repo := &fakeTeamRepository{
			createFn: func(ctx context.Context, tm *team.Team) error {
				created = tm
				return nil
			},
		}
		svc := team.NewService(repo, projectRepo, &fakeUserRepository{})

		resp, err := svc.Create(ctx, domain.RoleContractor, contractorID.String(), team.CreateTeamRequest{
			ProjectID: projectID.String(),
			Name:      "Tim Sipil",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Tim Sipil", resp.Name)
		assert.Equal(t, contractorID.String(), resp.ContractorID)
		assert.NotNil(t, created)
		assert.Equal(t, projectID, created.ProjectID)
	})

	t.Run("contractor cannot create team on someone else's project", func(t *testing.T) {
		projectRepo := &fakeProjectRepository{
			findByIDFn: func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
				return inProgressProject(), nil
			},
		}
		svc := team.NewService(&fakeTeamRepository{}, projectRepo, &fakeUserRepository{})

		_, err := svc.Create(ctx, domain.RoleContractor, uuid.New().String(), team.CreateTeamRequest{
			ProjectID: projectID.String(),
			Name:      "Tim Liar",
		})
		assert.ErrorIs(t, err, teamerrors.ErrNotProjectContractor)
	})

	t.Run("project without contractor rejected", func(t *testing.T) {
		projectRepo := &fakeProjectRepository{
			findByIDFn: func(ctx context.Context, filter access.Filter, id string) (*project.Project, error) {
				return &project.Project{ID: projectID, Status: project.StatusPlanning}, nil
			},
		}
		svc := team.NewService(&fakeTeamRepository{}, projectRepo, &fakeUserRepository{})

		_, err := svc.Create(ctx, domain.RoleAdmin, uuid.New().String(), team.CreateTeamRequest{
			ProjectID: projectID.String(),
			Name:      "Tim Tanpa Kontraktor",
		})
		assert.ErrorIs(t, err, teamerrors.ErrNotProjectContractor)
	})
}

func TestTeamService_AddMember(t *testing.T) {
	ctx := context.Background()
	contractorID := uuid.New()
	teamID := uuid.New()
	memberID := uuid.New()

	existingTeam := func() *team.Team {
		return &team.Team{
			ID:           teamID,
			ProjectID:    uuid.New(),
			ContractorID: contractorID,
			Name:         "Tim Sipil",
		}
	}

	t.Run("success", func(t *testing.T) {
		repo := &fakeTeamRepository{
			findByIDFn: func(ctx context.Context, id string) (*team.Team, error) {
				return existingTeam(), nil
			},
			addMemberFn: func(ctx context.Context, m *team.TeamMember) error {
				assert.Equal(t, teamID, m.TeamID)
				assert.Equal(t, memberID, m.UserID)
				return nil
			},
		}
		userRepo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				return &user.User{ID: memberID, Name: "Budi", Role: domain.RoleMember}, nil
			},
		}
		svc := team.NewService(repo, &fakeProjectRepository{}, userRepo)

		_, err := svc.AddMember(ctx, domain.RoleContractor, contractorID.String(), teamID.String(), team.AddMemberRequest{
			UserID: memberID.String(),
		})
		assert.NoError(t, err)
	})

	t.Run("duplicate member maps to conflict", func(t *testing.T) {
		repo := &fakeTeamRepository{
			findByIDFn: func(ctx context.Context, id string) (*team.Team, error) {
				return existingTeam(), nil
			},
			addMemberFn: func(ctx context.Context, m *team.TeamMember) error {
				return errors.New(`ERROR: duplicate key value violates unique constraint "uq_team_members_team_user" (SQLSTATE 23505)`)
			},
		}
		userRepo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				return &user.User{ID: memberID, Role: domain.RoleMember}, nil
			},
		}
		svc := team.NewService(repo, &fakeProjectRepository{}, userRepo)

		_, err := svc.AddMember(ctx, domain.RoleContractor, contractorID.String(), teamID.String(), team.AddMemberRequest{
			UserID: memberID.String(),
		})
		assert.ErrorIs(t, err, teamerrors.ErrDuplicateMember)
	})

	t.Run("admin cannot be added as field member", func(t *testing.T) {
		repo := &fakeTeamRepository{
			findByIDFn: func(ctx context.Context, id string) (*team.Team, error) {
				return existingTeam(), nil
			},
		}
		userRepo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				return &user.User{ID: memberID, Role: domain.RoleAdmin}, nil
			},
		}
		svc := team.NewService(repo, &fakeProjectRepository{}, userRepo)

		_, err := svc.AddMember(ctx, domain.RoleContractor, contractorID.String(), teamID.String(), team.AddMemberRequest{
			UserID: memberID.String(),
		})
		assert.ErrorIs(t, err, teamerrors.ErrMemberRoleNotAllowed)
	})

	t.Run("other contractor cannot manage the team", func(t *testing.T) {
		repo := &fakeTeamRepository{
			findByIDFn: func(ctx context.Context, id string) (*team.Team, error) {
				return existingTeam(), nil
			},
		}
		svc := team.NewService(repo, &fakeProjectRepository{}, &fakeUserRepository{})

		_, err := svc.AddMember(ctx, domain.RoleContractor, uuid.New().String(), teamID.String(), team.AddMemberRequest{
			UserID: memberID.String(),
		})
		assert.ErrorIs(t, err, teamerrors.ErrNotProjectContractor)
	})
}

func TestTeamService_RemoveMember(t *testing.T) {
	ctx := context.Background()
	contractorID := uuid.New()
	teamID := uuid.New()

	t.Run("missing member", func(t *testing.T) {
		repo := &fakeTeamRepository{
			findByIDFn: func(ctx context.Context, id string) (*team.Team, error) {
				return &team.Team{ID: teamID, ContractorID: contractorID}, nil
			},
			removeMemberFn: func(ctx context.Context, tid, uid string) (int64, error) {
				return 0, nil
			},
		}
		svc := team.NewService(repo, &fakeProjectRepository{}, &fakeUserRepository{})

		err := svc.RemoveMember(ctx, domain.RoleAdmin, uuid.New().String(), teamID.String(), uuid.New().String())
		assert.ErrorIs(t, err, teamerrors.ErrMemberNotFound)
	})
}
