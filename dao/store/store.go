package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Service is the persistence gateway. One semantic operation maps to one or
// more store requests; expected store rejections come back as errors, never
// panics. Writes spanning projects and units are not transactional: a project
// create can succeed while its unit batch partially fails, and the gateway
// surfaces the unit error while leaving the project row in place.
type Service interface {
	// ListProjects assembles every project with its units. Fail-closed: if
	// either fetch fails the whole operation yields an empty slice and the
	// cause is logged, never a partial result.
	ListProjects(ctx context.Context) []models.Project
	GetProject(ctx context.Context, id uint) (*models.Project, error)
	CreateProject(ctx context.Context, p *models.Project) (uint, error)
	UpdateProject(ctx context.Context, id uint, patch *models.ProjectUpdate) error
	DeleteProject(ctx context.Context, id uint) error

	CreateUnit(ctx context.Context, projectID uint, u *models.Unit) (uint, error)
	// CreateUnits inserts a batch one row at a time. It returns how many rows
	// made it in alongside the first error; already-inserted rows stay.
	CreateUnits(ctx context.Context, projectID uint, units []models.Unit) (int, error)
	UpdateUnit(ctx context.Context, id uint, patch *models.UnitUpdate) error
	DeleteUnit(ctx context.Context, id uint) error

	CreateMeeting(ctx context.Context, m *models.Meeting) (uint, error)
	ListMeetings(ctx context.Context, projectID uint) ([]models.Meeting, error)
	MeetingsOn(ctx context.Context, date string) ([]models.Meeting, error)
	MarkMeetingNotified(ctx context.Context, id uint) error
}

type service struct {
	db *gorm.DB
}

// NewService returns a gateway bound to the given database handle. The handle
// is passed in rather than grabbed from a package global so views share one
// explicit store object.
func NewService(db *gorm.DB) Service {
	return &service{db: db}
}
