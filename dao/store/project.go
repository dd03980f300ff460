package store

import (
	"context"
	"errors"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/bilaad-labs/estate-pulse/dao/model"
	"github.com/bilaad-labs/estate-pulse/pkg/logutils"
	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

func (s *service) projectRows(ctx context.Context) ([]model.Project, error) {
	var rows []model.Project
	err := s.db.WithContext(ctx).Order("created_at asc").Find(&rows).Error
	return rows, err
}

func (s *service) unitRows(ctx context.Context) ([]model.Unit, error) {
	var rows []model.Unit
	err := s.db.WithContext(ctx).Order("unit_number asc").Find(&rows).Error
	return rows, err
}

func (s *service) ListProjects(ctx context.Context) []models.Project {
	projects, err := s.projectRows(ctx)
	if err != nil {
		logutils.Log.Errorf("fetch projects: %v", err)
		return []models.Project{}
	}
	units, err := s.unitRows(ctx)
	if err != nil {
		logutils.Log.Errorf("fetch units: %v", err)
		return []models.Project{}
	}
	return assembleProjects(projects, units)
}

// assembleProjects groups units by project and attaches them in fetch order.
func assembleProjects(projects []model.Project, units []model.Unit) []models.Project {
	grouped := lo.GroupBy(units, func(u model.Unit) uint { return u.ProjectID })

	result := make([]models.Project, 0, len(projects))
	for i := range projects {
		unitList := lo.Map(grouped[projects[i].ID], func(u model.Unit, _ int) models.Unit {
			return RowToUnit(&u)
		})
		result = append(result, RowToProject(&projects[i], unitList))
	}
	return result
}

func (s *service) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	var row model.Project
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var unitRows []model.Unit
	if err := s.db.WithContext(ctx).
		Where("project_id = ?", id).
		Order("unit_number asc").
		Find(&unitRows).Error; err != nil {
		return nil, err
	}

	units := lo.Map(unitRows, func(u model.Unit, _ int) models.Unit { return RowToUnit(&u) })
	p := RowToProject(&row, units)
	return &p, nil
}

func (s *service) CreateProject(ctx context.Context, p *models.Project) (uint, error) {
	row := ProjectInsertRow(p)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (s *service) UpdateProject(ctx context.Context, id uint, patch *models.ProjectUpdate) error {
	cols := ProjectUpdateColumns(patch)
	if len(cols) == 0 {
		return nil
	}
	res := s.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProject removes one project row. The delete is unscoped: a soft
// delete would bypass the units foreign key and leave orphans behind, so the
// row is removed for real and the database's referential-integrity rules
// decide whether that is accepted.
func (s *service) DeleteProject(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Unscoped().Delete(&model.Project{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
