package store

import (
	"context"

	"github.com/bilaad-labs/estate-pulse/dao/model"
	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

func (s *service) CreateUnit(ctx context.Context, projectID uint, u *models.Unit) (uint, error) {
	row := UnitInsertRow(projectID, u)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (s *service) CreateUnits(ctx context.Context, projectID uint, units []models.Unit) (int, error) {
	created := 0
	for i := range units {
		if _, err := s.CreateUnit(ctx, projectID, &units[i]); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *service) UpdateUnit(ctx context.Context, id uint, patch *models.UnitUpdate) error {
	cols := UnitUpdateColumns(patch)
	if len(cols) == 0 {
		return nil
	}
	res := s.db.WithContext(ctx).Model(&model.Unit{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUnit removes one unit row. Unscoped for the same reason as project
// deletes: soft-deleted rows would still hold their project reference.
func (s *service) DeleteUnit(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Unscoped().Delete(&model.Unit{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
