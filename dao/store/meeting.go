package store

import (
	"context"

	"github.com/samber/lo"

	"github.com/bilaad-labs/estate-pulse/dao/model"
	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

func rowToMeeting(row *model.Meeting) models.Meeting {
	return models.Meeting{
		ID:          row.ID,
		ProjectID:   row.ProjectID,
		MeetingDate: row.MeetingDate,
		MeetingTime: row.MeetingTime,
		Attendees:   row.Attendees,
		Notified:    row.Notified,
		CreatedAt:   row.CreatedAt,
	}
}

func (s *service) CreateMeeting(ctx context.Context, m *models.Meeting) (uint, error) {
	row := model.Meeting{
		ProjectID:   m.ProjectID,
		MeetingDate: m.MeetingDate,
		MeetingTime: m.MeetingTime,
		Attendees:   m.Attendees,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (s *service) ListMeetings(ctx context.Context, projectID uint) ([]models.Meeting, error) {
	var rows []model.Meeting
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("meeting_date asc, meeting_time asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(m model.Meeting, _ int) models.Meeting { return rowToMeeting(&m) }), nil
}

func (s *service) MeetingsOn(ctx context.Context, date string) ([]models.Meeting, error) {
	var rows []model.Meeting
	err := s.db.WithContext(ctx).
		Where("meeting_date = ?", date).
		Order("meeting_time asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(m model.Meeting, _ int) models.Meeting { return rowToMeeting(&m) }), nil
}

func (s *service) MarkMeetingNotified(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).
		Model(&model.Meeting{}).
		Where("id = ?", id).
		Update("notified", true).Error
}
