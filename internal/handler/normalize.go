package handler

import (
	"github.com/bilaad-labs/estate-pulse/dao/model"
	"github.com/bilaad-labs/estate-pulse/pkg/dateutil"
	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

// Date fields arrive from forms and legacy imports in assorted human formats
// ("August 30th, 2025", "8/30/2025", ISO). They are normalized to the
// canonical format here, at the request boundary, so the store only ever sees
// one representation.

func normalizeProjectDates(p *models.Project) error {
	var err error
	if p.StartDate, err = dateutil.Normalize(p.StartDate); err != nil {
		return err
	}
	if p.TargetCompletion, err = dateutil.Normalize(p.TargetCompletion); err != nil {
		return err
	}
	return nil
}

func normalizeUnitDates(u *models.Unit) error {
	var err error
	if u.TargetCompletion, err = dateutil.Normalize(u.TargetCompletion); err != nil {
		return err
	}
	if u.LastUpdated, err = dateutil.Normalize(u.LastUpdated); err != nil {
		return err
	}
	if u.LastUpdated == "" {
		u.LastUpdated = dateutil.Today()
	}
	return nil
}

func normalizeDateField(s *string) error {
	if s == nil {
		return nil
	}
	normalized, err := dateutil.Normalize(*s)
	if err != nil {
		return err
	}
	*s = normalized
	return nil
}

// ensurePhases fills in the six phase keys a unit is expected to carry;
// missing phases start as in-progress.
func ensurePhases(activities model.PhaseActivities) model.PhaseActivities {
	if activities == nil {
		activities = model.PhaseActivities{}
	}
	for _, key := range model.PhaseKeys {
		if _, ok := activities[key]; !ok {
			activities[key] = model.UnitInProgress
		}
	}
	return activities
}
