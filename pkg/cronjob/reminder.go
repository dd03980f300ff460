package cronjob

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bilaad-labs/estate-pulse/dao/store"
	"github.com/bilaad-labs/estate-pulse/pkg/dateutil"
	"github.com/bilaad-labs/estate-pulse/pkg/logutils"
	"github.com/bilaad-labs/estate-pulse/pkg/notify"
)

// ReminderManager sweeps today's meetings on a cron schedule and emails a
// reminder for each. Reminder failures are logged and retried on the next
// sweep; they never block anything else.
type ReminderManager struct {
	store    store.Service
	notifier notify.Notifier
	cron     *cron.Cron
}

func NewReminderManager(s store.Service, n notify.Notifier) *ReminderManager {
	return &ReminderManager{
		store:    s,
		notifier: n,
		cron:     cron.New(cron.WithLocation(time.Local)),
	}
}

// Start registers the sweep under the given cron spec and starts the scheduler.
func (m *ReminderManager) Start(spec string) error {
	if _, err := m.cron.AddFunc(spec, m.sweep); err != nil {
		return err
	}
	m.cron.Start()
	logutils.Log.Infof("meeting reminder scheduled: %s", spec)
	return nil
}

func (m *ReminderManager) Stop() {
	m.cron.Stop()
}

func (m *ReminderManager) sweep() {
	ctx := context.Background()
	today := dateutil.Today()

	meetings, err := m.store.MeetingsOn(ctx, today)
	if err != nil {
		logutils.Log.Errorf("reminder sweep: fetch meetings: %v", err)
		return
	}

	for i := range meetings {
		meeting := &meetings[i]
		project, err := m.store.GetProject(ctx, meeting.ProjectID)
		if err != nil {
			logutils.Log.Warnf("reminder sweep: project %d: %v", meeting.ProjectID, err)
			continue
		}
		err = m.notifier.MeetingReminder(ctx, project.Name, meeting.MeetingDate, meeting.MeetingTime, meeting.Attendees)
		if err != nil {
			logutils.Log.Errorf("reminder sweep: meeting %d: %v", meeting.ID, err)
		}
	}
}
