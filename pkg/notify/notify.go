// Package notify sends meeting emails. Sending is fire-and-forget relative to
// the meeting save: a failed send never rolls back the saved row.
package notify

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/bilaad-labs/estate-pulse/pkg/config"
	"github.com/bilaad-labs/estate-pulse/pkg/logutils"
)

type Notifier interface {
	MeetingScheduled(ctx context.Context, projectName, meetingDate, meetingTime, attendees string) error
	MeetingReminder(ctx context.Context, projectName, meetingDate, meetingTime, attendees string) error
}

type smtpNotifier struct {
	dialer *gomail.Dialer
	from   string
	// notify is the fixed recipient for scheduling notifications.
	notify string
}

func NewSMTPNotifier() Notifier {
	smtpConfig := config.GetConfig().SMTP
	return &smtpNotifier{
		dialer: gomail.NewDialer(smtpConfig.Host, smtpConfig.Port, smtpConfig.User, smtpConfig.Password),
		from:   smtpConfig.From,
		notify: smtpConfig.Notify,
	}
}

func (n *smtpNotifier) send(subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.notify)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		logutils.Log.Errorf("Failed to send email to %s: %v", n.notify, err)
		return err
	}
	logutils.Log.Infof("Sent email to %s", n.notify)
	return nil
}

func (n *smtpNotifier) MeetingScheduled(_ context.Context, projectName, meetingDate, meetingTime, attendees string) error {
	body := fmt.Sprintf(`<h1>New Meeting Scheduled</h1>
<p><strong>Project:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<p><strong>Attendees:</strong> %s</p>
<p>This meeting was scheduled through the Estate Pulse dashboard.</p>`,
		projectName, meetingDate, meetingTime, attendees)
	return n.send("New Meeting Scheduled", body)
}

func (n *smtpNotifier) MeetingReminder(_ context.Context, projectName, meetingDate, meetingTime, attendees string) error {
	body := fmt.Sprintf(`<h1>Meeting Reminder</h1>
<p><strong>Project:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<p><strong>Attendees:</strong> %s</p>`,
		projectName, meetingDate, meetingTime, attendees)
	return n.send("Meeting Reminder", body)
}
