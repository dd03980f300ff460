package models

import "time"

type Meeting struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"projectId"`
	MeetingDate string    `json:"meetingDate"`
	MeetingTime string    `json:"meetingTime"`
	Attendees   string    `json:"attendees"`
	Notified    bool      `json:"notified"`
	CreatedAt   time.Time `json:"createdAt"`
}
