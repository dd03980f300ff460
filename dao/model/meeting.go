package model

import "gorm.io/gorm"

// Meeting records a scheduled project meeting. The notification email is sent
// after the row is saved; Notified records whether that send succeeded.
type Meeting struct {
	gorm.Model
	ProjectID   uint   `gorm:"not null;index"`
	MeetingDate string `gorm:"type:varchar(32);not null;comment:canonical date 2006-01-02"`
	MeetingTime string `gorm:"type:varchar(16);not null;comment:HH:MM"`
	Attendees   string `gorm:"type:text"`
	Notified    bool   `gorm:"not null;default:false"`
}
