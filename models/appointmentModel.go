package models

import (
	"time"
)

// Location describes where an appointment takes place.
type Location struct {
	Name    string `gorm:"column:name" json:"name"`
	Address string `gorm:"column:address" json:"address,omitempty"`
	Phone   string `gorm:"column:phone" json:"phone,omitempty"`
	Kind    string `gorm:"column:kind;check:kind IN ('hospital', 'clinic', 'home', 'online')" json:"kind"`
}

// Practitioner describes the professional attached to an appointment.
type Practitioner struct {
	Name      string `gorm:"column:name" json:"name,omitempty"`
	Specialty string `gorm:"column:specialty" json:"specialty,omitempty"`
	Phone     string `gorm:"column:phone" json:"phone,omitempty"`
	Email     string `gorm:"column:email" json:"email,omitempty"`
}

// Appointment model
type Appointment struct {
	ID                string       `gorm:"primaryKey;column:id" json:"id"`
	OwnerID           string       `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Title             string       `gorm:"size:200;column:title;not null" json:"title"`
	Category          string       `gorm:"column:category;check:category IN ('medical', 'treatment', 'support', 'screening');not null" json:"category"`
	Status            string       `gorm:"column:status;check:status IN ('scheduled', 'confirmed', 'completed', 'cancelled', 'rescheduled');not null;index" json:"status"`
	Date              string       `gorm:"column:date;not null;index" json:"date"`
	Time              string       `gorm:"column:time;not null" json:"time"`
	DurationMinutes   int          `gorm:"column:duration_minutes;not null" json:"duration_minutes"`
	Location          Location     `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Practitioner      Practitioner `gorm:"embedded;embeddedPrefix:practitioner_" json:"practitioner"`
	Notes             string       `gorm:"size:2000;column:notes" json:"notes,omitempty"`
	RemindersEnabled  bool         `gorm:"column:reminders_enabled" json:"reminders_enabled"`
	ReminderLeadTimes []int        `gorm:"serializer:json;column:reminder_lead_times" json:"reminder_lead_times,omitempty"`
	CreatedAt         time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// StartsAt combines the appointment's date and time into an instant.
func (a *Appointment) StartsAt() (time.Time, error) {
	return time.Parse("2006-01-02 15:04", a.Date+" "+a.Time)
}
