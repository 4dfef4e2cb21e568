package models

import (
	"time"
)

// ScreeningResult holds the outcome recorded with a completion.
type ScreeningResult struct {
	Status string `gorm:"column:status;check:status IN ('normal', 'abnormal', 'follow_up_needed', '')" json:"status,omitempty"`
	Notes  string `gorm:"size:2000;column:notes" json:"notes,omitempty"`
}

// Screening model tracks a recurring preventive check for one user.
type Screening struct {
	ID            string          `gorm:"primaryKey;column:id" json:"id"`
	OwnerID       string          `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Type          string          `gorm:"column:type;check:type IN ('breast_self_exam', 'pap_smear', 'mammography', 'colonoscopy', 'skin_check', 'blood_test');not null" json:"type"`
	Frequency     string          `gorm:"column:frequency;check:frequency IN ('monthly', 'yearly', 'every_2_years', 'every_3_years', 'every_5_years');not null" json:"frequency"`
	LastCompleted *time.Time      `gorm:"column:last_completed" json:"last_completed,omitempty"`
	NextDue       time.Time       `gorm:"column:next_due;not null;index" json:"next_due"`
	Result        ScreeningResult `gorm:"embedded;embeddedPrefix:result_" json:"result"`
	ReminderSent  bool            `gorm:"column:reminder_sent" json:"reminder_sent"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Screening) TableName() string {
	return "screening"
}
