package models

import (
	"time"
)

// Article model
type Article struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Title     string    `gorm:"size:200;column:title;not null;index" json:"title"`
	Summary   string    `gorm:"size:500;column:summary" json:"summary"`
	Body      string    `gorm:"type:text;column:body;not null" json:"body"`
	Category  string    `gorm:"column:category;index" json:"category"`
	Author    string    `gorm:"size:100;column:author" json:"author"`
	Likes     int64     `gorm:"column:likes;default:0" json:"likes"`
	Views     int64     `gorm:"column:views;default:0" json:"views"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Article) TableName() string {
	return "article"
}

// Video model
type Video struct {
	ID              string    `gorm:"primaryKey;column:id" json:"id"`
	Title           string    `gorm:"size:200;column:title;not null;index" json:"title"`
	Description     string    `gorm:"size:2000;column:description" json:"description"`
	URL             string    `gorm:"size:500;column:url;not null" json:"url"`
	DurationSeconds int       `gorm:"column:duration_seconds" json:"duration_seconds"`
	Category        string    `gorm:"column:category;index" json:"category"`
	Likes           int64     `gorm:"column:likes;default:0" json:"likes"`
	Views           int64     `gorm:"column:views;default:0" json:"views"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Video) TableName() string {
	return "video"
}
