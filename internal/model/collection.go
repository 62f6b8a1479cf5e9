package model

import "time"

type Collection struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"not null;size:255" json:"name"`
	DocumentID int64     `gorm:"not null;index" json:"documentId"`
	Date       string    `gorm:"size:64" json:"date"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Collection) TableName() string {
	return "collections"
}
