package model

import "time"

type Document struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	UserID    int64     `gorm:"not null;index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Document) TableName() string {
	return "documents"
}
