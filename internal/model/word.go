package model

import (
	"time"

	"gorm.io/datatypes"
)

type Word struct {
	ID               int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CollectionID     int64          `gorm:"not null;index" json:"collectionId"`
	Word             string         `gorm:"not null;size:255" json:"word"`
	Definition       string         `gorm:"not null" json:"definition"`
	Pronunciation    string         `json:"pronunciation"`
	PartOfSpeech     string         `gorm:"not null;size:64" json:"partOfSpeech"`
	Meaning          string         `json:"meaning"`
	Image            string         `json:"image"`
	Note             string         `json:"note"`
	ExampleSentences datatypes.JSON `json:"exampleSentences"`
	Synonyms         datatypes.JSON `json:"synonyms"`
	Antonyms         datatypes.JSON `json:"antonyms"`
	CreatedAt        time.Time      `json:"createdAt"`
}

func (Word) TableName() string {
	return "words"
}
