package prompts

import (
	"time"
)

// MusicalShow is curated reference data about a musical, keyed by a
// whitespace-normalized title.
type MusicalShow struct {
	ID                 uint               `json:"id" gorm:"primaryKey;autoIncrement"`
	Title              string             `json:"title" gorm:"uniqueIndex;not null;size:255"`
	Summary            *string            `json:"summary" gorm:"type:text"`
	Background         *string            `json:"background" gorm:"type:text"`
	MainCharacterCount *int               `json:"main_character_count"`
	Characters         []MusicalCharacter `json:"characters" gorm:"foreignKey:MusicalShowID"`
	CreatedAt          time.Time          `json:"created_at" gorm:"autoCreateTime"`
}

func (MusicalShow) TableName() string {
	return "musical_shows"
}

type MusicalCharacter struct {
	ID            uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	MusicalShowID uint    `json:"musical_show_id" gorm:"not null;index"`
	Name          string  `json:"name" gorm:"not null;size:255"`
	Age           *string `json:"age" gorm:"size:100"`
	Gender        *string `json:"gender" gorm:"size:50"`
	Occupation    *string `json:"occupation" gorm:"size:255"`
	Description   *string `json:"description" gorm:"type:text"`
}

func (MusicalCharacter) TableName() string {
	return "musical_characters"
}

// BandProfile is curated reference data about a band poster identity.
type BandProfile struct {
	ID              uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	BandName        string    `json:"band_name" gorm:"uniqueIndex;not null;size:255"`
	BandNameMeaning *string   `json:"band_name_meaning" gorm:"type:text"`
	PosterColor     *string   `json:"poster_color" gorm:"size:255"`
	BandSymbol      *string   `json:"band_symbol" gorm:"size:255"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (BandProfile) TableName() string {
	return "band_profiles"
}

type GeneratePromptRequest struct {
	Title    string   `json:"title" binding:"required"`
	Location string   `json:"location"`
	Date     string   `json:"date"`
	Genre    string   `json:"genre" binding:"required"`
	Cast     []string `json:"cast"`
	Review   string   `json:"review"`
}

type GeneratePromptResponse struct {
	Prompt string                 `json:"prompt"`
	Meta   map[string]interface{} `json:"meta"`
}
