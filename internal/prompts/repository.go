package prompts

import (
	"gorm.io/gorm"
)

type Repository interface {
	FindMusicalByTitle(title string) (*MusicalShow, error)
	FindMusicalByTitleContaining(title string) (*MusicalShow, error)
	FindMusicalWithCharacters(id uint) (*MusicalShow, error)
	FindBandByName(name string) (*BandProfile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindMusicalByTitle(title string) (*MusicalShow, error) {
	var show MusicalShow
	err := r.db.Where("title = ?", title).First(&show).Error
	if err != nil {
		return nil, err
	}
	return &show, nil
}

func (r *repository) FindMusicalByTitleContaining(title string) (*MusicalShow, error) {
	var show MusicalShow
	err := r.db.Where("title LIKE ?", "%"+title+"%").
		Order("id ASC").
		First(&show).Error
	if err != nil {
		return nil, err
	}
	return &show, nil
}

func (r *repository) FindMusicalWithCharacters(id uint) (*MusicalShow, error) {
	var show MusicalShow
	err := r.db.Preload("Characters", func(db *gorm.DB) *gorm.DB {
		return db.Order("musical_characters.id ASC")
	}).Where("id = ?", id).First(&show).Error
	if err != nil {
		return nil, err
	}
	return &show, nil
}

func (r *repository) FindBandByName(name string) (*BandProfile, error) {
	var band BandProfile
	err := r.db.Where("LOWER(band_name) = LOWER(?)", name).First(&band).Error
	if err != nil {
		return nil, err
	}
	return &band, nil
}
