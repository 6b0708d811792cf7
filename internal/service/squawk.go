package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"squawker/backend/internal/model"

	"gorm.io/gorm"
)

const maxSquawkLen = 140

// CreateSquawk validates content and stores a new squawk for authorID.
// The only normalization applied is trimming surrounding whitespace, and it
// happens before the length check. Content case is never touched
func CreateSquawk(db *gorm.DB, authorID uint, content string) (*model.Squawk, error) {
	content = strings.TrimSpace(content)

	if content == "" {
		return nil, ErrContentEmpty
	}

	if utf8.RuneCountInString(content) > maxSquawkLen {
		return nil, ErrContentTooLong
	}

	var exists bool

	err := db.Model(model.User{}).
		Select("count(*) > 0").
		Where("id = ?", authorID).
		Find(&exists).
		Error
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, ErrNotFound
	}

	squawk := model.Squawk{
		UserID:  authorID,
		Content: content,
	}

	if err := db.Create(&squawk).Error; err != nil {
		return nil, err
	}

	return &squawk, nil
}

func SquawkByID(db *gorm.DB, id uint) (*model.Squawk, error) {
	var squawk model.Squawk

	err := db.
		Preload("User").
		Where("id = ?", id).
		First(&squawk).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &squawk, nil
}

// DeleteSquawk removes a squawk on behalf of requesterID. Only the author
// or an admin may delete
func DeleteSquawk(db *gorm.DB, id, requesterID uint) error {
	var squawk model.Squawk

	err := db.Where("id = ?", id).First(&squawk).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}

		return err
	}

	if squawk.UserID != requesterID {
		var requester model.User

		err = db.Where("id = ?", requesterID).First(&requester).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrForbidden
			}

			return err
		}

		if !requester.Admin {
			return ErrForbidden
		}
	}

	return db.Delete(model.Squawk{}, squawk.ID).Error
}
