package service

import (
	"errors"
	"strings"

	"squawker/backend/internal/model"
	"squawker/backend/pkg/security"
	"squawker/backend/pkg/validators"

	"gorm.io/gorm"
)

// Register creates a new account. Emails are lowercased before storage so
// lookups and the unique index are effectively case-insensitive
func Register(db *gorm.DB, hasher *security.Hasher, handle, name, email, password string) (*model.User, error) {
	if err := validators.HandleValidator(handle); err != nil {
		return nil, err
	}

	if err := validators.EmailValidator(email); err != nil {
		return nil, err
	}

	if err := validators.PasswordValidator(password); err != nil {
		return nil, err
	}

	email = strings.ToLower(email)

	var taken bool

	err := db.Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", email).
		Find(&taken).
		Error
	if err != nil {
		return nil, err
	}

	if taken {
		return nil, ErrEmailTaken
	}

	err = db.Model(model.User{}).
		Select("count(*) > 0").
		Where("handle = ?", handle).
		Find(&taken).
		Error
	if err != nil {
		return nil, err
	}

	if taken {
		return nil, ErrHandleTaken
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Handle:       handle,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies an email/password pair. An unknown email and a
// wrong password both come back as ErrBadCredentials so callers can't be
// used to probe which addresses are registered
func Authenticate(db *gorm.DB, hasher *security.Hasher, email, password string) (*model.User, error) {
	var user model.User

	err := db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}

		return nil, err
	}

	if !hasher.Verify(password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}

	return &user, nil
}

func UserByHandle(db *gorm.DB, handle string) (*model.User, error) {
	var user model.User

	err := db.Where("handle = ?", handle).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}

func UserByEmail(db *gorm.DB, email string) (*model.User, error) {
	var user model.User

	err := db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}

// ProfileUpdate carries the fields a user may change about themselves.
// Empty fields are left untouched
type ProfileUpdate struct {
	Name     string
	Email    string
	Password string
}

func UpdateProfile(db *gorm.DB, hasher *security.Hasher, userID uint, upd ProfileUpdate) (*model.User, error) {
	var user model.User

	err := db.Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	changes := map[string]any{}

	if upd.Name != "" {
		changes["name"] = upd.Name
	}

	if upd.Email != "" {
		if err := validators.EmailValidator(upd.Email); err != nil {
			return nil, err
		}

		email := strings.ToLower(upd.Email)

		if email != user.Email {
			var taken bool

			err := db.Model(model.User{}).
				Select("count(*) > 0").
				Where("email = ? AND id != ?", email, userID).
				Find(&taken).
				Error
			if err != nil {
				return nil, err
			}

			if taken {
				return nil, ErrEmailTaken
			}

			changes["email"] = email
		}
	}

	if upd.Password != "" {
		if err := validators.PasswordValidator(upd.Password); err != nil {
			return nil, err
		}

		hash, err := hasher.Hash(upd.Password)
		if err != nil {
			return nil, err
		}

		changes["password_hash"] = hash
	}

	if len(changes) == 0 {
		return &user, nil
	}

	err = db.Model(&user).Updates(changes).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// DestroyUser removes an account along with its squawks and both directions
// of its follow edges, all in one transaction so readers never see a
// half-deleted account
func DestroyUser(db *gorm.DB, userID uint) error {
	var user model.User

	err := db.Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}

		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(model.Squawk{}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("follower_id = ? OR followed_id = ?", userID, userID).
			Delete(model.Relationship{}).
			Error; err != nil {
			return err
		}

		return tx.Delete(model.User{}, userID).Error
	})
}

func SquawkCount(db *gorm.DB, userID uint) (int64, error) {
	var n int64

	err := db.Model(model.Squawk{}).
		Where("user_id = ?", userID).
		Count(&n).
		Error

	return n, err
}
