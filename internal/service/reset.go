package service

import (
	"time"

	"squawker/backend/internal/model"
	"squawker/backend/pkg/security"
	"squawker/backend/pkg/util"
	"squawker/backend/pkg/validators"

	"gorm.io/gorm"
)

const resetTokenSize = 32

// IssueReset generates a reset token for the user behind email and stores
// only its digest plus the issue timestamp on the user row. The plaintext
// is returned exactly once, to be embedded in the mailed link, and is never
// persisted anywhere
func IssueReset(db *gorm.DB, hasher *security.Hasher, email string) (string, *model.User, error) {
	user, err := UserByEmail(db, email)
	if err != nil {
		return "", nil, err
	}

	token, err := util.GenerateToken(resetTokenSize)
	if err != nil {
		return "", nil, err
	}

	digest, err := hasher.Hash(token)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()

	err = db.Model(user).Updates(map[string]any{
		"reset_digest":  digest,
		"reset_sent_at": now,
	}).Error
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// ValidateReset checks a presented token against the stored digest and the
// expiry window. Expiry is evaluated here, lazily, there is no background
// sweep clearing old tokens
func ValidateReset(db *gorm.DB, hasher *security.Hasher, userID uint, token string, ttl time.Duration) error {
	var user model.User

	err := db.Where("id = ?", userID).First(&user).Error
	if err != nil {
		return ErrTokenInvalid
	}

	if user.ResetDigest == nil || user.ResetSentAt == nil {
		return ErrTokenInvalid
	}

	if !hasher.Verify(token, *user.ResetDigest) {
		return ErrTokenInvalid
	}

	if time.Since(*user.ResetSentAt) > ttl {
		return ErrTokenExpired
	}

	return nil
}

// CompleteReset validates the token, sets the new password and consumes the
// token in a single transaction. A consumed token can never be used again
func CompleteReset(db *gorm.DB, hasher *security.Hasher, userID uint, token, newPassword string, ttl time.Duration) error {
	if err := ValidateReset(db, hasher, userID, token, ttl); err != nil {
		return err
	}

	if err := validators.PasswordValidator(newPassword); err != nil {
		return err
	}

	hash, err := hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(model.User{}).
			Where("id = ?", userID).
			Updates(map[string]any{
				"password_hash": hash,
				"reset_digest":  nil,
				"reset_sent_at": nil,
			}).Error
	})
}

// ConsumeReset clears the stored reset state without changing the password.
// Used when a token should be invalidated outright
func ConsumeReset(db *gorm.DB, userID uint) error {
	return db.Model(model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"reset_digest":  nil,
			"reset_sent_at": nil,
		}).Error
}
