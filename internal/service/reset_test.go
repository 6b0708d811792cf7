package service

import (
	"testing"
	"time"

	"squawker/backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resetTTL = 2 * time.Hour

func TestIssueResetStoresOnlyDigest(t *testing.T) {
	db := newTestDB(t)
	h := testHasher()
	seedUser(t, db, "alice")

	token, user, err := IssueReset(db, h, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)

	require.NotNil(t, stored.ResetDigest)
	require.NotNil(t, stored.ResetSentAt)
	assert.NotEqual(t, token, *stored.ResetDigest)
	assert.True(t, h.Verify(token, *stored.ResetDigest))
}

func TestIssueResetUnknownEmail(t *testing.T) {
	db := newTestDB(t)

	_, _, err := IssueReset(db, testHasher(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidateReset(t *testing.T) {
	db := newTestDB(t)
	h := testHasher()
	seedUser(t, db, "alice")

	token, user, err := IssueReset(db, h, "alice@example.com")
	require.NoError(t, err)

	// Fresh token validates
	require.NoError(t, ValidateReset(db, h, user.ID, token, resetTTL))

	// Wrong token doesn't
	err = ValidateReset(db, h, user.ID, "deadbeef", resetTTL)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// No token state at all doesn't
	bob := seedUser(t, db, "bob")
	err = ValidateReset(db, h, bob.ID, token, resetTTL)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateResetExpiry(t *testing.T) {
	db := newTestDB(t)
	h := testHasher()
	seedUser(t, db, "alice")

	token, user, err := IssueReset(db, h, "alice@example.com")
	require.NoError(t, err)

	// Age the token past the window, expiry is checked lazily on validate
	stale := time.Now().Add(-3 * time.Hour)
	require.NoError(t, db.Model(model.User{}).
		Where("id = ?", user.ID).
		Update("reset_sent_at", stale).Error)

	err = ValidateReset(db, h, user.ID, token, resetTTL)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestCompleteResetSingleUse(t *testing.T) {
	db := newTestDB(t)
	h := testHasher()

	_, err := Register(db, h, "alice", "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	token, user, err := IssueReset(db, h, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, CompleteReset(db, h, user.ID, token, "brandnew1", resetTTL))

	// The new password works, the old one doesn't
	_, err = Authenticate(db, h, "alice@example.com", "brandnew1")
	require.NoError(t, err)

	_, err = Authenticate(db, h, "alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrBadCredentials)

	// The token was consumed with the change
	err = CompleteReset(db, h, user.ID, token, "another99", resetTTL)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestCompleteResetRejectsWeakPassword(t *testing.T) {
	db := newTestDB(t)
	h := testHasher()
	seedUser(t, db, "alice")

	token, user, err := IssueReset(db, h, "alice@example.com")
	require.NoError(t, err)

	err = CompleteReset(db, h, user.ID, token, "short", resetTTL)
	require.Error(t, err)

	// A failed attempt doesn't consume the token
	require.NoError(t, ValidateReset(db, h, user.ID, token, resetTTL))
}

func TestConsumeReset(t *testing.T) {
	db := newTestDB(t)
	h := testHasher()
	seedUser(t, db, "alice")

	token, user, err := IssueReset(db, h, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, ConsumeReset(db, user.ID))

	err = ValidateReset(db, h, user.ID, token, resetTTL)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
