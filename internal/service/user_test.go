package service

import (
	"testing"

	"squawker/backend/internal/model"
	"squawker/backend/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLowercasesEmail(t *testing.T) {
	db := newTestDB(t)
	h := testHasher()

	user, err := Register(db, h, "alice", "Alice", "Alice@Example.COM", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	// Lookup works regardless of the casing presented
	found, err := UserByEmail(db, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	h := testHasher()

	_, err := Register(db, h, "alice", "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = Register(db, h, "alice2", "Alice II", "ALICE@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = Register(db, h, "alice", "Impostor", "impostor@example.com", "secret123")
	assert.ErrorIs(t, err, ErrHandleTaken)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	h := testHasher()

	_, err := Register(db, h, "bad handle!", "X", "x@example.com", "secret123")
	assert.ErrorIs(t, err, validators.ErrHandleInvalid)

	_, err = Register(db, h, "xx", "X", "not-an-email", "secret123")
	assert.ErrorIs(t, err, validators.ErrEmailInvalid)

	_, err = Register(db, h, "xx", "X", "x@example.com", "short")
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	h := testHasher()

	_, err := Register(db, h, "alice", "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	user, err := Authenticate(db, h, "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Handle)

	// Mixed-case email still authenticates
	_, err = Authenticate(db, h, "Alice@Example.com", "secret123")
	require.NoError(t, err)

	// Wrong password and unknown email fail with the same error
	_, err = Authenticate(db, h, "alice@example.com", "secret124")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = Authenticate(db, h, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestUserByHandle(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice")

	user, err := UserByHandle(db, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Handle)

	// Handles are case-sensitive
	_, err = UserByHandle(db, "bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	h := testHasher()

	user, err := Register(db, h, "alice", "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	seedUser(t, db, "bob")

	updated, err := UpdateProfile(db, h, user.ID, ProfileUpdate{Name: "Alice B"})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)

	// Switching to an email held by someone else is rejected
	_, err = UpdateProfile(db, h, user.ID, ProfileUpdate{Email: "bob@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Password change takes effect
	_, err = UpdateProfile(db, h, user.ID, ProfileUpdate{Password: "newsecret1"})
	require.NoError(t, err)

	_, err = Authenticate(db, h, "alice@example.com", "newsecret1")
	require.NoError(t, err)

	_, err = Authenticate(db, h, "alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestDestroyUserCascades(t *testing.T) {
	db := newTestDB(t)
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	_, err := CreateSquawk(db, a.ID, "gone soon")
	require.NoError(t, err)

	require.NoError(t, Follow(db, a.ID, b.ID))
	require.NoError(t, Follow(db, b.ID, a.ID))

	require.NoError(t, DestroyUser(db, a.ID))

	_, err = UserByHandle(db, "alice")
	assert.ErrorIs(t, err, ErrNotFound)

	var squawks int64
	require.NoError(t, db.Model(model.Squawk{}).Where("user_id = ?", a.ID).Count(&squawks).Error)
	assert.EqualValues(t, 0, squawks)

	var edges int64
	require.NoError(t, db.Model(model.Relationship{}).
		Where("follower_id = ? OR followed_id = ?", a.ID, a.ID).
		Count(&edges).Error)
	assert.EqualValues(t, 0, edges)

	// Bob is untouched
	_, err = UserByHandle(db, "bob")
	require.NoError(t, err)
}

func TestDestroyUserNotFound(t *testing.T) {
	db := newTestDB(t)

	err := DestroyUser(db, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
