package service

import (
	"strings"
	"testing"

	"squawker/backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSquawkBoundaries(t *testing.T) {
	db := newTestDB(t)
	a := seedUser(t, db, "alice")

	// Exactly 140 characters is fine
	ok := strings.Repeat("x", 140)
	squawk, err := CreateSquawk(db, a.ID, ok)
	require.NoError(t, err)
	assert.Equal(t, ok, squawk.Content)

	// 141 is not
	_, err = CreateSquawk(db, a.ID, strings.Repeat("x", 141))
	assert.ErrorIs(t, err, ErrContentTooLong)

	_, err = CreateSquawk(db, a.ID, "")
	assert.ErrorIs(t, err, ErrContentEmpty)

	_, err = CreateSquawk(db, a.ID, "   \n\t  ")
	assert.ErrorIs(t, err, ErrContentEmpty)
}

func TestCreateSquawkCountsRunesNotBytes(t *testing.T) {
	db := newTestDB(t)
	a := seedUser(t, db, "alice")

	// 140 multi-byte runes exceed 140 bytes but stay within the limit
	squawk, err := CreateSquawk(db, a.ID, strings.Repeat("é", 140))
	require.NoError(t, err)
	assert.NotZero(t, squawk.ID)
}

func TestCreateSquawkTrimsWhitespaceOnly(t *testing.T) {
	db := newTestDB(t)
	a := seedUser(t, db, "alice")

	squawk, err := CreateSquawk(db, a.ID, "  Hello, World  ")
	require.NoError(t, err)

	// Surrounding whitespace goes, case stays untouched
	assert.Equal(t, "Hello, World", squawk.Content)
}

func TestCreateSquawkUnknownAuthor(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateSquawk(db, 12345, "ghost post")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSquawkByID(t *testing.T) {
	db := newTestDB(t)
	a := seedUser(t, db, "alice")

	created, err := CreateSquawk(db, a.ID, "findable")
	require.NoError(t, err)

	fetched, err := SquawkByID(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "findable", fetched.Content)
	assert.Equal(t, "alice", fetched.User.Handle)

	_, err = SquawkByID(db, created.ID+1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSquawkPermissions(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	other := seedUser(t, db, "other")

	admin := seedUser(t, db, "admin")
	require.NoError(t, db.Model(admin).Update("admin", true).Error)

	squawk, err := CreateSquawk(db, author.ID, "delete me")
	require.NoError(t, err)

	// A random user can't delete it
	err = DeleteSquawk(db, squawk.ID, other.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// The author can
	require.NoError(t, DeleteSquawk(db, squawk.ID, author.ID))

	_, err = SquawkByID(db, squawk.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// An admin can delete someone else's squawk
	squawk, err = CreateSquawk(db, author.ID, "admin target")
	require.NoError(t, err)

	require.NoError(t, DeleteSquawk(db, squawk.ID, admin.ID))

	var n int64
	require.NoError(t, db.Model(model.Squawk{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestDeleteSquawkNotFound(t *testing.T) {
	db := newTestDB(t)
	a := seedUser(t, db, "alice")

	err := DeleteSquawk(db, 999, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
