package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"squawker/backend/internal/model"
	"squawker/backend/pkg/security"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

// newTestDB opens a fresh in-memory sqlite database per test. The named
// shared-cache DSN keeps every pooled connection pointed at the same
// in-memory instance
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(model.User{}, model.Squawk{}, model.Relationship{}))

	return db
}

// testHasher uses deliberately weak argon2 parameters so tests don't burn
// time on key derivation
func testHasher() *security.Hasher {
	return &security.Hasher{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func seedUser(t *testing.T, db *gorm.DB, handle string) *model.User {
	t.Helper()

	user := model.User{
		Handle:       handle,
		Name:         handle,
		Email:        handle + "@example.com",
		PasswordHash: "$argon2id$v=19$m=1024,t=1,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
	}
	require.NoError(t, db.Create(&user).Error)

	return &user
}
