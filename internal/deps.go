package internal

import (
	"squawker/backend/pkg/security"

	"gorm.io/gorm"
)

type Deps struct {
	DB     *gorm.DB
	Hasher *security.Hasher
}
