package model

import "time"

type User struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Handle string `gorm:"uniqueIndex;not null" json:"handle"`
	Name   string `json:"name"`
	// Always stored lowercase. Lookups must lowercase their input first
	Email        string `gorm:"uniqueIndex;not null" json:"-"`
	PasswordHash string `gorm:"not null" json:"-"`
	Admin        bool   `gorm:"default:false" json:"-"`

	// Reset token state lives on the user row but is owned by the reset
	// service. Only the digest of a token is ever persisted
	ResetDigest *string    `json:"-"`
	ResetSentAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Squawks []Squawk `gorm:"foreignKey:UserID" json:"-"`
}
