// Package model defines database models
package model

import "time"

type Squawk struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Content string `gorm:"size:140;not null" json:"content"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	User User `gorm:"foreignKey:UserID" json:"author"`
}
