package model

import "time"

// Relationship is a directed follow edge. The follower owns the edge's
// lifecycle, the followed side has no say in it. The (follower_id,
// followed_id) pair is unique so a duplicate follow can never create a
// second edge
type Relationship struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID uint `gorm:"uniqueIndex:idx_edge_pair;index;not null" json:"follower_id"`
	FollowedID uint `gorm:"uniqueIndex:idx_edge_pair;index;not null" json:"followed_id"`

	CreatedAt time.Time `json:"created_at"`
}
