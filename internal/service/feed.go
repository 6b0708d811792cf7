package service

import (
	"squawker/backend/internal/model"

	"gorm.io/gorm"
)

// HomeFeed returns one page of the aggregated feed for userID: squawks
// authored by anyone they follow, plus their own. Both terms live in a
// single query so pagination stays correct no matter how large the follow
// set grows. Self-inclusion is its own OR term rather than a side effect
// of the relationship filter, a user sees their own squawks even though a
// self-follow edge can never exist.
//
// Ordering is pinned to (created_at DESC, id DESC). Pages are stable within
// one fetch; a follow/unfollow between page fetches may shift later page
// boundaries, which is accepted
func HomeFeed(db *gorm.DB, userID uint, page, limit int) ([]model.Squawk, error) {
	followedIDs := db.Model(model.Relationship{}).
		Select("followed_id").
		Where("follower_id = ?", userID)

	var squawks []model.Squawk

	err := db.
		Preload("User").
		Where("user_id IN (?) OR user_id = ?", followedIDs, userID).
		Order("created_at DESC, id DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&squawks).
		Error
	if err != nil {
		return nil, err
	}

	return squawks, nil
}

// UserSquawks returns one page of a single user's squawks, newest first.
// Backs the profile timeline
func UserSquawks(db *gorm.DB, userID uint, page, limit int) ([]model.Squawk, error) {
	var squawks []model.Squawk

	err := db.
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&squawks).
		Error
	if err != nil {
		return nil, err
	}

	return squawks, nil
}
