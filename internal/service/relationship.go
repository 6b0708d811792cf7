package service

import (
	"fmt"
	"squawker/backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Follow creates the directed edge follower -> followed. Following yourself
// is rejected outright. Following someone twice is a no-op, the unique
// (follower_id, followed_id) index plus ON CONFLICT DO NOTHING means a
// racing duplicate insert can never corrupt the edge set
func Follow(db *gorm.DB, followerID, followedID uint) error {
	if followerID == followedID {
		return ErrSelfFollow
	}

	var exists bool

	err := db.Model(model.User{}).
		Select("count(*) > 0").
		Where("id = ?", followedID).
		Find(&exists).
		Error
	if err != nil {
		return fmt.Errorf("failed to look up followed user, %w", err)
	}

	if !exists {
		return ErrNotFound
	}

	return db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Relationship{
			FollowerID: followerID,
			FollowedID: followedID,
		}).
		Error
}

// Unfollow removes the edge if it exists. Unfollowing someone you don't
// follow is a no-op
func Unfollow(db *gorm.DB, followerID, followedID uint) error {
	return db.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(model.Relationship{}).
		Error
}

func IsFollowing(db *gorm.DB, followerID, followedID uint) (bool, error) {
	var found bool

	err := db.Model(model.Relationship{}).
		Select("count(*) > 0").
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Find(&found).
		Error
	if err != nil {
		return false, err
	}

	return found, nil
}

// Followers returns a page of users following userID, most recent follower
// first. The order is pinned to (relationships.created_at DESC, id DESC) so
// pages come back the same way every time
func Followers(db *gorm.DB, userID uint, page, limit int) ([]model.User, error) {
	var users []model.User

	err := db.
		Joins("JOIN relationships ON relationships.follower_id = users.id").
		Where("relationships.followed_id = ?", userID).
		Order("relationships.created_at DESC, relationships.id DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&users).
		Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Following is the mirror of Followers: the users userID follows
func Following(db *gorm.DB, userID uint, page, limit int) ([]model.User, error) {
	var users []model.User

	err := db.
		Joins("JOIN relationships ON relationships.followed_id = users.id").
		Where("relationships.follower_id = ?", userID).
		Order("relationships.created_at DESC, relationships.id DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&users).
		Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

func FollowerCount(db *gorm.DB, userID uint) (int64, error) {
	var n int64

	err := db.Model(model.Relationship{}).
		Where("followed_id = ?", userID).
		Count(&n).
		Error

	return n, err
}

func FollowingCount(db *gorm.DB, userID uint) (int64, error) {
	var n int64

	err := db.Model(model.Relationship{}).
		Where("follower_id = ?", userID).
		Count(&n).
		Error

	return n, err
}
