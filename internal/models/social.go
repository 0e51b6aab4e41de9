package models

import "time"

// Follow records that one user follows another. One row per pair.
type Follow struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID  uint64    `gorm:"not null;uniqueIndex:idx_follower_following" json:"follower_id"`
	FollowingID uint64    `gorm:"not null;uniqueIndex:idx_follower_following" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Following User `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (f *Follow) PK() uint64      { return f.ID }
func (f *Follow) SetPK(id uint64) { f.ID = id }

// Review is one user's rating of another, 1 to 5. One review per
// (author, target) pair.
type Review struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID  uint64    `gorm:"not null;uniqueIndex:idx_author_target" json:"author_id"`
	TargetID  uint64    `gorm:"not null;uniqueIndex:idx_author_target" json:"target_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Target User `gorm:"foreignKey:TargetID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Review) PK() uint64      { return r.ID }
func (r *Review) SetPK(id uint64) { r.ID = id }
