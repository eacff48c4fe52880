package models

import "time"

type Bookmark struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_bookmarks_user_contest" json:"user_id"`
	ContestID uint64    `gorm:"not null;uniqueIndex:idx_bookmarks_user_contest;index" json:"contest_id"`
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"created_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Contest Contest `gorm:"foreignKey:ContestID" json:"contest,omitempty"`
}
