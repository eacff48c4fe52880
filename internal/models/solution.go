package models

import "time"

// Solution is unique per (user, contest); saving overwrites link and notes.
type Solution struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_solutions_user_contest" json:"user_id"`
	ContestID uint64    `gorm:"not null;uniqueIndex:idx_solutions_user_contest;index" json:"contest_id"`
	Link      string    `gorm:"type:varchar(2048);not null" json:"link"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;index" json:"updated_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Contest Contest `gorm:"foreignKey:ContestID" json:"contest,omitempty"`
}
