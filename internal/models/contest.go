package models

import "time"

type ContestStatus string

const (
	ContestStatusUpcoming  ContestStatus = "upcoming"
	ContestStatusOngoing   ContestStatus = "ongoing"
	ContestStatusCompleted ContestStatus = "completed"
)

// Contest timestamps are stamped by the service clock, not by gorm.
type Contest struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Platform    string    `gorm:"type:varchar(100);not null;index" json:"platform"`
	Category    string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	Rules       *string   `gorm:"type:text" json:"rules"`
	Prizes      *string   `gorm:"type:text" json:"prizes"`
	Website     *string   `gorm:"type:varchar(2048)" json:"website"`
	StartDate   time.Time `gorm:"not null;index" json:"start_date"`
	EndDate     time.Time `gorm:"not null;index" json:"end_date"`
	Duration    *string   `gorm:"type:varchar(100)" json:"duration"`
	CreatorID   uint64    `gorm:"not null;index" json:"creator_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`

	// Relations
	Creator   User       `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Bookmarks []Bookmark `gorm:"foreignKey:ContestID" json:"-"`
	Solutions []Solution `gorm:"foreignKey:ContestID" json:"-"`
}
