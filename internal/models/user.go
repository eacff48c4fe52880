package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Contests  []Contest  `gorm:"foreignKey:CreatorID" json:"-"`
	Bookmarks []Bookmark `gorm:"foreignKey:UserID" json:"-"`
	Solutions []Solution `gorm:"foreignKey:UserID" json:"-"`
}
