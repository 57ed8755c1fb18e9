package model

import "time"

// News is an article shown on the museum site. PublishedAt is stamped the
// first time IsPublished turns true and never rewritten afterwards.
type News struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Summary     *string    `gorm:"type:text" json:"summary"`
	Category    *string    `gorm:"size:64;index" json:"category"`
	ImageURL    *string    `gorm:"size:512" json:"image_url"`
	AuthorID    *uint      `gorm:"index" json:"author_id"`
	Author      *User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"-"`
	IsPublished bool       `gorm:"not null;default:false;index" json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (News) TableName() string {
	return "news"
}
