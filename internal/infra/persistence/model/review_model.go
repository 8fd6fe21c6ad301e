package model

import "time"

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID                uint   `gorm:"primaryKey"`
	ReviewerProfileID uint   `gorm:"not null;uniqueIndex:idx_reviews_reviewer_business"`
	BusinessProfileID uint   `gorm:"not null;uniqueIndex:idx_reviews_reviewer_business"`
	Rating            int    `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Description       string `gorm:"type:text;not null;default:''"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
