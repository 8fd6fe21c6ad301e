package model

import "time"

// ProfileModel mirrors the 'profiles' table. UserID references accounts.id one to one.
type ProfileModel struct {
	ID           uint          `gorm:"primaryKey"`
	UserID       uint          `gorm:"uniqueIndex;not null"`
	Account      *AccountModel `gorm:"foreignKey:UserID"`
	Role         string        `gorm:"type:varchar(20);not null;index"`
	File         string        `gorm:"type:varchar(255);not null;default:''"`
	Location     string        `gorm:"type:varchar(255);not null;default:''"`
	Tel          string        `gorm:"type:varchar(50);not null;default:''"`
	Description  string        `gorm:"type:text;not null;default:''"`
	WorkingHours string        `gorm:"type:varchar(20);not null;default:''"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
