package model

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OfferModel mirrors the 'offers' table. The min columns are kept in sync with
// the details by the repository caller.
type OfferModel struct {
	ID              uint               `gorm:"primaryKey"`
	OwnerProfileID  uint               `gorm:"not null;index"`
	Owner           *ProfileModel      `gorm:"foreignKey:OwnerProfileID"`
	Title           string             `gorm:"type:varchar(255);not null"`
	Image           string             `gorm:"type:varchar(255);not null;default:''"`
	Description     string             `gorm:"type:text;not null;default:''"`
	MinPrice        decimal.Decimal    `gorm:"type:numeric(10,2);not null;default:0"`
	MinDeliveryTime int                `gorm:"not null;default:0"`
	Details         []OfferDetailModel `gorm:"foreignKey:OfferID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// OfferDetailModel mirrors the 'offer_details' table.
type OfferDetailModel struct {
	ID                 uint            `gorm:"primaryKey"`
	OfferID            uint            `gorm:"not null;uniqueIndex:idx_offer_details_offer_type"`
	Title              string          `gorm:"type:varchar(255);not null"`
	Revisions          int             `gorm:"not null;default:1"`
	DeliveryTimeInDays int             `gorm:"not null"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Features           pq.StringArray  `gorm:"type:text[];not null;default:'{}'"`
	OfferType          string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_offer_details_offer_type"`
}

// TableName explicitly sets the table name for GORM.
func (OfferDetailModel) TableName() string {
	return "offer_details"
}
