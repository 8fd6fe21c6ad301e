package model

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. The snapshot columns are copied from
// the offer detail at placement and outlive it.
type OrderModel struct {
	ID                 uint            `gorm:"primaryKey"`
	CustomerProfileID  uint            `gorm:"not null;index"`
	BusinessProfileID  uint            `gorm:"not null;index"`
	OfferDetailID      *uint           `gorm:"index"`
	Title              string          `gorm:"type:varchar(255);not null"`
	Revisions          int             `gorm:"not null"`
	DeliveryTimeInDays int             `gorm:"not null"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Features           pq.StringArray  `gorm:"type:text[];not null;default:'{}'"`
	OfferType          string          `gorm:"type:varchar(20);not null"`
	Status             string          `gorm:"type:varchar(20);not null;default:'in_progress'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
