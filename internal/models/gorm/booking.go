package gorm

import (
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	Ref         string          `gorm:"column:book_ref;type:character(6);primaryKey" json:"book_ref" validate:"required,len=6"`
	BookDate    time.Time       `gorm:"column:book_date;not null;index:bookings_book_date_idx" json:"book_date" validate:"required"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(10,2);not null;check:bookings_total_amount_check,total_amount >= 0" json:"total_amount" validate:"gte=0"`
}

func (Booking) TableName() string {
	return "bookings"
}
