package gorm

import "airdemo/bookings/internal/models"

type Ticket struct {
	No            string             `gorm:"column:ticket_no;type:character(13);primaryKey" json:"ticket_no" validate:"required,len=13"`
	BookRef       string             `gorm:"column:book_ref;type:character(6);not null;index:tickets_book_ref_idx" json:"book_ref" validate:"required,len=6"`
	PassengerID   string             `gorm:"column:passenger_id;type:varchar(20);not null;index:tickets_passenger_id_idx" json:"passenger_id" validate:"required,max=20"`
	PassengerName string             `gorm:"column:passenger_name;type:text;not null" json:"passenger_name" validate:"required"`
	ContactData   models.ContactData `gorm:"column:contact_data;type:jsonb" json:"contact_data,omitempty"`

	Booking *Booking `gorm:"foreignKey:BookRef;references:Ref" json:"-" validate:"-"`
}

func (Ticket) TableName() string {
	return "tickets"
}
