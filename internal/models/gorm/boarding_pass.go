package gorm

// BoardingPass is issued per (ticket, flight). Boarding numbers and seats are
// unique within a flight.
type BoardingPass struct {
	TicketNo   string `gorm:"column:ticket_no;type:character(13);primaryKey" json:"ticket_no" validate:"required,len=13"`
	FlightID   int64  `gorm:"column:flight_id;primaryKey;autoIncrement:false;uniqueIndex:boarding_passes_flight_id_boarding_no_key,priority:1;uniqueIndex:boarding_passes_flight_id_seat_no_key,priority:1" json:"flight_id" validate:"gt=0"`
	BoardingNo int    `gorm:"column:boarding_no;not null;uniqueIndex:boarding_passes_flight_id_boarding_no_key,priority:2;check:boarding_passes_boarding_no_check,boarding_no > 0" json:"boarding_no" validate:"gt=0"`
	SeatNo     string `gorm:"column:seat_no;type:varchar(4);not null;uniqueIndex:boarding_passes_flight_id_seat_no_key,priority:2" json:"seat_no" validate:"required,max=4"`

	Ticket *Ticket `gorm:"foreignKey:TicketNo;references:No" json:"-" validate:"-"`
	Flight *Flight `gorm:"foreignKey:FlightID;references:ID" json:"-" validate:"-"`
}

func (BoardingPass) TableName() string {
	return "boarding_passes"
}
