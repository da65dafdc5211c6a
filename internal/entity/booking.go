package entity

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking holds denormalized snapshots of the excursion title, date and
// price taken at creation time. They are deliberately not kept in sync
// with later excursion edits.
type Booking struct {
	ID             int64         `json:"id"`
	UserID         int64         `json:"user_id"`
	UserName       string        `json:"user_name"`
	ExcursionID    int64         `json:"excursion_id"`
	ExcursionTitle string        `json:"excursion_title"`
	ExcursionDate  string        `json:"excursion_date"`
	ExcursionPrice int           `json:"excursion_price"`
	Count          int           `json:"count"`
	TotalPrice     int           `json:"total_price"`
	ChildName      string        `json:"child_name"`
	Comment        string        `json:"comment"`
	Status         BookingStatus `json:"status"`
	CreatedAt      Timestamp     `json:"created_at"`
}

// IsActive reports whether the booking still occupies seats.
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}
