package entity

type Excursion struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Duration    string `json:"duration"`
	Price       int    `json:"price"`
	SeatsTotal  int    `json:"seats_total"`
	SeatsBooked int    `json:"seats_booked"`
	Image       string `json:"image"`
	AgeGroup    string `json:"age_group"`
	Category    string `json:"category"`
}

// AvailableSeats returns how many seats are still open for booking.
func (e *Excursion) AvailableSeats() int {
	return e.SeatsTotal - e.SeatsBooked
}

type ExcursionWithAvailability struct {
	Excursion
	AvailableSeats int `json:"available_seats"`
}

func (e *Excursion) WithAvailability() *ExcursionWithAvailability {
	return &ExcursionWithAvailability{
		Excursion:      *e,
		AvailableSeats: e.AvailableSeats(),
	}
}
