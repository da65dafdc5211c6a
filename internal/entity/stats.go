package entity

// DashboardStats is a pure aggregation over the current collections,
// recomputed per request. Revenue counts confirmed bookings only.
type DashboardStats struct {
	TotalExcursions int `json:"total_excursions"`
	TotalBookings   int `json:"total_bookings"`
	Pending         int `json:"pending"`
	Confirmed       int `json:"confirmed"`
	Cancelled       int `json:"cancelled"`
	TotalUsers      int `json:"total_users"`
	Revenue         int `json:"revenue"`
}
