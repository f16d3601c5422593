package domain

// Business validation constants
const (
	MinSeatsPerBooking          = 1
	MaxSeatsPerBooking          = 6
	MaxSeatNameLength           = 8
	MaxPassengerNameLength      = 100
	MaxCancellationReasonLength = 500
	MaxSubjectLength            = 200
	MaxMessageLength            = 2000
)

// Time format constants
const (
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)
