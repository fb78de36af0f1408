package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

type Reservation struct {
	ID                 int64             `json:"id"`
	PassengerID        int64             `json:"passenger_id"`
	ConfirmationNumber string            `json:"confirmation_number"`
	Status             ReservationStatus `json:"status"`
	CreatedAt          time.Time         `json:"created_at"`
	PassengerFirstName string            `json:"passenger_first_name"`
	PassengerLastName  string            `json:"passenger_last_name"`
}

func (r *Reservation) PassengerName() string {
	if r.PassengerFirstName == "" && r.PassengerLastName == "" {
		return "Unknown"
	}
	return r.PassengerFirstName + " " + r.PassengerLastName
}

// ItineraryLeg is one flight on a reservation, joined with route and
// airport details for display.
type ItineraryLeg struct {
	FlightID      int64   `json:"flight_id"`
	FlightNumber  string  `json:"flight_number"`
	FlightDate    string  `json:"flight_date"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	OriginCode    string  `json:"origin_code"`
	OriginCity    string  `json:"origin_city"`
	DestCode      string  `json:"dest_code"`
	DestCity      string  `json:"dest_city"`
	SeatNumber    *string `json:"seat_number,omitempty"`
}

// ManifestEntry is one passenger on a flight manifest.
type ManifestEntry struct {
	PassengerFirstName string  `json:"passenger_first_name"`
	PassengerLastName  string  `json:"passenger_last_name"`
	SeatNumber         *string `json:"seat_number,omitempty"`
	ConfirmationNumber string  `json:"confirmation_number"`
}
