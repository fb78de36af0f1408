package domain

// Flight is a scheduled instance of a route on a specific date.
// Times are HH:MM strings; an arrival earlier than the departure
// means the flight lands the next day.
type Flight struct {
	ID            int64  `json:"id"`
	RouteID       int64  `json:"route_id"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	FlightDate    string `json:"flight_date"`
	Capacity      int    `json:"capacity"`
	FlightNumber  string `json:"flight_number"`
	OriginCode    string `json:"origin_code"`
	OriginCity    string `json:"origin_city"`
	DestCode      string `json:"dest_code"`
	DestCity      string `json:"dest_city"`
}
