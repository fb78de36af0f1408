package domain

type Airport struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	City   string `json:"city"`
	Active bool   `json:"active"`
}

type Route struct {
	ID                   int64  `json:"id"`
	OriginAirportID      int64  `json:"origin_airport_id"`
	DestinationAirportID int64  `json:"destination_airport_id"`
	FlightNumber         string `json:"flight_number"`
	OriginCode           string `json:"origin_code"`
	OriginName           string `json:"origin_name"`
	OriginCity           string `json:"origin_city"`
	DestCode             string `json:"dest_code"`
	DestName             string `json:"dest_name"`
	DestCity             string `json:"dest_city"`
}
