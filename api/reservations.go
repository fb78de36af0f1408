package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dworin/KidAirlines/internal/domain"
	"github.com/dworin/KidAirlines/internal/service/manifest"
	"github.com/dworin/KidAirlines/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service     reservation.ReservationUseCase
	itineraries manifest.ManifestUseCase
}

type createReservationRequest struct {
	PassengerID        int64   `json:"passenger_id"`
	ConfirmationNumber string  `json:"confirmation_number,omitempty"`
	FlightID           int64   `json:"flight_id,omitempty"`
	SeatNumber         *string `json:"seat_number,omitempty"`
}

type addFlightRequest struct {
	FlightID   int64   `json:"flight_id"`
	SeatNumber *string `json:"seat_number,omitempty"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type reservationResponse struct {
	ID                 int64  `json:"id"`
	PassengerID        int64  `json:"passenger_id"`
	PassengerName      string `json:"passenger_name"`
	ConfirmationNumber string `json:"confirmation_number"`
	Status             string `json:"status"`
	CreatedAt          string `json:"created_at"`
}

func NewReservationHandler(service reservation.ReservationUseCase, itineraries manifest.ManifestUseCase) *ReservationHandler {
	return &ReservationHandler{service: service, itineraries: itineraries}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/itinerary", h.itinerary)
	router.POST("/", h.create)
	router.POST("/:id/flights", h.addFlight)
	router.DELETE("/:id/flights/:flightId", h.removeFlight)
	router.PATCH("/:id/status", h.updateStatus)
	router.DELETE("/:id", h.delete)
}

func (h *ReservationHandler) list(c *gin.Context) {
	reservations, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponses(reservations))
}

// get looks a reservation up by its confirmation number.
func (h *ReservationHandler) get(c *gin.Context) {
	res, err := h.service.GetByConfirmation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(res))
}

func (h *ReservationHandler) create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		res *domain.Reservation
		err error
	)
	if req.FlightID != 0 {
		res, err = h.service.Book(c.Request.Context(), reservation.BookInput{
			PassengerID: req.PassengerID,
			FlightID:    req.FlightID,
			SeatNumber:  req.SeatNumber,
		})
	} else {
		res, err = h.service.Create(c.Request.Context(), reservation.CreateReservationInput{
			PassengerID:        req.PassengerID,
			ConfirmationNumber: req.ConfirmationNumber,
		})
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(res))
}

func (h *ReservationHandler) addFlight(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req addFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.AddFlight(c.Request.Context(), id, req.FlightID, req.SeatNumber); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) removeFlight(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	flightID, err := strconv.ParseInt(c.Param("flightId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}

	if err := h.service.RemoveFlight(c.Request.Context(), id, flightID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) updateStatus(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.service.UpdateStatus(c.Request.Context(), id, domain.ReservationStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(res))
}

func (h *ReservationHandler) delete(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) itinerary(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	legs, err := h.itineraries.ItineraryFor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, legs)
}

func reservationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func toResponse(res *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:                 res.ID,
		PassengerID:        res.PassengerID,
		PassengerName:      res.PassengerName(),
		ConfirmationNumber: res.ConfirmationNumber,
		Status:             string(res.Status),
		CreatedAt:          res.CreatedAt.Format(time.RFC3339),
	}
}

func toResponses(reservations []domain.Reservation) []reservationResponse {
	out := make([]reservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, toResponse(&reservations[i]))
	}
	return out
}
