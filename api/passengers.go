package api

import (
	"net/http"
	"strconv"

	"github.com/dworin/KidAirlines/internal/service/passengers"
	"github.com/dworin/KidAirlines/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service      passengers.PassengerUseCase
	reservations reservation.ReservationUseCase
}

func NewPassengerHandler(service passengers.PassengerUseCase, reservations reservation.ReservationUseCase) *PassengerHandler {
	return &PassengerHandler{service: service, reservations: reservations}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/reservations", h.reservationsFor)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
}

func (h *PassengerHandler) list(c *gin.Context) {
	result, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PassengerHandler) get(c *gin.Context) {
	id, ok := passengerID(c)
	if !ok {
		return
	}
	passenger, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}

func (h *PassengerHandler) reservationsFor(c *gin.Context) {
	id, ok := passengerID(c)
	if !ok {
		return
	}
	result, err := h.reservations.GetByPassenger(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var input passengers.PassengerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passenger, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, passenger)
}

func (h *PassengerHandler) update(c *gin.Context) {
	id, ok := passengerID(c)
	if !ok {
		return
	}

	var input passengers.PassengerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passenger, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}

func passengerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
