package api

import (
	"net/http"
	"strconv"

	"github.com/dworin/KidAirlines/internal/service/catalog"
	"github.com/dworin/KidAirlines/internal/service/manifest"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service   catalog.CatalogUseCase
	manifests manifest.ManifestUseCase
}

func NewFlightHandler(service catalog.CatalogUseCase, manifests manifest.ManifestUseCase) *FlightHandler {
	return &FlightHandler{service: service, manifests: manifests}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/seats", h.availableSeats)
	router.GET("/:id/manifest", h.manifest)
	router.POST("/", h.create)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := flightID(c)
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) availableSeats(c *gin.Context) {
	id, ok := flightID(c)
	if !ok {
		return
	}
	available, err := h.service.AvailableSeats(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight_id": id, "available_seats": available})
}

func (h *FlightHandler) manifest(c *gin.Context) {
	id, ok := flightID(c)
	if !ok {
		return
	}
	entries, err := h.manifests.ManifestFor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *FlightHandler) create(c *gin.Context) {
	var input catalog.CreateFlightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func flightID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
