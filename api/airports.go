package api

import (
	"net/http"
	"strconv"

	"github.com/dworin/KidAirlines/internal/service/directory"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service directory.DirectoryUseCase
}

type createAirportRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

type airportStatusRequest struct {
	Active bool `json:"active"`
}

func NewAirportHandler(service directory.DirectoryUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:code", h.getByCode)
	router.POST("/", h.create)
	router.PATCH("/:code/status", h.setStatus)
}

func (h *AirportHandler) list(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	airports, err := h.service.ListAirports(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airports)
}

func (h *AirportHandler) getByCode(c *gin.Context) {
	airport, err := h.service.GetAirportByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airport)
}

func (h *AirportHandler) create(c *gin.Context) {
	var req createAirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airport, err := h.service.CreateAirport(c.Request.Context(), req.Code, req.Name, req.City)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airport)
}

func (h *AirportHandler) setStatus(c *gin.Context) {
	// The :code segment doubles as the numeric id for status updates.
	id, err := strconv.ParseInt(c.Param("code"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req airportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SetAirportActive(c.Request.Context(), id, req.Active); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
