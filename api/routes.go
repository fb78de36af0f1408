package api

import (
	"net/http"
	"strconv"

	"github.com/dworin/KidAirlines/internal/service/directory"
	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	service directory.DirectoryUseCase
}

type createRouteRequest struct {
	OriginAirportID      int64  `json:"origin_airport_id"`
	DestinationAirportID int64  `json:"destination_airport_id"`
	FlightNumber         string `json:"flight_number"`
}

func NewRouteHandler(service directory.DirectoryUseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.DELETE("/:id", h.delete)
}

func (h *RouteHandler) list(c *gin.Context) {
	routes, err := h.service.ListRoutes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

func (h *RouteHandler) create(c *gin.Context) {
	var req createRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route, err := h.service.CreateRoute(c.Request.Context(), req.OriginAirportID, req.DestinationAirportID, req.FlightNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

func (h *RouteHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.DeleteRoute(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
