package handler

import (
	"net/http"

	"region-catalog-go/internal/query"
	"region-catalog-go/pkg/model"

	"github.com/gin-gonic/gin"
)

// RegionHandler handles region catalog HTTP requests
type RegionHandler struct {
	queryService *query.QueryService
}

// NewRegionHandler creates a new region handler
func NewRegionHandler(queryService *query.QueryService) *RegionHandler {
	return &RegionHandler{
		queryService: queryService,
	}
}

// Nearest handles GET /regions/nearest
func (h *RegionHandler) Nearest(c *gin.Context) {
	response, perr := h.queryService.Nearest(c.Request.URL.Query())
	if perr != nil {
		c.JSON(http.StatusBadRequest, perr)
		return
	}
	c.JSON(http.StatusOK, response)
}

// List handles GET /regions
func (h *RegionHandler) List(c *gin.Context) {
	response, perr := h.queryService.List(c.Request.URL.Query())
	if perr != nil {
		c.JSON(http.StatusBadRequest, perr)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /regions/:id
func (h *RegionHandler) Get(c *gin.Context) {
	id := c.Param("id")
	region, ok := h.queryService.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, model.NotFoundError{
			Error:   "region not found",
			Code:    "REGION_NOT_FOUND",
			Message: "no region exists with the given id",
			ID:      id,
		})
		return
	}
	c.JSON(http.StatusOK, region)
}

// Health handles GET /healthz
func (h *RegionHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"regions": h.queryService.Size(),
	})
}
