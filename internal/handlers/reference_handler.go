package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	store ReferenceStore
}

func NewReferenceHandler(store ReferenceStore) *ReferenceHandler {
	return &ReferenceHandler{store: store}
}

func (h *ReferenceHandler) GetMeasurements(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Measurements())
}

func (h *ReferenceHandler) GetUnits(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Units())
}

// GetActivities answers GET /activities, filtered by ?isSystemDefined=true
func (h *ReferenceHandler) GetActivities(c *gin.Context) {
	systemDefinedOnly := false
	if raw := c.Query("isSystemDefined"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "isSystemDefined must be true or false", err)
			return
		}
		systemDefinedOnly = parsed
	}

	c.JSON(http.StatusOK, h.store.Activities(systemDefinedOnly))
}

func (h *ReferenceHandler) GetActivity(c *gin.Context) {
	activity, ok := h.store.Activity(c.Param("id"))
	if !ok {
		respondNotFound(c, "Activity")
		return
	}
	c.JSON(http.StatusOK, activity)
}
