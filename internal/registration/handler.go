package registration

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GurjasChalana/fitness-club/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary      Register a member for a class
// @Tags         registrations
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Param        classID   path      int  true  "Class ID"
// @Success      201       {object}  Registration
// @Failure      409       {object}  api.ErrorResponse
// @Router       /members/{memberID}/registrations/{classID} [post]
func (h *Handler) Register(c *gin.Context) {
	memberID, ok := pathID(c, "memberID")
	if !ok {
		return
	}
	classID, ok := pathID(c, "classID")
	if !ok {
		return
	}

	reg, err := h.service.Register(c.Request.Context(), memberID, classID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reg)
}

// Unregister godoc
// @Summary      Drop a class registration
// @Tags         registrations
// @Security     BearerAuth
// @Param        memberID  path  int  true  "Member ID"
// @Param        classID   path  int  true  "Class ID"
// @Success      200  {object}  api.MessageResponse
// @Router       /members/{memberID}/registrations/{classID} [delete]
func (h *Handler) Unregister(c *gin.Context) {
	memberID, ok := pathID(c, "memberID")
	if !ok {
		return
	}
	classID, ok := pathID(c, "classID")
	if !ok {
		return
	}

	if err := h.service.Unregister(c.Request.Context(), memberID, classID); err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Registration removed"})
}

// ListSchedule godoc
// @Summary      List a member's registered classes
// @Tags         registrations
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path     int  true  "Member ID"
// @Success      200       {array}  ScheduleEntry
// @Router       /members/{memberID}/registrations [get]
func (h *Handler) ListSchedule(c *gin.Context) {
	memberID, ok := pathID(c, "memberID")
	if !ok {
		return
	}

	entries, err := h.service.ListSchedule(c.Request.Context(), memberID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}
