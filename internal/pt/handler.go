package pt

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

// Book godoc
// @Summary      Book a personal training session
// @Tags         sessions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        memberID  path      int          true  "Member ID"
// @Param        request   body      BookRequest  true  "Session data"
// @Success      201       {object}  Session
// @Failure      409       {object}  api.ErrorResponse
// @Router       /members/{memberID}/sessions [post]
func (h *Handler) Book(c *gin.Context) {
	memberID, ok := pathID(c, "memberID")
	if !ok {
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.service.Book(c.Request.Context(), memberID, req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// Reschedule godoc
// @Summary      Reschedule a personal training session
// @Tags         sessions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        memberID   path      int                true  "Member ID"
// @Param        sessionID  path      int                true  "Session ID"
// @Param        request    body      RescheduleRequest  true  "New interval"
// @Success      200        {object}  Session
// @Failure      409        {object}  api.ErrorResponse
// @Router       /members/{memberID}/sessions/{sessionID} [put]
func (h *Handler) Reschedule(c *gin.Context) {
	memberID, ok := pathID(c, "memberID")
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "sessionID")
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.service.Reschedule(c.Request.Context(), memberID, sessionID, req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Cancel godoc
// @Summary      Cancel a personal training session
// @Tags         sessions
// @Security     BearerAuth
// @Param        memberID   path  int  true  "Member ID"
// @Param        sessionID  path  int  true  "Session ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /members/{memberID}/sessions/{sessionID} [delete]
func (h *Handler) Cancel(c *gin.Context) {
	memberID, ok := pathID(c, "memberID")
	if !ok {
		return
	}
	sessionID, ok := pathID(c, "sessionID")
	if !ok {
		return
	}

	if err := h.service.Cancel(c.Request.Context(), memberID, sessionID); err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Session cancelled"})
}

// ListByMember godoc
// @Summary      List a member's sessions
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path     int  true  "Member ID"
// @Success      200       {array}  Session
// @Router       /members/{memberID}/sessions [get]
func (h *Handler) ListByMember(c *gin.Context) {
	memberID, ok := pathID(c, "memberID")
	if !ok {
		return
	}

	sessions, err := h.service.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// ListByTrainer godoc
// @Summary      List a trainer's sessions
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path     int  true  "Trainer ID"
// @Success      200        {array}  Session
// @Router       /trainers/{trainerID}/sessions [get]
func (h *Handler) ListByTrainer(c *gin.Context) {
	trainerID, ok := pathID(c, "trainerID")
	if !ok {
		return
	}

	sessions, err := h.service.ListByTrainer(c.Request.Context(), trainerID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}
