package class

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

// CreateClass godoc
// @Summary      Schedule a group class
// @Tags         classes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateClassRequest  true  "Class data"
// @Success      201      {object}  Class
// @Failure      409      {object}  api.ErrorResponse
// @Router       /classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	cl, err := h.service.CreateClass(c.Request.Context(), req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cl)
}

// UpdateClass godoc
// @Summary      Update a group class
// @Tags         classes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        classID  path      int                 true  "Class ID"
// @Param        request  body      UpdateClassRequest  true  "Field overrides"
// @Success      200      {object}  Class
// @Failure      409      {object}  api.ErrorResponse
// @Router       /classes/{classID} [patch]
func (h *Handler) UpdateClass(c *gin.Context) {
	classID, ok := pathID(c, "classID")
	if !ok {
		return
	}

	var req UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	cl, err := h.service.UpdateClass(c.Request.Context(), classID, req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, cl)
}

// CancelClass godoc
// @Summary      Cancel a group class
// @Tags         classes
// @Security     BearerAuth
// @Param        classID  path  int  true  "Class ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /classes/{classID} [delete]
func (h *Handler) CancelClass(c *gin.Context) {
	classID, ok := pathID(c, "classID")
	if !ok {
		return
	}

	if err := h.service.CancelClass(c.Request.Context(), classID); err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Class cancelled"})
}

// GetClass godoc
// @Summary      Get class by id
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      int  true  "Class ID"
// @Success      200      {object}  Class
// @Failure      404      {object}  api.ErrorResponse
// @Router       /classes/{classID} [get]
func (h *Handler) GetClass(c *gin.Context) {
	classID, ok := pathID(c, "classID")
	if !ok {
		return
	}

	cl, err := h.service.GetClass(c.Request.Context(), classID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, cl)
}

// ListAvailable godoc
// @Summary      List upcoming classes with open spots
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  AvailableClass
// @Router       /classes/available [get]
func (h *Handler) ListAvailable(c *gin.Context) {
	classes, err := h.service.ListAvailable(c.Request.Context())
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

// ListByTrainer godoc
// @Summary      List a trainer's classes
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path     int  true  "Trainer ID"
// @Success      200        {array}  Class
// @Router       /trainers/{trainerID}/classes [get]
func (h *Handler) ListByTrainer(c *gin.Context) {
	trainerID, ok := pathID(c, "trainerID")
	if !ok {
		return
	}

	classes, err := h.service.ListByTrainer(c.Request.Context(), trainerID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}
