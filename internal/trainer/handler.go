package trainer

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

// CreateTrainer godoc
// @Summary      Create trainer
// @Tags         trainers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateTrainerRequest  true  "Trainer data"
// @Success      201      {object}  Trainer
// @Failure      400      {object}  api.ErrorResponse
// @Router       /admin/trainers [post]
func (h *Handler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	tr, err := h.service.CreateTrainer(c.Request.Context(), req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tr)
}

// ListTrainers godoc
// @Summary      List trainers
// @Tags         trainers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  TrainerSummary
// @Router       /trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	trainers, err := h.service.ListTrainers(c.Request.Context())
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, trainers)
}

// GetTrainer godoc
// @Summary      Get trainer by id
// @Tags         trainers
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Success      200        {object}  Trainer
// @Failure      404        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID} [get]
func (h *Handler) GetTrainer(c *gin.Context) {
	id, ok := pathID(c, "trainerID")
	if !ok {
		return
	}

	tr, err := h.service.GetTrainer(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, tr)
}

// DeleteTrainer godoc
// @Summary      Delete trainer and owned records
// @Tags         trainers
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /admin/trainers/{trainerID} [delete]
func (h *Handler) DeleteTrainer(c *gin.Context) {
	id, ok := pathID(c, "trainerID")
	if !ok {
		return
	}

	if err := h.service.DeleteTrainer(c.Request.Context(), id); err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Trainer deleted"})
}

// ListSlots godoc
// @Summary      List availability slots
// @Tags         availability
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Success      200        {array}   AvailabilitySlot
// @Failure      404        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID}/availability [get]
func (h *Handler) ListSlots(c *gin.Context) {
	id, ok := pathID(c, "trainerID")
	if !ok {
		return
	}

	slots, err := h.service.ListSlots(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

// CreateSlot godoc
// @Summary      Add availability slot
// @Tags         availability
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        trainerID  path      int          true  "Trainer ID"
// @Param        request    body      SlotRequest  true  "Slot interval"
// @Success      201        {object}  AvailabilitySlot
// @Failure      400        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID}/availability [post]
func (h *Handler) CreateSlot(c *gin.Context) {
	id, ok := pathID(c, "trainerID")
	if !ok {
		return
	}

	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.service.CreateSlot(c.Request.Context(), id, req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// UpdateSlot godoc
// @Summary      Update availability slot
// @Tags         availability
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        trainerID  path      int          true  "Trainer ID"
// @Param        slotID     path      int          true  "Slot ID"
// @Param        request    body      SlotRequest  true  "New slot interval"
// @Success      200        {object}  AvailabilitySlot
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID}/availability/{slotID} [put]
func (h *Handler) UpdateSlot(c *gin.Context) {
	trainerID, ok := pathID(c, "trainerID")
	if !ok {
		return
	}
	slotID, ok := pathID(c, "slotID")
	if !ok {
		return
	}

	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.service.UpdateSlot(c.Request.Context(), trainerID, slotID, req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}

// DeleteSlot godoc
// @Summary      Delete availability slot
// @Tags         availability
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Param        slotID     path      int  true  "Slot ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID}/availability/{slotID} [delete]
func (h *Handler) DeleteSlot(c *gin.Context) {
	trainerID, ok := pathID(c, "trainerID")
	if !ok {
		return
	}
	slotID, ok := pathID(c, "slotID")
	if !ok {
		return
	}

	if err := h.service.DeleteSlot(c.Request.Context(), trainerID, slotID); err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Slot deleted"})
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}
