package room

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

// CreateRoom godoc
// @Summary      Create room
// @Tags         rooms
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRoomRequest  true  "Room data"
// @Success      201      {object}  Room
// @Failure      409      {object}  api.ErrorResponse
// @Router       /rooms [post]
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	rm, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rm)
}

// GetRoom godoc
// @Summary      Get room by id
// @Tags         rooms
// @Security     BearerAuth
// @Produce      json
// @Param        roomID  path      int  true  "Room ID"
// @Success      200     {object}  Room
// @Failure      404     {object}  api.ErrorResponse
// @Router       /rooms/{roomID} [get]
func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := pathID(c, "roomID")
	if !ok {
		return
	}

	rm, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// ListRooms godoc
// @Summary      List rooms
// @Tags         rooms
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Room
// @Router       /rooms [get]
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// DeleteRoom godoc
// @Summary      Delete room
// @Tags         rooms
// @Security     BearerAuth
// @Param        roomID  path  int  true  "Room ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /rooms/{roomID} [delete]
func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c, "roomID")
	if !ok {
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Room deleted"})
}

// AddEquipment godoc
// @Summary      Add equipment to a room
// @Tags         rooms
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        roomID   path      int                  true  "Room ID"
// @Param        request  body      AddEquipmentRequest  true  "Equipment data"
// @Success      201      {object}  Equipment
// @Failure      404      {object}  api.ErrorResponse
// @Router       /rooms/{roomID}/equipment [post]
func (h *Handler) AddEquipment(c *gin.Context) {
	roomID, ok := pathID(c, "roomID")
	if !ok {
		return
	}

	var req AddEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	eq, err := h.service.AddEquipment(c.Request.Context(), roomID, req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, eq)
}

// ListEquipment godoc
// @Summary      List equipment in a room
// @Tags         rooms
// @Security     BearerAuth
// @Produce      json
// @Param        roomID  path     int  true  "Room ID"
// @Success      200     {array}  Equipment
// @Router       /rooms/{roomID}/equipment [get]
func (h *Handler) ListEquipment(c *gin.Context) {
	roomID, ok := pathID(c, "roomID")
	if !ok {
		return
	}

	items, err := h.service.ListEquipment(c.Request.Context(), roomID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// DeleteEquipment godoc
// @Summary      Remove equipment from a room
// @Tags         rooms
// @Security     BearerAuth
// @Param        roomID       path  int  true  "Room ID"
// @Param        equipmentID  path  int  true  "Equipment ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /rooms/{roomID}/equipment/{equipmentID} [delete]
func (h *Handler) DeleteEquipment(c *gin.Context) {
	roomID, ok := pathID(c, "roomID")
	if !ok {
		return
	}
	equipmentID, ok := pathID(c, "equipmentID")
	if !ok {
		return
	}

	if err := h.service.DeleteEquipment(c.Request.Context(), roomID, equipmentID); err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Equipment deleted"})
}

// ReportIssue godoc
// @Summary      Report an equipment issue
// @Tags         maintenance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        equipmentID  path      int                 true  "Equipment ID"
// @Param        request      body      ReportIssueRequest  true  "Issue description"
// @Success      201          {object}  MaintenanceLog
// @Failure      404          {object}  api.ErrorResponse
// @Router       /equipment/{equipmentID}/issues [post]
func (h *Handler) ReportIssue(c *gin.Context) {
	equipmentID, ok := pathID(c, "equipmentID")
	if !ok {
		return
	}

	var req ReportIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	log, err := h.service.ReportIssue(c.Request.Context(), equipmentID, req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, log)
}

// ResolveIssue godoc
// @Summary      Resolve a maintenance issue
// @Tags         maintenance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        logID    path      int                  true  "Log ID"
// @Param        request  body      ResolveIssueRequest  true  "Resolution notes"
// @Success      200      {object}  MaintenanceLog
// @Failure      404      {object}  api.ErrorResponse
// @Router       /maintenance/{logID}/resolve [post]
func (h *Handler) ResolveIssue(c *gin.Context) {
	logID, ok := pathID(c, "logID")
	if !ok {
		return
	}

	var req ResolveIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	log, err := h.service.ResolveIssue(c.Request.Context(), logID, req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

// ListOpenIssues godoc
// @Summary      List open maintenance issues
// @Tags         maintenance
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  MaintenanceLog
// @Router       /maintenance/open [get]
func (h *Handler) ListOpenIssues(c *gin.Context) {
	logs, err := h.service.ListOpenIssues(c.Request.Context())
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// ListEquipmentIssues godoc
// @Summary      List issues for a piece of equipment
// @Tags         maintenance
// @Security     BearerAuth
// @Produce      json
// @Param        equipmentID  path     int  true  "Equipment ID"
// @Success      200          {array}  MaintenanceLog
// @Router       /equipment/{equipmentID}/issues [get]
func (h *Handler) ListEquipmentIssues(c *gin.Context) {
	equipmentID, ok := pathID(c, "equipmentID")
	if !ok {
		return
	}

	logs, err := h.service.ListEquipmentIssues(c.Request.Context(), equipmentID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// DeleteIssue godoc
// @Summary      Delete a maintenance log
// @Tags         maintenance
// @Security     BearerAuth
// @Param        logID  path  int  true  "Log ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /maintenance/{logID} [delete]
func (h *Handler) DeleteIssue(c *gin.Context) {
	logID, ok := pathID(c, "logID")
	if !ok {
		return
	}

	if err := h.service.DeleteIssue(c.Request.Context(), logID); err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Maintenance log deleted"})
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}
