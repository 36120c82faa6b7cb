package member

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
// @Summary      Register new member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request  body      CreateMemberRequest  true  "Member data"
// @Success      201      {object}  Member
// @Failure      400      {object}  api.ErrorResponse
// @Router       /members/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// Search godoc
// @Summary      Search members by name
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        name  query     string  true  "Name fragment"
// @Success      200   {array}   Member
// @Failure      400   {object}  api.ErrorResponse
// @Router       /members/search [get]
func (h *Handler) Search(c *gin.Context) {
	members, err := h.service.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetMember godoc
// @Summary      Get member by id
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {object}  Member
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID} [get]
func (h *Handler) GetMember(c *gin.Context) {
	id, ok := pathID(c, "memberID")
	if !ok {
		return
	}

	m, err := h.service.GetMember(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// UpdateMember godoc
// @Summary      Update member profile
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        memberID  path      int                  true  "Member ID"
// @Param        request   body      UpdateMemberRequest  true  "Fields to update"
// @Success      200       {object}  Member
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID} [put]
func (h *Handler) UpdateMember(c *gin.Context) {
	id, ok := pathID(c, "memberID")
	if !ok {
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// DeleteMember godoc
// @Summary      Delete member and owned records
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {object}  api.MessageResponse
// @Failure      404       {object}  api.ErrorResponse
// @Router       /admin/members/{memberID} [delete]
func (h *Handler) DeleteMember(c *gin.Context) {
	id, ok := pathID(c, "memberID")
	if !ok {
		return
	}

	if err := h.service.DeleteMember(c.Request.Context(), id); err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Member deleted"})
}

// ListGoals godoc
// @Summary      List active fitness goals
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {array}   FitnessGoal
// @Router       /members/{memberID}/goals [get]
func (h *Handler) ListGoals(c *gin.Context) {
	id, ok := pathID(c, "memberID")
	if !ok {
		return
	}

	goals, err := h.service.ListGoals(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// AddGoal godoc
// @Summary      Add fitness goal
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        memberID  path      int             true  "Member ID"
// @Param        request   body      AddGoalRequest  true  "Goal data"
// @Success      201       {object}  FitnessGoal
// @Failure      400       {object}  api.ErrorResponse
// @Router       /members/{memberID}/goals [post]
func (h *Handler) AddGoal(c *gin.Context) {
	id, ok := pathID(c, "memberID")
	if !ok {
		return
	}

	var req AddGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	goal, err := h.service.AddGoal(c.Request.Context(), id, req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// DeleteGoal godoc
// @Summary      Delete fitness goal
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Param        goalID    path      int  true  "Goal ID"
// @Success      200       {object}  api.MessageResponse
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID}/goals/{goalID} [delete]
func (h *Handler) DeleteGoal(c *gin.Context) {
	memberID, ok := pathID(c, "memberID")
	if !ok {
		return
	}
	goalID, ok := pathID(c, "goalID")
	if !ok {
		return
	}

	if err := h.service.DeleteGoal(c.Request.Context(), memberID, goalID); err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Goal deleted"})
}

// ListMetrics godoc
// @Summary      List health metrics
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {array}   HealthMetric
// @Router       /members/{memberID}/health-metrics [get]
func (h *Handler) ListMetrics(c *gin.Context) {
	id, ok := pathID(c, "memberID")
	if !ok {
		return
	}

	metrics, err := h.service.ListMetrics(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// AddMetric godoc
// @Summary      Record health metric
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        memberID  path      int               true  "Member ID"
// @Param        request   body      AddMetricRequest  true  "Metric values"
// @Success      201       {object}  HealthMetric
// @Failure      400       {object}  api.ErrorResponse
// @Router       /members/{memberID}/health-metrics [post]
func (h *Handler) AddMetric(c *gin.Context) {
	id, ok := pathID(c, "memberID")
	if !ok {
		return
	}

	var req AddMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	metric, err := h.service.AddMetric(c.Request.Context(), id, req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, metric)
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}
