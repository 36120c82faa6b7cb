package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GurjasChalana/fitness-club/internal/api"
	"github.com/GurjasChalana/fitness-club/internal/clock"
)

type Handler struct {
	repo  *Repository
	clock clock.Clock
}

func NewHandler(repo *Repository, clk clock.Clock) *Handler {
	return &Handler{repo: repo, clock: clk}
}

// Overview godoc
// @Summary      Club-wide counters
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Overview
// @Router       /dashboard/overview [get]
func (h *Handler) Overview(c *gin.Context) {
	o, err := h.repo.GetOverview(c.Request.Context(), h.clock.Now())
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

// SessionStats godoc
// @Summary      PT sessions created per day
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        from  query     string  false  "Range start (YYYY-MM-DD, default 30 days ago)"
// @Param        to    query     string  false  "Range end (YYYY-MM-DD, default today)"
// @Success      200   {array}   SessionStatsByDay
// @Router       /dashboard/sessions [get]
func (h *Handler) SessionStats(c *gin.Context) {
	from, to, ok := h.dateRange(c)
	if !ok {
		return
	}

	stats, err := h.repo.GetSessionStatsByDay(c.Request.Context(), from, to)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// TrainerLoad godoc
// @Summary      Scheduled sessions and classes per trainer
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        from  query     string  false  "Range start (YYYY-MM-DD, default 30 days ago)"
// @Param        to    query     string  false  "Range end (YYYY-MM-DD, default today)"
// @Success      200   {array}   TrainerLoad
// @Router       /dashboard/trainers [get]
func (h *Handler) TrainerLoad(c *gin.Context) {
	from, to, ok := h.dateRange(c)
	if !ok {
		return
	}

	load, err := h.repo.GetTrainerLoad(c.Request.Context(), from, to)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, load)
}

func (h *Handler) dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := h.clock.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "from must be YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "to must be YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		to = parsed
	}

	return from, to, true
}
