package api

import (
	"fmt"
	"net/http"
	"strconv"

	resdto "lounge-pos/internal/handler/dto/response"
	"lounge-pos/internal/pkg/clock"
	"lounge-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type HistoryHandler struct {
	q     queries.HistoryQueries
	clock clock.Clock
}

func NewHistoryHandler(q queries.HistoryQueries, clk clock.Clock) *HistoryHandler {
	return &HistoryHandler{q: q, clock: clk}
}

// @Summary List finished sessions
// @Description Newest first, keyset paginated
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 200)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.HistoryPageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			abortBadRequest(c, err)
			return
		}
		limit = v
	}

	page, err := h.q.ListHistory(c.Request.Context(), limit, c.Query("after"))
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	res, err := resdto.FromHistoryPage(page)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Export history
// @Tags history
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Router /api/history/export [get]
func (h *HistoryHandler) Export(c *gin.Context) {
	data, err := h.q.ExportHistory(c.Request.Context())
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	filename := fmt.Sprintf("lounge-history-%s.xlsx", h.clock.Now().Format("20060102-1504"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// @Summary Daily revenue
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param date query string false "Lounge-local date YYYY-MM-DD, default today"
// @Success 200 {object} resdto.DailyStatsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/stats/daily [get]
func (h *HistoryHandler) DailyStats(c *gin.Context) {
	view, err := h.q.DailyStats(c.Request.Context(), c.Query("date"))
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	res, err := resdto.FromDailyStatsView(view)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
