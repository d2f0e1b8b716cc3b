package api

import (
	"errors"
	"net/http"

	reqdto "lounge-pos/internal/handler/dto/request"
	resdto "lounge-pos/internal/handler/dto/response"
	"lounge-pos/internal/usecase/commands"
	"lounge-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoRates = errors.New("no rate supplied")

type SettingsHandler struct {
	cmds commands.SettingsCommands
	q    queries.SettingsQueries
}

func NewSettingsHandler(cmds commands.SettingsCommands, q queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{cmds: cmds, q: q}
}

// @Summary Get hourly rates
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PricingResponse
// @Router /api/settings/pricing [get]
func (h *SettingsHandler) GetPricing(c *gin.Context) {
	view, err := h.q.GetPricing(c.Request.Context())
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	res, err := resdto.FromPricingView(view)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update hourly rates
// @Description Omitted rates are kept. Running sessions pick up new rates immediately.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdatePricingRequest true "Rates"
// @Success 200 {object} resdto.PricingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/settings/pricing [put]
func (h *SettingsHandler) UpdatePricing(c *gin.Context) {
	var req reqdto.UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if req.Empty() {
		abortBadRequest(c, errNoRates)
		return
	}
	view, err := h.cmds.UpdatePricing(c.Request.Context(), req)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	res, err := resdto.FromPricingView(view)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
