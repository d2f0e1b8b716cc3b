package api

import (
	"net/http"
	"strconv"

	reqdto "lounge-pos/internal/handler/dto/request"
	resdto "lounge-pos/internal/handler/dto/response"
	"lounge-pos/internal/usecase/commands"
	"lounge-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List drinks
// @Tags drinks
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive name filter"
// @Param lowStock query bool false "Only drinks below the low-stock threshold"
// @Success 200 {array} resdto.DrinkResponse
// @Router /api/drinks [get]
func (h *CatalogHandler) List(c *gin.Context) {
	filters := queries.DrinkFilters{Search: c.Query("search")}
	if raw := c.Query("lowStock"); raw != "" {
		lowStock, err := strconv.ParseBool(raw)
		if err != nil {
			abortBadRequest(c, err)
			return
		}
		filters.LowStockOnly = lowStock
	}

	views, err := h.q.ListDrinks(c.Request.Context(), filters)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	res, err := resdto.FromDrinkViews(views)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create drink
// @Tags drinks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDrinkRequest true "Drink"
// @Success 201 {object} resdto.DrinkResponse
// @Failure 400 {object} httperr.Response
// @Router /api/drinks [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	var req reqdto.CreateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	view, err := h.cmds.CreateDrink(c.Request.Context(), req)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	res, err := resdto.FromDrinkView(view)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Remove drink
// @Tags drinks
// @Security BearerAuth
// @Param id path string true "Drink ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/drinks/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.RemoveDrink(c.Request.Context(), id); err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Adjust stock
// @Description Positive delta restocks, negative writes off; stock stops at zero
// @Tags drinks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Drink ID"
// @Param request body reqdto.AdjustStockRequest true "Delta"
// @Success 200 {object} resdto.DrinkResponse
// @Failure 404 {object} httperr.Response
// @Router /api/drinks/{id}/stock [post]
func (h *CatalogHandler) AdjustStock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	view, err := h.cmds.AdjustStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	res, err := resdto.FromDrinkView(view)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update drink price
// @Tags drinks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Drink ID"
// @Param request body reqdto.UpdateDrinkPriceRequest true "Price"
// @Success 200 {object} resdto.DrinkResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/drinks/{id}/price [put]
func (h *CatalogHandler) UpdatePrice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateDrinkPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	view, err := h.cmds.UpdatePrice(c.Request.Context(), id, req.Price)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	res, err := resdto.FromDrinkView(view)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
