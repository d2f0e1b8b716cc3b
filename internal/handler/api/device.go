package api

import (
	"net/http"

	reqdto "lounge-pos/internal/handler/dto/request"
	resdto "lounge-pos/internal/handler/dto/response"
	"lounge-pos/internal/usecase/commands"
	"lounge-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	cmds commands.DeviceCommands
	q    queries.DeviceQueries
}

func NewDeviceHandler(cmds commands.DeviceCommands, q queries.DeviceQueries) *DeviceHandler {
	return &DeviceHandler{cmds: cmds, q: q}
}

// @Summary List devices
// @Description Dashboard snapshot of every device with live totals
// @Tags devices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DeviceResponse
// @Router /api/devices [get]
func (h *DeviceHandler) List(c *gin.Context) {
	views, err := h.q.ListDevices(c.Request.Context())
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	res, err := resdto.FromDeviceViews(views)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get device
// @Tags devices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Success 200 {object} resdto.DeviceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/devices/{id} [get]
func (h *DeviceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetDevice(c.Request.Context(), id)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	res, err := resdto.FromDeviceView(*view)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Add device
// @Tags devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDeviceRequest true "Device"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /api/devices [post]
func (h *DeviceHandler) Create(c *gin.Context) {
	var req reqdto.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	id, err := h.cmds.AddDevice(c.Request.Context(), req)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Remove device
// @Description Running devices must be stopped first
// @Tags devices
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/devices/{id} [delete]
func (h *DeviceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.RemoveDevice(c.Request.Context(), id); err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Start session
// @Tags devices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Success 200 {object} resdto.StartSessionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/devices/{id}/start [post]
func (h *DeviceHandler) Start(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	startedAt, err := h.cmds.StartSession(c.Request.Context(), id)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StartSessionResponse{DeviceID: id, StartedAt: startedAt})
}

// @Summary Stop session
// @Description Bills the session and appends it to the history ledger
// @Tags devices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Success 200 {object} resdto.HistoryEntryResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/devices/{id}/stop [post]
func (h *DeviceHandler) Stop(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	entry, err := h.cmds.StopSession(c.Request.Context(), id)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	res, err := resdto.FromHistoryEntry(entry)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Toggle play mode
// @Tags devices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Success 200 {object} resdto.ToggleModeResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/devices/{id}/mode [post]
func (h *DeviceHandler) ToggleMode(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	mode, err := h.cmds.ToggleMode(c.Request.Context(), id)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ToggleModeResponse{DeviceID: id, Mode: mode.String()})
}

// @Summary Add drink to session
// @Description A refused sale (out of stock, device idle) returns 200 with applied=false
// @Tags devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Param request body reqdto.AddDrinkRequest true "Drink"
// @Success 200 {object} resdto.AddDrinkResponse
// @Failure 404 {object} httperr.Response
// @Router /api/devices/{id}/drinks [post]
func (h *DeviceHandler) AddDrink(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.AddDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	outcome, err := h.cmds.AddDrink(c.Request.Context(), id, req.DrinkID)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AddDrinkResponse{
		Applied:        outcome.Applied,
		Reason:         string(outcome.Reason),
		DrinkName:      outcome.DrinkName,
		RemainingStock: outcome.RemainingStock,
	})
}

// @Summary Book a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/devices/{id}/reservations [post]
func (h *DeviceHandler) AddReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	resID, err := h.cmds.AddReservation(c.Request.Context(), id, req)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: resID})
}

// @Summary Cancel a reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Param reservationId path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/devices/{id}/reservations/{reservationId} [delete]
func (h *DeviceHandler) CancelReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resID, ok := parseIDParam(c, "reservationId")
	if !ok {
		return
	}
	if err := h.cmds.CancelReservation(c.Request.Context(), id, resID); err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
