package api

import (
	"context"
	"net/http"

	"kost-booking/internal/domain/user"
	reqdto "kost-booking/internal/handler/dto/request"
	resdto "kost-booking/internal/handler/dto/response"
	"kost-booking/internal/handler/httperr"
	"kost-booking/internal/handler/middleware"
	"kost-booking/internal/pkg/errs"
	"kost-booking/internal/usecase/commands"
	"kost-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingFlowHandler struct {
	cmds commands.BookingFlowCommands
	q    queries.FlowQueries
}

func NewBookingFlowHandler(cmds commands.BookingFlowCommands, q queries.FlowQueries) *BookingFlowHandler {
	return &BookingFlowHandler{cmds: cmds, q: q}
}

// @Summary Open booking flow
// @Description Start a booking flow for a property. Check-in defaults to tomorrow and duration to one rental period.
// @Tags booking-flows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenFlowRequest true "Property to book"
// @Success 201 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking-flows [post]
func (h *BookingFlowHandler) Open(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.OpenFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	flowID, err := h.cmds.Open(c.Request.Context(), actor, req.PropertyID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/booking-flows/"+flowID.String())
	h.render(c, http.StatusCreated, actor, flowID)
}

// @Summary Get booking flow
// @Description Current step, summary, field errors and available actions of a booking flow
// @Tags booking-flows
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking-flows/{id} [get]
func (h *BookingFlowHandler) Get(c *gin.Context) {
	actor, flowID, ok := h.target(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, actor, flowID)
}

// @Summary Update booking details
// @Description Partially update check-in date, duration, contact and note. The update is all or nothing.
// @Tags booking-flows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flow ID"
// @Param request body reqdto.UpdateDetailsRequest true "Details patch"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking-flows/{id}/details [patch]
func (h *BookingFlowHandler) UpdateDetails(c *gin.Context) {
	actor, flowID, ok := h.target(c)
	if !ok {
		return
	}
	var req reqdto.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateDetails(c.Request.Context(), actor, flowID, p); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.render(c, http.StatusOK, actor, flowID)
}

// @Summary Continue to payment
// @Description Move to the payment step. When details are incomplete the flow stays put and lists field errors.
// @Tags booking-flows
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking-flows/{id}/continue [post]
func (h *BookingFlowHandler) Continue(c *gin.Context) {
	h.step(c, h.cmds.Continue)
}

// @Summary Back to details
// @Tags booking-flows
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking-flows/{id}/back [post]
func (h *BookingFlowHandler) Back(c *gin.Context) {
	h.step(c, h.cmds.Back)
}

// @Summary Retry payment
// @Description Return a failed flow to the payment step
// @Tags booking-flows
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking-flows/{id}/retry [post]
func (h *BookingFlowHandler) Retry(c *gin.Context) {
	h.step(c, h.cmds.Retry)
}

// @Summary Select payment method
// @Description Unknown method ids leave the current selection unchanged
// @Tags booking-flows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flow ID"
// @Param request body reqdto.SelectPaymentMethodRequest true "Payment method"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking-flows/{id}/payment-method [put]
func (h *BookingFlowHandler) SelectPaymentMethod(c *gin.Context) {
	actor, flowID, ok := h.target(c)
	if !ok {
		return
	}
	var req reqdto.SelectPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	if err := h.cmds.SelectPaymentMethod(c.Request.Context(), actor, flowID, req.MethodID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.render(c, http.StatusOK, actor, flowID)
}

// @Summary Submit booking
// @Description Start settlement. Returns 202 when a settlement attempt started and 200 when nothing changed.
// @Tags booking-flows
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Success 202 {object} resdto.FlowResponse
// @Failure 404 {object} httperr.Response
// @Router /api/booking-flows/{id}/submit [post]
func (h *BookingFlowHandler) Submit(c *gin.Context) {
	actor, flowID, ok := h.target(c)
	if !ok {
		return
	}
	started, err := h.cmds.Submit(c.Request.Context(), actor, flowID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	status := http.StatusOK
	if started {
		status = http.StatusAccepted
	}
	h.render(c, status, actor, flowID)
}

// @Summary Close booking flow
// @Description Discard the flow and cancel any pending settlement
// @Tags booking-flows
// @Security BearerAuth
// @Param id path string true "Flow ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/booking-flows/{id} [delete]
func (h *BookingFlowHandler) Close(c *gin.Context) {
	actor, flowID, ok := h.target(c)
	if !ok {
		return
	}
	if err := h.cmds.Close(c.Request.Context(), actor, flowID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingFlowHandler) step(c *gin.Context, action func(ctx context.Context, actor user.Identity, flowID uuid.UUID) error) {
	actor, flowID, ok := h.target(c)
	if !ok {
		return
	}
	if err := action(c.Request.Context(), actor, flowID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.render(c, http.StatusOK, actor, flowID)
}

func (h *BookingFlowHandler) target(c *gin.Context) (user.Identity, uuid.UUID, bool) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return user.Identity{}, uuid.Nil, false
	}
	flowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return user.Identity{}, uuid.Nil, false
	}
	return actor, flowID, true
}

func (h *BookingFlowHandler) render(c *gin.Context, status int, actor user.Identity, flowID uuid.UUID) {
	view, err := h.q.Get(c.Request.Context(), actor, flowID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromFlowView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render booking flow", nil)
		return
	}
	c.JSON(status, res)
}
