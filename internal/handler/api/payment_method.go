package api

import (
	"net/http"

	resdto "kost-booking/internal/handler/dto/response"
	"kost-booking/internal/handler/httperr"
	"kost-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentMethodHandler struct {
	q queries.PaymentMethodQueries
}

func NewPaymentMethodHandler(q queries.PaymentMethodQueries) *PaymentMethodHandler {
	return &PaymentMethodHandler{q: q}
}

// @Summary List payment methods
// @Description Enabled payment methods grouped by type, in catalog order
// @Tags payment-methods
// @Produce json
// @Success 200 {array} resdto.PaymentMethodGroupResponse
// @Failure 500 {object} httperr.Response
// @Router /api/payment-methods [get]
func (h *PaymentMethodHandler) List(c *gin.Context) {
	res, err := resdto.FromPaymentGroups(h.q.Groups())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load payment methods", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
