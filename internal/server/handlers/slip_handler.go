package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dreamworld/wms-console/internal/domain/models"
	"github.com/dreamworld/wms-console/internal/slip"
)

// OrderLookup resolves an order by its composite remote key.
type OrderLookup interface {
	OrderByKey(customerID, orderID string) (models.Order, bool)
}

// SlipHandler serves printable packing slips out of the in-memory order
// list.
type SlipHandler struct {
	orders OrderLookup
	logger *zap.Logger
}

// NewSlipHandler constructs the HTTP handler adapter.
func NewSlipHandler(orders OrderLookup, logger *zap.Logger) *SlipHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SlipHandler{orders: orders, logger: logger}
}

// Slip renders the picking ticket for one order.
func (h *SlipHandler) Slip(c *gin.Context) {
	customerID := c.Param("customer_id")
	orderID := c.Param("order_id")

	order, ok := h.orders.OrderByKey(customerID, orderID)
	if !ok {
		h.logger.Warn("slip requested for unknown order",
			zap.String("customer_id", customerID),
			zap.String("order_id", orderID))
		c.String(http.StatusNotFound, "order not found")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := slip.Render(c.Writer, order); err != nil {
		h.logger.Error("slip render failed", zap.String("order_id", orderID), zap.Error(err))
	}
}
