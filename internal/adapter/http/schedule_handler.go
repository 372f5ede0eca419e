package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"accounts-payable-service/internal/usecase/schedule"
)

type ScheduleHandler struct{ optimizer *schedule.Optimizer }

func NewScheduleHandler(optimizer *schedule.Optimizer) *ScheduleHandler {
	return &ScheduleHandler{optimizer: optimizer}
}

type optimizeReq struct {
	PayableIDs        []string `json:"payable_ids"         validate:"required,min=1,dive,hex32"`
	AvailableCashFlow float64  `json:"available_cash_flow" validate:"required,gt=0,dec2"`
}

// Optimize produces the disbursement schedule for a batch of payables
// under a cash-flow ceiling. Pure computation: nothing is persisted.
// POST /payments/optimize
func (h *ScheduleHandler) Optimize(c echo.Context) error {
	var req optimizeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	budget := decimal.NewFromFloat(req.AvailableCashFlow).Round(2)
	sched, err := h.optimizer.OptimizeByIDs(c.Request().Context(), req.PayableIDs, budget)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, sched)
}
