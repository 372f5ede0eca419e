package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	payableDomain "accounts-payable-service/internal/domain/payable"
	"accounts-payable-service/pkg/id"
)

// PayableHandler covers the thin CRUD surface the workflow and optimizer
// need; the full payable ledger lives in the finance service.
type PayableHandler struct{ repo payableDomain.Repository }

func NewPayableHandler(repo payableDomain.Repository) *PayableHandler {
	return &PayableHandler{repo: repo}
}

type createPayableReq struct {
	SupplierID  int64   `json:"supplier_id" validate:"required,gt=0"`
	Description string  `json:"description" validate:"max=2000"`
	Category    string  `json:"category"    validate:"required,oneof=MATERIALS LABOR EQUIPMENT SUBCONTRACTOR PROFESSIONAL_SERVICES PERMITS INSURANCE EMERGENCY UTILITIES OTHER"`
	Priority    string  `json:"priority"    validate:"omitempty,oneof=CRITICAL HIGH MEDIUM LOW"`
	AmountDue   float64 `json:"amount_due"  validate:"required,gt=0,dec2"`
	// Canonical date `YYYY-MM-DD`
	DueDate string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

func (h *PayableHandler) CreatePayable(c echo.Context) error {
	var req createPayableReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	due, _ := time.Parse("2006-01-02", req.DueDate)

	p := &payableDomain.Payable{
		PayableID:   id.NewID32(),
		SupplierID:  req.SupplierID,
		Description: req.Description,
		Category:    payableDomain.Category(req.Category),
		Priority:    payableDomain.Priority(req.Priority),
		AmountDue:   decimal.NewFromFloat(req.AmountDue).Round(2),
		DueDate:     due.UTC(),
		Status:      payableDomain.StatusPending,
	}
	if err := h.repo.Create(c.Request().Context(), p); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PayableHandler) GetPayable(c echo.Context) error {
	payableID := c.Param("payable_id")
	if !reHex32.MatchString(payableID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payable_id path param"})
	}
	p, err := h.repo.GetByPayableID(c.Request().Context(), payableID)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, p)
}
