package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"accounts-payable-service/internal/usecase/workflow"
)

type ApprovalHandler struct{ engine *workflow.Engine }

func NewApprovalHandler(engine *workflow.Engine) *ApprovalHandler {
	return &ApprovalHandler{engine: engine}
}

// CreateWorkflow instantiates the approval chain for a payable.
// POST /payables/:payable_id/workflow
func (h *ApprovalHandler) CreateWorkflow(c echo.Context) error {
	payableID := c.Param("payable_id")
	if !reHex32.MatchString(payableID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payable_id path param"})
	}

	steps, err := h.engine.CreateWorkflow(c.Request().Context(), payableID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"payable_id": payableID,
		"steps":      steps,
	})
}

type decideReq struct {
	ApproverUserID int64  `json:"approver_user_id" validate:"required,gt=0"`
	Approve        *bool  `json:"approve"          validate:"required"`
	Comments       string `json:"comments"         validate:"max=500"`
}

// Decide records an approve/reject decision on a step.
// POST /approvals/:step_id/decision
func (h *ApprovalHandler) Decide(c echo.Context) error {
	stepID := c.Param("step_id")
	if !reHex32.MatchString(stepID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid step_id path param"})
	}
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.engine.Decide(c.Request().Context(), workflow.DecideInput{
		StepID:         stepID,
		ApproverUserID: req.ApproverUserID,
		Approve:        *req.Approve,
		Comments:       req.Comments,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type escalateReq struct {
	Reason string `json:"reason" validate:"required,max=400"`
}

// Escalate flags a pending step for attention.
// POST /approvals/:step_id/escalate
func (h *ApprovalHandler) Escalate(c echo.Context) error {
	stepID := c.Param("step_id")
	if !reHex32.MatchString(stepID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid step_id path param"})
	}
	var req escalateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.engine.Escalate(c.Request().Context(), stepID, req.Reason)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type sweepReq struct {
	ThresholdHours int `json:"threshold_hours" validate:"omitempty,gt=0"`
}

// Sweep runs the escalation check once. The periodic trigger lives with
// the caller (or the in-process sweeper), not in the engine.
// POST /approvals/escalations/sweep
func (h *ApprovalHandler) Sweep(c echo.Context) error {
	req := sweepReq{ThresholdHours: 24}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if req.ThresholdHours == 0 {
		req.ThresholdHours = 24
	}

	n, err := h.engine.CheckEscalations(c.Request().Context(), time.Now().UTC(),
		time.Duration(req.ThresholdHours)*time.Hour)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"escalated": n})
}

// GetStep returns a single approval step.
// GET /approvals/:step_id
func (h *ApprovalHandler) GetStep(c echo.Context) error {
	stepID := c.Param("step_id")
	if !reHex32.MatchString(stepID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid step_id path param"})
	}

	dto, err := h.engine.GetStep(c.Request().Context(), stepID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListSteps returns the ordered approval chain for a payable.
// GET /payables/:payable_id/approvals
func (h *ApprovalHandler) ListSteps(c echo.Context) error {
	payableID := c.Param("payable_id")
	if !reHex32.MatchString(payableID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payable_id path param"})
	}

	steps, err := h.engine.ListSteps(c.Request().Context(), payableID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"payable_id": payableID,
		"steps":      steps,
	})
}
