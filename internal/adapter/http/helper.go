package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"accounts-payable-service/internal/domain/approval"
	"accounts-payable-service/internal/domain/payable"
	"accounts-payable-service/internal/usecase/workflow"
)

// writeDomainError maps domain sentinels to HTTP codes. Anything
// unrecognized is a 500 with a generic body.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, payable.ErrNotFound), errors.Is(err, approval.ErrStepNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, approval.ErrNotAuthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, approval.ErrConflict), errors.Is(err, workflow.ErrWorkflowExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, payable.ErrInvalidAmount), errors.Is(err, workflow.ErrMissingContext):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
