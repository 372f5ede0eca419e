package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	payableDomain "accounts-payable-service/internal/domain/payable"
	"accounts-payable-service/internal/testutil/payablemock"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

// -------- tests --------

func TestCreatePayable_Success(t *testing.T) {
	e := newEchoWithValidator()

	var created *payableDomain.Payable
	repo := &payablemock.Repo{
		CreateFn: func(ctx context.Context, p *payableDomain.Payable) error {
			created = p
			p.ID = 1
			return nil
		},
	}
	h := NewPayableHandler(repo)

	body := map[string]any{
		"supplier_id": 42,
		"description": "Concrete delivery, phase 2",
		"category":    "MATERIALS",
		"priority":    "HIGH",
		"amount_due":  12500.50,
		"due_date":    "2026-09-15",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/payables", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePayable(c); err != nil {
		t.Fatalf("CreatePayable error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201 (body=%s)", rec.Code, rec.Body.String())
	}
	if created == nil {
		t.Fatalf("repo.Create not called")
	}
	if created.Status != payableDomain.StatusPending {
		t.Fatalf("new payable status = %s, want pending", created.Status)
	}
	if len(created.PayableID) != 32 {
		t.Fatalf("public id not generated: %q", created.PayableID)
	}
	if created.AmountDue.StringFixed(2) != "12500.50" {
		t.Fatalf("amount = %s, want 12500.50", created.AmountDue)
	}

	var dto payableDomain.Payable
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.PayableID != created.PayableID {
		t.Fatalf("response id mismatch")
	}
}

func TestCreatePayable_ValidationFailures(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPayableHandler(&payablemock.Repo{})

	cases := []struct {
		name    string
		body    map[string]any
		field   string
		message string
	}{
		{
			"unknown category",
			map[string]any{"supplier_id": 1, "category": "GROCERIES", "amount_due": 10.0, "due_date": "2026-09-15"},
			"Category", "one of",
		},
		{
			"sub-cent amount",
			map[string]any{"supplier_id": 1, "category": "MATERIALS", "amount_due": 10.001, "due_date": "2026-09-15"},
			"AmountDue", "2 decimal places",
		},
		{
			"missing supplier",
			map[string]any{"category": "MATERIALS", "amount_due": 10.0, "due_date": "2026-09-15"},
			"SupplierID", "required",
		},
		{
			"bad date format",
			map[string]any{"supplier_id": 1, "category": "MATERIALS", "amount_due": 10.0, "due_date": "15/09/2026"},
			"DueDate", "datetime",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(stdhttp.MethodPost, "/payables", mustJSON(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := h.CreatePayable(c); err != nil {
				t.Fatalf("CreatePayable error: %v", err)
			}
			if rec.Code != stdhttp.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422 (body=%s)", rec.Code, rec.Body.String())
			}
			var er ErrorResponse
			_ = json.Unmarshal(rec.Body.Bytes(), &er)
			if !containsFieldMsg(er.Details, tc.field, tc.message) {
				t.Fatalf("expected %s/%s in details, got %+v", tc.field, tc.message, er.Details)
			}
		})
	}
}

func TestCreatePayable_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPayableHandler(&payablemock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/payables", strings.NewReader(`{"supplier_id":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePayable(c); err != nil {
		t.Fatalf("CreatePayable error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetPayable_Success(t *testing.T) {
	e := newEchoWithValidator()

	pid := strings.Repeat("a", 32)
	repo := &payablemock.Repo{
		GetByPayableIDFn: func(ctx context.Context, payableID string) (*payableDomain.Payable, error) {
			if payableID != pid {
				t.Fatalf("payableID not forwarded: %s", payableID)
			}
			return &payableDomain.Payable{ID: 1, PayableID: pid, SupplierID: 42}, nil
		},
	}
	h := NewPayableHandler(repo)

	req := httptest.NewRequest(stdhttp.MethodGet, "/payables/"+pid, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("payable_id")
	c.SetParamValues(pid)

	if err := h.GetPayable(c); err != nil {
		t.Fatalf("GetPayable error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var dto payableDomain.Payable
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.PayableID != pid || dto.SupplierID != 42 {
		t.Fatalf("unexpected payload: %+v", dto)
	}
}

func TestGetPayable_NotFound(t *testing.T) {
	e := newEchoWithValidator()

	repo := &payablemock.Repo{
		GetByPayableIDFn: func(ctx context.Context, payableID string) (*payableDomain.Payable, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := NewPayableHandler(repo)

	pid := strings.Repeat("b", 32)
	req := httptest.NewRequest(stdhttp.MethodGet, "/payables/"+pid, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("payable_id")
	c.SetParamValues(pid)

	if err := h.GetPayable(c); err != nil {
		t.Fatalf("GetPayable error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetPayable_BadPathParam(t *testing.T) {
	e := newEchoWithValidator()
	h := NewPayableHandler(&payablemock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/payables/not-hex", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("payable_id")
	c.SetParamValues("not-hex")

	if err := h.GetPayable(c); err != nil {
		t.Fatalf("GetPayable error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "invalid payable_id path param" {
		t.Fatalf("error = %q", er.Error)
	}
}
