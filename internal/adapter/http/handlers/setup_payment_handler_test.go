package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cotador_telecom/internal/adapter/http/handlers/mocks"
	"cotador_telecom/internal/domain/entities"
	"cotador_telecom/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func paymentRouter(t *testing.T, mockMode bool) (*gin.Engine, *mocks.MockISetupPaymentUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISetupPaymentUseCase(ctrl)
	h := NewSetupPaymentHandler(uc, mockMode)

	r := newRouter(t, &admin)
	r.POST("/v1/proposals/:id/setup-payment", h.Create)
	r.GET("/v1/proposals/:id/setup-payment", h.GetLatest)
	return r, uc
}

func TestSetupPaymentHandler_Create(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := paymentRouter(t, false)
		w := serve(r, http.MethodPost, "/v1/proposals/p-1/setup-payment", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty", func(t *testing.T) {
		r, uc := paymentRouter(t, true)
		uc.EXPECT().CreateAndApprove(gomock.Any(), admin, "p-1", json.RawMessage("{}")).
			Return(entities.SetupPayment{ID: "mock-1", ProposalID: "p-1", Status: entities.PaymentStatusAprovado}, nil)

		w := serve(r, http.MethodPost, "/v1/proposals/p-1/setup-payment", "{")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("proposal not approved", func(t *testing.T) {
		r, uc := paymentRouter(t, false)
		uc.EXPECT().CreateAndApprove(gomock.Any(), admin, "p-1", gomock.Any()).Return(entities.SetupPayment{}, usecase.ErrProposalNotApproved)

		w := serve(r, http.MethodPost, "/v1/proposals/p-1/setup-payment", `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := paymentRouter(t, false)
		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), admin, "p-1", gomock.Any()).Return(entities.SetupPayment{
			ID: "pay-1", ProposalID: "p-1", Amount: decimal.NewFromInt(3000), Date: now, Status: entities.PaymentStatusAprovado,
		}, nil)

		w := serve(r, http.MethodPost, "/v1/proposals/p-1/setup-payment", `{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["amount"] != "3000.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSetupPaymentHandler_GetLatest(t *testing.T) {
	t.Run("list error", func(t *testing.T) {
		r, uc := paymentRouter(t, false)
		uc.EXPECT().ListByProposalID(gomock.Any(), admin, "p-1").Return(nil, usecase.ErrProposalNotFound)

		w := serve(r, http.MethodGet, "/v1/proposals/p-1/setup-payment", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("no payments", func(t *testing.T) {
		r, uc := paymentRouter(t, false)
		uc.EXPECT().ListByProposalID(gomock.Any(), admin, "p-1").Return([]entities.SetupPayment{}, nil)

		w := serve(r, http.MethodGet, "/v1/proposals/p-1/setup-payment", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns latest", func(t *testing.T) {
		r, uc := paymentRouter(t, false)
		old := entities.SetupPayment{ID: "old", ProposalID: "p-1", Date: time.Now().Add(-time.Hour), Status: entities.PaymentStatusNegado}
		latest := entities.SetupPayment{ID: "latest", ProposalID: "p-1", Date: time.Now(), Status: entities.PaymentStatusAprovado}
		uc.EXPECT().ListByProposalID(gomock.Any(), admin, "p-1").Return([]entities.SetupPayment{old, latest}, nil)

		w := serve(r, http.MethodGet, "/v1/proposals/p-1/setup-payment", "")
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["payment_id"] != "latest" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	broken := makeCtx("{}")
	broken.Request.Body = failingReadCloser{}
	if _, err := readMPPayload(broken); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readMPPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readMPPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", payload, err)
	}

	if _, err := readMPPayload(makeCtx(`{"mp_payload":null}`)); err == nil {
		t.Fatalf("expected mp_payload empty error")
	}

	payload, err = readMPPayload(makeCtx(`{"mp_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readMPPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}
