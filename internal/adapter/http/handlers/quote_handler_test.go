package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"cotador_telecom/internal/adapter/http/handlers/mocks"
	"cotador_telecom/internal/domain/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_Calculate(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newRouter(t, &seller)
		r.POST("/v1/quotes/calculate", NewQuoteHandler(uc).Calculate)
		return r, uc
	}

	t.Run("invalid json", func(t *testing.T) {
		r, _ := setup(t)
		w := serve(r, http.MethodPost, "/v1/quotes/calculate", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing family", func(t *testing.T) {
		r, _ := setup(t)
		w := serve(r, http.MethodPost, "/v1/quotes/calculate", `{"pabx":{"extension_count":10}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("incomplete configuration lists fields", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Calculate(gomock.Any(), gomock.Any()).
			Return(pricing.LineItem{}, &pricing.IncompleteConfigurationError{Family: pricing.FamilyPABX, Fields: []string{"modality", "extension_count"}})

		w := serve(r, http.MethodPost, "/v1/quotes/calculate", `{"family":"pabx","pabx":{}}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Code    string `json:"code"`
			Details struct {
				Fields []string `json:"fields"`
			} `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "INCOMPLETE_CONFIGURATION" || len(body.Details.Fields) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := setup(t)
		cfg := pricing.Configuration{Family: pricing.FamilyPABX, PABX: &pricing.PABXConfig{
			Modality: pricing.ModalityStandard, ExtensionCount: 32, IncludeSetup: true, IncludeDevices: true, DeviceQuantity: 5,
		}}
		item, err := pricing.Calculate(cfg, pricing.DefaultPriceTable())
		if err != nil {
			t.Fatalf("calculate: %v", err)
		}
		uc.EXPECT().Calculate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got pricing.Configuration) (pricing.LineItem, error) {
				if got.Family != pricing.FamilyPABX || got.PABX == nil || got.PABX.ExtensionCount != 32 {
					t.Fatalf("unexpected configuration: %+v", got)
				}
				return item, nil
			})

		w := serve(r, http.MethodPost, "/v1/quotes/calculate",
			`{"family":"PABX","pabx":{"modality":"standard","extension_count":32,"include_setup":true,"include_devices":true,"device_quantity":5}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["monthly_fee"] != "1324.00" || body["setup_fee"] != "3000.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
