package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"cotador_telecom/internal/domain/entities"
	"cotador_telecom/internal/usecase/interfaces"
	mock_interfaces "cotador_telecom/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type paymentFixture struct {
	proposals *mock_interfaces.MockIProposalRepository
	repo      *mock_interfaces.MockISetupPaymentRepository
	gateway   *mock_interfaces.MockIPaymentGateway
}

func newPaymentFixture(t *testing.T, opts SetupPaymentOptions) (paymentFixture, *SetupPaymentUseCase) {
	ctrl := gomock.NewController(t)
	f := paymentFixture{
		proposals: mock_interfaces.NewMockIProposalRepository(ctrl),
		repo:      mock_interfaces.NewMockISetupPaymentRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	proposals := NewProposalUseCase(f.proposals, nil, nil)
	return f, NewSetupPaymentUseCase(f.repo, proposals, f.gateway, opts)
}

func TestSetupPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty proposal id", func(t *testing.T) {
		uc := NewSetupPaymentUseCase(nil, nil, nil, SetupPaymentOptions{})
		_, err := uc.CreateAndApprove(context.Background(), director, " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewSetupPaymentUseCase(nil, nil, nil, SetupPaymentOptions{})
		_, err := uc.CreateAndApprove(context.Background(), director, "p-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewSetupPaymentUseCase(nil, nil, nil, SetupPaymentOptions{})
		_, err := uc.CreateAndApprove(context.Background(), director, "p-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("proposal not approved", func(t *testing.T) {
		f, uc := newPaymentFixture(t, SetupPaymentOptions{})
		f.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(salesUser.UserID, entities.ProposalStatusPendente), nil)

		_, err := uc.CreateAndApprove(context.Background(), director, "p-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrProposalNotApproved) {
			t.Fatalf("expected ErrProposalNotApproved, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		f, uc := newPaymentFixture(t, SetupPaymentOptions{})
		f.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(salesUser.UserID, entities.ProposalStatusAprovada), nil)

		_, err := uc.CreateAndApprove(context.Background(), director, "p-1", json.RawMessage(`{"payer":{"email":"a@b.c"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer outside sandbox", func(t *testing.T) {
		f, uc := newPaymentFixture(t, SetupPaymentOptions{})
		f.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(salesUser.UserID, entities.ProposalStatusAprovada), nil)

		_, err := uc.CreateAndApprove(context.Background(), director, "p-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestSetupPaymentUseCase_CreateAndApprove_Success(t *testing.T) {
	f, uc := newPaymentFixture(t, SetupPaymentOptions{Sandbox: true})
	f.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(salesUser.UserID, entities.ProposalStatusAprovada), nil)
	f.repo.EXPECT().ListByProposalID(gomock.Any(), "p-1").Return([]entities.SetupPayment{
		{ID: "mp-0", ProposalID: "p-1", Status: entities.PaymentStatusNegado},
	}, nil)
	f.repo.EXPECT().ClaimCharge(gomock.Any(), "p-1").Return(nil)
	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("payload is not json: %v", err)
			}
			if req["transaction_amount"] != 3000.0 {
				t.Fatalf("expected amount from proposal setup total, got %v", req["transaction_amount"])
			}
			if req["external_reference"] != "p-1" {
				t.Fatalf("expected external_reference p-1, got %v", req["external_reference"])
			}
			payer := req["payer"].(map[string]any)
			if payer["email"] != "test_user_br@testuser.com" {
				t.Fatalf("expected sandbox payer email, got %v", payer["email"])
			}
			return "mp-1", "approved", json.RawMessage(`{"id":1,"status":"approved"}`), nil
		},
	)
	f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.SetupPayment{})).DoAndReturn(
		func(_ context.Context, p entities.SetupPayment) (entities.SetupPayment, error) { return p, nil },
	)

	// transaction_amount in the client payload is ignored.
	got, err := uc.CreateAndApprove(context.Background(), director, "p-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "mp-1" || got.Status != entities.PaymentStatusAprovado || !got.Amount.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("unexpected payment: %+v", got)
	}
	if got.MPPayload["status"] != "approved" {
		t.Fatalf("expected parsed provider payload, got %v", got.MPPayload)
	}
}

func TestSetupPaymentUseCase_CreateAndApprove_AlreadyCharged(t *testing.T) {
	for _, status := range []entities.PaymentStatus{entities.PaymentStatusAprovado, entities.PaymentStatusPendente} {
		t.Run(string(status), func(t *testing.T) {
			f, uc := newPaymentFixture(t, SetupPaymentOptions{MockMode: true})
			f.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(salesUser.UserID, entities.ProposalStatusAprovada), nil)
			f.repo.EXPECT().ListByProposalID(gomock.Any(), "p-1").Return([]entities.SetupPayment{
				{ID: "mp-1", ProposalID: "p-1", Amount: decimal.NewFromInt(3000), Status: status},
			}, nil)
			f.repo.EXPECT().ClaimCharge(gomock.Any(), gomock.Any()).Times(0)
			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)
			f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			_, err := uc.CreateAndApprove(context.Background(), director, "p-1", json.RawMessage(`{}`))
			if !errors.Is(err, ErrSetupAlreadyPaid) {
				t.Fatalf("expected ErrSetupAlreadyPaid, got %v", err)
			}
		})
	}
}

func TestSetupPaymentUseCase_CreateAndApprove_ConcurrentCharge(t *testing.T) {
	f, uc := newPaymentFixture(t, SetupPaymentOptions{MockMode: true})
	f.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(salesUser.UserID, entities.ProposalStatusAprovada), nil)
	// The other request has claimed the charge but not yet stored its payment.
	f.repo.EXPECT().ListByProposalID(gomock.Any(), "p-1").Return(nil, nil)
	f.repo.EXPECT().ClaimCharge(gomock.Any(), "p-1").Return(fmt.Errorf("proposal p-1: %w", interfaces.ErrChargeInProgress))
	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	f.repo.EXPECT().ReleaseCharge(gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.CreateAndApprove(context.Background(), director, "p-1", json.RawMessage(`{}`))
	if !errors.Is(err, ErrSetupAlreadyPaid) {
		t.Fatalf("expected ErrSetupAlreadyPaid, got %v", err)
	}
}

func TestSetupPaymentUseCase_CreateAndApprove_RejectedReleasesClaim(t *testing.T) {
	f, uc := newPaymentFixture(t, SetupPaymentOptions{MockMode: true})
	f.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(salesUser.UserID, entities.ProposalStatusAprovada), nil)
	f.repo.EXPECT().ListByProposalID(gomock.Any(), "p-1").Return(nil, nil)
	f.repo.EXPECT().ClaimCharge(gomock.Any(), "p-1").Return(nil)
	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "rejected", json.RawMessage(`{"status":"rejected"}`), nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.SetupPayment) (entities.SetupPayment, error) { return p, nil },
	)
	f.repo.EXPECT().ReleaseCharge(gomock.Any(), "p-1").Return(nil)

	got, err := uc.CreateAndApprove(context.Background(), director, "p-1", json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.PaymentStatusNegado {
		t.Fatalf("expected negado, got %s", got.Status)
	}
}

func TestSetupPaymentUseCase_GatewayErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"bad request", errors.New(`{"error":"bad_request","status":400}`), ErrPaymentGatewayBadRequest},
		{"unauthorized", errors.New(`{"error":"unauthorized","status":401}`), ErrPaymentGatewayUnauthorized},
		{"invalid users", errors.New(`invalid users involved`), ErrPaymentGatewayInvalidUsers},
		{"customer not found", errors.New(`{"code":2002}`), ErrPaymentGatewayCustomerNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, uc := newPaymentFixture(t, SetupPaymentOptions{})
			f.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(salesUser.UserID, entities.ProposalStatusAprovada), nil)
			f.repo.EXPECT().ListByProposalID(gomock.Any(), "p-1").Return(nil, nil)
			f.repo.EXPECT().ClaimCharge(gomock.Any(), "p-1").Return(nil)
			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)
			f.repo.EXPECT().ReleaseCharge(gomock.Any(), "p-1").Return(nil)

			_, err := uc.CreateAndApprove(context.Background(), director, "p-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"a@b.c"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSetupPaymentUseCase_ListAndGet(t *testing.T) {
	t.Run("list newest first", func(t *testing.T) {
		f, uc := newPaymentFixture(t, SetupPaymentOptions{})
		f.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(salesUser.UserID, entities.ProposalStatusAprovada), nil)
		base := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
		f.repo.EXPECT().ListByProposalID(gomock.Any(), "p-1").Return([]entities.SetupPayment{
			{ID: "old", Date: base},
			{ID: "new", Date: base.Add(time.Hour)},
		}, nil)

		out, err := uc.ListByProposalID(context.Background(), salesUser, "p-1")
		if err != nil || len(out) != 2 || out[0].ID != "new" {
			t.Fatalf("unexpected list: %+v err=%v", out, err)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		f, uc := newPaymentFixture(t, SetupPaymentOptions{})
		f.repo.EXPECT().GetByID(gomock.Any(), "mp-9").Return(entities.SetupPayment{}, nil)

		if _, err := uc.GetByID(context.Background(), "mp-9"); !errors.Is(err, ErrSetupPaymentNotFound) {
			t.Fatalf("expected ErrSetupPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentStatusFromProvider(t *testing.T) {
	if paymentStatusFromProvider("approved") != entities.PaymentStatusAprovado {
		t.Fatalf("expected aprovado")
	}
	if paymentStatusFromProvider("rejected") != entities.PaymentStatusNegado {
		t.Fatalf("expected negado")
	}
	if paymentStatusFromProvider("in_process") != entities.PaymentStatusPendente {
		t.Fatalf("expected pendente")
	}
}
