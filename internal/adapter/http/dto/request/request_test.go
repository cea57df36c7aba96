package request

import (
	"testing"

	"cotador_telecom/internal/domain/pricing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	if err := Register(v); err != nil {
		t.Fatalf("register: %v", err)
	}
	return v
}

func TestPercentValidator(t *testing.T) {
	v := newValidator(t)
	cases := []struct {
		pct  string
		ok   bool
		name string
	}{
		{"10", true, "regular"},
		{"100", true, "upper bound"},
		{"0.5", true, "fraction"},
		{"0", false, "zero"},
		{"-5", false, "negative"},
		{"100.01", false, "above 100"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := DirectorDiscountRequest{DiscountPercent: decimal.RequireFromString(tc.pct), Reason: "r"}
			err := v.Struct(req)
			if tc.ok && err != nil {
				t.Fatalf("expected %s to be accepted: %v", tc.pct, err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected %s to be rejected", tc.pct)
			}
		})
	}
}

func TestProposalRequestValidation(t *testing.T) {
	v := newValidator(t)
	valid := ProposalRequest{
		Client:         ClientRequest{Name: "ACME", Document: "12.345.678/0001-90", Email: "compras@acme.com"},
		Configurations: []ConfigurationRequest{{Family: "pabx"}},
	}
	if err := v.Struct(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	badDoc := valid
	badDoc.Client.Document = "123"
	if err := v.Struct(badDoc); err == nil {
		t.Fatalf("expected document validation error")
	}

	noItems := valid
	noItems.Configurations = nil
	if err := v.Struct(noItems); err == nil {
		t.Fatalf("expected configurations validation error")
	}

	noFamily := valid
	noFamily.Configurations = []ConfigurationRequest{{}}
	if err := v.Struct(noFamily); err == nil {
		t.Fatalf("expected family validation error")
	}
}

func TestProposalRequest_ToCommand(t *testing.T) {
	req := ProposalRequest{
		Title:  "Matriz",
		Client: ClientRequest{Name: "ACME", Document: "123.456.789-09", Email: " a@b.c "},
		Configurations: []ConfigurationRequest{
			{Family: " PABX ", PABX: &PABXRequest{Modality: "Standard", ExtensionCount: 32, IncludeAI: true, AIPlan: "20k"}},
			{Family: "link", Link: &LinkRequest{LinkType: "Fibra", SpeedMbps: 100, ContractPeriodMonths: 36}},
		},
	}

	cmd := req.ToCommand()
	if cmd.Client.Document != "12345678909" || cmd.Client.Email != "a@b.c" {
		t.Fatalf("unexpected client: %+v", cmd.Client)
	}
	if len(cmd.Configurations) != 2 {
		t.Fatalf("expected 2 configurations, got %d", len(cmd.Configurations))
	}
	pabx := cmd.Configurations[0]
	if pabx.Family != pricing.FamilyPABX || pabx.PABX.Modality != pricing.ModalityStandard || pabx.PABX.AIPlan != "20K" {
		t.Fatalf("unexpected pabx mapping: %+v %+v", pabx, pabx.PABX)
	}
	if link := cmd.Configurations[1].Link; link == nil || link.LinkType != pricing.LinkFibra {
		t.Fatalf("unexpected link mapping: %+v", link)
	}
}
