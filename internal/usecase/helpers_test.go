package usecase

import (
	"time"

	"cotador_telecom/internal/domain/authz"
	"cotador_telecom/internal/domain/entities"
	"cotador_telecom/internal/domain/negotiation"
	"cotador_telecom/internal/domain/pricing"
	mock_interfaces "cotador_telecom/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	salesUser = authz.Principal{UserID: "u-1", Role: authz.RoleUser, Name: "Vendedor", Email: "vendedor@example.com"}
	otherUser = authz.Principal{UserID: "u-2", Role: authz.RoleUser}
	director  = authz.Principal{UserID: "d-1", Role: authz.RoleDirector}
	admin     = authz.Principal{UserID: "a-1", Role: authz.RoleAdmin}
)

// seedPriceTables returns a price table use case that always resolves to the
// built-in seed table.
func seedPriceTables(ctrl *gomock.Controller) *PriceTableUseCase {
	repo := mock_interfaces.NewMockIPriceTableRepository(ctrl)
	repo.EXPECT().Latest(gomock.Any()).Return(pricing.PriceTable{}, false, nil).AnyTimes()
	return NewPriceTableUseCase(repo, nil)
}

func pabx32() pricing.Configuration {
	return pricing.Configuration{Family: pricing.FamilyPABX, PABX: &pricing.PABXConfig{
		Modality:       pricing.ModalityStandard,
		ExtensionCount: 32,
		IncludeSetup:   true,
		IncludeDevices: true,
		DeviceQuantity: 5,
	}}
}

// storedProposal prices the 32-extension PABX scenario (R$ 1.324,00/month)
// the way Create would have stored it.
func storedProposal(owner string, status entities.ProposalStatus) entities.Proposal {
	item, err := pricing.Calculate(pabx32(), pricing.DefaultPriceTable())
	if err != nil {
		panic(err)
	}
	neg, _ := negotiation.New(item.MonthlyFee)
	neg.Finalize()
	now := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)
	return entities.Proposal{
		ID:          "p-1",
		Number:      "PROP-000001",
		Client:      entities.ClientInfo{Name: "ACME Telecom"},
		LineItems:   []pricing.LineItem{item},
		Negotiation: neg,
		Status:      status,
		CreatedBy:   owner,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
