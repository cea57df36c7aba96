package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pabxStandard(n int) Configuration {
	return Configuration{Family: FamilyPABX, PABX: &PABXConfig{Modality: ModalityStandard, ExtensionCount: n}}
}

func TestResolveBracket(t *testing.T) {
	tiers := DefaultPriceTable().PABX

	cases := []struct {
		n    int
		want int
	}{
		{1, 10}, {10, 10}, {11, 20}, {20, 20}, {21, 30}, {32, 50}, {50, 50},
		{51, 100}, {101, 500}, {501, 1000}, {1000, 1000}, {5000, 1000},
	}
	for _, tc := range cases {
		tier, ok := ResolveBracket(tiers, tc.n)
		require.True(t, ok)
		assert.Equalf(t, tc.want, tier.UpTo, "n=%d", tc.n)
	}

	_, ok := ResolveBracket([]PABXTier{}, 3)
	assert.False(t, ok)
}

func TestResolveBracket_OpenEndedTier(t *testing.T) {
	table := DefaultPriceTable()
	tier, ok := table.LookupPremium(PremiumPlanEssencial, 24, 750)
	require.True(t, ok)
	assert.Equal(t, Unbounded, tier.UpTo)

	tier, ok = table.LookupPremium(PremiumPlanEssencial, 24, 2)
	require.True(t, ok)
	assert.Equal(t, 9, tier.UpTo)
}

func TestCalculate_StandardPABXScenario(t *testing.T) {
	cfg := Configuration{Family: FamilyPABX, PABX: &PABXConfig{
		Modality:       ModalityStandard,
		ExtensionCount: 32,
		IncludeSetup:   true,
		IncludeDevices: true,
		DeviceQuantity: 5,
	}}

	item, err := Calculate(cfg, DefaultPriceTable())
	require.NoError(t, err)

	base := item.ComponentAmount("extensions").Add(item.ComponentAmount("hosting"))
	assert.Equal(t, "1164.00", base.StringFixed(2))
	assert.Equal(t, "160.00", item.ComponentAmount("device_rental").StringFixed(2))
	assert.Equal(t, "3000.00", item.SetupFee.StringFixed(2))
	assert.Equal(t, "1324.00", item.MonthlyFee.StringFixed(2))
	assert.Equal(t, 1, item.Quantity)
	assert.False(t, item.RequiresManualQuote)
	assert.Equal(t, "PABX Standard - 32 ramais", item.Description)
}

func TestCalculate_IsDeterministic(t *testing.T) {
	cfg := Configuration{Family: FamilyPABX, PABX: &PABXConfig{
		Modality: ModalityStandard, ExtensionCount: 18, IncludeSetup: true, IncludeAI: true, AIPlan: "40K",
	}}
	table := DefaultPriceTable()

	first, err := Calculate(cfg, table)
	require.NoError(t, err)
	second, err := Calculate(cfg, table)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first.ID)
}

func TestCalculate_StandardMonthlyFeeNeverDecreases(t *testing.T) {
	table := DefaultPriceTable()
	prev, err := Calculate(pabxStandard(1), table)
	require.NoError(t, err)

	for n := 2; n <= 100; n++ {
		item, err := Calculate(pabxStandard(n), table)
		require.NoError(t, err, "n=%d", n)
		assert.Truef(t, item.MonthlyFee.GreaterThanOrEqual(prev.MonthlyFee),
			"monthly fee dropped from %s to %s at n=%d", prev.MonthlyFee, item.MonthlyFee, n)
		prev = item
	}
}

func TestCalculate_PremiumRequiresAllSelections(t *testing.T) {
	cfg := Configuration{Family: FamilyPABX, PABX: &PABXConfig{
		Modality:       ModalityPremium,
		ExtensionCount: 40,
		BillingType:    BillingIlimitadoSemAparelho,
	}}

	item, err := Calculate(cfg, DefaultPriceTable())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompleteConfiguration))
	assert.Equal(t, LineItem{}, item)

	var incomplete *IncompleteConfigurationError
	require.True(t, errors.As(err, &incomplete))
	assert.ElementsMatch(t, []string{"premium_plan", "contract_period_months"}, incomplete.Fields)
}

func TestCalculate_PremiumWithEquipment(t *testing.T) {
	cfg := Configuration{Family: FamilyPABX, PABX: &PABXConfig{
		Modality:             ModalityPremium,
		ExtensionCount:       40,
		IncludeSetup:         true,
		IncludeDevices:       true,
		DeviceQuantity:       40,
		PremiumPlan:          PremiumPlanProfessional,
		BillingType:          BillingTarifadoComAparelho,
		ContractPeriodMonths: 36,
	}}

	item, err := Calculate(cfg, DefaultPriceTable())
	require.NoError(t, err)
	assert.Equal(t, "2520.00", item.MonthlyFee.StringFixed(2))
	assert.Equal(t, "2500.00", item.SetupFee.StringFixed(2))
	assert.True(t, item.ComponentAmount("device_rental").IsZero())

	cfg.PABX.BillingType = BillingTarifadoSemAparelho
	item, err = Calculate(cfg, DefaultPriceTable())
	require.NoError(t, err)
	assert.Equal(t, "2120.00", item.MonthlyFee.StringFixed(2))
}

func TestCalculate_NegotiableBracketIsFlagged(t *testing.T) {
	cfg := pabxStandard(350)
	cfg.PABX.IncludeSetup = true

	item, err := Calculate(cfg, DefaultPriceTable())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBracketUnpriced))
	assert.True(t, item.RequiresManualQuote)
	assert.Equal(t, FamilyPABX, item.Family)
	assert.True(t, item.MonthlyFee.IsZero())

	var unpriced *BracketUnpricedError
	require.True(t, errors.As(err, &unpriced))
	assert.Contains(t, unpriced.Components, "extensions")
	assert.Contains(t, unpriced.Components, "setup")
}

func TestCalculate_ZeroPriceIsNotNegotiable(t *testing.T) {
	table := DefaultPriceTable()
	table.PABX[0].HostingFee = FixedInt(0)

	item, err := Calculate(pabxStandard(5), table)
	require.NoError(t, err)
	assert.False(t, item.RequiresManualQuote)
	assert.Equal(t, "150.00", item.MonthlyFee.StringFixed(2))
}

func TestCalculate_UnknownAIPlan(t *testing.T) {
	cfg := pabxStandard(5)
	cfg.PABX.IncludeAI = true
	cfg.PABX.AIPlan = "999K"

	_, err := Calculate(cfg, DefaultPriceTable())
	assert.True(t, errors.Is(err, ErrIncompleteConfiguration))
}

func TestCalculate_SIP(t *testing.T) {
	cfg := Configuration{Family: FamilySIP, SIP: &SIPConfig{Plan: SIPPlanIlimitado, Channels: 10, IncludeSetup: true, DIDQuantity: 5}}

	item, err := Calculate(cfg, DefaultPriceTable())
	require.NoError(t, err)
	assert.Equal(t, "600.00", item.MonthlyFee.StringFixed(2))
	assert.Equal(t, "700.00", item.SetupFee.StringFixed(2))
}

func TestCalculate_VMChargesSetupPerMachine(t *testing.T) {
	cfg := Configuration{Family: FamilyVM, VM: &VMConfig{
		VCPU: 4, RAMGB: 8, StorageGB: 100, StorageType: StorageSSD,
		OperatingSystem: OSWindows, BackupGB: 50, IncludeSetup: true, Quantity: 2,
	}}

	item, err := Calculate(cfg, DefaultPriceTable())
	require.NoError(t, err)
	assert.Equal(t, "448.50", item.MonthlyFee.StringFixed(2))
	assert.Equal(t, "400.00", item.SetupFee.StringFixed(2))
	assert.Equal(t, 2, item.Quantity)

	totals := Aggregate([]LineItem{item})
	assert.Equal(t, "897.00", totals.TotalMonthly.StringFixed(2))
	assert.Equal(t, "400.00", totals.TotalSetup.StringFixed(2))
}

func TestCalculate_Links(t *testing.T) {
	table := DefaultPriceTable()

	fiber := Configuration{Family: FamilyLink, Link: &LinkConfig{
		LinkType: LinkFibra, SpeedMbps: 300, ContractPeriodMonths: 24, IncludeInstallation: true, StaticIPQuantity: 2,
	}}
	item, err := Calculate(fiber, table)
	require.NoError(t, err)
	assert.Equal(t, "1200.00", item.MonthlyFee.StringFixed(2))
	assert.Equal(t, "1000.00", item.SetupFee.StringFixed(2))

	radio := Configuration{Family: FamilyLink, Link: &LinkConfig{LinkType: LinkRadio, SpeedMbps: 200, ContractPeriodMonths: 12}}
	item, err = Calculate(radio, table)
	assert.True(t, errors.Is(err, ErrBracketUnpriced))
	assert.True(t, item.RequiresManualQuote)
}

func TestConfiguration_ValidateMismatchedPayload(t *testing.T) {
	cfg := Configuration{Family: FamilySIP, PABX: &PABXConfig{Modality: ModalityStandard, ExtensionCount: 3}}

	err := cfg.Validate()
	var incomplete *IncompleteConfigurationError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, []string{"sip"}, incomplete.Fields)
}

func TestConfiguration_ValidateRejectsExtraPayloads(t *testing.T) {
	cfg := pabxStandard(5)
	cfg.SIP = &SIPConfig{Plan: SIPPlanTarifado, Channels: 3}
	cfg.Link = &LinkConfig{LinkType: LinkFibra, SpeedMbps: 100, ContractPeriodMonths: 12}

	err := cfg.Validate()
	var incomplete *IncompleteConfigurationError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, FamilyPABX, incomplete.Family)
	assert.Equal(t, []string{"sip", "link"}, incomplete.Fields)

	_, err = Calculate(cfg, DefaultPriceTable())
	assert.True(t, errors.Is(err, ErrIncompleteConfiguration))
}
