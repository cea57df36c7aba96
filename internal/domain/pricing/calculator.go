package pricing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ComponentKind string

const (
	ComponentSetup   ComponentKind = "setup"
	ComponentMonthly ComponentKind = "monthly"
)

// Component is one itemized charge of a line item. Negotiable components
// carry a zero Amount and must be quoted manually.
type Component struct {
	Code       string          `json:"code"`
	Kind       ComponentKind   `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	Negotiable bool            `json:"negotiable,omitempty"`
}

// LineItem is the priced result of one Configuration. It is never mutated;
// recalculating produces a new value.
type LineItem struct {
	ID                  string          `json:"id"`
	Family              Family          `json:"family"`
	Description         string          `json:"description"`
	SetupFee            decimal.Decimal `json:"setup_fee"`
	MonthlyFee          decimal.Decimal `json:"monthly_fee"`
	Quantity            int             `json:"quantity"`
	Components          []Component     `json:"components"`
	RequiresManualQuote bool            `json:"requires_manual_quote"`
	PriceTableVersion   int64           `json:"price_table_version"`
	Configuration       Configuration   `json:"configuration"`
}

// WithID returns a copy of the item carrying the given identifier.
func (li LineItem) WithID(id string) LineItem {
	li.ID = id
	return li
}

// ComponentAmount sums the components with the given code.
func (li LineItem) ComponentAmount(code string) decimal.Decimal {
	total := decimal.Zero
	for _, c := range li.Components {
		if c.Code == code {
			total = total.Add(c.Amount)
		}
	}
	return total
}

var lineItemNamespace = uuid.MustParse("8b0e4c53-3f0a-4c39-9d5e-2f7f7f3c1a10")

// Calculate prices a configuration against the given snapshot. It is a pure
// function of its arguments.
//
// A missing or invalid selection returns *IncompleteConfigurationError and no
// item. When a resolved price is "a combinar" the returned item is usable:
// it is flagged RequiresManualQuote and err is a *BracketUnpricedError.
func Calculate(cfg Configuration, table PriceTable) (LineItem, error) {
	if err := cfg.Validate(); err != nil {
		return LineItem{}, err
	}

	b := &itemBuilder{}
	var (
		description string
		quantity    = 1
		err         error
	)
	switch cfg.Family {
	case FamilyPABX:
		description, err = b.pabx(*cfg.PABX, table)
	case FamilySIP:
		description = b.sip(*cfg.SIP, table)
	case FamilyVM:
		description, quantity = b.vm(*cfg.VM, table)
	case FamilyLink:
		description = b.link(*cfg.Link, table)
	}
	if err != nil {
		return LineItem{}, err
	}

	item := LineItem{
		ID:                  contentID(cfg, table.Version),
		Family:              cfg.Family,
		Description:         description,
		SetupFee:            b.total(ComponentSetup),
		MonthlyFee:          b.total(ComponentMonthly),
		Quantity:            quantity,
		Components:          b.components,
		RequiresManualQuote: len(b.unpriced) > 0,
		PriceTableVersion:   table.Version,
		Configuration:       cfg,
	}
	if item.RequiresManualQuote {
		return item, &BracketUnpricedError{Family: cfg.Family, Components: b.unpriced}
	}
	return item, nil
}

type itemBuilder struct {
	components []Component
	unpriced   []string
}

func (b *itemBuilder) add(code string, kind ComponentKind, price Price, qty int64) {
	amount, ok := price.Amount()
	if !ok {
		b.negotiable(code, kind)
		return
	}
	b.components = append(b.components, Component{
		Code:   code,
		Kind:   kind,
		Amount: RoundMoney(amount.Mul(decimal.NewFromInt(qty))),
	})
}

func (b *itemBuilder) negotiable(code string, kind ComponentKind) {
	b.unpriced = append(b.unpriced, code)
	b.components = append(b.components, Component{Code: code, Kind: kind, Amount: decimal.Zero, Negotiable: true})
}

func (b *itemBuilder) total(kind ComponentKind) decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.components {
		if c.Kind == kind {
			total = total.Add(c.Amount)
		}
	}
	return total
}

func (b *itemBuilder) pabx(cfg PABXConfig, table PriceTable) (string, error) {
	n := int64(cfg.ExtensionCount)

	if cfg.Modality == ModalityPremium {
		tier, ok := table.LookupPremium(cfg.PremiumPlan, cfg.ContractPeriodMonths, cfg.ExtensionCount)
		if !ok {
			b.negotiable("extensions", ComponentMonthly)
		} else {
			unit := tier.WithoutEquipment
			if cfg.BillingType.WithEquipment() {
				unit = tier.WithEquipment
			}
			b.add("extensions", ComponentMonthly, unit, n)
		}
		if cfg.IncludeSetup {
			b.add("setup", ComponentSetup, table.Premium.SetupFee, 1)
		}
	} else {
		tier, ok := table.LookupPABX(cfg.ExtensionCount)
		if !ok {
			b.negotiable("extensions", ComponentMonthly)
		} else {
			b.add("extensions", ComponentMonthly, tier.MonthlyUnitPrice, n)
			b.add("hosting", ComponentMonthly, tier.HostingFee, 1)
			if cfg.IncludeDevices && cfg.DeviceQuantity > 0 {
				b.add("device_rental", ComponentMonthly, tier.DeviceRentalUnitPrice, int64(cfg.DeviceQuantity))
			}
			if cfg.IncludeSetup {
				b.add("setup", ComponentSetup, tier.SetupFee, 1)
			}
		}
	}

	if cfg.IncludeAI {
		price, ok := table.AIPlans[cfg.AIPlan]
		if !ok {
			return "", &IncompleteConfigurationError{Family: FamilyPABX, Fields: []string{"ai_plan"}}
		}
		b.add("ai_addon", ComponentMonthly, price, 1)
	}

	if cfg.Modality == ModalityPremium {
		return fmt.Sprintf("PABX Premium %s %d meses (%s) - %d ramais",
			titleCase(string(cfg.PremiumPlan)), cfg.ContractPeriodMonths, cfg.BillingType, cfg.ExtensionCount), nil
	}
	return fmt.Sprintf("PABX Standard - %d ramais", cfg.ExtensionCount), nil
}

func (b *itemBuilder) sip(cfg SIPConfig, table PriceTable) string {
	tier, ok := table.LookupSIP(cfg.Plan, cfg.Channels)
	if !ok {
		b.negotiable("channels", ComponentMonthly)
	} else {
		b.add("channels", ComponentMonthly, tier.MonthlyChannelPrice, int64(cfg.Channels))
		if cfg.IncludeSetup {
			b.add("setup", ComponentSetup, tier.SetupFee, 1)
		}
	}
	if cfg.DIDQuantity > 0 {
		b.add("did", ComponentMonthly, table.SIP.DIDUnitPrice, int64(cfg.DIDQuantity))
	}
	return fmt.Sprintf("SIP Trunk %s - %d canais", cfg.Plan, cfg.Channels)
}

func (b *itemBuilder) vm(cfg VMConfig, table PriceTable) (string, int) {
	quantity := cfg.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	b.add("vcpu", ComponentMonthly, table.VM.VCPUPrice, int64(cfg.VCPU))
	b.add("ram", ComponentMonthly, table.VM.RAMGBPrice, int64(cfg.RAMGB))
	if price, ok := table.VM.StorageGBPrice[cfg.StorageType]; ok {
		b.add("storage", ComponentMonthly, price, int64(cfg.StorageGB))
	} else {
		b.negotiable("storage", ComponentMonthly)
	}
	if cfg.BackupGB > 0 {
		b.add("backup", ComponentMonthly, table.VM.BackupGBPrice, int64(cfg.BackupGB))
	}
	if cfg.OperatingSystem == OSWindows {
		b.add("windows_license", ComponentMonthly, table.VM.WindowsLicense, 1)
	}
	// Setup is charged per machine; the aggregator does not multiply setup by quantity.
	if cfg.IncludeSetup {
		b.add("setup", ComponentSetup, table.VM.SetupFee, int64(quantity))
	}
	return fmt.Sprintf("VM %d vCPU / %d GB RAM / %d GB %s (%s)",
		cfg.VCPU, cfg.RAMGB, cfg.StorageGB, strings.ToUpper(string(cfg.StorageType)), cfg.OperatingSystem), quantity
}

func (b *itemBuilder) link(cfg LinkConfig, table PriceTable) string {
	tier, ok, exceeded := table.LookupLink(cfg.LinkType, cfg.SpeedMbps)
	switch {
	case !ok || exceeded:
		b.negotiable("bandwidth", ComponentMonthly)
		if cfg.IncludeInstallation {
			b.negotiable("setup", ComponentSetup)
		}
	default:
		price, found := tier.Monthly[cfg.ContractPeriodMonths]
		if !found {
			b.negotiable("bandwidth", ComponentMonthly)
		} else {
			b.add("bandwidth", ComponentMonthly, price, 1)
		}
		if cfg.IncludeInstallation {
			b.add("setup", ComponentSetup, tier.SetupFee, 1)
		}
	}
	if cfg.StaticIPQuantity > 0 {
		b.add("static_ip", ComponentMonthly, table.Links.StaticIPUnitPrice, int64(cfg.StaticIPQuantity))
	}
	return fmt.Sprintf("Link %s %d Mbps - %d meses", linkLabel(cfg.LinkType), cfg.SpeedMbps, cfg.ContractPeriodMonths)
}

func contentID(cfg Configuration, version int64) string {
	raw, err := json.Marshal(cfg)
	if err != nil {
		raw = []byte(fmt.Sprintf("%+v", cfg))
	}
	return uuid.NewSHA1(lineItemNamespace, append([]byte(fmt.Sprintf("%d|", version)), raw...)).String()
}

func linkLabel(t LinkType) string {
	switch t {
	case LinkFibra:
		return "Fibra"
	case LinkMAN:
		return "MAN"
	case LinkRadio:
		return "Rádio"
	}
	return string(t)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
