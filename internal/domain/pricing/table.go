package pricing

import (
	"fmt"
	"time"
)

// PriceTable is an immutable, versioned snapshot of every price used by the
// calculator. Admin edits publish a new version; calculations receive the
// snapshot explicitly.
type PriceTable struct {
	Version     int64            `json:"version"`
	EffectiveAt time.Time        `json:"effective_at"`
	UpdatedBy   string           `json:"updated_by,omitempty"`
	PABX        []PABXTier       `json:"pabx_standard"`
	Premium     PremiumTable     `json:"pabx_premium"`
	AIPlans     map[AIPlan]Price `json:"ai_plans"`
	SIP         SIPTable         `json:"sip"`
	VM          VMTable          `json:"vm"`
	Links       LinkTable        `json:"links"`
}

// PABXTier is a standard-modality bracket keyed by extension count.
type PABXTier struct {
	UpTo                  int   `json:"up_to"`
	SetupFee              Price `json:"setup_fee"`
	MonthlyUnitPrice      Price `json:"monthly_unit_price"`
	HostingFee            Price `json:"hosting_fee"`
	DeviceRentalUnitPrice Price `json:"device_rental_unit_price"`
}

func (t PABXTier) UpperBound() int { return t.UpTo }

type PremiumTable struct {
	SetupFee  Price             `json:"setup_fee"`
	Schedules []PremiumSchedule `json:"schedules"`
}

type PremiumSchedule struct {
	Plan                 PremiumPlan   `json:"plan"`
	ContractPeriodMonths int           `json:"contract_period_months"`
	Tiers                []PremiumTier `json:"tiers"`
}

type PremiumTier struct {
	UpTo             int   `json:"up_to"`
	WithEquipment    Price `json:"with_equipment"`
	WithoutEquipment Price `json:"without_equipment"`
}

func (t PremiumTier) UpperBound() int { return t.UpTo }

type SIPTable struct {
	DIDUnitPrice Price         `json:"did_unit_price"`
	Schedules    []SIPSchedule `json:"schedules"`
}

type SIPSchedule struct {
	Plan  SIPPlan   `json:"plan"`
	Tiers []SIPTier `json:"tiers"`
}

type SIPTier struct {
	UpTo                int   `json:"up_to"`
	SetupFee            Price `json:"setup_fee"`
	MonthlyChannelPrice Price `json:"monthly_channel_price"`
}

func (t SIPTier) UpperBound() int { return t.UpTo }

type VMTable struct {
	SetupFee       Price                 `json:"setup_fee"`
	VCPUPrice      Price                 `json:"vcpu_price"`
	RAMGBPrice     Price                 `json:"ram_gb_price"`
	StorageGBPrice map[StorageType]Price `json:"storage_gb_price"`
	BackupGBPrice  Price                 `json:"backup_gb_price"`
	WindowsLicense Price                 `json:"windows_license"`
}

type LinkTable struct {
	StaticIPUnitPrice Price          `json:"static_ip_unit_price"`
	Schedules         []LinkSchedule `json:"schedules"`
}

type LinkSchedule struct {
	LinkType LinkType   `json:"link_type"`
	Tiers    []LinkTier `json:"tiers"`
}

// LinkTier is keyed by speed in Mbps; Monthly holds one price per contract
// period in months.
type LinkTier struct {
	UpTo     int           `json:"up_to"`
	SetupFee Price         `json:"setup_fee"`
	Monthly  map[int]Price `json:"monthly"`
}

func (t LinkTier) UpperBound() int { return t.UpTo }

// LookupPABX resolves the standard-modality bracket for n extensions.
func (pt PriceTable) LookupPABX(extensions int) (PABXTier, bool) {
	return ResolveBracket(pt.PABX, extensions)
}

// LookupPremium resolves the premium bracket for a plan, contract period and
// extension count.
func (pt PriceTable) LookupPremium(plan PremiumPlan, months, extensions int) (PremiumTier, bool) {
	for _, s := range pt.Premium.Schedules {
		if s.Plan == plan && s.ContractPeriodMonths == months {
			return ResolveBracket(s.Tiers, extensions)
		}
	}
	return PremiumTier{}, false
}

func (pt PriceTable) LookupSIP(plan SIPPlan, channels int) (SIPTier, bool) {
	for _, s := range pt.SIP.Schedules {
		if s.Plan == plan {
			return ResolveBracket(s.Tiers, channels)
		}
	}
	return SIPTier{}, false
}

// LookupLink resolves the speed tier of a link type. exceeded is true when the
// requested speed is above the fastest priced tier.
func (pt PriceTable) LookupLink(linkType LinkType, speedMbps int) (tier LinkTier, ok bool, exceeded bool) {
	for _, s := range pt.Links.Schedules {
		if s.LinkType == linkType {
			if ExceedsBrackets(s.Tiers, speedMbps) {
				return LinkTier{}, true, true
			}
			tier, ok = ResolveBracket(s.Tiers, speedMbps)
			return tier, ok, false
		}
	}
	return LinkTier{}, false, false
}

// Validate checks the structural rules admin edits must satisfy.
func (pt PriceTable) Validate() error {
	var problems []string

	problems = append(problems, validateBounds("pabx_standard", pt.PABX)...)
	for i, t := range pt.PABX {
		problems = append(problems, nonNegative(fmt.Sprintf("pabx_standard[%d]", i),
			t.SetupFee, t.MonthlyUnitPrice, t.HostingFee, t.DeviceRentalUnitPrice)...)
	}

	problems = append(problems, nonNegative("pabx_premium.setup_fee", pt.Premium.SetupFee)...)
	if len(pt.Premium.Schedules) == 0 {
		problems = append(problems, "pabx_premium: at least one schedule is required")
	}
	for _, s := range pt.Premium.Schedules {
		section := fmt.Sprintf("pabx_premium[%s/%d]", s.Plan, s.ContractPeriodMonths)
		problems = append(problems, validateBounds(section, s.Tiers)...)
		for _, t := range s.Tiers {
			problems = append(problems, nonNegative(section, t.WithEquipment, t.WithoutEquipment)...)
		}
	}

	for plan, p := range pt.AIPlans {
		problems = append(problems, nonNegative("ai_plans."+string(plan), p)...)
	}

	problems = append(problems, nonNegative("sip.did_unit_price", pt.SIP.DIDUnitPrice)...)
	for _, s := range pt.SIP.Schedules {
		section := "sip[" + string(s.Plan) + "]"
		problems = append(problems, validateBounds(section, s.Tiers)...)
		for _, t := range s.Tiers {
			problems = append(problems, nonNegative(section, t.SetupFee, t.MonthlyChannelPrice)...)
		}
	}

	problems = append(problems, nonNegative("vm", pt.VM.SetupFee, pt.VM.VCPUPrice, pt.VM.RAMGBPrice, pt.VM.BackupGBPrice, pt.VM.WindowsLicense)...)
	for st, p := range pt.VM.StorageGBPrice {
		problems = append(problems, nonNegative("vm.storage_gb_price."+string(st), p)...)
	}

	problems = append(problems, nonNegative("links.static_ip_unit_price", pt.Links.StaticIPUnitPrice)...)
	for _, s := range pt.Links.Schedules {
		section := "links[" + string(s.LinkType) + "]"
		problems = append(problems, validateBounds(section, s.Tiers)...)
		for _, t := range s.Tiers {
			problems = append(problems, nonNegative(section, t.SetupFee)...)
			for months, p := range t.Monthly {
				problems = append(problems, nonNegative(fmt.Sprintf("%s.monthly.%d", section, months), p)...)
			}
		}
	}

	if len(problems) > 0 {
		return &PriceTableError{Problems: problems}
	}
	return nil
}

func nonNegative(section string, prices ...Price) []string {
	for _, p := range prices {
		if amount, ok := p.Amount(); ok && amount.IsNegative() {
			return []string{section + ": prices cannot be negative"}
		}
	}
	return nil
}
