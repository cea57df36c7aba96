package pricing

import "strings"

type Family string

const (
	FamilyPABX Family = "pabx"
	FamilySIP  Family = "sip"
	FamilyVM   Family = "vm"
	FamilyLink Family = "link"
)

type Modality string

const (
	ModalityStandard Modality = "standard"
	ModalityPremium  Modality = "premium"
)

type PremiumPlan string

const (
	PremiumPlanEssencial    PremiumPlan = "essencial"
	PremiumPlanProfessional PremiumPlan = "professional"
)

type BillingType string

const (
	BillingIlimitadoSemAparelho BillingType = "ilimitado-sem-aparelho"
	BillingIlimitadoComAparelho BillingType = "ilimitado-com-aparelho"
	BillingTarifadoSemAparelho  BillingType = "tarifado-sem-aparelho"
	BillingTarifadoComAparelho  BillingType = "tarifado-com-aparelho"
)

// WithEquipment reports whether the billing type bundles handsets.
func (b BillingType) WithEquipment() bool {
	return strings.Contains(string(b), "com-aparelho")
}

func (b BillingType) Valid() bool {
	switch b {
	case BillingIlimitadoSemAparelho, BillingIlimitadoComAparelho, BillingTarifadoSemAparelho, BillingTarifadoComAparelho:
		return true
	}
	return false
}

type AIPlan string

type SIPPlan string

const (
	SIPPlanIlimitado SIPPlan = "ilimitado"
	SIPPlanTarifado  SIPPlan = "tarifado"
)

type StorageType string

const (
	StorageHDD  StorageType = "hdd"
	StorageSSD  StorageType = "ssd"
	StorageNVMe StorageType = "nvme"
)

type OperatingSystem string

const (
	OSLinux   OperatingSystem = "linux"
	OSWindows OperatingSystem = "windows"
)

type LinkType string

const (
	LinkFibra LinkType = "fibra"
	LinkMAN   LinkType = "man"
	LinkRadio LinkType = "radio"
)

// Configuration is a product configuration tagged by Family. Exactly the
// payload matching Family must be set.
type Configuration struct {
	Family Family      `json:"family"`
	PABX   *PABXConfig `json:"pabx,omitempty"`
	SIP    *SIPConfig  `json:"sip,omitempty"`
	VM     *VMConfig   `json:"vm,omitempty"`
	Link   *LinkConfig `json:"link,omitempty"`
}

// PABXConfig selects a hosted PABX price. Premium-only fields are optional
// for the standard modality; zero values mean "not selected".
type PABXConfig struct {
	Modality             Modality    `json:"modality"`
	ExtensionCount       int         `json:"extension_count"`
	IncludeSetup         bool        `json:"include_setup"`
	IncludeDevices       bool        `json:"include_devices"`
	DeviceQuantity       int         `json:"device_quantity"`
	IncludeAI            bool        `json:"include_ai"`
	AIPlan               AIPlan      `json:"ai_plan,omitempty"`
	PremiumPlan          PremiumPlan `json:"premium_plan,omitempty"`
	BillingType          BillingType `json:"billing_type,omitempty"`
	ContractPeriodMonths int         `json:"contract_period_months,omitempty"`
}

type SIPConfig struct {
	Plan         SIPPlan `json:"plan"`
	Channels     int     `json:"channels"`
	IncludeSetup bool    `json:"include_setup"`
	DIDQuantity  int     `json:"did_quantity"`
}

type VMConfig struct {
	VCPU            int             `json:"vcpu"`
	RAMGB           int             `json:"ram_gb"`
	StorageGB       int             `json:"storage_gb"`
	StorageType     StorageType     `json:"storage_type"`
	OperatingSystem OperatingSystem `json:"operating_system"`
	BackupGB        int             `json:"backup_gb"`
	IncludeSetup    bool            `json:"include_setup"`
	Quantity        int             `json:"quantity"`
}

type LinkConfig struct {
	LinkType             LinkType `json:"link_type"`
	SpeedMbps            int      `json:"speed_mbps"`
	ContractPeriodMonths int      `json:"contract_period_months"`
	IncludeInstallation  bool     `json:"include_installation"`
	StaticIPQuantity     int      `json:"static_ip_quantity"`
}

// Validate reports every missing or invalid selection of the configuration.
func (c Configuration) Validate() error {
	var fields []string
	switch c.Family {
	case FamilyPABX:
		if c.PABX == nil {
			return &IncompleteConfigurationError{Family: c.Family, Fields: []string{"pabx"}}
		}
		fields = c.PABX.missingFields()
	case FamilySIP:
		if c.SIP == nil {
			return &IncompleteConfigurationError{Family: c.Family, Fields: []string{"sip"}}
		}
		fields = c.SIP.missingFields()
	case FamilyVM:
		if c.VM == nil {
			return &IncompleteConfigurationError{Family: c.Family, Fields: []string{"vm"}}
		}
		fields = c.VM.missingFields()
	case FamilyLink:
		if c.Link == nil {
			return &IncompleteConfigurationError{Family: c.Family, Fields: []string{"link"}}
		}
		fields = c.Link.missingFields()
	default:
		return &IncompleteConfigurationError{Family: c.Family, Fields: []string{"family"}}
	}
	if stray := c.strayPayloads(); len(stray) > 0 {
		return &IncompleteConfigurationError{Family: c.Family, Fields: stray}
	}
	if len(fields) > 0 {
		return &IncompleteConfigurationError{Family: c.Family, Fields: fields}
	}
	return nil
}

// strayPayloads lists the payloads set besides the one matching Family.
func (c Configuration) strayPayloads() []string {
	var stray []string
	if c.PABX != nil && c.Family != FamilyPABX {
		stray = append(stray, "pabx")
	}
	if c.SIP != nil && c.Family != FamilySIP {
		stray = append(stray, "sip")
	}
	if c.VM != nil && c.Family != FamilyVM {
		stray = append(stray, "vm")
	}
	if c.Link != nil && c.Family != FamilyLink {
		stray = append(stray, "link")
	}
	return stray
}

func (p PABXConfig) missingFields() []string {
	var fields []string
	switch p.Modality {
	case ModalityStandard, ModalityPremium:
	default:
		fields = append(fields, "modality")
	}
	if p.ExtensionCount <= 0 {
		fields = append(fields, "extension_count")
	}
	if p.DeviceQuantity < 0 {
		fields = append(fields, "device_quantity")
	}
	if p.IncludeAI && strings.TrimSpace(string(p.AIPlan)) == "" {
		fields = append(fields, "ai_plan")
	}
	if p.Modality == ModalityPremium {
		switch p.PremiumPlan {
		case PremiumPlanEssencial, PremiumPlanProfessional:
		default:
			fields = append(fields, "premium_plan")
		}
		if !p.BillingType.Valid() {
			fields = append(fields, "billing_type")
		}
		if p.ContractPeriodMonths != 24 && p.ContractPeriodMonths != 36 {
			fields = append(fields, "contract_period_months")
		}
	}
	return fields
}

func (s SIPConfig) missingFields() []string {
	var fields []string
	if s.Plan != SIPPlanIlimitado && s.Plan != SIPPlanTarifado {
		fields = append(fields, "plan")
	}
	if s.Channels <= 0 {
		fields = append(fields, "channels")
	}
	if s.DIDQuantity < 0 {
		fields = append(fields, "did_quantity")
	}
	return fields
}

func (v VMConfig) missingFields() []string {
	var fields []string
	if v.VCPU <= 0 {
		fields = append(fields, "vcpu")
	}
	if v.RAMGB <= 0 {
		fields = append(fields, "ram_gb")
	}
	if v.StorageGB <= 0 {
		fields = append(fields, "storage_gb")
	}
	switch v.StorageType {
	case StorageHDD, StorageSSD, StorageNVMe:
	default:
		fields = append(fields, "storage_type")
	}
	if v.OperatingSystem != OSLinux && v.OperatingSystem != OSWindows {
		fields = append(fields, "operating_system")
	}
	if v.BackupGB < 0 {
		fields = append(fields, "backup_gb")
	}
	if v.Quantity < 0 {
		fields = append(fields, "quantity")
	}
	return fields
}

func (l LinkConfig) missingFields() []string {
	var fields []string
	switch l.LinkType {
	case LinkFibra, LinkMAN, LinkRadio:
	default:
		fields = append(fields, "link_type")
	}
	if l.SpeedMbps <= 0 {
		fields = append(fields, "speed_mbps")
	}
	switch l.ContractPeriodMonths {
	case 12, 24, 36:
	default:
		fields = append(fields, "contract_period_months")
	}
	if l.StaticIPQuantity < 0 {
		fields = append(fields, "static_ip_quantity")
	}
	return fields
}
