package request

import (
	"strings"

	"cotador_telecom/internal/domain/pricing"
)

// ConfigurationRequest is the wire form of a product configuration. Field
// completeness is checked by the domain so the client receives the full list
// of missing selections at once.
type ConfigurationRequest struct {
	Family string       `json:"family" binding:"required"`
	PABX   *PABXRequest `json:"pabx,omitempty"`
	SIP    *SIPRequest  `json:"sip,omitempty"`
	VM     *VMRequest   `json:"vm,omitempty"`
	Link   *LinkRequest `json:"link,omitempty"`
}

type PABXRequest struct {
	Modality             string `json:"modality"`
	ExtensionCount       int    `json:"extension_count"`
	IncludeSetup         bool   `json:"include_setup"`
	IncludeDevices       bool   `json:"include_devices"`
	DeviceQuantity       int    `json:"device_quantity"`
	IncludeAI            bool   `json:"include_ai"`
	AIPlan               string `json:"ai_plan,omitempty"`
	PremiumPlan          string `json:"premium_plan,omitempty"`
	BillingType          string `json:"billing_type,omitempty"`
	ContractPeriodMonths int    `json:"contract_period_months,omitempty"`
}

type SIPRequest struct {
	Plan         string `json:"plan"`
	Channels     int    `json:"channels"`
	IncludeSetup bool   `json:"include_setup"`
	DIDQuantity  int    `json:"did_quantity"`
}

type VMRequest struct {
	VCPU            int    `json:"vcpu"`
	RAMGB           int    `json:"ram_gb"`
	StorageGB       int    `json:"storage_gb"`
	StorageType     string `json:"storage_type"`
	OperatingSystem string `json:"operating_system"`
	BackupGB        int    `json:"backup_gb"`
	IncludeSetup    bool   `json:"include_setup"`
	Quantity        int    `json:"quantity"`
}

type LinkRequest struct {
	LinkType             string `json:"link_type"`
	SpeedMbps            int    `json:"speed_mbps"`
	ContractPeriodMonths int    `json:"contract_period_months"`
	IncludeInstallation  bool   `json:"include_installation"`
	StaticIPQuantity     int    `json:"static_ip_quantity"`
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (r ConfigurationRequest) ToDomain() pricing.Configuration {
	cfg := pricing.Configuration{Family: pricing.Family(norm(r.Family))}
	if r.PABX != nil {
		cfg.PABX = &pricing.PABXConfig{
			Modality:             pricing.Modality(norm(r.PABX.Modality)),
			ExtensionCount:       r.PABX.ExtensionCount,
			IncludeSetup:         r.PABX.IncludeSetup,
			IncludeDevices:       r.PABX.IncludeDevices,
			DeviceQuantity:       r.PABX.DeviceQuantity,
			IncludeAI:            r.PABX.IncludeAI,
			AIPlan:               pricing.AIPlan(strings.ToUpper(strings.TrimSpace(r.PABX.AIPlan))),
			PremiumPlan:          pricing.PremiumPlan(norm(r.PABX.PremiumPlan)),
			BillingType:          pricing.BillingType(norm(r.PABX.BillingType)),
			ContractPeriodMonths: r.PABX.ContractPeriodMonths,
		}
	}
	if r.SIP != nil {
		cfg.SIP = &pricing.SIPConfig{
			Plan:         pricing.SIPPlan(norm(r.SIP.Plan)),
			Channels:     r.SIP.Channels,
			IncludeSetup: r.SIP.IncludeSetup,
			DIDQuantity:  r.SIP.DIDQuantity,
		}
	}
	if r.VM != nil {
		cfg.VM = &pricing.VMConfig{
			VCPU:            r.VM.VCPU,
			RAMGB:           r.VM.RAMGB,
			StorageGB:       r.VM.StorageGB,
			StorageType:     pricing.StorageType(norm(r.VM.StorageType)),
			OperatingSystem: pricing.OperatingSystem(norm(r.VM.OperatingSystem)),
			BackupGB:        r.VM.BackupGB,
			IncludeSetup:    r.VM.IncludeSetup,
			Quantity:        r.VM.Quantity,
		}
	}
	if r.Link != nil {
		cfg.Link = &pricing.LinkConfig{
			LinkType:             pricing.LinkType(norm(r.Link.LinkType)),
			SpeedMbps:            r.Link.SpeedMbps,
			ContractPeriodMonths: r.Link.ContractPeriodMonths,
			IncludeInstallation:  r.Link.IncludeInstallation,
			StaticIPQuantity:     r.Link.StaticIPQuantity,
		}
	}
	return cfg
}
