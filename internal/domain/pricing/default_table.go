package pricing

import "time"

// DefaultPriceTable is the built-in seed used until an admin publishes the
// first stored version. Every call returns a fresh copy.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		Version:     0,
		EffectiveAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		UpdatedBy:   "seed",
		PABX: []PABXTier{
			{UpTo: 10, SetupFee: FixedInt(1250), MonthlyUnitPrice: FixedInt(30), HostingFee: FixedInt(200), DeviceRentalUnitPrice: FixedInt(35)},
			{UpTo: 20, SetupFee: FixedInt(1500), MonthlyUnitPrice: FixedInt(29), HostingFee: FixedInt(220), DeviceRentalUnitPrice: FixedInt(34)},
			{UpTo: 30, SetupFee: FixedInt(2000), MonthlyUnitPrice: FixedInt(28), HostingFee: FixedInt(250), DeviceRentalUnitPrice: FixedInt(33)},
			{UpTo: 50, SetupFee: FixedInt(3000), MonthlyUnitPrice: FixedInt(27), HostingFee: FixedInt(300), DeviceRentalUnitPrice: FixedInt(32)},
			{UpTo: 100, SetupFee: FixedInt(4000), MonthlyUnitPrice: FixedInt(26), HostingFee: FixedInt(400), DeviceRentalUnitPrice: FixedInt(30)},
			{UpTo: 500, SetupFee: Negotiable(), MonthlyUnitPrice: Negotiable(), HostingFee: Negotiable(), DeviceRentalUnitPrice: Negotiable()},
			{UpTo: 1000, SetupFee: Negotiable(), MonthlyUnitPrice: Negotiable(), HostingFee: Negotiable(), DeviceRentalUnitPrice: Negotiable()},
		},
		Premium: PremiumTable{
			SetupFee: FixedInt(2500),
			Schedules: []PremiumSchedule{
				premiumSchedule(PremiumPlanEssencial, 24, [6]int64{52, 48, 45, 42, 39, 36}, [6]int64{62, 58, 55, 52, 49, 46}),
				premiumSchedule(PremiumPlanEssencial, 36, [6]int64{49, 45, 42, 39, 36, 33}, [6]int64{59, 55, 52, 49, 46, 43}),
				premiumSchedule(PremiumPlanProfessional, 24, [6]int64{65, 60, 56, 52, 48, 45}, [6]int64{75, 70, 66, 62, 58, 55}),
				premiumSchedule(PremiumPlanProfessional, 36, [6]int64{62, 57, 53, 49, 45, 42}, [6]int64{72, 67, 63, 59, 55, 52}),
			},
		},
		AIPlans: map[AIPlan]Price{
			"20K":  FixedInt(720),
			"40K":  FixedInt(1370),
			"60K":  FixedInt(1940),
			"100K": FixedInt(3060),
		},
		SIP: SIPTable{
			DIDUnitPrice: FixedInt(10),
			Schedules: []SIPSchedule{
				{Plan: SIPPlanTarifado, Tiers: []SIPTier{
					{UpTo: 5, SetupFee: FixedInt(500), MonthlyChannelPrice: FixedInt(35)},
					{UpTo: 10, SetupFee: FixedInt(700), MonthlyChannelPrice: FixedInt(32)},
					{UpTo: 20, SetupFee: FixedInt(1000), MonthlyChannelPrice: FixedInt(29)},
					{UpTo: 30, SetupFee: FixedInt(1200), MonthlyChannelPrice: FixedInt(27)},
					{UpTo: 60, SetupFee: Negotiable(), MonthlyChannelPrice: Negotiable()},
				}},
				{Plan: SIPPlanIlimitado, Tiers: []SIPTier{
					{UpTo: 5, SetupFee: FixedInt(500), MonthlyChannelPrice: FixedInt(59)},
					{UpTo: 10, SetupFee: FixedInt(700), MonthlyChannelPrice: FixedInt(55)},
					{UpTo: 20, SetupFee: FixedInt(1000), MonthlyChannelPrice: FixedInt(52)},
					{UpTo: 30, SetupFee: FixedInt(1200), MonthlyChannelPrice: FixedInt(49)},
					{UpTo: 60, SetupFee: Negotiable(), MonthlyChannelPrice: Negotiable()},
				}},
			},
		},
		VM: VMTable{
			SetupFee:   FixedInt(200),
			VCPUPrice:  FixedInt(28),
			RAMGBPrice: FixedInt(18),
			StorageGBPrice: map[StorageType]Price{
				StorageHDD:  FixedString("0.30"),
				StorageSSD:  FixedString("0.60"),
				StorageNVMe: FixedString("0.90"),
			},
			BackupGBPrice:  FixedString("0.25"),
			WindowsLicense: FixedInt(120),
		},
		Links: LinkTable{
			StaticIPUnitPrice: FixedInt(25),
			Schedules: []LinkSchedule{
				{LinkType: LinkFibra, Tiers: []LinkTier{
					linkTier(50, 800, 450, 400, 350),
					linkTier(100, 800, 650, 590, 520),
					linkTier(200, 1000, 990, 890, 790),
					linkTier(300, 1000, 1290, 1150, 1020),
					linkTier(500, 1500, 1890, 1690, 1490),
					linkTier(1000, 2000, 2990, 2690, 2390),
				}},
				{LinkType: LinkMAN, Tiers: []LinkTier{
					linkTier(100, 1500, 1200, 1100, 1000),
					linkTier(1000, 3000, 3500, 3200, 2900),
					{UpTo: 10000, SetupFee: Negotiable(), Monthly: map[int]Price{12: Negotiable(), 24: Negotiable(), 36: Negotiable()}},
				}},
				{LinkType: LinkRadio, Tiers: []LinkTier{
					linkTier(10, 1200, 390, 350, 320),
					linkTier(20, 1200, 590, 540, 490),
					linkTier(50, 1500, 990, 890, 790),
					{UpTo: 100, SetupFee: Negotiable(), Monthly: map[int]Price{12: Negotiable(), 24: Negotiable(), 36: Negotiable()}},
				}},
			},
		},
	}
}

var premiumBounds = [6]int{9, 19, 49, 99, 199, Unbounded}

func premiumSchedule(plan PremiumPlan, months int, without, with [6]int64) PremiumSchedule {
	tiers := make([]PremiumTier, 0, len(premiumBounds))
	for i, upTo := range premiumBounds {
		tiers = append(tiers, PremiumTier{
			UpTo:             upTo,
			WithEquipment:    FixedInt(with[i]),
			WithoutEquipment: FixedInt(without[i]),
		})
	}
	return PremiumSchedule{Plan: plan, ContractPeriodMonths: months, Tiers: tiers}
}

func linkTier(speed int, setup, m12, m24, m36 int64) LinkTier {
	return LinkTier{
		UpTo:     speed,
		SetupFee: FixedInt(setup),
		Monthly:  map[int]Price{12: FixedInt(m12), 24: FixedInt(m24), 36: FixedInt(m36)},
	}
}
