package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const Namespace = "cotador"

var (
	domainOnce sync.Once

	// QuoteCalculations counts line item calculations by family and outcome.
	QuoteCalculations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "quote_calculations_total",
		Help:      "Count of line item calculations by family and result.",
	}, []string{"family", "result"})
	// ProposalEvents counts proposal lifecycle events.
	ProposalEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "proposal_events_total",
		Help:      "Count of proposal lifecycle events by event and result.",
	}, []string{"event", "result"})
	// DiscountPercent observes applied discount percentages.
	DiscountPercent = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "negotiation_discount_percent",
		Help:      "Distribution of applied discount percentages.",
		Buckets:   []float64{1, 2.5, 5, 7.5, 10, 15, 20, 30, 50, 100},
	}, []string{"kind"})
	// PriceTableCache counts snapshot cache lookups.
	PriceTableCache = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "price_table_cache_total",
		Help:      "Count of price table snapshot cache lookups by result.",
	}, []string{"result"})
	// SetupPayments counts setup fee payment attempts.
	SetupPayments = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "setup_payments_total",
		Help:      "Count of setup fee payment attempts by provider mode and result.",
	}, []string{"mode", "result"})
)

// MustRegisterDomainMetrics registers the domain collectors once. Collectors
// are usable before registration, which keeps use case tests free of setup.
func MustRegisterDomainMetrics(reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		reg.MustRegister(QuoteCalculations, ProposalEvents, DiscountPercent, PriceTableCache, SetupPayments)
	})
}
