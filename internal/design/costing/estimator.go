// Package costing derives a monthly cost estimate from a questionnaire and the
// selected services. Figures come from fixed three-tier base tables; a live
// price source can override them but its failure is never fatal.
package costing

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/archfind/arch-backend/internal/design/domain"
)

// Confidence levels reported on the estimate.
const (
	ConfidenceLive     = 0.95 // live price source answered
	ConfidenceStatic   = 0.8  // no source configured, table figures
	ConfidenceDegraded = 0.6  // source configured but failed, fell back to tables
)

// PriceSource is the optional live-pricing collaborator. It reports a monthly
// USD figure for a selected service, or ok=false when it has no data.
type PriceSource interface {
	MonthlyPrice(ctx context.Context, category domain.ServiceCategory, service string) (price float64, ok bool, err error)
}

type Estimator struct {
	source  PriceSource
	timeout time.Duration
}

// New returns an estimator. source may be nil, in which case only the static
// tables are used.
func New(source PriceSource, timeout time.Duration) *Estimator {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Estimator{source: source, timeout: timeout}
}

// Estimate prices every populated service category. Networking sub-costs are
// folded into one combined line item; monitoring is always appended. The
// budget multiplier is applied per line item before formatting, so the
// reported total always equals the sum of the itemized figures; the displayed
// range is [total*0.8, total*1.2] in whole dollars.
func (e *Estimator) Estimate(ctx context.Context, q domain.Questionnaire, services domain.ServiceSelection, prefs domain.UserPreferences) domain.CostEstimate {
	var (
		items      []domain.CostLineItem
		total      float64
		liveUsed   bool
		liveFailed bool
	)

	mult := budgetMultiplier[q.Budget]

	appendItem := func(label string, cost float64, desc string) {
		cost = math.Round(cost * mult)
		items = append(items, domain.CostLineItem{
			Service:     label,
			Cost:        formatMonthly(cost),
			Description: desc,
		})
		total += cost
	}

	// compute
	computeCost := computeBase[q.Compute][q.Traffic]
	if q.Compute == domain.ComputeVMs {
		if t, ok := stringPref(prefs, "ec2_instance_type"); ok {
			if base, known := ec2InstanceBase[t]; known {
				computeCost = scaleByTraffic(base, q.Traffic)
			}
		}
	}
	if q.Compute == domain.ComputeServerless {
		if mb, ok := numericPref(prefs, "lambda_memory_mb"); ok && mb > 0 {
			computeCost = computeCost * (mb / defaultLambdaMB)
		}
	}
	if e.source != nil {
		lctx, cancel := context.WithTimeout(ctx, e.timeout)
		price, ok, err := e.source.MonthlyPrice(lctx, domain.CategoryCompute, services[domain.CategoryCompute])
		cancel()
		switch {
		case err != nil:
			liveFailed = true
		case ok && price > 0:
			computeCost = price
			liveUsed = true
		}
	}
	appendItem(services[domain.CategoryCompute], computeCost,
		fmt.Sprintf("Compute for %s traffic", q.Traffic))

	// database
	if label, ok := services[domain.CategoryDatabase]; ok {
		dbCost := databaseBase[q.Database][q.Traffic]
		if gb, ok := numericPref(prefs, "rds_storage_gb"); ok && gb > defaultRDSGB {
			dbCost += (gb - defaultRDSGB) * rdsStoragePerGB
		}
		appendItem(label, dbCost, fmt.Sprintf("Managed %s database", q.Database))
	}

	// storage
	appendItem(services[domain.CategoryStorage], storageBase[q.Storage],
		fmt.Sprintf("Object storage, %s usage", q.Storage))

	// networking: load balancer + cdn + dns are one combined entry
	var networking float64
	var parts []string
	if _, ok := services[domain.CategoryLoadBalancer]; ok {
		networking += loadBalancerBase[q.Traffic]
		parts = append(parts, "load balancing")
	}
	if _, ok := services[domain.CategoryCDN]; ok {
		networking += cdnBase[q.Traffic]
		parts = append(parts, "CDN")
	}
	if _, ok := services[domain.CategoryDNS]; ok {
		networking += dnsBase
		parts = append(parts, "DNS")
	}
	if networking > 0 {
		appendItem("Networking", networking, "Combined "+strings.Join(parts, ", "))
	}

	// monitoring is always present
	appendItem(services[domain.CategoryMonitoring], monitoringBase,
		"Metrics, logs and alarms")

	low := math.Round(total * 0.8)
	high := math.Round(total * 1.2)

	confidence := ConfidenceStatic
	switch {
	case liveFailed:
		confidence = ConfidenceDegraded
	case liveUsed:
		confidence = ConfidenceLive
	}

	return domain.CostEstimate{
		Range:           fmt.Sprintf("$%d - $%d/month", int(low), int(high)),
		LineItems:       items,
		MonthlyTotal:    math.Round(total*100) / 100,
		Confidence:      confidence,
		Recommendations: Recommend(q, total),
	}
}

// scaleByTraffic adjusts a single-instance monthly figure for the expected
// fleet size at each tier.
func scaleByTraffic(base float64, t domain.TrafficVolume) float64 {
	switch t {
	case domain.TrafficMedium:
		return base * 3
	case domain.TrafficHigh:
		return base * 8
	default:
		return base
	}
}

func formatMonthly(v float64) string {
	return fmt.Sprintf("$%d/month", int(math.Round(v)))
}

// LineItemLowerBound parses the lower dollar bound out of a line item cost
// string. ok is false for non-positive or non-dollar entries, which keeps
// items from being double counted when summing.
func LineItemLowerBound(cost string) (float64, bool) {
	s := strings.TrimSpace(cost)
	if !strings.HasPrefix(s, "$") {
		return 0, false
	}
	s = s[1:]
	if i := strings.IndexAny(s, " -/"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// ItemizedTotal sums the lower bound of every positively priced line item.
func ItemizedTotal(items []domain.CostLineItem) float64 {
	var sum float64
	for _, it := range items {
		if v, ok := LineItemLowerBound(it.Cost); ok {
			sum += v
		}
	}
	return sum
}

func stringPref(prefs domain.UserPreferences, key string) (string, bool) {
	v, ok := prefs[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

func numericPref(prefs domain.UserPreferences, key string) (float64, bool) {
	v, ok := prefs[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
