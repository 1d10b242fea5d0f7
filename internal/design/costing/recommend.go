package costing

import (
	"strconv"
	"strings"

	"github.com/archfind/arch-backend/internal/design/domain"
)

// Recommend returns category-tagged optimization suggestions for the
// questionnaire and estimated monthly total. Pure function; same input, same
// output order.
func Recommend(q domain.Questionnaire, monthlyTotal float64) []domain.Recommendation {
	var recs []domain.Recommendation

	if q.Compute == domain.ComputeVMs {
		recs = append(recs, domain.Recommendation{
			Category:   "compute",
			Suggestion: "Commit to 1-year reserved instances for steady workloads",
			SavingsPct: "40%",
		})
	}
	if q.Compute == domain.ComputeContainers {
		recs = append(recs, domain.Recommendation{
			Category:   "compute",
			Suggestion: "Run fault-tolerant tasks on Fargate Spot",
			SavingsPct: "70%",
		})
	}
	if q.Traffic == domain.TrafficLow && q.Compute != domain.ComputeServerless {
		recs = append(recs, domain.Recommendation{
			Category:   "compute",
			Suggestion: "Low traffic fits a serverless footprint; pay per invocation instead of per hour",
			SavingsPct: "30%",
		})
	}
	if q.Storage == domain.StorageExtensive {
		recs = append(recs, domain.Recommendation{
			Category:   "storage",
			Suggestion: "Enable S3 Intelligent-Tiering and lifecycle rules for cold objects",
			SavingsPct: "25%",
		})
	}
	if q.Database == domain.DatabaseSQL && q.Traffic == domain.TrafficLow {
		recs = append(recs, domain.Recommendation{
			Category:   "database",
			Suggestion: "A burstable db.t3 class covers low query volume",
			SavingsPct: "15%",
		})
	}
	if q.Budget == domain.BudgetStartup && monthlyTotal > 100 {
		recs = append(recs, domain.Recommendation{
			Category:   "general",
			Suggestion: "Right-size instances monthly; startup-tier budgets rarely need headroom",
			SavingsPct: "20%",
		})
	}

	return recs
}

// ParseSavingsPct parses the "NN%" savings string of a recommendation.
// The trailing percent sign on a decimal string is a documented contract;
// do not loosen or localize it.
func ParseSavingsPct(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
}
