// Package pricing implements the live price source the cost estimator may
// consult. The AWS Price List API backs it; a redis decorator caches answers.
// Failures here are always survivable: the estimator falls back to its static
// tables.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	"github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"golang.org/x/time/rate"

	"github.com/archfind/arch-backend/internal/design/domain"
)

const hoursPerMonth = 24.0 * 30.0

// AWSSource resolves live monthly prices through the AWS Price List API.
type AWSSource struct {
	client  *pricing.Client
	limiter *rate.Limiter
	region  string
}

// NewAWSSource builds a source for the given region. The Price List API
// itself is only served from us-east-1; region selects the priced location.
func NewAWSSource(ctx context.Context, region string) (*AWSSource, error) {
	cfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion("us-east-1"))
	if err != nil {
		return nil, fmt.Errorf("aws config load: %w", err)
	}
	return &AWSSource{
		client:  pricing.NewFromConfig(cfg),
		limiter: rate.NewLimiter(8, 16),
		region:  region,
	}, nil
}

// instanceForLabel picks the representative EC2 instance type priced for a
// compute selection. Only VM compute has a stable hourly SKU worth querying;
// everything else answers ok=false and the static tables hold.
var instanceForLabel = map[string]string{
	"Amazon EC2": "t3.medium",
}

// MonthlyPrice implements costing.PriceSource.
func (s *AWSSource) MonthlyPrice(ctx context.Context, category domain.ServiceCategory, service string) (float64, bool, error) {
	if category != domain.CategoryCompute {
		return 0, false, nil
	}
	instanceType, ok := instanceForLabel[service]
	if !ok {
		return 0, false, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return 0, false, err
	}

	out, err := s.client.GetProducts(ctx, &pricing.GetProductsInput{
		ServiceCode:   aws.String("AmazonEC2"),
		FormatVersion: aws.String("aws_v1"),
		MaxResults:    aws.Int32(10),
		Filters: []types.Filter{
			filter("instanceType", instanceType),
			filter("regionCode", s.region),
			filter("operatingSystem", "Linux"),
			filter("tenancy", "Shared"),
			filter("preInstalledSw", "NA"),
			filter("capacitystatus", "Used"),
		},
	})
	if err != nil {
		return 0, false, fmt.Errorf("pricing query: %w", err)
	}

	for _, raw := range out.PriceList {
		if hourly, ok := parseOnDemandHourly(raw); ok && hourly > 0 {
			return hourly * hoursPerMonth, true, nil
		}
	}
	return 0, false, nil
}

func filter(field, value string) types.Filter {
	return types.Filter{
		Type:  types.FilterTypeTermMatch,
		Field: aws.String(field),
		Value: aws.String(value),
	}
}

// parseOnDemandHourly digs the first On-Demand USD rate out of one price list
// document. The document is the deeply nested aws_v1 JSON shape.
func parseOnDemandHourly(raw string) (float64, bool) {
	var doc struct {
		Terms struct {
			OnDemand map[string]struct {
				PriceDimensions map[string]struct {
					PricePerUnit map[string]string `json:"pricePerUnit"`
					Unit         string            `json:"unit"`
				} `json:"priceDimensions"`
			} `json:"OnDemand"`
		} `json:"terms"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return 0, false
	}
	for _, term := range doc.Terms.OnDemand {
		for _, dim := range term.PriceDimensions {
			if dim.Unit != "Hrs" {
				continue
			}
			if usd, ok := dim.PricePerUnit["USD"]; ok {
				if v, err := strconv.ParseFloat(usd, 64); err == nil {
					return v, true
				}
			}
		}
	}
	return 0, false
}
