package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archfind/arch-backend/internal/design/domain"
)

func baseQuestionnaire() domain.Questionnaire {
	return domain.Questionnaire{
		ProjectName: "demo-app",
		Description: "internal demo",
		Traffic:     domain.TrafficLow,
		Sensitivity: domain.SensitivityPublic,
		Compute:     domain.ComputeServerless,
		Database:    domain.DatabaseNone,
		Storage:     domain.StorageMinimal,
		Reach:       domain.ReachSingleRegion,
		Budget:      domain.BudgetMedium,
	}
}

func TestSelect(t *testing.T) {
	t.Run("minimal questionnaire selects only the fixed categories", func(t *testing.T) {
		sel := Select(baseQuestionnaire())
		require.Len(t, sel, 3)
		assert.Equal(t, "AWS Lambda", sel[domain.CategoryCompute])
		assert.Equal(t, "Amazon S3", sel[domain.CategoryStorage])
		assert.Equal(t, "Amazon CloudWatch", sel[domain.CategoryMonitoring])
	})

	t.Run("database follows database type", func(t *testing.T) {
		q := baseQuestionnaire()
		q.Database = domain.DatabaseSQL
		assert.Equal(t, "Amazon RDS (PostgreSQL)", Select(q)[domain.CategoryDatabase])

		q.Database = domain.DatabaseNoSQL
		assert.Equal(t, "Amazon DynamoDB", Select(q)[domain.CategoryDatabase])

		q.Database = domain.DatabaseNone
		_, ok := Select(q)[domain.CategoryDatabase]
		assert.False(t, ok)
	})

	t.Run("load balancer appears at medium and high traffic", func(t *testing.T) {
		q := baseQuestionnaire()
		for _, tr := range []domain.TrafficVolume{domain.TrafficMedium, domain.TrafficHigh} {
			q.Traffic = tr
			assert.Equal(t, "Application Load Balancer", Select(q)[domain.CategoryLoadBalancer])
		}
		q.Traffic = domain.TrafficLow
		_, ok := Select(q)[domain.CategoryLoadBalancer]
		assert.False(t, ok)
	})

	t.Run("cdn and dns appear together beyond a single region", func(t *testing.T) {
		q := baseQuestionnaire()
		for _, r := range []domain.GeoReach{domain.ReachMultiRegion, domain.ReachGlobal} {
			q.Reach = r
			sel := Select(q)
			assert.Equal(t, "Amazon CloudFront", sel[domain.CategoryCDN])
			assert.Equal(t, "Amazon Route 53", sel[domain.CategoryDNS])
		}
		q.Reach = domain.ReachSingleRegion
		sel := Select(q)
		_, cdn := sel[domain.CategoryCDN]
		_, dns := sel[domain.CategoryDNS]
		assert.False(t, cdn)
		assert.False(t, dns)
	})

	t.Run("e-commerce profile selects every category", func(t *testing.T) {
		q := baseQuestionnaire()
		q.Traffic = domain.TrafficMedium
		q.Sensitivity = domain.SensitivityConfidential
		q.Compute = domain.ComputeContainers
		q.Database = domain.DatabaseSQL
		q.Storage = domain.StorageModerate
		q.Reach = domain.ReachMultiRegion
		q.Compliance = []domain.ComplianceRequirement{domain.CompliancePCI}

		sel := Select(q)
		require.Len(t, sel, 7)
		assert.Equal(t, "Amazon ECS (Fargate)", sel[domain.CategoryCompute])
		assert.Equal(t, "Amazon RDS (PostgreSQL)", sel[domain.CategoryDatabase])
	})
}

func TestSecurityFeatures(t *testing.T) {
	t.Run("public data gets exactly the baseline", func(t *testing.T) {
		got := SecurityFeatures(baseQuestionnaire())
		assert.Equal(t, baselineFeatures, got)
	})

	t.Run("confidential pci union", func(t *testing.T) {
		q := baseQuestionnaire()
		q.Sensitivity = domain.SensitivityConfidential
		q.Compliance = []domain.ComplianceRequirement{domain.CompliancePCI}

		got := SecurityFeatures(q)
		require.Len(t, got, 12)
		assert.Contains(t, got, "GuardDuty threat detection")
		assert.Contains(t, got, "AWS KMS customer-managed keys")
		assert.Contains(t, got, "VPC Flow Logs")
		assert.Contains(t, got, "AWS WAF")
		assert.Contains(t, got, "Amazon Inspector")
		assert.Contains(t, got, "AWS Certificate Manager")
	})

	t.Run("overlapping rules deduplicate, first occurrence wins", func(t *testing.T) {
		q := baseQuestionnaire()
		q.Sensitivity = domain.SensitivityConfidential
		q.Compliance = []domain.ComplianceRequirement{domain.ComplianceHIPAA, domain.ComplianceGDPR}

		got := SecurityFeatures(q)
		var kms int
		for _, f := range got {
			if f == "AWS KMS customer-managed keys" {
				kms++
			}
		}
		assert.Equal(t, 1, kms)
		// CloudHSM from hipaa, residency from gdpr still both present
		assert.Contains(t, got, "AWS CloudHSM")
		assert.Contains(t, got, "Data residency controls")
	})

	t.Run("output is stable for a given questionnaire", func(t *testing.T) {
		q := baseQuestionnaire()
		q.Sensitivity = domain.SensitivityInternal
		q.Compliance = []domain.ComplianceRequirement{domain.ComplianceSOX, domain.CompliancePCI}
		assert.Equal(t, SecurityFeatures(q), SecurityFeatures(q))
	})
}
