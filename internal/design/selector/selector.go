// Package selector turns a questionnaire into a managed-service selection and
// the derived security feature set. Everything here is a pure lookup over
// static tables; a valid Questionnaire can never make it fail.
package selector

import (
	"github.com/archfind/arch-backend/internal/design/domain"
)

var computeLabels = map[domain.ComputePreference]string{
	domain.ComputeServerless: "AWS Lambda",
	domain.ComputeContainers: "Amazon ECS (Fargate)",
	domain.ComputeVMs:        "Amazon EC2",
}

var databaseLabels = map[domain.DatabaseType]string{
	domain.DatabaseSQL:   "Amazon RDS (PostgreSQL)",
	domain.DatabaseNoSQL: "Amazon DynamoDB",
}

const (
	storageLabel      = "Amazon S3"
	loadBalancerLabel = "Application Load Balancer"
	cdnLabel          = "Amazon CloudFront"
	dnsLabel          = "Amazon Route 53"
	monitoringLabel   = "Amazon CloudWatch"
)

// Select maps the questionnaire to a category→service map.
// Category membership rules:
//   - compute, storage, monitoring: always
//   - database: iff database_type != none
//   - load_balancer: iff traffic is medium or high
//   - cdn, dns: iff reach is multi_region or global
func Select(q domain.Questionnaire) domain.ServiceSelection {
	sel := domain.ServiceSelection{
		domain.CategoryCompute:    computeLabels[q.Compute],
		domain.CategoryStorage:    storageLabel,
		domain.CategoryMonitoring: monitoringLabel,
	}

	if q.Database != domain.DatabaseNone {
		sel[domain.CategoryDatabase] = databaseLabels[q.Database]
	}
	if q.Traffic == domain.TrafficMedium || q.Traffic == domain.TrafficHigh {
		sel[domain.CategoryLoadBalancer] = loadBalancerLabel
	}
	if q.Reach == domain.ReachMultiRegion || q.Reach == domain.ReachGlobal {
		sel[domain.CategoryCDN] = cdnLabel
		sel[domain.CategoryDNS] = dnsLabel
	}

	return sel
}

var baselineFeatures = []string{
	"VPC with private subnets",
	"Security Groups",
	"IAM roles and policies",
	"CloudTrail audit logging",
	"S3 server-side encryption",
	"S3 Public Access Block",
}

var sensitivityFeatures = map[domain.DataSensitivity][]string{
	domain.SensitivityInternal: {
		"GuardDuty threat detection",
	},
	domain.SensitivityConfidential: {
		"GuardDuty threat detection",
		"AWS KMS customer-managed keys",
		"VPC Flow Logs",
	},
}

var complianceFeatures = map[domain.ComplianceRequirement][]string{
	domain.ComplianceHIPAA: {"AWS KMS customer-managed keys", "AWS CloudHSM"},
	domain.CompliancePCI:   {"Amazon Inspector", "AWS Certificate Manager", "AWS WAF"},
	domain.ComplianceSOX:   {"AWS Config", "CloudTrail log file validation"},
	domain.ComplianceGDPR:  {"AWS KMS customer-managed keys", "Data residency controls"},
}

// SecurityFeatures returns the deduplicated feature list for the questionnaire:
// the fixed baseline unioned with sensitivity- and compliance-triggered rows.
// Rules only ever add features; first occurrence wins the position, so output
// order is stable for a given questionnaire.
func SecurityFeatures(q domain.Questionnaire) []string {
	out := make([]string, 0, len(baselineFeatures)+6)
	seen := make(map[string]bool, len(baselineFeatures)+6)

	add := func(features []string) {
		for _, f := range features {
			if seen[f] {
				continue
			}
			seen[f] = true
			out = append(out, f)
		}
	}

	add(baselineFeatures)
	add(sensitivityFeatures[q.Sensitivity])
	for _, c := range q.Compliance {
		add(complianceFeatures[c])
	}

	return out
}
