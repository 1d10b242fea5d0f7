package costing

import "github.com/archfind/arch-backend/internal/design/domain"

// Base monthly figures in USD. Indexed by the enum sum types so the estimator
// stays table-driven; branching happens only on category presence.

var computeBase = map[domain.ComputePreference]map[domain.TrafficVolume]float64{
	domain.ComputeServerless: {domain.TrafficLow: 5, domain.TrafficMedium: 25, domain.TrafficHigh: 120},
	domain.ComputeContainers: {domain.TrafficLow: 30, domain.TrafficMedium: 90, domain.TrafficHigh: 280},
	domain.ComputeVMs:        {domain.TrafficLow: 35, domain.TrafficMedium: 110, domain.TrafficHigh: 340},
}

var databaseBase = map[domain.DatabaseType]map[domain.TrafficVolume]float64{
	domain.DatabaseSQL:   {domain.TrafficLow: 25, domain.TrafficMedium: 70, domain.TrafficHigh: 220},
	domain.DatabaseNoSQL: {domain.TrafficLow: 20, domain.TrafficMedium: 60, domain.TrafficHigh: 190},
}

var storageBase = map[domain.StorageNeeds]float64{
	domain.StorageMinimal:   5,
	domain.StorageModerate:  23,
	domain.StorageExtensive: 115,
}

var loadBalancerBase = map[domain.TrafficVolume]float64{
	domain.TrafficLow: 18, domain.TrafficMedium: 22, domain.TrafficHigh: 35,
}

var cdnBase = map[domain.TrafficVolume]float64{
	domain.TrafficLow: 10, domain.TrafficMedium: 25, domain.TrafficHigh: 85,
}

const (
	dnsBase        = 1.0
	monitoringBase = 10.0

	// gp3-style per-GB rate applied to RDS storage above the default 20 GB.
	rdsStoragePerGB = 0.115
	defaultRDSGB    = 20.0
	defaultLambdaMB = 128.0
)

var budgetMultiplier = map[domain.BudgetRange]float64{
	domain.BudgetStartup:    0.8,
	domain.BudgetMedium:     1.0,
	domain.BudgetEnterprise: 1.3,
}

// ec2InstanceBase gives a monthly On-Demand figure for common instance type
// overrides. Unknown types fall back to the traffic-tier table.
var ec2InstanceBase = map[string]float64{
	"t3.micro":   7.5,
	"t3.small":   15,
	"t3.medium":  30,
	"t3.large":   60,
	"m5.large":   70,
	"m5.xlarge":  140,
	"r5.xlarge":  183,
	"c5.2xlarge": 248,
}
