package domain

import "fmt"

type TrafficVolume string

const (
	TrafficLow    TrafficVolume = "low"
	TrafficMedium TrafficVolume = "medium"
	TrafficHigh   TrafficVolume = "high"
)

type DataSensitivity string

const (
	SensitivityPublic       DataSensitivity = "public"
	SensitivityInternal     DataSensitivity = "internal"
	SensitivityConfidential DataSensitivity = "confidential"
)

type ComputePreference string

const (
	ComputeServerless ComputePreference = "serverless"
	ComputeContainers ComputePreference = "containers"
	ComputeVMs        ComputePreference = "vms"
)

type DatabaseType string

const (
	DatabaseSQL   DatabaseType = "sql"
	DatabaseNoSQL DatabaseType = "nosql"
	DatabaseNone  DatabaseType = "none"
)

type StorageNeeds string

const (
	StorageMinimal   StorageNeeds = "minimal"
	StorageModerate  StorageNeeds = "moderate"
	StorageExtensive StorageNeeds = "extensive"
)

type GeoReach string

const (
	ReachSingleRegion GeoReach = "single_region"
	ReachMultiRegion  GeoReach = "multi_region"
	ReachGlobal       GeoReach = "global"
)

type BudgetRange string

const (
	BudgetStartup    BudgetRange = "startup"
	BudgetMedium     BudgetRange = "medium"
	BudgetEnterprise BudgetRange = "enterprise"
)

type ComplianceRequirement string

const (
	ComplianceHIPAA ComplianceRequirement = "hipaa"
	CompliancePCI   ComplianceRequirement = "pci"
	ComplianceSOX   ComplianceRequirement = "sox"
	ComplianceGDPR  ComplianceRequirement = "gdpr"
	ComplianceNone  ComplianceRequirement = "none"
)

// ServiceCategory is the fixed key space of a ServiceSelection.
type ServiceCategory string

const (
	CategoryCompute      ServiceCategory = "compute"
	CategoryDatabase     ServiceCategory = "database"
	CategoryStorage      ServiceCategory = "storage"
	CategoryLoadBalancer ServiceCategory = "load_balancer"
	CategoryCDN          ServiceCategory = "cdn"
	CategoryDNS          ServiceCategory = "dns"
	CategoryMonitoring   ServiceCategory = "monitoring"
)

// CategoryOrder is the canonical iteration order for deterministic output
// (maps carry no order of their own).
var CategoryOrder = []ServiceCategory{
	CategoryCompute,
	CategoryDatabase,
	CategoryStorage,
	CategoryLoadBalancer,
	CategoryCDN,
	CategoryDNS,
	CategoryMonitoring,
}

func ParseTrafficVolume(s string) (TrafficVolume, error) {
	switch TrafficVolume(s) {
	case TrafficLow, TrafficMedium, TrafficHigh:
		return TrafficVolume(s), nil
	}
	return "", fmt.Errorf("%w: invalid traffic_volume %q", ErrValidation, s)
}

func ParseDataSensitivity(s string) (DataSensitivity, error) {
	switch DataSensitivity(s) {
	case SensitivityPublic, SensitivityInternal, SensitivityConfidential:
		return DataSensitivity(s), nil
	}
	return "", fmt.Errorf("%w: invalid data_sensitivity %q", ErrValidation, s)
}

func ParseComputePreference(s string) (ComputePreference, error) {
	switch ComputePreference(s) {
	case ComputeServerless, ComputeContainers, ComputeVMs:
		return ComputePreference(s), nil
	}
	return "", fmt.Errorf("%w: invalid compute_preference %q", ErrValidation, s)
}

func ParseDatabaseType(s string) (DatabaseType, error) {
	switch DatabaseType(s) {
	case DatabaseSQL, DatabaseNoSQL, DatabaseNone:
		return DatabaseType(s), nil
	}
	return "", fmt.Errorf("%w: invalid database_type %q", ErrValidation, s)
}

func ParseStorageNeeds(s string) (StorageNeeds, error) {
	switch StorageNeeds(s) {
	case StorageMinimal, StorageModerate, StorageExtensive:
		return StorageNeeds(s), nil
	}
	return "", fmt.Errorf("%w: invalid storage_needs %q", ErrValidation, s)
}

func ParseGeoReach(s string) (GeoReach, error) {
	switch GeoReach(s) {
	case ReachSingleRegion, ReachMultiRegion, ReachGlobal:
		return GeoReach(s), nil
	}
	return "", fmt.Errorf("%w: invalid geographical_reach %q", ErrValidation, s)
}

func ParseBudgetRange(s string) (BudgetRange, error) {
	switch BudgetRange(s) {
	case BudgetStartup, BudgetMedium, BudgetEnterprise:
		return BudgetRange(s), nil
	}
	return "", fmt.Errorf("%w: invalid budget_range %q", ErrValidation, s)
}

func ParseComplianceRequirement(s string) (ComplianceRequirement, error) {
	switch ComplianceRequirement(s) {
	case ComplianceHIPAA, CompliancePCI, ComplianceSOX, ComplianceGDPR, ComplianceNone:
		return ComplianceRequirement(s), nil
	}
	return "", fmt.Errorf("%w: invalid compliance_requirement %q", ErrValidation, s)
}

func ParseServiceCategory(s string) (ServiceCategory, error) {
	switch ServiceCategory(s) {
	case CategoryCompute, CategoryDatabase, CategoryStorage,
		CategoryLoadBalancer, CategoryCDN, CategoryDNS, CategoryMonitoring:
		return ServiceCategory(s), nil
	}
	return "", fmt.Errorf("%w: invalid service category %q", ErrValidation, s)
}
