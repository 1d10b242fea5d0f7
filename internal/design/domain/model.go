package domain

import (
	"fmt"
	"strings"
	"time"
)

// Questionnaire is the validated requirements input everything else is derived from.
// Construct via NewQuestionnaire so enum normalization happens exactly once at the boundary.
type Questionnaire struct {
	ProjectName string                  `json:"project_name"`
	Description string                  `json:"description"`
	Traffic     TrafficVolume           `json:"traffic_volume"`
	Sensitivity DataSensitivity         `json:"data_sensitivity"`
	Compute     ComputePreference       `json:"compute_preference"`
	Database    DatabaseType            `json:"database_type"`
	Storage     StorageNeeds            `json:"storage_needs"`
	Reach       GeoReach                `json:"geographical_reach"`
	Budget      BudgetRange             `json:"budget_range"`
	Compliance  []ComplianceRequirement `json:"compliance_requirements"`
}

// QuestionnaireInput is the raw flat record accepted at the boundary.
type QuestionnaireInput struct {
	ProjectName string   `json:"project_name"`
	Description string   `json:"description"`
	Traffic     string   `json:"traffic_volume"`
	Sensitivity string   `json:"data_sensitivity"`
	Compute     string   `json:"compute_preference"`
	Database    string   `json:"database_type"`
	Storage     string   `json:"storage_needs"`
	Reach       string   `json:"geographical_reach"`
	Budget      string   `json:"budget_range"`
	Compliance  []string `json:"compliance_requirements"`
}

// NewQuestionnaire validates and normalizes a raw input record.
func NewQuestionnaire(in QuestionnaireInput) (Questionnaire, error) {
	var q Questionnaire

	q.ProjectName = strings.TrimSpace(in.ProjectName)
	if q.ProjectName == "" {
		return q, fmt.Errorf("%w: project_name required", ErrValidation)
	}
	q.Description = strings.TrimSpace(in.Description)
	if q.Description == "" {
		return q, fmt.Errorf("%w: description required", ErrValidation)
	}

	var err error
	if q.Traffic, err = ParseTrafficVolume(in.Traffic); err != nil {
		return q, err
	}
	if q.Sensitivity, err = ParseDataSensitivity(in.Sensitivity); err != nil {
		return q, err
	}
	if q.Compute, err = ParseComputePreference(in.Compute); err != nil {
		return q, err
	}
	if q.Database, err = ParseDatabaseType(in.Database); err != nil {
		return q, err
	}
	if q.Storage, err = ParseStorageNeeds(in.Storage); err != nil {
		return q, err
	}
	if q.Reach, err = ParseGeoReach(in.Reach); err != nil {
		return q, err
	}
	if q.Budget, err = ParseBudgetRange(in.Budget); err != nil {
		return q, err
	}

	seen := map[ComplianceRequirement]bool{}
	for _, raw := range in.Compliance {
		c, err := ParseComplianceRequirement(raw)
		if err != nil {
			return q, err
		}
		if c == ComplianceNone || seen[c] {
			continue
		}
		seen[c] = true
		q.Compliance = append(q.Compliance, c)
	}

	return q, nil
}

// ServiceSelection maps a service category to the chosen managed-service label.
type ServiceSelection map[ServiceCategory]string

// Clone returns an independent copy of the selection.
func (s ServiceSelection) Clone() ServiceSelection {
	out := make(ServiceSelection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// CostLineItem is one priced entry of the estimate. Cost is a formatted dollar
// figure ("$25/month"); parsing it back is part of the documented contract.
type CostLineItem struct {
	Service     string `json:"service"`
	Cost        string `json:"cost"`
	Description string `json:"description"`
}

type Recommendation struct {
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
	// SavingsPct is a decimal string with a trailing percent sign, e.g. "40%".
	// Consumers rank recommendations by parsing it; the format is load-bearing.
	SavingsPct string `json:"potential_savings"`
}

type CostEstimate struct {
	Range        string         `json:"range"`
	LineItems    []CostLineItem `json:"line_items"`
	MonthlyTotal float64        `json:"monthly_total"`
	// Confidence drops when a configured live price source failed and the
	// static tables were used instead.
	Confidence      float64          `json:"confidence"`
	Recommendations []Recommendation `json:"recommendations"`
}

// DiagramNode has a stable id (the category key) and a fixed layout slot.
type DiagramNode struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type DiagramEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type DiagramGraph struct {
	Nodes []DiagramNode `json:"nodes"`
	Edges []DiagramEdge `json:"edges"`
}

// UserPreferences holds per-design override values, merged per key with
// last-write-wins on every update.
type UserPreferences map[string]any

// Merge returns a copy of p with delta applied per key. Nil-safe on both sides.
func (p UserPreferences) Merge(delta UserPreferences) UserPreferences {
	out := make(UserPreferences, len(p)+len(delta))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range delta {
		out[k] = v
	}
	return out
}

func (p UserPreferences) Clone() UserPreferences {
	return UserPreferences{}.Merge(p)
}

// Architecture is the immutable aggregate of everything generated for one
// design. Regeneration always produces a fresh value, never mutates.
type Architecture struct {
	ID               string           `json:"id"`
	ProjectName      string           `json:"project_name"`
	Questionnaire    Questionnaire    `json:"questionnaire"`
	Services         ServiceSelection `json:"services"`
	SecurityFeatures []string         `json:"security_features"`
	Cost             CostEstimate     `json:"cost"`
	Diagram          DiagramGraph     `json:"diagram"`
	Terraform        string           `json:"terraform"`
	CloudFormation   string           `json:"cloudformation"`
	Recommendations  []Recommendation `json:"recommendations"`
	GeneratedAt      time.Time        `json:"generated_at"`
}

// DesignSummary is the listing shape: identity plus a few display fields.
type DesignSummary struct {
	PublicID  string    `json:"public_id"`
	Name      string    `json:"name"`
	CostRange string    `json:"cost_range"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Design is the persistence-facing aggregate: a stored architecture plus the
// questionnaire and preferences it was generated from.
type Design struct {
	PublicID      string          `json:"public_id"`
	Name          string          `json:"name"`
	Questionnaire Questionnaire   `json:"questionnaire"`
	Architecture  Architecture    `json:"architecture"`
	Preferences   UserPreferences `json:"preferences"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
