package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/archfind/arch-backend/internal/design/diagram"
	"github.com/archfind/arch-backend/internal/design/domain"
	"github.com/archfind/arch-backend/internal/design/iac"
)

// ImportResult is what the scan/import boundary produces: artifacts rendered
// from an externally discovered selection, without running the selector.
type ImportResult struct {
	Services       domain.ServiceSelection `json:"services"`
	Diagram        domain.DiagramGraph     `json:"diagram"`
	Terraform      string                  `json:"terraform"`
	CloudFormation string                  `json:"cloudformation"`
}

// RenderImported accepts a category→service map discovered from a live
// account (e.g. by an account scanner) and renders the diagram and both
// templates for it. Category keys must be valid; the service labels are taken
// as-is.
func (s *DesignService) RenderImported(ctx context.Context, projectName string, raw map[string]string, prefs domain.UserPreferences) (*ImportResult, error) {
	projectName = strings.TrimSpace(projectName)
	if projectName == "" {
		return nil, fmt.Errorf("%w: project_name required", domain.ErrValidation)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: services required", domain.ErrValidation)
	}
	if prefs == nil {
		prefs = domain.UserPreferences{}
	}

	sel := domain.ServiceSelection{}
	for k, label := range raw {
		cat, err := domain.ParseServiceCategory(k)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("%w: empty service label for category %q", domain.ErrValidation, k)
		}
		sel[cat] = strings.TrimSpace(label)
	}

	q := inferQuestionnaire(projectName, sel)

	return &ImportResult{
		Services:       sel,
		Diagram:        diagram.Build(sel),
		Terraform:      iac.RenderTerraform(q, sel, prefs),
		CloudFormation: iac.RenderCloudFormation(q, sel, prefs),
	}, nil
}

// inferQuestionnaire reconstructs just enough questionnaire shape from an
// imported selection for the renderers to pick resource types. Labels decide
// compute and database kinds; presence of networking categories decides the
// rest.
func inferQuestionnaire(projectName string, sel domain.ServiceSelection) domain.Questionnaire {
	q := domain.Questionnaire{
		ProjectName: projectName,
		Description: "Imported from account scan",
		Sensitivity: domain.SensitivityInternal,
		Storage:     domain.StorageModerate,
		Budget:      domain.BudgetMedium,
		Traffic:     domain.TrafficLow,
		Reach:       domain.ReachSingleRegion,
		Database:    domain.DatabaseNone,
	}

	compute := strings.ToLower(sel[domain.CategoryCompute])
	switch {
	case strings.Contains(compute, "lambda"):
		q.Compute = domain.ComputeServerless
	case strings.Contains(compute, "ecs"), strings.Contains(compute, "fargate"), strings.Contains(compute, "kubernetes"), strings.Contains(compute, "eks"):
		q.Compute = domain.ComputeContainers
	default:
		q.Compute = domain.ComputeVMs
	}

	if db, ok := sel[domain.CategoryDatabase]; ok {
		if strings.Contains(strings.ToLower(db), "dynamo") {
			q.Database = domain.DatabaseNoSQL
		} else {
			q.Database = domain.DatabaseSQL
		}
	}
	if _, ok := sel[domain.CategoryLoadBalancer]; ok {
		q.Traffic = domain.TrafficMedium
	}
	if _, ok := sel[domain.CategoryCDN]; ok {
		q.Reach = domain.ReachGlobal
	}

	return q
}
