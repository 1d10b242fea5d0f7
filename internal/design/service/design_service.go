// Package service orchestrates the generation pipeline (selector, costing,
// diagram, templates) and the modify/clone/regenerate semantics over stored
// designs. Architectures are immutable: every update path builds a fresh value.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/archfind/arch-backend/internal/design/costing"
	"github.com/archfind/arch-backend/internal/design/diagram"
	"github.com/archfind/arch-backend/internal/design/domain"
	"github.com/archfind/arch-backend/internal/design/iac"
	"github.com/archfind/arch-backend/internal/design/selector"
)

// Repository is the narrow persistence boundary. Replace must be atomic for a
// single design: readers see either the old snapshot or the new one.
type Repository interface {
	Create(ctx context.Context, userID string, d *domain.Design) error
	Get(ctx context.Context, userID, publicID string) (*domain.Design, error)
	List(ctx context.Context, userID string) ([]domain.DesignSummary, error)
	Replace(ctx context.Context, userID string, d *domain.Design) error
	SoftDelete(ctx context.Context, userID, publicID string) (bool, error)
}

type DesignService struct {
	repo      Repository
	estimator *costing.Estimator
	now       func() time.Time
}

func NewDesignService(repo Repository, estimator *costing.Estimator) *DesignService {
	return &DesignService{repo: repo, estimator: estimator, now: time.Now}
}

// generate runs the full pipeline. The selector output feeds every other
// stage; cost, diagram and templates are independent given the selection.
func (s *DesignService) generate(ctx context.Context, id string, q domain.Questionnaire, prefs domain.UserPreferences) domain.Architecture {
	sel := selector.Select(q)
	cost := s.estimator.Estimate(ctx, q, sel, prefs)

	return domain.Architecture{
		ID:               id,
		ProjectName:      q.ProjectName,
		Questionnaire:    q,
		Services:         sel,
		SecurityFeatures: selector.SecurityFeatures(q),
		Cost:             cost,
		Diagram:          diagram.Build(sel),
		Terraform:        iac.RenderTerraform(q, sel, prefs),
		CloudFormation:   iac.RenderCloudFormation(q, sel, prefs),
		Recommendations:  cost.Recommendations,
		GeneratedAt:      s.now().UTC(),
	}
}

// Create generates a new design from a validated questionnaire.
func (s *DesignService) Create(ctx context.Context, userID string, q domain.Questionnaire, prefs domain.UserPreferences) (*domain.Design, error) {
	if prefs == nil {
		prefs = domain.UserPreferences{}
	}
	d := &domain.Design{
		Name:          q.ProjectName,
		Questionnaire: q,
		Architecture:  s.generate(ctx, uuid.New().String(), q, prefs),
		Preferences:   prefs,
	}
	if err := s.repo.Create(ctx, userID, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DesignService) Get(ctx context.Context, userID, publicID string) (*domain.Design, error) {
	return s.repo.Get(ctx, userID, publicID)
}

func (s *DesignService) List(ctx context.Context, userID string) ([]domain.DesignSummary, error) {
	return s.repo.List(ctx, userID)
}

func (s *DesignService) Delete(ctx context.Context, userID, publicID string) (bool, error) {
	return s.repo.SoftDelete(ctx, userID, publicID)
}

// Modify merges the questionnaire delta into the stored questionnaire and the
// preference delta into the stored preferences (per-key last-write-wins). The
// pipeline re-runs only when either delta is non-empty; an all-empty modify
// touches nothing but the timestamp.
func (s *DesignService) Modify(ctx context.Context, userID, publicID string, qd *QuestionnaireDelta, prefDelta domain.UserPreferences) (*domain.Design, error) {
	d, err := s.repo.Get(ctx, userID, publicID)
	if err != nil {
		return nil, err
	}
	return s.applyModify(ctx, userID, d, qd, prefDelta)
}

func (s *DesignService) applyModify(ctx context.Context, userID string, d *domain.Design, qd *QuestionnaireDelta, prefDelta domain.UserPreferences) (*domain.Design, error) {
	if qd.empty() && len(prefDelta) == 0 {
		d.UpdatedAt = s.now().UTC()
		if err := s.repo.Replace(ctx, userID, d); err != nil {
			return nil, err
		}
		return d, nil
	}

	merged, err := mergeQuestionnaire(d.Questionnaire, qd)
	if err != nil {
		return nil, err
	}

	d.Questionnaire = merged
	d.Name = merged.ProjectName
	d.Preferences = d.Preferences.Merge(prefDelta)
	d.Architecture = s.generate(ctx, d.Architecture.ID, merged, d.Preferences)
	d.UpdatedAt = s.now().UTC()

	if err := s.repo.Replace(ctx, userID, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Clone deep-copies the design under a new identity and name. A supplied
// delta behaves as Modify against the copy before it is returned; the
// original is never touched.
func (s *DesignService) Clone(ctx context.Context, userID, publicID, newName string, qd *QuestionnaireDelta, prefDelta domain.UserPreferences) (*domain.Design, error) {
	src, err := s.repo.Get(ctx, userID, publicID)
	if err != nil {
		return nil, err
	}

	q := src.Questionnaire
	q.ProjectName = newName
	q.Compliance = append([]domain.ComplianceRequirement(nil), src.Questionnaire.Compliance...)
	prefs := src.Preferences.Clone()

	cp := &domain.Design{
		Name:          newName,
		Questionnaire: q,
		Architecture:  s.generate(ctx, uuid.New().String(), q, prefs),
		Preferences:   prefs,
	}
	if err := s.repo.Create(ctx, userID, cp); err != nil {
		return nil, err
	}

	if qd.empty() && len(prefDelta) == 0 {
		return cp, nil
	}
	return s.applyModify(ctx, userID, cp, qd, prefDelta)
}

// Regenerate re-runs the full pipeline against the stored questionnaire and
// preferences unconditionally.
func (s *DesignService) Regenerate(ctx context.Context, userID, publicID string) (*domain.Design, error) {
	d, err := s.repo.Get(ctx, userID, publicID)
	if err != nil {
		return nil, err
	}

	d.Architecture = s.generate(ctx, d.Architecture.ID, d.Questionnaire, d.Preferences)
	d.UpdatedAt = s.now().UTC()

	if err := s.repo.Replace(ctx, userID, d); err != nil {
		return nil, err
	}
	return d, nil
}

// configKeyTranslation maps caller-facing configuration keys to internal
// preference keys, per service category.
var configKeyTranslation = map[domain.ServiceCategory]map[string]string{
	domain.CategoryCompute: {
		"instance_type": "ec2_instance_type",
		"storage_size":  "ec2_storage_size",
		"storage_type":  "ec2_storage_type",
		"memory_mb":     "lambda_memory_mb",
		"timeout":       "lambda_timeout",
		"runtime":       "lambda_runtime",
	},
	domain.CategoryDatabase: {
		"instance_class": "rds_instance_class",
		"storage_gb":     "rds_storage_gb",
		"engine":         "rds_engine",
		"multi_az":       "rds_multi_az",
	},
	domain.CategoryStorage: {
		"storage_class": "s3_storage_class",
		"versioning":    "s3_versioning",
		"encryption":    "s3_encryption",
	},
	domain.CategoryCDN: {
		"price_class": "cloudfront_price_class",
		"caching":     "cloudfront_caching",
	},
}

// UpdateServiceConfiguration is the restricted Modify: caller keys are
// translated per category, unknown keys are silently dropped, and any
// recognized key triggers a full regeneration.
func (s *DesignService) UpdateServiceConfiguration(ctx context.Context, userID, publicID string, category domain.ServiceCategory, config map[string]any) (*domain.Design, error) {
	delta := domain.UserPreferences{}
	for callerKey, v := range config {
		if internalKey, ok := configKeyTranslation[category][callerKey]; ok {
			delta[internalKey] = v
		}
	}
	return s.Modify(ctx, userID, publicID, nil, delta)
}
