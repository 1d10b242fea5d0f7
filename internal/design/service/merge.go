package service

import (
	"strings"

	"github.com/archfind/arch-backend/internal/design/domain"
)

// QuestionnaireDelta is a partial questionnaire update. Nil fields are left
// untouched; set fields are validated against the closed enums at merge time.
type QuestionnaireDelta struct {
	ProjectName *string   `json:"project_name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Traffic     *string   `json:"traffic_volume,omitempty"`
	Sensitivity *string   `json:"data_sensitivity,omitempty"`
	Compute     *string   `json:"compute_preference,omitempty"`
	Database    *string   `json:"database_type,omitempty"`
	Storage     *string   `json:"storage_needs,omitempty"`
	Reach       *string   `json:"geographical_reach,omitempty"`
	Budget      *string   `json:"budget_range,omitempty"`
	Compliance  *[]string `json:"compliance_requirements,omitempty"`
}

func (d *QuestionnaireDelta) empty() bool {
	if d == nil {
		return true
	}
	return d.ProjectName == nil && d.Description == nil && d.Traffic == nil &&
		d.Sensitivity == nil && d.Compute == nil && d.Database == nil &&
		d.Storage == nil && d.Reach == nil && d.Budget == nil && d.Compliance == nil
}

// mergeQuestionnaire applies the delta to a copy of q. The stored value is
// never touched; re-validation happens through the same parse path as the
// boundary so an invalid delta is rejected before any regeneration runs.
func mergeQuestionnaire(q domain.Questionnaire, d *QuestionnaireDelta) (domain.Questionnaire, error) {
	if d.empty() {
		return q, nil
	}

	in := domain.QuestionnaireInput{
		ProjectName: q.ProjectName,
		Description: q.Description,
		Traffic:     string(q.Traffic),
		Sensitivity: string(q.Sensitivity),
		Compute:     string(q.Compute),
		Database:    string(q.Database),
		Storage:     string(q.Storage),
		Reach:       string(q.Reach),
		Budget:      string(q.Budget),
	}
	for _, c := range q.Compliance {
		in.Compliance = append(in.Compliance, string(c))
	}

	if d.ProjectName != nil {
		in.ProjectName = strings.TrimSpace(*d.ProjectName)
	}
	if d.Description != nil {
		in.Description = strings.TrimSpace(*d.Description)
	}
	if d.Traffic != nil {
		in.Traffic = *d.Traffic
	}
	if d.Sensitivity != nil {
		in.Sensitivity = *d.Sensitivity
	}
	if d.Compute != nil {
		in.Compute = *d.Compute
	}
	if d.Database != nil {
		in.Database = *d.Database
	}
	if d.Storage != nil {
		in.Storage = *d.Storage
	}
	if d.Reach != nil {
		in.Reach = *d.Reach
	}
	if d.Budget != nil {
		in.Budget = *d.Budget
	}
	if d.Compliance != nil {
		in.Compliance = *d.Compliance
	}

	return domain.NewQuestionnaire(in)
}
