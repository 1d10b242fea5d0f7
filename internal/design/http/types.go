package http

import (
	"github.com/archfind/arch-backend/internal/design/domain"
	"github.com/archfind/arch-backend/internal/design/service"
)

// Handler bundles the dependencies for design HTTP endpoints.
type Handler struct {
	svc *service.DesignService
}

func New(svc *service.DesignService) *Handler {
	return &Handler{svc: svc}
}

type createReq struct {
	Questionnaire domain.QuestionnaireInput `json:"questionnaire"`
	Preferences   domain.UserPreferences    `json:"preferences,omitempty"`
}

type modifyReq struct {
	Questionnaire *service.QuestionnaireDelta `json:"questionnaire,omitempty"`
	Preferences   domain.UserPreferences      `json:"preferences,omitempty"`
}

type cloneReq struct {
	Name          string                      `json:"name"`
	Questionnaire *service.QuestionnaireDelta `json:"questionnaire,omitempty"`
	Preferences   domain.UserPreferences      `json:"preferences,omitempty"`
}

type updateConfigReq struct {
	Configuration map[string]any `json:"configuration"`
}

type importReq struct {
	ProjectName string                 `json:"project_name"`
	Services    map[string]string      `json:"services"`
	Preferences domain.UserPreferences `json:"preferences,omitempty"`
}
