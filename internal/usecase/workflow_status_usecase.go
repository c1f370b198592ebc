package usecase

import (
	"strings"

	"career-coach/internal/workflow"
)

type WorkflowStatusUsecase interface {
	GetStatus(id string) (workflow.Record, error)
}

type WorkflowStatus struct {
	workflows *workflow.Store
}

func NewWorkflowStatusUsecase(workflows *workflow.Store) *WorkflowStatus {
	return &WorkflowStatus{workflows: workflows}
}

func (u *WorkflowStatus) GetStatus(id string) (workflow.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return workflow.Record{}, ErrInvalidInput
	}
	rec, ok := u.workflows.Get(id)
	if !ok {
		return workflow.Record{}, ErrWorkflowNotFound
	}
	return rec, nil
}

var _ WorkflowStatusUsecase = (*WorkflowStatus)(nil)
