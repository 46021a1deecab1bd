package strategy

import (
	"context"
	"encoding/json"
	"fmt"

	"golang-family-office/internal/patrimony/repository"
	"golang-family-office/internal/patrimony/service"
	"golang-family-office/pkg/common"
	"golang-family-office/pkg/logger"
)

// AlertCheckStrategy regenerates the threshold alerts of every family.
type AlertCheckStrategy struct {
	logger       *logger.Logger
	familyRepo   repository.FamilyRepository
	alertService service.AlertService
}

// NewAlertCheckStrategy creates a new AlertCheckStrategy.
func NewAlertCheckStrategy(
	log *logger.Logger,
	familyRepo repository.FamilyRepository,
	alertService service.AlertService,
) TaskExecutionStrategy {
	return &AlertCheckStrategy{
		logger:       log,
		familyRepo:   familyRepo,
		alertService: alertService,
	}
}

// GetType returns the task type this strategy handles.
func (s *AlertCheckStrategy) GetType() string {
	return common.TaskTypeAlertCheck
}

// Execute triggers the alert regeneration for each family in turn.
func (s *AlertCheckStrategy) Execute(ctx context.Context) (string, error) {
	families, err := s.familyRepo.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list families: %w", err)
	}

	var checked, generated, failed int
	for _, family := range families {
		result, err := s.alertService.TriggerForFamily(ctx, family.ID)
		if err != nil {
			s.logger.Error("Failed to regenerate alerts",
				logger.IntField("family_id", int(family.ID)),
				logger.ErrorField(err))
			failed++
			continue
		}
		checked++
		generated += result.Generated
	}

	result, _ := json.Marshal(map[string]int{
		"families_checked": checked,
		"alerts_generated": generated,
		"failed":           failed,
	})
	return string(result), nil
}
