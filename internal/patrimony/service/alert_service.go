package service

import (
	"context"
	"fmt"
	"strings"

	"golang-family-office/internal/engine"
	"golang-family-office/internal/entity"
	"golang-family-office/internal/patrimony/dto"
	"golang-family-office/internal/patrimony/repository"
	"golang-family-office/pkg/logger"
	"golang-family-office/pkg/telegram"
	"golang-family-office/pkg/utils"
)

// AlertService regenerates and lists threshold alerts.
type AlertService interface {
	TriggerForFamily(ctx context.Context, familyID uint) (*dto.TriggerAlertsResponse, error)
	GetAlertsByFamily(ctx context.Context, familyID uint) ([]dto.AlertResponse, error)
}

// NewAlertService creates a new alert service.
func NewAlertService(
	log *logger.Logger,
	familyRepo repository.FamilyRepository,
	alertRepo repository.AlertRepository,
	valuation ValuationService,
	notifier telegram.Notifier,
) AlertService {
	return &alertService{
		log:        log,
		familyRepo: familyRepo,
		alertRepo:  alertRepo,
		valuation:  valuation,
		notifier:   notifier,
	}
}

type alertService struct {
	log        *logger.Logger
	familyRepo repository.FamilyRepository
	alertRepo  repository.AlertRepository
	valuation  ValuationService
	notifier   telegram.Notifier
}

// TriggerForFamily snapshots the family's holdings, derives the alert set and
// replaces the managed kinds in one transaction. Notification failures do not
// fail the trigger.
func (s *alertService) TriggerForFamily(ctx context.Context, familyID uint) (*dto.TriggerAlertsResponse, error) {
	family, err := s.familyRepo.FindByID(ctx, familyID)
	if err != nil {
		return nil, err
	}
	holdings, err := s.valuation.GetHoldings(ctx, family)
	if err != nil {
		return nil, err
	}

	delta := engine.GenerateAlerts(familyID, holdings, utils.TimeNowBRT())

	kinds := make([]string, 0, len(delta.ToRetract))
	for _, kind := range delta.ToRetract {
		kinds = append(kinds, string(kind))
	}
	rows := make([]entity.Alert, 0, len(delta.ToUpsert))
	for _, alert := range delta.ToUpsert {
		rows = append(rows, entity.Alert{
			ID:        alert.ID,
			FamilyID:  alert.FamilyID,
			AssetID:   alert.AssetID,
			Kind:      string(alert.Kind),
			Message:   alert.Message,
			Severity:  string(alert.Severity),
			CreatedAt: alert.CreatedAt,
		})
	}

	if err := s.alertRepo.ReplaceForFamily(ctx, familyID, kinds, rows); err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "Regenerated alerts",
		logger.IntField("family_id", int(familyID)),
		logger.IntField("generated", len(rows)))

	if len(rows) > 0 {
		s.notify(ctx, family.Name, rows)
	}

	responses := make([]dto.AlertResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, toAlertResponse(&rows[i]))
	}
	return &dto.TriggerAlertsResponse{
		FamilyID:  familyID,
		Generated: len(rows),
		Alerts:    responses,
	}, nil
}

func (s *alertService) GetAlertsByFamily(ctx context.Context, familyID uint) ([]dto.AlertResponse, error) {
	alerts, err := s.alertRepo.FindByFamilyID(ctx, familyID)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.AlertResponse, 0, len(alerts))
	for i := range alerts {
		responses = append(responses, toAlertResponse(&alerts[i]))
	}
	return responses, nil
}

func (s *alertService) notify(ctx context.Context, familyName string, alerts []entity.Alert) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⚠️ Alertas para a família %s:\n", familyName))
	for _, alert := range alerts {
		sb.WriteString(fmt.Sprintf("- [%s] %s\n", alert.Severity, alert.Message))
	}
	if err := s.notifier.SendMessage(sb.String()); err != nil {
		s.log.WarnContext(ctx, "Failed to send alert notification", logger.ErrorField(err))
	}
}
