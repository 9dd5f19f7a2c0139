package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"talent-hub/internal/email"
	"talent-hub/internal/scoring"
)

// DigestReceipt resume el envio del resumen de riesgo a un manager.
type DigestReceipt struct {
	ManagerID string `json:"manager_id"`
	Recipient string `json:"recipient"`
	Flagged   int    `json:"flagged"`
	Sent      bool   `json:"sent"`
}

// NotifyAtRisk clasifica al equipo del manager y le envia por correo los reportes
// en riesgo Medium o High. Sin nadie marcado no se envia nada.
func (s *PerformanceService) NotifyAtRisk(ctx context.Context, managerID string) (DigestReceipt, error) {
	manager, err := s.employees.GetByID(ctx, managerID)
	if err != nil {
		return DigestReceipt{}, notFound(err, "manager", managerID)
	}
	if strings.TrimSpace(manager.Email) == "" {
		return DigestReceipt{}, fmt.Errorf("%w: manager %s has no email", ErrInvalidInput, managerID)
	}

	report, err := s.AtRiskTeam(ctx, managerID)
	if err != nil {
		return DigestReceipt{}, err
	}

	flagged := make([]TeamRiskMember, 0, len(report.Members))
	for _, m := range report.Members {
		if m.Assessment.Tier != scoring.ChurnLow {
			flagged = append(flagged, m)
		}
	}
	receipt := DigestReceipt{ManagerID: managerID, Recipient: manager.Email, Flagged: len(flagged)}
	if len(flagged) == 0 {
		return receipt, nil
	}

	if s.notifier == nil {
		return receipt, fmt.Errorf("%w: notifier not configured", ErrNotifyFailed)
	}
	msg := email.Message{
		To:      manager.Email,
		Subject: fmt.Sprintf("Team churn digest: %d of %d reports flagged", len(flagged), len(report.Members)),
		Body:    digestBody(manager.Name, flagged, report.Failures),
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Warn("send at-risk digest failed", zap.Error(err), zap.String("manager_id", managerID))
		return receipt, fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}
	receipt.Sent = true
	return receipt, nil
}

func digestBody(managerName string, flagged []TeamRiskMember, failures []scoring.BatchFailure) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nThe latest quarter flags these direct reports:\n\n", managerName)
	for _, m := range flagged {
		fmt.Fprintf(&b, "- %s (%s): %s risk, score %d", m.Name, m.Quarter, m.Assessment.Tier, m.Assessment.Score)
		if len(m.Assessment.Factors) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(m.Assessment.Factors, ", "))
		}
		b.WriteString("\n")
	}
	if len(failures) > 0 {
		ids := make([]string, 0, len(failures))
		for _, f := range failures {
			ids = append(ids, f.ID)
		}
		fmt.Fprintf(&b, "\nNot scored (missing data): %s\n", strings.Join(ids, ", "))
	}
	return b.String()
}
