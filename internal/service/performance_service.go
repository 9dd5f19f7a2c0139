package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"talent-hub/internal/domain"
	"talent-hub/internal/email"
	"talent-hub/internal/repository"
	"talent-hub/internal/scoring"
)

type CollaboratorFit struct {
	CollaboratorID       string                  `json:"collaborator_id"`
	Name                 string                  `json:"name"`
	Title                string                  `json:"title"`
	InteractionFrequency string                  `json:"interaction_frequency"`
	TimeAllocation       int                     `json:"time_allocation_percent"`
	Chemistry            scoring.ChemistryResult `json:"chemistry"`
	Relationship         float64                 `json:"relationship_score"`
	ShowsFlexibility     bool                    `json:"shows_flexibility"`
	FlexibilityNote      string                  `json:"flexibility_note,omitempty"`
}

type CollaborationSummary struct {
	AverageChemistry    float64 `json:"average_chemistry"`
	AverageRelationship float64 `json:"average_relationship"`
	FlexibilityCount    int     `json:"flexibility_count"`
}

type EmployeeTeamReport struct {
	EmployeeID    string                    `json:"employee_id"`
	Collaborators []CollaboratorFit         `json:"collaborators"`
	Skipped       []string                  `json:"skipped,omitempty"`
	Flexibility   scoring.FlexibilityResult `json:"flexibility"`
	Summary       CollaborationSummary      `json:"summary"`
}

type ChurnReport struct {
	EmployeeID     string                  `json:"employee_id"`
	Name           string                  `json:"name"`
	Quarter        string                  `json:"quarter"`
	Signals        scoring.ChurnSignals    `json:"signals"`
	Assessment     scoring.ChurnAssessment `json:"assessment"`
	Insight        *domain.Insight         `json:"insight,omitempty"`
	NarrativeError string                  `json:"narrative_error,omitempty"`
}

type TeamRiskMember struct {
	EmployeeID string                  `json:"employee_id"`
	Name       string                  `json:"name"`
	Quarter    string                  `json:"quarter"`
	Assessment scoring.ChurnAssessment `json:"assessment"`
}

type TeamRiskReport struct {
	ManagerID    string                    `json:"manager_id"`
	Members      []TeamRiskMember          `json:"members"`
	Failures     []scoring.BatchFailure    `json:"failures"`
	Distribution map[scoring.ChurnTier]int `json:"distribution"`
	AtRisk       []string                  `json:"at_risk"`
}

// PerformanceService cubre colaboracion observada y riesgo de rotacion de empleados.
type PerformanceService struct {
	employees      repository.EmployeeRepository
	assessments    repository.AssessmentRepository
	performance    repository.PerformanceRepository
	collaborations repository.CollaborationRepository
	engine         *ScoringEngine
	insights       *InsightService
	notifier       email.Sender
	validate       *validator.Validate
	batchLimit     int
	logger         *zap.Logger
}

func NewPerformanceService(
	employees repository.EmployeeRepository,
	assessments repository.AssessmentRepository,
	performance repository.PerformanceRepository,
	collaborations repository.CollaborationRepository,
	engine *ScoringEngine,
	insights *InsightService,
	notifier email.Sender,
	batchLimit int,
	logger *zap.Logger,
) *PerformanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PerformanceService{
		employees:      employees,
		assessments:    assessments,
		performance:    performance,
		collaborations: collaborations,
		engine:         engine,
		insights:       insights,
		notifier:       notifier,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		batchLimit:     batchLimit,
		logger:         logger,
	}
}

// EmployeeCollaboration cruza la quimica predicha con la calidad de relacion observada.
func (s *PerformanceService) EmployeeCollaboration(ctx context.Context, employeeID string) (EmployeeTeamReport, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return EmployeeTeamReport{}, notFound(err, "employee", employeeID)
	}
	self, err := s.assessments.LatestForSubject(ctx, employee.ID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return EmployeeTeamReport{}, fmt.Errorf("load assessment %s: %w", employee.ID, err)
	}
	if self.Behavioral == nil {
		return EmployeeTeamReport{}, fmt.Errorf("%w: employee %s has no behavioral profile", scoring.ErrInsufficientData, employee.ID)
	}
	if err := self.Behavioral.Validate(); err != nil {
		return EmployeeTeamReport{}, fmt.Errorf("employee %s behavioral profile: %w", employee.ID, err)
	}

	links, err := s.collaborations.ListForEmployee(ctx, employee.ID)
	if err != nil {
		return EmployeeTeamReport{}, fmt.Errorf("list collaborations for %s: %w", employee.ID, err)
	}
	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.CollaboratorID)
	}
	people, err := s.employees.ListByIDs(ctx, ids)
	if err != nil {
		return EmployeeTeamReport{}, fmt.Errorf("load collaborators: %w", err)
	}
	byID := make(map[string]domain.Employee, len(people))
	for _, e := range people {
		byID[e.ID] = e
	}
	profiles, err := s.assessments.LatestForSubjects(ctx, ids)
	if err != nil {
		return EmployeeTeamReport{}, fmt.Errorf("load collaborator assessments: %w", err)
	}

	report := EmployeeTeamReport{EmployeeID: employee.ID, Collaborators: []CollaboratorFit{}}
	pairs := make([]scoring.CollaborationPair, 0, len(links))
	for _, l := range links {
		other, ok := byID[l.CollaboratorID]
		a := profiles[l.CollaboratorID]
		if !ok || a.Behavioral == nil {
			report.Skipped = append(report.Skipped, l.CollaboratorID)
			continue
		}
		chem, err := s.engine.Chemistry.Chemistry(*self.Behavioral, *a.Behavioral)
		if err != nil {
			s.logger.Warn("skipping collaborator with invalid profile",
				zap.String("employee_id", employee.ID),
				zap.String("collaborator_id", l.CollaboratorID),
				zap.Error(err),
			)
			report.Skipped = append(report.Skipped, l.CollaboratorID)
			continue
		}
		fit := CollaboratorFit{
			CollaboratorID:       other.ID,
			Name:                 other.Name,
			Title:                other.Title,
			InteractionFrequency: l.InteractionFrequency,
			TimeAllocation:       l.TimeAllocation,
			Chemistry:            chem,
			Relationship:         l.RelationshipScore,
			ShowsFlexibility:     chem.Score < 55 && l.RelationshipScore >= 70,
		}
		if fit.ShowsFlexibility {
			fit.FlexibilityNote = fmt.Sprintf(
				"%s demonstrates strong interpersonal flexibility with %s - maintaining a %.0f%% relationship quality despite only %d%% natural chemistry.",
				employee.Name, other.Name, l.RelationshipScore, chem.Score)
		}
		report.Collaborators = append(report.Collaborators, fit)
		pairs = append(pairs, scoring.CollaborationPair{
			CollaboratorID: other.ID,
			Chemistry:      float64(chem.Score),
			Relationship:   l.RelationshipScore,
		})
	}

	sort.SliceStable(report.Collaborators, func(i, j int) bool {
		a, b := report.Collaborators[i], report.Collaborators[j]
		if a.TimeAllocation != b.TimeAllocation {
			return a.TimeAllocation > b.TimeAllocation
		}
		return a.Relationship > b.Relationship
	})
	report.Flexibility, err = s.engine.Chemistry.Flexibility(pairs)
	if err != nil {
		return EmployeeTeamReport{}, fmt.Errorf("flexibility for %s: %w", employee.ID, err)
	}
	report.Summary = summarizeCollaboration(report.Collaborators)
	return report, nil
}

// ChurnRisk clasifica al empleado con su ultimo trimestre cargado.
func (s *PerformanceService) ChurnRisk(ctx context.Context, employeeID string, withNarrative bool) (ChurnReport, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return ChurnReport{}, notFound(err, "employee", employeeID)
	}
	metric, err := s.performance.LatestForEmployee(ctx, employee.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ChurnReport{}, fmt.Errorf("%w: employee %s has no performance metrics", scoring.ErrInsufficientData, employee.ID)
		}
		return ChurnReport{}, fmt.Errorf("load performance %s: %w", employee.ID, err)
	}

	signals := churnSignals(employee, metric)
	report := ChurnReport{
		EmployeeID: employee.ID,
		Name:       employee.Name,
		Quarter:    metric.Quarter,
		Signals:    signals,
		Assessment: s.engine.Churn.Classify(signals),
	}
	if withNarrative {
		report.Insight, report.NarrativeError = s.insights.TryNarrate(ctx, InsightChurn, employee.ID, report)
	}
	return report, nil
}

// AtRiskTeam clasifica a todos los reportes directos del manager en paralelo.
// Un empleado sin metricas aparece en Failures; el resto del equipo se clasifica igual.
func (s *PerformanceService) AtRiskTeam(ctx context.Context, managerID string) (TeamRiskReport, error) {
	if _, err := s.employees.GetByID(ctx, managerID); err != nil {
		return TeamRiskReport{}, notFound(err, "manager", managerID)
	}
	reports, err := s.employees.ListByManager(ctx, managerID)
	if err != nil {
		return TeamRiskReport{}, fmt.Errorf("list reports of %s: %w", managerID, err)
	}
	ids := make([]string, 0, len(reports))
	for _, e := range reports {
		ids = append(ids, e.ID)
	}
	metrics, err := s.performance.LatestForEmployees(ctx, ids)
	if err != nil {
		return TeamRiskReport{}, fmt.Errorf("load team performance: %w", err)
	}

	items := make([]scoring.BatchItem[domain.Employee], 0, len(reports))
	for _, e := range reports {
		items = append(items, scoring.BatchItem[domain.Employee]{ID: e.ID, Subject: e})
	}
	batch, err := scoring.RunBatch(ctx, items, s.batchLimit, func(_ context.Context, e domain.Employee) (TeamRiskMember, error) {
		m, ok := metrics[e.ID]
		if !ok {
			return TeamRiskMember{}, fmt.Errorf("%w: no performance metrics", scoring.ErrInsufficientData)
		}
		return TeamRiskMember{
			EmployeeID: e.ID,
			Name:       e.Name,
			Quarter:    m.Quarter,
			Assessment: s.engine.Churn.Classify(churnSignals(e, m)),
		}, nil
	})
	if err != nil {
		return TeamRiskReport{}, err
	}

	out := TeamRiskReport{
		ManagerID: managerID,
		Members:   make([]TeamRiskMember, 0, len(batch.Results)),
		Failures:  batch.Failures,
		Distribution: map[scoring.ChurnTier]int{
			scoring.ChurnLow:    0,
			scoring.ChurnMedium: 0,
			scoring.ChurnHigh:   0,
		},
		AtRisk: []string{},
	}
	for _, r := range batch.Results {
		out.Members = append(out.Members, r.Result)
		out.Distribution[r.Result.Assessment.Tier]++
		if r.Result.Assessment.Tier == scoring.ChurnHigh {
			out.AtRisk = append(out.AtRisk, r.ID)
		}
	}
	if len(out.Failures) > 0 {
		s.logger.Warn("team churn batch had failures",
			zap.String("manager_id", managerID),
			zap.Int("failures", len(out.Failures)),
		)
	}
	return out, nil
}

// RecordMetric valida y guarda el registro trimestral de un empleado.
func (s *PerformanceService) RecordMetric(ctx context.Context, m domain.PerformanceMetric) error {
	if err := s.validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := s.employees.GetByID(ctx, m.EmployeeID); err != nil {
		return notFound(err, "employee", m.EmployeeID)
	}
	if err := s.performance.Upsert(ctx, m); err != nil {
		return fmt.Errorf("save performance metric: %w", err)
	}
	return nil
}

func churnSignals(e domain.Employee, m domain.PerformanceMetric) scoring.ChurnSignals {
	return scoring.ChurnSignals{
		Morale:       m.Morale,
		TenureMonths: e.TenureMonths,
		Velocity:     m.Velocity,
		Sentiment:    m.Sentiment,
	}
}

func summarizeCollaboration(list []CollaboratorFit) CollaborationSummary {
	var summary CollaborationSummary
	if len(list) == 0 {
		return summary
	}
	chem, rel := 0.0, 0.0
	for _, c := range list {
		chem += float64(c.Chemistry.Score)
		rel += c.Relationship
		if c.ShowsFlexibility {
			summary.FlexibilityCount++
		}
	}
	n := float64(len(list))
	summary.AverageChemistry = roundTo(chem/n, 1)
	summary.AverageRelationship = roundTo(rel/n, 1)
	return summary
}
