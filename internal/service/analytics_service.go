package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"talent-hub/internal/domain"
	"talent-hub/internal/repository"
	"talent-hub/internal/scoring"
)

type SavedOverride struct {
	Override domain.WeightOverride `json:"override"`
	Warning  string                `json:"warning,omitempty"`
}

// AnalyticsService administra las fuentes de pesos y la carga de evaluaciones.
type AnalyticsService struct {
	overrides   repository.WeightOverrideRepository
	roles       repository.RoleRepository
	assessments repository.AssessmentRepository
	engine      *ScoringEngine
	validate    *validator.Validate
	logger      *zap.Logger
	now         func() time.Time
}

func NewAnalyticsService(
	overrides repository.WeightOverrideRepository,
	roles repository.RoleRepository,
	assessments repository.AssessmentRepository,
	engine *ScoringEngine,
	logger *zap.Logger,
) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{
		overrides:   overrides,
		roles:       roles,
		assessments: assessments,
		engine:      engine,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger,
		now:         time.Now,
	}
}

func (s *AnalyticsService) RoleTypes() []string {
	return s.engine.RoleTypes()
}

func (s *AnalyticsService) DefaultWeights(roleType string) (scoring.WeightSet, error) {
	w, ok := s.engine.DefaultWeights(roleType)
	if !ok {
		return nil, fmt.Errorf("%w: role type %q", ErrNotFound, roleType)
	}
	return w, nil
}

// SaveOverride guarda los pesos del manager. Pesos que no suman 1 se aceptan con warning.
func (s *AnalyticsService) SaveOverride(ctx context.Context, o domain.WeightOverride) (SavedOverride, error) {
	if err := s.validate.Struct(o); err != nil {
		return SavedOverride{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := s.roles.GetByID(ctx, o.RoleID); err != nil {
		return SavedOverride{}, notFound(err, "role", o.RoleID)
	}

	o.ID = uuid.NewString()
	o.CreatedAt = s.now().UTC()
	if err := s.overrides.Create(ctx, o); err != nil {
		return SavedOverride{}, fmt.Errorf("save weight override: %w", err)
	}

	check, err := s.engine.Aggregator.Evaluate(nil, scoring.WeightSet(o.Weights))
	if err != nil {
		return SavedOverride{}, err
	}
	if !check.WeightsNormalized {
		s.logger.Info("saved unnormalized weight override",
			zap.String("override_id", o.ID),
			zap.String("role_id", o.RoleID),
			zap.Float64("weight_sum", check.WeightSum),
		)
	}
	return SavedOverride{Override: o, Warning: check.Warning()}, nil
}

func (s *AnalyticsService) ListOverrides(ctx context.Context, roleID string) ([]domain.WeightOverride, error) {
	list, err := s.overrides.ListByRole(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("list weight overrides for %s: %w", roleID, err)
	}
	if list == nil {
		list = []domain.WeightOverride{}
	}
	return list, nil
}

// RecordAssessment guarda una evaluacion psicometrica. Los bloques presentes se validan contra su escala.
func (s *AnalyticsService) RecordAssessment(ctx context.Context, kind string, a domain.Assessment) error {
	if kind != scoring.SubjectEmployee && kind != scoring.SubjectCandidate {
		return fmt.Errorf("%w: subject kind %q", ErrInvalidInput, kind)
	}
	if a.SubjectID == "" {
		return fmt.Errorf("%w: subject_id is required", ErrInvalidInput)
	}
	if a.Behavioral == nil && a.Leadership == nil && a.GIA == nil {
		return fmt.Errorf("%w: assessment has no results", ErrInvalidInput)
	}
	if b := a.Behavioral; b != nil {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if l := a.Leadership; l != nil {
		if _, err := l.Vector(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if g := a.GIA; g != nil && !scoring.CognitiveScale.Contains(float64(*g)) {
		return fmt.Errorf("%w: gia=%d", ErrInvalidInput, *g)
	}
	if a.AssessedAt.IsZero() {
		a.AssessedAt = s.now().UTC()
	}
	if err := s.assessments.Upsert(ctx, kind, a); err != nil {
		return fmt.Errorf("save assessment %s: %w", a.SubjectID, err)
	}
	return nil
}
