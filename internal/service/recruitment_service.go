package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"talent-hub/internal/domain"
	"talent-hub/internal/repository"
	"talent-hub/internal/scoring"
)

// Sub-scores del score compuesto de un candidato, todos en [0, 1].
const (
	SubScoreCoding    = "coding"
	SubScoreTechnical = "technical"
	SubScorePPA       = "ppa"
	SubScoreGIA       = "gia"
	SubScoreHPTI      = "hpti"
)

const (
	WeightSourceRequest  = "request"
	WeightSourceOverride = "override"
	WeightSourceDefault  = "default"
)

const (
	giaCeiling         = 130.0
	similarPoolSize    = 20
	similarResultLimit = 5
)

const (
	ImportanceHigh   = "high"
	ImportanceMedium = "medium"
	ImportanceLow    = "low"
)

type ProfileMatchReport struct {
	CandidateID    string                    `json:"candidate_id"`
	RoleID         string                    `json:"role_id"`
	Department     string                    `json:"department"`
	Ideal          domain.IdealProfile       `json:"ideal_profile"`
	Behavioral     *scoring.ComparisonResult `json:"behavioral,omitempty"`
	Leadership     *scoring.ComparisonResult `json:"leadership,omitempty"`
	Cognitive      *scoring.ComparisonResult `json:"cognitive,omitempty"`
	GIAPercentile  *int                      `json:"gia_percentile,omitempty"`
	DominantTrait  string                    `json:"dominant_trait,omitempty"`
	OverallMatch   float64                   `json:"overall_match"`
	MissingData    []string                  `json:"missing_data,omitempty"`
	Insight        *domain.Insight           `json:"insight,omitempty"`
	NarrativeError string                    `json:"narrative_error,omitempty"`
}

type CompositeReport struct {
	CandidateID      string                  `json:"candidate_id"`
	RoleID           string                  `json:"role_id"`
	RoleType         string                  `json:"role_type"`
	WeightSource     string                  `json:"weight_source"`
	Weights          scoring.WeightSet       `json:"weights"`
	SubScores        map[string]float64      `json:"sub_scores"`
	MissingSubScores []string                `json:"missing_sub_scores,omitempty"`
	Result           scoring.AggregateResult `json:"result"`
	Warning          string                  `json:"warning,omitempty"`
}

type TeamMemberFit struct {
	EmployeeID       string                  `json:"employee_id"`
	Name             string                  `json:"name"`
	Title            string                  `json:"title"`
	RelationshipRole string                  `json:"relationship_role"`
	TimeAllocation   int                     `json:"time_allocation_percent"`
	Importance       string                  `json:"importance"`
	Chemistry        scoring.ChemistryResult `json:"chemistry"`
	Recommendation   string                  `json:"recommendation,omitempty"`
}

type TeamFitSummary struct {
	AverageChemistry   float64  `json:"average_chemistry"`
	HighRisk           int      `json:"high_risk_count"`
	LowChemistry       int      `json:"low_chemistry_count"`
	KeyRecommendations []string `json:"key_recommendations"`
}

type CandidateTeamReport struct {
	CandidateID    string          `json:"candidate_id"`
	RoleID         string          `json:"role_id"`
	Members        []TeamMemberFit `json:"members"`
	Skipped        []string        `json:"skipped,omitempty"`
	Summary        TeamFitSummary  `json:"summary"`
	Insight        *domain.Insight `json:"insight,omitempty"`
	NarrativeError string          `json:"narrative_error,omitempty"`
}

type SimilarEmployee struct {
	EmployeeID string                   `json:"employee_id"`
	Name       string                   `json:"name"`
	Title      string                   `json:"title"`
	Comparison scoring.ComparisonResult `json:"comparison"`
}

type SimilarEmployeesReport struct {
	RoleID    string              `json:"role_id"`
	Ideal     domain.IdealProfile `json:"ideal_profile"`
	Employees []SimilarEmployee   `json:"employees"`
}

type CandidateExpectation struct {
	CandidateID string               `json:"candidate_id"`
	Name        string               `json:"name"`
	Expected    scoring.MoneyAmount  `json:"expected"`
	Local       *scoring.MoneyAmount `json:"local,omitempty"`
	WithinBand  bool                 `json:"within_band"`
	Display     string               `json:"display,omitempty"`
	Error       string               `json:"error,omitempty"`
}

type SalaryBandReport struct {
	RoleID       string                 `json:"role_id"`
	Location     string                 `json:"location"`
	Band         scoring.SalaryRange    `json:"band"`
	Expectations []CandidateExpectation `json:"candidate_expectations"`
}

// RecruitmentService responde las preguntas del pipeline de contratacion.
type RecruitmentService struct {
	candidates  repository.CandidateRepository
	roles       repository.RoleRepository
	assessments repository.AssessmentRepository
	employees   repository.EmployeeRepository
	overrides   repository.WeightOverrideRepository
	engine      *ScoringEngine
	insights    *InsightService
	logger      *zap.Logger
}

func NewRecruitmentService(
	candidates repository.CandidateRepository,
	roles repository.RoleRepository,
	assessments repository.AssessmentRepository,
	employees repository.EmployeeRepository,
	overrides repository.WeightOverrideRepository,
	engine *ScoringEngine,
	insights *InsightService,
	logger *zap.Logger,
) *RecruitmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecruitmentService{
		candidates:  candidates,
		roles:       roles,
		assessments: assessments,
		employees:   employees,
		overrides:   overrides,
		engine:      engine,
		insights:    insights,
		logger:      logger,
	}
}

func (s *RecruitmentService) ListCandidates(ctx context.Context, roleID string) ([]domain.Candidate, error) {
	if _, err := s.roles.GetByID(ctx, roleID); err != nil {
		return nil, notFound(err, "role", roleID)
	}
	list, err := s.candidates.ListByRole(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("list candidates for role %s: %w", roleID, err)
	}
	return list, nil
}

// ProfileMatch compara al candidato con el perfil ideal del departamento del rol.
// Cada bloque sin datos se reporta en MissingData; si no hay ninguno es ErrInsufficientData.
func (s *RecruitmentService) ProfileMatch(ctx context.Context, candidateID string, withNarrative bool) (ProfileMatchReport, error) {
	candidate, role, err := s.candidateAndRole(ctx, candidateID)
	if err != nil {
		return ProfileMatchReport{}, err
	}
	ideal, err := s.idealProfile(ctx, role.Department)
	if err != nil {
		return ProfileMatchReport{}, err
	}
	assessment, err := s.assessments.LatestForSubject(ctx, candidate.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ProfileMatchReport{}, fmt.Errorf("%w: candidate %s has no assessment", scoring.ErrInsufficientData, candidate.ID)
		}
		return ProfileMatchReport{}, fmt.Errorf("load assessment %s: %w", candidate.ID, err)
	}

	report := ProfileMatchReport{
		CandidateID: candidate.ID,
		RoleID:      role.ID,
		Department:  role.Department,
		Ideal:       ideal,
	}
	var scores []float64

	if b := assessment.Behavioral; b != nil {
		res, err := s.compareBehavioral(*b, idealBehavioral(ideal))
		if err != nil {
			return ProfileMatchReport{}, err
		}
		report.Behavioral = &res
		report.DominantTrait = b.DominantTrait()
		scores = append(scores, res.Score)
	} else {
		report.MissingData = append(report.MissingData, "behavioral")
	}

	if l := assessment.Leadership; l != nil {
		res, err := s.compareLeadership(*l, ideal)
		if err != nil {
			return ProfileMatchReport{}, err
		}
		report.Leadership = &res
		scores = append(scores, res.Score)
	} else {
		report.MissingData = append(report.MissingData, "leadership")
	}

	if g := assessment.GIA; g != nil {
		res, err := s.compareCognitive(*g, ideal.GIA)
		if err != nil {
			return ProfileMatchReport{}, err
		}
		report.Cognitive = &res
		pct := GIAPercentile(*g)
		report.GIAPercentile = &pct
		scores = append(scores, res.Score)
	} else {
		report.MissingData = append(report.MissingData, "cognitive")
	}

	if len(scores) == 0 {
		return ProfileMatchReport{}, fmt.Errorf("%w: candidate %s assessment is empty", scoring.ErrInsufficientData, candidate.ID)
	}
	report.OverallMatch = mean(scores)

	if withNarrative {
		report.Insight, report.NarrativeError = s.insights.TryNarrate(ctx, InsightProfileMatch, candidate.ID, report)
	}
	return report, nil
}

// CompositeScore combina las notas del pipeline y las pruebas psicometricas con un juego de pesos.
// Prioridad de pesos: los del request, el ultimo override del rol, los por defecto del tipo de rol.
func (s *RecruitmentService) CompositeScore(ctx context.Context, candidateID string, weights scoring.WeightSet) (CompositeReport, error) {
	candidate, role, err := s.candidateAndRole(ctx, candidateID)
	if err != nil {
		return CompositeReport{}, err
	}

	assessment, err := s.assessments.LatestForSubject(ctx, candidate.ID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return CompositeReport{}, fmt.Errorf("load assessment %s: %w", candidate.ID, err)
	}

	entity, missing, err := candidateSubScores(candidate, assessment)
	if err != nil {
		return CompositeReport{}, err
	}

	resolved, source, err := s.resolveWeights(ctx, role, weights)
	if err != nil {
		return CompositeReport{}, err
	}

	result, err := s.engine.Aggregator.Evaluate(entity.SubScores(), resolved)
	if err != nil {
		return CompositeReport{}, fmt.Errorf("aggregate candidate %s: %w", candidate.ID, err)
	}
	if !result.WeightsNormalized {
		s.logger.Warn("composite score with unnormalized weights",
			zap.String("candidate_id", candidate.ID),
			zap.String("weight_source", source),
			zap.Float64("weight_sum", result.WeightSum),
		)
	}

	return CompositeReport{
		CandidateID:      candidate.ID,
		RoleID:           role.ID,
		RoleType:         role.RoleType,
		WeightSource:     source,
		Weights:          resolved,
		SubScores:        entity.SubScores(),
		MissingSubScores: missing,
		Result:           result,
		Warning:          result.Warning(),
	}, nil
}

// TeamCollaboration predice la quimica del candidato con los companeros planificados del rol.
func (s *RecruitmentService) TeamCollaboration(ctx context.Context, candidateID string, withNarrative bool) (CandidateTeamReport, error) {
	candidate, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return CandidateTeamReport{}, notFound(err, "candidate", candidateID)
	}
	self, err := s.behavioralFor(ctx, candidate.ID)
	if err != nil {
		return CandidateTeamReport{}, err
	}

	planned, err := s.roles.ListPlannedCollaborations(ctx, candidate.RoleID)
	if err != nil {
		return CandidateTeamReport{}, fmt.Errorf("list collaborators for role %s: %w", candidate.RoleID, err)
	}
	ids := make([]string, 0, len(planned))
	for _, p := range planned {
		ids = append(ids, p.EmployeeID)
	}
	people, err := s.employees.ListByIDs(ctx, ids)
	if err != nil {
		return CandidateTeamReport{}, fmt.Errorf("load collaborators: %w", err)
	}
	byID := make(map[string]domain.Employee, len(people))
	for _, e := range people {
		byID[e.ID] = e
	}
	profiles, err := s.assessments.LatestForSubjects(ctx, ids)
	if err != nil {
		return CandidateTeamReport{}, fmt.Errorf("load collaborator assessments: %w", err)
	}

	report := CandidateTeamReport{CandidateID: candidate.ID, RoleID: candidate.RoleID, Members: []TeamMemberFit{}}
	for _, p := range planned {
		emp, ok := byID[p.EmployeeID]
		a := profiles[p.EmployeeID]
		if !ok || a.Behavioral == nil {
			report.Skipped = append(report.Skipped, p.EmployeeID)
			continue
		}
		chem, err := s.engine.Chemistry.Chemistry(self, *a.Behavioral)
		if err != nil {
			s.logger.Warn("skipping collaborator with invalid profile",
				zap.String("candidate_id", candidate.ID),
				zap.String("collaborator_id", p.EmployeeID),
				zap.Error(err),
			)
			report.Skipped = append(report.Skipped, p.EmployeeID)
			continue
		}
		importance := collaborationImportance(p.TimeAllocation)
		report.Members = append(report.Members, TeamMemberFit{
			EmployeeID:       emp.ID,
			Name:             emp.Name,
			Title:            emp.Title,
			RelationshipRole: p.RelationshipRole,
			TimeAllocation:   p.TimeAllocation,
			Importance:       importance,
			Chemistry:        chem,
			Recommendation:   onboardingRecommendation(emp.Name, *a.Behavioral, chem, importance),
		})
	}

	sort.SliceStable(report.Members, func(i, j int) bool {
		a, b := report.Members[i], report.Members[j]
		if a.TimeAllocation != b.TimeAllocation {
			return a.TimeAllocation > b.TimeAllocation
		}
		return a.Chemistry.Score < b.Chemistry.Score
	})
	report.Summary = summarizeTeamFit(report.Members)

	if withNarrative {
		report.Insight, report.NarrativeError = s.insights.TryNarrate(ctx, InsightTeamChemistry, candidate.ID, report)
	}
	return report, nil
}

// SimilarEmployees busca por vecinos cercanos (pgvector) y re-puntua con el comparador.
func (s *RecruitmentService) SimilarEmployees(ctx context.Context, roleID string) (SimilarEmployeesReport, error) {
	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return SimilarEmployeesReport{}, notFound(err, "role", roleID)
	}
	ideal, err := s.idealProfile(ctx, role.Department)
	if err != nil {
		return SimilarEmployeesReport{}, err
	}
	target := idealBehavioral(ideal)

	neighbours, err := s.assessments.NearestBehavioral(ctx, scoring.SubjectEmployee, target, similarPoolSize)
	if err != nil {
		return SimilarEmployeesReport{}, fmt.Errorf("nearest behavioral profiles: %w", err)
	}
	ids := make([]string, 0, len(neighbours))
	for _, n := range neighbours {
		ids = append(ids, n.SubjectID)
	}
	people, err := s.employees.ListByIDs(ctx, ids)
	if err != nil {
		return SimilarEmployeesReport{}, fmt.Errorf("load similar employees: %w", err)
	}
	byID := make(map[string]domain.Employee, len(people))
	for _, e := range people {
		byID[e.ID] = e
	}

	out := make([]SimilarEmployee, 0, len(neighbours))
	for _, n := range neighbours {
		emp, ok := byID[n.SubjectID]
		if !ok || n.Behavioral == nil {
			continue
		}
		cmp, err := s.compareBehavioral(*n.Behavioral, target)
		if err != nil {
			s.logger.Warn("skipping similar employee", zap.String("employee_id", n.SubjectID), zap.Error(err))
			continue
		}
		out = append(out, SimilarEmployee{EmployeeID: emp.ID, Name: emp.Name, Title: emp.Title, Comparison: cmp})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Comparison.Score != out[j].Comparison.Score {
			return out[i].Comparison.Score > out[j].Comparison.Score
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	if len(out) > similarResultLimit {
		out = out[:similarResultLimit]
	}
	return SimilarEmployeesReport{RoleID: role.ID, Ideal: ideal, Employees: out}, nil
}

// SalaryBand localiza la banda salarial del rol y ubica las expectativas de cada candidato.
func (s *RecruitmentService) SalaryBand(ctx context.Context, roleID string) (SalaryBandReport, error) {
	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return SalaryBandReport{}, notFound(err, "role", roleID)
	}
	band, err := s.engine.Currency.SalaryRange(role.MinSalary, role.MaxSalary, role.Location)
	if err != nil {
		return SalaryBandReport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	candidates, err := s.candidates.ListByRole(ctx, role.ID)
	if err != nil {
		return SalaryBandReport{}, fmt.Errorf("list candidates for role %s: %w", role.ID, err)
	}

	report := SalaryBandReport{
		RoleID:       role.ID,
		Location:     role.Location,
		Band:         band,
		Expectations: make([]CandidateExpectation, 0, len(candidates)),
	}
	for _, c := range candidates {
		exp := CandidateExpectation{
			CandidateID: c.ID,
			Name:        c.Name,
			Expected:    scoring.MoneyAmount{Value: c.ExpectedSalary, Currency: c.Currency},
		}
		local, err := s.engine.Currency.ConvertMoney(exp.Expected, band.Min.Currency)
		if err != nil {
			exp.Error = err.Error()
		} else {
			exp.Local = &local
			exp.WithinBand = local.Value >= band.Min.Value && local.Value <= band.Max.Value
			exp.Display = s.engine.Currency.Format(scoring.MoneyAmount{Value: scoring.RoundDisplay(local.Value), Currency: local.Currency})
		}
		report.Expectations = append(report.Expectations, exp)
	}
	return report, nil
}

func (s *RecruitmentService) candidateAndRole(ctx context.Context, candidateID string) (domain.Candidate, domain.Role, error) {
	candidate, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return domain.Candidate{}, domain.Role{}, notFound(err, "candidate", candidateID)
	}
	role, err := s.roles.GetByID(ctx, candidate.RoleID)
	if err != nil {
		return domain.Candidate{}, domain.Role{}, notFound(err, "role", candidate.RoleID)
	}
	return candidate, role, nil
}

func (s *RecruitmentService) idealProfile(ctx context.Context, department string) (domain.IdealProfile, error) {
	ideal, err := s.roles.IdealProfile(ctx, department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.IdealProfile{}, fmt.Errorf("%w: no top performers with assessments in %s", scoring.ErrInsufficientData, department)
		}
		return domain.IdealProfile{}, fmt.Errorf("ideal profile for %s: %w", department, err)
	}
	return ideal, nil
}

func (s *RecruitmentService) behavioralFor(ctx context.Context, subjectID string) (scoring.BehavioralProfile, error) {
	a, err := s.assessments.LatestForSubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return scoring.BehavioralProfile{}, fmt.Errorf("%w: %s has no assessment", scoring.ErrInsufficientData, subjectID)
		}
		return scoring.BehavioralProfile{}, fmt.Errorf("load assessment %s: %w", subjectID, err)
	}
	if a.Behavioral == nil {
		return scoring.BehavioralProfile{}, fmt.Errorf("%w: %s has no behavioral profile", scoring.ErrInsufficientData, subjectID)
	}
	if err := a.Behavioral.Validate(); err != nil {
		return scoring.BehavioralProfile{}, fmt.Errorf("%s behavioral profile: %w", subjectID, err)
	}
	return *a.Behavioral, nil
}

func (s *RecruitmentService) resolveWeights(ctx context.Context, role domain.Role, requested scoring.WeightSet) (scoring.WeightSet, string, error) {
	if len(requested) > 0 {
		return requested.Clone(), WeightSourceRequest, nil
	}
	if s.overrides != nil {
		o, err := s.overrides.LatestForRole(ctx, role.ID)
		switch {
		case err == nil:
			return scoring.WeightSet(o.Weights).Clone(), WeightSourceOverride, nil
		case !errors.Is(err, pgx.ErrNoRows):
			return nil, "", fmt.Errorf("load weight override for role %s: %w", role.ID, err)
		}
	}
	if w, ok := s.engine.DefaultWeights(role.RoleType); ok {
		return w, WeightSourceDefault, nil
	}
	return nil, "", fmt.Errorf("%w: role type %q", ErrNoWeights, role.RoleType)
}

func (s *RecruitmentService) compareBehavioral(a, b scoring.BehavioralProfile) (scoring.ComparisonResult, error) {
	va, err := a.Vector()
	if err != nil {
		return scoring.ComparisonResult{}, err
	}
	vb, err := b.Vector()
	if err != nil {
		return scoring.ComparisonResult{}, err
	}
	return s.engine.Comparator.Compare(va, vb)
}

// compareLeadership usa solo los tres rasgos que resume el perfil ideal.
func (s *RecruitmentService) compareLeadership(l scoring.LeadershipProfile, ideal domain.IdealProfile) (scoring.ComparisonResult, error) {
	va, err := coreLeadershipVector(l.Conscientiousness, l.Adjustment, l.Curiosity)
	if err != nil {
		return scoring.ComparisonResult{}, err
	}
	vb, err := coreLeadershipVector(ideal.Conscientiousness, ideal.Adjustment, ideal.Curiosity)
	if err != nil {
		return scoring.ComparisonResult{}, err
	}
	return s.engine.Comparator.Compare(va, vb)
}

func (s *RecruitmentService) compareCognitive(gia, idealGIA int) (scoring.ComparisonResult, error) {
	va, err := scoring.NewTraitVector(scoring.CognitiveScale, scoring.Trait{Name: "gia", Value: float64(gia)})
	if err != nil {
		return scoring.ComparisonResult{}, err
	}
	vb, err := scoring.NewTraitVector(scoring.CognitiveScale, scoring.Trait{Name: "gia", Value: float64(idealGIA)})
	if err != nil {
		return scoring.ComparisonResult{}, err
	}
	return s.engine.Comparator.Compare(va, vb)
}

func coreLeadershipVector(conscientiousness, adjustment, curiosity int) (scoring.TraitVector, error) {
	return scoring.NewTraitVector(scoring.LeadershipScale,
		scoring.Trait{Name: "conscientiousness", Value: float64(conscientiousness)},
		scoring.Trait{Name: "adjustment", Value: float64(adjustment)},
		scoring.Trait{Name: "curiosity", Value: float64(curiosity)},
	)
}

func idealBehavioral(p domain.IdealProfile) scoring.BehavioralProfile {
	return scoring.BehavioralProfile{
		Assertiveness:   p.Assertiveness,
		Sociability:     p.Sociability,
		Pace:            p.Pace,
		RuleOrientation: p.RuleOrientation,
	}
}

// candidateSubScores arma la entidad puntuada. Una etapa o prueba sin dato no se inventa:
// se omite y se devuelve en la lista de faltantes.
func candidateSubScores(c domain.Candidate, a domain.Assessment) (scoring.ScoredEntity, []string, error) {
	entity := scoring.NewScoredEntity(c.ID, scoring.SubjectCandidate, nil)
	var missing []string

	add := func(name string, value *float64) error {
		if value == nil {
			missing = append(missing, name)
			return nil
		}
		next, err := entity.WithSubScore(name, *value)
		if err != nil {
			return fmt.Errorf("candidate %s: %w", c.ID, err)
		}
		entity = next
		return nil
	}

	var coding, technical, ppa, gia, hpti *float64
	if v := c.Stages.Technical; v != nil {
		coding = ptr(*v / 100)
	}
	if v := c.Stages.Onsite; v != nil {
		technical = ptr(*v / 100)
	}
	if b := a.Behavioral; b != nil {
		ppa = ptr(b.Mean() / 100)
	}
	if g := a.GIA; g != nil {
		gia = ptr(math.Min(float64(*g)/giaCeiling, 1))
	}
	if l := a.Leadership; l != nil {
		hpti = ptr(l.CoreMean() / 100)
	}

	for _, sub := range []struct {
		name  string
		value *float64
	}{
		{SubScoreCoding, coding},
		{SubScoreTechnical, technical},
		{SubScorePPA, ppa},
		{SubScoreGIA, gia},
		{SubScoreHPTI, hpti},
	} {
		if err := add(sub.name, sub.value); err != nil {
			return scoring.ScoredEntity{}, nil, err
		}
	}
	return entity, missing, nil
}

// GIAPercentile aproxima el percentil del GIA sobre un techo de 130, acotado a [1, 99].
func GIAPercentile(gia int) int {
	pct := int(float64(gia) / giaCeiling * 100)
	if pct < 1 {
		return 1
	}
	if pct > 99 {
		return 99
	}
	return pct
}

func collaborationImportance(timeAllocation int) string {
	switch {
	case timeAllocation >= 20:
		return ImportanceHigh
	case timeAllocation >= 10:
		return ImportanceMedium
	default:
		return ImportanceLow
	}
}

func onboardingRecommendation(name string, collaborator scoring.BehavioralProfile, chem scoring.ChemistryResult, importance string) string {
	switch {
	case chem.Score < 50 && importance == ImportanceHigh:
		return fmt.Sprintf("Schedule introductory coffee chat before start date. Focus on %s's communication preferences (high %s style).", name, collaborator.DominantTrait())
	case chem.Score < 60 && importance == ImportanceHigh:
		return fmt.Sprintf("Arrange shadowing session with %s in first week. Build rapport early.", name)
	case chem.Risk == scoring.RiskHigh:
		return "Proactive relationship building recommended. Consider structured 1:1s initially."
	case chem.Score >= 80:
		return "Natural compatibility detected. Standard onboarding sufficient."
	default:
		return ""
	}
}

func summarizeTeamFit(members []TeamMemberFit) TeamFitSummary {
	summary := TeamFitSummary{KeyRecommendations: []string{}}
	if len(members) == 0 {
		return summary
	}
	total := 0
	for _, m := range members {
		total += m.Chemistry.Score
		if m.Chemistry.Risk == scoring.RiskHigh {
			summary.HighRisk++
		}
		if m.Chemistry.Score < 50 {
			summary.LowChemistry++
		}
		if m.Importance == ImportanceHigh && m.Recommendation != "" {
			summary.KeyRecommendations = append(summary.KeyRecommendations, m.Recommendation)
		}
	}
	summary.AverageChemistry = roundTo(float64(total)/float64(len(members)), 1)
	return summary
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func ptr[T any](v T) *T { return &v }
