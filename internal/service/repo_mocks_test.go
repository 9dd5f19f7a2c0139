package service

import (
	"context"
	"math"
	"sort"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"

	"talent-hub/internal/config"
	"talent-hub/internal/domain"
	"talent-hub/internal/email"
	"talent-hub/internal/scoring"
)

func newTestEngine(t *testing.T) *ScoringEngine {
	t.Helper()
	profile, err := config.LoadScoringProfile("")
	if err != nil {
		t.Fatalf("load scoring profile: %v", err)
	}
	engine, err := NewScoringEngine(profile, false, nil)
	if err != nil {
		t.Fatalf("new scoring engine: %v", err)
	}
	return engine
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

type mockEmployeeRepo struct {
	byID map[string]domain.Employee
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (domain.Employee, error) {
	e, ok := m.byID[id]
	if !ok {
		return domain.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (m *mockEmployeeRepo) ListByIDs(_ context.Context, ids []string) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, id := range ids {
		if e, ok := m.byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEmployeeRepo) ListByManager(_ context.Context, managerID string) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, id := range sortedIDs(m.byID) {
		e := m.byID[id]
		if e.ManagerID != nil && *e.ManagerID == managerID {
			out = append(out, e)
		}
	}
	return out, nil
}

type mockCandidateRepo struct {
	byID map[string]domain.Candidate
}

func (m *mockCandidateRepo) GetByID(_ context.Context, id string) (domain.Candidate, error) {
	c, ok := m.byID[id]
	if !ok {
		return domain.Candidate{}, pgx.ErrNoRows
	}
	return c, nil
}

func (m *mockCandidateRepo) ListByRole(_ context.Context, roleID string) ([]domain.Candidate, error) {
	var out []domain.Candidate
	for _, id := range sortedIDs(m.byID) {
		if c := m.byID[id]; c.RoleID == roleID {
			out = append(out, c)
		}
	}
	return out, nil
}

type mockRoleRepo struct {
	byID    map[string]domain.Role
	planned map[string][]domain.PlannedCollaboration
	ideal   map[string]domain.IdealProfile
}

func (m *mockRoleRepo) GetByID(_ context.Context, id string) (domain.Role, error) {
	r, ok := m.byID[id]
	if !ok {
		return domain.Role{}, pgx.ErrNoRows
	}
	return r, nil
}

func (m *mockRoleRepo) ListPlannedCollaborations(_ context.Context, roleID string) ([]domain.PlannedCollaboration, error) {
	return m.planned[roleID], nil
}

func (m *mockRoleRepo) IdealProfile(_ context.Context, department string) (domain.IdealProfile, error) {
	p, ok := m.ideal[department]
	if !ok {
		return domain.IdealProfile{}, pgx.ErrNoRows
	}
	return p, nil
}

type mockAssessmentRepo struct {
	mu       sync.Mutex
	bySubj   map[string]domain.Assessment
	nearest  []domain.Assessment
	upserted []domain.Assessment
}

func (m *mockAssessmentRepo) Upsert(_ context.Context, _ string, a domain.Assessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserted = append(m.upserted, a)
	return nil
}

func (m *mockAssessmentRepo) LatestForSubject(_ context.Context, id string) (domain.Assessment, error) {
	a, ok := m.bySubj[id]
	if !ok {
		return domain.Assessment{}, pgx.ErrNoRows
	}
	return a, nil
}

func (m *mockAssessmentRepo) LatestForSubjects(_ context.Context, ids []string) (map[string]domain.Assessment, error) {
	out := make(map[string]domain.Assessment)
	for _, id := range ids {
		if a, ok := m.bySubj[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func (m *mockAssessmentRepo) NearestBehavioral(_ context.Context, _ string, _ scoring.BehavioralProfile, k int) ([]domain.Assessment, error) {
	if len(m.nearest) > k {
		return m.nearest[:k], nil
	}
	return m.nearest, nil
}

type mockPerformanceRepo struct {
	mu       sync.Mutex
	latest   map[string]domain.PerformanceMetric
	upserted []domain.PerformanceMetric
}

func (m *mockPerformanceRepo) Upsert(_ context.Context, metric domain.PerformanceMetric) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserted = append(m.upserted, metric)
	return nil
}

func (m *mockPerformanceRepo) LatestForEmployee(_ context.Context, id string) (domain.PerformanceMetric, error) {
	metric, ok := m.latest[id]
	if !ok {
		return domain.PerformanceMetric{}, pgx.ErrNoRows
	}
	return metric, nil
}

func (m *mockPerformanceRepo) LatestForEmployees(_ context.Context, ids []string) (map[string]domain.PerformanceMetric, error) {
	out := make(map[string]domain.PerformanceMetric)
	for _, id := range ids {
		if metric, ok := m.latest[id]; ok {
			out[id] = metric
		}
	}
	return out, nil
}

type mockCollaborationRepo struct {
	byEmployee map[string][]domain.Collaboration
}

func (m *mockCollaborationRepo) ListForEmployee(_ context.Context, id string) ([]domain.Collaboration, error) {
	return m.byEmployee[id], nil
}

type mockWeightRepo struct {
	mu      sync.Mutex
	created []domain.WeightOverride
	latest  map[string]domain.WeightOverride
}

func (m *mockWeightRepo) Create(_ context.Context, o domain.WeightOverride) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, o)
	return nil
}

func (m *mockWeightRepo) ListByRole(_ context.Context, roleID string) ([]domain.WeightOverride, error) {
	var out []domain.WeightOverride
	for _, o := range m.created {
		if o.RoleID == roleID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockWeightRepo) LatestForRole(_ context.Context, roleID string) (domain.WeightOverride, error) {
	o, ok := m.latest[roleID]
	if !ok {
		return domain.WeightOverride{}, pgx.ErrNoRows
	}
	return o, nil
}

func sortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type mockSender struct {
	sent []email.Message
	err  error
}

func (m *mockSender) Send(_ context.Context, msg email.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}
