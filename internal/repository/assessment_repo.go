package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"talent-hub/internal/domain"
	"talent-hub/internal/scoring"
)

type AssessmentRepository interface {
	Upsert(ctx context.Context, kind string, a domain.Assessment) error
	LatestForSubject(ctx context.Context, subjectID string) (domain.Assessment, error)
	LatestForSubjects(ctx context.Context, subjectIDs []string) (map[string]domain.Assessment, error)
	// NearestBehavioral busca los k sujetos de un tipo con perfil conductual mas cercano (distancia L2).
	NearestBehavioral(ctx context.Context, kind string, target scoring.BehavioralProfile, k int) ([]domain.Assessment, error)
}

type PgAssessmentRepository struct {
	pool *pgxpool.Pool
}

func NewPgAssessmentRepository(pool *pgxpool.Pool) *PgAssessmentRepository {
	return &PgAssessmentRepository{pool: pool}
}

// BehavioralEmbedding proyecta el perfil conductual al vector que indexa pgvector.
func BehavioralEmbedding(p scoring.BehavioralProfile) pgvector.Vector {
	return pgvector.NewVector([]float32{
		float32(p.Assertiveness),
		float32(p.Sociability),
		float32(p.Pace),
		float32(p.RuleOrientation),
	})
}

func (r *PgAssessmentRepository) Upsert(ctx context.Context, kind string, a domain.Assessment) error {
	const query = `
		INSERT INTO assessments (
			subject_id, subject_kind, assessed_at,
			ppa_assertiveness, ppa_sociability, ppa_pace, ppa_rule_orientation, behavior_embedding,
			hpti_conscientiousness, hpti_adjustment, hpti_curiosity, hpti_risk_approach, hpti_ambiguity_acceptance, hpti_competitiveness,
			gia_overall
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (subject_id, assessed_at) DO UPDATE SET
			ppa_assertiveness = EXCLUDED.ppa_assertiveness,
			ppa_sociability = EXCLUDED.ppa_sociability,
			ppa_pace = EXCLUDED.ppa_pace,
			ppa_rule_orientation = EXCLUDED.ppa_rule_orientation,
			behavior_embedding = EXCLUDED.behavior_embedding,
			hpti_conscientiousness = EXCLUDED.hpti_conscientiousness,
			hpti_adjustment = EXCLUDED.hpti_adjustment,
			hpti_curiosity = EXCLUDED.hpti_curiosity,
			hpti_risk_approach = EXCLUDED.hpti_risk_approach,
			hpti_ambiguity_acceptance = EXCLUDED.hpti_ambiguity_acceptance,
			hpti_competitiveness = EXCLUDED.hpti_competitiveness,
			gia_overall = EXCLUDED.gia_overall
	`
	var (
		ppa   [4]*int
		hpti  [6]*int
		embed *pgvector.Vector
	)
	if b := a.Behavioral; b != nil {
		ppa = [4]*int{&b.Assertiveness, &b.Sociability, &b.Pace, &b.RuleOrientation}
		v := BehavioralEmbedding(*b)
		embed = &v
	}
	if l := a.Leadership; l != nil {
		hpti = [6]*int{&l.Conscientiousness, &l.Adjustment, &l.Curiosity, &l.RiskApproach, &l.AmbiguityAcceptance, &l.Competitiveness}
	}

	_, err := r.pool.Exec(ctx, query,
		a.SubjectID, kind, a.AssessedAt,
		ppa[0], ppa[1], ppa[2], ppa[3], embed,
		hpti[0], hpti[1], hpti[2], hpti[3], hpti[4], hpti[5],
		a.GIA,
	)
	return err
}

const assessmentColumns = `subject_id, assessed_at,
	ppa_assertiveness, ppa_sociability, ppa_pace, ppa_rule_orientation,
	hpti_conscientiousness, hpti_adjustment, hpti_curiosity, hpti_risk_approach, hpti_ambiguity_acceptance, hpti_competitiveness,
	gia_overall`

func (r *PgAssessmentRepository) LatestForSubject(ctx context.Context, subjectID string) (domain.Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments WHERE subject_id = $1 ORDER BY assessed_at DESC LIMIT 1`
	rows, err := r.pool.Query(ctx, query, subjectID)
	if err != nil {
		return domain.Assessment{}, err
	}
	defer rows.Close()

	list, err := scanAssessments(rows)
	if err != nil {
		return domain.Assessment{}, err
	}
	if len(list) == 0 {
		return domain.Assessment{}, pgx.ErrNoRows
	}
	return list[0], nil
}

func (r *PgAssessmentRepository) LatestForSubjects(ctx context.Context, subjectIDs []string) (map[string]domain.Assessment, error) {
	out := make(map[string]domain.Assessment, len(subjectIDs))
	if len(subjectIDs) == 0 {
		return out, nil
	}
	query := `SELECT DISTINCT ON (subject_id) ` + assessmentColumns + `
		FROM assessments
		WHERE subject_id = ANY($1)
		ORDER BY subject_id, assessed_at DESC`
	rows, err := r.pool.Query(ctx, query, subjectIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list, err := scanAssessments(rows)
	if err != nil {
		return nil, err
	}
	for _, a := range list {
		out[a.SubjectID] = a
	}
	return out, nil
}

func (r *PgAssessmentRepository) NearestBehavioral(ctx context.Context, kind string, target scoring.BehavioralProfile, k int) ([]domain.Assessment, error) {
	if k <= 0 {
		k = 5
	}
	query := `SELECT ` + assessmentColumns + `
		FROM (
			SELECT DISTINCT ON (subject_id) *
			FROM assessments
			WHERE subject_kind = $1 AND behavior_embedding IS NOT NULL
			ORDER BY subject_id, assessed_at DESC
		) latest
		ORDER BY behavior_embedding <-> $2
		LIMIT $3`
	rows, err := r.pool.Query(ctx, query, kind, BehavioralEmbedding(target), k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAssessments(rows)
}

func scanAssessments(rows pgxRows) ([]domain.Assessment, error) {
	var out []domain.Assessment
	for rows.Next() {
		var (
			a    domain.Assessment
			ppa  [4]*int
			hpti [6]*int
		)
		if err := rows.Scan(
			&a.SubjectID,
			&a.AssessedAt,
			&ppa[0], &ppa[1], &ppa[2], &ppa[3],
			&hpti[0], &hpti[1], &hpti[2], &hpti[3], &hpti[4], &hpti[5],
			&a.GIA,
		); err != nil {
			return nil, err
		}
		a.Behavioral = behavioralFromColumns(ppa)
		a.Leadership = leadershipFromColumns(hpti)
		out = append(out, a)
	}
	return out, rows.Err()
}

// Un bloque parcial se trata como ausente: nunca se completa con valores neutros.
func behavioralFromColumns(c [4]*int) *scoring.BehavioralProfile {
	for _, v := range c {
		if v == nil {
			return nil
		}
	}
	return &scoring.BehavioralProfile{
		Assertiveness:   *c[0],
		Sociability:     *c[1],
		Pace:            *c[2],
		RuleOrientation: *c[3],
	}
}

func leadershipFromColumns(c [6]*int) *scoring.LeadershipProfile {
	for _, v := range c {
		if v == nil {
			return nil
		}
	}
	return &scoring.LeadershipProfile{
		Conscientiousness:   *c[0],
		Adjustment:          *c[1],
		Curiosity:           *c[2],
		RiskApproach:        *c[3],
		AmbiguityAcceptance: *c[4],
		Competitiveness:     *c[5],
	}
}
