package domain

import "time"

type Role struct {
	ID              string    `json:"role_id"`
	Title           string    `json:"title"`
	RoleType        string    `json:"role_type"`
	Department      string    `json:"department"`
	Level           string    `json:"level"`
	HiringManagerID string    `json:"hiring_manager_id"`
	Status          string    `json:"status"`
	Location        string    `json:"location"`
	MinSalary       float64   `json:"min_salary"`
	MaxSalary       float64   `json:"max_salary"`
	TargetHireDate  time.Time `json:"target_hire_date"`
}

// Etapas del pipeline, en orden.
const (
	StageScreening = "Screening"
	StagePhone     = "Phone Interview"
	StageTechnical = "Technical Assessment"
	StageOnsite    = "Onsite Interview"
	StageFinal     = "Final Round"
)

// StageScores son las notas 0-100 por etapa; nil si la etapa no se evaluo todavia.
type StageScores struct {
	Screening *float64 `json:"screening,omitempty"`
	Phone     *float64 `json:"phone_interview,omitempty"`
	Technical *float64 `json:"technical_assessment,omitempty"`
	Onsite    *float64 `json:"onsite_interview,omitempty"`
	Final     *float64 `json:"final_round,omitempty"`
}

type Candidate struct {
	ID             string      `json:"candidate_id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	RoleID         string      `json:"role_id"`
	CurrentStage   string      `json:"current_stage"`
	Stages         StageScores `json:"stage_scores"`
	ExpectedSalary float64     `json:"expected_salary"`
	Currency       string      `json:"currency"`
	Source         string      `json:"source"`
	AppliedAt      time.Time   `json:"applied_at"`
}

// PlannedCollaboration es un companero con el que trabajara quien ocupe el rol.
type PlannedCollaboration struct {
	RoleID           string `json:"role_id"`
	EmployeeID       string `json:"employee_id"`
	RelationshipRole string `json:"relationship_role"`
	TimeAllocation   int    `json:"time_allocation_percent"`
}

// IdealProfile es el promedio del cuartil superior de rendimiento de un departamento.
type IdealProfile struct {
	Department        string  `json:"department"`
	Assertiveness     int     `json:"assertiveness"`
	Sociability       int     `json:"sociability"`
	Pace              int     `json:"pace"`
	RuleOrientation   int     `json:"rule_orientation"`
	GIA               int     `json:"gia"`
	Conscientiousness int     `json:"conscientiousness"`
	Adjustment        int     `json:"adjustment"`
	Curiosity         int     `json:"curiosity"`
	SampleSize        int     `json:"sample_size"`
	Threshold         float64 `json:"performance_threshold"`
}
