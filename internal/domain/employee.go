package domain

import (
	"time"

	"talent-hub/internal/scoring"
)

type Employee struct {
	ID           string    `json:"employee_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	Level        string    `json:"level"`
	ManagerID    *string   `json:"manager_id,omitempty"`
	HireDate     time.Time `json:"hire_date"`
	TenureMonths int       `json:"tenure_months"`
	Location     string    `json:"location"`
	Salary       float64   `json:"salary"`
	Currency     string    `json:"currency"`
	IsManager    bool      `json:"is_manager"`
}

// Assessment es el resultado psicometrico de un sujeto (empleado o candidato).
// Cada bloque es opcional: nil significa que la prueba no se hizo, nunca un valor neutro.
type Assessment struct {
	SubjectID  string                     `json:"subject_id"`
	AssessedAt time.Time                  `json:"assessed_at"`
	Behavioral *scoring.BehavioralProfile `json:"behavioral,omitempty"`
	Leadership *scoring.LeadershipProfile `json:"leadership,omitempty"`
	GIA        *int                       `json:"gia,omitempty"`
}

// PerformanceMetric es el registro trimestral de un empleado.
type PerformanceMetric struct {
	EmployeeID         string   `json:"employee_id"`
	Quarter            string   `json:"quarter" validate:"required,len=7"`
	PerformanceScore   float64  `json:"performance_score" validate:"gte=0,lte=5"`
	GoalCompletionRate float64  `json:"goal_completion_rate" validate:"gte=0,lte=1"`
	Velocity           *float64 `json:"velocity,omitempty" validate:"omitempty,gte=0"`
	Morale             float64  `json:"morale" validate:"gte=0,lte=100"`
	Sentiment          float64  `json:"sentiment" validate:"gte=0,lte=1"`
	ManagerRating      int      `json:"manager_rating" validate:"gte=1,lte=5"`
}

// Collaboration es una relacion de trabajo observada entre dos empleados.
type Collaboration struct {
	EmployeeID           string  `json:"employee_id"`
	CollaboratorID       string  `json:"collaborator_id"`
	InteractionFrequency string  `json:"interaction_frequency"`
	TimeAllocation       int     `json:"time_allocation_percent"`
	RelationshipScore    float64 `json:"relationship_score"`
}
