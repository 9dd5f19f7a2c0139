package domain

import "time"

// WeightOverride es un juego de pesos que un manager guarda para un rol concreto.
type WeightOverride struct {
	ID        string             `json:"override_id"`
	ManagerID string             `json:"manager_id" validate:"required"`
	RoleID    string             `json:"role_id" validate:"required"`
	Weights   map[string]float64 `json:"weights" validate:"required,min=1,dive,keys,oneof=coding technical ppa gia hpti,endkeys,gte=0,lte=1"`
	Reason    string             `json:"reason" validate:"max=500"`
	CreatedAt time.Time          `json:"created_at"`
}
