package entities

import "time"

type Timestamp struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleBuyer        = "buyer"
	RoleSeller       = "seller"
	RoleOrganization = "organization"
	RoleDelivery     = "delivery"
)
