package models

import "time"

// Tenant — школа-арендатор платформы (поддомен вида acme.kursi.uz).
type Tenant struct {
	ID        int64     `json:"id"`
	Subdomain string    `json:"subdomain"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
