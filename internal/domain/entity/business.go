package entity

import "time"

// Business raíz multi-tenant: dueña de sucursales, catálogo y anuncios.
// Este núcleo la lee como snapshot inmutable; el CRUD vive fuera.
type Business struct {
	ID        int64
	Name      string
	LogoURL   string
	CoverURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Branch sucursal física de un Business. El menú siempre se resuelve por sucursal.
type Branch struct {
	ID         int64
	BusinessID int64
	Name       string
	Address    string
	Phone      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
