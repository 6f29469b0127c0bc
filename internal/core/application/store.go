package application

import "context"

// Repository abstracts application persistence, always filtered by the
// acting organization.
type Repository interface {
	ListApplications(ctx context.Context, organizationID string, f Filter, limit, offset int) ([]*Application, int, error)
	GetApplication(ctx context.Context, organizationID, id string) (*Application, error)
	CreateApplication(ctx context.Context, a *Application) error
	UpdateApplication(ctx context.Context, a *Application) error
	DeleteApplication(ctx context.Context, organizationID, id string) error
}
