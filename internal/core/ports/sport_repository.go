package ports

import (
	"context"

	"github.com/sportsmeet/sportsmeet-api/internal/core/domain"
)

// SportRepository defines read access to the sport catalog.
type SportRepository interface {
	List(ctx context.Context) ([]domain.Sport, error)
	FindByID(ctx context.Context, id string) (*domain.Sport, error)
}
