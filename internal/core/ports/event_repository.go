package ports

import (
	"context"

	"github.com/sportsmeet/sportsmeet-api/internal/core/domain"
)

// EventRepository defines the interface for event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, sportID string) ([]domain.Event, error)
	Save(ctx context.Context, event *domain.Event) error
}
