package ports

import (
	"context"
	"time"

	"github.com/sportsmeet/sportsmeet-api/internal/core/domain"
)

// CreateEventInput holds everything needed to schedule a meetup.
type CreateEventInput struct {
	SportID  string
	Title    string
	Location string
	StartsAt time.Time
	Capacity int
}

type EventService interface {
	Create(ctx context.Context, hostID string, input CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, sportID string) ([]domain.Event, error)
	Join(ctx context.Context, eventID, userID string) (*domain.Event, error)
	Leave(ctx context.Context, eventID, userID string) (*domain.Event, error)
}
