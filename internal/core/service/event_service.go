package service

import (
	"context"
	"time"

	"github.com/sportsmeet/sportsmeet-api/internal/core/domain"
	"github.com/sportsmeet/sportsmeet-api/internal/core/ports"
)

// EventService implements meetup scheduling and participation.
type EventService struct {
	events ports.EventRepository
	sports ports.SportRepository
}

func NewEventService(events ports.EventRepository, sports ports.SportRepository) *EventService {
	return &EventService{events: events, sports: sports}
}

func (s *EventService) Create(ctx context.Context, hostID string, input ports.CreateEventInput) (*domain.Event, error) {
	sport, err := s.sports.FindByID(ctx, input.SportID)
	if err != nil {
		return nil, err
	}

	capacity := input.Capacity
	if capacity <= 0 || (sport.MaxPlayers > 0 && capacity > sport.MaxPlayers) {
		capacity = sport.MaxPlayers
	}

	event := &domain.Event{
		SportID:      sport.ID,
		Title:        input.Title,
		Location:     input.Location,
		StartsAt:     input.StartsAt,
		Capacity:     capacity,
		HostID:       hostID,
		Participants: []string{hostID},
		CreatedAt:    time.Now().UTC(),
	}

	return s.events.Create(ctx, event)
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, sportID string) ([]domain.Event, error) {
	return s.events.List(ctx, sportID)
}

func (s *EventService) Join(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := event.Join(userID); err != nil {
		return nil, err
	}

	if err := s.events.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Leave(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := event.Leave(userID); err != nil {
		return nil, err
	}

	if err := s.events.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}
