package domain

import (
	"errors"
	"time"
)

var ErrEventNotFound = errors.New("event not found")
var ErrEventFull = errors.New("event is full")
var ErrAlreadyJoined = errors.New("already joined this event")
var ErrNotParticipant = errors.New("not a participant of this event")
var ErrForbidden = errors.New("access forbidden")

// Event is a planned sports meetup. The host is always a participant.
type Event struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	SportID      string    `json:"sport_id" bson:"sport_id"`
	Title        string    `json:"title" bson:"title"`
	Location     string    `json:"location" bson:"location"`
	StartsAt     time.Time `json:"starts_at" bson:"starts_at"`
	Capacity     int       `json:"capacity" bson:"capacity"`
	HostID       string    `json:"host_id" bson:"host_id"`
	Participants []string  `json:"participants" bson:"participants"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Join adds userID to the participant list.
func (e *Event) Join(userID string) error {
	for _, p := range e.Participants {
		if p == userID {
			return ErrAlreadyJoined
		}
	}
	if e.Capacity > 0 && len(e.Participants) >= e.Capacity {
		return ErrEventFull
	}
	e.Participants = append(e.Participants, userID)
	return nil
}

// Leave removes userID from the participant list. The host cannot leave
// their own event.
func (e *Event) Leave(userID string) error {
	if userID == e.HostID {
		return ErrForbidden
	}
	for i, p := range e.Participants {
		if p == userID {
			e.Participants = append(e.Participants[:i], e.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotParticipant
}
