package domain

import "errors"

var ErrSportNotFound = errors.New("sport not found")

// Sport is a catalog entry players organise events around.
// The catalog is public and read-only from the API's point of view.
type Sport struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	Name       string `json:"name" bson:"name"`
	MinPlayers int    `json:"min_players" bson:"min_players"`
	MaxPlayers int    `json:"max_players" bson:"max_players"`
	Indoor     bool   `json:"indoor" bson:"indoor"`
}
