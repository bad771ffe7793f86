package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sportsmeet/sportsmeet-api/internal/core/domain"
)

const collectionSports = "sports"

// SportRepository reads the sport catalog. The catalog is seeded out of band;
// this repository never writes.
type SportRepository struct {
	coll *mongo.Collection
}

func NewSportRepository(db *mongo.Database) *SportRepository {
	return &SportRepository{coll: db.Collection(collectionSports)}
}

func (r *SportRepository) List(ctx context.Context) ([]domain.Sport, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}

	var sports []domain.Sport
	if err := cur.All(ctx, &sports); err != nil {
		return nil, fmt.Errorf("decode sports: %w", err)
	}
	return sports, nil
}

func (r *SportRepository) FindByID(ctx context.Context, id string) (*domain.Sport, error) {
	var sport domain.Sport
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&sport); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSportNotFound
		}
		return nil, fmt.Errorf("find sport: %w", err)
	}
	return &sport, nil
}
