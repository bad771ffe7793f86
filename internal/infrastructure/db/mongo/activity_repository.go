package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sportsmeet/sportsmeet-api/internal/core/domain"
)

const collectionActivity = "auth_activity"

// ActivityRepository persists the audit trail of account actions.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(collectionActivity)}
}

type activityDoc struct {
	UserID   string `bson:"user_id"`
	Username string `bson:"username"`
	Kind     string `bson:"kind"`
	At       int64  `bson:"at"`
}

func (r *ActivityRepository) Insert(ctx context.Context, activity domain.Activity) error {
	doc := activityDoc{
		UserID:   activity.UserID,
		Username: activity.Username,
		Kind:     string(activity.Kind),
		At:       activity.At.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
