package ports

import (
	"context"

	"github.com/sportsmeet/sportsmeet-api/internal/core/domain"
)

// ActivityRecorder accepts audit records of account actions. Implementations
// may process records asynchronously; recording never blocks the caller on
// downstream persistence.
type ActivityRecorder interface {
	Record(ctx context.Context, activity domain.Activity)
}

// ActivityRepository persists audit records.
type ActivityRepository interface {
	Insert(ctx context.Context, activity domain.Activity) error
}
