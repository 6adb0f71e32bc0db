package ports

import (
	"context"

	"github.com/Miki0195/delavnice-backend/internal/domain"
)

// ActivityPublisher delivers transition events to the activity log. Called
// once per committed transition, after the commit.
type ActivityPublisher interface {
	PublishTransition(ctx context.Context, e domain.TransitionEvent) error
}
