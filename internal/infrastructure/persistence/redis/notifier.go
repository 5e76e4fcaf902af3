package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/platewise/platewise/internal/ports/outbound"
	"go.uber.org/zap"
)

// Channels clients subscribe to for change notifications.
const (
	channelListChanged       = "platewise:list:changed"
	channelPantryChanged     = "platewise:pantry:changed"
	channelSavedListsChanged = "platewise:saved_lists:changed"
)

type changeEvent struct {
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Notifier publishes change events over Redis pub/sub.
type Notifier struct {
	client *goredis.Client
	logger *zap.Logger
}

// NewNotifier creates a pub/sub backed notifier.
func NewNotifier(client *goredis.Client, logger *zap.Logger) outbound.Notifier {
	return &Notifier{
		client: client,
		logger: logger.Named("redis-notifier"),
	}
}

func (n *Notifier) publish(ctx context.Context, channel string, userID uuid.UUID) error {
	payload, err := json.Marshal(changeEvent{
		UserID:    userID.String(),
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	if err := n.client.Publish(ctx, channel, payload).Err(); err != nil {
		n.logger.Debug("Publish failed",
			zap.String("channel", channel),
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return err
	}
	return nil
}

// NotifyListChanged announces that a user's active shopping list changed.
func (n *Notifier) NotifyListChanged(ctx context.Context, userID uuid.UUID) error {
	return n.publish(ctx, channelListChanged, userID)
}

// NotifyPantryChanged announces that a user's pantry changed.
func (n *Notifier) NotifyPantryChanged(ctx context.Context, userID uuid.UUID) error {
	return n.publish(ctx, channelPantryChanged, userID)
}

// NotifySavedListsChanged announces that a user's saved lists changed.
func (n *Notifier) NotifySavedListsChanged(ctx context.Context, userID uuid.UUID) error {
	return n.publish(ctx, channelSavedListsChanged, userID)
}
