package sessions

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// FlashMessage is a one-shot user-facing notice. Category is "error" or
// "correcto", matching what the rendered pages expect.
type FlashMessage struct {
	Category string `json:"categoria"`
	Message  string `json:"mensaje"`
}

const flashKeyPrefix = "flash:"

// FlashStore keeps per-session write-once-read-once message lists in Redis.
type FlashStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFlashStore(client *redis.Client, ttl time.Duration) *FlashStore {
	return &FlashStore{client: client, ttl: ttl}
}

// Add queues a message for the session's next page render.
func (f *FlashStore) Add(ctx context.Context, sessionID, category, message string) error {
	payload, err := json.Marshal(FlashMessage{Category: category, Message: message})
	if err != nil {
		return err
	}

	key := flashKeyPrefix + sessionID
	pipe := f.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, f.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Drain returns all queued messages and removes them. A second Drain for the
// same session comes back empty.
func (f *FlashStore) Drain(ctx context.Context, sessionID string) ([]FlashMessage, error) {
	key := flashKeyPrefix + sessionID

	pipe := f.client.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	raw, err := items.Result()
	if err != nil {
		return nil, err
	}

	messages := make([]FlashMessage, 0, len(raw))
	for _, item := range raw {
		var msg FlashMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			continue // drop entries that don't decode
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
