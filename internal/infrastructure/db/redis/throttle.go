package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const throttleTTL = time.Minute

// SubmissionThrottle rejects repeated identical public form submissions
// within a short window, backed by Redis.
// Key format: submit:<form>:<sha256(email|body)>
type SubmissionThrottle struct {
	client *redis.Client
}

// NewSubmissionThrottle creates a SubmissionThrottle wrapping the given Redis client.
func NewSubmissionThrottle(client *redis.Client) *SubmissionThrottle {
	return &SubmissionThrottle{client: client}
}

// IsDuplicate reports whether an identical submission was seen within the window.
func (t *SubmissionThrottle) IsDuplicate(ctx context.Context, form, email, body string) (bool, error) {
	n, err := t.client.Exists(ctx, t.key(form, email, body)).Result()
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n > 0, nil
}

// Mark records the submission (expires after throttleTTL).
func (t *SubmissionThrottle) Mark(ctx context.Context, form, email, body string) error {
	return t.client.Set(ctx, t.key(form, email, body), "1", throttleTTL).Err()
}

func (t *SubmissionThrottle) key(form, email, body string) string {
	sum := sha256.Sum256([]byte(email + "|" + body))
	return fmt.Sprintf("submit:%s:%s", form, hex.EncodeToString(sum[:8]))
}
