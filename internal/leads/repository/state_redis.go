package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/engineers-planet/site/internal/leads/domain"
	"github.com/redis/go-redis/v9"
)

const (
	formKeyPrefix = "site:form:"     // Phase of a form instance: site:form:{visitor}:{kind}
	submittingTTL = 10 * time.Minute // guards against a crashed submit holding the form forever
)

// abortScript deletes the key only while it still says "submitting".
var abortScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisStateStore keeps form phases in Redis. A missing key means Editing;
// the Submitted key expires after the reset delay.
type RedisStateStore struct {
	client *redis.Client
}

func NewRedisStateStore(client *redis.Client) *RedisStateStore {
	return &RedisStateStore{client: client}
}

func (r *RedisStateStore) Begin(ctx context.Context, formID string) error {
	key := r.formKey(formID)

	ok, err := r.client.SetNX(ctx, key, string(domain.PhaseSubmitting), submittingTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to begin submission: %w", err)
	}
	if ok {
		return nil
	}

	current, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		// expired between SETNX and GET
		return r.Begin(ctx, formID)
	}
	if err != nil {
		return fmt.Errorf("failed to read form state: %w", err)
	}
	if domain.Phase(current) == domain.PhaseSubmitted {
		return domain.ErrFormSubmitted
	}
	return domain.ErrFormBusy
}

func (r *RedisStateStore) Complete(ctx context.Context, formID string, resetAfter time.Duration) error {
	if err := r.client.Set(ctx, r.formKey(formID), string(domain.PhaseSubmitted), resetAfter).Err(); err != nil {
		return fmt.Errorf("failed to complete submission: %w", err)
	}
	return nil
}

func (r *RedisStateStore) Abort(ctx context.Context, formID string) error {
	err := abortScript.Run(ctx, r.client, []string{r.formKey(formID)}, string(domain.PhaseSubmitting)).Err()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to abort submission: %w", err)
	}
	return nil
}

func (r *RedisStateStore) Phase(ctx context.Context, formID string) (domain.Phase, error) {
	v, err := r.client.Get(ctx, r.formKey(formID)).Result()
	if err == redis.Nil {
		return domain.PhaseEditing, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get form state: %w", err)
	}
	return domain.Phase(v), nil
}

func (r *RedisStateStore) formKey(formID string) string {
	return formKeyPrefix + formID
}
