package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/shopassist/internal/db"
)

// GetVector reads a vector written by SetVector.
// Missing keys return db.ErrKeyNotFound; blobs that are not whole FLOAT32s return db.ErrCorruptValue.
func (s *Store) GetVector(ctx context.Context, key string) ([]float32, error) {
	cmd := s.b().Get().Key(key).Build()
	blob, err := s.do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, db.ErrKeyNotFound
		}
		return nil, &db.Error{Op: db.OpGet, Key: key, Err: err}
	}
	if len(blob)%4 != 0 {
		return nil, &db.Error{Op: db.OpGet, Key: key, Err: fmt.Errorf("%w: %d bytes", db.ErrCorruptValue, len(blob))}
	}
	return rueidis.ToVector32(blob), nil
}

// SetVector stores vec in the FLOAT32 layout of index vector fields, expiring after ttl.
func (s *Store) SetVector(ctx context.Context, key string, vec []float32, ttl time.Duration) error {
	cmd := s.b().Set().Key(key).Value(rueidis.VectorString32(vec)).Ex(ttl).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpSet, Key: key, Err: err}
	}
	return nil
}
