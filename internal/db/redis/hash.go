package redis

import (
	"context"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/shopassist/internal/db"
)

// HSetMulti stores multiple hashes in a single DoMulti round-trip.
// The returned slice has one entry per item; nil means the item was written.
func (s *Store) HSetMulti(ctx context.Context, items []db.HashSetItem) []error {
	if len(items) == 0 {
		return nil
	}

	cmds := make([]rueidis.Completed, len(items))
	for i, item := range items {
		cmd := s.b().Hset().Key(item.Key).FieldValue()
		for k, v := range item.Fields {
			cmd = cmd.FieldValue(k, v)
		}
		cmds[i] = cmd.Build()
	}

	errs := make([]error, len(items))
	results := s.client.DoMulti(ctx, cmds...)
	for i := range items {
		if i >= len(results) {
			errs[i] = &db.Error{Op: db.OpHSet, Key: items[i].Key, Err: context.Canceled}
			continue
		}
		if err := results[i].Error(); err != nil {
			errs[i] = &db.Error{Op: db.OpHSet, Key: items[i].Key, Err: err}
		}
	}
	return errs
}

// Scan collects all keys matching pattern, following the cursor to the end.
func (s *Store) Scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64

	for {
		cmd := s.b().Scan().Cursor(cursor).Match(pattern).Count(100).Build()
		res, err := s.do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, &db.Error{Op: db.OpScan, Key: pattern, Err: err}
		}
		keys = append(keys, res.Elements...)
		cursor = res.Cursor
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}
