package redis

import (
	"context"
	"fmt"
	"strconv"
)

// IncrementPlays increments the play counter of a video and returns the new value
func (s *Store) IncrementPlays(ctx context.Context, id string) (int64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, PlaysKey(id))
	pipe.SAdd(ctx, AllPlaysKey(), id)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to increment plays: %w", err)
	}

	return incr.Val(), nil
}

// GetPlayStats retrieves the play counters of all counted videos
func (s *Store) GetPlayStats(ctx context.Context) (map[string]int64, error) {
	ids, err := s.client.SMembers(ctx, AllPlaysKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get counted video IDs: %w", err)
	}

	stats := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return stats, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = PlaysKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get play counters: %w", err)
	}

	for i, v := range values {
		// Skip counters that expired or were deleted
		str, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			continue
		}
		stats[ids[i]] = n
	}

	return stats, nil
}

// DeletePlays removes play counters and their set membership
func (s *Store) DeletePlays(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, len(ids))
	members := make([]interface{}, len(ids))
	for i, id := range ids {
		keys[i] = PlaysKey(id)
		members[i] = id
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, keys...)
	pipe.SRem(ctx, AllPlaysKey(), members...)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete plays: %w", err)
	}

	return nil
}
