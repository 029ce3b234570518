package learning

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const recordsKey = "learning:records"

// RedisStore keeps learning records in a Redis list and counters as plain
// keys, all under the retention TTL.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisStore creates a Redis-backed learning store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if client == nil {
		panic("learning: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisStore{redis: client, ttl: ttl}
}

// PushRecord appends a record to the learning list and renews its TTL.
func (s *RedisStore) PushRecord(ctx context.Context, record Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("learning: failed to marshal record: %w", err)
	}

	pipe := s.redis.TxPipeline()
	pipe.RPush(ctx, recordsKey, data)
	pipe.Expire(ctx, recordsKey, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("learning: failed to push record: %w", err)
	}
	return nil
}

// IncrementCounter bumps a named counter and renews its TTL.
func (s *RedisStore) IncrementCounter(ctx context.Context, key string) error {
	pipe := s.redis.TxPipeline()
	pipe.Incr(ctx, counterKey(key))
	pipe.Expire(ctx, counterKey(key), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("learning: failed to increment %s: %w", key, err)
	}
	return nil
}

// CounterValue reads a counter back; missing counters read as zero.
func (s *RedisStore) CounterValue(ctx context.Context, key string) (int64, error) {
	val, err := s.redis.Get(ctx, counterKey(key)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("learning: failed to read counter %s: %w", key, err)
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("learning: bad counter value for %s: %w", key, err)
	}
	return n, nil
}

// RecentRecords returns up to limit records from the tail of the list,
// newest last.
func (s *RedisStore) RecentRecords(ctx context.Context, limit int64) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	raw, err := s.redis.LRange(ctx, recordsKey, -limit, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("learning: failed to read records: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for _, item := range raw {
		var rec Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// TopicCount is a topic counter read back for analytics.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int64  `json:"count"`
}

// TopTopics returns up to limit topic counters ordered by count descending.
// Topics with equal counts are ordered alphabetically.
func (s *RedisStore) TopTopics(ctx context.Context, limit int) ([]TopicCount, error) {
	if limit <= 0 {
		limit = 10
	}
	prefix := counterKey("topics:")

	var counts []TopicCount
	iter := s.redis.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		val, err := s.redis.Get(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("learning: failed to read topic counter %s: %w", key, err)
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			continue
		}
		counts = append(counts, TopicCount{Topic: strings.TrimPrefix(key, prefix), Count: n})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("learning: failed to scan topic counters: %w", err)
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Topic < counts[j].Topic
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts, nil
}

func counterKey(key string) string {
	return "learning:counters:" + key
}
