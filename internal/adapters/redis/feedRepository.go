package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	feedKey = "feed:recent"

	// Only the newest entries are kept; the database remains the
	// source of truth for the full post list.
	feedMaxSize = 500
)

// FeedRepositoryRedis keeps a ZSET of recently published post ids,
// scored by publication time.
type FeedRepositoryRedis struct {
	Client *redis.Client
}

func NewFeedRepositoryRedis(client *redis.Client) *FeedRepositoryRedis {
	return &FeedRepositoryRedis{
		Client: client,
	}
}

func (r *FeedRepositoryRedis) PushActivePost(ctx context.Context, postID uint, createdAt time.Time) error {
	z := &redis.Z{
		Score:  float64(createdAt.Unix()),
		Member: strconv.FormatUint(uint64(postID), 10),
	}

	if err := r.Client.ZAdd(ctx, feedKey, z).Err(); err != nil {
		return err
	}

	// Trim everything below the newest feedMaxSize entries.
	return r.Client.ZRemRangeByRank(ctx, feedKey, 0, int64(-feedMaxSize-1)).Err()
}

func (r *FeedRepositoryRedis) RemovePost(ctx context.Context, postID uint) error {
	return r.Client.ZRem(ctx, feedKey, strconv.FormatUint(uint64(postID), 10)).Err()
}

func (r *FeedRepositoryRedis) RecentPostIDs(ctx context.Context, limit int64) ([]uint, error) {
	members, err := r.Client.ZRevRange(ctx, feedKey, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
