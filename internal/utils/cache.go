package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // Cache key construction
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes a key from Redis
func DeleteCache(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err() // Delete key from Redis
}

// TierCacheKey builds the cache key for a donor's tier progress
func TierCacheKey(userID uint) string {
	return "tier:user:" + strconv.Itoa(int(userID))
}

// adminUsersVerKey holds the generation counter for admin listing caches
const adminUsersVerKey = "admin:users:ver"

// AdminUsersCacheKey builds a generation-scoped key for one admin listing
// page. Bumping the generation orphans every cached page regardless of its
// pagination parameters; orphans expire with their TTL.
func AdminUsersCacheKey(ctx context.Context, rdb *redis.Client, page, size string) string {
	ver, err := rdb.Get(ctx, adminUsersVerKey).Result()
	if err != nil {
		ver = "0" // Counter not set yet, or Redis unreachable
	}
	return "admin:users:v" + ver + ":page=" + page + ":size=" + size
}

// InvalidateDonorCache drops the cached reads affected by a donation
func InvalidateDonorCache(ctx context.Context, rdb *redis.Client, userID uint) {
	_ = DeleteCache(ctx, rdb, TierCacheKey(userID)) // Tier progress for this donor
	// Admin user listings embed totals; move them all to a new generation
	_ = rdb.Incr(ctx, adminUsersVerKey).Err()
}
