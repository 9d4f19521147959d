package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the history store relies on
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations
type Pipeliner interface {
	redis.Pipeliner
}
