package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis every repository is written against.
// redis.UniversalClient lets the same code run on a single node or a
// cluster.
type Client interface {
	redis.UniversalClient
}
