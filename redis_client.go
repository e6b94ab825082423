package pcy

import (
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConnOptions holds the connection settings of the redis server
// backing the redis bucket counters and bitmaps.
type RedisConnOptions struct {
	DB                int
	Network           string
	Address           string
	Username          string
	Password          string
	ConnectionTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	PoolSize          int
	TLSConfig         *tls.Config
}

// NewRedisClient returns a client connected with _options_. Each mining
// run owns its client; nothing is shared through package state.
func NewRedisClient(options RedisConnOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		DB:           options.DB,
		Network:      options.Network,
		Addr:         options.Address,
		Username:     options.Username,
		Password:     options.Password,
		DialTimeout:  options.ConnectionTimeout,
		ReadTimeout:  options.ReadTimeout,
		WriteTimeout: options.WriteTimeout,
		PoolSize:     options.PoolSize,
		TLSConfig:    options.TLSConfig,
	})
}

// ParseRedisURI parses a redis:// or rediss:// uri into RedisConnOptions
func ParseRedisURI(uri string) (*RedisConnOptions, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("pcy: could not parse redis uri: %v", err)
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return nil, fmt.Errorf("pcy: unsupported uri scheme %q", u.Scheme)
	}
	options, err := redis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("pcy: error while parsing redis uri: %v", err)
	}
	return makeConnOptions(options), nil
}

func makeConnOptions(options *redis.Options) *RedisConnOptions {
	return &RedisConnOptions{
		DB:                options.DB,
		Network:           options.Network,
		Address:           options.Addr,
		Username:          options.Username,
		Password:          options.Password,
		ConnectionTimeout: options.DialTimeout,
		ReadTimeout:       options.ReadTimeout,
		WriteTimeout:      options.WriteTimeout,
		PoolSize:          options.PoolSize,
		TLSConfig:         options.TLSConfig,
	}
}
