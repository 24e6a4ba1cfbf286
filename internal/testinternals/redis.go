package testinternals

import (
	"context"
	"fmt"
	"log"
	"net"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

// Redis is a throwaway redis container.
type Redis struct {
	Client *redis.Client
	Port   string

	dockerPool *dockertest.Pool
	resource   *dockertest.Resource
}

func NewRedis(ctx context.Context) (_ *Redis, err error) {
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}
	if err = dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return nil, fmt.Errorf("run redis: %w", err)
	}

	r := &Redis{
		Port:       resource.GetPort("6379/tcp"),
		dockerPool: dockerPool,
		resource:   resource,
	}
	defer func() {
		if err != nil {
			r.Close()
		}
	}()

	r.Client = redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort("localhost", r.Port),
	})
	if err = dockerPool.Retry(func() error {
		return r.Client.Ping(ctx).Err()
	}); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return r, nil
}

func (r *Redis) Close() {
	if r.Client != nil {
		if err := r.Client.Close(); err != nil {
			log.Printf("redis client close: %s", err)
		}
	}
	if r.resource != nil {
		if err := r.dockerPool.Purge(r.resource); err != nil {
			log.Printf("redis teardown: %s", err)
		}
	}
}
