package testinternals

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"

	"github.com/2beens/fitplanner/internal/auth"
)

// Internals bundles redis backed collaborators wired to a redis mock.
type Internals struct {
	LoginChecker *auth.LoginChecker

	// redis
	RedisClient *redis.Client
	RedisMock   redismock.ClientMock
}

func NewTestingInternals() *Internals {
	redisClient, redisMock := redismock.NewClientMock()
	loginChecker := auth.NewLoginChecker(time.Hour, redisClient)

	return &Internals{
		LoginChecker: loginChecker,
		RedisClient:  redisClient,
		RedisMock:    redisMock,
	}
}
