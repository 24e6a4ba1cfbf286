package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

const (
	DefaultTTL = 24 * 7 * time.Hour

	// SessionKeyPrefix namespaces session keys written by the account service.
	// The value of a session key is its creation time as unix seconds.
	SessionKeyPrefix = "fitplanner-session||"
)

// LoginChecker validates session tokens issued by the account service.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// IsLogged reports whether token names a session that exists and is younger than the ttl.
// A missing session is not an error.
func (c *LoginChecker) IsLogged(ctx context.Context, token string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.islogged")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	createdAtUnixStr, err := c.redisClient.Get(ctx, SessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get session: %w", err)
	}

	createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
	if err != nil {
		return false, fmt.Errorf("parse session created at: %w", err)
	}

	createdAt := time.Unix(createdAtUnix, 0)
	if time.Since(createdAt) > c.ttl {
		return false, nil
	}

	return true, nil
}
