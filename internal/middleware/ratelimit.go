package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/tejpreet12/rn-wallet-backend/internal/ratelimit"
)

// DefaultAdmissionKey is the single shared key every request is counted
// under, making the limit global across callers rather than per caller.
const DefaultAdmissionKey = "rate-limit:global"

type RateLimitConfig struct {
	Limiter ratelimit.Limiter
	// KeyFunc derives the admission key for a request. When nil every request
	// shares DefaultAdmissionKey; per-caller limits plug in here without
	// touching the limiter.
	KeyFunc func(c *fiber.Ctx) string
}

// RateLimit gates every request before it reaches a route handler. A denied
// request never executes its operation; a counter-store failure aborts the
// request rather than admitting it.
func RateLimit(cfg RateLimitConfig) fiber.Handler {
	keyFunc := cfg.KeyFunc
	if keyFunc == nil {
		keyFunc = func(*fiber.Ctx) string { return DefaultAdmissionKey }
	}
	return func(c *fiber.Ctx) error {
		allowed, err := cfg.Limiter.Allow(c.UserContext(), keyFunc(c))
		if err != nil {
			log.Printf("Rate limit check failed: %v", err)
			return RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		if !allowed {
			return RespondWithError(c, fiber.StatusTooManyRequests, "Too many requests. Please try again later.")
		}
		return c.Next()
	}
}
