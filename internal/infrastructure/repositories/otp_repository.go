package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Mr-Mosio/BaranBackend/domain"
	"github.com/redis/go-redis/v9"
)

// OTPRepositoryImpl implements domain.OTPRepository using Redis. The key TTL
// is the code's validity window, so expiry needs no sweeper.
type OTPRepositoryImpl struct {
	client *redis.Client
	prefix string
}

// consumeScript deletes the stored code only when it matches, so exactly one
// of any number of concurrent consumers wins.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// NewOTPRepository creates a new Redis-backed OTP repository
func NewOTPRepository(client *redis.Client) domain.OTPRepository {
	return &OTPRepositoryImpl{
		client: client,
		prefix: "otp:",
	}
}

// CreateIfAbsent implements domain.OTPRepository. SET NX keeps an existing
// unexpired code in place, which is what enforces the
// one-unexpired-code-per-mobile policy.
func (r *OTPRepositoryImpl) CreateIfAbsent(ctx context.Context, otp *domain.OTPCode) (bool, error) {
	ttl := time.Until(otp.ExpiresAt)
	if ttl <= 0 {
		return false, fmt.Errorf("otp for %s already expired", otp.Mobile)
	}

	created, err := r.client.SetNX(ctx, r.prefix+otp.Mobile, otp.Code, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to store OTP: %w", err)
	}
	return created, nil
}

// Consume implements domain.OTPRepository
func (r *OTPRepositoryImpl) Consume(ctx context.Context, mobile, code string) error {
	deleted, err := consumeScript.Run(ctx, r.client, []string{r.prefix + mobile}, code).Int()
	if err != nil {
		return fmt.Errorf("failed to consume OTP: %w", err)
	}
	if deleted == 0 {
		return domain.ErrOTPInvalidOrExpired
	}
	return nil
}
