package enquirylog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/construction-sites/crm/internal/usecase"
)

const logKey = "enquiry:log"

// RedisLogger keeps an anonymized, append-only enquiry metrics list.
type RedisLogger struct {
	Client *redis.Client
}

func NewRedisLogger(client *redis.Client) *RedisLogger {
	return &RedisLogger{Client: client}
}

func (l *RedisLogger) Append(ctx context.Context, entry usecase.EnquiryLogEntry) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal enquiry log entry: %w", err)
	}
	return l.Client.LPush(ctx, logKey, body).Err()
}
