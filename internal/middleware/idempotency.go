package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyHeader = "Idempotency-Key"
	idempotencyTTL    = 24 * time.Hour
)

// storedResponse is the replayed response for an idempotent request.
type storedResponse struct {
	StatusCode  int             `json:"status_code"`
	ContentType string          `json:"content_type"`
	Body        json.RawMessage `json:"body"`
}

// captureWriter wraps gin.ResponseWriter to capture the response body.
type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response for a repeated
// Idempotency-Key, so a client retrying an accept or complete after a
// network failure does not observe a spurious conflict. Requests
// without the header pass through untouched, and Redis being down
// degrades to normal processing.
func IdempotencyMiddleware(redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := "idempotency:" + key

		stored, err := lookupResponse(ctx, redisClient, cacheKey)
		if err != nil {
			c.Next()
			return
		}

		if stored != nil {
			c.Data(stored.StatusCode, stored.ContentType, stored.Body)
			c.Abort()
			return
		}

		w := &captureWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = w

		c.Next()

		// Server errors are not stored; the client should retry those.
		if c.Writer.Status() < http.StatusInternalServerError {
			stored := storedResponse{
				StatusCode:  c.Writer.Status(),
				ContentType: c.Writer.Header().Get("Content-Type"),
				Body:        w.body.Bytes(),
			}
			_ = storeResponse(ctx, redisClient, cacheKey, &stored)
		}
	}
}

// lookupResponse retrieves a stored response. A missing key is a plain
// miss, not an error.
func lookupResponse(ctx context.Context, client *redis.Client, key string) (*storedResponse, error) {
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stored storedResponse
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}

	return &stored, nil
}

// storeResponse stores a response in Redis.
func storeResponse(ctx context.Context, client *redis.Client, key string, response *storedResponse) error {
	data, err := json.Marshal(response)
	if err != nil {
		return err
	}

	return client.Set(ctx, key, data, idempotencyTTL).Err()
}
