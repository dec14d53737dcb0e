// File: utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AuthSessionPrefix = "authSession:"

// AuthSessionTTL bounds how long a login stays valid without renewal.
const AuthSessionTTL = 24 * time.Hour

// AuthSession is the server-side record of a signed-in user, keyed by the
// SHA-256 hash of the issued token. Administrative privilege is never stored
// here; it is read from the users document on each admin request.
type AuthSession struct {
	UserID        string    `json:"userId"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SaveAuthSession saves the authentication session in Redis with a TTL.
func SaveAuthSession(client *redis.Client, tokenHash string, session AuthSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, AuthSessionPrefix+tokenHash, data, AuthSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves the authentication session from Redis.
func GetAuthSession(client *redis.Client, tokenHash string) (*AuthSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, AuthSessionPrefix+tokenHash).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve auth session: %w", err)
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// DeleteAuthSession removes the session, revoking the token.
func DeleteAuthSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	if err := client.Del(ctx, AuthSessionPrefix+tokenHash).Err(); err != nil {
		return fmt.Errorf("failed to delete auth session: %w", err)
	}
	return nil
}
