package helper

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

func revokedKey(jti string) string {
	return fmt.Sprintf("revoked_token:%s", jti)
}

// RevokeToken đưa jti của token vào danh sách thu hồi cho tới khi token hết hạn
func RevokeToken(ctx context.Context, rdb *redis.Client, token *jwt.Token) error {
	if rdb == nil {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("invalid token claims")
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil
	}

	ttl := time.Hour
	if expFloat, ok := claims["exp"].(float64); ok {
		until := time.Until(time.Unix(int64(expFloat), 0))
		if until > 0 {
			ttl = until
		}
	}

	return rdb.Set(ctx, revokedKey(jti), "1", ttl).Err()
}

func IsTokenRevoked(ctx context.Context, rdb *redis.Client, token *jwt.Token) bool {
	if rdb == nil {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return false
	}

	n, err := rdb.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false
	}
	return n > 0
}
