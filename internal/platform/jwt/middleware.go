// Package jwtmw は外部認証サービスが発行したJWTを検証するginミドルウェアを提供します。
package jwtmw

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// EnvKeyJWTSecret はHMAC署名鍵を保持する環境変数名です。
	EnvKeyJWTSecret = "JWT_SECRET"
	// ContextSubject はトークンの sub クレームを保持するコンテキストキーです。
	ContextSubject = "subject"
)

// LoadSecret reads the signing secret from the environment.
func LoadSecret() string {
	return os.Getenv(EnvKeyJWTSecret)
}

// AuthRequired returns a Gin middleware function that validates HMAC-signed JWT
// bearer tokens and restricts access to authenticated callers only.
func AuthRequired(secret string) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))

	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Server misconfiguration (JWT_SECRET not set)
		if len(key) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		// 3. Parse and verify JWT signature (only HMAC allowed)
		token, err := parser.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 4. Extract subject; issuers send it either as a string or a number
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			switch sub := claims["sub"].(type) {
			case string:
				c.Set(ContextSubject, sub)
			case float64: // JWT numbers are decoded as float64
				c.Set(ContextSubject, strconv.FormatFloat(sub, 'f', -1, 64))
			}
		}
		c.Next()
	}
}
