package middlewares

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// DeviceSessionTTL bounds how long a paired device stays authenticated
// before it has to pair again.
const DeviceSessionTTL = 30 * 24 * time.Hour

// IssueDeviceToken signs a session token for a freshly paired device.
func IssueDeviceToken(secret []byte, deviceID string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"deviceId": deviceID,
		"iat":      now.Unix(),
		"exp":      now.Add(DeviceSessionTTL).Unix(),
	})
	return token.SignedString(secret)
}

// AuthMiddleware validates the device-session bearer token and stores the
// device id on the request context.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}
		deviceID, _ := claims["deviceId"].(string)
		if deviceID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "deviceId claim missing"})
			return
		}

		c.Set("deviceID", deviceID)
		c.Next()
	}
}
