package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"tripmarket/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const requestContextKey = "request_context"

// Claims are the token fields issued by the marketplace auth service.
type Claims struct {
	UserID         string `json:"userId"`
	OrganizationID string `json:"organizationId,omitempty"`
	Role           string `json:"role"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

var errMissingToken = errors.New("missing bearer token")

// SignToken issues an HS256 token for the given identity.
func SignToken(secret string, rc domain.RequestContext, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret not set")
	}
	now := time.Now()
	claims := Claims{
		UserID:         rc.UserID,
		OrganizationID: rc.OrganizationID,
		Role:           rc.Role,
		Name:           rc.Name,
		Email:          rc.Email,
		Phone:          rc.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   rc.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies the token and returns the identity it carries.
func ParseToken(secret, raw string) (domain.RequestContext, error) {
	if secret == "" {
		return domain.RequestContext{}, errors.New("JWT secret not set")
	}
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return domain.RequestContext{}, errors.New("invalid token")
	}
	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return domain.RequestContext{}, errors.New("token has no user")
	}
	return domain.RequestContext{
		UserID:         userID,
		OrganizationID: claims.OrganizationID,
		Role:           strings.ToUpper(claims.Role),
		Name:           claims.Name,
		Email:          claims.Email,
		Phone:          claims.Phone,
	}, nil
}

func bearer(c *gin.Context) (string, error) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return "", errMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("invalid authorization format, use 'Bearer <token>'")
	}
	return strings.TrimSpace(parts[1]), nil
}

// OptionalAuth attaches the caller's identity when a valid token is sent and
// lets anonymous requests through. A malformed or expired token is rejected.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := bearer(c)
		if errors.Is(err, errMissingToken) {
			c.Next()
			return
		}
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}
		rc, err := ParseToken(secret, raw)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}
		c.Set(requestContextKey, rc)
		c.Next()
	}
}

// RequireAuth rejects requests without a valid token.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := bearer(c)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}
		rc, err := ParseToken(secret, raw)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}
		c.Set(requestContextKey, rc)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := GetRequestContext(c)
		for _, r := range roles {
			if rc.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":      "forbidden",
			"code":       "forbidden",
			"request_id": GetRequestID(c),
			"message":    "role not allowed",
		})
	}
}

// GetRequestContext returns the caller's identity, or the zero value for
// anonymous requests.
func GetRequestContext(c *gin.Context) domain.RequestContext {
	if c == nil {
		return domain.RequestContext{}
	}
	if v, ok := c.Get(requestContextKey); ok {
		if rc, ok := v.(domain.RequestContext); ok {
			return rc
		}
	}
	return domain.RequestContext{}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
		"message":    "authentication required",
	})
}
