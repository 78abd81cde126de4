package middleware

import (
	"log/slog"
	"strings"

	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/cookie"
	"storefront-cart/internal/pkg/userkey"
	"storefront-cart/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxCartKey = "cart_key"

// IdentityMiddleware resolves the user key that scopes the shopper's cart.
// Every request gets exactly one key: authenticated requests are keyed by
// the token subject, everything else by a pinned guest identity. A login or
// logout simply changes which key subsequent requests resolve to; carts are
// never merged across keys.
type IdentityMiddleware struct {
	tokenValidator usecase.TokenValidator
	cookieCfg      config.CookieConfig
}

func NewIdentityMiddleware(tokenValidator usecase.TokenValidator, cfg config.Config) *IdentityMiddleware {
	return &IdentityMiddleware{
		tokenValidator: tokenValidator,
		cookieCfg:      cfg.Cookie,
	}
}

func (m *IdentityMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		token = cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token != "" {
			userID, err := m.tokenValidator.ValidateToken(token)
			if err == nil {
				c.Set(ctxCartKey, userkey.ForUser(userID))
				c.Next()
				return
			}
			// An invalid token degrades to a guest session rather than
			// blocking browsing.
			slog.Warn("token validation failed, falling back to guest identity", "error", err.Error())
		}

		guestID, ok := cookie.GetGuestID(c)
		if !ok {
			guestID = uuid.New()
			cookie.SetGuestID(c, m.cookieCfg, guestID)
		}
		c.Set(ctxCartKey, userkey.ForGuest(guestID))
		c.Next()
	}
}

// GetCartKey returns the user key resolved by IdentityMiddleware. A missing
// key means a route was wired without the middleware.
func GetCartKey(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxCartKey)
	if !exists {
		return "", false
	}
	key, ok := v.(string)
	return key, ok && key != ""
}
