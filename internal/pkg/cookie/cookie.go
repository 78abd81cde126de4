package cookie

import (
	"net/http"
	"time"

	"storefront-cart/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	AccessTokenCookieName = "access_token"
	GuestIDCookieName     = "guest_id"

	guestCookieMaxAge = 180 * 24 * time.Hour
)

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// GetGuestID returns the anonymous session id carried by the guest cookie.
func GetGuestID(c *gin.Context) (uuid.UUID, bool) {
	raw, err := c.Cookie(GuestIDCookieName)
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// SetGuestID pins the anonymous session id so the guest's cart survives
// reloads.
func SetGuestID(c *gin.Context, cfg config.CookieConfig, id uuid.UUID) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		GuestIDCookieName,
		id.String(),
		int(guestCookieMaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
