// Package cookie owns the auth cookie names and attributes so handlers
// and middleware agree on them.
package cookie

import (
	"net/http"
	"time"

	"fieldbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	cookiePath = "/"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	setAuthCookie(c, cfg, AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()))
	setAuthCookie(c, cfg, RefreshTokenCookieName, refreshToken, int(refreshExpiry.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	setAuthCookie(c, cfg, AccessTokenCookieName, "", -1)
	setAuthCookie(c, cfg, RefreshTokenCookieName, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

// auth cookies are always HttpOnly
func setAuthCookie(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetCookie(name, value, maxAge, cookiePath, cfg.Domain, cfg.Secure, true)
}

func sameSiteMode(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
