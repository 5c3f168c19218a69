package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// TokenCookieName is the auth cookie set on password and OAuth logins.
const TokenCookieName = "token"

const oauthStateCookie = "oauth_state"

// CookieManager writes the browser-session cookies. The token cookie is
// HTTP-only and SameSite strict with the same expiry as the token itself;
// Secure is environment dependent (off for local development).
type CookieManager struct {
	Domain string
	Secure bool
}

func NewCookie(domain string, secure bool) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure}
}

func (m *CookieManager) SetToken(c *gin.Context, token string, exp time.Time) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookieName, token, maxAgeFrom(exp), "/", m.Domain, m.Secure, true)
}

// ClearToken clears the auth cookie. The token itself stays valid until its
// natural expiry; logout is purely client-side.
func (m *CookieManager) ClearToken(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookieName, "", -1, "/", m.Domain, m.Secure, true)
}

// SetOAuthState stores the anti-CSRF nonce for the provider round trip.
// Lax so the cookie survives the cross-site redirect back from the provider.
func (m *CookieManager) SetOAuthState(c *gin.Context, state string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, int((10 * time.Minute).Seconds()), "/", m.Domain, m.Secure, true)
}

func (m *CookieManager) OAuthState(c *gin.Context) string {
	v, err := c.Cookie(oauthStateCookie)
	if err != nil {
		return ""
	}
	return v
}

func (m *CookieManager) ClearOAuthState(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, "", -1, "/", m.Domain, m.Secure, true)
}

func maxAgeFrom(exp time.Time) int {
	sec := int(time.Until(exp).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}
