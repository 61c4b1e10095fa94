package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cardcost/internal/config"
	"cardcost/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newProtectedApp(t *testing.T, auth fiber.Handler) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/protected", auth, func(c *fiber.Ctx) error {
		if claims, err := utils.GetClaims(c); err == nil {
			return c.SendString(claims.Subject)
		}
		return c.SendString("ok")
	})
	return app
}

func statusFor(t *testing.T, app *fiber.App, header string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set(fiber.HeaderAuthorization, header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func basicHeader(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   "ops",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestNewAuth_None(t *testing.T) {
	auth, err := NewAuth(config.AuthConfig{Mode: config.AuthNone})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, statusFor(t, newProtectedApp(t, auth), ""))
}

func TestNewAuth_Basic(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	auth, err := NewAuth(config.AuthConfig{
		Mode:         config.AuthBasic,
		Username:     "admin",
		PasswordHash: string(hash),
	})
	require.NoError(t, err)
	app := newProtectedApp(t, auth)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid credentials", basicHeader("admin", "s3cret"), http.StatusOK},
		{"wrong password", basicHeader("admin", "wrong"), http.StatusUnauthorized},
		{"wrong user", basicHeader("root", "s3cret"), http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(t, app, tt.header))
		})
	}
}

func TestNewAuth_BasicRejectsPlainPassword(t *testing.T) {
	_, err := NewAuth(config.AuthConfig{
		Mode:         config.AuthBasic,
		Username:     "admin",
		PasswordHash: "not-a-hash",
	})
	assert.Error(t, err)
}

func TestNewAuth_UnknownMode(t *testing.T) {
	_, err := NewAuth(config.AuthConfig{Mode: "oauth"})
	assert.Error(t, err)

	_, err = NewAuth(config.AuthConfig{Mode: config.AuthJWT})
	assert.Error(t, err)
}

func TestNewBearerAuth(t *testing.T) {
	app := newProtectedApp(t, NewBearerAuth([]byte(testSecret)))

	valid := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(time.Hour))
	expired := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(-time.Hour))
	otherKey := signToken(t, jwt.SigningMethodHS256, []byte("another-secret-another-secret-00"), time.Now().Add(time.Hour))
	wrongAlg := signToken(t, jwt.SigningMethodHS512, []byte(testSecret), time.Now().Add(time.Hour))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong key", "Bearer " + otherKey, http.StatusUnauthorized},
		{"wrong algorithm", "Bearer " + wrongAlg, http.StatusUnauthorized},
		{"missing bearer prefix", valid, http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(t, app, tt.header))
		})
	}
}

func TestNewBearerAuth_StoresClaims(t *testing.T) {
	app := newProtectedApp(t, NewBearerAuth([]byte(testSecret)))
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body := make([]byte, 3)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "ops", string(body[:n]))
}
