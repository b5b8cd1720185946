package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aquasense-be/config"
	"aquasense-be/models"
	authUtils "aquasense-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{Name: "Test User", Email: email, Password: "password1", Role: role}
	require.NoError(t, user.HashPassword())
	require.NoError(t, db.Create(user).Error)
	return user
}

func newProtectedRouter(db *gorm.DB, tokens *authUtils.TokenIssuer, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Authenticate(db, tokens)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	db := config.OpenTestDB(t)
	tokens := authUtils.NewTokenIssuer("test-secret", time.Hour)
	r := newProtectedRouter(db, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	db := config.OpenTestDB(t)
	tokens := authUtils.NewTokenIssuer("test-secret", time.Hour)
	r := newProtectedRouter(db, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	db := config.OpenTestDB(t)
	seedUser(t, db, "user@example.com", models.RoleUser)

	expired := authUtils.NewTokenIssuer("test-secret", -1*time.Minute)
	tok, err := expired.Issue("user@example.com")
	require.NoError(t, err)

	r := newProtectedRouter(db, authUtils.NewTokenIssuer("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_UnknownSubject(t *testing.T) {
	db := config.OpenTestDB(t)
	tokens := authUtils.NewTokenIssuer("test-secret", time.Hour)

	tok, err := tokens.Issue("ghost@example.com")
	require.NoError(t, err)

	r := newProtectedRouter(db, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_Success(t *testing.T) {
	db := config.OpenTestDB(t)
	seedUser(t, db, "user@example.com", models.RoleUser)

	tokens := authUtils.NewTokenIssuer("test-secret", time.Hour)
	tok, err := tokens.Issue("user@example.com")
	require.NoError(t, err)

	r := newProtectedRouter(db, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "user@example.com")
}

func TestRequireRole(t *testing.T) {
	db := config.OpenTestDB(t)
	seedUser(t, db, "citizen@example.com", models.RoleUser)
	seedUser(t, db, "authority@example.com", models.RoleAuthority)
	seedUser(t, db, "admin@example.com", models.RoleAdmin)

	tokens := authUtils.NewTokenIssuer("test-secret", time.Hour)
	r := newProtectedRouter(db, tokens, RequirePrivileged())

	tests := []struct {
		email string
		want  int
	}{
		{"citizen@example.com", http.StatusForbidden},
		{"authority@example.com", http.StatusOK},
		{"admin@example.com", http.StatusOK},
	}

	for _, tc := range tests {
		tok, err := tokens.Issue(tc.email)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		r.ServeHTTP(w, req)

		require.Equal(t, tc.want, w.Code, "role check for %s", tc.email)
	}
}
