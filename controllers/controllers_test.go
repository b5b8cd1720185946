package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"aquasense-be/config"
	"aquasense-be/controllers"
	"aquasense-be/middlewares"
	"aquasense-be/models"
	"aquasense-be/routes"
	"aquasense-be/services"
	authUtils "aquasense-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	db     *gorm.DB
	tokens *authUtils.TokenIssuer
	router *gin.Engine
}

// newTestServer wires the full route table against an in-memory
// database, the same way main does, minus Redis.
func newTestServer(t *testing.T, directory services.StationDirectory) *testServer {
	t.Helper()

	db := config.OpenTestDB(t)
	tokens := authUtils.NewTokenIssuer("test-secret", 30*time.Minute)
	authenticate := middlewares.Authenticate(db, tokens)

	r := gin.New()
	routes.AuthRoutes(r, controllers.NewAuthController(db, tokens), authenticate)
	routes.ReportRoutes(r, controllers.NewReportController(db), authenticate, nil, 0)
	routes.StationRoutes(r, controllers.NewStationController(db, services.NewSyncService(db, directory)), authenticate)

	return &testServer{db: db, tokens: tokens, router: r}
}

func (ts *testServer) seedUser(t *testing.T, name, email, password string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{Name: name, Email: email, Password: password, Role: role}
	require.NoError(t, user.HashPassword())
	require.NoError(t, ts.db.Create(user).Error)
	return user
}

func (ts *testServer) tokenFor(t *testing.T, email string) string {
	t.Helper()

	tok, err := ts.tokens.Issue(email)
	require.NoError(t, err)
	return tok
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// staticDirectory serves a fixed descriptor list without the network.
type staticDirectory struct {
	stations []services.StationDescriptor
	err      error
}

func (d *staticDirectory) FetchStations(_ context.Context) ([]services.StationDescriptor, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.stations, nil
}
