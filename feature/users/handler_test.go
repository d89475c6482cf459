package users

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	feature := NewFeature(newSQLiteService(t), "bridge-token", zap.NewNop())
	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func post(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHandlers(t *testing.T) {
	app := newTestApp(t)

	status, body := post(t, app, "/register", map[string]string{"username": "rep1"})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Username and password required", body["message"])

	status, body = post(t, app, "/register", map[string]string{"username": "rep1", "password": "pw", "full_name": "Rep One"})
	assert.Equal(t, 200, status)
	assert.Equal(t, "User registered successfully", body["message"])

	status, body = post(t, app, "/register", map[string]string{"username": "rep1", "password": "pw"})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Username already exists", body["message"])

	status, body = post(t, app, "/login", map[string]string{"username": "rep1", "password": "pw"})
	require.Equal(t, 200, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "bridge-token", body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "rep1", user["username"])
	assert.Equal(t, "rep", user["role"])
	assert.NotContains(t, user, "password_hash")

	status, body = post(t, app, "/login", map[string]string{"username": "rep1", "password": "bad"})
	assert.Equal(t, 401, status)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestFeature(t *testing.T) {
	f := NewFeature(newSQLiteService(t), "", zap.NewNop())
	assert.Equal(t, "users", f.Name())
	assert.True(t, f.IsEnabled())
	assert.False(t, NewFeature(nil, "", zap.NewNop()).IsEnabled())
}
