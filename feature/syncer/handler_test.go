package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"partflow-sync/core/middleware/auth"
	"partflow-sync/core/sheets"
	"partflow-sync/feature/syncer/records"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "partflow-test-secret"

func newTestApp(t *testing.T, mem *sheets.MemoryStore) *fiber.App {
	t.Helper()
	svc := NewService(sheets.Static(mem), nil, Config{}, zap.NewNop())
	feature := NewFeature(svc, auth.New(auth.Config{ApiKey: secret}), zap.NewNop())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func postSync(t *testing.T, app *fiber.App, body any, key string) (int, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/sync", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-API-KEY", key)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestHandleSync(t *testing.T) {
	t.Run("Unauthorized", func(t *testing.T) {
		mem := sheets.NewMemoryStore()
		status, body := postSync(t, newTestApp(t, mem), map[string]any{"spreadsheetId": sheetID}, "wrong")

		assert.Equal(t, 401, status)
		assert.Equal(t, false, body["success"])
		tabs, _ := mem.ListTabs(context.Background(), sheetID)
		assert.Empty(t, tabs, "no state mutation on auth failure")
	})

	t.Run("MissingSpreadsheetID", func(t *testing.T) {
		status, body := postSync(t, newTestApp(t, sheets.NewMemoryStore()), map[string]any{}, secret)
		assert.Equal(t, 400, status)
		assert.Equal(t, "Spreadsheet ID is required", body["message"])
	})

	t.Run("InvalidMode", func(t *testing.T) {
		status, body := postSync(t, newTestApp(t, sheets.NewMemoryStore()),
			map[string]any{"spreadsheetId": sheetID, "mode": "merge"}, secret)
		assert.Equal(t, 400, status)
		assert.Equal(t, "Mode must be upsert or overwrite", body["message"])
	})

	t.Run("ModeIsCaseInsensitive", func(t *testing.T) {
		status, body := postSync(t, newTestApp(t, sheets.NewMemoryStore()),
			map[string]any{"spreadsheetId": sheetID, "mode": " Overwrite "}, secret)
		require.Equal(t, 200, status)
		assert.Equal(t, "Sync completed successfully (overwrite mode)", body["message"])
	})

	t.Run("NonFiniteCellsPullAsZero", func(t *testing.T) {
		mem := sheets.NewMemoryStore()
		row, err := records.EncodeItem(records.Item{ItemID: "A1", ItemDisplayName: "Brake Pad"})
		require.NoError(t, err)
		row[7] = "1e999"
		row[8] = "NaN"
		mem.Seed(sheetID, records.TableInventory, [][]string{records.InventorySchema.Headers, row})

		status, body := postSync(t, newTestApp(t, mem), map[string]any{"spreadsheetId": sheetID}, secret)
		require.Equal(t, 200, status, "body: %v", body)

		items := body["pulledItems"].([]any)
		require.Len(t, items, 1)
		item := items[0].(map[string]any)
		assert.Equal(t, float64(0), item["unit_value"])
		assert.Equal(t, float64(0), item["current_stock_qty"])
	})

	t.Run("MissingKeyIsServerError", func(t *testing.T) {
		status, body := postSync(t, newTestApp(t, sheets.NewMemoryStore()), map[string]any{
			"spreadsheetId": sheetID,
			"customers":     []map[string]any{{"shop_name": "No ID"}},
		}, secret)
		assert.Equal(t, 500, status)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["message"], "customer_id")
	})

	t.Run("Success", func(t *testing.T) {
		mem := sheets.NewMemoryStore()
		status, body := postSync(t, newTestApp(t, mem), map[string]any{
			"spreadsheetId": sheetID,
			"items": []map[string]any{{
				"item_id": "A1", "item_display_name": "Brake Pad", "unit_value": 1200, "current_stock_qty": 4,
			}},
		}, secret)

		require.Equal(t, 200, status)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Sync completed successfully (upsert mode)", body["message"])

		items, ok := body["pulledItems"].([]any)
		require.True(t, ok)
		require.Len(t, items, 1)
		item := items[0].(map[string]any)
		assert.Equal(t, "A1", item["item_id"])
		assert.Equal(t, records.DefaultCategory, item["category"])
		assert.Equal(t, float64(4), item["current_stock_qty"])
		assert.Equal(t, "synced", item["sync_status"])

		assert.Equal(t, []any{}, body["pulledCustomers"])
		assert.Equal(t, []any{}, body["pulledOrders"])
	})
}

func TestFeature(t *testing.T) {
	svc := NewService(sheets.Static(sheets.NewMemoryStore()), nil, Config{}, zap.NewNop())
	feature := NewFeature(svc, auth.New(auth.Config{ApiKey: secret}), zap.NewNop())

	assert.Equal(t, "sync", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
