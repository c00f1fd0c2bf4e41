package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Premkumar95/UPPTN/internal/apperr"
	"github.com/Premkumar95/UPPTN/internal/storage"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
		},
	})
	SetupRoutes(app, storage.NewMemoryStore())
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp.StatusCode, parsed
}

// register + verify + login, returning the bearer token.
func signup(t *testing.T, app *fiber.App, email, phone, role string) string {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":        "Flow " + email,
		"email":       email,
		"phone":       phone,
		"password":    "Str0ng!pass",
		"pin":         "4321",
		"pin_confirm": "4321",
		"role":        role,
	})
	require.Equal(t, http.StatusCreated, status, "register: %v", body)
	code, _ := body["mock_otp"].(string)
	require.NotEmpty(t, code)

	status, body = doJSON(t, app, http.MethodPost, "/api/auth/verify-otp", "", fiber.Map{
		"contact": email,
		"otp":     code,
	})
	require.Equal(t, http.StatusOK, status, "verify: %v", body)

	status, body = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email_or_phone": email,
		"password":       "Str0ng!pass",
		"login_type":     "password",
	})
	require.Equal(t, http.StatusOK, status, "login: %v", body)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestMarketplaceFlow(t *testing.T) {
	app := newTestApp(t)

	providerToken := signup(t, app, "prov@example.com", "+911111111111", "provider")
	userToken := signup(t, app, "cust@example.com", "+912222222222", "user")

	// Provider publishes a listing.
	status, body := doJSON(t, app, http.MethodPost, "/api/providers/services", providerToken, fiber.Map{
		"name":         "Excavator Service",
		"category":     "Earth Movers",
		"district":     "Chennai",
		"description":  "Excavation and land leveling",
		"base_price":   1000,
		"unit":         "hour",
		"discount_pct": 10,
	})
	require.Equal(t, http.StatusCreated, status, "create service: %v", body)
	serviceID, _ := body["service_id"].(string)
	require.NotEmpty(t, serviceID)

	// Customer finds it.
	status, body = doJSON(t, app, http.MethodGet, "/api/services?keyword=excavator&district=Chennai", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["total"])

	// Into the cart with a frozen quote.
	status, body = doJSON(t, app, http.MethodPost, "/api/cart/", userToken, fiber.Map{
		"service_id":     serviceID,
		"duration_units": 3,
	})
	require.Equal(t, http.StatusCreated, status, "add to cart: %v", body)
	entry, _ := body["entry"].(map[string]interface{})
	require.NotNil(t, entry)
	assert.Equal(t, 2700.0, entry["total_amount"])

	// Checkout produces one pending booking.
	status, body = doJSON(t, app, http.MethodPost, "/api/cart/checkout", userToken, fiber.Map{
		"payment_method": "upi",
	})
	require.Equal(t, http.StatusCreated, status, "checkout: %v", body)
	placed, _ := body["bookings"].([]interface{})
	require.Len(t, placed, 1)
	booking := placed[0].(map[string]interface{})
	bookingID, _ := booking["booking_id"].(string)
	assert.Equal(t, "pending", booking["status"])

	// Public tracking needs no token and hides the parties.
	status, body = doJSON(t, app, http.MethodGet, "/api/bookings/"+bookingID, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pending", body["status"])
	assert.NotContains(t, body, "user_id")

	// Provider walks the booking forward.
	status, body = doJSON(t, app, http.MethodPut, "/api/bookings/"+bookingID+"/status", providerToken, fiber.Map{
		"status": "in_progress",
	})
	require.Equal(t, http.StatusOK, status, "advance: %v", body)

	// The customer cannot.
	status, _ = doJSON(t, app, http.MethodPut, "/api/bookings/"+bookingID+"/status", userToken, fiber.Map{
		"status": "completed",
	})
	assert.Equal(t, http.StatusForbidden, status)

	// Skipping ahead conflicts.
	status, _ = doJSON(t, app, http.MethodPut, "/api/bookings/"+bookingID+"/status", providerToken, fiber.Map{
		"status": "in_progress",
	})
	assert.Equal(t, http.StatusConflict, status)
}

func TestAuthGates(t *testing.T) {
	app := newTestApp(t)

	t.Run("Cart Requires A Token", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/cart/", "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("Provider Routes Require A Token", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/providers/services", "", fiber.Map{})
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("Garbage Token Is Anonymous", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/bookings", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("Bad Credentials Get 401", func(t *testing.T) {
		signup(t, app, "locked@example.com", "+914444444444", "user")

		status, _ := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email_or_phone": "locked@example.com",
			"password":       "Wr0ng!pass",
			"login_type":     "password",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("Catalog Is Public", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/services", "", nil)
		assert.Equal(t, http.StatusOK, status)

		status, _ = doJSON(t, app, http.MethodGet, "/api/districts", "", nil)
		assert.Equal(t, http.StatusOK, status)

		status, _ = doJSON(t, app, http.MethodGet, "/api/categories", "", nil)
		assert.Equal(t, http.StatusOK, status)
	})
}
