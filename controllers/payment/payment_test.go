package payment

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpServices "parcel-delivery/httpServices/stripe"
	"parcel-delivery/logger"
	logModel "parcel-delivery/models/log"
	parcelModel "parcel-delivery/models/parcel"
	paymentModel "parcel-delivery/models/payment"
	paymentService "parcel-delivery/services/payment"
	"parcel-delivery/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&parcelModel.Parcel{}, &paymentModel.Payment{}, &logModel.Log{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// newTestApp wires the payment routes with a stub authentication gate that
// injects the given verified claims.
func newTestApp(t *testing.T, db *gorm.DB, gatewayURL string, claims jwt.MapClaims) *fiber.App {
	t.Helper()

	pc := NewPaymentController(
		paymentService.NewService(db),
		httpServices.NewClient("sk_test_key", gatewayURL),
		logger.NewAsyncLogger(db),
	)

	stubAuth := func(c *fiber.Ctx) error {
		c.Locals("user", claims)
		return c.Next()
	}

	app := fiber.New()
	app.Get("/payments", stubAuth, pc.Index)
	app.Get("/payments/summary", stubAuth, pc.Summary)
	app.Post("/payments", pc.Store)
	app.Post("/create-payment-intent", pc.CreateIntent)
	return app
}

func decodeResponse(t *testing.T, resp *http.Response) types.ApiResponse {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out types.ApiResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestStore(t *testing.T) {
	claims := jwt.MapClaims{"email": "a@x.com"}

	t.Run("records a payment and reports the inserted id", func(t *testing.T) {
		db := setupTestDB(t)
		app := newTestApp(t, db, "http://gateway.invalid", claims)

		p := parcelModel.Parcel{Title: "p1", CreatedBy: "a@x.com", PaymentStatus: parcelModel.PaymentStatusUnpaid, CreationDate: time.Now()}
		require.NoError(t, db.Create(&p).Error)

		resp := postJSON(t, app, "/payments", fiber.Map{
			"parcelId":      p.ID,
			"email":         "a@x.com",
			"amount":        500,
			"paymentMethod": "card",
			"transactionId": "tx1",
		})

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		out := decodeResponse(t, resp)
		data := out.Data.(map[string]interface{})
		assert.NotZero(t, data["insertedId"])
	})

	t.Run("repeated payment returns 404 and keeps one row", func(t *testing.T) {
		db := setupTestDB(t)
		app := newTestApp(t, db, "http://gateway.invalid", claims)

		p := parcelModel.Parcel{Title: "p1", CreatedBy: "a@x.com", PaymentStatus: parcelModel.PaymentStatusUnpaid, CreationDate: time.Now()}
		require.NoError(t, db.Create(&p).Error)

		payload := fiber.Map{
			"parcelId":      p.ID,
			"email":         "a@x.com",
			"amount":        500,
			"paymentMethod": "card",
			"transactionId": "tx1",
		}

		first := postJSON(t, app, "/payments", payload)
		require.Equal(t, fiber.StatusCreated, first.StatusCode)

		second := postJSON(t, app, "/payments", payload)
		assert.Equal(t, fiber.StatusNotFound, second.StatusCode)
		out := decodeResponse(t, second)
		assert.Equal(t, "Parcel not found or already paid", out.Message)

		var count int64
		require.NoError(t, db.Model(&paymentModel.Payment{}).Where("parcel_id = ?", p.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		db := setupTestDB(t)
		app := newTestApp(t, db, "http://gateway.invalid", claims)

		resp := postJSON(t, app, "/payments", fiber.Map{
			"parcelId":      1,
			"email":         "a@x.com",
			"amount":        0,
			"transactionId": "tx1",
		})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestIndex(t *testing.T) {
	claims := jwt.MapClaims{"email": "a@x.com"}

	seed := func(t *testing.T, db *gorm.DB) {
		t.Helper()
		for i, email := range []string{"a@x.com", "a@x.com", "b@x.com"} {
			paidAt := time.Now().Add(time.Duration(i) * time.Minute)
			require.NoError(t, db.Create(&paymentModel.Payment{
				ParcelID: uint(i + 1), Email: email, Amount: 100, TransactionID: "tx", PaidAt: paidAt,
			}).Error)
		}
	}

	t.Run("rejects another user's email with 403", func(t *testing.T) {
		db := setupTestDB(t)
		seed(t, db)
		app := newTestApp(t, db, "http://gateway.invalid", claims)

		req := httptest.NewRequest(http.MethodGet, "/payments?email=b@x.com", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("returns own payments for a matching email", func(t *testing.T) {
		db := setupTestDB(t)
		seed(t, db)
		app := newTestApp(t, db, "http://gateway.invalid", claims)

		req := httptest.NewRequest(http.MethodGet, "/payments?email=a@x.com", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		out := decodeResponse(t, resp)
		payments := out.Data.([]interface{})
		assert.Len(t, payments, 2)
	})

	t.Run("requires the email query parameter", func(t *testing.T) {
		db := setupTestDB(t)
		app := newTestApp(t, db, "http://gateway.invalid", claims)

		req := httptest.NewRequest(http.MethodGet, "/payments", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreateIntent(t *testing.T) {
	claims := jwt.MapClaims{"email": "a@x.com"}

	t.Run("returns the client secret from the gateway", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret"}`))
		}))
		defer srv.Close()

		db := setupTestDB(t)
		app := newTestApp(t, db, srv.URL, claims)

		resp := postJSON(t, app, "/create-payment-intent", fiber.Map{"amountInCents": 1000})

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		out := decodeResponse(t, resp)
		data := out.Data.(map[string]interface{})
		assert.Equal(t, "pi_1_secret", data["clientSecret"])
	})

	t.Run("maps gateway rejection to 500 with the upstream message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Invalid API Key provided"}}`))
		}))
		defer srv.Close()

		db := setupTestDB(t)
		app := newTestApp(t, db, srv.URL, claims)

		resp := postJSON(t, app, "/create-payment-intent", fiber.Map{"amountInCents": 1000})

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		out := decodeResponse(t, resp)
		assert.Equal(t, "Invalid API Key provided", out.Message)
	})

	t.Run("rejects a non-positive amount before calling the gateway", func(t *testing.T) {
		db := setupTestDB(t)
		app := newTestApp(t, db, "http://gateway.invalid", claims)

		resp := postJSON(t, app, "/create-payment-intent", fiber.Map{"amountInCents": -5})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
