package httpServices

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent(t *testing.T) {
	t.Run("returns client secret on success", func(t *testing.T) {
		var gotAuth, gotAmount, gotCurrency string
		var gotMethods []string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/payment_intents", r.URL.Path)
			assert.NoError(t, r.ParseForm())
			gotAuth = r.Header.Get("Authorization")
			gotAmount = r.PostForm.Get("amount")
			gotCurrency = r.PostForm.Get("currency")
			gotMethods = r.PostForm["payment_method_types[]"]
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc"}`))
		}))
		defer srv.Close()

		client := NewClient("sk_test_key", srv.URL)
		secret, err := client.CreatePaymentIntent(1000, "usd", []string{"card"})

		require.NoError(t, err)
		assert.Equal(t, "pi_123_secret_abc", secret)
		assert.Equal(t, "Bearer sk_test_key", gotAuth)
		assert.Equal(t, "1000", gotAmount)
		assert.Equal(t, "usd", gotCurrency)
		assert.Equal(t, []string{"card"}, gotMethods)
	})

	t.Run("passes the upstream error message through", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Invalid API Key provided"}}`))
		}))
		defer srv.Close()

		client := NewClient("sk_bad_key", srv.URL)
		secret, err := client.CreatePaymentIntent(1000, "usd", []string{"card"})

		assert.Empty(t, secret, "no intent on gateway error")
		require.Error(t, err)
		var gwErr *GatewayError
		require.ErrorAs(t, err, &gwErr, "should be a gateway error")
		assert.Equal(t, "Invalid API Key provided", gwErr.Message)
	})

	t.Run("wraps an unreadable error body in a generic gateway error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream exploded"))
		}))
		defer srv.Close()

		client := NewClient("sk_test_key", srv.URL)
		_, err := client.CreatePaymentIntent(1000, "usd", []string{"card"})

		var gwErr *GatewayError
		require.ErrorAs(t, err, &gwErr)
		assert.Contains(t, gwErr.Message, "non-OK status")
	})
}
