package notify_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/adapters/out/notify"
)

func TestClient_Notify_Success(t *testing.T) {
	var got struct {
		ChatID int64  `json:"chat_id"`
		Text   string `json:"text"`
	}
	var deliveryID, auth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sendMessage", r.URL.Path)
		deliveryID = r.Header.Get("X-Delivery-Id")
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := notify.NewClient(server.URL, "secret")
	require.NoError(t, err)

	result := client.Notify(t.Context(), 42, "Your order #7 was accepted and is now in review.")
	require.NoError(t, result.Err)
	assert.True(t, result.Delivered)
	assert.Equal(t, int64(42), got.ChatID)
	assert.Contains(t, got.Text, "#7")
	assert.NotEmpty(t, deliveryID)
	assert.Equal(t, "Bearer secret", auth)
}

func TestClient_Notify_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client, err := notify.NewClient(server.URL, "")
	require.NoError(t, err)

	result := client.Notify(t.Context(), 42, "hello")
	assert.False(t, result.Delivered)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "403")
}

func TestClient_Notify_GatewayUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	client, err := notify.NewClient(server.URL, "")
	require.NoError(t, err)

	result := client.Notify(t.Context(), 42, "hello")
	assert.False(t, result.Delivered)
	require.Error(t, result.Err)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := notify.NewClient("", "token")
	require.Error(t, err)
}
