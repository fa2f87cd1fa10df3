package api

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smsflow/attentive-adapter/services/monitoring/logging"
	"github.com/smsflow/attentive-adapter/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(secret string) *Server {
	return NewServer(&utils.Config{
		ServerPort:      8080,
		AttentiveAPIKey: "test-api-key",
		WebhookSecret:   secret,
	}, logging.NewLogger("error"))
}

func sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(s *Server, payload []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(payload))
	if signature != "" {
		req.Header.Set("x-attentive-signature", signature)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestWebhookMissingSignature(t *testing.T) {
	s := newTestServer("shared-secret")

	w := postWebhook(s, []byte(`{"type":"message.sent"}`), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Missing signature", w.Body.String())
}

func TestWebhookInvalidSignature(t *testing.T) {
	s := newTestServer("shared-secret")

	w := postWebhook(s, []byte(`{"type":"message.sent"}`), "deadbeef")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid signature", w.Body.String())
}

func TestWebhookValidDeliveryInvokesHandler(t *testing.T) {
	s := newTestServer("shared-secret")

	var got WebhookEvent
	s.OnEvent(func(event WebhookEvent) {
		got = event
	})

	payload := []byte(`{
		"type": "subscription.created",
		"timestamp": "2024-01-15T10:30:00Z",
		"data": {"phone": "+19148440001"}
	}`)

	w := postWebhook(s, payload, sign(payload, "shared-secret"))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "subscription.created", got.Type)
	assert.Equal(t, "2024-01-15T10:30:00.000Z", got.Timestamp)
	assert.Equal(t, "+19148440001", got.Data["phone"])
	assert.NotEmpty(t, got.ID)
}

func TestWebhookAcceptsLegacyEventField(t *testing.T) {
	s := newTestServer("shared-secret")

	var got WebhookEvent
	s.OnEvent(func(event WebhookEvent) {
		got = event
	})

	payload := []byte(`{"event": "message.replied", "data": {}}`)
	w := postWebhook(s, payload, sign(payload, "shared-secret"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "message.replied", got.Type)
}

func TestWebhookUnknownEventType(t *testing.T) {
	s := newTestServer("shared-secret")

	payload := []byte(`{"type": "message.teleported"}`)
	w := postWebhook(s, payload, sign(payload, "shared-secret"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unknown event type", w.Body.String())
}

func TestWebhookNoSecretAcceptsUnsigned(t *testing.T) {
	s := newTestServer("")

	w := postWebhook(s, []byte(`{"type":"message.sent"}`), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExecuteBridgeValidation(t *testing.T) {
	s := newTestServer("")

	req := httptest.NewRequest(http.MethodPost, "/execute", bytes.NewReader([]byte(`{"operation":"getAll"}`)))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteBridgeRunsBatch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"segments": []map[string]any{{"id": "seg_1"}},
			"total":    1,
		})
	}))
	defer upstream.Close()

	s := NewServer(&utils.Config{
		ServerPort:       8080,
		AttentiveAPIKey:  "test-api-key",
		AttentiveBaseURL: upstream.URL,
	}, logging.NewLogger("error"))

	body := []byte(`{"resource":"segment","operation":"getAll","items":[{}]}`)
	req := httptest.NewRequest(http.MethodPost, "/execute", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Results []struct {
				ItemIndex int            `json:"itemIndex"`
				Data      map[string]any `json:"data"`
			} `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Results, 1)
	assert.Equal(t, "seg_1", resp.Data.Results[0].Data["id"])
}

func TestExecuteBridgeMapsUnsupportedToBadRequest(t *testing.T) {
	s := newTestServer("")

	body := []byte(`{"resource":"segment","operation":"frobnicate","items":[{}]}`)
	req := httptest.NewRequest(http.MethodPost, "/execute", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
