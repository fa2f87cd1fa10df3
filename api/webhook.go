package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/smsflow/attentive-adapter/providers/attentive"
	"github.com/smsflow/attentive-adapter/utils"
)

const signatureHeader = "x-attentive-signature"

// WebhookEvent is one normalized inbound platform delivery.
type WebhookEvent struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Timestamp string         `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// WebhookEventHandler consumes decoded webhook deliveries.
type WebhookEventHandler func(event WebhookEvent)

// webhookDelivery is the raw wire shape; older deliveries use "event"
// instead of "type" for the event name.
type webhookDelivery struct {
	Event     string         `json:"event"`
	Type      string         `json:"type"`
	Timestamp string         `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// handleWebhook verifies, decodes and normalizes one platform delivery.
func (s *Server) handleWebhook(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Error reading request body")
		return
	}

	if s.config.WebhookSecret != "" {
		signature := c.GetHeader(signatureHeader)
		if signature == "" {
			c.String(http.StatusUnauthorized, "Missing signature")
			return
		}
		if !verifySignature(raw, signature, s.config.WebhookSecret) {
			c.String(http.StatusUnauthorized, "Invalid signature")
			return
		}
	} else {
		s.logger.Warn("webhook received without a configured secret, skipping signature verification")
	}

	var delivery webhookDelivery
	if err := json.Unmarshal(raw, &delivery); err != nil {
		c.String(http.StatusBadRequest, "Invalid payload")
		return
	}

	eventType := delivery.Event
	if eventType == "" {
		eventType = delivery.Type
	}
	if !attentive.IsWebhookEvent(eventType) {
		c.String(http.StatusBadRequest, "Unknown event type")
		return
	}

	timestamp, err := utils.ResolveTimestamp(delivery.Timestamp)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid timestamp")
		return
	}

	event := WebhookEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: timestamp,
		Data:      delivery.Data,
	}

	s.logger.WithFields(logrus.Fields{
		"event_id": event.ID,
		"type":     event.Type,
	}).Info("webhook event received")

	if s.onEvent != nil {
		s.onEvent(event)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// verifySignature checks the HMAC-SHA256 hex digest of the raw body against
// the delivery header using a constant-time compare.
func verifySignature(payload []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
