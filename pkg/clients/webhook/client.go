// Package webhook pushes alert notifications to an operator-configured HTTP
// endpoint (chat integrations, automation tools).
package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
)

// Notifier delivers alert notifications. Implemented by Client; nil-safe
// callers treat an absent notifier as notifications disabled.
type Notifier interface {
	SendAlerts(ctx context.Context, farmName string, alerts []models.Alert) error
}

// Client is a resty-backed webhook notifier.
type Client struct {
	httpClient *resty.Client
}

// NewClient builds a webhook client for the given endpoint URL.
func NewClient(url string) *Client {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(url).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &Client{httpClient: restyClient}
}

// alertNotification is the webhook payload.
type alertNotification struct {
	Farm        string         `json:"farm"`
	GeneratedAt time.Time      `json:"generated_at"`
	Alerts      []models.Alert `json:"alerts"`
}

// errorBody captures a structured error response, when the receiver sends one.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SendAlerts posts the alert set to the configured endpoint.
func (c *Client) SendAlerts(ctx context.Context, farmName string, alerts []models.Alert) error {
	payload := alertNotification{
		Farm:        farmName,
		GeneratedAt: time.Now().UTC(),
		Alerts:      alerts,
	}

	apiErr := new(errorBody)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetError(apiErr).
		Post("")
	if err != nil {
		return fmt.Errorf("send alert notification: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Message
		if message == "" {
			message = apiErr.Error
		}
		return fmt.Errorf("alert webhook error: status=%d, message=%s", resp.StatusCode(), message)
	}

	return nil
}
