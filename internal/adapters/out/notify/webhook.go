package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"loading/internal/core/ports"

	"github.com/go-resty/resty/v2"
)

// WebhookPayload is the JSON body posted for every recipient.
type WebhookPayload struct {
	Recipient   string    `json:"recipient"`
	Subject     string    `json:"subject"`
	AlarmID     int64     `json:"alarm_id"`
	OrderNumber string    `json:"order_number"`
	Temperature float64   `json:"temperature"`
	Threshold   float64   `json:"threshold"`
	At          time.Time `json:"event_date_time"`
}

// WebhookNotifier posts alerts to an HTTP endpoint, for example a chat or mail relay.
type WebhookNotifier struct {
	url    string
	client *resty.Client
}

func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &WebhookNotifier{url: url, client: client}
}

func (n *WebhookNotifier) Notify(ctx context.Context, recipient string, msg ports.AlertMessage) error {
	payload := WebhookPayload{
		Recipient:   recipient,
		Subject:     Subject(msg),
		AlarmID:     msg.AlarmID,
		OrderNumber: msg.OrderNumber,
		Temperature: msg.Temperature,
		Threshold:   msg.Threshold,
		At:          msg.At.UTC(),
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("post alert webhook: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent, http.StatusCreated:
		return nil
	default:
		return fmt.Errorf("alert webhook status: %d", resp.StatusCode())
	}
}
