package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
)

// Sender delivers a single notification synchronously.
type Sender interface {
	Send(ctx context.Context, req domain.NotificationRequest) error
}

// sendPath is the notification service endpoint requests are posted to.
const sendPath = "/api/notifications/send"

// message is the wire format understood by the notification service.
type message struct {
	Recipient         string            `json:"recipient"`
	Subject           string            `json:"subject"`
	TemplateName      string            `json:"templateName"`
	TemplateVariables map[string]string `json:"templateVariables"`
	Type              string            `json:"type"`
	Category          string            `json:"category"`
}

// HTTPSender posts notifications to the external notification service.
type HTTPSender struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewHTTPSender(baseURL string, timeout time.Duration) *HTTPSender {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSender{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSender) Send(ctx context.Context, req domain.NotificationRequest) error {
	body, err := json.Marshal(message{
		Recipient:         req.Recipient,
		Subject:           req.Subject,
		TemplateName:      req.TemplateName,
		TemplateVariables: req.Variables,
		Type:              string(req.Channel),
		Category:          string(req.Category),
	})
	if err != nil {
		return fmt.Errorf("notify: failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if req.ID != "" {
		httpReq.Header.Set("X-Request-ID", req.ID)
	}

	resp, err := s.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("notify: failed to send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notify: notification service returned %d", resp.StatusCode)
	}
	return nil
}

// LogSender logs notification metadata instead of delivering it. Used when
// no notification service is configured. Template variables are not logged
// since they carry the verification code.
type LogSender struct {
	Logger *slog.Logger
}

func (s *LogSender) Send(_ context.Context, req domain.NotificationRequest) error {
	s.Logger.Info("notification not delivered, no notification service configured",
		slog.String("notification_id", req.ID),
		slog.String("channel", string(req.Channel)),
		slog.String("category", string(req.Category)),
		slog.String("template", req.TemplateName),
	)
	return nil
}
