package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/pkg/errors"

	"scrapshop/internal/config"
)

var sendDurationHistogram = metrics.GetOrCreateHistogram(`webhook_send_duration_milliseconds`)

// Sender delivers notification messages to the configured webhook URL with a
// bounded timeout.
type Sender struct {
	client *http.Client
	url    string
	logger *slog.Logger
}

func NewSender(cfg config.Webhook, logger *slog.Logger) *Sender {
	return &Sender{
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond},
		url:    cfg.URL,
		logger: logger,
	}
}

func (s *Sender) Configured() bool {
	return s.url != ""
}

// Send posts the message and treats anything but Discord's success statuses
// (200 and 204) as a delivery failure.
func (s *Sender) Send(ctx context.Context, content string) error {
	body, err := json.Marshal(Message{Content: content})
	if err != nil {
		return errors.Wrap(err, "marshalling webhook message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "creating webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	sendDurationHistogram.Update(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return errors.Wrap(err, "sending webhook request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading webhook response")
	}

	s.logger.DebugContext(ctx, "Webhook response", "status", resp.Status, "body", string(respBody))

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return errors.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
