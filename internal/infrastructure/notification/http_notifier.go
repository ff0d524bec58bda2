package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase/interfaces"
)

// HTTPNotifier posts notifications to the notification service and forwards the
// caller's bearer token.
type HTTPNotifier struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.INotifier = (*HTTPNotifier)(nil)

func NewHTTPNotifier(baseURL string, client *http.Client) *HTTPNotifier {
	return &HTTPNotifier{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (n *HTTPNotifier) Send(ctx context.Context, msg entities.Notification) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/notifications/send/", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if msg.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+msg.AuthToken)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}
	return nil
}
