package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/campusevents/campus-events/internal/domain"
)

// RegistrationNotice is the payload submitted to the notification sink after
// a successful registration.
type RegistrationNotice struct {
	UserEmail     string `json:"userEmail"`
	UserName      string `json:"userName"`
	EventTitle    string `json:"eventTitle"`
	EventDate     string `json:"eventDate"`
	EventLocation string `json:"eventLocation"`
}

// Notifier submits registration notices to the notification sink. The sink
// is an external collaborator; callers treat delivery as fire-and-forget.
type Notifier interface {
	SendRegistration(ctx context.Context, notice RegistrationNotice) error
}

// sinkResponse is the sink's reply envelope.
type sinkResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HTTPNotifier posts registration notices as JSON to a sink URL. Requests
// are bounded by the client timeout; they cannot be cancelled once started
// beyond that.
type HTTPNotifier struct {
	url    string
	client *http.Client
}

// NewHTTPNotifier creates an HTTPNotifier for the given sink URL.
func NewHTTPNotifier(url string) *HTTPNotifier {
	return &HTTPNotifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *HTTPNotifier) SendRegistration(ctx context.Context, notice RegistrationNotice) error {
	body, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("%w: encode notice: %v", domain.ErrNotificationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrNotificationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}
	defer resp.Body.Close()

	var result sinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrNotificationFailed, err)
	}

	if resp.StatusCode != http.StatusOK || !result.Success {
		msg := result.Error
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%w: %s", domain.ErrNotificationFailed, msg)
	}
	return nil
}
