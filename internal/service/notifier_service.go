package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"loan-enforcement-agent/internal/core/domain"
	"loan-enforcement-agent/internal/core/ports"

	"github.com/rs/zerolog"
)

// notifyRetryIntervals spaces the delivery attempts for one state change.
var notifyRetryIntervals = []time.Duration{
	2 * time.Second,
	10 * time.Second,
	30 * time.Second,
}

// StateChangePayload is the JSON body posted to the AppShell callback.
type StateChangePayload struct {
	EventType string       `json:"event_type"`
	State     string       `json:"state"`
	Locked    bool         `json:"locked"`
	Stale     bool         `json:"stale"`
	Loan      *domain.Loan `json:"loan,omitempty"`
	Timestamp int64        `json:"timestamp"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// webhookNotifier implements ports.Notifier by posting lock-state transitions
// to the configured AppShell callback URL.
type webhookNotifier struct {
	callbackURL string
	httpClient  HTTPClient
	log         zerolog.Logger

	mu   sync.Mutex
	last domain.LockState
}

// NewWebhookNotifier creates the AppShell callback notifier. An empty URL
// disables delivery.
func NewWebhookNotifier(callbackURL string, httpClient HTTPClient, log zerolog.Logger) ports.Notifier {
	return &webhookNotifier{
		callbackURL: callbackURL,
		httpClient:  httpClient,
		log:         log,
		last:        domain.LockStateUnknown,
	}
}

// NotifyStateChange delivers the update asynchronously with retries. Only
// state transitions are delivered: the monitor publishes on every poll, and
// an unchanged or stale-retained state is not an event for the AppShell.
// Delivery is best-effort: the AppShell also polls /v1/enforcement/status,
// so a lost notification delays the UI but never enforcement.
func (n *webhookNotifier) NotifyStateChange(update domain.LockUpdate) {
	if n.callbackURL == "" {
		return
	}

	n.mu.Lock()
	if update.State == n.last {
		n.mu.Unlock()
		return
	}
	n.last = update.State
	n.mu.Unlock()

	payload := StateChangePayload{
		EventType: "LOCK_STATE_CHANGED",
		State:     string(update.State),
		Locked:    update.State.Locked(),
		Stale:     update.Stale,
		Loan:      update.Loan,
		Timestamp: update.CheckedAt.Unix(),
	}

	go n.deliver(payload)
}

func (n *webhookNotifier) deliver(payload StateChangePayload) {
	body, err := json.Marshal(payload)
	if err != nil {
		n.log.Error().Err(err).Msg("notifier: failed to encode payload")
		return
	}

	for attempt := 0; ; attempt++ {
		if n.send(body) {
			return
		}
		if attempt >= len(notifyRetryIntervals) {
			n.log.Warn().
				Str("state", payload.State).
				Int("attempts", attempt+1).
				Msg("notifier: giving up on state change delivery")
			return
		}
		time.Sleep(notifyRetryIntervals[attempt])
	}
}

func (n *webhookNotifier) send(body []byte) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.callbackURL, bytes.NewReader(body))
	if err != nil {
		n.log.Error().Err(err).Msg("notifier: failed to build request")
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.log.Warn().Err(err).Msg("notifier: delivery attempt failed")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return true
	}
	n.log.Warn().Int("status", resp.StatusCode).Msg("notifier: callback rejected delivery")
	return false
}
