package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/moodframe/moodframe/internal/common"
)

// HTTPMailer talks to a Brevo-style transactional-email REST API: one JSON
// POST per message, authenticated with an api-key header.
type HTTPMailer struct {
	endpoint    string
	apiKey      string
	senderName  string
	senderEmail string
	client      *http.Client
}

func NewHTTPMailer(endpoint, apiKey, senderName, senderEmail string) *HTTPMailer {
	return &HTTPMailer{
		endpoint:    endpoint,
		apiKey:      apiKey,
		senderName:  senderName,
		senderEmail: senderEmail,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type emailAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type sendRequest struct {
	Sender emailAddress   `json:"sender"`
	To     []emailAddress `json:"to"`
	Params map[string]any `json:"params"`
}

func (m *HTTPMailer) SendVerificationEmail(ctx context.Context, msg VerificationEmail) error {
	payload := sendRequest{
		Sender: emailAddress{Name: m.senderName, Email: m.senderEmail},
		To:     []emailAddress{{Name: msg.ToName, Email: msg.ToEmail}},
		Params: map[string]any{
			"user_name":         msg.ToName,
			"verification_link": msg.VerificationLink,
			"current_year":      time.Now().Year(),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encoding mail payload: %v", common.ErrDependency, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: building mail request: %v", common.ErrDependency, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: sending verification email: %v", common.ErrDependency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: mail api responded %d", common.ErrDependency, resp.StatusCode)
	}
	return nil
}
