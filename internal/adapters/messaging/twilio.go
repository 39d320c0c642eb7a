package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	portssvc "github.com/jengabot/jenga_backend/internal/core/ports/services"
)

const whatsappPrefix = "whatsapp:"

// TwilioMessenger sends WhatsApp replies through the Twilio Messages API.
// Sends are fire-and-forget: a failed send is reported in the DeliveryResult
// and never retried, because the inbound webhook must still be acknowledged.
type TwilioMessenger struct {
	accountSID string
	authToken  string
	fromNumber string
	httpClient *http.Client
	baseURL    string
}

func NewTwilioMessenger(accountSID, authToken, fromNumber string) *TwilioMessenger {
	return &TwilioMessenger{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://api.twilio.com",
	}
}

var _ portssvc.Messenger = (*TwilioMessenger)(nil)

func (m *TwilioMessenger) SendMessage(ctx context.Context, toAddress string, body string) portssvc.DeliveryResult {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", m.baseURL, m.accountSID)

	form := url.Values{}
	form.Set("From", whatsappPrefix+m.fromNumber)
	form.Set("To", whatsappPrefix+toAddress)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return portssvc.DeliveryResult{Error: fmt.Sprintf("failed to build twilio request: %v", err)}
	}
	req.SetBasicAuth(m.accountSID, m.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return portssvc.DeliveryResult{Error: fmt.Sprintf("twilio request failed: %v", err)}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return portssvc.DeliveryResult{Error: fmt.Sprintf("twilio returned status %d: %s", resp.StatusCode, string(respBody))}
	}

	var payload struct {
		SID string `json:"sid"`
	}
	if err := json.Unmarshal(respBody, &payload); err != nil {
		// Message went out even if the response body is unreadable.
		return portssvc.DeliveryResult{Success: true}
	}
	return portssvc.DeliveryResult{Success: true, ProviderSID: payload.SID}
}
