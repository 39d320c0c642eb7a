package messaging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessenger(serverURL string) *TwilioMessenger {
	m := NewTwilioMessenger("AC123", "token", "+15550001111")
	m.baseURL = serverURL
	return m
}

func TestSendMessage_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)
		assert.Equal(t, "whatsapp:+15550001111", r.PostFormValue("From"))
		assert.Equal(t, "whatsapp:+256700000001", r.PostFormValue("To"))
		assert.Equal(t, "hello", r.PostFormValue("Body"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SMout123"}`))
	}))
	defer server.Close()

	result := newTestMessenger(server.URL).SendMessage(context.Background(), "+256700000001", "hello")

	assert.True(t, result.Success)
	assert.Equal(t, "SMout123", result.ProviderSID)
	assert.Empty(t, result.Error)
}

func TestSendMessage_APIErrorReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":20003,"message":"Authenticate"}`))
	}))
	defer server.Close()

	result := newTestMessenger(server.URL).SendMessage(context.Background(), "+256700000001", "hello")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "twilio returned status 401")
}

func TestSendMessage_TransportErrorReported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	result := newTestMessenger(server.URL).SendMessage(context.Background(), "+256700000001", "hello")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "twilio request failed")
}

func TestSendMessage_UnreadableBodyStillSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	result := newTestMessenger(server.URL).SendMessage(context.Background(), "+256700000001", "hello")

	assert.True(t, result.Success)
	assert.Empty(t, result.ProviderSID)
	assert.Empty(t, result.Error)
}
