package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotSenderSendMessage(t *testing.T) {
	var received sendMessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot"+testBotToken+"/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	sender := NewBotSender(testBotToken)
	sender.baseURL = server.URL

	err := sender.SendMessage(42, "Ваш гороскоп")
	require.NoError(t, err)
	assert.Equal(t, int64(42), received.ChatID)
	assert.Equal(t, "Ваш гороскоп", received.Text)
	assert.Equal(t, "HTML", received.ParseMode)
}

func TestBotSenderNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	sender := NewBotSender(testBotToken)
	sender.baseURL = server.URL

	assert.Error(t, sender.SendMessage(42, "x"))
}
