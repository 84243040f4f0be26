package openaichat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChatJSON(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)

		resp := chatResponse{
			Model:   "test-model",
			Choices: []chatChoice{{Message: chatMessage{Role: "assistant", Content: `{"items":[]}`}}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	c := New(Config{APIKey: "sk-test", Model: "test-model", BaseURL: ts.URL})
	out, err := c.ChatJSON(context.Background(), "you are a task assistant", "parse this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"items":[]}` {
		t.Errorf("unexpected output %q", out)
	}

	if gotAuth != "Bearer sk-test" {
		t.Errorf("missing bearer auth, got %q", gotAuth)
	}
	if gotReq.ResponseFormat == nil || gotReq.ResponseFormat.Type != "json_object" {
		t.Errorf("response format should be forced to json_object")
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Errorf("expected system+user messages, got %+v", gotReq.Messages)
	}
}

func TestChatJSON_VendorError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth_error"}}`))
	}))
	defer ts.Close()

	c := New(Config{APIKey: "bad", BaseURL: ts.URL})
	_, err := c.ChatJSON(context.Background(), "sys", "user")
	if err == nil {
		t.Fatal("expected vendor error")
	}
}

func TestChatJSON_NoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"model":"m","choices":[]}`))
	}))
	defer ts.Close()

	c := New(Config{APIKey: "k", BaseURL: ts.URL})
	if _, err := c.ChatJSON(context.Background(), "sys", "user"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
