package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestHTTPClient_Request_Success(t *testing.T) {
	// Mock server setup
	mockResponse := map[string]string{"message": "success"}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test-endpoint" {
			t.Errorf("Expected endpoint '/test-endpoint', got '%s'", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "secret" {
			t.Errorf("Expected query key=secret, got '%s'", got)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer mockServer.Close()

	// Test setup
	client := NewHTTPClient(mockServer.URL)
	var response map[string]string
	q := url.Values{}
	q.Set("key", "secret")

	// Act
	err := client.Request("GET", "/test-endpoint", q, nil, nil, &response)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if response["message"] != "success" {
		t.Errorf("Expected response message to be 'success', got '%s'", response["message"])
	}
}

func TestHTTPClient_Request_FailureKinds(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantKind TransportErrorKind
	}{
		{"quota", http.StatusTooManyRequests, TransportQuotaExceeded},
		{"denied", http.StatusForbidden, TransportDenied},
		{"invalid", http.StatusBadRequest, TransportInvalidRequest},
		{"unavailable", http.StatusServiceUnavailable, TransportUnavailable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				w.Write([]byte(`{"error": "upstream"}`))
			}))
			defer mockServer.Close()

			client := NewHTTPClient(mockServer.URL)
			var response map[string]string

			err := client.Request("GET", "/test-endpoint", nil, nil, nil, &response)
			if err == nil {
				t.Fatalf("Expected an error, got nil")
			}

			var tErr *TransportError
			if !errors.As(err, &tErr) {
				t.Fatalf("Expected *TransportError, got %T", err)
			}
			if tErr.Kind != test.wantKind {
				t.Errorf("Expected kind %s, got %s", test.wantKind, tErr.Kind)
			}
		})
	}
}
