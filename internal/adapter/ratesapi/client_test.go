package ratesapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRates(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    bool
		errMsg     string
		wantRates  int
		wantEURStr string
	}{
		{
			name:       "Success",
			status:     http.StatusOK,
			body:       `{"result":"success","base_code":"USD","conversion_rates":{"USD":1,"EUR":0.9187,"JPY":"151.23"}}`,
			wantRates:  3,
			wantEURStr: "0.9187",
		},
		{
			name:    "Provider error",
			status:  http.StatusOK,
			body:    `{"result":"error","error-type":"invalid-key"}`,
			wantErr: true,
			errMsg:  "invalid-key",
		},
		{
			name:    "Non-200 status",
			status:  http.StatusServiceUnavailable,
			body:    `upstream down`,
			wantErr: true,
			errMsg:  "status 503",
		},
		{
			name:    "Malformed JSON",
			status:  http.StatusOK,
			body:    `{"result":`,
			wantErr: true,
			errMsg:  "decode",
		},
		{
			name:    "Empty rates",
			status:  http.StatusOK,
			body:    `{"result":"success","base_code":"USD","conversion_rates":{}}`,
			wantErr: true,
			errMsg:  "no rates",
		},
		{
			name:    "Wrong base",
			status:  http.StatusOK,
			body:    `{"result":"success","base_code":"EUR","conversion_rates":{"EUR":1}}`,
			wantErr: true,
			errMsg:  "base",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL+"/v6/", "secret-key")
			rates, err := client.FetchRates(context.Background())

			assert.Equal(t, "/v6/secret-key/latest/USD", gotPath)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Len(t, rates, tt.wantRates)
			assert.True(t, rates["EUR"].Equal(decimal.RequireFromString(tt.wantEURStr)))
		})
	}
}

func TestFetchRates_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewClient(server.URL, "k").FetchRates(ctx)

	assert.Error(t, err)
}

func TestNewClient_Options(t *testing.T) {
	custom := &http.Client{}

	client := NewClient("", "k", WithHTTPClient(custom))
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Same(t, custom, client.httpClient)

	client = NewClient("http://example.test", "k", WithTimeout(3*time.Second))
	assert.Equal(t, 3*time.Second, client.httpClient.Timeout)
}

func TestNewClient_TimeoutDoesNotModifySharedClient(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}

	client := NewClient("", "k", WithHTTPClient(shared), WithTimeout(3*time.Second))

	assert.Equal(t, 3*time.Second, client.httpClient.Timeout)
	assert.Equal(t, time.Minute, shared.Timeout)
	assert.NotSame(t, shared, client.httpClient)
}
