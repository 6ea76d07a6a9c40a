// Package mocks provides call-tracking test doubles for the boolco packages.
package mocks

import (
	"context"
	"sync"

	"github.com/sgaunet/boolco/internal/security"
	"github.com/sgaunet/boolco/pkg/api"
)

// MethodCall represents a tracked method call with its arguments.
type MethodCall struct {
	Method string
	Args   map[string]any
}

// APIClient is a mock implementation of api.APIClient with call tracking.
type APIClient struct {
	mu    sync.Mutex
	calls []MethodCall

	// Configurable responses
	ListMessagesResponse []api.Message
	ListMessagesError    error
	PostMessageResponse  string
	PostMessageError     error
	LookupNamesResponse  []string
	LookupNamesError     error
	TokenResponse        string
	TokenError           error
	ListLinksResponse    []api.Link
	ListLinksError       error
	CreateLinkResponse   string
	CreateLinkError      error
	ShortURLPrefix       string
}

// NewAPIClient creates a new mock API client.
func NewAPIClient() *APIClient {
	return &APIClient{
		calls:          make([]MethodCall, 0),
		ShortURLPrefix: "https://boolco.dev/s/",
	}
}

// ListMessages implements api.APIClient.
func (m *APIClient) ListMessages(_ context.Context) ([]api.Message, error) {
	m.trackCall("ListMessages", map[string]any{})
	return m.ListMessagesResponse, m.ListMessagesError
}

// PostMessage implements api.APIClient.
func (m *APIClient) PostMessage(_ context.Context, name, content string) (string, error) {
	m.trackCall("PostMessage", map[string]any{
		"name":    name,
		"content": content,
	})
	return m.PostMessageResponse, m.PostMessageError
}

// LookupNames implements api.APIClient.
func (m *APIClient) LookupNames(_ context.Context, name string) ([]string, error) {
	m.trackCall("LookupNames", map[string]any{
		"name": name,
	})
	return m.LookupNamesResponse, m.LookupNamesError
}

// GenerateRegistrationToken implements api.APIClient.
func (m *APIClient) GenerateRegistrationToken(_ context.Context) (security.SecureToken, error) {
	m.trackCall("GenerateRegistrationToken", map[string]any{})
	if m.TokenError != nil {
		return security.SecureToken{}, m.TokenError
	}
	return security.NewSecureToken("token", m.TokenResponse), nil
}

// ListLinks implements api.APIClient.
func (m *APIClient) ListLinks(_ context.Context) ([]api.Link, error) {
	m.trackCall("ListLinks", map[string]any{})
	return m.ListLinksResponse, m.ListLinksError
}

// CreateLink implements api.APIClient.
func (m *APIClient) CreateLink(_ context.Context, link string) (string, error) {
	m.trackCall("CreateLink", map[string]any{
		"link": link,
	})
	return m.CreateLinkResponse, m.CreateLinkError
}

// ShortURL implements api.APIClient.
func (m *APIClient) ShortURL(mnemonic string) string {
	return m.ShortURLPrefix + mnemonic
}

// GetCalls returns all tracked method calls.
func (m *APIClient) GetCalls() []MethodCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MethodCall{}, m.calls...)
}

// GetCallCount returns the number of times a method was called.
func (m *APIClient) GetCallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, call := range m.calls {
		if call.Method == method {
			count++
		}
	}
	return count
}

// GetLastCall returns the last call to the specified method, or nil if not called.
func (m *APIClient) GetLastCall(method string) *MethodCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.calls) - 1; i >= 0; i-- {
		if m.calls[i].Method == method {
			return &m.calls[i]
		}
	}
	return nil
}

// Reset clears all tracked calls.
func (m *APIClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = make([]MethodCall, 0)
}

func (m *APIClient) trackCall(method string, args map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MethodCall{
		Method: method,
		Args:   args,
	})
}

// Ensure APIClient implements api.APIClient interface.
var _ api.APIClient = (*APIClient)(nil)
