package board_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sgaunet/boolco/pkg/api"
	"github.com/sgaunet/boolco/pkg/board"
	"github.com/sgaunet/boolco/testing/fixtures"
	"github.com/sgaunet/boolco/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(client *mocks.APIClient) (*board.Service, *mocks.DisplayRenderer, *clockwork.FakeClock) {
	display := mocks.NewDisplayRenderer()
	clock := clockwork.NewFakeClockAt(fixtures.ReferenceNow)
	return board.NewService(client, display, clock), display, clock
}

func TestShowMessages(t *testing.T) {
	client := mocks.NewAPIClient()
	client.ListMessagesResponse = fixtures.ValidMessages()
	svc, display, _ := newService(client)

	require.NoError(t, svc.ShowMessages(context.Background()))

	assert.Equal(t, []mocks.DisplayMessage{
		{Level: "info", Message: "alice says: (30 seconds ago)"},
		{Level: "info", Message: "hello everyone", Padding: 1},
		{Level: "info", Message: "bob says: (1 hour ago)"},
		{Level: "info", Message: "anyone around?", Padding: 1},
		{Level: "info", Message: "carol says: (1 year ago)"},
		{Level: "info", Message: "first!", Padding: 1},
	}, display.GetMessages())
	assert.Equal(t, 0, display.Padding())
}

func TestShowMessages_UsesClockAtRenderTime(t *testing.T) {
	client := mocks.NewAPIClient()
	client.ListMessagesResponse = []api.Message{
		fixtures.MessageAt("alice", "hi", fixtures.ReferenceNow.Add(-59*time.Second)),
	}
	svc, display, clock := newService(client)

	require.NoError(t, svc.ShowMessages(context.Background()))
	clock.Advance(2 * time.Minute)
	require.NoError(t, svc.ShowMessages(context.Background()))

	headers := display.GetMessagesByLevel("info")
	assert.Equal(t, "alice says: (59 seconds ago)", headers[0])
	assert.Equal(t, "alice says: (2 minutes ago)", headers[2])
}

func TestShowMessages_Empty(t *testing.T) {
	client := mocks.NewAPIClient()
	client.ListMessagesResponse = []api.Message{}
	svc, display, _ := newService(client)

	require.NoError(t, svc.ShowMessages(context.Background()))
	assert.Equal(t, []string{"No messages yet"}, display.GetMessagesByLevel("info"))
}

func TestShowMessages_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "server reported",
			err:      fmt.Errorf("failed to list messages: %w", &api.APIError{StatusCode: 500, Message: "DB error"}),
			expected: "DB error",
		},
		{
			name:     "transport failure",
			err:      errors.New("dial tcp: connection refused"),
			expected: "An error has occurred: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewAPIClient()
			client.ListMessagesError = tt.err
			svc, display, _ := newService(client)

			err := svc.ShowMessages(context.Background())
			assert.ErrorIs(t, err, board.ErrReported)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, []string{tt.expected}, display.GetMessagesByLevel("error"))
			assert.Empty(t, display.GetMessagesByLevel("info"))
		})
	}
}

func TestSubmitMessage(t *testing.T) {
	client := mocks.NewAPIClient()
	client.PostMessageResponse = "Message posted!"
	client.ListMessagesResponse = fixtures.ValidMessages()[:1]
	svc, display, _ := newService(client)

	require.NoError(t, svc.SubmitMessage(context.Background(), "alice", "hello everyone"))

	call := client.GetLastCall("PostMessage")
	require.NotNil(t, call)
	assert.Equal(t, "alice", call.Args["name"])
	assert.Equal(t, "hello everyone", call.Args["content"])

	assert.Equal(t, 1, client.GetCallCount("ListMessages"), "board should refresh after posting")
	assert.Equal(t, []string{"Message posted!"}, display.GetMessagesByLevel("success"))
}

func TestSubmitMessage_FailureDoesNotRefresh(t *testing.T) {
	client := mocks.NewAPIClient()
	client.PostMessageError = fmt.Errorf("failed to post message: %w", &api.APIError{StatusCode: 400, Message: "invalid json"})
	svc, display, _ := newService(client)

	err := svc.SubmitMessage(context.Background(), "alice", "hi")
	assert.ErrorIs(t, err, board.ErrReported)
	assert.Equal(t, 0, client.GetCallCount("ListMessages"))
	assert.Equal(t, []string{"invalid json"}, display.GetMessagesByLevel("error"))
}

func TestSubmitMessage_InvalidInput(t *testing.T) {
	client := mocks.NewAPIClient()
	client.PostMessageError = fmt.Errorf("%w: name must be between 1 and 40 characters, got 0", api.ErrInvalidInput)
	svc, display, _ := newService(client)

	err := svc.SubmitMessage(context.Background(), "", "hi")
	assert.ErrorIs(t, err, api.ErrInvalidInput)
	assert.Equal(t, []string{"invalid input: name must be between 1 and 40 characters, got 0"}, display.GetMessagesByLevel("error"))
}

func TestLookupNames(t *testing.T) {
	tests := []struct {
		name     string
		response []string
		expected []string
	}{
		{name: "matches", response: fixtures.ValidNames(), expected: []string{"cat", "dog", "bird"}},
		{name: "no matches", response: []string{}, expected: []string{"No matching names"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewAPIClient()
			client.LookupNamesResponse = tt.response
			svc, display, _ := newService(client)

			require.NoError(t, svc.LookupNames(context.Background(), "catdogbird"))
			assert.Equal(t, tt.expected, display.GetMessagesByLevel("info"))
			assert.Equal(t, "catdogbird", client.GetLastCall("LookupNames").Args["name"])
		})
	}
}

func TestLookupNames_Error(t *testing.T) {
	client := mocks.NewAPIClient()
	client.LookupNamesError = &api.APIError{StatusCode: 400, Message: "invalid data size"}
	svc, display, _ := newService(client)

	err := svc.LookupNames(context.Background(), "abcdef")
	assert.ErrorIs(t, err, board.ErrReported)
	assert.Empty(t, display.GetMessagesByLevel("info"), "no names are shown after a failure")
	assert.Equal(t, []string{"invalid data size"}, display.GetMessagesByLevel("error"))
}

func TestGenerateToken(t *testing.T) {
	client := mocks.NewAPIClient()
	client.TokenResponse = "cmVnaXN0cmF0aW9uLXRva2Vu"
	svc, display, _ := newService(client)

	require.NoError(t, svc.GenerateToken(context.Background()))

	assert.Equal(t, []mocks.DisplayMessage{
		{Level: "success", Message: "Registration token generated"},
		{Level: "info", Message: "cmVnaXN0cmF0aW9uLXRva2Vu", Padding: 1},
	}, display.GetMessages())
}

func TestGenerateToken_Error(t *testing.T) {
	client := mocks.NewAPIClient()
	client.TokenError = errors.New("timeout")
	svc, display, _ := newService(client)

	err := svc.GenerateToken(context.Background())
	assert.ErrorIs(t, err, board.ErrReported)
	assert.Equal(t, []string{"An error has occurred: timeout"}, display.GetMessagesByLevel("error"))
}

func TestShowLinks(t *testing.T) {
	client := mocks.NewAPIClient()
	client.ListLinksResponse = fixtures.ValidLinks()
	svc, display, _ := newService(client)

	require.NoError(t, svc.ShowLinks(context.Background()))

	assert.Equal(t, []string{
		"Ab3_xYz  https://example.com/a  (https://boolco.dev/s/Ab3_xYz)",
		"Q9q9q9q  http://example.org/very/long/path  (https://boolco.dev/s/Q9q9q9q)",
	}, display.GetMessagesByLevel("info"))
}

func TestShowLinks_Empty(t *testing.T) {
	client := mocks.NewAPIClient()
	svc, display, _ := newService(client)

	require.NoError(t, svc.ShowLinks(context.Background()))
	assert.Equal(t, []string{"No links yet"}, display.GetMessagesByLevel("info"))
}

func TestShortenLink(t *testing.T) {
	client := mocks.NewAPIClient()
	client.CreateLinkResponse = "Ab3_xYz"
	client.ListLinksResponse = fixtures.ValidLinks()[:1]
	svc, display, _ := newService(client)

	require.NoError(t, svc.ShortenLink(context.Background(), "https://example.com/a"))

	assert.Equal(t, []string{"Your link has been created! Visit https://boolco.dev/s/Ab3_xYz to access it."},
		display.GetMessagesByLevel("success"))
	assert.Equal(t, 1, client.GetCallCount("ListLinks"))
}

func TestShortenLink_Errors(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectRefresh bool
	}{
		{
			name:          "server answered with an error",
			err:           fmt.Errorf("failed to create link: %w", &api.APIError{StatusCode: 400, Message: "invalid link"}),
			expectRefresh: true,
		},
		{
			name:          "no answer from server",
			err:           errors.New("connection reset"),
			expectRefresh: false,
		},
		{
			name:          "rejected locally",
			err:           fmt.Errorf("%w: link is empty", api.ErrInvalidInput),
			expectRefresh: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewAPIClient()
			client.CreateLinkError = tt.err
			client.ListLinksResponse = fixtures.ValidLinks()
			svc, display, _ := newService(client)

			err := svc.ShortenLink(context.Background(), "whatever")
			assert.ErrorIs(t, err, board.ErrReported)
			assert.Len(t, display.GetMessagesByLevel("error"), 1)

			if tt.expectRefresh {
				assert.Equal(t, 1, client.GetCallCount("ListLinks"))
				assert.Len(t, display.GetMessagesByLevel("info"), 2)
			} else {
				assert.Equal(t, 0, client.GetCallCount("ListLinks"))
			}
		})
	}
}

func TestNewService_NilClock(t *testing.T) {
	client := mocks.NewAPIClient()
	client.ListMessagesResponse = []api.Message{fixtures.MessageAt("alice", "hi", time.Now())}
	display := mocks.NewDisplayRenderer()

	svc := board.NewService(client, display, nil)
	require.NoError(t, svc.ShowMessages(context.Background()))

	assert.Contains(t, display.GetMessagesByLevel("info")[0], "alice says: (")
}
