package api

import (
	"encoding/json"
	"time"
)

// Endpoint paths relative to the configured base URL.
const (
	pathGame              = "/api/game"
	pathDiscord           = "/api/discord"
	pathRegistrationToken = "/api/generate_registration_token"
	pathShort             = "/api/short"
)

// Input bounds enforced before a request is sent.
const (
	MinMessageNameLength    = 1
	MaxMessageNameLength    = 40
	MinMessageContentLength = 1
	MaxMessageContentLength = 1000
	MinLookupNameLength     = 3
	MaxLookupNameLength     = 50
)

const (
	defaultRetryWaitMin = 500 * time.Millisecond
	defaultRetryWaitMax = 5 * time.Second
	maxResponseBytes    = 1 << 20
)

// Message is one entry on the message board.
type Message struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	// Timestamp is what the server sent, usually epoch milliseconds as a
	// json.Number. Use timeutil.ToTime to read it.
	Timestamp any `json:"timestamp"`
}

// Link is a short link owned by the session's user.
type Link struct {
	Mnemonic string `json:"mnemonic"`
	Link     string `json:"link"`
}

type postMessageRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type createLinkRequest struct {
	Link string `json:"link"`
}

// errorEnvelope catches the {"error": ...} shape every endpoint can return.
type errorEnvelope struct {
	Error json.RawMessage `json:"error"`
}

type messagesResponse struct {
	Messages *[]Message `json:"messages"`
}

type successResponse struct {
	Success *json.RawMessage `json:"success"`
}

type namesResponse struct {
	Names *[]string `json:"names"`
}

type tokenResponse struct {
	Token *string `json:"token"`
}

type linksResponse struct {
	Links *[]Link `json:"links"`
}

type mnemonicResponse struct {
	Mnemonic *string `json:"mnemonic"`
}
