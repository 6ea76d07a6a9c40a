package mocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sgaunet/boolco/pkg/board"
)

// DisplayRenderer is a mock implementation of board.DisplayRenderer that
// records every line with its level.
type DisplayRenderer struct {
	mu       sync.Mutex
	messages []DisplayMessage
	padding  int
}

// DisplayMessage represents a rendered line with its level and indentation.
type DisplayMessage struct {
	Level   string
	Message string
	Padding int
}

// NewDisplayRenderer creates a new mock display renderer.
func NewDisplayRenderer() *DisplayRenderer {
	return &DisplayRenderer{
		messages: make([]DisplayMessage, 0),
	}
}

// Info implements board.DisplayRenderer.
func (m *DisplayRenderer) Info(message string) {
	m.trackMessage("info", message)
}

// Error implements board.DisplayRenderer.
func (m *DisplayRenderer) Error(message string) {
	m.trackMessage("error", message)
}

// Success implements board.DisplayRenderer.
func (m *DisplayRenderer) Success(message string) {
	m.trackMessage("success", message)
}

// IncreasePadding implements board.DisplayRenderer.
func (m *DisplayRenderer) IncreasePadding() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.padding++
}

// DecreasePadding implements board.DisplayRenderer.
func (m *DisplayRenderer) DecreasePadding() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.padding > 0 {
		m.padding--
	}
}

// GetMessages returns all tracked messages.
func (m *DisplayRenderer) GetMessages() []DisplayMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]DisplayMessage{}, m.messages...)
}

// GetMessagesByLevel returns all messages of a specific level.
func (m *DisplayRenderer) GetMessagesByLevel(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []string
	for _, msg := range m.messages {
		if msg.Level == level {
			result = append(result, msg.Message)
		}
	}
	return result
}

// Padding returns the current indentation depth.
func (m *DisplayRenderer) Padding() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.padding
}

// Reset clears all tracked messages.
func (m *DisplayRenderer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = make([]DisplayMessage, 0)
	m.padding = 0
}

// String returns a formatted representation of all messages for debugging.
func (m *DisplayRenderer) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result strings.Builder
	for i, msg := range m.messages {
		result.WriteString(fmt.Sprintf("[%d] %s%s: %s\n", i, strings.Repeat("  ", msg.Padding), msg.Level, msg.Message))
	}
	return result.String()
}

func (m *DisplayRenderer) trackMessage(level, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, DisplayMessage{
		Level:   level,
		Message: message,
		Padding: m.padding,
	})
}

// Ensure DisplayRenderer implements board.DisplayRenderer interface.
var _ board.DisplayRenderer = (*DisplayRenderer)(nil)
