// Package board runs the fetch-then-render workflows behind each boolco
// command: the message board, name lookup, registration tokens and short
// links.
package board

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/sgaunet/boolco/internal/logger"
	"github.com/sgaunet/boolco/pkg/api"
	"github.com/sgaunet/bullets"
)

// Service ties an API client to a display. "Now" for relative times is read
// from clock once per render.
type Service struct {
	client  api.APIClient
	display DisplayRenderer
	clock   clockwork.Clock
	log     *bullets.Logger
}

// NewService creates a Service. A nil clock means the wall clock.
func NewService(client api.APIClient, display DisplayRenderer, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		client:  client,
		display: display,
		clock:   clock,
		log:     logger.NoLogger(),
	}
}

// SetLogger sets the logger for workflow tracing.
func (s *Service) SetLogger(log *bullets.Logger) {
	if log == nil {
		log = logger.NoLogger()
	}
	s.log = log
}

// ShowMessages renders the message board, newest first.
func (s *Service) ShowMessages(ctx context.Context) error {
	messages, err := s.client.ListMessages(ctx)
	if err != nil {
		return s.fail(err)
	}

	if len(messages) == 0 {
		s.display.Info("No messages yet")
		return nil
	}

	now := s.clock.Now()
	for _, m := range messages {
		s.display.Info(FormatMessageHeader(m, now))
		s.display.IncreasePadding()
		s.display.Info(m.Content)
		s.display.DecreasePadding()
	}
	return nil
}

// SubmitMessage posts a message and, once accepted, shows the refreshed board.
func (s *Service) SubmitMessage(ctx context.Context, name, content string) error {
	s.log.Debug(fmt.Sprintf("Posting message as %q (%d characters)", name, len(content)))

	success, err := s.client.PostMessage(ctx, name, content)
	if err != nil {
		return s.fail(err)
	}

	s.display.Success(success)
	return s.ShowMessages(ctx)
}

// LookupNames shows the dictionary names found in name. On failure no
// names are shown.
func (s *Service) LookupNames(ctx context.Context, name string) error {
	names, err := s.client.LookupNames(ctx, name)
	if err != nil {
		return s.fail(err)
	}

	if len(names) == 0 {
		s.display.Info("No matching names")
		return nil
	}
	for _, n := range names {
		s.display.Info(n)
	}
	return nil
}

// GenerateToken requests a registration token and shows it.
func (s *Service) GenerateToken(ctx context.Context) error {
	token, err := s.client.GenerateRegistrationToken(ctx)
	if err != nil {
		return s.fail(err)
	}

	s.display.Success("Registration token generated")
	s.display.IncreasePadding()
	s.display.Info(token.Value())
	s.display.DecreasePadding()
	return nil
}

// ShowLinks lists the session user's short links.
func (s *Service) ShowLinks(ctx context.Context) error {
	links, err := s.client.ListLinks(ctx)
	if err != nil {
		return s.fail(err)
	}

	if len(links) == 0 {
		s.display.Info("No links yet")
		return nil
	}
	for _, l := range links {
		s.display.Info(FormatLink(l, s.client.ShortURL(l.Mnemonic)))
	}
	return nil
}

// ShortenLink creates a short link and shows its address. Whenever the server
// answered, success or not, the link list is refreshed afterwards.
func (s *Service) ShortenLink(ctx context.Context, link string) error {
	mnemonic, err := s.client.CreateLink(ctx, link)
	if err != nil {
		reported := s.fail(err)
		if _, answered := api.IsAPIError(err); answered {
			if refreshErr := s.ShowLinks(ctx); refreshErr != nil {
				s.log.Debug(fmt.Sprintf("Link list refresh failed: %v", refreshErr))
			}
		}
		return reported
	}

	s.display.Success(FormatLinkCreated(s.client.ShortURL(mnemonic)))
	return s.ShowLinks(ctx)
}

// fail shows err to the user and marks it as reported.
func (s *Service) fail(err error) error {
	s.display.Error(ErrorText(err))
	return fmt.Errorf("%w: %w", ErrReported, err)
}
