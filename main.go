// Package main provides the entry point for the boolco CLI tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/sgaunet/boolco/internal/logger"
	"github.com/sgaunet/boolco/internal/security"
	"github.com/sgaunet/boolco/internal/timeutil"
	"github.com/sgaunet/boolco/internal/ui"
	"github.com/sgaunet/boolco/pkg/api"
	"github.com/sgaunet/boolco/pkg/board"
	"github.com/sgaunet/boolco/pkg/config"
	"github.com/sgaunet/bullets"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	configPath string
	baseURL    string

	postName    string
	postContent string
	agoNow      string

	log *bullets.Logger
)

var rootCmd = &cobra.Command{
	Use:   "boolco",
	Short: "Command line client for the boolco message board and link shortener",
	Long: `boolco talks to a boolco server: read and post on the message board,
look up discord names, generate registration tokens and manage short links.

The session cookie is read from the config file or the BOOLCO_SESSION
environment variable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		log = logger.NewLogger(logLevel)
	},
}

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Show the message board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		return svc.ShowMessages(cmd.Context())
	},
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a message to the board",
	Long:  "Post a message to the board. Missing --name or --content are asked for interactively.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		msg, err := ui.NewPrompter().AskMessage(postName, postContent)
		if err != nil {
			return err
		}
		return svc.SubmitMessage(cmd.Context(), msg.Name, msg.Content)
	},
}

var namesCmd = &cobra.Command{
	Use:   "names [name]",
	Short: "Look up the names hidden in a discord name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		var name string
		if len(args) == 1 {
			name = args[0]
		} else if name, err = ui.NewPrompter().AskLookupName(); err != nil {
			return err
		}
		return svc.LookupNames(cmd.Context(), name)
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate a registration token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		return svc.GenerateToken(cmd.Context())
	},
}

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List your short links",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		return svc.ShowLinks(cmd.Context())
	},
}

var shortenCmd = &cobra.Command{
	Use:   "shorten <url>",
	Short: "Create a short link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		return svc.ShortenLink(cmd.Context(), args[0])
	},
}

var agoCmd = &cobra.Command{
	Use:   "ago <timestamp>",
	Short: "Print how long ago a timestamp was",
	Long: `Print how long ago a timestamp was, the way the message board does.

The timestamp is epoch milliseconds or a date string such as
2025-03-14T15:09:26Z. --now accepts the same forms and defaults to the
current time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAgo(cmd.OutOrStdout(), clockwork.NewRealClock(), args[0], agoNow)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info",
		"Set log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to the config file (default ~/.config/boolco/config.yml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "",
		"Server base URL, overrides the config file and "+config.EnvBaseURL)

	postCmd.Flags().StringVar(&postName, "name", "", "Name to post as")
	postCmd.Flags().StringVar(&postContent, "content", "", "Message content")
	agoCmd.Flags().StringVar(&agoNow, "now", "", "Reference time instead of the current time")

	rootCmd.AddCommand(messagesCmd, postCmd, namesCmd, tokenCmd, linksCmd, shortenCmd, agoCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, board.ErrReported):
		os.Exit(1)
	case errors.Is(err, ui.ErrPromptCancelled):
		os.Exit(130)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newService loads the configuration and builds the board service for the
// network commands.
func newService() (*board.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log.Debug("Configuration loaded: " + cfg.String())

	session := cfg.SessionToken()
	security.DebugSession(log, cfg.BaseURL, session)

	client, err := api.NewClient(api.Options{
		BaseURL: cfg.BaseURL,
		Session: session,
		Timeout: cfg.Timeout,
		Retries: cfg.Retries,
		Logger:  log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	svc := board.NewService(client, board.NewDisplay(os.Stdout), clockwork.NewRealClock())
	svc.SetLogger(log)
	return svc, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if strings.TrimSpace(baseURL) != "" {
		cfg.BaseURL = baseURL
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --base-url: %w", err)
		}
	}
	return cfg, nil
}

// runAgo prints the relative time between timestamp and nowArg, or the
// clock's time when nowArg is empty.
func runAgo(out io.Writer, clock clockwork.Clock, timestamp, nowArg string) error {
	now := clock.Now()
	if nowArg != "" {
		parsed, err := timeutil.ToTime(nowArg)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
		now = parsed
	}

	age, err := timeutil.Since(timestamp, now)
	if err != nil {
		return fmt.Errorf("invalid timestamp: %w", err)
	}

	_, err = fmt.Fprintln(out, age+" ago")
	return err
}
