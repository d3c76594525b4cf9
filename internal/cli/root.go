// Package cli wires the annictl commands together.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mydehq/annictl/internal/annict"
	"github.com/mydehq/annictl/internal/config"
	"github.com/mydehq/annictl/internal/version"
)

var (
	flagConfig  string
	flagQuiet   bool
	flagVerbose bool

	logger *log.Logger
)

var RootCmd = &cobra.Command{
	Use:           "annictl",
	Short:         "Fetch episode lists from Annict and rename local video files",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error(err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Custom configuration file path")
	RootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress output except errors")
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output")

	RootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of annictl",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("annictl %s\n", version.String())
		},
	})

	logger = log.New(os.Stderr)
	configureStyles()
}

func configureStyles() {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Foreground(lipgloss.Color("63"))

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO ").
		Bold(true).
		Foreground(lipgloss.Color("86"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN ").
		Bold(true).
		Foreground(lipgloss.Color("192"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))

	logger.SetStyles(styles)
}

func setupLogger() {
	if flagQuiet {
		logger.SetLevel(log.ErrorLevel)
	} else if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

// interactive reports whether prompts can be shown.
func interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// newClient loads the configuration and credential file and builds the API
// client. A missing credential file is not an error here; the client then
// fails every call with annict.ErrMissingToken.
func newClient() (*annict.Client, *config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	token, err := config.LoadToken(cfg.KeyFile)
	if err != nil {
		return nil, nil, err
	}
	if token == "" {
		logger.Warn("No Annict API token found; remote lookups are disabled",
			"key_file", cfg.KeyFile)
	}

	client := annict.New(annict.Config{
		Token:   token,
		BaseURL: cfg.API.BaseURL,
		Timeout: time.Duration(cfg.API.Timeout) * time.Second,
	})
	return client, cfg, nil
}

// reportFetchError prints a request failure and lets the caller carry on as
// if the API had returned no data.
func reportFetchError(err error) {
	if err == nil {
		return
	}
	switch {
	case isMissingToken(err):
		logger.Error("Set your Annict API token under [API] key in key.ini to use this command")
	default:
		logger.Error(err)
	}
}

func isMissingToken(err error) bool {
	return errors.Is(err, annict.ErrMissingToken)
}
