package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/neevamind/mindcli/internal/api"
	"github.com/neevamind/mindcli/internal/config"
	"github.com/neevamind/mindcli/internal/session"
	"github.com/neevamind/mindcli/internal/tui"
)

var (
	serverURL  string
	configPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mindcli",
		Short: "Terminal client for the NeevaMind journaling service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server URL (overrides config file)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to JSON config file")

	rootCmd.AddCommand(pingCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newClient() (*api.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	return api.New(cfg.ServerURL, cfg.RequestTimeout)
}

func runTUI() error {
	client, err := newClient()
	if err != nil {
		return err
	}

	sessions := session.New(client)
	app := tui.NewApp(client, sessions, openLogger())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// openLogger writes background-task failures to a log file under the user
// config dir. The terminal belongs to the UI, so on any setup failure the
// log is simply discarded.
func openLogger() *log.Logger {
	dir, err := os.UserConfigDir()
	if err != nil {
		return log.New(io.Discard, "", 0)
	}
	path := filepath.Join(dir, "mindcli", "mindcli.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard, "", 0)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(f, "", log.LstdFlags)
}

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the NeevaMind server is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			status, err := client.Health(context.Background())
			if err != nil {
				return fmt.Errorf("server unreachable: %s", api.Reason(err))
			}
			fmt.Printf("server status: %s\n", status)
			return nil
		},
	}
}
