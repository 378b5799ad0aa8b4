package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Elun4705/Interactive/internal/app"
	"github.com/Elun4705/Interactive/internal/config"
	"github.com/Elun4705/Interactive/internal/logger"
	"github.com/Elun4705/Interactive/internal/session"
)

var (
	skipConfirm bool
	resetLogs   bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start over with a fresh client identity",
	Long: `Issues a new client id and clears the active conversation, so the next
message starts a new one. Stored conversations are kept.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	resetCmd.Flags().BoolVar(&resetLogs, "logs", false, "Also remove log files")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	svc, closeServices, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer closeServices()

	return resetIdentity(cmd.Context(), os.Stdin, cmd.OutOrStdout(), cfg, svc)
}

// resetIdentity asks for confirmation on input and resets the identity
func resetIdentity(ctx context.Context, input io.Reader, out io.Writer, cfg *config.Config, svc app.Services) error {
	identity := session.New(svc.Store, cfg.StoreScope, cfg.GetAgentName())
	fmt.Fprintf(out, "Agent: %s\n", identity.Agent())
	fmt.Fprintf(out, "Active conversation: %s\n", identity.Conversation())

	if !skipConfirm && !confirm(input, out, "Reset the conversation?") {
		fmt.Fprintln(out, "Canceled.")
		return nil
	}

	var inv session.Invalidator
	if svc.Client != nil {
		inv = svc.Client
	}
	id, err := identity.Reset(ctx, inv)
	if err != nil {
		return fmt.Errorf("error resetting conversation: %w", err)
	}
	fmt.Fprintf(out, "Conversation reset. New client id: %s\n", id)

	if resetLogs {
		n, err := logger.ClearLogs()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
		}
		if n > 0 {
			fmt.Fprintf(out, "Removed %d log file(s).\n", n)
		}
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
