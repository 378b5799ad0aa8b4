package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Elun4705/Interactive/internal/app"
	"github.com/Elun4705/Interactive/internal/config"
	"github.com/Elun4705/Interactive/internal/conversation"
	"github.com/Elun4705/Interactive/internal/session"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an exported conversation from a JSON file",
	Long: `Imports a conversation exported as JSON and makes it the active one.

The file may be an array of messages, or an object with an optional "name"
and a "messages" or "conversation_history" array.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	svc, closeServices, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer closeServices()

	return importConversation(cmd.Context(), cmd.OutOrStdout(), cfg, svc, args[0])
}

// importConversation imports the file at path and reports the result to out
func importConversation(ctx context.Context, out io.Writer, cfg *config.Config, svc app.Services, path string) error {
	identity := session.New(svc.Store, cfg.StoreScope, cfg.GetAgentName())
	im := &conversation.Importer{
		Agent:  identity.Agent,
		Active: identity,
	}
	if svc.Client != nil {
		im.SDK = svc.Client
	}

	res, err := im.Import(ctx, path)
	if err != nil {
		return fmt.Errorf("import failed: %s", conversation.Describe(err))
	}
	fmt.Fprintln(out, res.SuccessMessage())
	fmt.Fprintf(out, "  %d message(s), id %s\n", res.Messages, res.ConversationID)
	return nil
}
