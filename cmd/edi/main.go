package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/edi-cli/edi/chat"
	"github.com/edi-cli/edi/pkg/config"
	"github.com/edi-cli/edi/pkg/logger"
	"github.com/edi-cli/edi/pkg/poe"
	"github.com/edi-cli/edi/pkg/session"
)

const rootLongDesc string = `edi is a terminal chat client for the Poe completion API.

Input is read line by line; a blank line ends the turn and sends it.
A blank first line (or Ctrl-D) ends the session. Piped input runs a
single exchange and exits.

Examples:
  edi
  edi --continue
  echo "Summarize the plot of Mass Effect 2" | edi`

const rootShortDesc string = "Chat with Poe models from the terminal"

type rootCommander struct {
	continueSession bool
	configPath      string
	sqlitePath      string
	model           string
	debug           bool
}

func NewRootCmd() *cobra.Command {
	cmder := &rootCommander{}

	cmd := &cobra.Command{
		Use:          "edi",
		Short:        rootShortDesc,
		Long:         rootLongDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd)
		},
	}

	cmd.Flags().BoolVarP(&cmder.continueSession, "continue", "c", false, "Continue the previous session")
	cmd.Flags().StringVar(&cmder.configPath, "config", "", "Path to config file (default: ~/.config/edi/config.toml)")
	cmd.Flags().StringVarP(&cmder.sqlitePath, "sqlite", "s", "", "Keep session history in a SQLite database at this path")
	cmd.Flags().StringVarP(&cmder.model, "model", "m", "", "Override the configured model for this run")
	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")

	return cmd
}

func (c *rootCommander) run(ctx context.Context, cmd *cobra.Command) error {
	log := logger.NewLogger(c.debug)
	defer log.Sync()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if !cfg.Complete() {
		if !interactive {
			return fmt.Errorf("no configuration at %s; run edi interactively once to set up", configPath)
		}
		cfg, err = chat.Setup(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if err := config.Save(configPath, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
	}

	if c.model != "" {
		cfg.Model = c.model
	}

	store, err := c.openStore(log)
	if err != nil {
		return err
	}
	defer store.Close()

	if interactive {
		fmt.Fprintln(cmd.OutOrStdout(), "\nWelcome to EDI! (Edgar's Delightful Interface)")
		fmt.Fprintln(cmd.OutOrStdout(), "\nType 'Ctrl-D' or leave a blank line to end input and get the response.")
	}

	loop := chat.New(chat.Config{
		Model:       cfg.Model,
		APIKey:      cfg.APIKey,
		Resume:      c.continueSession,
		Interactive: interactive,
	}, poe.New("", log), store, log, cmd.InOrStdin(), cmd.OutOrStdout())

	return loop.Run(ctx)
}

func (c *rootCommander) openStore(log *zap.Logger) (session.Store, error) {
	if c.sqlitePath != "" {
		store, err := session.NewSQLiteStore(c.sqlitePath)
		if err != nil {
			return nil, fmt.Errorf("open session database %s: %w", c.sqlitePath, err)
		}
		log.Debug("using SQLite session store", zap.String("path", c.sqlitePath))
		return store, nil
	}

	path, err := session.DefaultPath()
	if err != nil {
		return nil, err
	}

	return session.NewFileStore(path), nil
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
