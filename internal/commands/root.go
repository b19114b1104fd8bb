// Package commands wires the cashcare CLI.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cashcare-dev/cashcare/internal/accounts"
	"github.com/cashcare-dev/cashcare/internal/buildinfo"
	"github.com/cashcare-dev/cashcare/internal/config"
	"github.com/cashcare-dev/cashcare/internal/log"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	defaultRepo := "."
	if v := os.Getenv(config.EnvRepo); v != "" {
		defaultRepo = v
	}

	rootCmd := &cobra.Command{
		Use:     "cashcare",
		Short:   "Personal finance ledger and dashboard",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("repo", defaultRepo, "repository directory (env "+config.EnvRepo+")")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env "+config.EnvLogLevel+")")

	rootCmd.AddCommand(
		newInitCommand(),
		newAccountsCommand(),
		newImportCommand(),
		newCategorizeCommand(),
		newDashboardCommand(),
		newCalcCommand(),
		newDemoCommand(),
	)

	return rootCmd
}

// workspace is the per-invocation view of a repo: its root, config and logger.
type workspace struct {
	root   string
	cfg    *config.Config
	logger *log.Logger
}

// openWorkspace resolves --repo and loads cashcare.yaml. A repo without a
// config file gets the defaults so read-only commands work on bare ledgers.
func openWorkspace(cmd *cobra.Command) (*workspace, error) {
	repo, err := cmd.Flags().GetString("repo")
	if err != nil {
		return nil, err
	}
	root, err := filepath.Abs(repo)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = config.Default("", "")
	case err != nil:
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("workspace opened", log.FieldRepo, root)

	return &workspace{root: root, cfg: cfg, logger: logger}, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return log.New(log.Config{
		Level:     level,
		Component: log.ComponentApp,
		Output:    cmd.ErrOrStderr(),
		JSON:      cfg.Log.JSON,
	}), nil
}

// rulesPath returns the categorization rules file, relative paths resolved
// against the repo root.
func (w *workspace) rulesPath() string {
	p := w.cfg.Rules.Path
	if p == "" {
		p = config.DefaultRulesPath
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(w.root, p)
}

// loadAccounts reads the account list. A repo without an accounts file has
// no accounts.
func (w *workspace) loadAccounts() (*accounts.Service, error) {
	svc, err := accounts.Load(w.root)
	if errors.Is(err, fs.ErrNotExist) {
		return accounts.NewService(nil), nil
	}
	return svc, err
}
