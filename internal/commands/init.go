package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cashcare-dev/cashcare/internal/accounts"
	"github.com/cashcare-dev/cashcare/internal/categorize"
	"github.com/cashcare-dev/cashcare/internal/config"
	"github.com/cashcare-dev/cashcare/internal/gitops"
	"github.com/cashcare-dev/cashcare/internal/log"
)

func newInitCommand() *cobra.Command {
	var name string
	var currency string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new CashCare repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg := config.Default(name, currency)
			cfg.Git.AutoCommit = useGit
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := runInit(cmd, absDir, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized CashCare repository at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "profile name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&currency, "currency", "INR", "default currency code")
	cmd.Flags().BoolVar(&useGit, "git", false, "initialize a git repository and commit ledger changes")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, cfg *config.Config) error {
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	logger = logger.With(log.FieldOperation, log.OpInit, log.FieldRepo, dir)

	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	dirs := []string{
		"accounts",
		"rules",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return err
	}

	if err := accounts.NewService(nil).Save(dir); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}

	if err := categorize.SaveRules(filepath.Join(dir, cfg.Rules.Path), nil); err != nil {
		return err
	}

	gitignore := "import/*.csv\nexports/\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if !cfg.Git.AutoCommit {
		logger.Debug("repository initialized")
		return nil
	}

	repo := gitops.Open(dir, gitAuthor(cfg))
	if !gitops.IsRepo(dir) {
		if err := repo.Init(cmd.Context()); err != nil {
			return err
		}
	}
	hash, err := repo.Commit(cmd.Context(), "init: Initialize "+cfg.Profile.Name)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}
	logger.Info("repository initialized", "commit", hash)
	return nil
}
