package commands

import (
	"context"

	"github.com/cashcare-dev/cashcare/internal/config"
	"github.com/cashcare-dev/cashcare/internal/gitops"
	"github.com/cashcare-dev/cashcare/internal/log"
)

func gitAuthor(cfg *config.Config) gitops.Author {
	return gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
}

// commitChanges records paths in git when the repo opted in. Failures are
// logged, not returned: the ledger on disk is already correct.
func (w *workspace) commitChanges(ctx context.Context, message string, paths ...string) {
	if !w.cfg.Git.AutoCommit || !gitops.IsRepo(w.root) {
		return
	}
	hash, err := gitops.Open(w.root, gitAuthor(w.cfg)).Commit(ctx, message, paths...)
	if err != nil {
		w.logger.Warn("git commit failed", log.FieldError, err)
		return
	}
	if hash != "" {
		w.logger.Info("committed", "commit", hash, "message", message)
	}
}
