// Package gitops records ledger changes as commits when the repo is under git.
package gitops

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoGit is returned when the git binary is not on PATH.
var ErrNoGit = errors.New("git executable not found")

// Author identifies who a commit is attributed to.
type Author struct {
	Name  string
	Email string
}

func (a Author) String() string {
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Repo wraps a working tree on disk.
type Repo struct {
	dir    string
	author Author
}

// Open returns a Repo for dir. It does not check that dir is a repository.
func Open(dir string, author Author) *Repo {
	return &Repo{dir: dir, author: author}
}

// Dir returns the working tree root.
func (r *Repo) Dir() string {
	return r.dir
}

// Available reports whether git can be run.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// Init creates a repository at the working tree root.
func (r *Repo) Init(ctx context.Context) error {
	if _, err := r.run(ctx, "init", "--quiet"); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	return nil
}

// Commit stages paths (everything when none are given) and commits them.
// It returns the short hash, or "" when there was nothing to commit.
func (r *Repo) Commit(ctx context.Context, message string, paths ...string) (string, error) {
	add := []string{"add", "-A"}
	if len(paths) > 0 {
		add = append(add, "--")
		add = append(add, paths...)
	}
	if _, err := r.run(ctx, add...); err != nil {
		return "", fmt.Errorf("git add: %w", err)
	}

	staged, err := r.run(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return "", fmt.Errorf("git diff: %w", err)
	}
	if strings.TrimSpace(staged) == "" {
		return "", nil
	}

	commit := []string{
		"-c", "user.name=" + r.author.Name,
		"-c", "user.email=" + r.author.Email,
		"commit", "--quiet", "-m", message, "--author", r.author.String(),
	}
	if _, err := r.run(ctx, commit...); err != nil {
		return "", fmt.Errorf("git commit: %w", err)
	}

	out, err := r.run(ctx, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// LastMessage returns the subject of the most recent commit.
func (r *Repo) LastMessage(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "log", "-1", "--format=%s")
	if err != nil {
		return "", fmt.Errorf("git log: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func (r *Repo) run(ctx context.Context, args ...string) (string, error) {
	if !Available() {
		return "", ErrNoGit
	}
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: %w", strings.TrimSpace(stderr.String()), err)
	}
	return stdout.String(), nil
}
