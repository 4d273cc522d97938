// Package loader produces template records for the prompt registry.
// This file resolves the configured prompt source to a local folder, cloning
// or updating a remote git repository into the cache when one is configured.
package loader

// file: internal/loader/git.go

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	git "github.com/go-git/go-git/v5"
	gittransport "github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"github.com/zalando/go-keyring"

	"github.com/DiscreteTom/shinkuro-go/internal/config"
	"github.com/DiscreteTom/shinkuro-go/internal/logging"
)

// Keyring coordinates for an optional HTTPS access token used when cloning
// private repositories.
const (
	keyringService = "shinkuro"
	keyringUser    = "git-token"
)

// ResolveFolder returns the local folder to scan for prompt files. With a git
// URL configured, the repository is cloned (or updated, when auto-pull is
// set) under the cache directory and the configured folder is treated as a
// subdirectory inside the repository. Otherwise the local folder is expanded
// and resolved against the working directory.
func ResolveFolder(cfg *config.Config, logger logging.Logger) (string, error) {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	log := logger.WithField("component", "loader")

	if cfg.GitURL != "" {
		repoPath, err := cachePath(cfg.GitURL, cfg.CacheDir)
		if err != nil {
			return "", err
		}
		if err := cloneOrUpdate(repoPath, cfg.GitURL, cfg.AutoPull, log); err != nil {
			return "", err
		}
		if cfg.Folder != "" {
			return filepath.Join(repoPath, cfg.Folder), nil
		}
		return repoPath, nil
	}

	if cfg.Folder == "" {
		return "", errors.New("either folder or git-url must be provided")
	}
	expanded, err := config.ExpandHome(cfg.Folder)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) {
		return expanded, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get working directory")
	}
	return filepath.Join(cwd, expanded), nil
}

// cachePath maps a git URL onto a stable location under the cache directory:
// <cache>/git/<owner>/<name>.
func cachePath(gitURL, cacheDir string) (string, error) {
	owner, name, err := parseGitURL(gitURL)
	if err != nil {
		return "", err
	}
	expanded, err := config.ExpandHome(cacheDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(expanded, "git", owner, name), nil
}

// parseGitURL extracts the owner and repository name from an HTTPS or
// scp-style SSH git URL.
func parseGitURL(gitURL string) (owner, name string, err error) {
	// scp-style SSH URLs: git@github.com:user/repo.git
	if sshPart, ok := strings.CutPrefix(gitURL, "git@"); ok {
		if _, path, ok := strings.Cut(sshPart, ":"); ok {
			parts := strings.Split(strings.TrimSuffix(path, ".git"), "/")
			if len(parts) >= 2 {
				return parts[len(parts)-2], parts[len(parts)-1], nil
			}
		}
		return "", "", errors.Newf("cannot extract owner/repo from git URL: %s", gitURL)
	}

	parsed, parseErr := url.Parse(gitURL)
	if parseErr != nil {
		return "", "", errors.Wrapf(parseErr, "invalid git URL: %s", gitURL)
	}
	path := strings.TrimSuffix(strings.TrimPrefix(parsed.Path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", errors.Newf("cannot extract owner/repo from git URL: %s", gitURL)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// cloneOrUpdate makes sure path holds a checkout of gitURL. A missing
// checkout is cloned shallowly; an existing one is fast-forwarded when
// autoPull is set.
func cloneOrUpdate(path, gitURL string, autoPull bool, log logging.Logger) error {
	auth := authMethod(gitURL, log)

	if _, statErr := os.Stat(path); statErr == nil {
		if !autoPull {
			log.Debug("Using cached repository without update.", "path", path)
			return nil
		}
		log.Info("Updating cached repository.", "path", path, "url", gitURL)

		repo, err := git.PlainOpen(path)
		if err != nil {
			return errors.Wrapf(err, "failed to open cached repository: %s", path)
		}
		worktree, err := repo.Worktree()
		if err != nil {
			return errors.Wrap(err, "failed to get repository worktree")
		}
		err = worktree.Pull(&git.PullOptions{RemoteName: "origin", Auth: auth})
		if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
			return errors.Wrapf(err, "failed to update repository: %s", gitURL)
		}
		return nil
	}

	log.Info("Cloning repository.", "path", path, "url", gitURL)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.Wrap(err, "failed to create cache directory")
	}
	// Shallow clone to save bandwidth; history is not needed for serving prompts.
	_, err := git.PlainClone(path, false, &git.CloneOptions{
		URL:   gitURL,
		Depth: 1,
		Auth:  auth,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to clone repository: %s", gitURL)
	}
	return nil
}

// authMethod picks the transport credentials for a git URL: the ssh-agent
// for SSH URLs, an optional access token from the OS keyring for HTTPS URLs,
// anonymous access otherwise.
func authMethod(gitURL string, log logging.Logger) gittransport.AuthMethod {
	if strings.HasPrefix(gitURL, "git@") || strings.HasPrefix(gitURL, "ssh://") {
		auth, err := gitssh.NewSSHAgentAuth("git")
		if err != nil {
			log.Warn("SSH agent unavailable, attempting anonymous access.", "error", err)
			return nil
		}
		return auth
	}

	token, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			log.Debug("Keyring lookup for git token failed, using anonymous access.", "error", err)
		}
		return nil
	}
	log.Debug("Using git access token from system keyring.")
	return &githttp.BasicAuth{Username: "git", Password: token}
}
