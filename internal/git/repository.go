package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// inProgressFiles are the control files git leaves in the .git directory
// while a multi-step operation is underway. Their presence means the
// repository must not be mutated.
var inProgressFiles = []string{
	"MERGE_HEAD",
	"CHERRY_PICK_HEAD",
	"REVERT_HEAD",
	"BISECT_LOG",
	"rebase-apply",
	"rebase-merge",
}

// Open opens the repository containing path, walking up parent directories
// the way git itself discovers a repository.
func Open(path string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return repo, nil
}

// IsClean reports whether no merge, rebase, cherry-pick, revert or bisect is
// in progress. Repositories without an on-disk .git directory (in-memory
// storage) are always clean.
func IsClean(repo *gogit.Repository) bool {
	st, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return true
	}
	dotgit := st.Filesystem()
	for _, name := range inProgressFiles {
		if _, err := dotgit.Stat(name); err == nil {
			return false
		}
	}
	return true
}

// CurrentBranchRef returns the fully qualified ref name of the branch HEAD
// points at, or "" when HEAD is detached or cannot be resolved.
func CurrentBranchRef(repo *gogit.Repository) string {
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	if !head.Name().IsBranch() {
		return ""
	}
	return head.Name().String()
}
