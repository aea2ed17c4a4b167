package git

import (
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/require"
)

func initMemRepo(t *testing.T) (*gogit.Repository, *gogit.Worktree, billy.Filesystem) {
	t.Helper()

	fs := memfs.New()
	repo, err := gogit.Init(memory.NewStorage(), fs)
	require.NoError(t, err)

	w, err := repo.Worktree()
	require.NoError(t, err)
	return repo, w, fs
}

func writeFile(t *testing.T, fs billy.Filesystem, name, content string) {
	t.Helper()
	require.NoError(t, util.WriteFile(fs, name, []byte(content), 0o644))
}

func commitFile(t *testing.T, w *gogit.Worktree, fs billy.Filesystem, name, content, message, author string, when time.Time) plumbing.Hash {
	t.Helper()

	writeFile(t, fs, name, content)
	_, err := w.Add(name)
	require.NoError(t, err)

	hash, err := w.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{Name: author, Email: "test@example.com", When: when},
	})
	require.NoError(t, err)
	return hash
}

func switchTo(t *testing.T, w *gogit.Worktree, name string, create bool) {
	t.Helper()
	require.NoError(t, w.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: create,
	}))
}
