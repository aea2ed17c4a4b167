package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/friis-dev/hopp/internal/models"
)

// CheckoutBranch applies the record's tip commit tree to the working
// directory and points HEAD at the record's ref. A failed checkout must not
// partially apply: go-git repoints HEAD before it rejects a dirty worktree,
// so the prior HEAD is saved up front and put back on any checkout error.
func CheckoutBranch(repo *gogit.Repository, record models.BranchRecord) error {
	hash := plumbing.NewHash(record.CommitSHA)
	if _, err := repo.CommitObject(hash); err != nil {
		return fmt.Errorf("cannot resolve %s to a commit: %w", record.ShortSHA(), err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	prevHead, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return fmt.Errorf("failed to read HEAD: %w", err)
	}

	opts := &gogit.CheckoutOptions{Branch: plumbing.ReferenceName(record.RefName)}
	if err := worktree.Checkout(opts); err != nil {
		if rerr := repo.Storer.SetReference(prevHead); rerr != nil {
			return fmt.Errorf("failed to checkout %q: %w (and restoring HEAD failed: %v)", record.Name, err, rerr)
		}
		return fmt.Errorf("failed to checkout %q: %w", record.Name, err)
	}
	return nil
}
