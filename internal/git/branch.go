package git

import (
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/rs/zerolog/log"

	"github.com/friis-dev/hopp/internal/models"
)

// maxBranches bounds how many records reach the table. The limit is applied
// after sorting, so the list always holds the most recently committed
// branches.
const maxBranches = 50

// ExtractLocalBranches builds one record per resolvable local branch.
// A branch missing any field is logged and skipped; only a failing branch
// enumeration aborts the listing.
func ExtractLocalBranches(repo *gogit.Repository) ([]models.BranchRecord, error) {
	headRef := CurrentBranchRef(repo)

	branches, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	var records []models.BranchRecord
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if rec, ok := buildRecord(repo, ref, headRef); ok {
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}
	return records, nil
}

func buildRecord(repo *gogit.Repository, ref *plumbing.Reference, headRef string) (models.BranchRecord, bool) {
	name := ref.Name().Short()
	if name == "" {
		log.Warn().Str("ref", ref.Name().String()).Msg("skipping branch without a usable name")
		return models.BranchRecord{}, false
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		log.Warn().Str("branch", name).Err(err).Msg("skipping branch: tip does not resolve to a commit")
		return models.BranchRecord{}, false
	}

	summary := commitSummary(commit.Message)
	if summary == "" {
		log.Warn().Str("branch", name).Msg("skipping branch: tip commit has no summary")
		return models.BranchRecord{}, false
	}

	author := strings.TrimSpace(commit.Author.Name)
	if author == "" {
		log.Warn().Str("branch", name).Msg("skipping branch: tip commit has no author name")
		return models.BranchRecord{}, false
	}

	when := commit.Author.When
	_, offsetSeconds := when.Zone()

	return models.BranchRecord{
		Name:            name,
		RefName:         ref.Name().String(),
		CommitSHA:       ref.Hash().String(),
		TimeSeconds:     when.Unix(),
		OffsetMinutes:   offsetSeconds / 60,
		Summary:         summary,
		AuthorName:      author,
		IsCurrentBranch: headRef != "" && ref.Name().String() == headRef,
	}, true
}

// commitSummary returns the first line of a commit message.
func commitSummary(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(line)
}

// Rank orders records most recently committed first and truncates to
// maxBranches. The sort is stable, so branches sharing a commit time keep
// their enumeration order.
func Rank(records []models.BranchRecord) []models.BranchRecord {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TimeSeconds > records[j].TimeSeconds
	})
	if len(records) > maxBranches {
		records = records[:maxBranches]
	}
	return records
}
