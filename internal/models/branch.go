package models

import (
	"fmt"
	"time"
)

// BranchRecord is a snapshot of one local branch and its tip commit.
// A record is only ever constructed fully populated; a branch that cannot
// provide every field is skipped during extraction instead of producing a
// record with placeholder values. Records are not modified after
// construction.
type BranchRecord struct {
	Name            string
	RefName         string // fully qualified, e.g. "refs/heads/main"
	CommitSHA       string
	TimeSeconds     int64 // tip commit time, seconds since epoch
	OffsetMinutes   int   // author's UTC offset
	Summary         string
	AuthorName      string
	IsCurrentBranch bool
}

// CommitTime reassembles the tip commit timestamp in the author's original
// UTC offset, so formatted output matches what the author saw.
func (r BranchRecord) CommitTime() time.Time {
	zone := time.FixedZone("", r.OffsetMinutes*60)
	return time.Unix(r.TimeSeconds, 0).In(zone)
}

// ShortSHA returns the abbreviated commit id shown in the table.
func (r BranchRecord) ShortSHA() string {
	if len(r.CommitSHA) < 8 {
		return r.CommitSHA
	}
	return r.CommitSHA[:8]
}

// DisplayName is the branch name, with a marker when it is checked out.
func (r BranchRecord) DisplayName() string {
	if r.IsCurrentBranch {
		return "* " + r.Name
	}
	return r.Name
}

// RelativeTime describes how long ago the tip commit was made, e.g.
// "3 hours ago".
func (r BranchRecord) RelativeTime() string {
	return relativeTime(time.Since(r.CommitTime()))
}

// CommitInfo is the one-line tip commit description for the table header row.
func (r BranchRecord) CommitInfo() string {
	return fmt.Sprintf("%s (%s) %s", r.ShortSHA(), r.RelativeTime(), r.AuthorName)
}

func (r BranchRecord) String() string {
	return fmt.Sprintf("Branch(%s, %s, %s, %s)", r.Name, r.CommitSHA, r.Summary, r.RelativeTime())
}

func relativeTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d.Hours() / 24)
	switch {
	case d < time.Minute:
		return "just now"
	case d < 2*time.Minute:
		return "a minute ago"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 2*time.Hour:
		return "an hour ago"
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	case days < 2:
		return "a day ago"
	case days < 31:
		return fmt.Sprintf("%d days ago", days)
	case days < 62:
		return "a month ago"
	case days < 365:
		return fmt.Sprintf("%d months ago", days/31)
	case days < 730:
		return "a year ago"
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}
