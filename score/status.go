package score

import (
	"time"

	"github.com/benvisser/call-of-doody-sub000/schema"
)

const (
	DefaultMinVotes          = 5
	DefaultConfirmPercentage = 60
	DefaultRemovePercentage  = 40
)

// StatusThresholds configures how vote counts turn into an amenity status.
type StatusThresholds struct {
	MinVotes          int `mapstructure:"min_votes"`
	ConfirmPercentage int `mapstructure:"confirm_percentage"`
	RemovePercentage  int `mapstructure:"remove_percentage"`
}

var DefaultThresholds = StatusThresholds{
	MinVotes:          DefaultMinVotes,
	ConfirmPercentage: DefaultConfirmPercentage,
	RemovePercentage:  DefaultRemovePercentage,
}

// DeriveStatus applies the default thresholds.
func DeriveStatus(confirmVotes, denyVotes int) schema.AmenityStatus {
	return DefaultThresholds.Derive(confirmVotes, denyVotes)
}

// Derive returns the status for the given counts. The percentage comparisons
// are done on integers so that 3 of 5 is exactly 60%.
func (t StatusThresholds) Derive(confirmVotes, denyVotes int) schema.AmenityStatus {
	total := confirmVotes + denyVotes
	if total < t.MinVotes || total <= 0 {
		return schema.AmenityStatusUnverified
	}

	switch {
	case confirmVotes*100 >= t.ConfirmPercentage*total:
		return schema.AmenityStatusConfirmed
	case confirmVotes*100 < t.RemovePercentage*total:
		return schema.AmenityStatusRemoved
	default:
		return schema.AmenityStatusDisputed
	}
}

// ApplyVote returns a copy of entry with the vote counted in.
func (t StatusThresholds) ApplyVote(entry schema.AmenityStatusEntry, vote schema.VoteValue, now time.Time) schema.AmenityStatusEntry {
	entry.Votes++
	if vote == schema.VoteConfirm {
		entry.ConfirmVotes++
	} else {
		entry.DenyVotes++
	}

	entry.Percentage = Percentage(entry.ConfirmVotes, entry.Votes)
	entry.Status = t.Derive(entry.ConfirmVotes, entry.DenyVotes)
	entry.LastUpdated = now
	return entry
}
