// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"math"
	"sort"

	"github.com/theDahunsiDavid/Polly-API/models"
)

// ComputeWinner returns the option with the most votes, or nil when no
// votes have been cast at all. On a tie the option appearing first in
// payload order wins.
//
// The result is a copy; mutating it does not touch the input slice.
func ComputeWinner(results []models.OptionResult) *models.OptionResult {
	maxVotes := 0
	var winners []models.OptionResult

	for _, option := range results {
		if option.VoteCount > maxVotes {
			maxVotes = option.VoteCount
			winners = []models.OptionResult{option}
		} else if option.VoteCount == maxVotes && option.VoteCount > 0 {
			winners = append(winners, option)
		}
	}

	if len(winners) == 0 || maxVotes == 0 {
		return nil
	}
	winner := winners[0]
	return &winner
}

// ComputeStatistics derives the aggregate view of a poll's results:
// total votes, per-option percentage shares, and the winner.
//
// Rules:
//  1. Percentages are vote share rounded to one decimal; 0 across the
//     board when no votes exist (never a division by zero).
//  2. Options are sorted by vote count descending. The sort is stable, so
//     equal counts keep their payload order.
//  3. Winner is the strictly highest count, first in payload order on a
//     tie, and nil when the poll has no votes.
func ComputeStatistics(pollID int, results models.PollResults) models.Statistics {
	stats := models.Statistics{
		PollID:   pollID,
		Question: results.Question,
		Options:  []models.OptionPercentage{},
	}
	if len(results.Results) == 0 {
		return stats
	}

	totalVotes := 0
	for _, option := range results.Results {
		totalVotes += option.VoteCount
	}
	stats.TotalVotes = totalVotes
	stats.OptionsCount = len(results.Results)

	maxVotes := 0
	var winner *models.OptionPercentage
	for _, option := range results.Results {
		percentage := 0.0
		if totalVotes > 0 {
			percentage = round1(float64(option.VoteCount) / float64(totalVotes) * 100)
		}
		entry := models.OptionPercentage{OptionResult: option, Percentage: percentage}
		stats.Options = append(stats.Options, entry)

		if option.VoteCount > maxVotes {
			maxVotes = option.VoteCount
			w := entry
			winner = &w
		}
	}

	sort.SliceStable(stats.Options, func(i, j int) bool {
		return stats.Options[i].VoteCount > stats.Options[j].VoteCount
	})

	if maxVotes > 0 {
		stats.Winner = winner
	}
	return stats
}

// round1 rounds to one decimal place, halves away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
