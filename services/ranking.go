package services

import (
	"sort"

	"optcg-tracker/models"
)

// RankingRow is one participant's line in a tournament ranking.
type RankingRow struct {
	UserID  string  `json:"user_id"`
	Name    string  `json:"name"`
	Matches int     `json:"matches"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"win_rate"`
}

// ComputeRankings folds a tournament's APPROVED matches into per-participant
// records. The match result is relative to player1: WIN means player1 won.
// Matches involving non-participants (e.g., players removed after reporting)
// only count for the side that is still enrolled.
//
// Sort order: wins desc, win rate desc, matches desc, then name asc so equal
// records come out in a deterministic order.
func ComputeRankings(participants []models.User, matches []models.Match) []RankingRow {
	rows := make(map[string]*RankingRow, len(participants))
	for _, u := range participants {
		rows[u.ID] = &RankingRow{UserID: u.ID, Name: u.Name}
	}

	for _, m := range matches {
		if m.Status != models.MatchApproved {
			continue
		}
		if row, ok := rows[m.Player1ID]; ok {
			row.Matches++
			if m.Result == models.ResultWin {
				row.Wins++
			} else {
				row.Losses++
			}
		}
		if row, ok := rows[m.Player2ID]; ok {
			row.Matches++
			if m.Result == models.ResultLoss {
				row.Wins++
			} else {
				row.Losses++
			}
		}
	}

	list := make([]RankingRow, 0, len(rows))
	for _, row := range rows {
		if row.Matches > 0 {
			row.WinRate = float64(row.Wins) / float64(row.Matches) * 100
		}
		list = append(list, *row)
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		if a.Matches != b.Matches {
			return a.Matches > b.Matches
		}
		return a.Name < b.Name
	})
	return list
}

// PlayerRecord folds a player's approved matches into a single record,
// regardless of tournament. Used for the dashboard stats.
func PlayerRecord(userID string, matches []models.Match) RankingRow {
	row := RankingRow{UserID: userID}
	for _, m := range matches {
		if m.Status != models.MatchApproved {
			continue
		}
		switch userID {
		case m.Player1ID:
			row.Matches++
			if m.Result == models.ResultWin {
				row.Wins++
			} else {
				row.Losses++
			}
		case m.Player2ID:
			row.Matches++
			if m.Result == models.ResultLoss {
				row.Wins++
			} else {
				row.Losses++
			}
		}
	}
	if row.Matches > 0 {
		row.WinRate = float64(row.Wins) / float64(row.Matches) * 100
	}
	return row
}
