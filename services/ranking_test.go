package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optcg-tracker/models"
)

func user(id, name string) models.User {
	return models.User{ID: id, Name: name}
}

func approved(p1, p2 string, result models.MatchResult) models.Match {
	return models.Match{
		Player1ID: p1,
		Player2ID: p2,
		Result:    result,
		Status:    models.MatchApproved,
	}
}

func TestComputeRankingsZeroMatches(t *testing.T) {
	rows := ComputeRankings([]models.User{user("a", "Ace")}, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Matches)
	assert.Equal(t, 0.0, rows[0].WinRate) // never division by zero
}

func TestComputeRankingsDoubleWin(t *testing.T) {
	participants := []models.User{user("a", "Ace"), user("b", "Buggy")}
	matches := []models.Match{
		approved("a", "b", models.ResultWin),
		approved("a", "b", models.ResultWin),
	}

	rows := ComputeRankings(participants, matches)
	require.Len(t, rows, 2)

	assert.Equal(t, "a", rows[0].UserID)
	assert.Equal(t, 2, rows[0].Matches)
	assert.Equal(t, 2, rows[0].Wins)
	assert.Equal(t, 0, rows[0].Losses)
	assert.Equal(t, 100.0, rows[0].WinRate)

	assert.Equal(t, "b", rows[1].UserID)
	assert.Equal(t, 2, rows[1].Matches)
	assert.Equal(t, 0, rows[1].Wins)
	assert.Equal(t, 2, rows[1].Losses)
	assert.Equal(t, 0.0, rows[1].WinRate)
}

func TestComputeRankingsResultIsRelativeToPlayer1(t *testing.T) {
	participants := []models.User{user("a", "Ace"), user("b", "Buggy")}
	// player1 lost, so the win belongs to player2
	rows := ComputeRankings(participants, []models.Match{
		approved("a", "b", models.ResultLoss),
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0].UserID)
	assert.Equal(t, 1, rows[0].Wins)
	assert.Equal(t, "a", rows[1].UserID)
	assert.Equal(t, 1, rows[1].Losses)
}

func TestComputeRankingsIgnoresUnapprovedMatches(t *testing.T) {
	participants := []models.User{user("a", "Ace"), user("b", "Buggy")}
	pending := approved("a", "b", models.ResultWin)
	pending.Status = models.MatchPending
	rejected := approved("a", "b", models.ResultWin)
	rejected.Status = models.MatchRejected

	rows := ComputeRankings(participants, []models.Match{pending, rejected})
	for _, row := range rows {
		assert.Equal(t, 0, row.Matches)
	}
}

func TestComputeRankingsSortOrder(t *testing.T) {
	participants := []models.User{
		user("a", "Ace"),
		user("b", "Buggy"),
		user("c", "Chopper"),
		user("d", "Doflamingo"),
	}
	matches := []models.Match{
		// a: 2 wins / 3 matches, b: 2 wins / 2 matches
		approved("a", "c", models.ResultWin),
		approved("a", "d", models.ResultWin),
		approved("a", "b", models.ResultLoss),
		approved("b", "c", models.ResultWin),
	}

	rows := ComputeRankings(participants, matches)
	require.Len(t, rows, 4)

	// b and a both have 2 wins; b's 100% win rate ranks first
	assert.Equal(t, "b", rows[0].UserID)
	assert.Equal(t, "a", rows[1].UserID)
	// c and d are tied at 0 wins; c has more matches played
	assert.Equal(t, "c", rows[2].UserID)
	assert.Equal(t, "d", rows[3].UserID)
}

func TestComputeRankingsTieBreakByName(t *testing.T) {
	participants := []models.User{
		user("z", "Zoro"),
		user("n", "Nami"),
	}

	rows := ComputeRankings(participants, nil)
	require.Len(t, rows, 2)
	assert.Equal(t, "Nami", rows[0].Name)
	assert.Equal(t, "Zoro", rows[1].Name)
}

func TestComputeRankingsSkipsNonParticipants(t *testing.T) {
	// "x" reported a match but is not enrolled; only b's side counts
	rows := ComputeRankings([]models.User{user("b", "Buggy")}, []models.Match{
		approved("x", "b", models.ResultWin),
	})

	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Matches)
	assert.Equal(t, 1, rows[0].Losses)
}

func TestPlayerRecord(t *testing.T) {
	matches := []models.Match{
		approved("me", "b", models.ResultWin),
		approved("c", "me", models.ResultLoss), // player2 slot, player1 lost → my win
		approved("me", "d", models.ResultLoss),
	}
	pending := approved("me", "e", models.ResultWin)
	pending.Status = models.MatchPending
	matches = append(matches, pending)

	rec := PlayerRecord("me", matches)
	assert.Equal(t, 3, rec.Matches)
	assert.Equal(t, 2, rec.Wins)
	assert.Equal(t, 1, rec.Losses)
	assert.InDelta(t, 66.67, rec.WinRate, 0.01)
}

func TestPlayerRecordNoMatches(t *testing.T) {
	rec := PlayerRecord("me", nil)
	assert.Equal(t, 0, rec.Matches)
	assert.Equal(t, 0.0, rec.WinRate)
}
