package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPairKeyOrderIndependent(t *testing.T) {
	tid := "t1"
	assert.Equal(t,
		MatchPairKey("alice", "bob", &tid),
		MatchPairKey("bob", "alice", &tid),
	)
}

func TestMatchPairKeyScopedByTournament(t *testing.T) {
	t1, t2 := "t1", "t2"
	assert.NotEqual(t,
		MatchPairKey("alice", "bob", &t1),
		MatchPairKey("alice", "bob", &t2),
	)
}

func TestMatchPairKeyCasualBucket(t *testing.T) {
	tid := "t1"
	empty := ""

	casual := MatchPairKey("alice", "bob", nil)
	assert.Equal(t, casual, MatchPairKey("alice", "bob", &empty))
	assert.NotEqual(t, casual, MatchPairKey("alice", "bob", &tid))
}

func TestMatchReviewed(t *testing.T) {
	m := Match{Status: MatchPending}
	assert.False(t, m.Reviewed())

	m.Status = MatchApproved
	assert.True(t, m.Reviewed())

	m.Status = MatchRejected
	assert.True(t, m.Reviewed())
}
