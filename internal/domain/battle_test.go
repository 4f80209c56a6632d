package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBattle_UnmarshalLooseShapes(t *testing.T) {
	payload := `{
		"_id": "b-1",
		"mode": "1v1",
		"status": "running",
		"players": ["alice@example.com", {"email": "bob@example.com", "name": "Bob"}, {"_id": "p3"}],
		"rounds": [
			{"case": "case-7"},
			{"case": {"_id": "case-8", "name": "Dream", "price": 2.5, "items": [{"name": "AK", "rarity": "Covert", "price": 10}]},
			 "rolls": [{"player": "alice@example.com", "winner": {"name": "AK", "rarity": "covert", "price": 10}}]}
		],
		"totals": {"alice@example.com": 12.34}
	}`

	var b Battle
	require.NoError(t, json.Unmarshal([]byte(payload), &b))

	assert.Equal(t, "b-1", b.ID)
	assert.Equal(t, 2, b.Mode.Players())
	assert.Equal(t, []string{"alice@example.com", "bob@example.com", "p3"}, b.PlayerKeys())

	require.Len(t, b.Rounds, 2)
	assert.Equal(t, "case-7", b.Rounds[0].CaseID)
	assert.Nil(t, b.Rounds[0].Case)

	require.NotNil(t, b.Rounds[1].Case)
	assert.Equal(t, "case-8", b.Rounds[1].CaseID)
	require.Len(t, b.Rounds[1].Case.Contents, 1)
	assert.Equal(t, RarityCovert, b.Rounds[1].Case.Contents[0].Rarity)

	require.Len(t, b.Rounds[1].Rolls, 1)
	assert.Equal(t, "alice@example.com", b.Rounds[1].Rolls[0].Player.Key())
	assert.Equal(t, Money(1000), b.Rounds[1].Rolls[0].Winner.Price)
	assert.Equal(t, Money(1234), b.Totals["alice@example.com"])
}

func TestBattleMode_Players(t *testing.T) {
	assert.Equal(t, 2, BattleMode1v1.Players())
	assert.Equal(t, 3, BattleMode1v1v1.Players())
	assert.Equal(t, 4, BattleMode1v1v1v1.Players())
	assert.False(t, BattleMode("2v2").Valid())
}
