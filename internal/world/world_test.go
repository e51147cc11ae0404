package world_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/mister-walter/HackathonTrail/internal/world"
)

func TestHacker_glyphs(t *testing.T) {
	faces := map[string]Mood{}
	for _, m := range []Mood{Happy, Sad} {
		h := NewHacker()
		h.Mood = m
		assert.Equal(t, h.Face(), h.Face(), "face for %v", m)
		faces[h.Face()] = m
	}
	assert.Len(t, faces, 2, "expected one face per mood")

	chairs := map[string]SitState{}
	for _, s := range []SitState{Sitting, Standing} {
		h := NewHacker()
		h.Sit = s
		chairs[h.Chair()] = s
	}
	assert.Len(t, chairs, 2, "expected one chair per sit state")

	h := NewHacker()
	h.Sit = Standing
	h.Mood = Sad
	assert.Equal(t, "☹️", h.Face())
	assert.Equal(t, "䷋", h.Chair())
}

func TestHacker_StandUp(t *testing.T) {
	h := NewHacker()
	assert.Equal(t, Sitting, h.Sit)
	h.StandUp()
	assert.Equal(t, Standing, h.Sit)
	h.StandUp()
	assert.Equal(t, Standing, h.Sit, "standing up again keeps standing")
}

func TestGameState_First(t *testing.T) {
	st := NewGameState()
	_, err := st.First()
	assert.ErrorIs(t, err, ErrNoHackers)

	h := NewHacker()
	h.Position = Position{Col: 5, Row: 5}
	assert.Equal(t, 0, st.Spawn(h))
	assert.Equal(t, 1, st.Spawn(NewHacker()))

	first, err := st.First()
	require.NoError(t, err)
	first.StandUp()
	assert.Equal(t, Standing, st.Hackers[0].Sit, "First must address the stored hacker")
	assert.Equal(t, Sitting, st.Hackers[1].Sit)
}

func TestGameState_Clone(t *testing.T) {
	st := NewGameState()
	st.Spawn(NewHacker())
	dup := st.Clone()
	dup.Hackers[0].StandUp()
	dup.Spawn(NewHacker())
	assert.Equal(t, Sitting, st.Hackers[0].Sit)
	assert.Len(t, st.Hackers, 1)
	assert.Equal(t, "time=0 money=0 weather=clear hackers=[happy/sitting@0,0]", st.String())
}

func TestGameState_roundTrip(t *testing.T) {
	st := NewGameState()
	for i, m := range []Mood{Sad, Happy, Sad} {
		h := NewHacker()
		h.Mood = m
		h.Hunger = uint32(i * 3)
		h.Position = Position{Col: uint16(i), Row: uint16(2 * i)}
		if i == 1 {
			h.StandUp()
		}
		st.Spawn(h)
	}
	st.Weather = Hail
	st.Time, st.Money = 7, 11

	buf, err := json.Marshal(st)
	require.NoError(t, err)
	var back GameState
	require.NoError(t, json.Unmarshal(buf, &back))
	assert.Equal(t, st, back)
}
