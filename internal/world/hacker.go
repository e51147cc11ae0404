package world

// Mood is a hacker's outward disposition; it only changes their face.
type Mood uint8

// Moods.
const (
	Happy Mood = iota
	Sad
)

func (m Mood) String() string {
	switch m {
	case Happy:
		return "happy"
	case Sad:
		return "sad"
	}
	return "mood?"
}

// SitState records whether a hacker is in their chair.
type SitState uint8

// Sit states.
const (
	Sitting SitState = iota
	Standing
)

func (s SitState) String() string {
	switch s {
	case Sitting:
		return "sitting"
	case Standing:
		return "standing"
	}
	return "sit?"
}

// Position is a cell address on the render surface, column first.
type Position struct {
	Col, Row uint16
}

// Hacker is the only simulated actor: it sits at a fixed position with a face
// over a chair.
type Hacker struct {
	Mood     Mood
	Hunger   uint32 // not yet consumed by any behavior
	Sit      SitState
	Position Position
}

// NewHacker returns a happy, sitting, well fed hacker at the origin.
func NewHacker() Hacker {
	return Hacker{
		Mood: Happy,
		Sit:  Sitting,
	}
}

// Face returns the glyph drawn at the hacker's position.
func (h Hacker) Face() string {
	if h.Mood == Sad {
		return "☹️"
	}
	return "🙂"
}

// Chair returns the glyph drawn beneath the hacker's face.
func (h Hacker) Chair() string {
	if h.Sit == Standing {
		return "䷋"
	}
	return "💺"
}

// StandUp gets the hacker out of their chair; standing hackers stay standing.
func (h *Hacker) StandUp() {
	h.Sit = Standing
}
