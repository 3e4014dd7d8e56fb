package core

// Status is the state machine position of a game.
type Status string

const (
	StatusRunning Status = "running"
	StatusEnded   Status = "ended"
)

// Snapshot captures the complete game state for determinism testing and the HUD.
type Snapshot struct {
	Tick   uint64
	Score  int
	Focus  WordID // Zero when nothing is focused
	Status Status
	Words  []Word
	RNG    []byte // Serialized generator position
}

// Snapshot returns a copy of the state that shares no memory with it.
func (s State) Snapshot() Snapshot {
	status := StatusRunning
	if s.ended {
		status = StatusEnded
	}
	// PCG.MarshalBinary never fails.
	rng, _ := s.pcg.MarshalBinary()

	return Snapshot{
		Tick:   s.tick,
		Score:  s.score,
		Focus:  s.focus,
		Status: status,
		Words:  append([]Word(nil), s.words...),
		RNG:    rng,
	}
}
