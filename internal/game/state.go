package game

import "time"

// Phase is the session's position in its one-way state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game-over"
	}
	return "playing"
}

// GameState is the bookkeeping the state controller owns.
type GameState struct {
	Score     int
	Phase     Phase
	LastFire  time.Duration // Session time of the last accepted shot
	LastSpawn time.Duration // Session time of the last spawned rock
	hasFired  bool
}

// IsGameOver reports whether the session has ended.
func (s *Session) IsGameOver() bool {
	return s.state.Phase == PhaseGameOver
}

// TriggerGameOver ends the session. Calling it again is a no-op.
// The ship is halted and the listener is told the final score once.
func (s *Session) TriggerGameOver() {
	if s.IsGameOver() {
		return
	}
	s.state.Phase = PhaseGameOver
	s.ship.Halt()
	s.logger.Info("game over", "score", s.state.Score, "ticks", s.ticks)
	s.listener.OnGameOver(s.state.Score)
}

// UpdateScore adds points while the session is playing and notifies the listener.
// Non-positive points and updates after game over are ignored.
func (s *Session) UpdateScore(points int) {
	if points <= 0 || s.IsGameOver() {
		return
	}
	s.state.Score += points
	s.listener.OnScoreChanged(s.state.Score)
}
