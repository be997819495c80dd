package lander

// Cue identifies a sound the engine can trigger.
type Cue int

const (
	// CueThruster is a looping burn sound, started and stopped by the engine.
	CueThruster Cue = iota
	// CueExplosion is a one-shot crash sound.
	CueExplosion
	// CueLanding is a one-shot touchdown chime.
	CueLanding
)

// AudioSink receives fire-and-forget audio triggers from the engine.
// Implementations must never block the simulation tick; there is no feedback
// path into gameplay state. A nil sink disables audio.
type AudioSink interface {
	Play(Cue)
	Stop(Cue)
}
