package core

// Cue identifies a sound effect requested by the simulation.
// The simulation never plays audio itself; hosts consume cues from StepResult.
type Cue uint8

const (
	CueBangLarge Cue = iota
	CueBangMedium
	CueBangSmall
	CueBeat1
	CueBeat2
	CueExtraShip
	CueFire
	CueSaucerLarge
	CueSaucerSmall
	CueThrust

	CueCount
)

var cueNames = [CueCount]string{
	"bang_large",
	"bang_medium",
	"bang_small",
	"beat1",
	"beat2",
	"extra_ship",
	"fire",
	"saucer_large",
	"saucer_small",
	"thrust",
}

// String returns the cue's snake_case name.
func (c Cue) String() string {
	if c >= CueCount {
		return "unknown"
	}
	return cueNames[c]
}
