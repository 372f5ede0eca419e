package approval

import "math"

// Level is one rung of the approval hierarchy. Levels are ordered:
// AUTOMATIC < SUPERVISOR < MANAGER < DIRECTOR < CFO < CEO, each carrying
// the CAD threshold up to which it may authorize a payment.
type Level string

const (
	LevelAutomatic  Level = "AUTOMATIC"
	LevelSupervisor Level = "SUPERVISOR"
	LevelManager    Level = "MANAGER"
	LevelDirector   Level = "DIRECTOR"
	LevelCFO        Level = "CFO"
	LevelCEO        Level = "CEO"
)

// hierarchy in ascending authority order.
var hierarchy = []Level{
	LevelAutomatic,
	LevelSupervisor,
	LevelManager,
	LevelDirector,
	LevelCFO,
	LevelCEO,
}

var thresholdsCAD = map[Level]float64{
	LevelAutomatic:  1_000,
	LevelSupervisor: 10_000,
	LevelManager:    50_000,
	LevelDirector:   100_000,
	LevelCFO:        500_000,
	LevelCEO:        math.MaxFloat64,
}

// ThresholdCAD returns the upper bound (inclusive) this level can approve.
func (l Level) ThresholdCAD() float64 { return thresholdsCAD[l] }

func (l Level) Valid() bool {
	_, ok := thresholdsCAD[l]
	return ok
}

// LevelForAmount walks the ordered thresholds and returns the first level
// whose threshold covers the adjusted amount. Non-positive amounts need no
// human approval.
func LevelForAmount(adjustedCAD float64) Level {
	if adjustedCAD <= 0 {
		return LevelAutomatic
	}
	for _, l := range hierarchy {
		if adjustedCAD <= thresholdsCAD[l] {
			return l
		}
	}
	return LevelCEO
}

// Chain returns the full human approval sequence up to and including the
// required level. AUTOMATIC yields an empty chain.
func Chain(required Level) []Level {
	if required == LevelAutomatic {
		return nil
	}
	var out []Level
	for _, l := range hierarchy[1:] {
		out = append(out, l)
		if l == required {
			return out
		}
	}
	// Unknown level: route all the way up rather than under-approve.
	return out
}
