// Package plot turns an unbounded snapshot time series into a bounded,
// plot-ready point series. It is pure: no I/O, no state.
package plot

import (
	"codeberg.org/varkas/amptop/internal/battery"
	"codeberg.org/varkas/amptop/internal/history"
)

// xSpan is the fixed horizontal domain of the projected points. The viewer
// anchors a 5-tick label scheme at [0,4] regardless of how many points
// survived decimation.
const xSpan = 4.0

// Point is one projected sample. X is in [0,4], Y is the raw percent in
// [0,100].
type Point struct {
	X float64
	Y float64
}

// Dominant is the majority charging state over a sampled window, used to
// color the history chart.
type Dominant string

const (
	DominantNone        Dominant = "none"
	DominantCharging    Dominant = "charging"
	DominantDischarging Dominant = "discharging"
	DominantFull        Dominant = "full"
)

// Series is the bounded projection of a snapshot sequence.
type Series struct {
	Points []Point
	// First and Last are the wall-clock timestamps of the first and last
	// sampled point, for axis labels.
	First int64
	Last  int64
	State Dominant
}

// Downsample decimates an oldest-to-newest snapshot sequence down to at most
// width points. Decimation keeps every stride-th element starting at index 0;
// skipped points are dropped, not blended. ok is false when the input is
// empty.
func Downsample(snapshots []history.Snapshot, width int) (*Series, bool) {
	if len(snapshots) == 0 {
		return nil, false
	}
	if width < 1 {
		width = 1
	}

	stride := 1
	if len(snapshots) > width {
		stride = len(snapshots) / width
	}

	var sampled []history.Snapshot
	for i := 0; i < len(snapshots); i += stride {
		sampled = append(sampled, snapshots[i])
	}

	scale := xSpan
	if len(sampled) > 1 {
		scale = xSpan / float64(len(sampled)-1)
	}

	points := make([]Point, len(sampled))
	for i, s := range sampled {
		points[i] = Point{
			X: float64(i) * scale,
			Y: s.Percent,
		}
	}

	return &Series{
		Points: points,
		First:  sampled[0].Timestamp,
		Last:   sampled[len(sampled)-1].Timestamp,
		State:  dominantState(sampled),
	}, true
}

// dominantState classifies the sampled window. The category with the
// strictly highest count wins; ties resolve by the fixed precedence
// discharging > charging > full > none.
func dominantState(sampled []history.Snapshot) Dominant {
	var charging, discharging, full int
	for _, s := range sampled {
		switch s.Status {
		case battery.StatusCharging:
			charging++
		case battery.StatusDischarging:
			discharging++
		case battery.StatusFull:
			full++
		}
	}

	switch {
	case discharging > 0 && discharging >= charging && discharging >= full:
		return DominantDischarging
	case charging > 0 && charging >= full:
		return DominantCharging
	case full > 0:
		return DominantFull
	default:
		return DominantNone
	}
}
