package linmap

import "linmap-go/x/mathx"

// Value ranges of the MIDI messages and controllers the mapper is used with.
var (
	CC7         = Range[int]{Min: 0, Max: 127}
	Program     = Range[int]{Min: 0, Max: 127}
	Channel     = Range[int]{Min: 0, Max: 15}
	PitchBend14 = Range[int]{Min: 0, Max: 0x3FFF}
	StickAxis   = Range[int]{Min: -32768, Max: 32767}
)

// PitchBendCentre is the 14-bit "no bend" value.
const PitchBendCentre = 0x40 << 7

const stickDeadZone = 10

// StickToPitchBend converts a signed 16-bit thumbstick reading to a 14-bit
// pitch bend value. Readings within the dead zone around centre snap to
// PitchBendCentre.
func StickToPitchBend(v int) int {
	v = mathx.Clamp(v, StickAxis.Min, StickAxis.Max)
	d := v / 4
	if d > -stickDeadZone && d < stickDeadZone {
		d = 0
	}
	return mathx.Clamp(d+PitchBendCentre, PitchBend14.Min, PitchBend14.Max)
}

// PitchBendBytes splits a 14-bit bend into its 7-bit data bytes.
func PitchBendBytes(v int) (lsb, msb byte) {
	return byte(v & 0x7F), byte((v >> 7) & 0x7F)
}
