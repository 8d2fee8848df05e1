package sink

import (
	"math"
	"strconv"

	"github.com/matzehuels/screenruler/pkg/ruler"
)

// Tick geometry in drawing units. Every ruler uses a 10-unit minor step:
// millimeters on the cm ruler, sixteenths on the inch ruler.
const (
	tickStep  = 10
	tickWidth = 2
	barHeight = 120 // scale bar thickness, labels sit inside it
)

// tick is a mark at Pos along a scale bar, Length drawing units long.
type tick struct {
	Pos    float64
	Length float64
}

// unitTicks returns the marks of one unit span starting at 0.
func unitTicks(u ruler.Unit) []tick {
	k := u.DrawingUnits()
	n := int(k / tickStep)
	ticks := make([]tick, 0, n)
	for i := 0; i < n; i++ {
		ticks = append(ticks, tick{Pos: float64(i * tickStep), Length: tickLength(u, i)})
	}
	return ticks
}

// tickLength grades marks by how coarse a division they fall on.
func tickLength(u ruler.Unit, i int) float64 {
	if u == ruler.Inch {
		switch {
		case i%16 == 0:
			return 70
		case i%8 == 0:
			return 50
		case i%4 == 0:
			return 40
		case i%2 == 0:
			return 30
		default:
			return 20
		}
	}
	switch {
	case i%10 == 0:
		return 60
	case i%5 == 0:
		return 40
	default:
		return 25
	}
}

// ticksAlong returns every mark of unit u up to length drawing units.
func ticksAlong(u ruler.Unit, length float64) []tick {
	if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return nil
	}
	n := int(length / tickStep)
	ticks := make([]tick, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, tick{Pos: float64(i * tickStep), Length: tickLength(u, i)})
	}
	return ticks
}

// num formats a coordinate with at most two decimals.
func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
