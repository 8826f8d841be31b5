package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the tick clock. Delta is the duration of the current tick.
type ClockData struct {
	Delta   time.Duration
	Elapsed time.Duration
	Ticks   uint64
}

// DT returns the tick duration in seconds.
func (c *ClockData) DT() float64 {
	return c.Delta.Seconds()
}

var Clock = donburi.NewComponentType[ClockData]()
