package durationaccumulator

import (
	"errors"
	"math"
)

const (
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

var ErrEmptyAccumulator = errors.New("cannot get average duration, counter is zero")

// DurationAccumulator struct that collects data about the duration of rides.
// + Counter: counts the amount of data collected
// + TotalDuration: sum of durations of rides, in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

// TimeParts a duration split in calendar units
type TimeParts struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) GetAverageDuration() (float64, error) {
	if da.Counter == 0 {
		return 0, ErrEmptyAccumulator
	}
	return da.TotalDuration / float64(da.Counter), nil
}

// Decompose splits total seconds in days, hours, minutes and seconds using floor division.
// Fractions of a second are dropped.
func Decompose(total float64) TimeParts {
	return TimeParts{
		Days:    int(math.Floor(total / secondsPerDay)),
		Hours:   int(math.Floor(floorMod(total, secondsPerDay) / secondsPerHour)),
		Minutes: int(math.Floor(floorMod(total, secondsPerHour) / secondsPerMinute)),
		Seconds: int(math.Floor(floorMod(total, secondsPerMinute))),
	}
}

// DecomposeMinutes splits seconds in whole minutes and the remaining whole seconds
func DecomposeMinutes(total float64) TimeParts {
	return TimeParts{
		Minutes: int(math.Floor(total / secondsPerMinute)),
		Seconds: int(math.Floor(floorMod(total, secondsPerMinute))),
	}
}

// floorMod returns x mod m with the sign of m
func floorMod(x float64, m float64) float64 {
	mod := math.Mod(x, m)
	if mod < 0 {
		mod += m
	}
	return mod
}
