package distanceaccumulator

import "errors"

var ErrEmptyAccumulator = errors.New("cannot get average distance, counter is zero")

// DistanceAccumulator struct that collects data about the distance traveled between stations
// + Name: label of the collected data, e.g. a station or a trip
// + Counter: counts the amount of data collected
// + TotalDistance: sum of distances traveled, in kilometers
type DistanceAccumulator struct {
	Name          string  `json:"name"`
	Counter       int     `json:"counter"`
	TotalDistance float64 `json:"total_distance"`
}

func NewDistanceAccumulator(name string) *DistanceAccumulator {
	return &DistanceAccumulator{
		Name: name,
	}
}

func (da *DistanceAccumulator) UpdateAccumulator(newDistance float64) {
	da.Counter += 1
	da.TotalDistance += newDistance
}

func (da *DistanceAccumulator) GetAverageDistance() (float64, error) {
	if da.Counter == 0 {
		return 0, ErrEmptyAccumulator
	}
	return da.TotalDistance / float64(da.Counter), nil
}
