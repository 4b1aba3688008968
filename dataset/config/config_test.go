package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{"chicago", "new york", "washington"}, cfg.GetCityNames())
	assert.Equal(t, "2006-01-02 15:04:05", cfg.TimeLayout)
	assert.Equal(t, "Trip Duration", cfg.TripColumns.Duration)
}

func TestGetCityAndPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "data"
	cfg.Cities[0].StationsFile = "/srv/stations/chicago.csv"

	city, ok := cfg.GetCity("new york")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("data", "new_york_city.csv"), cfg.GetTripsPath(city))
	assert.Equal(t, "", cfg.GetStationsPath(city))

	chicago, ok := cfg.GetCity("chicago")
	assert.True(t, ok)
	assert.Equal(t, "/srv/stations/chicago.csv", cfg.GetStationsPath(chicago))

	_, ok = cfg.GetCity("boston")
	assert.False(t, ok)
}
