package utils

import (
	"strconv"
	"strings"
)

// Coordinates extracted from an issue's free-text location.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// ParseCoordinates extracts coordinates from a location string. Two
// formats are recognized: the plain "lat,long" pair and the
// "Lat: x, Long: y" string the report form writes after a geolocation
// lookup. Anything else is a street address and returns false.
func ParseCoordinates(location string) (Coordinates, bool) {
	s := strings.TrimSpace(location)
	if s == "" {
		return Coordinates{}, false
	}

	s = strings.ReplaceAll(s, "Lat:", "")
	s = strings.ReplaceAll(s, "Long:", "")

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, false
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: lat, Longitude: lng}, true
}
