package chat

import (
	"fmt"
	"strconv"
	"strings"

	"eventbot/internal/domain/entities"
)

// FormatLocation renders the location union for chat display. Coordinate
// locations get a maps link; address text passes through verbatim.
func FormatLocation(l entities.Location) string {
	switch l.Kind {
	case entities.LocationAddress:
		return l.Address
	case entities.LocationCoordinates:
		lat := strconv.FormatFloat(l.Lat, 'f', -1, 64)
		lon := strconv.FormatFloat(l.Lon, 'f', -1, 64)
		return fmt.Sprintf("%s, %s (https://maps.google.com/?q=%s,%s)", lat, lon, lat, lon)
	}
	return ""
}

// ParseCoordinates recognizes a bare "lat, lon" pair. Inputs that are not
// two numbers in range are not coordinates and fall through to address text.
func ParseCoordinates(s string) (lat, lon float64, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}
