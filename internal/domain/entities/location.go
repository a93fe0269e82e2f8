package entities

// LocationKind discriminates the two location variants.
type LocationKind string

const (
	LocationAddress     LocationKind = "address"
	LocationCoordinates LocationKind = "coordinates"
)

// Location is a tagged union: exactly one of the address text or the
// coordinate pair is set once the union is finalized.
type Location struct {
	Kind    LocationKind
	Address string
	Lat     float64
	Lon     float64
}

// AddressLocation builds the address variant.
func AddressLocation(address string) Location {
	return Location{Kind: LocationAddress, Address: address}
}

// CoordinateLocation builds the coordinate variant.
func CoordinateLocation(lat, lon float64) Location {
	return Location{Kind: LocationCoordinates, Lat: lat, Lon: lon}
}

// IsSet reports whether the union holds a variant.
func (l Location) IsSet() bool {
	return l.Kind == LocationAddress || l.Kind == LocationCoordinates
}
