package geo

import "fmt"

// Position is a WGS84 point.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PositionErrorKind categorizes why a position could not be acquired.
type PositionErrorKind string

const (
	PositionDenied      PositionErrorKind = "denied"
	PositionUnavailable PositionErrorKind = "unavailable"
	PositionTimeout     PositionErrorKind = "timeout"
	PositionOther       PositionErrorKind = "other"
)

// PositionError is recoverable by user action and surfaced as a message.
type PositionError struct {
	Kind    PositionErrorKind
	Message string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position error (%s): %s", e.Kind, e.Message)
}

// Provider supplies the user's current position.
type Provider interface {
	CurrentPosition() (Position, error)
}

// StaticProvider always returns a fixed position. Used as the configured
// fallback when a request carries no coordinates, and by the warmer job.
type StaticProvider struct {
	pos Position
}

func NewStaticProvider(lat, lng float64) *StaticProvider {
	return &StaticProvider{pos: Position{Lat: lat, Lng: lng}}
}

func (p *StaticProvider) CurrentPosition() (Position, error) {
	return p.pos, nil
}
