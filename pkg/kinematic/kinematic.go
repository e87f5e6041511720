package kinematic

// This package includes the small amount of 2D math the simulation needs.

import (
	"math"
)

// Vector is a 2D vector in world units.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the sum of two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v minus o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Clamp limits value to the range [min, max]. If max < min, min wins.
func Clamp(value, min, max float64) float64 {
	if value > max {
		value = max
	}
	if value < min {
		value = min
	}
	return value
}

// Toward returns the unit vector pointing from `from` to `to` together with the distance
// between them. A zero vector is returned when the points coincide.
func Toward(from, to Vector) (Vector, float64) {
	d := to.Sub(from)
	length := d.Length()
	if length == 0 {
		return Vector{}, 0
	}
	return d.Scale(1 / length), length
}

// Displacement returns the displacement of an object moving at a constant velocity for the given time.
func Displacement(velocity Vector, time float64) Vector {
	return velocity.Scale(time)
}
