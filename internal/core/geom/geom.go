// Package geom provides generic 2D point, size and rectangle arithmetic.
//
// All arithmetic wraps on overflow for integer coordinate types, following
// Go's two's-complement semantics. Nothing is checked or saturated.
package geom

import (
	"fmt"
	"image"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of coordinate types the geometry types accept.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Point represents a 2D position
type Point[T Scalar] struct {
	X, Y T
}

// Size represents a 2D extent
type Size[T Scalar] struct {
	W, H T
}

// Rect is a half-open rectangle anchored at its top-left corner.
// It contains p iff TopLeft.X <= p.X < BottomRight().X and likewise for Y.
type Rect[T Scalar] struct {
	TopLeft Point[T]
	Size    Size[T]
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Sz is shorthand for Size[T]{w, h}.
func Sz[T Scalar](w, h T) Size[T] {
	return Size[T]{W: w, H: h}
}

// R builds a rectangle from its top-left corner and size.
func R[T Scalar](x, y, w, h T) Rect[T] {
	return Rect[T]{TopLeft: Pt(x, y), Size: Sz(w, h)}
}

// Add returns p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// AddSize returns p offset by s.
func (p Point[T]) AddSize(s Size[T]) Point[T] {
	return Point[T]{X: p.X + s.W, Y: p.Y + s.H}
}

// AddAssign adds q to p in place.
func (p *Point[T]) AddAssign(q Point[T]) {
	p.X += q.X
	p.Y += q.Y
}

// AddAssignSize offsets p by s in place.
func (p *Point[T]) AddAssignSize(s Size[T]) {
	p.X += s.W
	p.Y += s.H
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// IsEmpty reports whether either dimension is zero.
func (s Size[T]) IsEmpty() bool {
	var zero T
	return s.W == zero || s.H == zero
}

// Area returns W*H.
func (s Size[T]) Area() T {
	return s.W * s.H
}

func (s Size[T]) String() string {
	return fmt.Sprintf("%vx%v", s.W, s.H)
}

// BottomRight returns the exclusive bottom-right corner, TopLeft+Size.
func (r Rect[T]) BottomRight() Point[T] {
	return r.TopLeft.AddSize(r.Size)
}

// IsEmpty reports whether the rectangle covers no points.
func (r Rect[T]) IsEmpty() bool {
	return r.Size.IsEmpty()
}

// InBounds reports whether p lies inside the half-open rectangle.
func (r Rect[T]) InBounds(p Point[T]) bool {
	if p.X < r.TopLeft.X || p.Y < r.TopLeft.Y {
		return false
	}
	br := r.BottomRight()
	return p.X < br.X && p.Y < br.Y
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("%v+%v", r.TopLeft, r.Size)
}

// Image converts an integer rectangle to an image.Rectangle.
func Image(r Rect[int]) image.Rectangle {
	br := r.BottomRight()
	return image.Rect(r.TopLeft.X, r.TopLeft.Y, br.X, br.Y)
}

// FromImage converts an image.Rectangle to a Rect[int].
func FromImage(r image.Rectangle) Rect[int] {
	return R(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}
