package model

import (
	"encoding/json"
	"math"
)

// BBox represents a bounding box in page coordinates with the origin at the
// top-left corner (Y increases downward, matching reading order).
type BBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// NewBBox creates a bounding box from edge coordinates
func NewBBox(left, top, right, bottom float64) BBox {
	return BBox{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent
func (b BBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent
func (b BBox) Height() float64 {
	return b.Bottom - b.Top
}

// IsZero returns true if all four edges are zero
func (b BBox) IsZero() bool {
	return b.Left == 0 && b.Top == 0 && b.Right == 0 && b.Bottom == 0
}

// Union returns the smallest box covering both boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		Left:   math.Min(b.Left, other.Left),
		Top:    math.Min(b.Top, other.Top),
		Right:  math.Max(b.Right, other.Right),
		Bottom: math.Max(b.Bottom, other.Bottom),
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Right && y >= b.Top && y <= b.Bottom
}

// MarshalJSON encodes the box as the four-float array [left, top, right, bottom]
func (b BBox) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{b.Left, b.Top, b.Right, b.Bottom})
}

// UnmarshalJSON decodes the four-float array form
func (b *BBox) UnmarshalJSON(data []byte) error {
	var edges [4]float64
	if err := json.Unmarshal(data, &edges); err != nil {
		return err
	}
	b.Left, b.Top, b.Right, b.Bottom = edges[0], edges[1], edges[2], edges[3]
	return nil
}
