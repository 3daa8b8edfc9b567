// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package area

import (
	"math"

	"github.com/remyleone/osm2pgsql/osm"
)

// Bounds is an axis-aligned bounding box in fixed-point coordinate units.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// ContainsBounds reports whether o lies entirely inside b.
func (b Bounds) ContainsBounds(o Bounds) bool {
	return b.MinX <= o.MinX && b.MinY <= o.MinY &&
		b.MaxX >= o.MaxX && b.MaxY >= o.MaxY
}

// segmentCoords de-interleaves the ring's segment endpoints into SoA slices
// for the batch kernels.
func (r *Ring) segmentCoords() (x0, y0, x1, y1 []float64) {
	n := len(r.segments)
	x0 = make([]float64, n)
	y0 = make([]float64, n)
	x1 = make([]float64, n)
	y1 = make([]float64, n)
	for i, seg := range r.segments {
		x0[i] = float64(seg.Start().Location.X)
		y0[i] = float64(seg.Start().Location.Y)
		x1[i] = float64(seg.Stop().Location.X)
		y1[i] = float64(seg.Stop().Location.Y)
	}
	return x0, y0, x1, y1
}

// Area returns the absolute area of the closed ring in fixed-point
// coordinate units, computed as half the batched shoelace sum.
func (r *Ring) Area() float64 {
	x0, y0, x1, y1 := r.segmentCoords()
	return math.Abs(BaseSumDets(x0, y0, x1, y1)) / 2
}

// Bounds returns the ring's bounding box.
func (r *Ring) Bounds() Bounds {
	x0, y0, x1, y1 := r.segmentCoords()
	// Segment stops repeat the next segment's start, so the start coordinates
	// alone cover every vertex of a closed ring. Open rings additionally need
	// the final stop, so both streams are scanned.
	minX0, maxX0 := BaseCoordMinMax(x0)
	minX1, maxX1 := BaseCoordMinMax(x1)
	minY0, maxY0 := BaseCoordMinMax(y0)
	minY1, maxY1 := BaseCoordMinMax(y1)
	return Bounds{
		MinX: math.Min(minX0, minX1),
		MinY: math.Min(minY0, minY1),
		MaxX: math.Max(maxX0, maxX1),
		MaxY: math.Max(maxY0, maxY1),
	}
}

// containsLocation reports whether loc lies strictly inside the closed ring,
// using an exact integer ray cast toward positive X with half-open edges.
func (r *Ring) containsLocation(loc osm.Location) bool {
	inside := false
	for _, seg := range r.segments {
		p1 := seg.Start().Location
		p2 := seg.Stop().Location
		if (p1.Y > loc.Y) == (p2.Y > loc.Y) {
			continue
		}
		// Side of the edge the point is on, exact in int64.
		d := int64(p2.X-p1.X)*int64(loc.Y-p1.Y) - int64(loc.X-p1.X)*int64(p2.Y-p1.Y)
		if p2.Y > p1.Y {
			if d > 0 {
				inside = !inside
			}
		} else {
			if d < 0 {
				inside = !inside
			}
		}
	}
	return inside
}
