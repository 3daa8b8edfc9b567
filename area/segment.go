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

// Package area assembles closed polygon rings out of unordered directed
// segments extracted from way geometries, including winding canonicalization
// and the outer/inner (hole) relationship between finished rings.
package area

import (
	"github.com/remyleone/osm2pgsql/osm"
)

// Segment is a directed edge between two located endpoints, extracted from a
// way. The endpoint pair is stored canonically (smaller location first) and
// never changes; Reverse only flips which endpoint plays the start role.
// This keeps the segment total order stable under reversal.
type Segment struct {
	first, second osm.NodeRef
	way           *osm.Way
	ring          *Ring
	reversed      bool

	// Set once a ring containing this segment has been completed in the
	// current direction. Cleared by Ring.Reset when a search branch is
	// abandoned.
	directionDone bool
}

// NewSegment creates a segment between a and b.
func NewSegment(a, b osm.NodeRef, way *osm.Way) Segment {
	if b.Location.Less(a.Location) {
		a, b = b, a
	}
	return Segment{first: a, second: b, way: way}
}

// Start returns the first endpoint in the segment's current direction.
func (s *Segment) Start() osm.NodeRef {
	if s.reversed {
		return s.second
	}
	return s.first
}

// Stop returns the second endpoint in the segment's current direction.
func (s *Segment) Stop() osm.NodeRef {
	if s.reversed {
		return s.first
	}
	return s.second
}

// Way returns the way this segment was extracted from.
func (s *Segment) Way() *osm.Way { return s.way }

// Det returns the shoelace cross-product term of the segment in its current
// direction. Summed over a closed ring this is the doubled signed area.
func (s *Segment) Det() int64 {
	start, stop := s.Start(), s.Stop()
	return int64(start.Location.X)*int64(stop.Location.Y) -
		int64(stop.Location.X)*int64(start.Location.Y)
}

// Reverse swaps the endpoint roles in place.
func (s *Segment) Reverse() {
	s.reversed = !s.reversed
}

// IsReversed reports whether the segment currently runs from its larger to
// its smaller endpoint.
func (s *Segment) IsReversed() bool { return s.reversed }

// Less defines a total order over segments by their canonical endpoints:
// smaller first location, then smaller second location. Reversal does not
// affect the order.
func (s *Segment) Less(o *Segment) bool {
	if s.first.Location != o.first.Location {
		return s.first.Location.Less(o.first.Location)
	}
	return s.second.Location.Less(o.second.Location)
}

// Equal reports whether both segments connect the same two locations.
func (s *Segment) Equal(o *Segment) bool {
	return s.first.Location == o.first.Location && s.second.Location == o.second.Location
}

// MarkDirectionDone flags the segment's current direction as consumed.
func (s *Segment) MarkDirectionDone() { s.directionDone = true }

// MarkDirectionNotDone clears the consumption flag.
func (s *Segment) MarkDirectionNotDone() { s.directionDone = false }

// IsDirectionDone reports whether the current direction has been consumed.
func (s *Segment) IsDirectionDone() bool { return s.directionDone }

// Ring returns the ring currently owning this segment, or nil.
func (s *Segment) Ring() *Ring { return s.ring }

// setRing records the owning ring. The slot is single-writer: only the ring
// currently responsible for the segment may write it, last writer wins.
func (s *Segment) setRing(r *Ring) { s.ring = r }
