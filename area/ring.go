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
	"fmt"
	"strings"

	"github.com/remyleone/osm2pgsql/osm"
)

// ringNumbering is the optional run-scoped diagnostics counter. When enabled,
// every new ring gets a monotonically increasing number that shows up in its
// debug dump. Assembly is single-threaded, so a plain counter suffices.
var ringNumbering struct {
	enabled bool
	next    int64
}

// EnableRingNumbering turns on ring numbering and restarts the counter.
// Call it at the start of an assembly run.
func EnableRingNumbering() {
	ringNumbering.enabled = true
	ringNumbering.next = 0
}

// DisableRingNumbering turns ring numbering off.
func DisableRingNumbering() {
	ringNumbering.enabled = false
}

// Ring is a connected chain of segments in the process of being assembled
// into a polygon boundary. It grows at the back, can be reversed or spliced
// with another ring, and tracks its winding through a running signed-area
// sum. Once closed and assigned a role it is either an outer boundary or a
// hole of exactly one outer ring.
//
// A ring never owns its segments; it holds references into the per-run
// SegmentList pool.
type Ring struct {
	segments []*Segment

	// If this is an outer ring, the rings that are holes of it.
	inner []*Ring

	// If this is an inner ring, the ring it is a hole of.
	outer *Ring

	// The smallest segment seen so far, kept current on every append.
	minSegment *Segment

	// Running sum of segment det terms: the doubled signed area once the
	// ring is closed.
	sum int64

	num int64
}

// NewRing creates a ring containing the single seed segment.
func NewRing(seg *Segment) *Ring {
	r := &Ring{minSegment: seg}
	if ringNumbering.enabled {
		ringNumbering.next++
		r.num = ringNumbering.next
	}
	r.AddSegmentBack(seg)
	return r
}

// AddSegmentBack appends a segment to the end of the ring, taking ownership
// of it and updating the minimal segment and the signed-area sum.
func (r *Ring) AddSegmentBack(seg *Segment) {
	if seg == nil {
		panic("area: nil segment appended to ring")
	}
	if seg.Less(r.minSegment) {
		r.minSegment = seg
	}
	r.segments = append(r.segments, seg)
	seg.setRing(r)
	r.sum += seg.Det()
}

// MinSegment returns the smallest segment, under the segment order, over all
// segments ever appended to this ring.
func (r *Ring) MinSegment() *Segment { return r.minSegment }

// Segments returns the ring's segments in traversal order.
func (r *Ring) Segments() []*Segment { return r.segments }

// OuterRing returns the ring this ring is a hole of, or nil.
func (r *Ring) OuterRing() *Ring { return r.outer }

// SetOuterRing marks this ring as a hole of outer. A ring that already has
// holes of its own can not itself become a hole.
func (r *Ring) SetOuterRing(outer *Ring) {
	if outer == nil {
		panic("area: nil outer ring")
	}
	if len(r.inner) != 0 {
		panic("area: ring with inner rings can not become an inner ring")
	}
	r.outer = outer
}

// InnerRings returns the rings that are holes of this ring.
func (r *Ring) InnerRings() []*Ring { return r.inner }

// AddInnerRing records ring as a hole of this ring. A ring that is itself a
// hole can not gain holes.
func (r *Ring) AddInnerRing(ring *Ring) {
	if ring == nil {
		panic("area: nil inner ring")
	}
	if r.outer != nil {
		panic("area: inner ring can not have inner rings")
	}
	r.inner = append(r.inner, ring)
}

// IsOuter reports whether this ring plays the outer role, which is the case
// exactly when it is not a hole of another ring.
func (r *Ring) IsOuter() bool { return r.outer == nil }

// StartNodeRef returns the first node of the ring's first segment.
func (r *Ring) StartNodeRef() osm.NodeRef { return r.segments[0].Start() }

// StopNodeRef returns the last node of the ring's last segment.
func (r *Ring) StopNodeRef() osm.NodeRef { return r.segments[len(r.segments)-1].Stop() }

// Closed reports whether the chain loops back on itself, comparing the first
// and last locations. Closure is a derived check: appending a non-matching
// segment is not an error here.
func (r *Ring) Closed() bool {
	return r.StartNodeRef().Location == r.StopNodeRef().Location
}

// Reverse flips the traversal direction: every segment is reversed in place,
// the segment order is reversed and the signed-area sum changes sign.
func (r *Ring) Reverse() {
	for _, seg := range r.segments {
		seg.Reverse()
	}
	for i, j := 0, len(r.segments)-1; i < j; i, j = i+1, j-1 {
		r.segments[i], r.segments[j] = r.segments[j], r.segments[i]
	}
	r.sum = -r.sum
}

// MarkDirectionDone flags the current direction of every segment as consumed.
func (r *Ring) MarkDirectionDone() {
	for _, seg := range r.segments {
		seg.MarkDirectionDone()
	}
}

// IsClockwise reports the ring's winding. A degenerate zero-area ring
// classifies as clockwise; downstream containment logic relies on this
// tie-break.
func (r *Ring) IsClockwise() bool { return r.sum <= 0 }

// Sum returns the running signed-area sum (the doubled signed area once the
// ring is closed).
func (r *Ring) Sum() int64 { return r.sum }

// FixDirection canonicalizes the winding for the ring's role: outer rings
// end up counter-clockwise (positive sum), inner rings clockwise. It must be
// called after the ring is closed and its role is settled; if the role
// changes later the caller has to fix the direction again.
func (r *Ring) FixDirection() {
	if r.IsClockwise() == r.IsOuter() {
		r.Reverse()
	}
}

// JoinForward splices other onto the end of this ring, keeping the order and
// direction of its segments. Use when the chains meet tail-to-head.
func (r *Ring) JoinForward(other *Ring) {
	for _, seg := range other.segments {
		r.AddSegmentBack(seg)
	}
}

// JoinBackward splices other onto the end of this ring with its traversal
// order reversed and each segment individually flipped. Use when the chains
// grow toward each other and meet head-to-head.
func (r *Ring) JoinBackward(other *Ring) {
	for i := len(other.segments) - 1; i >= 0; i-- {
		seg := other.segments[i]
		seg.Reverse()
		r.AddSegmentBack(seg)
	}
}

// Reset undoes nesting and consumption state so the driver can retry a
// different combination: inner/outer links are cleared and every segment's
// direction flag is unset. Segment membership, order and the signed-area sum
// are left untouched.
func (r *Ring) Reset() {
	r.inner = r.inner[:0]
	r.outer = nil
	for _, seg := range r.segments {
		seg.MarkDirectionNotDone()
	}
}

// CollectWays adds the distinct ways contributing segments to this ring to
// the given set.
func (r *Ring) CollectWays(ways map[*osm.Way]struct{}) {
	for _, seg := range r.segments {
		ways[seg.Way()] = struct{}{}
	}
}

// String renders the ring as its node ID sequence with an OUTER/INNER tag.
// Debug aid only; the format is not stable.
func (r *Ring) String() string {
	var b strings.Builder
	if r.num != 0 {
		fmt.Fprintf(&b, "Ring #%d [", r.num)
	} else {
		b.WriteString("Ring [")
	}
	if len(r.segments) != 0 {
		fmt.Fprintf(&b, "%d", r.segments[0].Start().ID)
	}
	for _, seg := range r.segments {
		fmt.Fprintf(&b, ",%d", seg.Stop().ID)
	}
	b.WriteString("]-")
	if r.IsOuter() {
		b.WriteString("OUTER")
	} else {
		b.WriteString("INNER")
	}
	return b.String()
}
