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
	"sort"

	"github.com/remyleone/osm2pgsql/osm"
)

// SegmentList is the per-run segment pool. Segments are extracted from ways,
// sorted and deduplicated before ring assembly starts; after that the backing
// array is never resized, so pointers into it stay valid for the whole run.
type SegmentList struct {
	segments []Segment
}

// NewSegmentList returns an empty segment list.
func NewSegmentList() *SegmentList {
	return &SegmentList{}
}

// ExtractSegmentsFromWay appends one segment per adjacent node pair of the
// way. Pairs with identical locations (zero-length) are skipped. Returns the
// number of segments added.
func (l *SegmentList) ExtractSegmentsFromWay(way *osm.Way) int {
	added := 0
	for i := 0; i+1 < len(way.Nodes); i++ {
		a := way.Nodes[i]
		b := way.Nodes[i+1]
		if a.Location == b.Location {
			continue
		}
		l.segments = append(l.segments, NewSegment(a, b, way))
		added++
	}
	return added
}

// Sort orders the segments by their total order. Must be called before ring
// assembly so that duplicate detection and deterministic chaining work.
func (l *SegmentList) Sort() {
	sort.Slice(l.segments, func(i, j int) bool {
		return l.segments[i].Less(&l.segments[j])
	})
}

// EraseDuplicateSegments removes segments that appear an even number of
// times: two ways running over the same edge cancel each other out. Each
// removed pair is passed to report (which may be nil). The list must be
// sorted.
func (l *SegmentList) EraseDuplicateSegments(report func(seg *Segment)) {
	out := l.segments[:0]
	for i := 0; i < len(l.segments); {
		if i+1 < len(l.segments) && l.segments[i].Equal(&l.segments[i+1]) {
			if report != nil {
				report(&l.segments[i])
			}
			i += 2
			continue
		}
		out = append(out, l.segments[i])
		i++
	}
	l.segments = out
}

// Len returns the number of segments in the list.
func (l *SegmentList) Len() int { return len(l.segments) }

// Get returns the i-th segment. The pointer stays valid as long as no more
// segments are extracted.
func (l *SegmentList) Get(i int) *Segment { return &l.segments[i] }
