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
	"errors"
	"fmt"
	"sort"

	"github.com/remyleone/osm2pgsql/osm"
)

// AssemblerOptions controls the behavior of an Assembler.
type AssemblerOptions struct {
	// DebugRingNumbers enables run-scoped ring numbering in debug dumps.
	DebugRingNumbers bool
}

// Assembler builds closed, correctly wound polygon rings from the ways of
// one area feature. It is single-use and single-threaded: feed ways with
// AddWay, then call Assemble once.
type Assembler struct {
	opts      AssemblerOptions
	list      *SegmentList
	problems  []Problem
	assembled bool
}

// NewAssembler creates an assembler with the given options.
func NewAssembler(opts AssemblerOptions) *Assembler {
	return &Assembler{
		opts: opts,
		list: NewSegmentList(),
	}
}

// AddWay extracts the way's segments into the assembly pool.
func (a *Assembler) AddWay(way *osm.Way) {
	if a.assembled {
		panic("area: AddWay after Assemble")
	}
	a.list.ExtractSegmentsFromWay(way)
}

// Problems returns the defects recorded during assembly.
func (a *Assembler) Problems() []Problem {
	return a.problems
}

// Assemble chains the pooled segments into rings, resolves outer/inner
// nesting and canonicalizes windings. It returns the outer rings; holes are
// reachable through InnerRings. If any chain fails to close, all rings are
// reset and ErrInvalidGeometry is returned.
func (a *Assembler) Assemble() ([]*Ring, error) {
	if a.assembled {
		return nil, errors.New("area: assembler already used")
	}
	a.assembled = true

	if a.opts.DebugRingNumbers {
		EnableRingNumbering()
		defer DisableRingNumbering()
	}

	a.list.Sort()
	a.list.EraseDuplicateSegments(func(seg *Segment) {
		a.problems = append(a.problems, Problem{
			Type:     ProblemDuplicateSegment,
			Location: seg.Start().Location,
			WayIDs:   []int64{seg.Way().ID},
		})
	})
	if a.list.Len() == 0 {
		return nil, nil
	}

	closed, open := a.buildRings()
	if len(open) != 0 {
		// Failed branch: undo nesting and consumption marks so the caller
		// can re-drive the same segment pool.
		for _, r := range closed {
			r.Reset()
		}
		for _, r := range open {
			r.Reset()
			a.problems = append(a.problems, Problem{
				Type:     ProblemRingNotClosed,
				Location: r.StopNodeRef().Location,
				WayIDs:   collectWayIDs(r),
			})
		}
		return nil, fmt.Errorf("%w: %d open ring(s)", ErrInvalidGeometry, len(open))
	}

	a.assignNesting(closed)
	for _, r := range closed {
		r.FixDirection()
	}

	var outers []*Ring
	for _, r := range closed {
		if r.IsOuter() {
			outers = append(outers, r)
		}
	}
	return outers, nil
}

// buildRings scans the sorted segments once, growing open rings at their
// stop end and splicing rings whose ends meet.
func (a *Assembler) buildRings() (closed, open []*Ring) {
	for i := 0; i < a.list.Len(); i++ {
		seg := a.list.Get(i)

		var r *Ring
		if r = openRingEndingAt(open, seg.Start().Location); r != nil {
			r.AddSegmentBack(seg)
		} else if r = openRingEndingAt(open, seg.Stop().Location); r != nil {
			seg.Reverse()
			r.AddSegmentBack(seg)
		} else {
			r = NewRing(seg)
			open = append(open, r)
		}

		for {
			if r.Closed() {
				r.MarkDirectionDone()
				open = removeRing(open, r)
				closed = append(closed, r)
				break
			}
			joined, absorbed := spliceRings(open, r)
			if joined == nil {
				break
			}
			open = removeRing(open, absorbed)
			r = joined
		}
	}
	return closed, open
}

// spliceRings looks for an open ring whose end meets an end of r and joins
// the two. It returns the surviving ring and the absorbed one, or nil if no
// ends meet.
func spliceRings(open []*Ring, r *Ring) (joined, absorbed *Ring) {
	for _, other := range open {
		if other == r {
			continue
		}
		switch {
		case r.StopNodeRef().Location == other.StartNodeRef().Location:
			// Tail-to-head.
			r.JoinForward(other)
			return r, other
		case r.StopNodeRef().Location == other.StopNodeRef().Location:
			// Head-to-head: the absorbed side must be flipped.
			r.JoinBackward(other)
			return r, other
		case r.StartNodeRef().Location == other.StopNodeRef().Location:
			other.JoinForward(r)
			return other, r
		case r.StartNodeRef().Location == other.StartNodeRef().Location:
			// Start-to-start: reverse r, then it's tail-to-head.
			r.Reverse()
			r.JoinForward(other)
			return r, other
		}
	}
	return nil, nil
}

// assignNesting determines which rings are holes of which. Candidates are
// prefiltered by bounding box, decided by an exact ray cast from the start of
// the ring's minimal segment, and the containing ring with the smallest
// absolute area becomes the direct parent. The parity rule applies: rings at
// odd nesting depth are holes, rings at even depth are outer rings again.
func (a *Assembler) assignNesting(rings []*Ring) {
	if len(rings) < 2 {
		return
	}

	bounds := make([]Bounds, len(rings))
	for i, r := range rings {
		bounds[i] = r.Bounds()
	}

	parent := make([]int, len(rings))
	for i, r := range rings {
		parent[i] = -1
		// The smaller endpoint of the minimal segment is the ring's
		// leftmost-lowest vertex, regardless of segment direction.
		minSeg := r.MinSegment()
		probe := minSeg.Start().Location
		if minSeg.Stop().Location.Less(probe) {
			probe = minSeg.Stop().Location
		}
		best := int64(-1)
		for j, other := range rings {
			if i == j || !bounds[j].ContainsBounds(bounds[i]) {
				continue
			}
			if !other.containsLocation(probe) {
				continue
			}
			area := other.Sum()
			if area < 0 {
				area = -area
			}
			if best < 0 || area < best {
				parent[i] = j
				best = area
			}
		}
	}

	depth := func(i int) int {
		d := 0
		for c := parent[i]; c >= 0; c = parent[c] {
			d++
			if d > len(rings) {
				break
			}
		}
		return d
	}

	for i, r := range rings {
		if parent[i] < 0 || depth(i)%2 == 0 {
			continue
		}
		outer := rings[parent[i]]
		r.SetOuterRing(outer)
		outer.AddInnerRing(r)
	}
}

func openRingEndingAt(open []*Ring, loc osm.Location) *Ring {
	for _, r := range open {
		if r.StopNodeRef().Location == loc {
			return r
		}
	}
	return nil
}

func removeRing(rings []*Ring, r *Ring) []*Ring {
	for i, cand := range rings {
		if cand == r {
			return append(rings[:i], rings[i+1:]...)
		}
	}
	return rings
}

func collectWayIDs(r *Ring) []int64 {
	ways := make(map[*osm.Way]struct{})
	r.CollectWays(ways)
	ids := make([]int64, 0, len(ways))
	for w := range ways {
		ids = append(ids, w.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
