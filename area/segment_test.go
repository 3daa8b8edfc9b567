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
	"testing"

	"github.com/remyleone/osm2pgsql/osm"
)

func TestSegmentCanonicalOrder(t *testing.T) {
	w := &osm.Way{ID: 1}
	a := nodeRef(1, 5, 5)
	b := nodeRef(2, 0, 0)

	// Endpoints are stored smaller-location-first regardless of argument
	// order.
	s := NewSegment(a, b, w)
	if s.Start().ID != 2 {
		t.Errorf("Start().ID = %d, want 2", s.Start().ID)
	}
	if s.Stop().ID != 1 {
		t.Errorf("Stop().ID = %d, want 1", s.Stop().ID)
	}
}

func TestSegmentReverse(t *testing.T) {
	w := &osm.Way{ID: 1}
	s := NewSegment(nodeRef(1, 0, 0), nodeRef(2, 3, 4), w)

	det := s.Det()
	s.Reverse()
	if !s.IsReversed() {
		t.Error("IsReversed() = false after Reverse()")
	}
	if s.Start().ID != 2 || s.Stop().ID != 1 {
		t.Errorf("endpoints after Reverse() = %d..%d, want 2..1", s.Start().ID, s.Stop().ID)
	}
	if s.Det() != -det {
		t.Errorf("Det() after Reverse() = %d, want %d", s.Det(), -det)
	}
	s.Reverse()
	if s.Det() != det {
		t.Errorf("Det() after double Reverse() = %d, want %d", s.Det(), det)
	}
}

func TestSegmentOrderStableUnderReversal(t *testing.T) {
	w := &osm.Way{ID: 1}
	s1 := NewSegment(nodeRef(1, 0, 0), nodeRef(2, 10, 0), w)
	s2 := NewSegment(nodeRef(3, 5, 0), nodeRef(4, 10, 0), w)

	if !s1.Less(&s2) {
		t.Fatal("s1.Less(s2) = false, want true")
	}
	s1.Reverse()
	s2.Reverse()
	if !s1.Less(&s2) {
		t.Error("segment order changed under reversal")
	}
}

func TestSegmentDirectionMarks(t *testing.T) {
	w := &osm.Way{ID: 1}
	s := NewSegment(nodeRef(1, 0, 0), nodeRef(2, 1, 1), w)

	if s.IsDirectionDone() {
		t.Error("IsDirectionDone() = true for a fresh segment")
	}
	s.MarkDirectionDone()
	if !s.IsDirectionDone() {
		t.Error("IsDirectionDone() = false after MarkDirectionDone()")
	}
	s.MarkDirectionNotDone()
	if s.IsDirectionDone() {
		t.Error("IsDirectionDone() = true after MarkDirectionNotDone()")
	}
}
