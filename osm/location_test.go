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

package osm

import (
	"testing"
)

func TestLocationRoundTrip(t *testing.T) {
	loc := LocationFromDegrees(13.3888599, 52.5170365)
	if loc.X != 133888599 {
		t.Errorf("X = %d, want 133888599", loc.X)
	}
	if loc.Y != 525170365 {
		t.Errorf("Y = %d, want 525170365", loc.Y)
	}
	if loc.Lon() != 13.3888599 {
		t.Errorf("Lon() = %v, want 13.3888599", loc.Lon())
	}
	if loc.Lat() != 52.5170365 {
		t.Errorf("Lat() = %v, want 52.5170365", loc.Lat())
	}
}

func TestLocationLess(t *testing.T) {
	cases := []struct {
		a, b Location
		want bool
	}{
		{Location{0, 0}, Location{1, 0}, true},
		{Location{1, 0}, Location{0, 0}, false},
		{Location{0, 0}, Location{0, 1}, true},
		{Location{0, 1}, Location{0, 0}, false},
		{Location{0, 0}, Location{0, 0}, false},
	}
	for _, tc := range cases {
		if got := tc.a.Less(tc.b); got != tc.want {
			t.Errorf("%v.Less(%v) = %t, want %t", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestWayIsClosed(t *testing.T) {
	closed := &Way{
		ID: 1,
		Nodes: []NodeRef{
			{ID: 1, Location: Location{0, 0}},
			{ID: 2, Location: Location{1, 0}},
			{ID: 3, Location: Location{0, 0}},
		},
	}
	if !closed.IsClosed() {
		t.Error("IsClosed() = false for a closed way")
	}

	open := &Way{
		ID: 2,
		Nodes: []NodeRef{
			{ID: 1, Location: Location{0, 0}},
			{ID: 2, Location: Location{1, 0}},
		},
	}
	if open.IsClosed() {
		t.Error("IsClosed() = true for an open way")
	}
	if (&Way{ID: 3, Nodes: closed.Nodes[:1]}).IsClosed() {
		t.Error("IsClosed() = true for a single-node way")
	}
}
