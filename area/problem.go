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

	"github.com/remyleone/osm2pgsql/osm"
)

// ErrInvalidGeometry is returned when the segments of a feature can not be
// assembled into closed rings.
var ErrInvalidGeometry = errors.New("area: invalid geometry")

// ProblemType classifies an assembly problem.
type ProblemType int

const (
	// ProblemDuplicateSegment marks an edge traced by more than one way.
	// The duplicated pair cancels out and assembly continues.
	ProblemDuplicateSegment ProblemType = iota

	// ProblemRingNotClosed marks a chain that never looped back to its
	// start. The whole feature is invalid.
	ProblemRingNotClosed
)

func (t ProblemType) String() string {
	switch t {
	case ProblemDuplicateSegment:
		return "duplicate segment"
	case ProblemRingNotClosed:
		return "ring not closed"
	}
	return "unknown"
}

// Problem describes one defect found while assembling a feature. The way IDs
// identify the source geometry for error reporting.
type Problem struct {
	Type     ProblemType
	Location osm.Location
	WayIDs   []int64
}
