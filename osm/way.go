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

// Way is an ordered list of node references. It is the provenance unit for
// segments: every segment remembers the way it was extracted from.
type Way struct {
	ID    int64
	Nodes []NodeRef
	Tags  map[string]string
}

// IsClosed reports whether the way's first and last node share a location.
func (w *Way) IsClosed() bool {
	if len(w.Nodes) < 2 {
		return false
	}
	return w.Nodes[0].Location == w.Nodes[len(w.Nodes)-1].Location
}
