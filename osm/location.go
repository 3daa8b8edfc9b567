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

// Package osm holds the minimal OpenStreetMap element model needed by the
// area assembly code: fixed-point locations, node references and ways.
package osm

import (
	"fmt"
	"math"
)

// coordinatePrecision is the fixed-point scale factor for coordinates.
// One unit is 1e-7 degrees, which is about 1cm at the equator.
const coordinatePrecision = 10000000

// Location is a WGS84 coordinate stored as fixed-point integers.
// X is the scaled longitude, Y the scaled latitude.
type Location struct {
	X, Y int32
}

// LocationFromDegrees creates a Location from floating point
// longitude/latitude degrees, rounding to the fixed-point grid.
func LocationFromDegrees(lon, lat float64) Location {
	return Location{
		X: int32(math.Round(lon * coordinatePrecision)),
		Y: int32(math.Round(lat * coordinatePrecision)),
	}
}

// Lon returns the longitude in degrees.
func (l Location) Lon() float64 { return float64(l.X) / coordinatePrecision }

// Lat returns the latitude in degrees.
func (l Location) Lat() float64 { return float64(l.Y) / coordinatePrecision }

// Less defines a total order over locations: by X, then by Y.
func (l Location) Less(o Location) bool {
	if l.X != o.X {
		return l.X < o.X
	}
	return l.Y < o.Y
}

func (l Location) String() string {
	return fmt.Sprintf("(%g,%g)", l.Lon(), l.Lat())
}

// NodeRef is a reference to a node: its ID and its resolved location.
type NodeRef struct {
	ID       int64
	Location Location
}
