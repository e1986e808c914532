/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package layout holds the named zone-arrangement templates. Each template
// deterministically generates the initial zone geometry for a section;
// applying one replaces the section's zone list wholesale.
package layout

import (
	"strconv"

	"webtoonflow/internal/domain"
)

// cell is a template slot in percent of the section box.
type cell struct{ x, y, w, h float64 }

// templates maps each layout type to its slots. The diagonal pair overlaps
// on purpose; it is a composition device, not a tiling.
var templates = map[domain.LayoutType][]cell{
	domain.LayoutFull: {
		{0, 0, 100, 100},
	},
	domain.LayoutSplitHorizontal: {
		{0, 0, 100, 50},
		{0, 50, 100, 50},
	},
	domain.LayoutSplitVertical: {
		{0, 0, 50, 100},
		{50, 0, 50, 100},
	},
	domain.LayoutGrid2x2: {
		{0, 0, 50, 50},
		{50, 0, 50, 50},
		{0, 50, 50, 50},
		{50, 50, 50, 50},
	},
	domain.LayoutGridThreePanel: {
		{0, 0, 60, 100},
		{60, 0, 40, 50},
		{60, 50, 40, 50},
	},
	domain.LayoutMangaThreePanel: {
		{0, 0, 100, 50},
		{0, 50, 50, 50},
		{50, 50, 50, 50},
	},
	domain.LayoutDiagonal: {
		{0, 0, 65, 55},
		{35, 45, 65, 55},
	},
	domain.LayoutCustom: {
		{10, 10, 80, 80},
	},
}

// Zones generates the zone list for the named template. Zone ids derive
// from baseID so they are stable for a given section and template. Unknown
// types fall back to the custom template; the function is total.
func Zones(t domain.LayoutType, baseID string) []domain.Zone {
	cells, ok := templates[t]
	if !ok {
		cells = templates[domain.LayoutCustom]
	}
	zones := make([]domain.Zone, len(cells))
	for i, c := range cells {
		zones[i] = domain.NewZone(
			zoneID(baseID, i+1),
			domain.PercentPoint{X: c.x, Y: c.y},
			domain.PercentSize{Width: c.w, Height: c.h},
		)
	}
	return zones
}

func zoneID(baseID string, n int) string {
	return baseID + "-zone-" + strconv.Itoa(n)
}
