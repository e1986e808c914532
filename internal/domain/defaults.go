/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Geometry floors. Creation-time defaults and drag-time clamping share
// these; the section height floors live in config because the form entry
// and the live drag use different minimums.
const (
	MinZonePercent    = 10.0 // minimum zone width/height in percent
	MinBubbleWidthPx  = 100.0
	MinBubbleHeightPx = 50.0

	DefaultSectionHeight = 400
	DefaultProjectWidth  = 800
)

// NewID returns a fresh entity identifier with a type prefix for readable
// project files.
func NewID(kind string) string {
	return fmt.Sprintf("%s-%s", kind, uuid.NewString())
}

// DefaultComicEffect is the effect new zones start with.
func DefaultComicEffect() ComicEffect {
	return ComicEffect{
		Enabled:      true,
		BorderWidth:  4,
		BorderColor:  "#000000",
		ShadowOffset: 8,
		ShadowColor:  "#333333",
	}
}

// DefaultBubbleStyle is the style new bubbles start with.
func DefaultBubbleStyle() BubbleStyle {
	return BubbleStyle{
		Type:            BubbleSpeech,
		TailPosition:    TailLeft,
		BackgroundColor: "#ffffff",
		TextColor:       "#000000",
		BorderColor:     "#000000",
		BorderWidth:     3,
		FontSize:        16,
		FontWeight:      "bold",
		FontStyle:       "normal",
	}
}

// NewZone creates a zone at the given percent geometry with the default
// effect and cover fit.
func NewZone(id string, pos PercentPoint, size PercentSize) Zone {
	return Zone{
		ID:       id,
		Position: pos,
		Size:     size,
		Fit:      FitCover,
		Effect:   DefaultComicEffect(),
	}
}

// NewBubble creates a 200×100 px placeholder bubble owned by sectionID.
func NewBubble(id string, pos PixelPoint, sectionID, text string) Bubble {
	return Bubble{
		ID:        id,
		Position:  pos,
		Size:      PixelSize{Width: 200, Height: 100},
		Text:      text,
		Style:     DefaultBubbleStyle(),
		SectionID: sectionID,
	}
}

// NewSection creates a section with a single inset full-area zone. The zone
// sits at 2,2 96×96 so fresh sections never start with content flush to the
// section edge.
func NewSection(id string, order int) Section {
	return Section{
		ID:    id,
		Order: order,
		Layout: Layout{
			Type: LayoutFull,
			Zones: []Zone{
				NewZone(id+"-zone-1", PercentPoint{X: 2, Y: 2}, PercentSize{Width: 96, Height: 96}),
			},
		},
		Bubbles:         []Bubble{},
		BackgroundColor: "#ffffff",
		Height:          DefaultSectionHeight,
	}
}
