/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

// This file defines the core data model for webtoonflow: a vertically
// scrolling comic composed of stacked sections, each divided into image
// zones (percent coordinates) and overlaid with text bubbles (pixel
// coordinates). It serializes to a human-readable JSON project file.

import "time"

// PercentPoint is a position in percent of the owning section's box (0-100).
type PercentPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PercentSize is a size in percent of the owning section's box (0-100).
type PercentSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PixelPoint is an absolute position in pixels relative to the owning
// section's top-left corner.
type PixelPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PixelSize is an absolute size in pixels.
type PixelSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BubbleType selects the bubble shape family.
type BubbleType string

const (
	BubbleSpeech   BubbleType = "speech"
	BubbleThought  BubbleType = "thought"
	BubbleShout    BubbleType = "shout"
	BubbleWhisper  BubbleType = "whisper"
	BubbleNarrator BubbleType = "narrator"
)

// TailPosition selects which bubble edge the tail points away from.
type TailPosition string

const (
	TailLeft   TailPosition = "left"
	TailRight  TailPosition = "right"
	TailTop    TailPosition = "top"
	TailBottom TailPosition = "bottom"
	TailNone   TailPosition = "none"
)

// ImageFit mirrors CSS object-fit for the zone's image.
type ImageFit string

const (
	FitCover    ImageFit = "cover"
	FitContain  ImageFit = "contain"
	FitFill     ImageFit = "fill"
	FitOriginal ImageFit = "original"
)

// LayoutType is a template provenance marker, not a constraint: once zones
// are added, removed, or reshaped by hand it degrades to LayoutCustom.
type LayoutType string

const (
	LayoutFull            LayoutType = "full"
	LayoutSplitHorizontal LayoutType = "split-horizontal"
	LayoutSplitVertical   LayoutType = "split-vertical"
	LayoutGrid2x2         LayoutType = "grid-2x2"
	LayoutGridThreePanel  LayoutType = "grid-three-panel"
	LayoutMangaThreePanel LayoutType = "manga-three-panel"
	LayoutDiagonal        LayoutType = "diagonal"
	LayoutCustom          LayoutType = "custom"
)

// LayoutTypes lists the full enumeration in catalog order.
var LayoutTypes = []LayoutType{
	LayoutFull,
	LayoutSplitHorizontal,
	LayoutSplitVertical,
	LayoutGrid2x2,
	LayoutGridThreePanel,
	LayoutMangaThreePanel,
	LayoutDiagonal,
	LayoutCustom,
}

// ComicEffect is the optional decorative border and drop-shadow treatment
// applied to a zone.
type ComicEffect struct {
	Enabled      bool    `json:"enabled"`
	BorderWidth  float64 `json:"borderWidth"`
	BorderColor  string  `json:"borderColor"`
	ShadowOffset float64 `json:"shadowOffset"`
	ShadowColor  string  `json:"shadowColor"`
}

// Zone is a rectangular image slot within a section, positioned in percent
// of the section's own box.
type Zone struct {
	ID           string       `json:"id"`
	Position     PercentPoint `json:"position"`
	Size         PercentSize  `json:"size"`
	ImageURL     string       `json:"imageUrl,omitempty"` // empty means no image yet
	Fit          ImageFit     `json:"imageFit"`
	BorderRadius float64      `json:"borderRadius"`
	Rotation     float64      `json:"rotation"` // degrees
	ZIndex       int          `json:"zIndex"`
	Effect       ComicEffect  `json:"comicEffect"`
}

// Layout describes how a section's area is divided into zones.
type Layout struct {
	Type  LayoutType `json:"type"`
	Zones []Zone     `json:"zones"`
}

// BubbleStyle is the closed set of visual attributes of a bubble. Style
// updates go through typed fields only; there is no open key-value bag.
type BubbleStyle struct {
	Type            BubbleType   `json:"type"`
	TailPosition    TailPosition `json:"tailPosition"`
	BackgroundColor string       `json:"backgroundColor"`
	TextColor       string       `json:"textColor"`
	BorderColor     string       `json:"borderColor"`
	BorderWidth     float64      `json:"borderWidth"`
	FontSize        float64      `json:"fontSize"`
	FontWeight      string       `json:"fontWeight"` // normal or bold
	FontStyle       string       `json:"fontStyle"`  // normal or italic
}

// Bubble is a speech/thought/shout/whisper/narration element. It floats
// above the whole section area in pixel coordinates and carries a
// back-reference to its owning section.
type Bubble struct {
	ID        string      `json:"id"`
	Position  PixelPoint  `json:"position"`
	Size      PixelSize   `json:"size"`
	Text      string      `json:"text"`
	Style     BubbleStyle `json:"style"`
	SectionID string      `json:"sectionId,omitempty"`
}

// Section is one vertical band of the continuous page. Sections stack
// top-to-bottom by Order, which stays dense and zero-based across edits.
type Section struct {
	ID              string   `json:"id"`
	Order           int      `json:"order"`
	Layout          Layout   `json:"layout"`
	Bubbles         []Bubble `json:"bubbles"`
	BackgroundColor string   `json:"backgroundColor"`
	Height          int      `json:"height"` // pixels
}

// Project is the root aggregate. Width is the intrinsic rendering width in
// pixels; all section and zone geometry is interpreted relative to it.
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Description     string    `json:"description,omitempty"`
	Sections        []Section `json:"sections"`
	BackgroundColor string    `json:"backgroundColor"`
	Width           int       `json:"width"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TotalHeight is the sum of all section heights in pixels.
func (p Project) TotalHeight() int {
	total := 0
	for _, s := range p.Sections {
		total += s.Height
	}
	return total
}

// SectionByID returns the section with the given id, or nil.
func (p *Project) SectionByID(id string) *Section {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return &p.Sections[i]
		}
	}
	return nil
}

// Clone returns a deep copy. The mutation engine works copy-on-write, so
// readers holding the previous value never observe a partial edit.
func (p Project) Clone() Project {
	out := p
	out.Sections = make([]Section, len(p.Sections))
	for i, s := range p.Sections {
		out.Sections[i] = s.Clone()
	}
	return out
}

// Clone returns a deep copy of the section, its layout, and its bubbles.
func (s Section) Clone() Section {
	out := s
	out.Layout.Zones = append([]Zone(nil), s.Layout.Zones...)
	out.Bubbles = append([]Bubble(nil), s.Bubbles...)
	return out
}
