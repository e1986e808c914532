/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package edit

import (
	"webtoonflow/internal/domain"
	"webtoonflow/internal/geom"
)

// Mode gates which sidebar and which double-click action is active.
type Mode string

const (
	ModeZones   Mode = "zones"
	ModeBubbles Mode = "bubbles"
)

// DragKind is the transient pointer interaction state.
type DragKind int

const (
	DragNone DragKind = iota
	DragMove
	DragResize
)

// Session holds the transient editor state that is never persisted:
// selection, edit mode, and the pointer drag state machine
// (idle → dragging/resizing → idle). It is not safe for concurrent use;
// all document mutation happens on one event loop.
type Session struct {
	mode Mode
	drag DragKind

	sectionID string
	zoneID    string
	bubbleID  string
}

// NewSession starts in zone mode with nothing selected.
func NewSession() *Session {
	return &Session{mode: ModeZones}
}

func (s *Session) Mode() Mode      { return s.mode }
func (s *Session) Drag() DragKind  { return s.drag }
func (s *Session) Section() string { return s.sectionID }
func (s *Session) Zone() string    { return s.zoneID }
func (s *Session) Bubble() string  { return s.bubbleID }
func (s *Session) Dragging() bool  { return s.drag != DragNone }

// SetMode switches between zone and bubble editing. Any in-flight drag is
// reset: a lost pointer-up must never leave the session stuck dragging.
func (s *Session) SetMode(m Mode) {
	s.mode = m
	s.drag = DragNone
}

// SelectSection selects a section and clears child selection.
func (s *Session) SelectSection(id string) {
	s.sectionID = id
	s.zoneID = ""
	s.bubbleID = ""
	s.drag = DragNone
}

// SelectZone selects a zone within its section and switches to zone mode.
func (s *Session) SelectZone(sectionID, zoneID string) {
	s.mode = ModeZones
	s.sectionID = sectionID
	s.zoneID = zoneID
	s.bubbleID = ""
	s.drag = DragNone
}

// SelectBubble selects a bubble within its section and switches to bubble
// mode.
func (s *Session) SelectBubble(sectionID, bubbleID string) {
	s.mode = ModeBubbles
	s.sectionID = sectionID
	s.bubbleID = bubbleID
	s.zoneID = ""
	s.drag = DragNone
}

// ClearSelection returns to the nothing-selected state.
func (s *Session) ClearSelection() {
	s.sectionID = ""
	s.zoneID = ""
	s.bubbleID = ""
	s.drag = DragNone
}

// BeginDrag enters the dragging or resizing state. Entering a new drag
// while one is in flight replaces it; there is no nesting.
func (s *Session) BeginDrag(kind DragKind) { s.drag = kind }

// EndDrag returns to idle. Safe to call redundantly, which is exactly what
// defensive pointer-up handling does.
func (s *Session) EndDrag() { s.drag = DragNone }

// Reconcile drops selection ids that no longer exist in the project, e.g.
// after a delete, and falls back to the first section so deletion
// transitions toward a sibling rather than dangling.
func (s *Session) Reconcile(p domain.Project) {
	sec := p.SectionByID(s.sectionID)
	if sec == nil {
		s.zoneID = ""
		s.bubbleID = ""
		if len(p.Sections) > 0 {
			s.sectionID = p.Sections[0].ID
		} else {
			s.sectionID = ""
		}
		s.drag = DragNone
		return
	}
	if s.zoneID != "" {
		found := false
		for _, z := range sec.Layout.Zones {
			if z.ID == s.zoneID {
				found = true
				break
			}
		}
		if !found {
			s.zoneID = ""
		}
	}
	if s.bubbleID != "" {
		found := false
		for _, b := range sec.Bubbles {
			if b.ID == s.bubbleID {
				found = true
				break
			}
		}
		if !found {
			s.bubbleID = ""
		}
	}
}

// Drag-time clamping. These run before UpdateZone/UpdateBubble; the engine
// itself takes replacement geometry as given.

// ClampZoneDrag moves the zone to x,y percent, kept fully inside the
// section box.
func ClampZoneDrag(z domain.Zone, x, y float64) domain.Zone {
	r := geom.DragWithin(geom.R(x, y, z.Size.Width, z.Size.Height), geom.PercentBox, geom.PercentBox)
	z.Position = domain.PercentPoint{X: r.X, Y: r.Y}
	return z
}

// ClampZoneResize resizes the zone to w,h percent with the minimum floor
// and the percent-box cap applied.
func ClampZoneResize(z domain.Zone, w, h float64) domain.Zone {
	r := geom.ResizePercent(geom.R(z.Position.X, z.Position.Y, w, h), domain.MinZonePercent, domain.MinZonePercent)
	z.Position = domain.PercentPoint{X: r.X, Y: r.Y}
	z.Size = domain.PercentSize{Width: r.W, Height: r.H}
	return z
}

// ClampBubbleDrag moves the bubble to x,y pixels, kept inside the rendered
// section box (project width × section height).
func ClampBubbleDrag(b domain.Bubble, x, y float64, projectWidth, sectionHeight int) domain.Bubble {
	r := geom.DragWithin(geom.R(x, y, b.Size.Width, b.Size.Height), float64(projectWidth), float64(sectionHeight))
	b.Position = domain.PixelPoint{X: r.X, Y: r.Y}
	return b
}

// ClampBubbleResize resizes the bubble to w,h pixels with the 100×50 floor.
func ClampBubbleResize(b domain.Bubble, w, h float64) domain.Bubble {
	r := geom.ResizePixel(geom.R(b.Position.X, b.Position.Y, w, h), domain.MinBubbleWidthPx, domain.MinBubbleHeightPx)
	b.Size = domain.PixelSize{Width: r.W, Height: r.H}
	return b
}
