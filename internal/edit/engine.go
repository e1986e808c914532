/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package edit implements the mutation engine. Every operation takes the
// current project plus edit parameters and returns a new project with
// UpdatedAt refreshed; inputs are never mutated. Rejected operations return
// a sentinel error and the input value unchanged, so the document is never
// left partially edited.
package edit

import (
	"errors"
	"time"

	"webtoonflow/internal/domain"
	"webtoonflow/internal/geom"
	"webtoonflow/internal/i18n"
	"webtoonflow/internal/layout"
)

var (
	// ErrLastSection rejects deleting the only section of a project.
	ErrLastSection = errors.New("project must keep at least one section")
	// ErrLastZone rejects deleting the only zone of a section.
	ErrLastZone = errors.New("section must keep at least one zone")

	ErrSectionNotFound = errors.New("section not found")
	ErrZoneNotFound    = errors.New("zone not found")
	ErrBubbleNotFound  = errors.New("bubble not found")
)

// Section height bounds in pixels. The form entry and the live drag use
// different floors on purpose; both are capped at the same maximum.
const (
	FormMinSectionHeight = 100
	DragMinSectionHeight = 200
	MaxSectionHeight     = 2000
)

// LayoutInset is the uniform margin applied to template zones when a
// section's layout changes, so zones don't touch the section edge.
const LayoutInset = 2.0

// now is swappable in tests for deterministic timestamps.
var now = func() time.Time { return time.Now().UTC() }

func touch(p domain.Project) domain.Project {
	p.UpdatedAt = now()
	return p
}

// AddSection appends a section built from the single-zone full template at
// order len(sections) and returns it alongside the new project.
func AddSection(p domain.Project) (domain.Project, domain.Section) {
	out := p.Clone()
	s := domain.NewSection(domain.NewID("section"), len(out.Sections))
	out.Sections = append(out.Sections, s)
	return touch(out), s
}

// DeleteSection removes the section and renumbers the survivors' Order to
// 0..n-1 in their existing relative sequence. Deleting the last remaining
// section is rejected.
func DeleteSection(p domain.Project, sectionID string) (domain.Project, error) {
	if len(p.Sections) <= 1 {
		return p, ErrLastSection
	}
	if p.SectionByID(sectionID) == nil {
		return p, ErrSectionNotFound
	}
	out := p.Clone()
	kept := out.Sections[:0]
	for _, s := range out.Sections {
		if s.ID != sectionID {
			kept = append(kept, s)
		}
	}
	for i := range kept {
		kept[i].Order = i
	}
	out.Sections = kept
	return touch(out), nil
}

// ChangeSectionLayout regenerates the section's zones from the named
// template, inset by LayoutInset on all sides. The previous zone list and
// its identities are discarded wholesale.
func ChangeSectionLayout(p domain.Project, sectionID string, lt domain.LayoutType) (domain.Project, error) {
	out := p.Clone()
	s := out.SectionByID(sectionID)
	if s == nil {
		return p, ErrSectionNotFound
	}
	zones := layout.Zones(lt, sectionID)
	for i := range zones {
		r := geom.R(zones[i].Position.X, zones[i].Position.Y,
			zones[i].Size.Width, zones[i].Size.Height).Inset(LayoutInset)
		zones[i].Position = domain.PercentPoint{X: r.X, Y: r.Y}
		zones[i].Size = domain.PercentSize{Width: r.W, Height: r.H}
	}
	s.Layout = domain.Layout{Type: lt, Zones: zones}
	return touch(out), nil
}

// AddZone appends a default zone (10,10 80×40) to the section and forces
// the layout type to custom, since the zone list no longer matches any
// template's output.
func AddZone(p domain.Project, sectionID string) (domain.Project, domain.Zone, error) {
	out := p.Clone()
	s := out.SectionByID(sectionID)
	if s == nil {
		return p, domain.Zone{}, ErrSectionNotFound
	}
	z := domain.NewZone(domain.NewID("zone"),
		domain.PercentPoint{X: 10, Y: 10},
		domain.PercentSize{Width: 80, Height: 40})
	s.Layout.Type = domain.LayoutCustom
	s.Layout.Zones = append(s.Layout.Zones, z)
	return touch(out), z, nil
}

// UpdateZone replaces the zone by id within the section. Geometry is taken
// as given: drag and resize clamping happens at the session boundary before
// this call, and creation-time rules are not re-checked here.
func UpdateZone(p domain.Project, sectionID string, zone domain.Zone) (domain.Project, error) {
	out := p.Clone()
	s := out.SectionByID(sectionID)
	if s == nil {
		return p, ErrSectionNotFound
	}
	for i := range s.Layout.Zones {
		if s.Layout.Zones[i].ID == zone.ID {
			s.Layout.Zones[i] = zone
			return touch(out), nil
		}
	}
	return p, ErrZoneNotFound
}

// DeleteZone removes the zone and forces the layout type to custom.
// Deleting the last zone of a section is rejected.
func DeleteZone(p domain.Project, sectionID, zoneID string) (domain.Project, error) {
	out := p.Clone()
	s := out.SectionByID(sectionID)
	if s == nil {
		return p, ErrSectionNotFound
	}
	found := false
	for _, z := range s.Layout.Zones {
		if z.ID == zoneID {
			found = true
			break
		}
	}
	if !found {
		return p, ErrZoneNotFound
	}
	if len(s.Layout.Zones) <= 1 {
		return p, ErrLastZone
	}
	kept := s.Layout.Zones[:0]
	for _, z := range s.Layout.Zones {
		if z.ID != zoneID {
			kept = append(kept, z)
		}
	}
	s.Layout.Zones = kept
	s.Layout.Type = domain.LayoutCustom
	return touch(out), nil
}

// AddBubble creates a default bubble at pos (or 50,50 when nil) within the
// named section and returns it alongside the new project. Empty text gets
// the placeholder string; localized callers pass their own table's string.
func AddBubble(p domain.Project, sectionID string, pos *domain.PixelPoint, text string) (domain.Project, domain.Bubble, error) {
	out := p.Clone()
	s := out.SectionByID(sectionID)
	if s == nil {
		return p, domain.Bubble{}, ErrSectionNotFound
	}
	if text == "" {
		text = i18n.For(i18n.DefaultLanguage).TextPlaceholder
	}
	at := domain.PixelPoint{X: 50, Y: 50}
	if pos != nil {
		at = *pos
	}
	b := domain.NewBubble(domain.NewID("bubble"), at, sectionID, text)
	s.Bubbles = append(s.Bubbles, b)
	return touch(out), b, nil
}

// UpdateBubble replaces the bubble by id within the section named by its
// stored back-reference.
func UpdateBubble(p domain.Project, bubble domain.Bubble) (domain.Project, error) {
	out := p.Clone()
	s := out.SectionByID(bubble.SectionID)
	if s == nil {
		return p, ErrSectionNotFound
	}
	for i := range s.Bubbles {
		if s.Bubbles[i].ID == bubble.ID {
			s.Bubbles[i] = bubble
			return touch(out), nil
		}
	}
	return p, ErrBubbleNotFound
}

// DeleteBubble removes the bubble from whichever section holds it. The
// owner is found by a linear scan over all sections; O(total bubbles) by
// design at this document scale.
func DeleteBubble(p domain.Project, bubbleID string) (domain.Project, error) {
	out := p.Clone()
	for si := range out.Sections {
		s := &out.Sections[si]
		for bi := range s.Bubbles {
			if s.Bubbles[bi].ID == bubbleID {
				s.Bubbles = append(s.Bubbles[:bi], s.Bubbles[bi+1:]...)
				return touch(out), nil
			}
		}
	}
	return p, ErrBubbleNotFound
}

// ResizeSection sets the section height clamped to [minHeight,
// MaxSectionHeight]. Callers pass FormMinSectionHeight or
// DragMinSectionHeight depending on where the value comes from.
func ResizeSection(p domain.Project, sectionID string, height, minHeight int) (domain.Project, error) {
	out := p.Clone()
	s := out.SectionByID(sectionID)
	if s == nil {
		return p, ErrSectionNotFound
	}
	if height < minHeight {
		height = minHeight
	}
	if height > MaxSectionHeight {
		height = MaxSectionHeight
	}
	s.Height = height
	return touch(out), nil
}

// MetaUpdate is a typed partial update for project metadata. Nil fields are
// left untouched.
type MetaUpdate struct {
	Title           *string
	Author          *string
	Description     *string
	BackgroundColor *string
	Width           *int
}

// UpdateMetadata applies the partial update and refreshes UpdatedAt.
func UpdateMetadata(p domain.Project, up MetaUpdate) domain.Project {
	out := p.Clone()
	if up.Title != nil {
		out.Title = *up.Title
	}
	if up.Author != nil {
		out.Author = *up.Author
	}
	if up.Description != nil {
		out.Description = *up.Description
	}
	if up.BackgroundColor != nil {
		out.BackgroundColor = *up.BackgroundColor
	}
	if up.Width != nil {
		out.Width = *up.Width
	}
	return touch(out)
}
