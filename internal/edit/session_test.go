/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package edit

import (
	"testing"

	"webtoonflow/internal/domain"
)

func TestSelectionTransitions(t *testing.T) {
	s := NewSession()
	if s.Section() != "" || s.Zone() != "" || s.Bubble() != "" {
		t.Fatalf("session must start with nothing selected")
	}

	s.SelectSection("section-1")
	if s.Section() != "section-1" {
		t.Fatalf("section not selected")
	}

	s.SelectZone("section-1", "zone-1")
	if s.Mode() != ModeZones || s.Zone() != "zone-1" || s.Bubble() != "" {
		t.Fatalf("zone selection must clear bubble and switch mode")
	}

	s.SelectBubble("section-1", "bubble-1")
	if s.Mode() != ModeBubbles || s.Bubble() != "bubble-1" || s.Zone() != "" {
		t.Fatalf("bubble selection must clear zone and switch mode")
	}

	s.ClearSelection()
	if s.Section() != "" || s.Zone() != "" || s.Bubble() != "" {
		t.Fatalf("clear selection incomplete")
	}
}

func TestModeChangeResetsDrag(t *testing.T) {
	s := NewSession()
	s.SelectZone("section-1", "zone-1")
	s.BeginDrag(DragMove)
	if !s.Dragging() {
		t.Fatalf("drag not entered")
	}
	// a lost pointer-up must not leave the drag stuck across a mode change
	s.SetMode(ModeBubbles)
	if s.Dragging() {
		t.Fatalf("mode change must reset the drag state")
	}

	s.BeginDrag(DragResize)
	s.SelectSection("section-2")
	if s.Dragging() {
		t.Fatalf("selection change must reset the drag state")
	}

	s.EndDrag()
	s.EndDrag() // redundant end is fine
	if s.Drag() != DragNone {
		t.Fatalf("drag should be idle")
	}
}

func TestReconcileAfterDelete(t *testing.T) {
	p := seed()
	s := NewSession()
	s.SelectZone("section-2", "zone-2-1")

	p2, err := DeleteZone(p, "section-2", "zone-2-1")
	if err != nil {
		t.Fatalf("delete zone: %v", err)
	}
	s.Reconcile(p2)
	if s.Zone() != "" || s.Section() != "section-2" {
		t.Fatalf("stale zone selection survived: %q / %q", s.Section(), s.Zone())
	}

	p3, err := DeleteSection(p2, "section-2")
	if err != nil {
		t.Fatalf("delete section: %v", err)
	}
	s.Reconcile(p3)
	if s.Section() != "section-1" {
		t.Fatalf("selection should fall back to the first section, got %q", s.Section())
	}
}

func TestClampZoneDrag(t *testing.T) {
	z := domain.NewZone("z", domain.PercentPoint{X: 10, Y: 10}, domain.PercentSize{Width: 40, Height: 30})
	got := ClampZoneDrag(z, 90, -20)
	if got.Position.X != 60 || got.Position.Y != 0 {
		t.Fatalf("drag clamp wrong: %+v", got.Position)
	}
	if got.Size != z.Size {
		t.Fatalf("drag must not resize")
	}
}

func TestClampZoneResize(t *testing.T) {
	z := domain.NewZone("z", domain.PercentPoint{X: 70, Y: 80}, domain.PercentSize{Width: 20, Height: 10})
	got := ClampZoneResize(z, 50, 2)
	if got.Position.X+got.Size.Width > 100 || got.Position.Y+got.Size.Height > 100 {
		t.Fatalf("resize escaped the box: %+v", got)
	}
	if got.Size.Height != domain.MinZonePercent {
		t.Fatalf("minimum zone size not enforced: %+v", got.Size)
	}
}

func TestClampBubbleDragAndResize(t *testing.T) {
	b := domain.NewBubble("b", domain.PixelPoint{X: 0, Y: 0}, "s", "hi")
	got := ClampBubbleDrag(b, 750, 390, 800, 400)
	if got.Position.X != 600 || got.Position.Y != 300 {
		t.Fatalf("bubble drag clamp wrong: %+v", got.Position)
	}

	got = ClampBubbleResize(b, 10, 10)
	if got.Size.Width != domain.MinBubbleWidthPx || got.Size.Height != domain.MinBubbleHeightPx {
		t.Fatalf("bubble minimum size not enforced: %+v", got.Size)
	}
}
