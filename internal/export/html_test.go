/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"webtoonflow/internal/domain"
)

func testProject() domain.Project {
	return domain.Project{
		ID:     "project-1",
		Title:  "Night Walk",
		Author: "Mina",
		Width:  800,
		Sections: []domain.Section{
			{
				ID:              "section-1",
				Order:           0,
				Height:          400,
				BackgroundColor: "#ffffff",
				Layout: domain.Layout{
					Type: domain.LayoutFull,
					Zones: []domain.Zone{
						{
							ID:       "zone-1",
							Position: domain.PercentPoint{X: 2, Y: 2},
							Size:     domain.PercentSize{Width: 96, Height: 96},
							Fit:      domain.FitCover,
							Effect:   domain.DefaultComicEffect(),
						},
					},
				},
				Bubbles: []domain.Bubble{
					{
						ID:       "bubble-1",
						Position: domain.PixelPoint{X: 80, Y: 100},
						Size:     domain.PixelSize{Width: 200, Height: 100},
						Text:     "Hello there",
						Style:    domain.DefaultBubbleStyle(),
					},
				},
			},
		},
		BackgroundColor: "#f0f0f0",
	}
}

func render(t *testing.T, p domain.Project, opt Options) string {
	t.Helper()
	if opt.Animator == nil {
		opt.Animator = NoopAnimator{}
	}
	html, err := HTML(p, opt)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	return html
}

func TestHTMLBubblePixelToPercent(t *testing.T) {
	// 80/800 -> 10% left, 100/400 -> 25% top, 200/800 -> 25% wide,
	// 100/400 -> 25% tall.
	html := render(t, testProject(), Options{})
	for _, want := range []string{
		"left: 10%; top: 25%; width: 25%; height: 25%;",
		"data-font-size=\"16\"",
		"font-size: clamp(10px, 2vw, 16px);",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestHTMLBubbleShapes(t *testing.T) {
	cases := []struct {
		typ     domain.BubbleType
		want    string
		nowhere string
	}{
		{domain.BubbleSpeech, "border-radius: 16px;", ""},
		{domain.BubbleThought, "border-radius: 50%;", ""},
		{domain.BubbleWhisper, "px dashed ", ""},
		{domain.BubbleNarrator, "border-radius: 0;", ""},
		{domain.BubbleShout, "clip-path: polygon(50% 0%", "class=\"bubble-tail\""},
	}
	for _, tc := range cases {
		t.Run(string(tc.typ), func(t *testing.T) {
			p := testProject()
			st := &p.Sections[0].Bubbles[0].Style
			st.Type = tc.typ
			st.TailPosition = domain.TailLeft
			html := render(t, p, Options{})
			if !strings.Contains(html, tc.want) {
				t.Errorf("%s: missing %q", tc.typ, tc.want)
			}
			if tc.nowhere != "" && strings.Contains(html, tc.nowhere) {
				t.Errorf("%s: unexpected %q", tc.typ, tc.nowhere)
			}
		})
	}
}

func TestHTMLTailSuppressedForNone(t *testing.T) {
	p := testProject()
	p.Sections[0].Bubbles[0].Style.TailPosition = domain.TailNone
	if html := render(t, p, Options{}); strings.Contains(html, "class=\"bubble-tail\"") {
		t.Error("tail rendered for tailPosition none")
	}
}

func TestHTMLTailPositions(t *testing.T) {
	cases := []struct {
		pos  domain.TailPosition
		want string
	}{
		{domain.TailLeft, "left: -15px; top: 50%;"},
		{domain.TailRight, "right: -15px; top: 50%;"},
		{domain.TailTop, "top: -15px; left: 50%;"},
		{domain.TailBottom, "bottom: -15px; left: 50%;"},
	}
	for _, tc := range cases {
		p := testProject()
		p.Sections[0].Bubbles[0].Style.TailPosition = tc.pos
		html := render(t, p, Options{})
		if !strings.Contains(html, tc.want) {
			t.Errorf("%s: missing %q", tc.pos, tc.want)
		}
	}
}

func TestHTMLZoneEffect(t *testing.T) {
	p := testProject()
	html := render(t, p, Options{})
	for _, want := range []string{
		"zone-shadow",
		"border: clamp(1px, 0.5vw, 4px) solid #000000;",
		"left: 2%; top: 2%; width: 96%; height: 96%;",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q", want)
		}
	}

	p.Sections[0].Layout.Zones[0].Effect.Enabled = false
	if html := render(t, p, Options{}); strings.Contains(html, "zone-shadow") {
		t.Error("shadow rendered with effect disabled")
	}
}

func TestHTMLZonePlaceholderAndImage(t *testing.T) {
	p := testProject()
	html := render(t, p, Options{})
	if !strings.Contains(html, ">Image</div>") {
		t.Error("missing placeholder for empty zone")
	}

	p.Sections[0].Layout.Zones[0].ImageURL = "data:image/png;base64,AAAA"
	html = render(t, p, Options{})
	if !strings.Contains(html, "src=\"data:image/png;base64,AAAA\"") {
		t.Error("missing zone image")
	}
	if !strings.Contains(html, "object-fit: cover;") {
		t.Error("missing object-fit")
	}
}

func TestHTMLSectionAspectRatio(t *testing.T) {
	// 400px tall at 800px wide keeps a 50% padding-bottom.
	html := render(t, testProject(), Options{})
	if !strings.Contains(html, "padding-bottom: 50%;") {
		t.Error("missing aspect-ratio padding")
	}
	if !strings.Contains(html, "data-height=\"400\"") {
		t.Error("missing data-height")
	}
}

func TestHTMLSectionsSortedByOrder(t *testing.T) {
	p := testProject()
	second := p.Sections[0].Clone()
	second.ID = "section-2"
	second.Order = 1
	second.Height = 600
	// store them reversed; output must follow Order
	p.Sections = []domain.Section{second, p.Sections[0]}

	html := render(t, p, Options{})
	first := strings.Index(html, "data-height=\"400\"")
	then := strings.Index(html, "data-height=\"600\"")
	if first < 0 || then < 0 || first > then {
		t.Errorf("sections out of order: 400 at %d, 600 at %d", first, then)
	}
}

func TestHTMLChrome(t *testing.T) {
	html := render(t, testProject(), Options{Language: "fr"})
	for _, want := range []string{
		"<html lang=\"fr\">",
		"<title>Night Walk - Mina</title>",
		"par Mina",
		"<h2>Fin</h2>",
		"↑ Relire",
		"Défilez pour lire",
		"max-width: 800px;", // strip capped at project width
		"max-width: 900px;", // default reader column
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestHTMLDescriptionMeta(t *testing.T) {
	p := testProject()
	if html := render(t, p, Options{}); strings.Contains(html, "name=\"description\"") {
		t.Error("description meta rendered for empty description")
	}
	p.Description = "A quiet stroll."
	html := render(t, p, Options{})
	if !strings.Contains(html, "<meta name=\"description\" content=\"A quiet stroll.\">") {
		t.Error("missing description meta")
	}
}

func TestHTMLRejectsZeroWidth(t *testing.T) {
	p := testProject()
	p.Width = 0
	if _, err := HTML(p, Options{}); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestGSAPAnimatorWiring(t *testing.T) {
	html := render(t, testProject(), Options{Animator: GSAPAnimator{}})
	for _, want := range []string{
		"https://cdnjs.cloudflare.com/ajax/libs/gsap/3.12.5/gsap.min.js",
		"https://cdnjs.cloudflare.com/ajax/libs/gsap/3.12.5/ScrollTrigger.min.js",
		"gsap.registerPlugin(ScrollTrigger);",
		"gsap.utils.toArray('.zone')",
		"toggleActions: 'play none none none',",
		"gsap.utils.toArray('.bubble')",
		"toggleActions: 'play none none reverse',",
		"start: 'top 90%',",
		"start: 'top 85%',",
		".zone {\n      opacity: 0;\n      transform: translateY(30px);",
		".bubble {\n      opacity: 0;\n      transform: translateY(20px) scale(0.9);",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestNoopAnimatorKeepsPageVisible(t *testing.T) {
	html := render(t, testProject(), Options{})
	if strings.Contains(html, "gsap") {
		t.Error("animation library leaked into static export")
	}
	if strings.Contains(html, "opacity: 0;") {
		t.Error("hidden initial styles present without an animator")
	}
}

func TestHTMLFile(t *testing.T) {
	dir := t.TempDir()
	name, err := HTMLFile(testProject(), dir, Options{Animator: NoopAnimator{}})
	if err != nil {
		t.Fatalf("HTMLFile: %v", err)
	}
	if filepath.Base(name) != "night-walk.html" {
		t.Errorf("unexpected file name %q", filepath.Base(name))
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") {
		t.Error("missing doctype")
	}
}
