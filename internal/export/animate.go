/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"strings"
)

// TriggerBand is the scroll range, relative to the viewport, over which a
// reveal fires. Values use the animation library's position syntax, e.g.
// "top 90%".
type TriggerBand struct {
	Start string
	End   string
}

// Reveal describes one scroll-triggered reveal registration: elements
// matched by Selector start at the From offsets/opacity and animate to
// their resting state inside the trigger band. Reverse makes the reveal
// play backwards when the element scrolls back out.
type Reveal struct {
	Selector  string
	Band      TriggerBand
	FromY     float64 // starting vertical offset in px
	FromScale float64 // starting scale; 0 means no scale animation
	Duration  float64 // seconds
	Ease      string
	Reverse   bool
}

// Animator renders the reveal wiring of the exported page. The exporter
// depends only on this interface, never on a specific animation library,
// so a no-op implementation can test structural output headlessly.
type Animator interface {
	// HeadMarkup returns tags placed in <head>; typically script tags the
	// exported document fetches itself from a public CDN.
	HeadMarkup() string
	// HiddenCSS returns the per-selector initial (hidden/offset) styles.
	HiddenCSS(r Reveal) string
	// Script returns the script body registering all given reveals.
	Script(reveals []Reveal) string
}

// GSAPAnimator emits GSAP + ScrollTrigger wiring, fetched from a public
// CDN so the exported file stays standalone.
type GSAPAnimator struct {
	BaseURL string // default https://cdnjs.cloudflare.com/ajax/libs/gsap
	Version string // default 3.12.5
}

func (g GSAPAnimator) baseURL() string {
	if g.BaseURL != "" {
		return strings.TrimRight(g.BaseURL, "/")
	}
	return "https://cdnjs.cloudflare.com/ajax/libs/gsap"
}

func (g GSAPAnimator) version() string {
	if g.Version != "" {
		return g.Version
	}
	return "3.12.5"
}

func (g GSAPAnimator) HeadMarkup() string {
	base := fmt.Sprintf("%s/%s", g.baseURL(), g.version())
	return fmt.Sprintf(
		"  <script src=\"%s/gsap.min.js\"></script>\n  <script src=\"%s/ScrollTrigger.min.js\"></script>\n",
		base, base)
}

func (g GSAPAnimator) HiddenCSS(r Reveal) string {
	transform := fmt.Sprintf("translateY(%gpx)", r.FromY)
	if r.FromScale > 0 {
		transform += fmt.Sprintf(" scale(%g)", r.FromScale)
	}
	return fmt.Sprintf("    %s {\n      opacity: 0;\n      transform: %s;\n    }\n", r.Selector, transform)
}

func (g GSAPAnimator) Script(reveals []Reveal) string {
	var b strings.Builder
	b.WriteString("    gsap.registerPlugin(ScrollTrigger);\n")
	for _, r := range reveals {
		toggle := "play none none none"
		if r.Reverse {
			toggle = "play none none reverse"
		}
		props := "opacity: 1,\n        y: 0,"
		if r.FromScale > 0 {
			props += "\n        scale: 1,"
		}
		fmt.Fprintf(&b, `
    gsap.utils.toArray('%s').forEach((el) => {
      gsap.to(el, {
        %s
        duration: %g,
        ease: '%s',
        scrollTrigger: {
          trigger: el,
          start: '%s',
          end: '%s',
          toggleActions: '%s',
        }
      });
    });
`, r.Selector, props, r.Duration, r.Ease, r.Band.Start, r.Band.End, toggle)
	}
	return b.String()
}

// NoopAnimator renders nothing; exported pages are fully visible and
// static. Used for headless tests of the exporter's structural output.
type NoopAnimator struct{}

func (NoopAnimator) HeadMarkup() string      { return "" }
func (NoopAnimator) HiddenCSS(Reveal) string { return "" }
func (NoopAnimator) Script([]Reveal) string  { return "" }
