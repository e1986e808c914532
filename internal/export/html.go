/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders a project as a single self-contained HTML file
// suited to vertical scroll reading. Layout is fluid: zone boxes are
// already percent-of-section, bubble pixel boxes are converted to percent
// at render time so the page scales with the reader column.
//
// User-entered text (bubble text, title, author) is written through
// unmodified. Exported files are built from the author's own project and
// are not a sink for untrusted input.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"webtoonflow/internal/domain"
	"webtoonflow/internal/i18n"
	"webtoonflow/internal/storage"
)

// Options controls HTML export behavior.
//   - Language selects the string table used for page chrome (header, footer,
//     scroll hint) and the document lang attribute.
//   - MaxWidth is the reader column cap in pixels; the strip itself is still
//     capped at the project width.
//   - Animator wires scroll reveals; nil means a static, fully visible page.
//
//nolint:revive // clarity is preferred
type Options struct {
	Language string
	MaxWidth int
	Animator Animator
}

const tailSize = 15 // px, triangle legs of a bubble tail

// reveals returns the scroll-reveal registrations used by the exported
// page: zones slide up and play once, bubbles pop in and reverse when
// scrolled back out.
func reveals() []Reveal {
	return []Reveal{
		{
			Selector: ".zone",
			Band:     TriggerBand{Start: "top 90%", End: "top 60%"},
			FromY:    30,
			Duration: 0.8,
			Ease:     "power2.out",
		},
		{
			Selector:  ".bubble",
			Band:      TriggerBand{Start: "top 85%", End: "top 60%"},
			FromY:     20,
			FromScale: 0.9,
			Duration:  0.6,
			Ease:      "back.out(1.7)",
			Reverse:   true,
		},
	}
}

// HTML renders the whole project as one standalone HTML document.
func HTML(p domain.Project, opt Options) (string, error) {
	if p.Width <= 0 {
		return "", fmt.Errorf("project width must be positive, got %d", p.Width)
	}
	anim := opt.Animator
	if anim == nil {
		anim = NoopAnimator{}
	}
	maxWidth := opt.MaxWidth
	if maxWidth <= 0 {
		maxWidth = 900
	}
	lang := opt.Language
	if lang == "" {
		lang = i18n.DefaultLanguage
	}
	t := i18n.For(lang)

	sections := make([]domain.Section, len(p.Sections))
	copy(sections, p.Sections)
	sort.Slice(sections, func(i, j int) bool { return sections[i].Order < sections[j].Order })

	revs := reveals()

	var buf bytes.Buffer
	var werr error
	wf := func(format string, args ...any) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(&buf, format, args...)
	}

	wf("<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", lang)
	wf("  <meta charset=\"UTF-8\">\n")
	wf("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	wf("  <title>%s - %s</title>\n", p.Title, p.Author)
	wf("  <meta name=\"author\" content=\"%s\">\n", p.Author)
	if p.Description != "" {
		wf("  <meta name=\"description\" content=\"%s\">\n", p.Description)
	}
	wf("%s", anim.HeadMarkup())
	writeStyle(wf, p.Width, maxWidth, anim, revs)
	wf("</head>\n<body>\n")

	wf("  <header class=\"comic-header\">\n    <div class=\"comic-header-content\">\n      <div>\n")
	wf("        <h1 class=\"comic-title\">\U0001F4D6 %s</h1>\n", p.Title)
	wf("        <p class=\"comic-author\">%s %s</p>\n", t.By, p.Author)
	wf("      </div>\n    </div>\n  </header>\n\n")

	wf("  <main class=\"comic-container\">\n")
	wf("    <div class=\"comic-content\" style=\"background-color: %s;\">\n", p.BackgroundColor)
	for _, s := range sections {
		writeSection(wf, s, p.Width, t)
	}
	wf("    </div>\n  </main>\n\n")

	wf("  <footer class=\"comic-footer\">\n")
	wf("    <h2>%s</h2>\n", t.TheEnd)
	wf("    <button class=\"back-to-top\" onclick=\"window.scrollTo({top: 0, behavior: 'smooth'})\">%s</button>\n", t.ReadAgain)
	wf("  </footer>\n\n")
	wf("  <div class=\"scroll-indicator\">↓ %s</div>\n", t.ScrollToRead)

	wf("  <script>\n")
	wf("%s", anim.Script(revs))
	wf(`
    setTimeout(() => {
      document.querySelector('.scroll-indicator').style.opacity = '0';
      document.querySelector('.scroll-indicator').style.transition = 'opacity 0.5s';
    }, 5000);
`)
	wf("  </script>\n</body>\n</html>\n")

	if werr != nil {
		return "", fmt.Errorf("build html: %w", werr)
	}
	return buf.String(), nil
}

// HTMLFile renders the project and writes it to outDir under a slugified
// file name. Returns the written path.
func HTMLFile(p domain.Project, outDir string, opt Options) (string, error) {
	html, err := HTML(p, opt)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure out dir: %w", err)
	}
	name := filepath.Join(outDir, storage.Slug(p.Title)+".html")
	if err := os.WriteFile(name, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write html: %w", err)
	}
	return name, nil
}

func writeStyle(wf func(string, ...any), projectWidth, maxWidth int, anim Animator, revs []Reveal) {
	wf(`  <style>
    * {
      margin: 0;
      padding: 0;
      box-sizing: border-box;
    }

    html {
      font-size: 16px;
    }

    body {
      font-family: 'Comic Neue', 'Bangers', cursive, sans-serif;
      background-color: #171717;
      min-height: 100vh;
      line-height: 1.4;
    }

    .comic-header {
      position: sticky;
      top: 0;
      background: rgba(10, 10, 10, 0.95);
      backdrop-filter: blur(8px);
      z-index: 1000;
      border-bottom: 1px solid #333;
      padding: clamp(8px, 2vw, 16px);
    }

    .comic-header-content {
      max-width: %dpx;
      margin: 0 auto;
      display: flex;
      align-items: center;
      justify-content: space-between;
      gap: 1rem;
    }

    .comic-title {
      font-size: clamp(1rem, 4vw, 1.5rem);
      font-weight: bold;
      color: white;
    }

    .comic-author {
      font-size: clamp(0.65rem, 2vw, 0.875rem);
      color: #666;
    }

    .comic-container {
      width: 100%%;
      max-width: %dpx;
      margin: 0 auto;
      padding: clamp(8px, 2vw, 16px);
    }

    .comic-content {
      position: relative;
      width: 100%%;
      max-width: %dpx;
      margin: 0 auto;
      background: white;
      box-shadow: 0 25px 50px -12px rgba(0, 0, 0, 0.5);
      border-left: clamp(2px, 0.5vw, 4px) solid black;
      border-right: clamp(2px, 0.5vw, 4px) solid black;
      overflow: hidden;
    }

    .section {
      width: 100%%;
    }

    .section-content {
      position: relative;
      width: 100%%;
    }

`, maxWidth, maxWidth, projectWidth)
	for _, r := range revs {
		wf("%s", anim.HiddenCSS(r))
	}
	wf(`
    .comic-footer {
      padding: clamp(32px, 8vw, 64px) 16px;
      text-align: center;
      border-top: 1px solid #333;
      background: #0a0a0a;
    }

    .comic-footer h2 {
      font-size: clamp(1.5rem, 5vw, 2.5rem);
      color: white;
      margin-bottom: 16px;
    }

    .back-to-top {
      padding: clamp(8px, 2vw, 12px) clamp(16px, 4vw, 24px);
      background: white;
      color: black;
      font-weight: bold;
      font-size: clamp(0.875rem, 2vw, 1rem);
      border: none;
      border-radius: 4px;
      cursor: pointer;
      transition: background 0.2s;
    }

    .back-to-top:hover {
      background: #e5e5e5;
    }

    .scroll-indicator {
      position: fixed;
      bottom: clamp(8px, 2vw, 16px);
      right: clamp(8px, 2vw, 16px);
      background: rgba(0,0,0,0.7);
      color: white;
      font-size: clamp(10px, 2vw, 12px);
      padding: clamp(6px, 1.5vw, 8px) clamp(8px, 2vw, 12px);
      border-radius: 20px;
      z-index: 100;
    }

    @media (max-width: 480px) {
      .bubble {
        box-shadow: 2px 2px 0px rgba(0,0,0,0.3) !important;
      }

      .bubble-tail {
        transform: scale(0.7) !important;
      }
    }

    @media print {
      .comic-header,
      .scroll-indicator,
      .comic-footer {
        display: none;
      }

      body {
        background: white;
      }

      .comic-content {
        border: none;
        box-shadow: none;
      }

      .bubble, .zone {
        opacity: 1 !important;
        transform: none !important;
      }
    }
  </style>
`)
}

func writeSection(wf func(string, ...any), s domain.Section, projectWidth int, t i18n.Table) {
	wf("      <div class=\"section\" data-height=\"%d\" style=\"position: relative; width: 100%%; background-color: %s;\">\n",
		s.Height, s.BackgroundColor)
	// The aspect-ratio trick keeps the section's shape as the column scales.
	wf("        <div class=\"section-content\" style=\"position: relative; width: 100%%; padding-bottom: %g%%;\">\n",
		float64(s.Height)/float64(projectWidth)*100)
	wf("          <div style=\"position: absolute; inset: 0;\">\n")
	for _, z := range s.Layout.Zones {
		writeZone(wf, z, t)
	}
	for _, b := range s.Bubbles {
		writeBubble(wf, b, projectWidth, s.Height)
	}
	wf("          </div>\n        </div>\n      </div>\n")
}

func writeZone(wf func(string, ...any), z domain.Zone, t i18n.Table) {
	wf("            <div class=\"zone\" style=\"position: absolute; left: %g%%; top: %g%%; width: %g%%; height: %g%%; transform: rotate(%gdeg); z-index: %d;\">\n",
		z.Position.X, z.Position.Y, z.Size.Width, z.Size.Height, z.Rotation, z.ZIndex)
	if z.Effect.Enabled {
		// Shadow offsets clamp so the effect shrinks on narrow screens.
		off := fmt.Sprintf("clamp(2px, 1vw, %gpx)", z.Effect.ShadowOffset)
		wf("              <div class=\"zone-shadow\" style=\"position: absolute; top: %s; left: %s; right: calc(-1 * %s); bottom: calc(-1 * %s); background-color: %s; border-radius: %gpx; z-index: -1;\"></div>\n",
			off, off, off, off, z.Effect.ShadowColor, z.BorderRadius)
	}
	border := ""
	if z.Effect.Enabled {
		border = fmt.Sprintf(" border: clamp(1px, 0.5vw, %gpx) solid %s;", z.Effect.BorderWidth, z.Effect.BorderColor)
	}
	wf("              <div style=\"position: relative; width: 100%%; height: 100%%; overflow: hidden; border-radius: %gpx;%s\">\n",
		z.BorderRadius, border)
	if z.ImageURL != "" {
		wf("                <img src=\"%s\" alt=\"\" style=\"width: 100%%; height: 100%%; object-fit: %s;\" />\n",
			z.ImageURL, z.Fit)
	} else {
		wf("                <div style=\"width: 100%%; height: 100%%; background: #e5e5e5; display: flex; align-items: center; justify-content: center; color: #999; font-size: clamp(10px, 3vw, 16px);\">%s</div>\n",
			t.Image)
	}
	wf("              </div>\n            </div>\n")
}

func writeBubble(wf func(string, ...any), b domain.Bubble, projectWidth, sectionHeight int) {
	pw := float64(projectWidth)
	sh := float64(sectionHeight)
	left := b.Position.X / pw * 100
	top := b.Position.Y / sh * 100
	width := b.Size.Width / pw * 100
	height := b.Size.Height / sh * 100

	borderStyle := "solid"
	if b.Style.Type == domain.BubbleWhisper {
		borderStyle = "dashed"
	}

	wf("            <div class=\"bubble\" data-font-size=\"%g\" style=\"position: absolute; left: %g%%; top: %g%%; width: %g%%; height: %g%%; background-color: %s; border: %gpx %s %s; padding: clamp(4px, 2vw, 12px); display: flex; align-items: center; justify-content: center; box-shadow: 4px 4px 0px rgba(0,0,0,0.3); z-index: 100; %s\">\n",
		b.Style.FontSize, left, top, width, height,
		b.Style.BackgroundColor, b.Style.BorderWidth, borderStyle, b.Style.BorderColor,
		bubbleShapeCSS(b.Style.Type))

	// Font size scales with viewport width but never past the authored size.
	fontVw := b.Style.FontSize / pw * 100
	wf("              <span style=\"color: %s; font-size: clamp(10px, %gvw, %gpx); font-weight: %s; font-style: %s; text-align: center; word-break: break-word; line-height: 1.2;\">%s</span>\n",
		b.Style.TextColor, fontVw, b.Style.FontSize, b.Style.FontWeight, b.Style.FontStyle, b.Text)

	if tail := tailCSS(b.Style); tail != "" {
		wf("              <div class=\"bubble-tail\" style=\"position: absolute; width: 0; height: 0; border-style: solid; %s\"></div>\n", tail)
	}
	wf("            </div>\n")
}

func bubbleShapeCSS(t domain.BubbleType) string {
	switch t {
	case domain.BubbleThought:
		return "border-radius: 50%;"
	case domain.BubbleWhisper:
		return "border-style: dashed;"
	case domain.BubbleNarrator:
		return "border-radius: 0;"
	case domain.BubbleShout:
		// 10-point star; the clip also swallows any tail, so shout bubbles
		// never render one.
		return "clip-path: polygon(50% 0%, 61% 35%, 98% 35%, 68% 57%, 79% 91%, 50% 70%, 21% 91%, 32% 57%, 2% 35%, 39% 35%);"
	default:
		return "border-radius: 16px;"
	}
}

// tailCSS returns the positioning rules for a bubble's tail triangle, or ""
// when the bubble has no tail. Shout bubbles never get one regardless of
// the configured tail position.
func tailCSS(st domain.BubbleStyle) string {
	if st.TailPosition == domain.TailNone || st.Type == domain.BubbleShout {
		return ""
	}
	c := st.BorderColor
	switch st.TailPosition {
	case domain.TailLeft:
		return fmt.Sprintf("left: -%dpx; top: 50%%; transform: translateY(-50%%); border-width: %dpx %dpx %dpx 0; border-color: transparent %s transparent transparent;",
			tailSize, tailSize, tailSize, tailSize, c)
	case domain.TailRight:
		return fmt.Sprintf("right: -%dpx; top: 50%%; transform: translateY(-50%%); border-width: %dpx 0 %dpx %dpx; border-color: transparent transparent transparent %s;",
			tailSize, tailSize, tailSize, tailSize, c)
	case domain.TailTop:
		return fmt.Sprintf("top: -%dpx; left: 50%%; transform: translateX(-50%%); border-width: 0 %dpx %dpx %dpx; border-color: transparent transparent %s transparent;",
			tailSize, tailSize, tailSize, tailSize, c)
	case domain.TailBottom:
		return fmt.Sprintf("bottom: -%dpx; left: 50%%; transform: translateX(-50%%); border-width: %dpx %dpx 0 %dpx; border-color: %s transparent transparent transparent;",
			tailSize, tailSize, tailSize, tailSize, c)
	}
	return ""
}
