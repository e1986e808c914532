/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package geom provides the rectangle math shared by the editor and the
// exporter. Two coordinate regimes exist side by side and are never mixed
// implicitly: image zones live in percent of their section box (0..100 on
// both axes), bubbles live in absolute pixels relative to their section's
// top-left corner. Callers pick the regime via the clamp helpers below.
package geom

// Rect is an axis-aligned rectangle defined by min corner and size.
// The unit (percent or pixel) is the caller's regime.
type Rect struct {
	X, Y float64
	W, H float64
}

// R is shorthand for constructing a Rect.
func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Inset returns a rectangle shrunk by d on all sides (negative grows).
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PercentBox is the implicit bounding box of the percent regime.
const PercentBox = 100.0

// DragWithin moves the rect so it stays fully inside a boxW×boxH container,
// preserving its size. Oversized rects pin to the container origin.
func DragWithin(r Rect, boxW, boxH float64) Rect {
	r.X = Clamp(r.X, 0, max(0, boxW-r.W))
	r.Y = Clamp(r.Y, 0, max(0, boxH-r.H))
	return r
}

// ResizePercent applies the percent-regime resize rules: the rect keeps a
// minimum size, its origin never goes negative, and width/height shrink so
// that x+w and y+h never exceed 100.
func ResizePercent(r Rect, minW, minH float64) Rect {
	r.W = max(minW, r.W)
	r.H = max(minH, r.H)
	r.X = max(0, r.X)
	r.Y = max(0, r.Y)
	r.W = min(r.W, PercentBox-r.X)
	r.H = min(r.H, PercentBox-r.Y)
	return r
}

// ResizePixel applies the pixel-regime resize rules: a minimum size floor
// and nothing else. Bubbles may grow past the section edge while resizing;
// the subsequent drag clamp pulls them back in.
func ResizePixel(r Rect, minW, minH float64) Rect {
	r.W = max(minW, r.W)
	r.H = max(minH, r.H)
	return r
}

// FitsPercent reports whether the rect respects the percent-box invariant
// (x+w <= 100 and y+h <= 100, origin non-negative).
func FitsPercent(r Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= PercentBox && r.Y+r.H <= PercentBox
}
