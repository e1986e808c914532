/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

import "testing"

func TestInset(t *testing.T) {
	r := R(0, 0, 100, 50).Inset(2)
	if r.X != 2 || r.Y != 2 || r.W != 96 || r.H != 46 {
		t.Fatalf("unexpected inset rect: %+v", r)
	}
}

func TestDragWithin(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		boxW float64
		boxH float64
		want Rect
	}{
		{"inside untouched", R(10, 10, 30, 30), 100, 100, R(10, 10, 30, 30)},
		{"negative pins to origin", R(-5, -8, 30, 30), 100, 100, R(0, 0, 30, 30)},
		{"overflow pins to far edge", R(90, 95, 30, 30), 100, 100, R(70, 70, 30, 30)},
		{"oversized pins to origin", R(40, 40, 200, 200), 100, 100, R(0, 0, 200, 200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DragWithin(tt.in, tt.boxW, tt.boxH); got != tt.want {
				t.Fatalf("got %+v want %+v", got, tt.want)
			}
		})
	}
}

func TestResizePercent(t *testing.T) {
	// width is pushed down so x+w stays inside the percent box
	r := ResizePercent(R(60, 0, 80, 50), 10, 10)
	if r.X+r.W > PercentBox || r.Y+r.H > PercentBox {
		t.Fatalf("rect escapes percent box: %+v", r)
	}
	if r.W != 40 {
		t.Fatalf("width not trimmed to box: %+v", r)
	}
	// minimum floor
	r = ResizePercent(R(0, 0, 1, 1), 10, 10)
	if r.W != 10 || r.H != 10 {
		t.Fatalf("minimum size not enforced: %+v", r)
	}
	if !FitsPercent(r) {
		t.Fatalf("resized rect must fit: %+v", r)
	}
}

func TestResizePixelFloorOnly(t *testing.T) {
	r := ResizePixel(R(700, 300, 20, 20), 100, 50)
	if r.W != 100 || r.H != 50 {
		t.Fatalf("pixel floor not applied: %+v", r)
	}
	if r.X != 700 || r.Y != 300 {
		t.Fatalf("resize must not move the rect: %+v", r)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-50, 100, 2000) != 100 {
		t.Fatalf("low clamp failed")
	}
	if Clamp(9999, 100, 2000) != 2000 {
		t.Fatalf("high clamp failed")
	}
	if Clamp(400, 100, 2000) != 400 {
		t.Fatalf("in-range value changed")
	}
}
