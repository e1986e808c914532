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
	"webtoonflow/internal/i18n"
)

// NewProject builds the demo document shown when no project is loaded:
// three sections (full, split-vertical, manga-three-panel) with a narrator
// title card in the first one. Ids are fixed so the seed is reproducible.
func NewProject(t i18n.Table) domain.Project {
	ts := now()

	titleCard := domain.Bubble{
		ID:       "bubble-1",
		Position: domain.PixelPoint{X: 50, Y: 50},
		Size:     domain.PixelSize{Width: 280, Height: 80},
		Text:     t.YourTitleHere,
		Style: domain.BubbleStyle{
			Type:            domain.BubbleNarrator,
			TailPosition:    domain.TailNone,
			BackgroundColor: "#000000",
			TextColor:       "#ffffff",
			BorderColor:     "#000000",
			BorderWidth:     0,
			FontSize:        24,
			FontWeight:      "bold",
			FontStyle:       "normal",
		},
		SectionID: "section-1",
	}

	sections := []domain.Section{
		{
			ID:    "section-1",
			Order: 0,
			Layout: domain.Layout{
				Type: domain.LayoutFull,
				Zones: []domain.Zone{
					domain.NewZone("zone-1-1", domain.PercentPoint{X: 2, Y: 2}, domain.PercentSize{Width: 96, Height: 96}),
				},
			},
			Bubbles:         []domain.Bubble{titleCard},
			BackgroundColor: "#ffffff",
			Height:          500,
		},
		{
			ID:    "section-2",
			Order: 1,
			Layout: domain.Layout{
				Type: domain.LayoutSplitVertical,
				Zones: []domain.Zone{
					domain.NewZone("zone-2-1", domain.PercentPoint{X: 2, Y: 2}, domain.PercentSize{Width: 47, Height: 96}),
					domain.NewZone("zone-2-2", domain.PercentPoint{X: 51, Y: 2}, domain.PercentSize{Width: 47, Height: 96}),
				},
			},
			Bubbles:         []domain.Bubble{},
			BackgroundColor: "#ffffff",
			Height:          400,
		},
		{
			ID:    "section-3",
			Order: 2,
			Layout: domain.Layout{
				Type: domain.LayoutMangaThreePanel,
				Zones: []domain.Zone{
					domain.NewZone("zone-3-1", domain.PercentPoint{X: 2, Y: 2}, domain.PercentSize{Width: 96, Height: 47}),
					domain.NewZone("zone-3-2", domain.PercentPoint{X: 2, Y: 51}, domain.PercentSize{Width: 47, Height: 47}),
					domain.NewZone("zone-3-3", domain.PercentPoint{X: 51, Y: 51}, domain.PercentSize{Width: 47, Height: 47}),
				},
			},
			Bubbles:         []domain.Bubble{},
			BackgroundColor: "#ffffff",
			Height:          600,
		},
	}

	return domain.Project{
		ID:              "project-1",
		Title:           t.UntitledProject,
		Author:          t.AnonymousAuthor,
		Sections:        sections,
		BackgroundColor: "#f0f0f0",
		Width:           domain.DefaultProjectWidth,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
}
