/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package i18n is a passive string table keyed by a language tag. The core
// substitutes these strings into seed documents and exported pages; it does
// not interpret them.
package i18n

// Table holds every user-facing string the core substitutes.
type Table struct {
	UntitledProject string
	AnonymousAuthor string
	YourTitleHere   string
	TextPlaceholder string

	By           string
	TheEnd       string
	ReadAgain    string
	ScrollToRead string

	Sections string
	Zones    string
	Bubbles  string
	Image    string
}

var tables = map[string]Table{
	"en": {
		UntitledProject: "Untitled project",
		AnonymousAuthor: "Anonymous",
		YourTitleHere:   "Your title here",
		TextPlaceholder: "Text...",
		By:              "by",
		TheEnd:          "The End",
		ReadAgain:       "↑ Read again",
		ScrollToRead:    "Scroll to read",
		Sections:        "Sections",
		Zones:           "Zones",
		Bubbles:         "Bubbles",
		Image:           "Image",
	},
	"fr": {
		UntitledProject: "Projet sans titre",
		AnonymousAuthor: "Anonyme",
		YourTitleHere:   "Votre titre ici",
		TextPlaceholder: "Texte...",
		By:              "par",
		TheEnd:          "Fin",
		ReadAgain:       "↑ Relire",
		ScrollToRead:    "Défilez pour lire",
		Sections:        "Sections",
		Zones:           "Zones",
		Bubbles:         "Bulles",
		Image:           "Image",
	},
}

// DefaultLanguage is used when a tag has no table.
const DefaultLanguage = "en"

// For returns the table for the given language tag, falling back to the
// default language for unknown tags.
func For(lang string) Table {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[DefaultLanguage]
}

// Languages lists the known language tags.
func Languages() []string { return []string{"en", "fr"} }
