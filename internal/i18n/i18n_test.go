/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package i18n

import "testing"

func TestForKnownLanguages(t *testing.T) {
	if got := For("fr").TheEnd; got != "Fin" {
		t.Fatalf("fr table: got %q", got)
	}
	if got := For("en").TheEnd; got != "The End" {
		t.Fatalf("en table: got %q", got)
	}
}

func TestForUnknownFallsBack(t *testing.T) {
	if For("xx") != For(DefaultLanguage) {
		t.Fatalf("unknown tag should fall back to default language")
	}
}

func TestTablesComplete(t *testing.T) {
	for _, lang := range Languages() {
		tb := For(lang)
		if tb.UntitledProject == "" || tb.TextPlaceholder == "" || tb.ScrollToRead == "" {
			t.Fatalf("%s table has empty strings: %+v", lang, tb)
		}
	}
}
