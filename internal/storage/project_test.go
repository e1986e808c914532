/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"webtoonflow/internal/edit"
	"webtoonflow/internal/i18n"
)

func TestExportImportRoundTrip(t *testing.T) {
	p := edit.NewProject(i18n.For("en"))
	data, err := Export(p)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	got, err := Import(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, p)
	}
}

func TestImportAcceptsBareProject(t *testing.T) {
	bare := []byte(`{"id":"p1","title":"T","author":"A","sections":[],"backgroundColor":"#fff","width":800,"createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}`)
	p, err := Import(bare)
	if err != nil {
		t.Fatalf("bare import: %v", err)
	}
	if p.ID != "p1" || p.Title != "T" {
		t.Fatalf("unexpected project: %+v", p)
	}
}

func TestImportAcceptsWrappedProject(t *testing.T) {
	wrapped := []byte(`{"project":{"id":"p2","sections":[]}}`)
	p, err := Import(wrapped)
	if err != nil {
		t.Fatalf("wrapped import: %v", err)
	}
	if p.ID != "p2" {
		t.Fatalf("unexpected project: %+v", p)
	}
}

func TestImportRejectsMissingSections(t *testing.T) {
	if _, err := Import([]byte(`{"id":"x"}`)); !errors.Is(err, ErrInvalidProject) {
		t.Fatalf("expected ErrInvalidProject, got %v", err)
	}
}

func TestImportRejectsNonArraySections(t *testing.T) {
	if _, err := Import([]byte(`{"id":"x","sections":"nope"}`)); !errors.Is(err, ErrInvalidProject) {
		t.Fatalf("expected ErrInvalidProject, got %v", err)
	}
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	if _, err := Import([]byte(`{not json`)); err == nil {
		t.Fatalf("malformed input must fail")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "comic.json")
	p := edit.NewProject(i18n.For("fr"))

	ph := &ProjectHandle{Path: path, Project: p}
	if err := Save(ph); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got.Project, p) {
		t.Fatalf("loaded project differs from saved one")
	}
}

func TestSaveKeepsTimestampedBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "comic.json")
	p := edit.NewProject(i18n.For("en"))
	ph := &ProjectHandle{Path: path, Project: p}

	if err := Save(ph); err != nil {
		t.Fatalf("first save: %v", err)
	}
	title := "Second"
	ph.Project = edit.UpdateMetadata(ph.Project, edit.MetaUpdate{Title: &title})
	if err := Save(ph); err != nil {
		t.Fatalf("second save: %v", err)
	}

	ents, err := os.ReadDir(filepath.Join(dir, BackupsDirName))
	if err != nil {
		t.Fatalf("read backups: %v", err)
	}
	if len(ents) == 0 {
		t.Fatalf("second save must leave a backup of the first file")
	}
}

func TestLoadFallsBackToBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "comic.json")
	p := edit.NewProject(i18n.For("en"))
	ph := &ProjectHandle{Path: path, Project: p}

	if err := Save(ph); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := Save(ph); err != nil { // creates the backup
		t.Fatalf("save again: %v", err)
	}
	if err := os.WriteFile(path, []byte("{corrupt"), 0o644); err != nil {
		t.Fatalf("corrupt: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load with backup: %v", err)
	}
	if got.Project.ID != p.ID {
		t.Fatalf("backup project mismatch: %+v", got.Project)
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"My Great Webtoon": "my-great-webtoon",
		"  Épisode #1!  ":  "pisode-1",
		"":                 "untitled",
		"---":              "untitled",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}
