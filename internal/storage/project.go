/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package storage reads and writes the JSON project file. Saves are
// transactional (temp file + rename) with timestamped backups; imports
// accept the project either bare or wrapped as {"project": ...} and are
// validated against a minimal schema before they replace anything.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"webtoonflow/internal/domain"
)

const BackupsDirName = "backups"

// ErrInvalidProject rejects imports that do not look like a project file.
// The caller's current project stays untouched.
var ErrInvalidProject = errors.New("invalid project file")

// importSchema is the minimal acceptance rule: an identifier and a
// sections array. Everything else is tolerated so older or richer files
// still open.
const importSchema = `{
  "type": "object",
  "required": ["id", "sections"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "sections": {"type": "array"}
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(importSchema)

// ProjectHandle tracks a project loaded from or saved to disk.
type ProjectHandle struct {
	Path    string
	Project domain.Project
}

// envelope is the wrapped exchange shape.
type envelope struct {
	Project *json.RawMessage `json:"project"`
}

// Import parses a project from data, accepting both the bare Project tree
// and the {"project": ...} wrapper. A candidate is accepted only if it
// carries an id and a sections array; otherwise ErrInvalidProject.
func Import(data []byte) (domain.Project, error) {
	candidate := data
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return domain.Project{}, fmt.Errorf("parse project file: %w", err)
	}
	if env.Project != nil {
		candidate = *env.Project
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(candidate))
	if err != nil {
		return domain.Project{}, fmt.Errorf("validate project file: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return domain.Project{}, fmt.Errorf("%w: %s", ErrInvalidProject, strings.Join(msgs, "; "))
	}

	var p domain.Project
	if err := json.Unmarshal(candidate, &p); err != nil {
		return domain.Project{}, fmt.Errorf("parse project: %w", err)
	}
	return p, nil
}

// Export serializes the project in the wrapped exchange shape, indented
// for human-readable files.
func Export(p domain.Project) ([]byte, error) {
	data, err := json.MarshalIndent(struct {
		Project domain.Project `json:"project"`
	}{Project: p}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal project: %w", err)
	}
	return append(data, '\n'), nil
}

// Load opens a project file. If the file cannot be read or parsed, the
// latest timestamped backup next to it is tried before giving up.
func Load(path string) (*ProjectHandle, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		p, berr := loadFromLatestBackup(path)
		if berr != nil {
			return nil, fmt.Errorf("open project: %w; backup attempt: %v", err, berr)
		}
		return &ProjectHandle{Path: path, Project: *p}, nil
	}
	p, err := Import(b)
	if err != nil {
		bp, berr := loadFromLatestBackup(path)
		if berr != nil {
			return nil, fmt.Errorf("import project: %w; backup attempt: %v", err, berr)
		}
		return &ProjectHandle{Path: path, Project: *bp}, nil
	}
	return &ProjectHandle{Path: path, Project: p}, nil
}

// Save writes the handle's project to disk transactionally: serialize,
// back up the previous file (timestamped, under a backups dir next to the
// target), write a temp file in the same directory, then rename over.
func Save(ph *ProjectHandle) error {
	if ph == nil {
		return errors.New("nil ProjectHandle")
	}
	if strings.TrimSpace(ph.Path) == "" {
		return errors.New("invalid ProjectHandle: missing path")
	}
	data, err := Export(ph.Project)
	if err != nil {
		return err
	}

	dir := filepath.Dir(ph.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure project dir: %w", err)
	}

	// Back up the previous file before replacing it.
	if _, statErr := os.Stat(ph.Path); statErr == nil {
		bdir := filepath.Join(dir, BackupsDirName)
		if err := os.MkdirAll(bdir, 0o755); err != nil {
			return fmt.Errorf("ensure backups dir: %w", err)
		}
		stamp := time.Now().Format("20060102-150405")
		bpath := filepath.Join(bdir, fmt.Sprintf("%s.%s.bak", filepath.Base(ph.Path), stamp))
		prev, rerr := os.ReadFile(ph.Path)
		if rerr != nil {
			return fmt.Errorf("read current project for backup: %w", rerr)
		}
		if werr := os.WriteFile(bpath, prev, 0o644); werr != nil {
			return fmt.Errorf("backup current project: %w", werr)
		}
	}

	temp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%d-%d", filepath.Base(ph.Path), os.Getpid(), rand.Int()))
	if err := writeFileSync(temp, data); err != nil {
		return fmt.Errorf("write temp project: %w", err)
	}
	// On Windows, rename over an existing file needs the target removed first.
	if _, err := os.Stat(ph.Path); err == nil {
		_ = os.Remove(ph.Path)
	}
	if err := os.Rename(temp, ph.Path); err != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("replace project file: %w", err)
	}
	return nil
}

// AutosaveCrashSnapshot writes the in-memory project to a timestamped
// snapshot under the backups dir, bypassing the transactional Save so a
// wedged project file cannot block it. Returns the snapshot path.
func AutosaveCrashSnapshot(ph *ProjectHandle) (string, error) {
	if ph == nil {
		return "", errors.New("nil ProjectHandle")
	}
	data, err := Export(ph.Project)
	if err != nil {
		return "", err
	}
	dir := os.TempDir()
	if strings.TrimSpace(ph.Path) != "" {
		dir = filepath.Join(filepath.Dir(ph.Path), BackupsDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure backups dir: %w", err)
	}
	stamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("crash-autosave-%s.json", stamp))
	if err := writeFileSync(path, data); err != nil {
		return "", fmt.Errorf("write crash snapshot: %w", err)
	}
	return path, nil
}

// Slug derives a file-name-safe slug from a project title.
func Slug(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	s := strings.TrimRight(b.String(), "-")
	if s == "" {
		return "untitled"
	}
	return s
}

// writeFileSync writes data to a file and flushes it to disk.
func writeFileSync(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}

// loadFromLatestBackup tries the newest timestamped backup for path.
func loadFromLatestBackup(path string) (*domain.Project, error) {
	base := filepath.Base(path)
	bdir := filepath.Join(filepath.Dir(path), BackupsDirName)
	ents, err := os.ReadDir(bdir)
	if err != nil {
		return nil, fmt.Errorf("read backups dir: %w", err)
	}
	var candidates []string
	for _, e := range ents {
		name := e.Name()
		if strings.HasPrefix(name, base+".") && strings.HasSuffix(name, ".bak") {
			candidates = append(candidates, filepath.Join(bdir, name))
		}
	}
	if len(candidates) == 0 {
		return nil, errors.New("no backups found")
	}
	sort.Strings(candidates) // timestamp in name yields lexicographic order
	latest := candidates[len(candidates)-1]
	b, err := os.ReadFile(latest)
	if err != nil {
		return nil, fmt.Errorf("read latest backup: %w", err)
	}
	p, err := Import(b)
	if err != nil {
		return nil, fmt.Errorf("parse latest backup: %w", err)
	}
	return &p, nil
}
