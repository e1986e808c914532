/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package asset turns dropped image files into self-contained data-URI
// references a zone can carry. Projects embed their images so an exported
// page or a shared project file needs no sidecar directory.
package asset

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	gocache "github.com/patrickmn/go-cache"
)

// ErrUnsupportedFormat is returned for bytes no registered image decoder
// recognizes.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Ref is a displayable reference to an ingested image.
type Ref struct {
	URI    string // data URI, ready for Zone.ImageURL
	MIME   string
	Width  int // intrinsic pixels
	Height int
	Bytes  int // encoded source size
}

var mimeByFormat = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
}

// Store ingests image bytes and memoizes the resulting references by
// content hash, so re-dropping the same file doesn't re-encode it.
type Store struct {
	cache *gocache.Cache
}

// NewStore returns a store whose memoized references expire after ttl of
// no use. A non-positive ttl keeps them until the store is dropped.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &Store{cache: gocache.New(ttl, 10*time.Minute)}
}

// Ingest validates the bytes as an image and returns a data-URI reference.
func (s *Store) Ingest(data []byte) (Ref, error) {
	sum := sha256.Sum256(data)
	key := hex.EncodeToString(sum[:])
	if v, ok := s.cache.Get(key); ok {
		ref := v.(Ref)
		s.cache.SetDefault(key, ref) // refresh ttl
		return ref, nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Ref{}, fmt.Errorf("decode image: %w", ErrUnsupportedFormat)
	}
	mime, ok := mimeByFormat[format]
	if !ok {
		return Ref{}, ErrUnsupportedFormat
	}

	ref := Ref{
		URI:    "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
		MIME:   mime,
		Width:  cfg.Width,
		Height: cfg.Height,
		Bytes:  len(data),
	}
	s.cache.SetDefault(key, ref)
	return ref, nil
}

// IngestFile reads and ingests an image file from disk.
func (s *Store) IngestFile(path string) (Ref, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ref{}, fmt.Errorf("read image: %w", err)
	}
	return s.Ingest(data)
}
