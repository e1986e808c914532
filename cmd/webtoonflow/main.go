/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"webtoonflow/internal/asset"
	"webtoonflow/internal/config"
	"webtoonflow/internal/crash"
	"webtoonflow/internal/edit"
	"webtoonflow/internal/export"
	"webtoonflow/internal/i18n"
	applog "webtoonflow/internal/log"
	"webtoonflow/internal/storage"
	"webtoonflow/internal/version"
)

func usage() {
	fmt.Println("WebtoonFlow — vertical comic editor core")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  webtoonflow version|-v|--version                       Show version")
	fmt.Println("  webtoonflow new <file>                                 Create a starter project at <file>")
	fmt.Println("  webtoonflow info <file>                                Print a project summary")
	fmt.Println("  webtoonflow export <file> [<outdir>]                   Render the project to a standalone HTML page")
	fmt.Println("  webtoonflow attach <file> <section> <zone> <image>     Embed an image file into a zone")
	fmt.Println("  webtoonflow bubble <file> <section> [<text>]           Add a text bubble to a section")
}

func main() {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	var ph *storage.ProjectHandle
	defer func() { crash.Recover(ph) }()

	cfg, err := config.Load()
	if err != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", err))
	}

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("WebtoonFlow — vertical comic editor core")
			fmt.Println(version.String())
			return
		case "new":
			if len(args) < 3 {
				fmt.Println("new requires <file>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			l.Info("new project", slog.String("file", abs))
			p := edit.NewProject(i18n.For(cfg.General.Language))
			ph = &storage.ProjectHandle{Path: abs, Project: p}
			if err := storage.Save(ph); err != nil {
				l.Error("save failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Created project at", abs)
			return
		case "info":
			if len(args) < 3 {
				fmt.Println("info requires <file>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			h, err := storage.Load(abs)
			if err != nil {
				l.Error("load failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			ph = h
			p := h.Project
			zones, bubbles := 0, 0
			for _, s := range p.Sections {
				zones += len(s.Layout.Zones)
				bubbles += len(s.Bubbles)
			}
			t := i18n.For(cfg.General.Language)
			fmt.Printf("%s %s %s\n", p.Title, t.By, p.Author)
			fmt.Printf("%s: %d  %s: %d  %s: %d\n", t.Sections, len(p.Sections), t.Zones, zones, t.Bubbles, bubbles)
			fmt.Printf("Canvas: %d x %d px\n", p.Width, p.TotalHeight())
			return
		case "export":
			if len(args) < 3 {
				fmt.Println("export requires <file>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			outDir := filepath.Dir(abs)
			if len(args) >= 4 {
				outDir, _ = filepath.Abs(args[3])
			}
			h, err := storage.Load(abs)
			if err != nil {
				l.Error("load failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			ph = h
			opt := export.Options{
				Language: cfg.General.Language,
				MaxWidth: cfg.Export.MaxReaderWidth,
			}
			if cfg.Export.Animate {
				opt.Animator = export.GSAPAnimator{
					BaseURL: cfg.Export.AnimationCDN,
					Version: cfg.Export.AnimationVersion,
				}
			}
			l.Info("export html", slog.String("file", abs), slog.String("outdir", outDir))
			name, err := export.HTMLFile(h.Project, outDir, opt)
			if err != nil {
				l.Error("export failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Wrote", name)
			return
		case "bubble":
			if len(args) < 4 {
				fmt.Println("bubble requires <file> and <section>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			sectionID := args[3]
			text := i18n.For(cfg.General.Language).TextPlaceholder
			if len(args) >= 5 {
				text = strings.Join(args[4:], " ")
			}
			h, err := storage.Load(abs)
			if err != nil {
				l.Error("load failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			ph = h
			p, b, err := edit.AddBubble(h.Project, sectionID, nil, text)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			h.Project = p
			if err := storage.Save(h); err != nil {
				l.Error("save failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			l.Info("bubble added", slog.String("section", sectionID), slog.String("bubble", b.ID))
			fmt.Printf("Added bubble %s to %s\n", b.ID, sectionID)
			return
		case "attach":
			if len(args) < 6 {
				fmt.Println("attach requires <file> <section> <zone> <image>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			sectionID, zoneID, imagePath := args[3], args[4], args[5]
			h, err := storage.Load(abs)
			if err != nil {
				l.Error("load failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			ph = h

			ref, err := asset.NewStore(0).IngestFile(imagePath)
			if err != nil {
				l.Error("ingest failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}

			s := h.Project.SectionByID(sectionID)
			if s == nil {
				fmt.Println("Error:", edit.ErrSectionNotFound)
				os.Exit(1)
			}
			var updated bool
			for _, z := range s.Layout.Zones {
				if z.ID != zoneID {
					continue
				}
				z.ImageURL = ref.URI
				p, err := edit.UpdateZone(h.Project, sectionID, z)
				if err != nil {
					fmt.Println("Error:", err)
					os.Exit(1)
				}
				h.Project = p
				updated = true
				break
			}
			if !updated {
				fmt.Println("Error:", edit.ErrZoneNotFound)
				os.Exit(1)
			}
			if err := storage.Save(h); err != nil {
				l.Error("save failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			l.Info("image attached",
				slog.String("zone", zoneID),
				slog.String("mime", ref.MIME),
				slog.Int("bytes", ref.Bytes))
			fmt.Printf("Attached %s (%s, %dx%d) to zone %s\n", imagePath, ref.MIME, ref.Width, ref.Height, zoneID)
			return
		}
	}

	usage()
}
