// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render assembles manifest images into a fixed-format PDF with
// full-bleed pages.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/storyforge/bindery/internal/imageload"
	"github.com/storyforge/bindery/internal/pageformat"
	"github.com/storyforge/bindery/pkg/types"
)

// Placement computes the full-bleed transform for an image on a page. The
// scale is the larger of the two axis ratios so the scaled image covers the
// page in both dimensions; the image is centered, which makes the offsets
// negative whenever the scaled image overhangs the page (edge cropping).
func Placement(pageW, pageH, imgW, imgH float64) (x, y, w, h float64) {
	scale := math.Max(pageW/imgW, pageH/imgH)
	w = imgW * scale
	h = imgH * scale
	x = (pageW - w) / 2
	y = (pageH - h) / 2
	return x, y, w, h
}

// Generate runs the whole render pipeline for one manifest: resolve the page
// size, draw the cover and each page image full-bleed in order, write the
// document, and stat the output. It never returns a Go error; every failure
// is trapped into the returned result's error field. Individual images that
// cannot be loaded are logged to w and skipped; the render continues.
func Generate(m types.Manifest, cfg types.RenderConfig, w io.Writer) types.RenderResult {
	if m.OutputPath == "" {
		return types.Failure(errors.New("manifest has no output_path"))
	}

	name := m.Format
	if name == "" {
		name = cfg.DefaultFormat
	}
	if name == "" {
		name = pageformat.DefaultName
	}
	pageW, pageH := pageformat.Lookup(name)

	fmt.Fprintf(w, "generating: %s\n", m.OutputPath)
	fmt.Fprintf(w, "format: %s (%g\" x %g\")\n", name, pageW/pageformat.PointsPerInch, pageH/pageformat.PointsPerInch)
	fmt.Fprintf(w, "pages: %d\n", len(m.Pages))

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	if m.CoverImage != "" {
		fmt.Fprintf(w, "cover: %s\n", m.CoverImage)
		drawPage(pdf, m.CoverImage, pageW, pageH, cfg.JPEGQuality, w)
	}

	for i, page := range m.Pages {
		if page.ImagePath == "" {
			fmt.Fprintf(w, "skipped: page %d/%d (no image path)\n", i+1, len(m.Pages))
			continue
		}
		fmt.Fprintf(w, "page %d/%d: %s\n", i+1, len(m.Pages), page.ImagePath)
		drawPage(pdf, page.ImagePath, pageW, pageH, cfg.JPEGQuality, w)
	}

	if pdf.Err() {
		return types.Failure(fmt.Errorf("assembling document: %w", pdf.Error()))
	}

	if dir := filepath.Dir(m.OutputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return types.Failure(fmt.Errorf("creating output directory: %w", err))
		}
	}

	if err := pdf.OutputFileAndClose(m.OutputPath); err != nil {
		return types.Failure(fmt.Errorf("writing %s: %w", m.OutputPath, err))
	}

	info, err := os.Stat(m.OutputPath)
	if err != nil {
		return types.Failure(fmt.Errorf("stating %s: %w", m.OutputPath, err))
	}

	fmt.Fprintf(w, "wrote %s (%.1f MB)\n", m.OutputPath, float64(info.Size())/(1024*1024))

	return types.RenderResult{
		Success:    true,
		OutputPath: m.OutputPath,
		FileSize:   info.Size(),
		PageCount:  m.PageCount(),
	}
}

// drawPage loads one image and draws it full-bleed on a fresh page. Load
// failures and PDF writer errors are logged and swallowed so the render
// continues with the next image. Registration happens before the page is
// added, so a rejected image leaves no blank page behind. It reports whether
// a page was drawn.
func drawPage(pdf *gofpdf.Fpdf, path string, pageW, pageH float64, jpegQuality int, w io.Writer) bool {
	img, err := imageload.Load(path, jpegQuality)
	if err != nil {
		fmt.Fprintf(w, "skipped: %v\n", err)
		return false
	}

	opts := gofpdf.ImageOptions{ImageType: img.Type}
	pdf.RegisterImageOptionsReader(path, opts, img.Data)
	if pdf.Err() {
		fmt.Fprintf(w, "skipped: %s (register: %v)\n", path, pdf.Error())
		pdf.ClearError()
		return false
	}

	x, y, sw, sh := Placement(pageW, pageH, float64(img.Width), float64(img.Height))

	pdf.AddPage()
	pdf.ImageOptions(path, x, y, sw, sh, false, opts, 0, "")
	if pdf.Err() {
		fmt.Fprintf(w, "skipped: %s (draw: %v)\n", path, pdf.Error())
		pdf.ClearError()
		return false
	}
	return true
}
