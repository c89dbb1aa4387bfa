// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared records exchanged between the manifest
// loader, the render pipeline, the ledger, and the CLI.
package types

// PageEntry describes one story page of the book: a single image that will
// fully cover its page.
type PageEntry struct {
	// ImagePath is the local filesystem path to the page image. An empty
	// path causes the page to be skipped with a log line.
	ImagePath string `json:"image_path" yaml:"image_path"`
}

// Manifest is the descriptor driving one render: where the PDF goes, which
// fixed page format to use, and which images fill it.
type Manifest struct {
	// OutputPath is where the generated PDF is written. Required.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Format names a page size from the format table (e.g. "8x8", "6x9").
	// Unknown or empty names fall back to the 8x8 default.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// CoverImage is an optional image drawn as the first page.
	CoverImage string `json:"cover_image,omitempty" yaml:"cover_image,omitempty"`

	// Pages lists the story pages in reading order.
	Pages []PageEntry `json:"pages" yaml:"pages"`
}

// PageCount returns the number of pages the manifest declares: one per page
// entry plus one for the cover when set. Skipped images do not change this
// figure; it reflects the manifest, not the pages actually drawn.
func (m Manifest) PageCount() int {
	n := len(m.Pages)
	if m.CoverImage != "" {
		n++
	}
	return n
}
