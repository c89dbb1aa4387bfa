// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pageformat maps named trim sizes to PDF page dimensions in points.
package pageformat

import "sort"

// PointsPerInch is the PDF unit conversion: 72 points per inch.
const PointsPerInch = 72.0

// DefaultName is the trim size used when a manifest names an unknown or
// empty format.
const DefaultName = "8x8"

// Size holds a page's physical dimensions in inches.
type Size struct {
	Width  float64
	Height float64
}

// formats lists the supported trim sizes. The first five are the standard
// tier, the second five the extended tier.
var formats = map[string]Size{
	"5.5x8.5": {5.5, 8.5},
	"7x7":     {7, 7},
	"8x8":     {8, 8},
	"6x9":     {6, 9},
	"8x10":    {8, 10},

	"5x8":       {5, 8},
	"8.5x11":    {8.5, 11},
	"8.5x8.5":   {8.5, 8.5},
	"6.14x9.21": {6.14, 9.21},
	"8.25x6":    {8.25, 6},
}

// Lookup returns the page size in points for the named format. Unknown names
// fall back to the 8x8 default.
func Lookup(name string) (width, height float64) {
	s, ok := formats[name]
	if !ok {
		s = formats[DefaultName]
	}
	return s.Width * PointsPerInch, s.Height * PointsPerInch
}

// Known reports whether name is a supported format.
func Known(name string) bool {
	_, ok := formats[name]
	return ok
}

// Names returns the supported format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(formats))
	for n := range formats {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Dimensions returns the physical size in inches for the named format.
// Unknown names fall back to the 8x8 default.
func Dimensions(name string) Size {
	s, ok := formats[name]
	if !ok {
		return formats[DefaultName]
	}
	return s
}
