// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
	"output_path": "output/book.pdf",
	"format": "6x9",
	"cover_image": "art/cover.png",
	"pages": [
		{"image_path": "art/page1.png"},
		{"image_path": "art/page2.png"}
	]
}`

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, "output/book.pdf", m.OutputPath)
	assert.Equal(t, "6x9", m.Format)
	assert.Equal(t, "art/cover.png", m.CoverImage)
	require.Len(t, m.Pages, 2)
	assert.Equal(t, "art/page1.png", m.Pages[0].ImagePath)
	assert.Equal(t, 3, m.PageCount())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse(strings.NewReader("not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing manifest JSON")
}

func TestParseInline(t *testing.T) {
	m, err := ParseInline(`{"output_path": "out.pdf", "pages": []}`)
	require.NoError(t, err)
	assert.Equal(t, "out.pdf", m.OutputPath)
	assert.Equal(t, 0, m.PageCount())
}

func TestLoadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.yaml")
	content := `output_path: output/book.pdf
format: 7x7
pages:
  - image_path: art/page1.png
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7x7", m.Format)
	require.Len(t, m.Pages, 1)
	assert.Equal(t, "art/page1.png", m.Pages[0].ImagePath)
}

func TestLoadFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "output/book.pdf", m.OutputPath)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading manifest")
}

func TestResolve(t *testing.T) {
	t.Run("stdin on empty arg", func(t *testing.T) {
		m, err := Resolve("", strings.NewReader(sampleJSON))
		require.NoError(t, err)
		assert.Equal(t, "output/book.pdf", m.OutputPath)
	})

	t.Run("stdin on dash", func(t *testing.T) {
		m, err := Resolve("-", strings.NewReader(sampleJSON))
		require.NoError(t, err)
		assert.Equal(t, "6x9", m.Format)
	})

	t.Run("inline JSON object", func(t *testing.T) {
		m, err := Resolve(`{"output_path": "inline.pdf"}`, nil)
		require.NoError(t, err)
		assert.Equal(t, "inline.pdf", m.OutputPath)
	})

	t.Run("file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "m.json")
		require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))
		m, err := Resolve(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "art/cover.png", m.CoverImage)
	})
}

func TestValidate(t *testing.T) {
	m, err := ParseInline(`{"output_path": "out.pdf"}`)
	require.NoError(t, err)
	assert.NoError(t, Validate(m))

	m.OutputPath = ""
	err = Validate(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output_path")
}
