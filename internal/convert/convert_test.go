// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mdinline/pkg/types"
)

// captureSink records the single report a conversion run makes.
type captureSink struct {
	source string
	output string
	refs   int
	calls  int
}

func (c *captureSink) Converted(source, output string, refs int) error {
	c.calls++
	c.source = source
	c.output = output
	c.refs = refs
	return nil
}

func writeMarkdown(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidate(t *testing.T) {
	tmpDir := t.TempDir()
	mdPath := writeMarkdown(t, tmpDir, "notes.md", "# Notes\n")
	txtPath := writeMarkdown(t, tmpDir, "notes.txt", "plain\n")

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "existing markdown file", path: mdPath},
		{name: "missing file", path: filepath.Join(tmpDir, "absent.md"), wantErr: ErrNotFound},
		{name: "directory", path: tmpDir, wantErr: ErrNotFound},
		{name: "wrong extension", path: txtPath, wantErr: ErrNotMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.path)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOutputPath(t *testing.T) {
	got := OutputPath(filepath.Join("docs", "guide.md"))
	assert.Equal(t, filepath.Join("docs", "guide-converted.md"), got)
}

func TestDuplicate(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeMarkdown(t, tmpDir, "doc.md", "original content\n")

	outPath, err := Duplicate(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "doc-converted.md"), outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "original content\n", string(data))
}

func TestDuplicateOverwritesExistingOutput(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeMarkdown(t, tmpDir, "doc.md", "new content\n")
	writeMarkdown(t, tmpDir, "doc-converted.md", "stale output\n")

	outPath, err := Duplicate(path)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "new content\n", string(data))
}

func TestFileConvertsReferences(t *testing.T) {
	tmpDir := t.TempDir()
	doc := "See [OpenAI][openai-ref] for details.\n\n[openai-ref]: https://openai.com\n"
	path := writeMarkdown(t, tmpDir, "doc.md", doc)

	sink := &captureSink{}
	var buf strings.Builder
	status, err := File(path, sink, &buf)
	require.NoError(t, err)
	assert.Equal(t, types.ConversionDone, status)

	outPath := filepath.Join(tmpDir, "doc-converted.md")
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "See [OpenAI](https://openai.com) for details.", string(data))

	assert.Equal(t, 1, sink.calls)
	assert.Equal(t, path, sink.source)
	assert.Equal(t, outPath, sink.output)
	assert.Equal(t, 1, sink.refs)
	assert.Contains(t, buf.String(), "converted:")

	// The input file is untouched.
	orig, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc, string(orig))
}

func TestFileNothingToConvert(t *testing.T) {
	tmpDir := t.TempDir()
	doc := "Plain text with an [inline](https://example.com) link.\n"
	path := writeMarkdown(t, tmpDir, "doc.md", doc)

	sink := &captureSink{}
	var buf strings.Builder
	status, err := File(path, sink, &buf)
	require.NoError(t, err)
	assert.Equal(t, types.ConversionNone, status)
	assert.Contains(t, buf.String(), "no reference links found")

	// The duplicate stays as a verbatim copy and nothing is logged.
	data, err := os.ReadFile(filepath.Join(tmpDir, "doc-converted.md"))
	require.NoError(t, err)
	assert.Equal(t, doc, string(data))
	assert.Equal(t, 0, sink.calls)
}

func TestFileValidationFailure(t *testing.T) {
	sink := &captureSink{}
	var buf strings.Builder
	status, err := File(filepath.Join(t.TempDir(), "absent.md"), sink, &buf)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, types.ConversionFailed, status)
	assert.Equal(t, 0, sink.calls)
}

func TestFileDanglingReferencesKept(t *testing.T) {
	tmpDir := t.TempDir()
	doc := "Keep [Foo][bar] but fix [Doc][ok].\n\n[ok]: https://docs.example.com\n"
	path := writeMarkdown(t, tmpDir, "doc.md", doc)

	status, err := File(path, nil, &strings.Builder{})
	require.NoError(t, err)
	assert.Equal(t, types.ConversionDone, status)

	data, err := os.ReadFile(filepath.Join(tmpDir, "doc-converted.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Foo][bar]")
	assert.Contains(t, string(data), "[Doc](https://docs.example.com)")
}
