package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfwatermark/internal/watermark"
)

func TestStringList(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{"repeated flag", []string{"a.pdf", "b.pdf"}, []string{"a.pdf", "b.pdf"}},
		{"comma separated", []string{"a.pdf,b.pdf"}, []string{"a.pdf", "b.pdf"}},
		{"mixed", []string{"a.pdf, b.pdf", "c.pdf"}, []string{"a.pdf", "b.pdf", "c.pdf"}},
		{"empty entries dropped", []string{"a.pdf,,", " "}, []string{"a.pdf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l stringList
			for _, v := range tt.values {
				require.NoError(t, l.Set(v))
			}
			assert.Equal(t, tt.want, []string(l))
		})
	}
}

func TestStringListString(t *testing.T) {
	l := stringList{"a.pdf", "b.pdf"}
	assert.Equal(t, "a.pdf,b.pdf", l.String())
}

func TestRunSkipsExcludedFiles(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	dir := t.TempDir()

	for _, name := range []string{"a.pdf", "b.pdf"} {
		_, err := watermark.Render("PAGE", filepath.Join(dir, name))
		require.NoError(t, err)
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	require.NoError(t, run("STAMP", nil, []string{"b.pdf"}))

	assert.FileExists(t, filepath.Join(dir, "a_watermarked.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "b_watermarked.pdf"))
}
