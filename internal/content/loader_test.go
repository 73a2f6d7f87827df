package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/readometer/internal/model"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestResolveFileKind(t *testing.T) {
	cases := []struct {
		path string
		want model.FileKind
	}{
		{path: "notes.txt", want: model.PlainText},
		{path: "README.md", want: model.Markdown},
		{path: "dir.v2/CHANGELOG.MD", want: model.Markdown},
	}
	for _, tc := range cases {
		kind, err := ResolveFileKind(tc.path)
		require.NoError(t, err, tc.path)
		require.Equal(t, tc.want, kind, tc.path)
	}

	for _, path := range []string{"paper.pdf", "noext", "archive.md.gz", ""} {
		_, err := ResolveFileKind(path)
		require.ErrorIs(t, err, ErrUnsupportedFileType, path)
	}
}

func TestLoadPlainTextIsIdentity(t *testing.T) {
	body := "# not a heading here\n**kept** as-is _too_\n"
	path := writeFile(t, "sample.txt", body)

	text, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, body, text)
}

func TestLoadMarkdownStripsMarkup(t *testing.T) {
	path := writeFile(t, "post.md", "# Title\nRead [this](http://x.test) **now**.\n")

	ref, text, err := LoadReference(path)
	require.NoError(t, err)
	require.Equal(t, model.Markdown, ref.Kind)
	require.Equal(t, path, ref.Path)
	require.Equal(t, "Read this now.\n", text)
}

func TestLoadMissingPath(t *testing.T) {
	_, err := Load("")
	require.ErrorIs(t, err, ErrMissingPath)

	_, err = Load("   ")
	require.ErrorIs(t, err, ErrMissingPath)
}

func TestLoadReadErrorCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := Load(path)
	require.ErrorIs(t, err, ErrFileRead)
	require.Contains(t, err.Error(), path)

	var pathErr *os.PathError
	require.True(t, errors.As(err, &pathErr))
}

func TestLoadInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bin.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrFileRead)
}

func TestLoadUnsupportedType(t *testing.T) {
	path := writeFile(t, "sample.pdf", "words")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrUnsupportedFileType)
	require.Contains(t, err.Error(), path)
}

func TestLoadMissingFileWithUnsupportedTypeIsReadError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.pdf"))
	require.ErrorIs(t, err, ErrFileRead)
}
