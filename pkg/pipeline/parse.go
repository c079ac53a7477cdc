package pipeline

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	errs "github.com/matzehuels/drehfreudig/pkg/errors"
)

// ReadTreeLine returns the first line of the file at path with the line
// terminator removed. Later lines are ignored. An empty file yields "".
func ReadTreeLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeFileUnreadable, err, "open %s", path)
	}
	defer f.Close()

	line, err := ReadLine(f)
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeFileUnreadable, err, "read %s", path)
	}
	return line, nil
}

// ReadLine returns the first line of r without its terminator.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Discover returns the regular files below dir whose slash-separated
// relative path matches pattern, sorted by name. The returned paths include
// dir.
func Discover(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "directory %s not found", dir)
	case err != nil:
		return nil, errs.Wrap(errs.ErrCodeFileUnreadable, err, "stat %s", dir)
	case !info.IsDir():
		return nil, errs.New(errs.ErrCodeInvalidPath, "%s is not a directory", dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "pattern %q", pattern)
	}
	slices.Sort(matches)

	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(dir, filepath.FromSlash(m))
	}
	return paths, nil
}
