package dem

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gruppe-adler/meh-flt/internal/utils"
	"github.com/gruppe-adler/meh-flt/internal/validate"
)

// member is one file of a source. Only its name is inspected before open is
// called.
type member struct {
	name string
	size int64
	open func() (io.ReadCloser, error)
}

// source is an opened zip archive or directory.
type source struct {
	members []member
	closer  io.Closer
}

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func openSource(sourcePath string, compressed bool) (*source, error) {
	if err := validate.Source(sourcePath, compressed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	if compressed {
		return openArchive(sourcePath)
	}
	return openDirectory(sourcePath)
}

func openArchive(archivePath string) (*source, error) {
	file, err := os.Open(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	archive, err := zip.NewReader(file, info.Size())
	// insecure names are fine, they get sanitized below
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		file.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrArchiveCorrupt, archivePath, err)
	}

	src := &source{closer: file}
	for _, f := range archive.File {
		f := f
		if f.FileInfo().IsDir() {
			continue
		}

		name := utils.SanitizeName(f.Name)
		if name == "" {
			continue
		}

		src.members = append(src.members, member{
			name: name,
			size: int64(f.UncompressedSize64),
			open: func() (io.ReadCloser, error) { return f.Open() },
		})
	}

	return src, nil
}

func openDirectory(dirPath string) (*source, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	src := &source{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		var size int64
		if info, err := entry.Info(); err == nil {
			size = info.Size()
		}

		filePath := filepath.Join(dirPath, entry.Name())
		src.members = append(src.members, member{
			name: entry.Name(),
			size: size,
			open: func() (io.ReadCloser, error) { return os.Open(filePath) },
		})
	}

	return src, nil
}
