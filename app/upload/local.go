package upload

import (
	"context"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// URLPrefix is where locally stored files are served from.
const URLPrefix = "/uploads/"

// LocalStore writes uploads into a directory. A file with the same
// sanitized name is overwritten.
type LocalStore struct {
	Dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{Dir: dir}
}

func (s *LocalStore) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	name, err := safeName(file)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create upload folder")
	}

	src, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "open upload")
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", errors.Wrap(err, "create upload file")
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", errors.Wrap(err, "write upload file")
	}
	if err := dst.Close(); err != nil {
		return "", errors.Wrap(err, "write upload file")
	}

	zap.L().Info("stored upload locally", zap.String("file", name), zap.Int64("size", file.Size))
	return URLPrefix + name, nil
}

// FileServer serves the files stored in dir under URLPrefix. Directories are
// reported as missing so the folder contents are never listed.
func FileServer(dir string) http.Handler {
	return http.StripPrefix(URLPrefix, http.FileServer(filesOnly{http.Dir(dir)}))
}

type filesOnly struct {
	http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
