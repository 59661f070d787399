// Package upload stores uploaded images either on an external media host or
// in a local folder served under /uploads/.
package upload

import (
	"context"
	"mime/multipart"
	"regexp"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/showcase/catalog-api/app/config"
	"github.com/showcase/catalog-api/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNoUploadFolder is returned by New when neither a media host nor a local
// folder is configured.
var ErrNoUploadFolder = errors.New("UPLOAD_FOLDER is not configured")

// Uploader stores a file and returns the URL it can be fetched from.
type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// New picks the media host when one is configured and the local folder otherwise.
func New(cfg *config.Config) (Uploader, error) {
	if cfg.Media.Enabled() {
		return NewMinioStore(cfg.Media)
	}
	if strings.TrimSpace(cfg.UploadFolder) == "" {
		return nil, ErrNoUploadFolder
	}
	return NewLocalStore(cfg.UploadFolder), nil
}

var (
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	asciiFold   = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// SanitizeFilename reduces name to a safe single path element: accents are
// folded to ASCII, separators and whitespace become underscores, anything
// outside [A-Za-z0-9_.-] is dropped and leading or trailing dots and
// underscores are trimmed. The result may be empty.
func SanitizeFilename(name string) string {
	folded, _, err := transform.String(asciiFold, name)
	if err != nil {
		folded = name
	}
	folded = strings.NewReplacer("/", " ", "\\", " ").Replace(folded)
	folded = strings.Join(strings.Fields(folded), "_")
	folded = unsafeChars.ReplaceAllString(folded, "")
	return strings.Trim(folded, "._")
}

func safeName(file *multipart.FileHeader) (string, error) {
	name := SanitizeFilename(file.Filename)
	if name == "" {
		return "", models.Invalid("image", "has an invalid filename")
	}
	return name, nil
}
