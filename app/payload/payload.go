// Package payload decodes request bodies sent as JSON or as forms into a
// loosely typed field map.
package payload

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/showcase/catalog-api/models"
	"github.com/spf13/cast"
)

// ErrInvalidJSON is returned for a JSON body that does not decode to an object.
var ErrInvalidJSON = &models.ValidationError{Message: "Invalid JSON body"}

// Payload holds the fields present in a request body. JSON null values are
// treated as absent.
type Payload map[string]any

// MaxMemory bounds the part of a multipart form kept in memory; larger files
// spill to temporary files.
const MaxMemory = 32 << 20

// Decode reads the request body. JSON is preferred; url-encoded and
// multipart forms are accepted as a fallback.
func Decode(r *http.Request) (Payload, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(MaxMemory); err != nil {
			return nil, errors.Wrap(err, "parse multipart form")
		}
		return fromValues(r.MultipartForm.Value), nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, errors.Wrap(err, "parse form")
		}
		return fromValues(r.PostForm), nil
	}

	if r.Body == nil {
		return Payload{}, nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return Payload{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, ErrInvalidJSON
	}
	p := make(Payload, len(fields))
	for k, v := range fields {
		if v != nil {
			p[k] = v
		}
	}
	return p, nil
}

func fromValues(values map[string][]string) Payload {
	p := make(Payload, len(values))
	for k, v := range values {
		if len(v) > 0 {
			p[k] = v[0]
		}
	}
	return p
}

// File returns the uploaded file for field, or nil when the request has none.
func File(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 || files[0].Filename == "" {
		return nil
	}
	return files[0]
}

// String returns the trimmed text of key, or nil when key is absent.
func (p Payload) String(key string) (*string, error) {
	v, ok := p[key]
	if !ok {
		return nil, nil
	}
	switch t := v.(type) {
	case map[string]any, []any:
		return nil, models.Invalid(key, "must be a string")
	case json.Number:
		v = t.String()
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, models.Invalid(key, "must be a string")
	}
	s = strings.TrimSpace(s)
	return &s, nil
}

// Decimal returns key parsed as a decimal. A blank value counts as absent.
func (p Payload) Decimal(key string) (*decimal.Decimal, error) {
	s, err := p.String(key)
	if err != nil || s == nil || *s == "" {
		return nil, err
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, models.Invalid(key, "must be a valid number")
	}
	return &d, nil
}

// Bool returns key parsed as a boolean. Form checkboxes send "on".
func (p Payload) Bool(key string) (*bool, error) {
	v, ok := p[key]
	if !ok {
		return nil, nil
	}
	if n, isNumber := v.(json.Number); isNumber {
		v = n.String()
	}
	if s, isString := v.(string); isString {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "on", "yes":
			v = true
		case "off", "no", "":
			v = false
		}
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil, models.Invalid(key, "must be a boolean")
	}
	return &b, nil
}
