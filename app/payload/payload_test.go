package payload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/showcase/catalog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        Payload
		wantErr     error
	}{
		{"JSON", "application/json", `{"name":"Seat","featured":true}`, Payload{"name": "Seat", "featured": true}, nil},
		{"JSON without content type", "", `{"name":"Seat"}`, Payload{"name": "Seat"}, nil},
		{"JSON nulls dropped", "application/json", `{"name":null,"category":"Seats"}`, Payload{"category": "Seats"}, nil},
		{"Empty body", "application/json", "  ", Payload{}, nil},
		{"Form", "application/x-www-form-urlencoded", "name=Seat&price=12.50", Payload{"name": "Seat", "price": "12.50"}, nil},
		{"Not an object", "application/json", `["a"]`, nil, ErrInvalidJSON},
		{"Broken JSON", "application/json", `{"a":`, nil, ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			got, err := Decode(req)

			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.True(t, models.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeMultipart(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Van"))
	part, err := mw.CreateFormFile("image", "van.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	got, err := Decode(req)
	require.NoError(t, err)
	assert.Equal(t, Payload{"title": "Van"}, got)

	file := File(req, "image")
	require.NotNil(t, file)
	assert.Equal(t, "van.jpg", file.Filename)
	assert.Nil(t, File(req, "other"))
}

func TestFileWithoutMultipart(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{}`))
	assert.Nil(t, File(req, "image"))
}

func TestString(t *testing.T) {
	p := Payload{"name": "  Seat ", "count": 3, "nested": map[string]any{"a": 1}}

	got, err := p.String("name")
	require.NoError(t, err)
	assert.Equal(t, "Seat", *got)

	got, err = p.String("count")
	require.NoError(t, err)
	assert.Equal(t, "3", *got)

	got, err = p.String("missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = p.String("nested")
	assert.EqualError(t, err, "nested must be a string")
}

func TestDecimal(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"a":10.5,"b":"129.99","c":"","d":"ten"}`))
	p, err := Decode(req)
	require.NoError(t, err)

	a, err := p.Decimal("a")
	require.NoError(t, err)
	assert.Equal(t, "10.5", a.String())

	b, err := p.Decimal("b")
	require.NoError(t, err)
	assert.Equal(t, "129.99", b.String())

	c, err := p.Decimal("c")
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = p.Decimal("d")
	assert.EqualError(t, err, "d must be a valid number")
}

func TestBool(t *testing.T) {
	tests := []struct {
		value   any
		want    bool
		wantErr bool
	}{
		{true, true, false},
		{false, false, false},
		{"true", true, false},
		{"on", true, false},
		{"Yes", true, false},
		{"off", false, false},
		{"0", false, false},
		{"", false, false},
		{"perhaps", false, true},
	}

	for _, tt := range tests {
		got, err := Payload{"featured": tt.value}.Bool("featured")
		if tt.wantErr {
			assert.EqualError(t, err, "featured must be a boolean", "%v", tt.value)
			continue
		}
		require.NoError(t, err, "%v", tt.value)
		assert.Equal(t, tt.want, *got, "%v", tt.value)
	}

	got, err := Payload{}.Bool("featured")
	require.NoError(t, err)
	assert.Nil(t, got)
}
