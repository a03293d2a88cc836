package qr

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoder_MakeBase64(t *testing.T) {
	c := NewCoder(128)

	uri, err := c.MakeBase64("http://localhost:8080/u/b2xVn2")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, dataURIPrefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, dataURIPrefix))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestNewCoder_DefaultSize(t *testing.T) {
	assert.Equal(t, DefaultSize, NewCoder(0).Size)
}

func TestCoder_MakeBase64_TooLong(t *testing.T) {
	_, err := NewCoder(DefaultSize).MakeBase64(strings.Repeat("a", 5000))
	assert.Error(t, err)
}
