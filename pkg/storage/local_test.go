package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocal_Put_Get_Delete(t *testing.T) {
	s := NewLocal(t.TempDir())
	ctx := context.Background()

	err := s.Put(ctx, "campaign/photo-01.png", strings.NewReader("image data"), "image/png")
	assert.Equal(t, nil, err)

	r, err := s.Get(ctx, "campaign/photo-01.png")
	assert.Equal(t, nil, err)
	data, err := io.ReadAll(r)
	assert.Equal(t, nil, err)
	assert.Equal(t, "image data", string(data))
	assert.Equal(t, nil, r.Close())

	err = s.Delete(ctx, "campaign/photo-01.png")
	assert.Equal(t, nil, err)

	r, err = s.Get(ctx, "campaign/photo-01.png")
	assert.Equal(t, ErrNotFound, err)
	assert.Nil(t, r)

	// Delete Again
	err = s.Delete(ctx, "campaign/photo-01.png")
	assert.Equal(t, nil, err)
}

func TestLocal_Key_Cannot_Escape_Root(t *testing.T) {
	root := t.TempDir()
	s := NewLocal(root + "/photos")
	ctx := context.Background()

	err := s.Put(ctx, "../outside.png", strings.NewReader("x"), "image/png")
	assert.Equal(t, nil, err)

	r, err := NewLocal(root).Get(ctx, "outside.png")
	assert.Equal(t, ErrNotFound, err)
	assert.Nil(t, r)
}
