package photo

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/pkg/otellib"
	"github.com/QuangTung97/loyalty/pkg/storage"
	"go.uber.org/zap"
)

// Kind is the owner type of a photo, used as the key prefix
type Kind string

const (
	// KindEarningRule ...
	KindEarningRule Kind = "earning_rule"

	// KindCampaign ...
	KindCampaign Kind = "campaign"
)

// ErrPhotoNotFound ...
var ErrPhotoNotFound = apperr.NotFound("photo_not_found", "photo not found")

// ErrUnsupportedMime ...
var ErrUnsupportedMime = apperr.Validation("photo", "unsupported mime type")

var allowedMimes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/gif":  {},
}

// Uploader stores photos under generated keys
type Uploader struct {
	store storage.Storage
	newID func() string
}

// NewUploader ...
func NewUploader(store storage.Storage, newID func() string) *Uploader {
	return &Uploader{
		store: store,
		newID: newID,
	}
}

// Upload the original name is kept only as metadata
func (u *Uploader) Upload(
	ctx context.Context, kind Kind, name string, mime string, body io.Reader,
) (model.Photo, error) {
	if _, ok := allowedMimes[mime]; !ok {
		return model.Photo{}, ErrUnsupportedMime
	}

	key := path.Join(string(kind), u.newID())
	if err := u.store.Put(ctx, key, body, mime); err != nil {
		return model.Photo{}, err
	}
	return model.Photo{
		Path:         key,
		OriginalName: name,
		Mime:         mime,
	}, nil
}

// Get the caller closes the returned reader
func (u *Uploader) Get(ctx context.Context, photo model.NullPhoto) (io.ReadCloser, error) {
	if !photo.Valid {
		return nil, ErrPhotoNotFound
	}
	body, err := u.store.Get(ctx, photo.Photo.Path)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrPhotoNotFound
	}
	return body, err
}

// Remove is a no-op for an empty photo
func (u *Uploader) Remove(ctx context.Context, photo model.NullPhoto) error {
	if !photo.Valid {
		return nil
	}
	return u.store.Delete(ctx, photo.Photo.Path)
}

// SetFunc stores the photo reference on its owner
type SetFunc func(ctx context.Context, photo model.NullPhoto) error

// Replace uploads the new photo, points the owner at it then removes the previous one.
// The uploaded object is deleted again when set fails.
func (u *Uploader) Replace(
	ctx context.Context, kind Kind, previous model.NullPhoto,
	name string, mime string, body io.Reader, set SetFunc,
) (model.Photo, error) {
	photo, err := u.Upload(ctx, kind, name, mime, body)
	if err != nil {
		return model.Photo{}, err
	}

	current := model.NullPhoto{Valid: true, Photo: photo}
	if err := set(ctx, current); err != nil {
		_ = u.Remove(ctx, current)
		return model.Photo{}, err
	}

	if err := u.Remove(ctx, previous); err != nil {
		otellib.Extract(ctx).Warn("remove previous photo", zap.String("path", previous.Photo.Path), zap.Error(err))
	}
	return photo, nil
}

// Detach clears the photo of the owner then removes the stored object
func (u *Uploader) Detach(ctx context.Context, previous model.NullPhoto, set SetFunc) error {
	if !previous.Valid {
		return ErrPhotoNotFound
	}
	if err := set(ctx, model.NullPhoto{}); err != nil {
		return err
	}
	return u.Remove(ctx, previous)
}
