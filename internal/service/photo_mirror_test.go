package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-inventory-sync/internal/adapter"
	"github.com/MKhiriev/go-inventory-sync/internal/mock"
	"github.com/MKhiriev/go-inventory-sync/models"
)

func newTestPhotoMirror(t *testing.T) (PhotoMirror, *mock.MockStorage, *mock.MockPhotoDownloader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorage(ctrl)
	downloader := mock.NewMockPhotoDownloader(ctrl)
	storage.EXPECT().PublicURL(gomock.Any()).DoAndReturn(func(name string) string {
		return "https://cdn.test/" + name
	}).AnyTimes()
	return NewPhotoMirror(storage, downloader, time.Second), storage, downloader
}

func TestPhotoMirror_CopiesNewPhotos(t *testing.T) {
	mirror, storage, downloader := newTestPhotoMirror(t)
	ctx := context.Background()

	storage.EXPECT().Exists(gomock.Any(), "d/vehicles/V/0.png").Return(false, nil)
	storage.EXPECT().List(gomock.Any(), "d/vehicles/V/").Return(nil, nil)
	downloader.EXPECT().Download(ctx, "https://img.test/a.png?w=800").
		Return(adapter.Photo{Data: []byte("png"), ContentType: "image/png"}, nil)
	storage.EXPECT().Upload(gomock.Any(), "d/vehicles/V/0.png", []byte("png"), "image/png").Return(nil)

	result := mirror.Mirror(ctx, "d", "V", []string{"https://img.test/a.png?w=800"})

	assert.Equal(t, []string{"https://cdn.test/d/vehicles/V/0.png"}, result.URLs)
	assert.Equal(t, 1, result.Copied)
	assert.Zero(t, result.Failed)
}

func TestPhotoMirror_ContentTypeDecidesExtension(t *testing.T) {
	mirror, storage, downloader := newTestPhotoMirror(t)
	ctx := context.Background()

	storage.EXPECT().Exists(gomock.Any(), "d/vehicles/V/0.jpg").Return(false, nil)
	storage.EXPECT().List(gomock.Any(), "d/vehicles/V/").Return(nil, nil)
	downloader.EXPECT().Download(ctx, "https://img.test/photo").
		Return(adapter.Photo{Data: []byte("webp"), ContentType: "image/webp; charset=binary"}, nil)
	storage.EXPECT().Upload(gomock.Any(), "d/vehicles/V/0.webp", gomock.Any(), gomock.Any()).Return(nil)

	result := mirror.Mirror(ctx, "d", "V", []string{"https://img.test/photo"})
	assert.Equal(t, []string{"https://cdn.test/d/vehicles/V/0.webp"}, result.URLs)
}

func TestPhotoMirror_SkipsAlreadyMirrored(t *testing.T) {
	mirror, storage, _ := newTestPhotoMirror(t)
	ctx := context.Background()

	storage.EXPECT().Exists(gomock.Any(), "d/vehicles/V/0.jpg").Return(true, nil)
	// stored as webp on an earlier run although the url says jpg
	storage.EXPECT().Exists(gomock.Any(), "d/vehicles/V/1.jpg").Return(false, nil)
	storage.EXPECT().List(gomock.Any(), "d/vehicles/V/").Return([]string{"d/vehicles/V/0.jpg", "d/vehicles/V/1.webp"}, nil)

	result := mirror.Mirror(ctx, "d", "V", []string{"https://img.test/a.jpg", "https://img.test/b.jpg"})

	assert.Equal(t, []string{
		"https://cdn.test/d/vehicles/V/0.jpg",
		"https://cdn.test/d/vehicles/V/1.webp",
	}, result.URLs)
	assert.Equal(t, 2, result.Skipped)
	assert.Zero(t, result.Copied)
}

func TestPhotoMirror_FailureKeepsRemoteURL(t *testing.T) {
	mirror, storage, downloader := newTestPhotoMirror(t)
	ctx := context.Background()

	storage.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	storage.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	downloader.EXPECT().Download(ctx, "https://img.test/a.jpg").Return(adapter.Photo{}, adapter.ErrPhotoTooLarge)
	downloader.EXPECT().Download(ctx, "https://img.test/b.jpg").Return(adapter.Photo{Data: []byte("x"), ContentType: "image/jpeg"}, nil)
	storage.EXPECT().Upload(gomock.Any(), "d/vehicles/V/2.jpg", gomock.Any(), gomock.Any()).Return(errors.New("bucket gone"))

	result := mirror.Mirror(ctx, "d", "V", []string{"https://img.test/a.jpg", "  ", "https://img.test/b.jpg"})

	assert.Equal(t, []string{"https://img.test/a.jpg", "https://img.test/b.jpg"}, result.URLs)
	assert.Equal(t, 2, result.Failed)
}

func TestPhotoMirror_Cleanup(t *testing.T) {
	mirror, storage, _ := newTestPhotoMirror(t)
	ctx := context.Background()

	storage.EXPECT().List(gomock.Any(), "d/vehicles/A/").Return([]string{"d/vehicles/A/0.jpg", "d/vehicles/A/1.jpg"}, nil)
	storage.EXPECT().DeleteMany(gomock.Any(), []string{"d/vehicles/A/0.jpg", "d/vehicles/A/1.jpg"}).Return(2, nil)
	storage.EXPECT().List(gomock.Any(), "d/vehicles/B/").Return(nil, nil)
	storage.EXPECT().List(gomock.Any(), "d/vehicles/C/").Return(nil, errors.New("timeout"))

	assert.Equal(t, 2, mirror.Cleanup(ctx, "d", []string{"A", "B", "C"}))
}

func TestPhotoMirror_StalledStorageTimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorage(ctrl)
	downloader := mock.NewMockPhotoDownloader(ctrl)
	mirror := NewPhotoMirror(storage, downloader, 20*time.Millisecond)

	// the run context never expires; only the per-call bound does
	ctx := context.WithoutCancel(context.Background())

	stall := func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		<-ctx.Done()
		return ctx.Err()
	}

	storage.EXPECT().Exists(gomock.Any(), "d/vehicles/V/0.jpg").DoAndReturn(func(ctx context.Context, _ string) (bool, error) {
		return false, stall(ctx)
	})
	storage.EXPECT().List(gomock.Any(), "d/vehicles/V/").DoAndReturn(func(ctx context.Context, _ string) ([]string, error) {
		return nil, stall(ctx)
	})
	downloader.EXPECT().Download(ctx, "https://img.test/a.jpg").
		Return(adapter.Photo{Data: []byte("x"), ContentType: "image/jpeg"}, nil)
	storage.EXPECT().Upload(gomock.Any(), "d/vehicles/V/0.jpg", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ []byte, _ string) error {
			return stall(ctx)
		})

	done := make(chan struct{})
	var result models.MirrorResult
	go func() {
		defer close(done)
		result = mirror.Mirror(ctx, "d", "V", []string{"https://img.test/a.jpg"})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("mirror did not return while storage was stalled")
	}
	assert.Equal(t, []string{"https://img.test/a.jpg"}, result.URLs)
	assert.Equal(t, 1, result.Failed)
}

func TestPhotoMirror_CleanupStalledStorageTimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorage(ctrl)
	mirror := NewPhotoMirror(storage, mock.NewMockPhotoDownloader(ctrl), 20*time.Millisecond)

	storage.EXPECT().List(gomock.Any(), "d/vehicles/A/").Return([]string{"d/vehicles/A/0.jpg"}, nil)
	storage.EXPECT().DeleteMany(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ []string) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	assert.Zero(t, mirror.Cleanup(context.Background(), "d", []string{"A"}))
}

func TestPhotoExt(t *testing.T) {
	tests := []struct {
		contentType string
		url         string
		want        string
	}{
		{contentType: "image/png", url: "https://x/a.jpg", want: "png"},
		{contentType: "IMAGE/JPEG", url: "https://x/a", want: "jpg"},
		{contentType: "application/octet-stream", url: "https://x/a.JPEG", want: "jpg"},
		{contentType: "", url: "https://x/a.heif?v=1", want: "heic"},
		{contentType: "", url: "https://x/a.exe", want: defaultPhotoExt},
		{contentType: "", url: "://bad", want: defaultPhotoExt},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, photoExt(tt.contentType, tt.url), "%q %q", tt.contentType, tt.url)
	}
}
