// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"mime"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-inventory-sync/internal/adapter"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/objects"
	"github.com/MKhiriev/go-inventory-sync/models"
)

const (
	defaultPhotoExt = "jpg"

	defaultStorageTimeout = 30 * time.Second
)

var extByContentType = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
	"image/avif": "avif",
	"image/heic": "heic",
	"image/heif": "heic",
}

var knownPhotoExts = map[string]string{
	"jpg":  "jpg",
	"jpeg": "jpg",
	"png":  "png",
	"webp": "webp",
	"gif":  "gif",
	"avif": "avif",
	"heic": "heic",
	"heif": "heic",
}

type photoMirror struct {
	storage        objects.Storage
	downloader     adapter.PhotoDownloader
	storageTimeout time.Duration
}

// NewPhotoMirror bounds every object storage call by storageTimeout; a
// non-positive value selects the default.
func NewPhotoMirror(storage objects.Storage, downloader adapter.PhotoDownloader, storageTimeout time.Duration) PhotoMirror {
	if storageTimeout <= 0 {
		storageTimeout = defaultStorageTimeout
	}
	return &photoMirror{
		storage:        storage,
		downloader:     downloader,
		storageTimeout: storageTimeout,
	}
}

// Mirror stores the photos of one vehicle under
// "{dealerID}/vehicles/{vin}/{i}.{ext}". An index that already has an object,
// under any extension, is not downloaded again.
func (m *photoMirror) Mirror(ctx context.Context, dealerID, vin string, remoteURLs []string) models.MirrorResult {
	log := logger.FromContext(ctx).With().Str("vin", vin).Logger()

	result := models.MirrorResult{URLs: make([]string, 0, len(remoteURLs))}
	prefix := vehiclePrefix(dealerID, vin)

	var stored map[int]string
	listed := false

	for i, remoteURL := range remoteURLs {
		remoteURL = strings.TrimSpace(remoteURL)
		if remoteURL == "" {
			continue
		}

		name := photoName(prefix, i, extFromURL(remoteURL))
		exists, err := m.exists(ctx, name)
		if err != nil {
			log.Warn().Err(err).Str("object", name).Msg("failed to check mirrored photo")
		}
		if exists {
			result.URLs = append(result.URLs, m.storage.PublicURL(name))
			result.Skipped++
			continue
		}

		if !listed {
			stored = m.listByIndex(ctx, prefix)
			listed = true
		}
		if existing, ok := stored[i]; ok {
			result.URLs = append(result.URLs, m.storage.PublicURL(existing))
			result.Skipped++
			continue
		}

		photo, err := m.downloader.Download(ctx, remoteURL)
		if err != nil {
			log.Warn().Err(err).Int("index", i).Msg("failed to download photo, keeping remote url")
			result.URLs = append(result.URLs, remoteURL)
			result.Failed++
			continue
		}

		name = photoName(prefix, i, photoExt(photo.ContentType, remoteURL))
		if err = m.upload(ctx, name, photo); err != nil {
			log.Warn().Err(err).Str("object", name).Msg("failed to upload photo, keeping remote url")
			result.URLs = append(result.URLs, remoteURL)
			result.Failed++
			continue
		}

		result.URLs = append(result.URLs, m.storage.PublicURL(name))
		result.Copied++
	}

	return result
}

// Cleanup deletes every mirrored object of the given VINs and returns how
// many objects were removed.
func (m *photoMirror) Cleanup(ctx context.Context, dealerID string, vins []string) int {
	log := logger.FromContext(ctx)

	removed := 0
	for _, vin := range vins {
		prefix := vehiclePrefix(dealerID, vin)

		names, err := m.list(ctx, prefix)
		if err != nil {
			log.Warn().Err(err).Str("vin", vin).Msg("failed to list photos for cleanup")
			continue
		}
		if len(names) == 0 {
			continue
		}

		n, err := m.deleteMany(ctx, names)
		if err != nil {
			log.Warn().Err(err).Str("vin", vin).Int("removed", n).Msg("failed to delete some photos")
		}
		removed += n
	}

	return removed
}

// listByIndex maps photo indexes to the stored object names under prefix.
func (m *photoMirror) listByIndex(ctx context.Context, prefix string) map[int]string {
	names, err := m.list(ctx, prefix)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("prefix", prefix).Msg("failed to list mirrored photos")
		return nil
	}

	byIndex := make(map[int]string, len(names))
	for _, name := range names {
		base := path.Base(name)
		stem, _, ok := strings.Cut(base, ".")
		if !ok {
			continue
		}
		i, err := strconv.Atoi(stem)
		if err != nil {
			continue
		}
		byIndex[i] = name
	}

	return byIndex
}

func (m *photoMirror) exists(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, m.storageTimeout)
	defer cancel()
	return m.storage.Exists(ctx, name)
}

func (m *photoMirror) upload(ctx context.Context, name string, photo adapter.Photo) error {
	ctx, cancel := context.WithTimeout(ctx, m.storageTimeout)
	defer cancel()
	return m.storage.Upload(ctx, name, photo.Data, photo.ContentType)
}

func (m *photoMirror) list(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.storageTimeout)
	defer cancel()
	return m.storage.List(ctx, prefix)
}

func (m *photoMirror) deleteMany(ctx context.Context, names []string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, m.storageTimeout)
	defer cancel()
	return m.storage.DeleteMany(ctx, names)
}

func vehiclePrefix(dealerID, vin string) string {
	return dealerID + "/vehicles/" + vin + "/"
}

func photoName(prefix string, i int, ext string) string {
	return prefix + strconv.Itoa(i) + "." + ext
}

// photoExt prefers the served content type and falls back to the URL.
func photoExt(contentType, rawURL string) string {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if ext, ok := extByContentType[strings.ToLower(mediaType)]; ok {
			return ext
		}
	}
	return extFromURL(rawURL)
}

func extFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return defaultPhotoExt
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(u.Path)), ".")
	if known, ok := knownPhotoExts[ext]; ok {
		return known
	}
	return defaultPhotoExt
}
