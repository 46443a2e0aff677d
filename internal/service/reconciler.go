// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/internal/store"
	"github.com/MKhiriev/go-inventory-sync/internal/utils"
	"github.com/MKhiriev/go-inventory-sync/internal/validators"
	"github.com/MKhiriev/go-inventory-sync/models"
)

const defaultConcurrency = 8

// reconciler applies a complete feed pull to the local inventory of one
// dealer. It never returns per-record failures; those go to the
// ErrorRecorder. Only failures that leave the inventory in an unknown state
// (loading the active set, the disable batch) are returned.
type reconciler struct {
	vehicles          store.VehicleRepository
	photos            PhotoMirror
	validator         validators.Validator
	concurrency       int
	maxDisablePercent int
	now               func() time.Time
}

func newReconciler(vehicles store.VehicleRepository, photos PhotoMirror, concurrency, maxDisablePercent int) *reconciler {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &reconciler{
		vehicles:          vehicles,
		photos:            photos,
		validator:         validators.NewRemoteVehicleValidator(),
		concurrency:       concurrency,
		maxDisablePercent: maxDisablePercent,
		now:               time.Now,
	}
}

// reconcileCounts is shared by the workers of one Reconcile call.
type reconcileCounts struct {
	mu           sync.Mutex
	counts       models.SyncCounts
	unchangedIDs []int64
}

func (c *reconcileCounts) add(outcome upsertOutcome, id int64, mirror models.MirrorResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counts.PhotosCopied += mirror.Copied
	c.counts.PhotosFailed += mirror.Failed

	switch outcome {
	case outcomeCreated:
		c.counts.RecordsCreated++
	case outcomeUpdated:
		c.counts.RecordsUpdated++
	case outcomeUnchanged:
		c.counts.RecordsUnchanged++
		c.unchangedIDs = append(c.unchangedIDs, id)
	case outcomeFailed:
		return
	}
	c.counts.VehiclesProcessed++
}

type upsertOutcome int

const (
	outcomeFailed upsertOutcome = iota
	outcomeCreated
	outcomeUpdated
	outcomeUnchanged
)

// Reconcile upserts every valid feed vehicle, then disables active local rows
// whose VIN is absent from the feed and removes their photos.
func (r *reconciler) Reconcile(ctx context.Context, recorder ErrorRecorder, dealerID string, feed []models.RemoteVehicle) (models.SyncCounts, error) {
	log := logger.FromContext(ctx)

	active, err := r.vehicles.ListActiveBySource(ctx, dealerID, models.SourcePartnerFeed)
	if err != nil {
		return models.SyncCounts{}, fmt.Errorf("load active vehicles: %w", err)
	}

	incoming, order := r.admit(ctx, recorder, feed)

	shared := &reconcileCounts{}
	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)

	for _, vin := range order {
		remote := incoming[vin]
		g.Go(func() error {
			outcome, id, mirror := r.reconcileGuarded(ctx, recorder, dealerID, vin, remote)
			shared.add(outcome, id, mirror)
			// per-record failures never cancel siblings
			return nil
		})
	}
	_ = g.Wait()

	counts := shared.counts
	now := r.now().UTC()

	if len(shared.unchangedIDs) > 0 {
		if err = r.vehicles.TouchSynced(ctx, shared.unchangedIDs, now); err != nil {
			log.Warn().Err(err).
				Int("vehicles", len(shared.unchangedIDs)).
				Msg("failed to touch last_synced_at of unchanged vehicles")
		}
	}

	// disable pass starts only after every worker finished
	var (
		disableIDs  []int64
		disableVINs []string
	)
	for _, local := range active {
		if _, ok := incoming[local.VIN]; !ok {
			disableIDs = append(disableIDs, local.ID)
			disableVINs = append(disableVINs, local.VIN)
		}
	}
	if len(disableIDs) == 0 {
		return counts, nil
	}

	if len(feed) == 0 {
		log.Warn().
			Str("dealer_id", dealerID).
			Int("active_vehicles", len(active)).
			Msg("feed is empty; every active vehicle of the dealer will be disabled")
	}

	if r.refuseDisable(len(disableIDs), len(active)) {
		log.Warn().
			Int("disable", len(disableIDs)).
			Int("active", len(active)).
			Int("max_disable_percent", r.maxDisablePercent).
			Msg("disable pass refused by safety threshold")
		message := fmt.Sprintf("refused to disable %d of %d active vehicles (limit %d%%)",
			len(disableIDs), len(active), r.maxDisablePercent)
		recorder.RecordError(models.SyncError{Category: models.ErrorCategorySafety, Message: message})
		return counts, nil
	}

	disabled, err := r.vehicles.DeactivateByIDs(ctx, disableIDs, now)
	if err != nil {
		return counts, fmt.Errorf("disable vehicles missing from feed: %w", err)
	}
	counts.RecordsDisabled = int(disabled)
	counts.PhotosCleanedUp = r.photos.Cleanup(ctx, dealerID, disableVINs)

	return counts, nil
}

// admit validates the feed and resolves duplicate VINs. The last occurrence
// of a VIN wins; earlier ones are reported. It returns the admitted vehicles
// by VIN and the VINs in first-seen order.
func (r *reconciler) admit(ctx context.Context, recorder ErrorRecorder, feed []models.RemoteVehicle) (map[string]models.RemoteVehicle, []string) {
	incoming := make(map[string]models.RemoteVehicle, len(feed))
	position := make(map[string]int, len(feed))
	order := make([]string, 0, len(feed))

	for i, remote := range feed {
		if err := r.validator.Validate(ctx, remote); err != nil {
			recorder.RecordError(models.SyncError{
				Category: models.ErrorCategoryValidation,
				Message:  fmt.Sprintf("feed record %d (id %q) skipped: %v", i, remote.ID, err),
			})
			continue
		}

		vin := strings.TrimSpace(remote.VIN)
		remote.VIN = vin
		if prev, seen := position[vin]; seen {
			recorder.RecordError(models.SyncError{
				Category: models.ErrorCategoryDuplicate,
				Message:  fmt.Sprintf("feed record %d superseded by record %d with the same vin", prev, i),
				VIN:      vin,
			})
		} else {
			order = append(order, vin)
		}
		position[vin] = i
		incoming[vin] = remote
	}

	return incoming, order
}

func (r *reconciler) refuseDisable(disable, active int) bool {
	if r.maxDisablePercent <= 0 || r.maxDisablePercent >= 100 || active == 0 {
		return false
	}
	return disable*100 > r.maxDisablePercent*active
}

// reconcileGuarded runs reconcileOne and turns a panic into a per-record
// error, so one bad vehicle cannot take the whole run down.
func (r *reconciler) reconcileGuarded(ctx context.Context, recorder ErrorRecorder, dealerID, vin string, remote models.RemoteVehicle) (outcome upsertOutcome, id int64, mirror models.MirrorResult) {
	defer func() {
		if p := recover(); p != nil {
			logger.FromContext(ctx).Error().
				Str("vin", vin).
				Interface("panic", p).
				Bytes("stack", debug.Stack()).
				Msg("vehicle reconciliation panicked")
			recorder.RecordError(models.SyncError{
				Category: models.ErrorCategoryInternal,
				Message:  fmt.Sprintf("reconcile vehicle: panic: %v", p),
				VIN:      vin,
			})
			outcome, id, mirror = outcomeFailed, 0, models.MirrorResult{}
		}
	}()

	return r.reconcileOne(ctx, recorder, dealerID, vin, remote)
}

// reconcileOne mirrors photos and upserts one vehicle. The local row is read
// fresh so a concurrent manual withdrawal is never overwritten.
func (r *reconciler) reconcileOne(ctx context.Context, recorder ErrorRecorder, dealerID, vin string, remote models.RemoteVehicle) (upsertOutcome, int64, models.MirrorResult) {
	log := logger.FromContext(ctx).With().Str("vin", vin).Logger()

	mirror := r.photos.Mirror(ctx, dealerID, vin, remote.Photos)

	existing, err := r.vehicles.FindByVIN(ctx, dealerID, models.SourcePartnerFeed, vin)
	found := err == nil
	if err != nil && !errors.Is(err, store.ErrVehicleNotFound) {
		log.Error().Err(err).Msg("failed to read local vehicle")
		recordStoreError(recorder, vin, "read", err)
		return outcomeFailed, 0, mirror
	}

	now := r.now().UTC()
	var base *models.Vehicle
	if found {
		base = &existing
	}

	merged, err := mergeVehicle(base, remote, dealerID, mirror.URLs, now)
	if err != nil {
		recordStoreError(recorder, vin, "hash", err)
		return outcomeFailed, 0, mirror
	}

	if !found {
		created, err := r.vehicles.Insert(ctx, merged)
		if err != nil {
			log.Error().Err(err).Msg("failed to insert vehicle")
			recordStoreError(recorder, vin, "insert", err)
			return outcomeFailed, 0, mirror
		}
		return outcomeCreated, created.ID, mirror
	}

	// the disable pass flips is_active without rehashing
	if merged.ContentHash == existing.ContentHash && merged.IsActive == existing.IsActive {
		return outcomeUnchanged, existing.ID, mirror
	}

	if err = r.vehicles.Update(ctx, merged); err != nil {
		log.Error().Err(err).Msg("failed to update vehicle")
		recordStoreError(recorder, vin, "update", err)
		return outcomeFailed, 0, mirror
	}

	return outcomeUpdated, existing.ID, mirror
}

func recordStoreError(recorder ErrorRecorder, vin, op string, err error) {
	category := models.ErrorCategoryStorage
	if errors.Is(err, store.ErrVehicleConflict) {
		category = models.ErrorCategoryConflict
	}
	recorder.RecordError(models.SyncError{
		Category: category,
		Message:  fmt.Sprintf("%s vehicle: %v", op, err),
		VIN:      vin,
	})
}

// mergeVehicle builds the row to store for remote. Feed fields always win.
// Identity and creation time come from existing, and a manually withdrawn row
// stays inactive with its status untouched.
func mergeVehicle(existing *models.Vehicle, remote models.RemoteVehicle, dealerID string, images []string, now time.Time) (models.Vehicle, error) {
	var v models.Vehicle
	if existing != nil {
		v = *existing
	} else {
		v = models.Vehicle{
			DealerID:  dealerID,
			Source:    models.SourcePartnerFeed,
			VIN:       remote.VIN,
			Status:    models.StatusAvailable,
			CreatedAt: &now,
		}
	}

	v.ExternalID = remote.ID
	v.StockNumber = remote.StockNumber
	v.Year = remote.Year
	v.Make = remote.Make
	v.Model = remote.Model
	v.Trim = remote.Trim
	v.Price = remote.Price
	v.AskingPrice = remote.AskingPrice
	v.ComparePrice = remote.ComparePrice
	v.Mileage = remote.Mileage
	v.MPG = remote.MPG
	v.Color = remote.Color
	v.InteriorColor = remote.InteriorColor
	v.ExteriorColor = remote.ExteriorColor
	v.Transmission = remote.Transmission
	v.Drivetrain = remote.Drivetrain
	v.FuelType = remote.FuelType
	v.BodyStyle = remote.BodyStyle
	v.Engine = remote.Engine
	v.Description = remote.Description
	v.Images = images
	v.Videos = remote.Videos
	v.Features = remote.Features
	v.AIFeatures = remote.AIFeatures
	v.Media = remote.Media

	if existing == nil || !existing.ManuallyWithdrawn() {
		v.IsActive = true
		v.DeactivatedBy = nil
	}

	hash, err := utils.ContentHash(v.Content())
	if err != nil {
		return models.Vehicle{}, err
	}
	v.ContentHash = hash
	v.LastSyncedAt = &now
	v.UpdatedAt = &now

	return v, nil
}
