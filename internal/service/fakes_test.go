package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-inventory-sync/internal/adapter"
	"github.com/MKhiriev/go-inventory-sync/internal/store"
	"github.com/MKhiriev/go-inventory-sync/models"
)

// memVehicleRepo is an in-memory store.VehicleRepository.
type memVehicleRepo struct {
	mu         sync.Mutex
	nextID     int64
	rows       map[int64]models.Vehicle
	failInsert map[string]error
	failUpdate map[string]error
	failDeact  error
	panicFind  map[string]bool
	panicList  bool
}

func newMemVehicleRepo() *memVehicleRepo {
	return &memVehicleRepo{
		rows:       make(map[int64]models.Vehicle),
		failInsert: make(map[string]error),
		failUpdate: make(map[string]error),
		panicFind:  make(map[string]bool),
	}
}

func (r *memVehicleRepo) ListActiveBySource(_ context.Context, dealerID, source string) ([]models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.panicList {
		panic("active vehicles unavailable")
	}

	var out []models.Vehicle
	for _, v := range r.rows {
		if v.DealerID == dealerID && v.Source == source && v.IsActive {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memVehicleRepo) FindByVIN(_ context.Context, dealerID, source, vin string) (models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.panicFind[vin] {
		panic("corrupt row for " + vin)
	}

	for _, v := range r.rows {
		if v.DealerID == dealerID && v.Source == source && v.VIN == vin {
			return v, nil
		}
	}
	return models.Vehicle{}, store.ErrVehicleNotFound
}

func (r *memVehicleRepo) Insert(_ context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err, ok := r.failInsert[vehicle.VIN]; ok {
		return models.Vehicle{}, err
	}
	for _, v := range r.rows {
		if v.DealerID == vehicle.DealerID && v.Source == vehicle.Source && v.VIN == vehicle.VIN {
			return models.Vehicle{}, store.ErrVehicleConflict
		}
	}
	r.nextID++
	vehicle.ID = r.nextID
	r.rows[vehicle.ID] = vehicle
	return vehicle, nil
}

func (r *memVehicleRepo) Update(_ context.Context, vehicle models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err, ok := r.failUpdate[vehicle.VIN]; ok {
		return err
	}
	if _, ok := r.rows[vehicle.ID]; !ok {
		return store.ErrVehicleNotFound
	}
	r.rows[vehicle.ID] = vehicle
	return nil
}

func (r *memVehicleRepo) DeactivateByIDs(_ context.Context, ids []int64, at time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failDeact != nil {
		return 0, r.failDeact
	}
	var n int64
	for _, id := range ids {
		v, ok := r.rows[id]
		if !ok || !v.IsActive {
			continue
		}
		by := models.DeactivatedBySync
		v.IsActive = false
		v.DeactivatedBy = &by
		v.UpdatedAt = &at
		r.rows[id] = v
		n++
	}
	return n, nil
}

func (r *memVehicleRepo) TouchSynced(_ context.Context, ids []int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		v := r.rows[id]
		v.LastSyncedAt = &at
		r.rows[id] = v
	}
	return nil
}

func (r *memVehicleRepo) byVIN(vin string) (models.Vehicle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.rows {
		if v.VIN == vin {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

func (r *memVehicleRepo) set(v models.Vehicle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[v.ID] = v
}

func (r *memVehicleRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// memSyncRunRepo is an in-memory store.SyncRunRepository.
type memSyncRunRepo struct {
	mu         sync.Mutex
	runs       map[string]models.SyncRun
	errs       map[string][]models.SyncError
	lastLimit  uint64
	failCreate error
}

func newMemSyncRunRepo() *memSyncRunRepo {
	return &memSyncRunRepo{
		runs: make(map[string]models.SyncRun),
		errs: make(map[string][]models.SyncError),
	}
}

func (r *memSyncRunRepo) Create(_ context.Context, run models.SyncRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failCreate != nil {
		return r.failCreate
	}
	r.runs[run.ID] = run
	return nil
}

func (r *memSyncRunRepo) Finalize(_ context.Context, run models.SyncRun, errs []models.SyncError) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.runs[run.ID]
	if !ok || stored.CompletedAt != nil {
		return store.ErrSyncRunFinalized
	}
	r.runs[run.ID] = run
	r.errs[run.ID] = append([]models.SyncError(nil), errs...)
	return nil
}

func (r *memSyncRunRepo) GetByID(_ context.Context, dealerID, id string) (models.SyncRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, ok := r.runs[id]
	if !ok || run.DealerID != dealerID {
		return models.SyncRun{}, store.ErrSyncRunNotFound
	}
	return run, nil
}

func (r *memSyncRunRepo) ListByDealer(_ context.Context, dealerID string, limit uint64) ([]models.SyncRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastLimit = limit
	var out []models.SyncRun
	for _, run := range r.runs {
		if run.DealerID == dealerID {
			out = append(out, run)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	if uint64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memSyncRunRepo) LatestByDealer(ctx context.Context, dealerID string) (models.SyncRun, error) {
	runs, _ := r.ListByDealer(ctx, dealerID, 1)
	if len(runs) == 0 {
		return models.SyncRun{}, store.ErrSyncRunNotFound
	}
	return runs[0], nil
}

func (r *memSyncRunRepo) ListErrors(_ context.Context, runID string) ([]models.SyncError, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errs[runID], nil
}

func (r *memSyncRunRepo) get(id string) models.SyncRun {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs[id]
}

func (r *memSyncRunRepo) persistedErrors(id string) []models.SyncError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errs[id]
}

// memStorage is an in-memory objects.Storage.
type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string][]byte)}
}

func (s *memStorage) Init(context.Context) error { return nil }

func (s *memStorage) Exists(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[name]
	return ok, nil
}

func (s *memStorage) Upload(_ context.Context, name string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[name] = data
	return nil
}

func (s *memStorage) List(_ context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var names []string
	for name := range s.objects {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *memStorage) DeleteMany(_ context.Context, names []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, name := range names {
		if _, ok := s.objects[name]; ok {
			delete(s.objects, name)
			n++
		}
	}
	return n, nil
}

func (s *memStorage) PublicURL(name string) string {
	return "https://cdn.test/" + name
}

func (s *memStorage) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// fakeDownloader serves a tiny JPEG for every URL except the failing ones.
type fakeDownloader struct {
	calls atomic.Int32
	fail  map[string]bool
}

func (d *fakeDownloader) Download(_ context.Context, url string) (adapter.Photo, error) {
	d.calls.Add(1)
	if d.fail[url] {
		return adapter.Photo{}, fmt.Errorf("%w: %s", adapter.ErrUpstreamNetwork, url)
	}
	return adapter.Photo{Data: []byte("jpeg"), ContentType: "image/jpeg"}, nil
}

// sequenceIDs yields run-1, run-2, ...
type sequenceIDs struct {
	n atomic.Int32
}

func (s *sequenceIDs) Generate() string {
	return fmt.Sprintf("run-%d", s.n.Add(1))
}

// errorList is an ErrorRecorder that keeps everything.
type errorList struct {
	mu   sync.Mutex
	errs []models.SyncError
}

func (l *errorList) RecordError(syncErr models.SyncError) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, syncErr)
}

func remoteVehicle(vin string, price float64, photos ...string) models.RemoteVehicle {
	return models.RemoteVehicle{
		ID:          "ext-" + vin,
		VIN:         vin,
		StockNumber: "S-" + vin,
		Year:        2021,
		Make:        "Toyota",
		Model:       "Corolla",
		Price:       price,
		AskingPrice: price,
		Mileage:     12000,
		Photos:      photos,
	}
}
