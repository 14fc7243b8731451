// Package planner is the application service. Each operation loads the
// current snapshot, applies a pure update, and writes the whole document back.
package planner

import (
	"Gamehub/models"
	"Gamehub/services/groups"
	"Gamehub/services/store"
	"Gamehub/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Notifier is told about the group collection after it changed
type Notifier interface {
	GroupsChanged(groups []models.GameGroup)
}

type Service struct {
	store      store.Store
	reconciler *groups.Reconciler
	notifier   Notifier
	logger     *zap.Logger
	loc        *time.Location
	now        func() time.Time
	newID      func() string
}

type Option func(*Service)

func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithLocation sets the zone calendar days and time slots are evaluated in
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDs replaces the id generator for every entity, groups included
func WithIDs(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
		s.reconciler = &groups.Reconciler{NewID: newID}
	}
}

func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:      st,
		reconciler: groups.NewReconciler(),
		logger:     zap.NewNop(),
		loc:        time.Local,
		now:        time.Now,
		newID:      utils.GenerateID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location is the zone the service evaluates calendar days in
func (s *Service) Location() *time.Location {
	return s.loc
}

// Now is the service clock in the service location
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

// errUnchanged lets a mutation finish without writing anything
var errUnchanged = errors.New("unchanged")

func (s *Service) load(ctx context.Context) (*models.Snapshot, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, utils.ErrStoreUnavailable) {
			err = fmt.Errorf("%w: %v", utils.ErrStoreUnavailable, err)
		}
		return nil, err
	}
	if snap == nil {
		return models.DefaultSnapshot(s.now()), nil
	}
	snap.Normalize()
	return snap, nil
}

// Snapshot returns the current state. When the store cannot be read the
// failure is logged and the default document is served instead.
func (s *Service) Snapshot(ctx context.Context) *models.Snapshot {
	snap, err := s.load(ctx)
	if err != nil {
		s.logger.Warn("error loading snapshot, serving defaults", zap.Error(err))
		return models.DefaultSnapshot(s.now())
	}
	return snap
}

// mutate runs fn over a freshly loaded snapshot and saves the result.
// Nothing is saved when fn fails or returns errUnchanged.
func (s *Service) mutate(ctx context.Context, fn func(snap *models.Snapshot) error) (*models.Snapshot, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(snap); err != nil {
		if errors.Is(err, errUnchanged) {
			return snap, nil
		}
		return nil, err
	}
	snap.LastUpdated = s.now()
	if err := s.save(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *Service) save(ctx context.Context, snap *models.Snapshot) error {
	err := s.store.Save(ctx, snap)
	if err == nil {
		return nil
	}
	s.logger.Error("error saving snapshot", zap.Error(err), zap.Int64("version", snap.Version))
	if errors.Is(err, utils.ErrConflict) || errors.Is(err, utils.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", utils.ErrStoreUnavailable, err)
}

func (s *Service) notify(snap *models.Snapshot) {
	if s.notifier == nil {
		return
	}
	s.notifier.GroupsChanged(snap.GameGroups)
}

// ReplaceSnapshot overwrites the whole document. A snapshot without a
// version is written over whatever is stored.
func (s *Service) ReplaceSnapshot(ctx context.Context, snap *models.Snapshot) error {
	if snap.Version == 0 {
		current, err := s.load(ctx)
		if err != nil {
			return err
		}
		snap.Version = current.Version
	}
	snap.Normalize()
	if snap.LastUpdated.IsZero() {
		snap.LastUpdated = s.now()
	}
	if err := s.save(ctx, snap); err != nil {
		return err
	}
	s.notify(snap)
	return nil
}

func (s *Service) requireUser(snap *models.Snapshot, userID string) (*models.User, error) {
	if err := utils.RequireNonEmpty("userId", userID); err != nil {
		return nil, err
	}
	u := snap.FindUser(userID)
	if u == nil {
		return nil, fmt.Errorf("%w: user %s", utils.ErrNotFound, userID)
	}
	return u, nil
}
