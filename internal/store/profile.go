package store

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Hemang2208/vedicvogue-sync/internal/models"
	"github.com/Hemang2208/vedicvogue-sync/internal/transport"
)

// ProfileStore mirrors the server-owned user aggregate. The snapshot is a
// cache, never a source of truth: every successful mutation response
// replaces it wholesale with the server's recomputed profile.
type ProfileStore struct {
	lifecycle
	api      *transport.Client
	userID   string
	log      *logrus.Entry
	snapshot *models.UserProfile
}

func NewProfileStore(api *transport.Client, userID string, log *logrus.Logger) *ProfileStore {
	return &ProfileStore{
		lifecycle: newLifecycle(),
		api:       api,
		userID:    userID,
		log:       log.WithField("store", "profile"),
	}
}

// Fetch loads the profile from the server. Re-entrant: callable from any
// state as a refresh.
func (s *ProfileStore) Fetch(ctx context.Context) error {
	seq := s.begin()

	var profile models.UserProfile
	if err := s.api.CallInto(ctx, "GET", "/api/users/get/"+s.userID, nil, &profile); err != nil {
		if s.fail(seq, err) {
			s.log.WithError(err).Error("profile fetch failed")
		}
		return err
	}

	if !s.succeed(seq, func() { s.snapshot = &profile }) {
		s.log.Debug("profile fetch response discarded as stale")
	}
	return nil
}

// Update sends a partial set of profile fields. The server responds with the
// full updated profile, which replaces the snapshot.
func (s *ProfileStore) Update(ctx context.Context, fields map[string]any) error {
	seq := s.begin()

	var profile models.UserProfile
	if err := s.api.CallInto(ctx, "PUT", "/api/users/update/"+s.userID, fields, &profile); err != nil {
		if s.fail(seq, err) {
			s.log.WithError(err).Error("profile update failed")
		}
		return err
	}

	if !s.succeed(seq, func() { s.snapshot = &profile }) {
		s.log.Debug("profile update response discarded as stale")
	}
	return nil
}

// Clear drops the cached profile on logout.
func (s *ProfileStore) Clear() {
	s.reset(func() { s.snapshot = nil })
}

// Snapshot returns a copy of the last known-good profile, if any.
func (s *ProfileStore) Snapshot() (models.UserProfile, bool) {
	var (
		profile models.UserProfile
		ok      bool
	)
	s.read(func() {
		if s.snapshot != nil {
			profile = *s.snapshot
			profile.Addresses = append([]models.BackendAddress(nil), s.snapshot.Addresses...)
			ok = true
		}
	})
	return profile, ok
}
