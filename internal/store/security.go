package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/Hemang2208/vedicvogue-sync/internal/models"
	"github.com/Hemang2208/vedicvogue-sync/internal/transport"
)

type changePasswordInput struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,min=8"`
}

// SettingsStore mirrors the account security settings.
type SettingsStore struct {
	lifecycle
	api      *transport.Client
	log      *logrus.Entry
	snapshot *models.SecuritySettings
}

func NewSettingsStore(api *transport.Client, log *logrus.Logger) *SettingsStore {
	return &SettingsStore{
		lifecycle: newLifecycle(),
		api:       api,
		log:       log.WithField("store", "security-settings"),
	}
}

func (s *SettingsStore) Fetch(ctx context.Context) error {
	return s.exchange(ctx, "fetch", "GET", nil)
}

// Update sends the full settings object; the response replaces the snapshot.
func (s *SettingsStore) Update(ctx context.Context, settings models.SecuritySettings) error {
	return s.exchange(ctx, "update", "PUT", settings)
}

func (s *SettingsStore) exchange(ctx context.Context, op, method string, body any) error {
	seq := s.begin()

	var settings models.SecuritySettings
	if err := s.api.CallInto(ctx, method, "/api/security/settings", body, &settings); err != nil {
		if s.fail(seq, err) {
			s.log.WithError(err).Error("settings ", op, " failed")
		}
		return err
	}

	if !s.succeed(seq, func() { s.snapshot = &settings }) {
		s.log.Debug("settings ", op, " response discarded as stale")
	}
	return nil
}

// ChangePassword is an action, not a snapshot mutation: success leaves the
// settings snapshot untouched.
func (s *SettingsStore) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	input := changePasswordInput{CurrentPassword: currentPassword, NewPassword: newPassword}
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("invalid password change: %w", err)
	}

	seq := s.begin()

	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	var res struct {
		Success bool `json:"success"`
	}
	if err := s.api.CallInto(ctx, "POST", "/api/security/change-password", body, &res); err != nil {
		if s.fail(seq, err) {
			s.log.WithError(err).Error("change password failed")
		}
		return err
	}

	s.succeed(seq, nil)
	return nil
}

func (s *SettingsStore) Snapshot() (models.SecuritySettings, bool) {
	var (
		settings models.SecuritySettings
		ok       bool
	)
	s.read(func() {
		if s.snapshot != nil {
			settings = *s.snapshot
			ok = true
		}
	})
	return settings, ok
}

// SessionsStore mirrors the list of authenticated devices.
type SessionsStore struct {
	lifecycle
	api      *transport.Client
	log      *logrus.Entry
	snapshot []models.Session
}

func NewSessionsStore(api *transport.Client, log *logrus.Logger) *SessionsStore {
	return &SessionsStore{
		lifecycle: newLifecycle(),
		api:       api,
		log:       log.WithField("store", "security-sessions"),
	}
}

func (s *SessionsStore) Fetch(ctx context.Context) error {
	seq := s.begin()

	var sessions []models.Session
	if err := s.api.CallInto(ctx, "GET", "/api/security/sessions", nil, &sessions); err != nil {
		if s.fail(seq, err) {
			s.log.WithError(err).Error("sessions fetch failed")
		}
		return err
	}

	if !s.succeed(seq, func() { s.snapshot = sessions }) {
		s.log.Debug("sessions fetch response discarded as stale")
	}
	return nil
}

// Terminate ends one session. The wire contract answers with the terminated
// id rather than the recomputed list, so the snapshot drops that id locally.
func (s *SessionsStore) Terminate(ctx context.Context, sessionID string) error {
	seq := s.begin()

	var res struct {
		ID string `json:"id"`
	}
	if err := s.api.CallInto(ctx, "DELETE", "/api/security/sessions/"+sessionID, nil, &res); err != nil {
		if s.fail(seq, err) {
			s.log.WithError(err).Error("session terminate failed")
		}
		return err
	}

	s.succeed(seq, func() {
		kept := make([]models.Session, 0, len(s.snapshot))
		for _, session := range s.snapshot {
			if session.ID == res.ID {
				continue
			}
			kept = append(kept, session)
		}
		s.snapshot = kept
	})
	return nil
}

// TerminateOthers ends every session but the current one.
func (s *SessionsStore) TerminateOthers(ctx context.Context) error {
	seq := s.begin()

	var res struct {
		Terminated int `json:"terminated"`
	}
	if err := s.api.CallInto(ctx, "DELETE", "/api/security/sessions", nil, &res); err != nil {
		if s.fail(seq, err) {
			s.log.WithError(err).Error("terminate other sessions failed")
		}
		return err
	}

	s.succeed(seq, func() {
		kept := make([]models.Session, 0, 1)
		for _, session := range s.snapshot {
			if session.Current {
				kept = append(kept, session)
			}
		}
		s.snapshot = kept
	})
	return nil
}

func (s *SessionsStore) Snapshot() []models.Session {
	var out []models.Session
	s.read(func() {
		out = append([]models.Session(nil), s.snapshot...)
	})
	return out
}

// ActivityStore mirrors one page of the account activity feed.
type ActivityStore struct {
	lifecycle
	api      *transport.Client
	log      *logrus.Entry
	snapshot *models.ActivityFeed
}

func NewActivityStore(api *transport.Client, log *logrus.Logger) *ActivityStore {
	return &ActivityStore{
		lifecycle: newLifecycle(),
		api:       api,
		log:       log.WithField("store", "security-activity"),
	}
}

// Fetch loads a page of the feed. typ and status filter when non-empty.
func (s *ActivityStore) Fetch(ctx context.Context, page, limit int, typ, status string) error {
	seq := s.begin()

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if typ != "" {
		query.Set("type", typ)
	}
	if status != "" {
		query.Set("status", status)
	}

	var feed models.ActivityFeed
	if err := s.api.CallInto(ctx, "GET", "/api/security/activity?"+query.Encode(), nil, &feed); err != nil {
		if s.fail(seq, err) {
			s.log.WithError(err).Error("activity fetch failed")
		}
		return err
	}

	if !s.succeed(seq, func() { s.snapshot = &feed }) {
		s.log.Debug("activity fetch response discarded as stale")
	}
	return nil
}

func (s *ActivityStore) Snapshot() (models.ActivityFeed, bool) {
	var (
		feed models.ActivityFeed
		ok   bool
	)
	s.read(func() {
		if s.snapshot != nil {
			feed = *s.snapshot
			feed.Activities = append([]models.ActivityEntry(nil), s.snapshot.Activities...)
			ok = true
		}
	})
	return feed, ok
}
