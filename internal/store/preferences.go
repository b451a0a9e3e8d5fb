package store

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Hemang2208/vedicvogue-sync/internal/models"
	"github.com/Hemang2208/vedicvogue-sync/internal/transport"
)

// MealPatch is a partial update of the meal preferences. Nil fields keep the
// current value.
type MealPatch struct {
	Type         *string
	Spice        *string
	Restrictions *string
	Message      *string
}

// NotificationPatch is a partial update of the notification toggles.
type NotificationPatch struct {
	Order      *bool
	Reminders  *bool
	Menu       *bool
	Promotions *bool
}

// PreferencesStore mirrors the user's preferences. The backend update
// endpoint replaces nested objects instead of deep-merging them, so every
// patch reads the current in-memory snapshot, merges, and sends the full
// merged object.
type PreferencesStore struct {
	lifecycle
	api      *transport.Client
	userID   string
	log      *logrus.Entry
	snapshot *models.UserPreferences
}

func NewPreferencesStore(api *transport.Client, userID string, log *logrus.Logger) *PreferencesStore {
	return &PreferencesStore{
		lifecycle: newLifecycle(),
		api:       api,
		userID:    userID,
		log:       log.WithField("store", "preferences"),
	}
}

// Fetch loads preferences out of the profile aggregate.
func (s *PreferencesStore) Fetch(ctx context.Context) error {
	seq := s.begin()

	var profile models.UserProfile
	if err := s.api.CallInto(ctx, "GET", "/api/users/get/"+s.userID, nil, &profile); err != nil {
		if s.fail(seq, err) {
			s.log.WithError(err).Error("preferences fetch failed")
		}
		return err
	}

	prefs := profile.Preferences
	if !s.succeed(seq, func() { s.snapshot = &prefs }) {
		s.log.Debug("preferences fetch response discarded as stale")
	}
	return nil
}

// Replace sends a whole preferences object.
func (s *PreferencesStore) Replace(ctx context.Context, prefs models.UserPreferences) error {
	return s.send(ctx, "replace", prefs)
}

// PatchMeals merges the patch into the current meal preferences and sends
// the merged object, so unpatched meal fields survive the server's replace.
func (s *PreferencesStore) PatchMeals(ctx context.Context, patch MealPatch) error {
	prefs := s.current()
	prefs.Meals = mergeMeals(prefs.Meals, patch)
	return s.send(ctx, "patch meals", prefs)
}

// PatchNotifications merges the patch into the current notification toggles
// and sends the merged object.
func (s *PreferencesStore) PatchNotifications(ctx context.Context, patch NotificationPatch) error {
	prefs := s.current()
	prefs.Notifications = mergeNotifications(prefs.Notifications, patch)
	return s.send(ctx, "patch notifications", prefs)
}

// Snapshot returns a copy of the last known-good preferences, if any.
func (s *PreferencesStore) Snapshot() (models.UserPreferences, bool) {
	var (
		prefs models.UserPreferences
		ok    bool
	)
	s.read(func() {
		if s.snapshot != nil {
			prefs = *s.snapshot
			prefs.PaymentMethods = append([]string(nil), s.snapshot.PaymentMethods...)
			ok = true
		}
	})
	return prefs, ok
}

// current reads the in-memory snapshot at call time, never a stale closure.
func (s *PreferencesStore) current() models.UserPreferences {
	var prefs models.UserPreferences
	s.read(func() {
		if s.snapshot != nil {
			prefs = *s.snapshot
			prefs.PaymentMethods = append([]string(nil), s.snapshot.PaymentMethods...)
		}
	})
	return prefs
}

func (s *PreferencesStore) send(ctx context.Context, op string, prefs models.UserPreferences) error {
	seq := s.begin()

	body := map[string]any{"preferences": prefs}
	var profile models.UserProfile
	if err := s.api.CallInto(ctx, "PUT", "/api/users/update/"+s.userID, body, &profile); err != nil {
		if s.fail(seq, err) {
			s.log.WithError(err).Error("preferences ", op, " failed")
		}
		return err
	}

	updated := profile.Preferences
	if !s.succeed(seq, func() { s.snapshot = &updated }) {
		s.log.Debug("preferences ", op, " response discarded as stale")
	}
	return nil
}

func mergeMeals(current models.MealPreferences, patch MealPatch) models.MealPreferences {
	if patch.Type != nil {
		current.Type = *patch.Type
	}
	if patch.Spice != nil {
		current.Spice = *patch.Spice
	}
	if patch.Restrictions != nil {
		current.Restrictions = *patch.Restrictions
	}
	if patch.Message != nil {
		current.Message = *patch.Message
	}
	return current
}

func mergeNotifications(current models.NotificationPreferences, patch NotificationPatch) models.NotificationPreferences {
	if patch.Order != nil {
		current.Order = *patch.Order
	}
	if patch.Reminders != nil {
		current.Reminders = *patch.Reminders
	}
	if patch.Menu != nil {
		current.Menu = *patch.Menu
	}
	if patch.Promotions != nil {
		current.Promotions = *patch.Promotions
	}
	return current
}
