package store

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Hemang2208/vedicvogue-sync/internal/models"
	"github.com/Hemang2208/vedicvogue-sync/internal/translate"
	"github.com/Hemang2208/vedicvogue-sync/internal/transport"
)

var validate = validator.New()

// addressInput pins the fields an address mutation cannot go out without.
type addressInput struct {
	AddressLine1 string `validate:"required"`
	City         string `validate:"required"`
	State        string `validate:"required"`
	Pincode      string `validate:"required"`
}

// AddressStore mirrors the user's address book as UI-facing addresses. Every
// operation stores the server's full recomputed collection, filtered of
// soft-delete tombstones and translated with positional ids; the server stays
// the single source of truth for ordering and filtering.
type AddressStore struct {
	lifecycle
	api      *transport.Client
	userID   string
	log      *logrus.Entry
	snapshot []models.FrontendAddress
}

func NewAddressStore(api *transport.Client, userID string, log *logrus.Logger) *AddressStore {
	return &AddressStore{
		lifecycle: newLifecycle(),
		api:       api,
		userID:    userID,
		log:       log.WithField("store", "addresses"),
	}
}

// List refreshes the address book from the profile aggregate.
func (s *AddressStore) List(ctx context.Context) error {
	return s.run(ctx, "list", "GET", "/api/users/get/"+s.userID, nil)
}

// Add converts the UI payload to the backend shape and appends it. The index
// the server assigns is positional in the filtered list.
func (s *AddressStore) Add(ctx context.Context, addr models.FrontendAddress) error {
	if err := validateAddress(addr); err != nil {
		seq := s.begin()
		s.fail(seq, err)
		return err
	}
	return s.run(ctx, "add", "POST", "/api/users/add-address/"+s.userID, translate.ToBackend(addr))
}

// Update edits the address at the given position of the current filtered
// list. Client and server must agree on filtering order for the edit to land
// on the right record.
func (s *AddressStore) Update(ctx context.Context, index int, addr models.FrontendAddress) error {
	if err := validateAddress(addr); err != nil {
		seq := s.begin()
		s.fail(seq, err)
		return err
	}
	path := fmt.Sprintf("/api/users/update-address/%s/%d", s.userID, index)
	return s.run(ctx, "update", "PUT", path, translate.ToBackend(addr))
}

// Remove soft-deletes the address at the given position of the current
// filtered list.
func (s *AddressStore) Remove(ctx context.Context, index int) error {
	path := fmt.Sprintf("/api/users/remove-address/%s/%d", s.userID, index)
	return s.run(ctx, "remove", "DELETE", path, nil)
}

// run is the shared operation body: every address endpoint responds with the
// full profile, whose address array replaces the snapshot after filtering
// and translation.
func (s *AddressStore) run(ctx context.Context, op, method, path string, body any) error {
	seq := s.begin()

	var profile models.UserProfile
	if err := s.api.CallInto(ctx, method, path, body, &profile); err != nil {
		if s.fail(seq, err) {
			s.log.WithError(err).Error("address ", op, " failed")
		}
		return err
	}

	addresses := translate.ToFrontendList(profile.Addresses, translate.ProfileContext{
		FullName: profile.Name,
		Phone:    profile.Account.Phone,
	})
	if !s.succeed(seq, func() { s.snapshot = addresses }) {
		s.log.Debug("address ", op, " response discarded as stale")
	}
	return nil
}

// Snapshot returns a copy of the current UI-facing address list.
func (s *AddressStore) Snapshot() []models.FrontendAddress {
	var out []models.FrontendAddress
	s.read(func() {
		out = append([]models.FrontendAddress(nil), s.snapshot...)
	})
	return out
}

func validateAddress(addr models.FrontendAddress) error {
	input := addressInput{
		AddressLine1: addr.AddressLine1,
		City:         addr.City,
		State:        addr.State,
		Pincode:      addr.Pincode,
	}
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}
	return nil
}
