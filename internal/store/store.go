package store

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Hemang2208/vedicvogue-sync/internal/config"
	"github.com/Hemang2208/vedicvogue-sync/internal/envelope"
	"github.com/Hemang2208/vedicvogue-sync/internal/transport"
)

// Store composes the per-entity containers over one shared transport client.
// Slices are independently addressable and never read each other's
// internals; combining profile and address data happens at the caller.
type Store struct {
	Profile     *ProfileStore
	Addresses   *AddressStore
	Preferences *PreferencesStore
	Settings    *SettingsStore
	Sessions    *SessionsStore
	Activity    *ActivityStore
}

// New validates the configuration and builds the composed store. A missing
// API base URL aborts here, before any I/O could happen.
func New(cfg config.Config, userID string, tokens transport.TokenProvider, log *logrus.Logger) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	codec := envelope.NewCodec(envelope.NewAESCipher(cfg.EncryptionKey))
	api := transport.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout}, codec, tokens, log)

	return &Store{
		Profile:     NewProfileStore(api, userID, log),
		Addresses:   NewAddressStore(api, userID, log),
		Preferences: NewPreferencesStore(api, userID, log),
		Settings:    NewSettingsStore(api, log),
		Sessions:    NewSessionsStore(api, log),
		Activity:    NewActivityStore(api, log),
	}, nil
}
