package main

import (
	"log"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Hemang2208/vedicvogue-sync/internal/config"
	"github.com/Hemang2208/vedicvogue-sync/internal/envelope"
	"github.com/Hemang2208/vedicvogue-sync/internal/models"
	"github.com/Hemang2208/vedicvogue-sync/internal/server"
)

func main() {
	config.Load()

	if config.AppEnv.EncryptionKey == "" {
		log.Fatal("ENCRYPTION_KEY is required")
	}
	if config.AppEnv.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	logger := logrus.StandardLogger()
	codec := envelope.NewCodec(envelope.NewAESCipher(config.AppEnv.EncryptionKey))
	srv := server.New(codec, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL, logger)

	if err := srv.SeedUser(demoUser(), "demo-password"); err != nil {
		log.Fatal(err)
	}
	srv.SeedSecurity(models.SecuritySettings{LoginNotifications: true, DeviceTracking: true},
		[]models.Session{{
			ID:         "seed-session",
			Device:     "Chrome on Linux",
			Location:   "Pune, IN",
			LastActive: time.Now(),
			Current:    true,
			IP:         "127.0.0.1",
		}}, nil)

	token, err := srv.IssueToken("demo-user")
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("demo bearer token: ", token)

	if err := srv.Router().Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}

func demoUser() models.UserProfile {
	now := time.Now()
	return models.UserProfile{
		ID:   "demo-user",
		Name: "Demo User",
		Account: models.Account{
			Email: "demo@vedicvogue.com",
			Phone: "+91 90000 00000",
		},
		Addresses: []models.BackendAddress{{
			Label:       "Home",
			HouseNumber: "12",
			Street:      "MG Road",
			Area:        "Shivajinagar",
			City:        "Pune",
			State:       "MH",
			Zipcode:     "411001",
			Country:     "India",
		}},
		Activity: models.ActivitySummary{MemberSince: now},
		Preferences: models.UserPreferences{
			Meals: models.MealPreferences{Type: "veg", Spice: "medium"},
			Notifications: models.NotificationPreferences{
				Order:     true,
				Reminders: true,
			},
		},
		Status:    models.AccountStatus{Verified: true, Active: true},
		Security:  models.AccountSecurity{Role: "customer"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
