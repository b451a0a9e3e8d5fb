// Package server is an in-memory reference implementation of the VedicVogue
// wire contract. It backs the integration tests and the demo binary; it is
// not a production backend.
package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hemang2208/vedicvogue-sync/internal/envelope"
	"github.com/Hemang2208/vedicvogue-sync/internal/models"
)

type Server struct {
	codec     *envelope.Codec
	jwtSecret string
	tokenTTL  time.Duration
	log       *logrus.Logger

	mu           sync.Mutex
	user         models.UserProfile
	passwordHash []byte
	settings     models.SecuritySettings
	sessions     []models.Session
	activity     []models.ActivityEntry
}

func New(codec *envelope.Codec, jwtSecret string, tokenTTL time.Duration, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{
		codec:     codec,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// SeedUser installs the user aggregate the server will own, with the given
// login password.
func (s *Server) SeedUser(user models.UserProfile, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.user = user
	s.passwordHash = hash
	s.mu.Unlock()
	return nil
}

func (s *Server) SeedSecurity(settings models.SecuritySettings, sessions []models.Session, activity []models.ActivityEntry) {
	s.mu.Lock()
	s.settings = settings
	s.sessions = append([]models.Session(nil), sessions...)
	s.activity = append([]models.ActivityEntry(nil), activity...)
	s.mu.Unlock()
}

// IssueToken signs a bearer token for the given user, the way the real
// auth service would.
func (s *Server) IssueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(s.tokenTTL).Unix(),
		"iat":    time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
}

// Router mounts the wire contract.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.Use(s.auth())
	{
		api.GET("/users/get/:userId", s.getProfile)
		api.PUT("/users/update/:userId", s.updateProfile)
		api.POST("/users/add-address/:userId", s.addAddress)
		api.PUT("/users/update-address/:userId/:index", s.updateAddress)
		api.DELETE("/users/remove-address/:userId/:index", s.removeAddress)

		api.GET("/security/settings", s.getSettings)
		api.PUT("/security/settings", s.updateSettings)
		api.POST("/security/change-password", s.changePassword)
		api.GET("/security/sessions", s.listSessions)
		api.DELETE("/security/sessions", s.terminateOtherSessions)
		api.DELETE("/security/sessions/:id", s.terminateSession)
		api.GET("/security/activity", s.activityFeed)
	}
	return r
}

// respondSealed wraps a success payload in the encrypted envelope.
func (s *Server) respondSealed(c *gin.Context, status int, payload any) {
	env, err := s.codec.Wrap(payload)
	if err != nil {
		s.log.WithError(err).Error("[SERVER] seal response failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(status, env)
}

// respondError sends the plaintext error body the contract promises on
// non-2xx statuses.
func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// bindSealed reads the request body and opens its envelope into out.
func (s *Server) bindSealed(c *gin.Context, out any) bool {
	raw, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, "unreadable body")
		return false
	}
	if err := s.codec.Open(raw, out); err != nil {
		s.log.WithError(err).Warn("[SERVER] request envelope rejected")
		respondError(c, http.StatusBadRequest, "malformed request envelope")
		return false
	}
	return true
}

func newSessionID() string {
	return uuid.NewString()
}
