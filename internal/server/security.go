package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hemang2208/vedicvogue-sync/internal/models"
)

func (s *Server) getSettings(c *gin.Context) {
	s.mu.Lock()
	settings := s.settings
	s.mu.Unlock()
	s.respondSealed(c, http.StatusOK, settings)
}

func (s *Server) updateSettings(c *gin.Context) {
	var settings models.SecuritySettings
	if !s.bindSealed(c, &settings) {
		return
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	s.log.Info("[SECURITY] settings updated")

	s.respondSealed(c, http.StatusOK, settings)
}

func (s *Server) changePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if !s.bindSealed(c, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.CurrentPassword)); err != nil {
		respondError(c, http.StatusBadRequest, "current password is incorrect")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.log.WithError(err).Error("[SECURITY] password hash failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	s.passwordHash = hash

	s.activity = append(s.activity, models.ActivityEntry{
		ID:          newSessionID(),
		Type:        "password_change",
		Description: "Password changed",
		Timestamp:   time.Now(),
		Status:      "success",
	})
	s.log.Info("[SECURITY] password changed")

	s.respondSealed(c, http.StatusOK, gin.H{"success": true})
}

func (s *Server) listSessions(c *gin.Context) {
	s.mu.Lock()
	sessions := append([]models.Session(nil), s.sessions...)
	s.mu.Unlock()
	s.respondSealed(c, http.StatusOK, sessions)
}

func (s *Server) terminateSession(c *gin.Context) {
	sessionID := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Session, 0, len(s.sessions))
	found := false
	for _, session := range s.sessions {
		if session.ID == sessionID {
			if session.Current {
				respondError(c, http.StatusBadRequest, "cannot terminate the current session")
				return
			}
			found = true
			continue
		}
		kept = append(kept, session)
	}
	if !found {
		respondError(c, http.StatusNotFound, "session not found")
		return
	}

	s.sessions = kept
	s.log.Info("[SECURITY] session terminated: ", sessionID)
	s.respondSealed(c, http.StatusOK, gin.H{"id": sessionID})
}

func (s *Server) terminateOtherSessions(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Session, 0, 1)
	terminated := 0
	for _, session := range s.sessions {
		if session.Current {
			kept = append(kept, session)
			continue
		}
		terminated++
	}
	s.sessions = kept
	s.log.Info("[SECURITY] other sessions terminated: ", terminated)

	s.respondSealed(c, http.StatusOK, gin.H{"terminated": terminated})
}

// activityFeed serves a filtered, paginated page of the append-only log.
func (s *Server) activityFeed(c *gin.Context) {
	page, limit, err := parsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid pagination params")
		return
	}
	typeFilter := c.Query("type")
	statusFilter := c.Query("status")

	s.mu.Lock()
	matched := make([]models.ActivityEntry, 0, len(s.activity))
	for _, entry := range s.activity {
		if typeFilter != "" && entry.Type != typeFilter {
			continue
		}
		if statusFilter != "" && entry.Status != statusFilter {
			continue
		}
		matched = append(matched, entry)
	}
	s.mu.Unlock()

	total := len(matched)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	s.respondSealed(c, http.StatusOK, models.ActivityFeed{
		Activities: matched[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	})
}

func parsePagination(pageStr, limitStr string) (int, int, error) {
	page, limit := 1, 20

	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			return 0, 0, strconv.ErrRange
		}
		page = p
	}
	if limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 {
			return 0, 0, strconv.ErrRange
		}
		limit = l
	}
	return page, limit, nil
}
