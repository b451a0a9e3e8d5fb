package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hemang2208/vedicvogue-sync/internal/models"
	"github.com/Hemang2208/vedicvogue-sync/internal/translate"
)

func (s *Server) getProfile(c *gin.Context) {
	userID, ok := s.requireOwnUser(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user.ID != userID {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}
	s.respondSealed(c, http.StatusOK, s.filteredProfileLocked())
}

// updateProfile applies a partial update. Nested objects are replaced
// wholesale, never deep-merged; the client is expected to send full merged
// objects.
func (s *Server) updateProfile(c *gin.Context) {
	userID, ok := s.requireOwnUser(c)
	if !ok {
		return
	}

	var fields map[string]json.RawMessage
	if !s.bindSealed(c, &fields) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user.ID != userID {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}

	if raw, exists := fields["name"]; exists {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			respondError(c, http.StatusBadRequest, "invalid name field")
			return
		}
		s.user.Name = name
	}
	if raw, exists := fields["account"]; exists {
		var account models.Account
		if err := json.Unmarshal(raw, &account); err != nil {
			respondError(c, http.StatusBadRequest, "invalid account field")
			return
		}
		s.user.Account = account
	}
	if raw, exists := fields["preferences"]; exists {
		var prefs models.UserPreferences
		if err := json.Unmarshal(raw, &prefs); err != nil {
			respondError(c, http.StatusBadRequest, "invalid preferences field")
			return
		}
		s.user.Preferences = prefs
	}
	s.user.UpdatedAt = time.Now()

	s.respondSealed(c, http.StatusOK, s.filteredProfileLocked())
}

func (s *Server) addAddress(c *gin.Context) {
	userID, ok := s.requireOwnUser(c)
	if !ok {
		return
	}

	var addr models.BackendAddress
	if !s.bindSealed(c, &addr) {
		return
	}
	addr.IsDeleted = false
	addr.DeletedAt = ""

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user.ID != userID {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}

	s.user.Addresses = append(s.user.Addresses, addr)
	s.user.UpdatedAt = time.Now()
	s.log.Info("[ADDRESS] address added, label: ", addr.Label)

	s.respondSealed(c, http.StatusOK, s.filteredProfileLocked())
}

func (s *Server) updateAddress(c *gin.Context) {
	userID, ok := s.requireOwnUser(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		respondError(c, http.StatusBadRequest, "invalid address index")
		return
	}

	var addr models.BackendAddress
	if !s.bindSealed(c, &addr) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user.ID != userID {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}

	raw := s.rawIndexLocked(index)
	if raw < 0 {
		respondError(c, http.StatusNotFound, "address not found")
		return
	}

	addr.IsDeleted = false
	addr.DeletedAt = ""
	s.user.Addresses[raw] = addr
	s.user.UpdatedAt = time.Now()
	s.log.Info("[ADDRESS] address updated, index: ", index)

	s.respondSealed(c, http.StatusOK, s.filteredProfileLocked())
}

// removeAddress soft-deletes: the record stays in the array as a tombstone
// and disappears from every filtered view.
func (s *Server) removeAddress(c *gin.Context) {
	userID, ok := s.requireOwnUser(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		respondError(c, http.StatusBadRequest, "invalid address index")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user.ID != userID {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}

	raw := s.rawIndexLocked(index)
	if raw < 0 {
		respondError(c, http.StatusNotFound, "address not found")
		return
	}

	s.user.Addresses[raw].IsDeleted = true
	s.user.Addresses[raw].DeletedAt = time.Now().Format(time.RFC3339)
	s.user.UpdatedAt = time.Now()
	s.log.Info("[ADDRESS] address removed, index: ", index)

	s.respondSealed(c, http.StatusOK, s.filteredProfileLocked())
}

// filteredProfileLocked copies the aggregate with tombstones stripped, the
// shape every success response carries. Caller holds s.mu.
func (s *Server) filteredProfileLocked() models.UserProfile {
	profile := s.user
	profile.Addresses = translate.FilterDeleted(s.user.Addresses)
	return profile
}

// rawIndexLocked maps a position in the filtered list back to the raw array.
// Returns -1 when the position is out of range. Caller holds s.mu.
func (s *Server) rawIndexLocked(filtered int) int {
	seen := 0
	for i, addr := range s.user.Addresses {
		if addr.IsDeleted {
			continue
		}
		if seen == filtered {
			return i
		}
		seen++
	}
	return -1
}
