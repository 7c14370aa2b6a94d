package handler

import (
	"net/http"

	"github.com/wynnforge/wynnforge/internal/profile"
)

// ProfileListResponse lists the available scoring profiles
type ProfileListResponse struct {
	Count    int               `json:"count"`
	Profiles []profile.Profile `json:"profiles"`
}

// HandleListProfiles lists the scoring weight presets
// @Summary List scoring profiles
// @Description Lists the built-in and operator-defined scoring weight presets
// @Tags builds
// @Produce json
// @Success 200 {object} ProfileListResponse
// @Router /profiles [get]
func HandleListProfiles(store *profile.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles := store.All()
		respondJSON(w, http.StatusOK, ProfileListResponse{
			Count:    len(profiles),
			Profiles: profiles,
		})
	}
}
