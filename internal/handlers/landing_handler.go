package handlers

import (
	"net/http"

	"github.com/senyabanana/towbid-service/internal/models"
	"github.com/senyabanana/towbid-service/internal/utils"
)

// LandingHandler отдаёт содержимое главной страницы.
func LandingHandler(w http.ResponseWriter, r *http.Request) {
	utils.SendJSON(w, http.StatusOK, models.DefaultLandingPage())
}
