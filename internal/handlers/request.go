package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/senyabanana/towbid-service/internal/utils"
)

// maxBodyBytes - предельный размер тела JSON-запроса.
const maxBodyBytes = 1 << 20

// decodeJSON читает тело запроса в v. При ошибке сам отвечает клиенту и возвращает false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.SendErrorResponse(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
