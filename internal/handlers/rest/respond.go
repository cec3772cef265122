// Package rest holds the pieces shared by every route package: the
// response writers and the entity to DTO converters.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/bidbinh/vnss-tms-sub009/internal/dto"
)

// WriteJSON encodes v with the given status. Encoding failures cannot
// be reported to the client anymore, the caller logs them.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteDetail writes the error body of the API contract.
func WriteDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Detail: detail})
}
