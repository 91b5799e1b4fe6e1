// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pin Atlas

package http

import (
	"net/http"

	"github.com/pinatlas/board-vault/internal/utils"
	"github.com/pinatlas/board-vault/models"
)

// methodNotAllowed returns the [http.HandlerFunc] registered as the
// router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Any verb other than the registered POST/OPTIONS (and GET for the version
// endpoint) is rejected with 405 before request parsing or cryptographic
// logic runs. The body mirrors the JSON error shape of every other failure
// so clients have exactly one error format to handle.
func methodNotAllowed() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: "method not allowed"}, http.StatusMethodNotAllowed)
	}
}
