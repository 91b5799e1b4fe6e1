// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pin Atlas

package http

import "net/http"

// withCORS applies the permissive cross-origin policy of the board vault:
// any origin may POST with a Content-Type header. The browser-based board
// editor is served from arbitrary origins, and the endpoints carry no
// cookies or ambient credentials, so an allow-all policy gives nothing
// away.
//
// Preflight OPTIONS requests are answered here with 204 and no body; they
// never reach a route handler.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
