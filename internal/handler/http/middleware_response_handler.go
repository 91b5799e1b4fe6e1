// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pin Atlas

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] so withLogging can observe
// the status code and body size after the downstream handler returns. The
// response body itself is never buffered; decrypted boards must not linger
// in middleware state.
type responseWriter struct {
	http.ResponseWriter

	status      int
	size        int
	wroteHeader bool
}

// WriteHeader forwards the status code to the underlying writer exactly
// once; repeated calls are ignored.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
