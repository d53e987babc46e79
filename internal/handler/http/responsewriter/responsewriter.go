// Package responsewriter provides a wrapper for http.ResponseWriter that records
// the status code and body size of a response for logging, metrics and tracing.
package responsewriter

import (
	"net/http"
)

// ResponseWriter records the status and size of the response written through it.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	written int
}

// Wrap returns w wrapped for recording. Wrapping an already wrapped writer
// returns it unchanged so stacked middlewares share one recorder.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w}
}

// WriteHeader records the first status code and forwards it.
func (w *ResponseWriter) WriteHeader(statusCode int) {
	if w.status != 0 {
		return
	}
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b, implying 200 when no status was set.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

// StatusCode returns the recorded status, or 200 when nothing was written yet.
func (w *ResponseWriter) StatusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// HeaderWritten reports whether a status line has been sent.
func (w *ResponseWriter) HeaderWritten() bool {
	return w.status != 0
}

// BytesWritten returns the number of body bytes written.
func (w *ResponseWriter) BytesWritten() int {
	return w.written
}

// Unwrap returns the underlying http.ResponseWriter (for http.ResponseController support).
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
