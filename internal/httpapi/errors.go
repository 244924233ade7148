package httpapi

import (
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tinoosan/contas/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	toJSON(w, status, errorResponse{Error: msg})
}

func notFound(w http.ResponseWriter, msg string) { writeErr(w, http.StatusNotFound, msg) }

// inputError is a rejected request body. It matches errs.ErrInvalid.
type inputError string

func (e inputError) Error() string        { return string(e) }
func (e inputError) Is(target error) bool { return target == errs.ErrInvalid }

// notFoundMsgs picks the 404 text: missing is used when the backing file is
// absent, record when the file exists but nothing matched.
type notFoundMsgs struct {
	missing string
	record  string
}

// storeErr maps a request or service error onto a response. Invalid input is
// 400, oversized bodies 413 and NotFound 404 with the matching message;
// everything else is logged and reported as 500.
func (s *Server) storeErr(w http.ResponseWriter, r *http.Request, err error, nf notFoundMsgs) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, errs.ErrInvalid):
		writeErr(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &tooLarge):
		writeErr(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, errs.ErrNotFound):
		if errors.Is(err, errs.ErrFileMissing) && nf.missing != "" {
			notFound(w, nf.missing)
			return
		}
		notFound(w, nf.record)
	case errors.Is(err, errs.ErrCorrupt):
		s.log.Error("stored data is corrupt", "req_id", chimw.GetReqID(r.Context()), "err", err)
		writeErr(w, http.StatusInternalServerError, "Dados corrompidos")
	default:
		s.log.Error("storage failure", "req_id", chimw.GetReqID(r.Context()), "err", err)
		writeErr(w, http.StatusInternalServerError, "Erro de armazenamento")
	}
}
