// Account handlers: create, list and delete.
package httpapi

import (
	"net/http"
	"net/url"

	chi "github.com/go-chi/chi/v5"

	"github.com/tinoosan/contas/internal/ledger"
)

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	accs, err := s.accountSvc.List(r.Context())
	if err != nil {
		s.storeErr(w, r, err, notFoundMsgs{record: msgAccountNotFound})
		return
	}
	toJSON(w, http.StatusOK, accs)
}

func (s *Server) postAccount(w http.ResponseWriter, r *http.Request) {
	in, ok := r.Context().Value(ctxKeyPostAccount).(ledger.Account)
	if !ok {
		writeErr(w, http.StatusInternalServerError, "validated request missing")
		return
	}
	if err := s.accountSvc.Create(r.Context(), in); err != nil {
		s.storeErr(w, r, err, notFoundMsgs{record: msgAccountNotFound})
		return
	}
	toJSON(w, http.StatusCreated, messageResponse{Message: msgAccountCreated})
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	codigo := pathParam(r, "codigo")
	had, err := s.accountSvc.Delete(r.Context(), codigo)
	if err != nil {
		s.storeErr(w, r, err, notFoundMsgs{record: msgAccountNotFound})
		return
	}
	toJSON(w, http.StatusOK, deleteAccountResponse{OK: true, TemMovimentacao: had})
}

// pathParam returns the route parameter decoded once. chi matches on
// RawPath when the request has one, and on the already decoded Path otherwise.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
