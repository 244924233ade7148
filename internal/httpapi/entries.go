// Statement handlers: append, filtered list and delete with recomputation.
package httpapi

import (
	"net/http"

	"github.com/tinoosan/contas/internal/ledger"
)

func (s *Server) postMovement(w http.ResponseWriter, r *http.Request) {
	m, ok := r.Context().Value(ctxKeyPostMovement).(ledger.Movement)
	if !ok {
		writeErr(w, http.StatusInternalServerError, "validated request missing")
		return
	}
	if err := s.journalSvc.Append(r.Context(), m); err != nil {
		s.storeErr(w, r, err, notFoundMsgs{record: msgLedgerNotFound})
		return
	}
	toJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) listMovements(w http.ResponseWriter, r *http.Request) {
	f, ok := r.Context().Value(ctxKeyListMovements).(ledger.Filter)
	if !ok {
		writeErr(w, http.StatusInternalServerError, "validated query missing")
		return
	}
	movs, err := s.journalSvc.List(r.Context(), f)
	if err != nil {
		s.storeErr(w, r, err, notFoundMsgs{record: msgLedgerNotFound})
		return
	}
	toJSON(w, http.StatusOK, movs)
}

func (s *Server) deleteMovement(w http.ResponseWriter, r *http.Request) {
	if err := s.journalSvc.Delete(r.Context(), pathParam(r, "id")); err != nil {
		s.storeErr(w, r, err, notFoundMsgs{missing: msgLedgerNotFound, record: msgMovementNotFound})
		return
	}
	toJSON(w, http.StatusOK, okResponse{OK: true})
}
