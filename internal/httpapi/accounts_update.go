package httpapi

import "net/http"

// setBalance handles PUT /contas/saldo. The file is untouched when no account matches.
func (s *Server) setBalance(w http.ResponseWriter, r *http.Request) {
	req, ok := r.Context().Value(ctxKeySetBalance).(setBalanceRequest)
	if !ok {
		writeErr(w, http.StatusInternalServerError, "validated request missing")
		return
	}
	if err := s.accountSvc.SetBalance(r.Context(), req.Codigo, *req.NovoSaldo); err != nil {
		s.storeErr(w, r, err, notFoundMsgs{record: msgAccountNotFound})
		return
	}
	toJSON(w, http.StatusOK, okResponse{OK: true})
}

// setDescription handles PUT /contas/{codigo}.
func (s *Server) setDescription(w http.ResponseWriter, r *http.Request) {
	req, ok := r.Context().Value(ctxKeySetDescription).(setDescriptionRequest)
	if !ok {
		writeErr(w, http.StatusInternalServerError, "validated request missing")
		return
	}
	if err := s.accountSvc.SetDescription(r.Context(), pathParam(r, "codigo"), req.Descricao); err != nil {
		s.storeErr(w, r, err, notFoundMsgs{record: msgAccountNotFound})
		return
	}
	toJSON(w, http.StatusOK, okResponse{OK: true})
}
