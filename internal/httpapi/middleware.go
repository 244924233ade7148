package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/tinoosan/contas/internal/ledger"
)

type ctxKey string

const (
	ctxKeyPostAccount    ctxKey = "validatedPostAccount"
	ctxKeyPostMovement   ctxKey = "validatedPostMovement"
	ctxKeySetBalance     ctxKey = "validatedSetBalance"
	ctxKeySetDescription ctxKey = "validatedSetDescription"
	ctxKeyListMovements  ctxKey = "validatedListMovements"
)

// limitBody caps request bodies with http.MaxBytesReader.
func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// decodeBody reads a JSON body into dst. An empty body decodes as {}.
// Oversized bodies surface as *http.MaxBytesError, anything else as an inputError.
func decodeBody(r *http.Request, dst any) error {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return inputError("could not read body")
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return inputError("invalid JSON: " + err.Error())
	}
	return nil
}

// validatePostAccount parses POST /contas and stores the account in the context.
func (s *Server) validatePostAccount() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var a ledger.Account
			if err := decodeBody(r, &a); err != nil {
				s.storeErr(w, r, err, notFoundMsgs{})
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyPostAccount, a)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validatePostMovement parses POST /extrato.
func (s *Server) validatePostMovement() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var m ledger.Movement
			if err := decodeBody(r, &m); err != nil {
				s.storeErr(w, r, err, notFoundMsgs{})
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyPostMovement, m)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validateSetBalance parses PUT /contas/saldo. novoSaldo must be present and numeric.
func (s *Server) validateSetBalance() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req setBalanceRequest
			if err := decodeBody(r, &req); err != nil {
				s.storeErr(w, r, err, notFoundMsgs{})
				return
			}
			if req.NovoSaldo == nil {
				s.storeErr(w, r, inputError("novoSaldo is required"), notFoundMsgs{})
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeySetBalance, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validateSetDescription parses PUT /contas/{codigo}.
func (s *Server) validateSetDescription() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req setDescriptionRequest
			if err := decodeBody(r, &req); err != nil {
				s.storeErr(w, r, err, notFoundMsgs{})
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeySetDescription, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validateListMovements turns GET /extrato query params into a filter.
func (s *Server) validateListMovements() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			f := ledger.Filter{Codigo: q.Get("codigo"), From: q.Get("inicio"), To: q.Get("fim")}
			ctx := context.WithValue(r.Context(), ctxKeyListMovements, f)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
