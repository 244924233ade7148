package httpapi

import "github.com/tinoosan/contas/internal/ledger"

type setBalanceRequest struct {
	Codigo    string         `json:"codigo"`
	NovoSaldo *ledger.Amount `json:"novoSaldo"`
}

type setDescriptionRequest struct {
	Descricao string `json:"descricao"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type deleteAccountResponse struct {
	OK              bool `json:"ok"`
	TemMovimentacao bool `json:"temMovimentacao"`
}

const (
	msgAccountCreated   = "Conta cadastrada com sucesso!"
	msgAccountNotFound  = "Conta não encontrada"
	msgLedgerNotFound   = "Extrato não encontrado"
	msgMovementNotFound = "Movimento não encontrado"
)
