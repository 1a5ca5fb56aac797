package shared

import (
	"context"

	"studio-agenda/internal/pkg/errs"
)

type ctxKey int

const (
	accessTokenKey ctxKey = iota
	requestIDKey
)

// WithAccessToken attaches the student's token so the gateway can call the backend on their behalf.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey, token)
}

func AccessToken(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey).(string)
	return token
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// User-facing messages, shown as a banner by the web client.
const (
	MsgNetwork           = "Não foi possível conectar ao servidor. Tente novamente mais tarde."
	MsgAuth              = "Sua sessão expirou. Faça login novamente."
	MsgConflict          = "Não foi possível concluir o agendamento."
	MsgNotFound          = "Agendamento não encontrado ou já cancelado."
	MsgCancellationClose = "O prazo para cancelamento desta aula já terminou."
	MsgInvalidClassSlot  = "Aula inválida."
	MsgUnexpected        = "Ocorreu um erro inesperado."
)

// UserMessage converts any usecase error into the message shown to the student.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errs.Is(err, errs.ErrAuth):
		return MsgAuth
	case errs.Is(err, errs.ErrNotFound):
		return MsgNotFound
	case errs.Is(err, errs.ErrCancellationClosed):
		return MsgCancellationClose
	case errs.Is(err, errs.ErrConflict):
		return MsgConflict
	case errs.Is(err, errs.ErrInvalidClassSlot):
		return MsgInvalidClassSlot
	case errs.Is(err, errs.ErrNetwork):
		return MsgNetwork
	default:
		return MsgUnexpected
	}
}
