package notificacao

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Notificador envia avisos operacionais via webhook. Entregas são
// melhor-esforço: falha é registrada em log e nunca interrompe o fluxo
// que disparou o aviso.
type Notificador struct {
	URL string
	Log *zap.Logger
}

func NewNotificador(url string, log *zap.Logger) *Notificador {
	return &Notificador{URL: url, Log: log}
}

// EnviarConvitePrestador publica o link de convite de um prestador
// recém-cadastrado para o canal configurado (e-mail é disparado de lá).
func (n *Notificador) EnviarConvitePrestador(email, nome, link string) {
	if n.URL == "" {
		n.Log.Debug("webhook de convite não configurado", zap.String("email", email))
		return
	}

	payload := map[string]string{
		"mensagem": "Novo prestador convidado",
		"email":    email,
		"nome":     nome,
		"link":     link,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(n.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		n.Log.Warn("erro ao enviar webhook de convite", zap.Error(err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		n.Log.Warn("webhook de convite respondeu com erro", zap.Int("status", resp.StatusCode))
	}
}
