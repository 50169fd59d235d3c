package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/business-overview-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-overview-api/pkg/apiErrors"
	"github.com/vfg2006/business-overview-api/pkg/log"
	"github.com/vfg2006/business-overview-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errMissingValue = errors.New("campo value ausente")

// fieldValueRequest é o corpo aceito pelas rotas que alteram um campo
type fieldValueRequest struct {
	Value *string `json:"value"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

func decodeFieldValue(r *http.Request) (string, error) {
	var req fieldValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", errors.Wrap(err, "corpo da requisição inválido")
	}
	if req.Value == nil {
		return "", errMissingValue
	}
	return *req.Value, nil
}

func parseIndex(params httprouter.Params) (int, error) {
	index, err := strconv.Atoi(params.ByName("index"))
	if err != nil {
		return 0, errors.Wrapf(err, "índice inválido %q", params.ByName("index"))
	}
	return index, nil
}

// authorizedSession devolve o :id da rota quando o token pertence a essa sessão
func authorizedSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	claims, _ := middleware.SessionClaims(r.Context())

	err := authenticating.Authorize(claims, sessionID)
	switch {
	case err == nil:
		return sessionID, true
	case errors.Is(err, authenticating.ErrSessionMismatch):
		log.ForContext(r.Context()).WithField("session_id", sessionID).Warn("Token usado em outra sessão")
		apiErrors.WriteError(w, apiErrors.ErrSessionMismatch, "Token não pertence a esta sessão", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de sessão inválido", nil)
	}
	return "", false
}
