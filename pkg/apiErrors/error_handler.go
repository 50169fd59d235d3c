package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de sessão
	ErrInvalidToken    = "AUTH_001" // Token inválido ou expirado
	ErrSessionMismatch = "AUTH_002" // Token pertence a outra sessão
	ErrSessionNotFound = "FORM_001" // Sessão de formulário não encontrada

	// Erros do formulário
	ErrIndexOutOfRange    = "FORM_002" // Linha inexistente
	ErrUnknownField       = "FORM_003" // Campo desconhecido
	ErrInvalidCompanyType = "FORM_004" // Tipo de empresa fora do enum

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidFormat  = "VAL_003" // Formato de dados inválido

	// Erros de roteamento
	ErrRouteNotFound    = "RT_001" // Rota inexistente
	ErrMethodNotAllowed = "RT_002" // Método não suportado na rota

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrSubmissionSink = "SRV_005" // Falha ao entregar o envio
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:       http.StatusUnauthorized,
	ErrSessionMismatch:    http.StatusForbidden,
	ErrSessionNotFound:    http.StatusNotFound,
	ErrIndexOutOfRange:    http.StatusNotFound,
	ErrUnknownField:       http.StatusBadRequest,
	ErrInvalidCompanyType: http.StatusBadRequest,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrInvalidFormat:      http.StatusBadRequest,
	ErrRouteNotFound:      http.StatusNotFound,
	ErrMethodNotAllowed:   http.StatusMethodNotAllowed,
	ErrInternalServer:     http.StatusInternalServerError,
	ErrSubmissionSink:     http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
