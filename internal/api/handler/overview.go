package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/business-overview-api/internal/domain"
	"github.com/vfg2006/business-overview-api/internal/usecases/overview"
	"github.com/vfg2006/business-overview-api/pkg/apiErrors"
	"github.com/vfg2006/business-overview-api/pkg/log"
)

// FormOptions lista as opções dos seletores do formulário
type FormOptions struct {
	CompanyTypes []domain.CompanyType `json:"companyTypes"`
}

func GetOptions() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, FormOptions{CompanyTypes: domain.CompanyTypes})
	})
}

func CreateSession(service overview.OverviewService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := service.StartSession(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	})
}

func GetSnapshot(service overview.OverviewService) http.Handler {
	return withSession(func(w http.ResponseWriter, r *http.Request, sessionID string) {
		snapshot, err := service.GetSnapshot(r.Context(), sessionID)
		respondSnapshot(w, r, snapshot, err)
	})
}

func EndSession(service overview.OverviewService) http.Handler {
	return withSession(func(w http.ResponseWriter, r *http.Request, sessionID string) {
		if err := service.EndSession(r.Context(), sessionID); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// SetField altera um campo simples ou monetário do snapshot
func SetField(service overview.OverviewService) http.Handler {
	return withSession(func(w http.ResponseWriter, r *http.Request, sessionID string) {
		value, err := decodeFieldValue(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		field := httprouter.ParamsFromContext(r.Context()).ByName("field")
		snapshot, err := service.SetField(r.Context(), sessionID, field, value)
		respondSnapshot(w, r, snapshot, err)
	})
}

func AppendEmployee(service overview.OverviewService) http.Handler {
	return withSession(func(w http.ResponseWriter, r *http.Request, sessionID string) {
		snapshot, err := service.AppendEmployee(r.Context(), sessionID)
		respondSnapshot(w, r, snapshot, err)
	})
}

func RemoveEmployee(service overview.OverviewService) http.Handler {
	return withIndex(func(w http.ResponseWriter, r *http.Request, sessionID string, index int) {
		snapshot, err := service.RemoveEmployee(r.Context(), sessionID, index)
		respondSnapshot(w, r, snapshot, err)
	})
}

func SetEmployeeField(service overview.OverviewService) http.Handler {
	return withIndex(func(w http.ResponseWriter, r *http.Request, sessionID string, index int) {
		value, err := decodeFieldValue(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		field := httprouter.ParamsFromContext(r.Context()).ByName("field")
		snapshot, err := service.SetEmployeeField(r.Context(), sessionID, index, field, value)
		respondSnapshot(w, r, snapshot, err)
	})
}

func AppendClient(service overview.OverviewService) http.Handler {
	return withSession(func(w http.ResponseWriter, r *http.Request, sessionID string) {
		snapshot, err := service.AppendClient(r.Context(), sessionID)
		respondSnapshot(w, r, snapshot, err)
	})
}

func RemoveClient(service overview.OverviewService) http.Handler {
	return withIndex(func(w http.ResponseWriter, r *http.Request, sessionID string, index int) {
		snapshot, err := service.RemoveClient(r.Context(), sessionID, index)
		respondSnapshot(w, r, snapshot, err)
	})
}

func SetClientField(service overview.OverviewService) http.Handler {
	return withIndex(func(w http.ResponseWriter, r *http.Request, sessionID string, index int) {
		value, err := decodeFieldValue(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		field := httprouter.ParamsFromContext(r.Context()).ByName("field")
		snapshot, err := service.SetClientField(r.Context(), sessionID, index, field, value)
		respondSnapshot(w, r, snapshot, err)
	})
}

// Submit entrega o snapshot atual e devolve o recibo com a mensagem de confirmação
func Submit(service overview.OverviewService) http.Handler {
	return withSession(func(w http.ResponseWriter, r *http.Request, sessionID string) {
		receipt, err := service.Submit(r.Context(), sessionID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, receipt)
	})
}

func withSession(next func(w http.ResponseWriter, r *http.Request, sessionID string)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := authorizedSession(w, r)
		if !ok {
			return
		}
		next(w, r, sessionID)
	})
}

func withIndex(next func(w http.ResponseWriter, r *http.Request, sessionID string, index int)) http.Handler {
	return withSession(func(w http.ResponseWriter, r *http.Request, sessionID string) {
		index, err := parseIndex(httprouter.ParamsFromContext(r.Context()))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		next(w, r, sessionID, index)
	})
}

func respondSnapshot(w http.ResponseWriter, r *http.Request, snapshot *domain.BusinessSnapshot, err error) {
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var overviewErr *overview.OverviewError
	if errors.As(err, &overviewErr) {
		logger := log.ForContext(r.Context()).WithError(err).WithField("session_id", overviewErr.SessionID)
		if apiErrors.StatusFor(overviewErr.Code) >= http.StatusInternalServerError {
			logger.Error("Erro no formulário")
		} else {
			logger.Warn("Requisição do formulário recusada")
		}

		apiErrors.WriteError(w, overviewErr.Code, overviewErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado no formulário")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}
