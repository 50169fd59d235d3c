package overview

import (
	"errors"
	"fmt"

	"github.com/vfg2006/business-overview-api/internal/domain"
)

// Erros específicos do formulário de visão geral do negócio
var (
	ErrIndexOutOfRange    = errors.New("row index out of range")
	ErrUnknownField       = domain.ErrUnknownField
	ErrInvalidCompanyType = domain.ErrInvalidCompanyType

	ErrSessionNotFound = errors.New("form session not found")
	ErrSubmissionSink  = errors.New("error delivering submission")
	ErrSerialize       = errors.New("error serializing snapshot")
	ErrGenerateID      = errors.New("error generating session ID")
	ErrIssueToken      = errors.New("error issuing session token")
)

// OverviewError é um erro com contexto adicional para o formulário
type OverviewError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	SessionID string
	Details   string
}

func (e *OverviewError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OverviewError) Unwrap() error {
	return e.Err
}

func NewOverviewError(err error, code string, details string) *OverviewError {
	return &OverviewError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewOverviewErrorWithSession(err error, code string, sessionID string, details string) *OverviewError {
	return &OverviewError{
		Err:       err,
		Code:      code,
		SessionID: sessionID,
		Details:   details,
	}
}

func indexOutOfRange(rows string, index, length int) error {
	return fmt.Errorf("%w: %s[%d] (len %d)", ErrIndexOutOfRange, rows, index, length)
}
