package overview

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/business-overview-api/infrastructure/repository"
	"github.com/vfg2006/business-overview-api/internal/domain"
	"github.com/vfg2006/business-overview-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-overview-api/pkg/apiErrors"
	"github.com/vfg2006/business-overview-api/pkg/log"
	"github.com/vfg2006/business-overview-api/pkg/utils"
)

// OverviewService expõe as operações do formulário sobre sessões guardadas em memória
type OverviewService interface {
	StartSession(ctx context.Context) (*domain.CreateSessionResponse, error)
	GetSnapshot(ctx context.Context, sessionID string) (*domain.BusinessSnapshot, error)
	EndSession(ctx context.Context, sessionID string) error

	SetField(ctx context.Context, sessionID, field, value string) (*domain.BusinessSnapshot, error)
	AppendEmployee(ctx context.Context, sessionID string) (*domain.BusinessSnapshot, error)
	RemoveEmployee(ctx context.Context, sessionID string, index int) (*domain.BusinessSnapshot, error)
	SetEmployeeField(ctx context.Context, sessionID string, index int, field, value string) (*domain.BusinessSnapshot, error)
	AppendClient(ctx context.Context, sessionID string) (*domain.BusinessSnapshot, error)
	RemoveClient(ctx context.Context, sessionID string, index int) (*domain.BusinessSnapshot, error)
	SetClientField(ctx context.Context, sessionID string, index int, field, value string) (*domain.BusinessSnapshot, error)

	Submit(ctx context.Context, sessionID string) (*domain.SubmissionReceipt, error)
}

type Service struct {
	sessionRepo   repository.FormSessionRepository
	authenticator authenticating.Authenticator
	sink          SubmissionSink
	notifier      Notifier
	generateID    func() (string, error)
	now           func() time.Time
}

func NewService(
	sessionRepo repository.FormSessionRepository,
	authenticator authenticating.Authenticator,
	sink SubmissionSink,
	notifier Notifier,
) OverviewService {
	return &Service{
		sessionRepo:   sessionRepo,
		authenticator: authenticator,
		sink:          sink,
		notifier:      notifier,
		generateID:    utils.GenerateID,
		now:           time.Now,
	}
}

func (s *Service) StartSession(ctx context.Context) (*domain.CreateSessionResponse, error) {
	sessionID, err := s.generateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar ID da sessão")
		return nil, NewOverviewError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da sessão")
	}

	session := &domain.FormSession{
		ID:       sessionID,
		Snapshot: NewSnapshot(),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, NewOverviewErrorWithSession(err, apiErrors.ErrInternalServer, sessionID, "Falha ao criar sessão")
	}

	token, expiresAt, err := s.authenticator.IssueToken(sessionID)
	if err != nil {
		_ = s.sessionRepo.Delete(sessionID)
		return nil, NewOverviewErrorWithSession(ErrIssueToken, apiErrors.ErrInternalServer, sessionID, err.Error())
	}

	log.ForContext(ctx).WithField("session_id", sessionID).Info("Sessão de formulário criada")

	return &domain.CreateSessionResponse{
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
		Snapshot:  session.Snapshot,
	}, nil
}

func (s *Service) GetSnapshot(ctx context.Context, sessionID string) (*domain.BusinessSnapshot, error) {
	session, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return nil, s.translate(sessionID, err)
	}
	return &session.Snapshot, nil
}

func (s *Service) EndSession(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.Delete(sessionID); err != nil {
		return s.translate(sessionID, err)
	}
	log.ForContext(ctx).WithField("session_id", sessionID).Info("Sessão de formulário encerrada")
	return nil
}

// SetField decide pelo nome se o campo é monetário ou simples
func (s *Service) SetField(ctx context.Context, sessionID, field, value string) (*domain.BusinessSnapshot, error) {
	if currencyField, err := domain.ParseCurrencyField(field); err == nil {
		return s.mutate(sessionID, func(snapshot domain.BusinessSnapshot) (domain.BusinessSnapshot, error) {
			return SetCurrencyField(snapshot, currencyField, value)
		})
	}

	scalarField, err := domain.ParseScalarField(field)
	if err != nil {
		return nil, s.translate(sessionID, err)
	}

	return s.mutate(sessionID, func(snapshot domain.BusinessSnapshot) (domain.BusinessSnapshot, error) {
		return SetField(snapshot, scalarField, value)
	})
}

func (s *Service) AppendEmployee(ctx context.Context, sessionID string) (*domain.BusinessSnapshot, error) {
	return s.mutate(sessionID, func(snapshot domain.BusinessSnapshot) (domain.BusinessSnapshot, error) {
		return AppendEmployeeRow(snapshot), nil
	})
}

func (s *Service) RemoveEmployee(ctx context.Context, sessionID string, index int) (*domain.BusinessSnapshot, error) {
	return s.mutate(sessionID, func(snapshot domain.BusinessSnapshot) (domain.BusinessSnapshot, error) {
		return RemoveEmployeeRow(snapshot, index), nil
	})
}

func (s *Service) SetEmployeeField(ctx context.Context, sessionID string, index int, field, value string) (*domain.BusinessSnapshot, error) {
	employeeField, err := domain.ParseEmployeeField(field)
	if err != nil {
		return nil, s.translate(sessionID, err)
	}

	return s.mutate(sessionID, func(snapshot domain.BusinessSnapshot) (domain.BusinessSnapshot, error) {
		return SetEmployeeField(snapshot, index, employeeField, value)
	})
}

func (s *Service) AppendClient(ctx context.Context, sessionID string) (*domain.BusinessSnapshot, error) {
	return s.mutate(sessionID, func(snapshot domain.BusinessSnapshot) (domain.BusinessSnapshot, error) {
		return AppendClientRow(snapshot), nil
	})
}

func (s *Service) RemoveClient(ctx context.Context, sessionID string, index int) (*domain.BusinessSnapshot, error) {
	return s.mutate(sessionID, func(snapshot domain.BusinessSnapshot) (domain.BusinessSnapshot, error) {
		return RemoveClientRow(snapshot, index), nil
	})
}

func (s *Service) SetClientField(ctx context.Context, sessionID string, index int, field, value string) (*domain.BusinessSnapshot, error) {
	clientField, err := domain.ParseClientField(field)
	if err != nil {
		return nil, s.translate(sessionID, err)
	}

	return s.mutate(sessionID, func(snapshot domain.BusinessSnapshot) (domain.BusinessSnapshot, error) {
		return SetClientField(snapshot, index, clientField, value)
	})
}

// Submit serializa o snapshot atual e o entrega ao sink e ao notificador.
// Nenhum campo é validado e a sessão continua editável depois do envio.
func (s *Service) Submit(ctx context.Context, sessionID string) (*domain.SubmissionReceipt, error) {
	session, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return nil, s.translate(sessionID, err)
	}

	payload, err := Serialize(session.Snapshot)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("session_id", sessionID).Error("Erro ao serializar snapshot")
		return nil, NewOverviewErrorWithSession(ErrSerialize, apiErrors.ErrInternalServer, sessionID, err.Error())
	}

	if err := s.sink.Publish(ctx, sessionID, payload); err != nil {
		log.ForContext(ctx).WithError(err).WithField("session_id", sessionID).Error("Erro ao entregar envio")
		return nil, NewOverviewErrorWithSession(ErrSubmissionSink, apiErrors.ErrSubmissionSink, sessionID, err.Error())
	}

	message, err := s.notifier.Notify(ctx, sessionID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("session_id", sessionID).Error("Erro ao gerar confirmação de envio")
		return nil, NewOverviewErrorWithSession(ErrSubmissionSink, apiErrors.ErrSubmissionSink, sessionID, err.Error())
	}

	submittedAt := s.now()
	_, err = s.sessionRepo.Update(sessionID, func(current *domain.FormSession) error {
		current.Submissions++
		current.LastSubmittedAt = &submittedAt
		return nil
	})
	if err != nil {
		// a sessão pode ter expirado entre a leitura e a gravação; o envio já foi entregue
		log.ForContext(ctx).WithError(err).WithField("session_id", sessionID).Warn("Não foi possível registrar o envio na sessão")
	}

	return &domain.SubmissionReceipt{
		SessionID:   sessionID,
		SubmittedAt: submittedAt,
		Message:     message,
		Payload:     payload,
	}, nil
}

func (s *Service) mutate(
	sessionID string,
	apply func(domain.BusinessSnapshot) (domain.BusinessSnapshot, error),
) (*domain.BusinessSnapshot, error) {
	updated, err := s.sessionRepo.Update(sessionID, func(session *domain.FormSession) error {
		next, err := apply(session.Snapshot)
		if err != nil {
			return err
		}
		session.Snapshot = next
		return nil
	})
	if err != nil {
		return nil, s.translate(sessionID, err)
	}

	return &updated.Snapshot, nil
}

// translate converte erros de domínio e repositório em OverviewError com código de API
func (s *Service) translate(sessionID string, err error) error {
	var overviewErr *OverviewError
	switch {
	case errors.As(err, &overviewErr):
		return err
	case errors.Is(err, repository.ErrFormSessionNotFound):
		return NewOverviewErrorWithSession(ErrSessionNotFound, apiErrors.ErrSessionNotFound, sessionID, "Sessão não encontrada ou expirada")
	case errors.Is(err, ErrIndexOutOfRange):
		return NewOverviewErrorWithSession(err, apiErrors.ErrIndexOutOfRange, sessionID, "Linha não encontrada")
	case errors.Is(err, domain.ErrUnknownField):
		return NewOverviewErrorWithSession(err, apiErrors.ErrUnknownField, sessionID, "Campo desconhecido")
	case errors.Is(err, domain.ErrInvalidCompanyType):
		return NewOverviewErrorWithSession(err, apiErrors.ErrInvalidCompanyType, sessionID, "Tipo de empresa deve ser MEI, Microempresa ou Pequena Empresa")
	default:
		return NewOverviewErrorWithSession(err, apiErrors.ErrInternalServer, sessionID, "")
	}
}
