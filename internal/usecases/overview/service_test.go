package overview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-overview-api/infrastructure/repository"
	repomocks "github.com/vfg2006/business-overview-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-overview-api/internal/domain"
	authmocks "github.com/vfg2006/business-overview-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/business-overview-api/internal/usecases/overview/mocks"
	"github.com/vfg2006/business-overview-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type serviceFixture struct {
	service  *Service
	repo     repository.FormSessionRepository
	auth     *authmocks.MockAuthenticator
	sink     *mocks.MockSubmissionSink
	notifier *mocks.MockNotifier
}

func newServiceFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)

	repo := repository.NewFormSessionRepository()
	auth := authmocks.NewMockAuthenticator(ctrl)
	sink := mocks.NewMockSubmissionSink(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	service := NewService(repo, auth, sink, notifier).(*Service)
	service.generateID = func() (string, error) { return "sessao1", nil }
	service.now = func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }

	return &serviceFixture{service: service, repo: repo, auth: auth, sink: sink, notifier: notifier}
}

func (f *serviceFixture) start(t *testing.T) string {
	t.Helper()
	f.auth.EXPECT().IssueToken("sessao1").Return("token", time.Now().Add(time.Hour), nil)
	resp, err := f.service.StartSession(context.Background())
	require.NoError(t, err)
	return resp.SessionID
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var overviewErr *OverviewError
	require.ErrorAs(t, err, &overviewErr)
	assert.Equal(t, code, overviewErr.Code)
}

func TestService_StartSession(t *testing.T) {
	f := newServiceFixture(t)
	expiresAt := time.Now().Add(time.Hour)
	f.auth.EXPECT().IssueToken("sessao1").Return("token-assinado", expiresAt, nil)

	resp, err := f.service.StartSession(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "sessao1", resp.SessionID)
	assert.Equal(t, "token-assinado", resp.Token)
	assert.Equal(t, expiresAt, resp.ExpiresAt)
	assert.Equal(t, NewSnapshot(), resp.Snapshot)
	assert.Equal(t, 1, f.repo.Count())
}

func TestService_StartSession_TokenFailureRemovesSession(t *testing.T) {
	f := newServiceFixture(t)
	f.auth.EXPECT().IssueToken("sessao1").Return("", time.Time{}, errors.New("sem segredo"))

	_, err := f.service.StartSession(context.Background())
	assert.ErrorIs(t, err, ErrIssueToken)
	assert.Equal(t, 0, f.repo.Count())
}

func TestService_StartSession_IDFailure(t *testing.T) {
	f := newServiceFixture(t)
	f.service.generateID = func() (string, error) { return "", errors.New("sem entropia") }

	_, err := f.service.StartSession(context.Background())
	assert.ErrorIs(t, err, ErrGenerateID)
	requireCode(t, err, apiErrors.ErrInternalServer)
}

func TestService_Mutations(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		run      func(s *Service, id string) (*domain.BusinessSnapshot, error)
		validate func(t *testing.T, snapshot *domain.BusinessSnapshot)
		code     string
	}{
		{
			name: "Campo monetário é formatado",
			run: func(s *Service, id string) (*domain.BusinessSnapshot, error) {
				return s.SetField(ctx, id, "lastMonthRevenue", "R$ 1.000,00")
			},
			validate: func(t *testing.T, snapshot *domain.BusinessSnapshot) {
				assert.Equal(t, "R$ 1.000,00", snapshot.LastMonthRevenue)
			},
		},
		{
			name: "Campo simples é gravado sem conversão",
			run: func(s *Service, id string) (*domain.BusinessSnapshot, error) {
				return s.SetField(ctx, id, "totalEmployees", "3 pessoas")
			},
			validate: func(t *testing.T, snapshot *domain.BusinessSnapshot) {
				assert.Equal(t, "3 pessoas", snapshot.TotalEmployees)
			},
		},
		{
			name: "Campo inexistente",
			run: func(s *Service, id string) (*domain.BusinessSnapshot, error) {
				return s.SetField(ctx, id, "faturamento", "1")
			},
			code: apiErrors.ErrUnknownField,
		},
		{
			name: "Tipo de empresa inválido",
			run: func(s *Service, id string) (*domain.BusinessSnapshot, error) {
				return s.SetField(ctx, id, "companyType", "LTDA")
			},
			code: apiErrors.ErrInvalidCompanyType,
		},
		{
			name: "Adicionar funcionário",
			run: func(s *Service, id string) (*domain.BusinessSnapshot, error) {
				return s.AppendEmployee(ctx, id)
			},
			validate: func(t *testing.T, snapshot *domain.BusinessSnapshot) {
				assert.Len(t, snapshot.Employees, 2)
			},
		},
		{
			name: "Remover funcionário com índice inválido não falha",
			run: func(s *Service, id string) (*domain.BusinessSnapshot, error) {
				return s.RemoveEmployee(ctx, id, 7)
			},
			validate: func(t *testing.T, snapshot *domain.BusinessSnapshot) {
				assert.Len(t, snapshot.Employees, 1)
			},
		},
		{
			name: "Salário do funcionário",
			run: func(s *Service, id string) (*domain.BusinessSnapshot, error) {
				return s.SetEmployeeField(ctx, id, 0, "salary", "250000")
			},
			validate: func(t *testing.T, snapshot *domain.BusinessSnapshot) {
				assert.Equal(t, "R$ 2.500,00", snapshot.Employees[0].Salary)
			},
		},
		{
			name: "Funcionário inexistente",
			run: func(s *Service, id string) (*domain.BusinessSnapshot, error) {
				return s.SetEmployeeField(ctx, id, 4, "name", "Ana")
			},
			code: apiErrors.ErrIndexOutOfRange,
		},
		{
			name: "Campo de funcionário inexistente",
			run: func(s *Service, id string) (*domain.BusinessSnapshot, error) {
				return s.SetEmployeeField(ctx, id, 0, "email", "a@b.com")
			},
			code: apiErrors.ErrUnknownField,
		},
		{
			name: "Adicionar e editar cliente",
			run: func(s *Service, id string) (*domain.BusinessSnapshot, error) {
				if _, err := s.AppendClient(ctx, id); err != nil {
					return nil, err
				}
				return s.SetClientField(ctx, id, 0, "monthlyFee", "1500")
			},
			validate: func(t *testing.T, snapshot *domain.BusinessSnapshot) {
				require.Len(t, snapshot.Clients, 1)
				assert.Equal(t, "1500", snapshot.Clients[0].MonthlyFee)
			},
		},
		{
			name: "Cliente inexistente",
			run: func(s *Service, id string) (*domain.BusinessSnapshot, error) {
				return s.SetClientField(ctx, id, 0, "name", "Acme")
			},
			code: apiErrors.ErrIndexOutOfRange,
		},
		{
			name: "Remover cliente inexistente não falha",
			run: func(s *Service, id string) (*domain.BusinessSnapshot, error) {
				return s.RemoveClient(ctx, id, -1)
			},
			validate: func(t *testing.T, snapshot *domain.BusinessSnapshot) {
				assert.Empty(t, snapshot.Clients)
			},
		},
		{
			name: "Sessão inexistente",
			run: func(s *Service, id string) (*domain.BusinessSnapshot, error) {
				return s.AppendEmployee(ctx, "outra")
			},
			code: apiErrors.ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			id := f.start(t)

			snapshot, err := tt.run(f.service, id)
			if tt.code != "" {
				requireCode(t, err, tt.code)
				return
			}
			require.NoError(t, err)
			tt.validate(t, snapshot)

			stored, err := f.service.GetSnapshot(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, snapshot, stored)
		})
	}
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	id := f.start(t)

	_, err := f.service.SetField(ctx, id, "servicePrice", "9990")
	require.NoError(t, err)

	var published string
	f.sink.EXPECT().Publish(ctx, id, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, payload string) error {
		published = payload
		return nil
	})
	f.notifier.EXPECT().Notify(ctx, id).Return("Dados prontos para envio. Veja no console.", nil)

	receipt, err := f.service.Submit(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, id, receipt.SessionID)
	assert.Equal(t, "Dados prontos para envio. Veja no console.", receipt.Message)
	assert.Equal(t, published, receipt.Payload)
	assert.Contains(t, receipt.Payload, `"servicePrice": "R$ 99,90"`)

	// a sessão continua editável e registra o envio
	session, err := f.repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Submissions)
	require.NotNil(t, session.LastSubmittedAt)

	_, err = f.service.SetField(ctx, id, "totalClients", "8")
	assert.NoError(t, err)
}

func TestService_Submit_SinkFailure(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	id := f.start(t)

	f.sink.EXPECT().Publish(ctx, id, gomock.Any()).Return(errors.New("log indisponível"))

	_, err := f.service.Submit(ctx, id)
	assert.ErrorIs(t, err, ErrSubmissionSink)
	requireCode(t, err, apiErrors.ErrSubmissionSink)
}

func TestService_Submit_SessionNotFound(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.Submit(context.Background(), "inexistente")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_Submit_RepositoryMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockFormSessionRepository(ctrl)
	sink := mocks.NewMockSubmissionSink(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	service := NewService(repo, authmocks.NewMockAuthenticator(ctrl), sink, notifier)

	ctx := context.Background()
	repo.EXPECT().Get("abc").Return(&domain.FormSession{ID: "abc", Snapshot: NewSnapshot()}, nil)
	sink.EXPECT().Publish(ctx, "abc", gomock.Any()).Return(nil)
	notifier.EXPECT().Notify(ctx, "abc").Return("ok", nil)
	// sessão expirou entre a leitura e a gravação: o envio continua válido
	repo.EXPECT().Update("abc", gomock.Any()).Return(nil, repository.ErrFormSessionNotFound)

	receipt, err := service.Submit(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "ok", receipt.Message)
}

func TestService_EndSession(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	id := f.start(t)

	require.NoError(t, f.service.EndSession(ctx, id))

	_, err := f.service.GetSnapshot(ctx, id)
	requireCode(t, err, apiErrors.ErrSessionNotFound)
	requireCode(t, f.service.EndSession(ctx, id), apiErrors.ErrSessionNotFound)
}
