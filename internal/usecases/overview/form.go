package overview

import (
	"github.com/vfg2006/business-overview-api/internal/domain"
	"github.com/vfg2006/business-overview-api/pkg/utils"
)

// As funções deste arquivo não guardam estado: recebem o snapshot atual e
// devolvem o próximo. O chamador é quem substitui a referência guardada.
// O snapshot recebido nunca é alterado.

// NewSnapshot cria o snapshot inicial de uma sessão: uma linha de funcionário em branco e nenhum cliente
func NewSnapshot() domain.BusinessSnapshot {
	return domain.BusinessSnapshot{
		CompanyType: domain.CompanyTypeMEI,
		Employees:   []domain.EmployeeRow{{}},
		Clients:     []domain.ClientRow{},
	}
}

// SetField grava o valor sem conversão. Só companyType é validado, contra o enum.
func SetField(s domain.BusinessSnapshot, field domain.ScalarField, raw string) (domain.BusinessSnapshot, error) {
	next := s.Clone()

	switch field {
	case domain.FieldTotalClients:
		next.TotalClients = raw
	case domain.FieldActiveClients:
		next.ActiveClients = raw
	case domain.FieldLastMonthLeads:
		next.LastMonthLeads = raw
	case domain.FieldTotalEmployees:
		next.TotalEmployees = raw
	case domain.FieldCompanyType:
		companyType, err := domain.ParseCompanyType(raw)
		if err != nil {
			return s, err
		}
		next.CompanyType = companyType
	default:
		return s, domain.ErrUnknownField
	}

	return next, nil
}

// SetCurrencyField grava o valor formatado em reais. Apagar todos os dígitos grava "R$ 0,00", não vazio.
func SetCurrencyField(s domain.BusinessSnapshot, field domain.CurrencyField, raw string) (domain.BusinessSnapshot, error) {
	next := s.Clone()
	formatted := utils.FormatBRL(raw)

	switch field {
	case domain.FieldLastMonthRevenue:
		next.LastMonthRevenue = formatted
	case domain.FieldServicePrice:
		next.ServicePrice = formatted
	default:
		return s, domain.ErrUnknownField
	}

	return next, nil
}

func AppendEmployeeRow(s domain.BusinessSnapshot) domain.BusinessSnapshot {
	next := s.Clone()
	next.Employees = append(next.Employees, domain.EmployeeRow{})
	return next
}

// RemoveEmployeeRow filtra a linha da posição index. Índice inexistente não é erro:
// um clique duplicado pode chegar com um índice que já saiu da lista.
func RemoveEmployeeRow(s domain.BusinessSnapshot, index int) domain.BusinessSnapshot {
	next := s.Clone()
	next.Employees = removeAt(next.Employees, index)
	return next
}

func SetEmployeeField(s domain.BusinessSnapshot, index int, field domain.EmployeeField, raw string) (domain.BusinessSnapshot, error) {
	if index < 0 || index >= len(s.Employees) {
		return s, indexOutOfRange("employees", index, len(s.Employees))
	}

	next := s.Clone()
	row := &next.Employees[index]

	switch field {
	case domain.EmployeeFieldName:
		row.Name = raw
	case domain.EmployeeFieldSalary:
		row.Salary = utils.FormatBRL(raw)
	case domain.EmployeeFieldRole:
		row.Role = raw
	default:
		return s, domain.ErrUnknownField
	}

	return next, nil
}

func AppendClientRow(s domain.BusinessSnapshot) domain.BusinessSnapshot {
	next := s.Clone()
	next.Clients = append(next.Clients, domain.NewClientRow())
	return next
}

func RemoveClientRow(s domain.BusinessSnapshot, index int) domain.BusinessSnapshot {
	next := s.Clone()
	next.Clients = removeAt(next.Clients, index)
	return next
}

// SetClientField grava o valor exatamente como digitado, inclusive em leads, cpa,
// roas, conversion, monthlyFee e duration. Diferente do salário, nada aqui é formatado.
func SetClientField(s domain.BusinessSnapshot, index int, field domain.ClientField, raw string) (domain.BusinessSnapshot, error) {
	if index < 0 || index >= len(s.Clients) {
		return s, indexOutOfRange("clients", index, len(s.Clients))
	}

	next := s.Clone()
	row := &next.Clients[index]

	switch field {
	case domain.ClientFieldName:
		row.Name = raw
	case domain.ClientFieldType:
		companyType, err := domain.ParseCompanyType(raw)
		if err != nil {
			return s, err
		}
		row.Type = companyType
	case domain.ClientFieldCompany:
		row.Company = raw
	case domain.ClientFieldEmail:
		row.Email = raw
	case domain.ClientFieldLeads:
		row.Leads = raw
	case domain.ClientFieldCPA:
		row.CPA = raw
	case domain.ClientFieldROAS:
		row.ROAS = raw
	case domain.ClientFieldConversion:
		row.Conversion = raw
	case domain.ClientFieldMonthlyFee:
		row.MonthlyFee = raw
	case domain.ClientFieldChannel:
		row.Channel = raw
	case domain.ClientFieldDescription:
		row.Description = raw
	case domain.ClientFieldDuration:
		row.Duration = raw
	default:
		return s, domain.ErrUnknownField
	}

	return next, nil
}

// Serialize gera o payload de envio com os campos na ordem de declaração
func Serialize(s domain.BusinessSnapshot) (string, error) {
	return utils.PrettyJson(s)
}

func removeAt[T any](rows []T, index int) []T {
	out := make([]T, 0, len(rows))
	for i, row := range rows {
		if i != index {
			out = append(out, row)
		}
	}
	return out
}
