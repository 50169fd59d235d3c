package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField       = errors.New("unknown field")
	ErrInvalidCompanyType = errors.New("invalid company type")
)

type CompanyType string

const (
	CompanyTypeMEI            CompanyType = "MEI"
	CompanyTypeMicroempresa   CompanyType = "Microempresa"
	CompanyTypePequenaEmpresa CompanyType = "Pequena Empresa"
)

// CompanyTypes lista os tipos de empresa aceitos, na ordem do seletor do formulário
var CompanyTypes = []CompanyType{
	CompanyTypeMEI,
	CompanyTypeMicroempresa,
	CompanyTypePequenaEmpresa,
}

func (c CompanyType) IsValid() bool {
	for _, t := range CompanyTypes {
		if c == t {
			return true
		}
	}
	return false
}

func ParseCompanyType(value string) (CompanyType, error) {
	companyType := CompanyType(value)
	if !companyType.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCompanyType, value)
	}
	return companyType, nil
}

// ScalarField identifica os campos simples do snapshot que não são monetários
type ScalarField string

const (
	FieldTotalClients   ScalarField = "totalClients"
	FieldActiveClients  ScalarField = "activeClients"
	FieldLastMonthLeads ScalarField = "lastMonthLeads"
	FieldTotalEmployees ScalarField = "totalEmployees"
	FieldCompanyType    ScalarField = "companyType"
)

func ParseScalarField(name string) (ScalarField, error) {
	switch f := ScalarField(name); f {
	case FieldTotalClients, FieldActiveClients, FieldLastMonthLeads, FieldTotalEmployees, FieldCompanyType:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// CurrencyField identifica os campos monetários do snapshot
type CurrencyField string

const (
	FieldLastMonthRevenue CurrencyField = "lastMonthRevenue"
	FieldServicePrice     CurrencyField = "servicePrice"
)

func ParseCurrencyField(name string) (CurrencyField, error) {
	switch f := CurrencyField(name); f {
	case FieldLastMonthRevenue, FieldServicePrice:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

type EmployeeField string

const (
	EmployeeFieldName   EmployeeField = "name"
	EmployeeFieldSalary EmployeeField = "salary"
	EmployeeFieldRole   EmployeeField = "role"
)

func ParseEmployeeField(name string) (EmployeeField, error) {
	switch f := EmployeeField(name); f {
	case EmployeeFieldName, EmployeeFieldSalary, EmployeeFieldRole:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

type ClientField string

const (
	ClientFieldName        ClientField = "name"
	ClientFieldType        ClientField = "type"
	ClientFieldCompany     ClientField = "company"
	ClientFieldEmail       ClientField = "email"
	ClientFieldLeads       ClientField = "leads"
	ClientFieldCPA         ClientField = "cpa"
	ClientFieldROAS        ClientField = "roas"
	ClientFieldConversion  ClientField = "conversion"
	ClientFieldMonthlyFee  ClientField = "monthlyFee"
	ClientFieldChannel     ClientField = "channel"
	ClientFieldDescription ClientField = "description"
	ClientFieldDuration    ClientField = "duration"
)

func ParseClientField(name string) (ClientField, error) {
	switch f := ClientField(name); f {
	case ClientFieldName, ClientFieldType, ClientFieldCompany, ClientFieldEmail,
		ClientFieldLeads, ClientFieldCPA, ClientFieldROAS, ClientFieldConversion,
		ClientFieldMonthlyFee, ClientFieldChannel, ClientFieldDescription, ClientFieldDuration:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

type EmployeeRow struct {
	Name   string `json:"name"`
	Salary string `json:"salary"`
	Role   string `json:"role"`
}

// ClientRow guarda os dados de um cliente exatamente como digitados.
// Nenhum campo numérico é convertido ou formatado.
type ClientRow struct {
	Name        string      `json:"name"`
	Type        CompanyType `json:"type"`
	Company     string      `json:"company"`
	Email       string      `json:"email"`
	Leads       string      `json:"leads"`
	CPA         string      `json:"cpa"`
	ROAS        string      `json:"roas"`
	Conversion  string      `json:"conversion"`
	MonthlyFee  string      `json:"monthlyFee"`
	Channel     string      `json:"channel"`
	Description string      `json:"description"`
	Duration    string      `json:"duration"`
}

func NewClientRow() ClientRow {
	return ClientRow{Type: CompanyTypeMEI}
}

type BusinessSnapshot struct {
	LastMonthRevenue string        `json:"lastMonthRevenue"`
	TotalClients     string        `json:"totalClients"`
	ActiveClients    string        `json:"activeClients"`
	LastMonthLeads   string        `json:"lastMonthLeads"`
	TotalEmployees   string        `json:"totalEmployees"`
	CompanyType      CompanyType   `json:"companyType"`
	ServicePrice     string        `json:"servicePrice"`
	Employees        []EmployeeRow `json:"employees"`
	Clients          []ClientRow   `json:"clients"`
}

// Clone retorna uma cópia que não compartilha as listas de linhas com o original
func (s BusinessSnapshot) Clone() BusinessSnapshot {
	out := s
	out.Employees = append(make([]EmployeeRow, 0, len(s.Employees)), s.Employees...)
	out.Clients = append(make([]ClientRow, 0, len(s.Clients)), s.Clients...)
	return out
}
