package entity

// Employee funcionario de la tienda.
type Employee struct {
	ID              int64
	UserID          int64
	FullName        string
	CEP             string
	Street          string
	Number          string
	City            string
	State           string
	Country         string
	ContractStart   string  // YYYY-MM-DD
	ContractEnd     *string // nil o "" = contrato vigente
	Role            string  // cargo
	RoleDescription string
	Notes           *string
	IsManager       bool
}

// Active indica si el contrato sigue vigente.
func (e *Employee) Active() bool {
	return e.ContractEnd == nil || *e.ContractEnd == ""
}
