package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractKind string

const (
	ContractKindPermanent ContractKind = "permanent"
	ContractKindFixedTerm ContractKind = "fixed_term"
	ContractKindIntern    ContractKind = "intern"
)

// Contract is the canonical employment contract.
type Contract struct {
	ID         string
	EmployeeID string
	Kind       ContractKind
	StartDate  time.Time
	EndDate    *time.Time
	Salary     decimal.Decimal
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LegacyContract mirrors the pre-migration contract table. It is read-only
// input for reconciliation; nothing writes it.
type LegacyContract struct {
	ID           string
	EmployeeID   string
	ContractType string
	StartDate    time.Time
	EndDate      *time.Time
	Salary       decimal.Decimal
	IsActive     bool
}

// ActiveContract is the reconciled view of whichever contract governs the
// employee right now.
type ActiveContract struct {
	ContractID string
	Salary     decimal.Decimal
	EndDate    *time.Time
	Legacy     bool
}

// ResolveActiveContract picks the contract that governs the employee, with
// explicit precedence: the most recent active canonical contract wins, then
// the most recent active legacy contract. Returns false when neither exists.
func ResolveActiveContract(contracts []Contract, legacy []LegacyContract) (ActiveContract, bool) {
	var best *Contract
	for i := range contracts {
		c := &contracts[i]
		if !c.IsActive {
			continue
		}
		if best == nil || c.StartDate.After(best.StartDate) {
			best = c
		}
	}
	if best != nil {
		return ActiveContract{
			ContractID: best.ID,
			Salary:     best.Salary,
			EndDate:    best.EndDate,
		}, true
	}

	var bestLegacy *LegacyContract
	for i := range legacy {
		c := &legacy[i]
		if !c.IsActive {
			continue
		}
		if bestLegacy == nil || c.StartDate.After(bestLegacy.StartDate) {
			bestLegacy = c
		}
	}
	if bestLegacy != nil {
		return ActiveContract{
			ContractID: bestLegacy.ID,
			Salary:     bestLegacy.Salary,
			EndDate:    bestLegacy.EndDate,
			Legacy:     true,
		}, true
	}

	return ActiveContract{}, false
}
