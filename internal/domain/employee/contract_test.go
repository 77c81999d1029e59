package employee

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveActiveContract_PrefersCanonical(t *testing.T) {
	contracts := []Contract{
		{ID: "c1", IsActive: true, StartDate: date(2022, 1, 1), Salary: decimal.NewFromInt(2500)},
	}
	legacy := []LegacyContract{
		{ID: "l1", IsActive: true, StartDate: date(2023, 6, 1), Salary: decimal.NewFromInt(9000)},
	}

	got, ok := ResolveActiveContract(contracts, legacy)
	require.True(t, ok)
	assert.Equal(t, "c1", got.ContractID)
	assert.False(t, got.Legacy)
	assert.True(t, got.Salary.Equal(decimal.NewFromInt(2500)))
}

func TestResolveActiveContract_MostRecentActiveWins(t *testing.T) {
	contracts := []Contract{
		{ID: "old", IsActive: true, StartDate: date(2020, 1, 1), Salary: decimal.NewFromInt(1800)},
		{ID: "new", IsActive: true, StartDate: date(2024, 3, 1), Salary: decimal.NewFromInt(3000)},
		{ID: "terminated", IsActive: false, StartDate: date(2025, 1, 1), Salary: decimal.NewFromInt(5000)},
	}

	got, ok := ResolveActiveContract(contracts, nil)
	require.True(t, ok)
	assert.Equal(t, "new", got.ContractID)
}

func TestResolveActiveContract_FallsBackToLegacy(t *testing.T) {
	contracts := []Contract{
		{ID: "inactive", IsActive: false, StartDate: date(2021, 1, 1)},
	}
	legacy := []LegacyContract{
		{ID: "l-old", IsActive: true, StartDate: date(2019, 1, 1), Salary: decimal.NewFromInt(1500)},
		{ID: "l-new", IsActive: true, StartDate: date(2021, 7, 1), Salary: decimal.NewFromInt(1900)},
	}

	got, ok := ResolveActiveContract(contracts, legacy)
	require.True(t, ok)
	assert.Equal(t, "l-new", got.ContractID)
	assert.True(t, got.Legacy)
}

func TestResolveActiveContract_NoneActive(t *testing.T) {
	legacy := []LegacyContract{{ID: "l1", IsActive: false, StartDate: date(2020, 1, 1)}}

	_, ok := ResolveActiveContract(nil, legacy)
	assert.False(t, ok)
}
