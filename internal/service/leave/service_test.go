package leave

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andes-hr/hr-backend-go/internal/domain/leave"
	"github.com/andes-hr/hr-backend-go/internal/pkg/database"
	"github.com/andes-hr/hr-backend-go/internal/repository/postgresql"
)

var testLeaveDB *database.DB

func leaveTestInit(t *testing.T) {
	if testLeaveDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testLeaveDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
}

func truncateLeaveTables(t *testing.T, ctx context.Context) {
	tables := []string{"leave_requests", "leave_balances", "users", "employees", "companies"}

	for _, table := range tables {
		_, err := testLeaveDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			// Some tables might not exist, skip
			continue
		}
	}
}

func createLeaveTestCompany(t *testing.T, ctx context.Context) string {
	var companyID string
	err := testLeaveDB.QueryRow(ctx, `
		INSERT INTO companies (id, name, created_at, updated_at)
		VALUES (uuidv7(), 'Test Company', NOW(), NOW())
		RETURNING id
	`).Scan(&companyID)
	require.NoError(t, err)
	return companyID
}

func createLeaveTestEmployee(t *testing.T, ctx context.Context, companyID string) string {
	var employeeID string
	document := fmt.Sprintf("DOC-%d", time.Now().UnixNano())
	err := testLeaveDB.QueryRow(ctx, `
		INSERT INTO employees (id, company_id, document_number, first_name, last_name, status, hire_date, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, 'Ana', 'Quispe', 'active', '2024-01-15', NOW(), NOW())
		RETURNING id
	`, companyID, document).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func createLeaveTestReviewer(t *testing.T, ctx context.Context, companyID string) string {
	var userID string
	username := fmt.Sprintf("reviewer-%d", time.Now().UnixNano())
	err := testLeaveDB.QueryRow(ctx, `
		INSERT INTO users (id, company_id, username, role, must_change_password, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, 'manager', false, NOW(), NOW())
		RETURNING id
	`, companyID, username).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func newTestLeaveService() *LeaveServiceImpl {
	return NewLeaveService(
		testLeaveDB,
		postgresql.NewLeaveRequestRepository(testLeaveDB),
		postgresql.NewLeaveBalanceRepository(testLeaveDB),
		postgresql.NewEmployeeRepository(testLeaveDB),
	)
}

func TestLeaveService_ApproveDeductsBalance(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	companyID := createLeaveTestCompany(t, ctx)
	employeeID := createLeaveTestEmployee(t, ctx, companyID)
	reviewerID := createLeaveTestReviewer(t, ctx, companyID)

	svc := newTestLeaveService()

	_, err := svc.GrantDays(ctx, employeeID, companyID, leave.GrantDaysRequest{
		Period: 2026,
		Days:   decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	created, err := svc.CreateRequest(ctx, employeeID, companyID, leave.CreateRequestRequest{
		StartDate: "2026-03-02",
		EndDate:   "2026-03-04",
		Reason:    "family trip",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "3", created.Days)

	approved, err := svc.Approve(ctx, created.ID, companyID, reviewerID)
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	balances, err := svc.Balances(ctx, employeeID, companyID)
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, 2026, balances[0].Period)
	assert.Equal(t, "7", balances[0].AvailableDays)
}

func TestLeaveService_ApproveTwice(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	companyID := createLeaveTestCompany(t, ctx)
	employeeID := createLeaveTestEmployee(t, ctx, companyID)
	reviewerID := createLeaveTestReviewer(t, ctx, companyID)

	svc := newTestLeaveService()

	_, err := svc.GrantDays(ctx, employeeID, companyID, leave.GrantDaysRequest{
		Period: 2026,
		Days:   decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	created, err := svc.CreateRequest(ctx, employeeID, companyID, leave.CreateRequestRequest{
		StartDate: "2026-04-06",
		EndDate:   "2026-04-07",
		Reason:    "moving house",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID, companyID, reviewerID)
	require.NoError(t, err)

	// Second approval must not spend the days again
	_, err = svc.Approve(ctx, created.ID, companyID, reviewerID)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)

	balances, err := svc.Balances(ctx, employeeID, companyID)
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, "8", balances[0].AvailableDays)
}

func TestLeaveService_ConcurrentApprovalsSpendOnce(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	companyID := createLeaveTestCompany(t, ctx)
	employeeID := createLeaveTestEmployee(t, ctx, companyID)
	reviewerID := createLeaveTestReviewer(t, ctx, companyID)

	svc := newTestLeaveService()

	_, err := svc.GrantDays(ctx, employeeID, companyID, leave.GrantDaysRequest{
		Period: 2026,
		Days:   decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	created, err := svc.CreateRequest(ctx, employeeID, companyID, leave.CreateRequestRequest{
		StartDate: "2026-09-07",
		EndDate:   "2026-09-09",
		Reason:    "conference",
	})
	require.NoError(t, err)

	// Two reviewers race on the same request. The request-row lock forces
	// one to wait and fail the pending guard against the committed status.
	results := make([]error, 2)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Approve(ctx, created.ID, companyID, reviewerID)
		}(i)
	}
	wg.Wait()

	var approvals, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			approvals++
		case errors.Is(err, leave.ErrAlreadyProcessed):
			conflicts++
		default:
			t.Fatalf("unexpected approval error: %v", err)
		}
	}
	assert.Equal(t, 1, approvals)
	assert.Equal(t, 1, conflicts)

	balances, err := svc.Balances(ctx, employeeID, companyID)
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, "7", balances[0].AvailableDays)
}

func TestLeaveService_ApproveInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	companyID := createLeaveTestCompany(t, ctx)
	employeeID := createLeaveTestEmployee(t, ctx, companyID)
	reviewerID := createLeaveTestReviewer(t, ctx, companyID)

	svc := newTestLeaveService()

	_, err := svc.GrantDays(ctx, employeeID, companyID, leave.GrantDaysRequest{
		Period: 2026,
		Days:   decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	created, err := svc.CreateRequest(ctx, employeeID, companyID, leave.CreateRequestRequest{
		StartDate: "2026-05-04",
		EndDate:   "2026-05-08",
		Reason:    "long holiday",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID, companyID, reviewerID)
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)

	// Request stays pending and the balance is untouched
	got, err := svc.Get(ctx, created.ID, companyID)
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)

	balances, err := svc.Balances(ctx, employeeID, companyID)
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, "1", balances[0].AvailableDays)
}

func TestLeaveService_RejectKeepsBalance(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	companyID := createLeaveTestCompany(t, ctx)
	employeeID := createLeaveTestEmployee(t, ctx, companyID)
	reviewerID := createLeaveTestReviewer(t, ctx, companyID)

	svc := newTestLeaveService()

	_, err := svc.GrantDays(ctx, employeeID, companyID, leave.GrantDaysRequest{
		Period: 2026,
		Days:   decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	created, err := svc.CreateRequest(ctx, employeeID, companyID, leave.CreateRequestRequest{
		StartDate: "2026-06-01",
		EndDate:   "2026-06-02",
		Reason:    "appointment",
	})
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, created.ID, companyID, reviewerID, leave.RejectRequestRequest{
		Reason: "short staffed that week",
	})
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "short staffed that week", *rejected.RejectionReason)

	balances, err := svc.Balances(ctx, employeeID, companyID)
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, "10", balances[0].AvailableDays)
}

func TestLeaveService_CreateRequest_InvalidRange(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	companyID := createLeaveTestCompany(t, ctx)
	employeeID := createLeaveTestEmployee(t, ctx, companyID)

	svc := newTestLeaveService()

	_, err := svc.CreateRequest(ctx, employeeID, companyID, leave.CreateRequestRequest{
		StartDate: "2026-07-10",
		EndDate:   "2026-07-08",
		Reason:    "reversed dates",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidRange)
}
