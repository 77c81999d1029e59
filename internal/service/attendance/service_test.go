package attendance

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andes-hr/hr-backend-go/internal/domain/attendance"
	"github.com/andes-hr/hr-backend-go/internal/pkg/database"
	"github.com/andes-hr/hr-backend-go/internal/pkg/geo"
	"github.com/andes-hr/hr-backend-go/internal/repository/postgresql"
)

var testAttendanceDB *database.DB

func attendanceTestInit(t *testing.T) {
	if testAttendanceDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testAttendanceDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
}

func truncateAttendanceTables(t *testing.T, ctx context.Context) {
	tables := []string{"attendance_marks", "attendance_rules", "geofences", "employees", "branches", "companies"}

	for _, table := range tables {
		_, err := testAttendanceDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			// Some tables might not exist, skip
			continue
		}
	}
}

func createAttendanceTestCompany(t *testing.T, ctx context.Context) string {
	var companyID string
	err := testAttendanceDB.QueryRow(ctx, `
		INSERT INTO companies (id, name, created_at, updated_at)
		VALUES (uuidv7(), 'Test Company', NOW(), NOW())
		RETURNING id
	`).Scan(&companyID)
	require.NoError(t, err)
	return companyID
}

func createAttendanceTestEmployee(t *testing.T, ctx context.Context, companyID string) string {
	var employeeID string
	document := fmt.Sprintf("DOC-%d", time.Now().UnixNano())
	err := testAttendanceDB.QueryRow(ctx, `
		INSERT INTO employees (id, company_id, document_number, first_name, last_name, status, hire_date, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, 'Luis', 'Mendoza', 'active', '2024-01-15', NOW(), NOW())
		RETURNING id
	`, companyID, document).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

// newTestAttendanceService pins the clock so late decisions are deterministic.
func newTestAttendanceService(at time.Time) *AttendanceServiceImpl {
	svc := NewAttendanceService(
		testAttendanceDB,
		postgresql.NewMarkRepository(testAttendanceDB),
		postgresql.NewGeofenceRepository(testAttendanceDB),
		postgresql.NewRuleRepository(testAttendanceDB),
		postgresql.NewBranchRepository(testAttendanceDB),
	)
	svc.now = func() time.Time { return at }
	return svc
}

func TestAttendanceService_MarkOnTime(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	companyID := createAttendanceTestCompany(t, ctx)
	employeeID := createAttendanceTestEmployee(t, ctx, companyID)

	// 08:30 UTC, before the default 09:00 cutoff
	svc := newTestAttendanceService(time.Date(2026, 2, 2, 8, 30, 0, 0, time.UTC))

	mark, err := svc.Mark(ctx, employeeID, companyID, attendance.MarkRequest{Kind: "check_in"})
	require.NoError(t, err)
	assert.Equal(t, "check_in", mark.Kind)
	assert.False(t, mark.IsLate)
	assert.Equal(t, 0, mark.LateMinutes)
}

func TestAttendanceService_MarkLate(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	companyID := createAttendanceTestCompany(t, ctx)
	employeeID := createAttendanceTestEmployee(t, ctx, companyID)

	svc := newTestAttendanceService(time.Date(2026, 2, 2, 9, 20, 30, 0, time.UTC))

	mark, err := svc.Mark(ctx, employeeID, companyID, attendance.MarkRequest{Kind: "check_in"})
	require.NoError(t, err)
	assert.True(t, mark.IsLate)
	assert.Equal(t, 20, mark.LateMinutes)
}

func TestAttendanceService_DuplicateCheckIn(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	companyID := createAttendanceTestCompany(t, ctx)
	employeeID := createAttendanceTestEmployee(t, ctx, companyID)

	svc := newTestAttendanceService(time.Date(2026, 2, 2, 8, 30, 0, 0, time.UTC))

	_, err := svc.Mark(ctx, employeeID, companyID, attendance.MarkRequest{Kind: "check_in"})
	require.NoError(t, err)

	_, err = svc.Mark(ctx, employeeID, companyID, attendance.MarkRequest{Kind: "check_in"})
	assert.ErrorIs(t, err, attendance.ErrDuplicateCheckIn)
}

func TestAttendanceService_SimultaneousCheckInsRecordOne(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	companyID := createAttendanceTestCompany(t, ctx)
	employeeID := createAttendanceTestEmployee(t, ctx, companyID)

	svc := newTestAttendanceService(time.Date(2026, 2, 2, 8, 30, 0, 0, time.UTC))

	// Both calls enter the transaction at once; the employee-day lock makes
	// the second one see the first one's row.
	results := make([]error, 2)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Mark(ctx, employeeID, companyID, attendance.MarkRequest{Kind: "check_in"})
		}(i)
	}
	wg.Wait()

	var recorded, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			recorded++
		case errors.Is(err, attendance.ErrDuplicateCheckIn):
			rejected++
		default:
			t.Fatalf("unexpected mark error: %v", err)
		}
	}
	assert.Equal(t, 1, recorded)
	assert.Equal(t, 1, rejected)

	marks, err := svc.ListMarks(ctx, attendance.MarkFilter{EmployeeID: &employeeID, Page: 1, Limit: 10}, companyID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), marks.TotalCount)
}

func TestAttendanceService_CheckOutWithoutCheckIn(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	companyID := createAttendanceTestCompany(t, ctx)
	employeeID := createAttendanceTestEmployee(t, ctx, companyID)

	svc := newTestAttendanceService(time.Date(2026, 2, 2, 17, 0, 0, 0, time.UTC))

	_, err := svc.Mark(ctx, employeeID, companyID, attendance.MarkRequest{Kind: "check_out"})
	assert.ErrorIs(t, err, attendance.ErrMissingCheckIn)
}

func TestAttendanceService_GeofenceEnforced(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	companyID := createAttendanceTestCompany(t, ctx)
	employeeID := createAttendanceTestEmployee(t, ctx, companyID)

	svc := newTestAttendanceService(time.Date(2026, 2, 2, 8, 30, 0, 0, time.UTC))

	fence, err := svc.CreateGeofence(ctx, companyID, attendance.CreateGeofenceRequest{
		Name:         "HQ",
		Kind:         "circle",
		Active:       true,
		Center:       &geo.Coordinate{Latitude: -12.0464, Longitude: -77.0428},
		RadiusMeters: 150,
	})
	require.NoError(t, err)

	_, err = svc.UpsertRule(ctx, companyID, attendance.UpsertRuleRequest{
		Cutoff:     "09:00",
		GeofenceID: &fence.ID,
	})
	require.NoError(t, err)

	// No coordinate at all
	_, err = svc.Mark(ctx, employeeID, companyID, attendance.MarkRequest{Kind: "check_in"})
	assert.ErrorIs(t, err, attendance.ErrCoordinateNeeded)

	// Far away from the fence
	farLat, farLng := -12.2, -77.2
	_, err = svc.Mark(ctx, employeeID, companyID, attendance.MarkRequest{
		Kind: "check_in", Latitude: &farLat, Longitude: &farLng,
	})
	assert.ErrorIs(t, err, attendance.ErrOutsideGeofence)

	// Inside
	inLat, inLng := -12.0464, -77.0428
	mark, err := svc.Mark(ctx, employeeID, companyID, attendance.MarkRequest{
		Kind: "check_in", Latitude: &inLat, Longitude: &inLng,
	})
	require.NoError(t, err)
	assert.True(t, mark.InsideGeofence)
}

func TestAttendanceService_DaySummary(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	companyID := createAttendanceTestCompany(t, ctx)
	employeeID := createAttendanceTestEmployee(t, ctx, companyID)

	morning := newTestAttendanceService(time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC))
	_, err := morning.Mark(ctx, employeeID, companyID, attendance.MarkRequest{Kind: "check_in"})
	require.NoError(t, err)

	evening := newTestAttendanceService(time.Date(2026, 2, 2, 17, 30, 0, 0, time.UTC))
	_, err = evening.Mark(ctx, employeeID, companyID, attendance.MarkRequest{Kind: "check_out"})
	require.NoError(t, err)

	summary, err := evening.DaySummary(ctx, employeeID, companyID, "2026-02-02")
	require.NoError(t, err)
	assert.False(t, summary.IsLate)
	require.NotNil(t, summary.HoursWorked)
	assert.InDelta(t, 9.5, *summary.HoursWorked, 0.001)
	require.NotNil(t, summary.Overtime)
	assert.InDelta(t, 1.5, *summary.Overtime, 0.001)
}
