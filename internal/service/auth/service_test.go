package auth

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/andes-hr/hr-backend-go/internal/domain/auth"
	"github.com/andes-hr/hr-backend-go/internal/pkg/database"
	"github.com/andes-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/andes-hr/hr-backend-go/internal/repository/postgresql"
)

var testAuthDB *database.DB

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

func authTestInit(t *testing.T) {
	if testAuthDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testAuthDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
}

func truncateAuthTables(t *testing.T, ctx context.Context) {
	tables := []string{"users", "employees", "companies"}

	for _, table := range tables {
		_, err := testAuthDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			// Some tables might not exist, skip
			continue
		}
	}
}

func createAuthTestCompany(t *testing.T, ctx context.Context) string {
	var companyID string
	err := testAuthDB.QueryRow(ctx, `
		INSERT INTO companies (id, name, created_at, updated_at)
		VALUES (uuidv7(), 'Test Company', NOW(), NOW())
		RETURNING id
	`).Scan(&companyID)
	require.NoError(t, err)
	return companyID
}

func createAuthTestUser(t *testing.T, ctx context.Context, companyID string, username string) string {
	var userID string
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	hashedStr := string(hashedPassword)

	err := testAuthDB.QueryRow(ctx, `
		INSERT INTO users (id, company_id, username, password_hash, role, must_change_password, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, 'admin', false, NOW(), NOW())
		RETURNING id
	`, companyID, username, hashedStr).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func newTestAuthService() auth.AuthService {
	userRepo := postgresql.NewUserRepository(testAuthDB)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(userRepo, jwtService)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	companyID := createAuthTestCompany(t, ctx)
	username := fmt.Sprintf("login-%d", time.Now().UnixNano())
	createAuthTestUser(t, ctx, companyID, username)

	authService := newTestAuthService()

	response, err := authService.Login(ctx, auth.LoginRequest{Username: username, Password: "password123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
	assert.Greater(t, response.AccessTokenExpiresIn, int64(0))
	assert.Greater(t, response.RefreshTokenExpiresIn, int64(0))
	assert.False(t, response.MustChangePassword)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	companyID := createAuthTestCompany(t, ctx)
	username := fmt.Sprintf("invalidpass-%d", time.Now().UnixNano())
	createAuthTestUser(t, ctx, companyID, username)

	authService := newTestAuthService()

	_, err := authService.Login(ctx, auth.LoginRequest{Username: username, Password: "wrongpassword"})

	assert.Error(t, err)
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	authService := newTestAuthService()

	_, err := authService.Login(ctx, auth.LoginRequest{Username: "nobody", Password: "password123"})

	assert.Error(t, err)
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	companyID := createAuthTestCompany(t, ctx)
	username := fmt.Sprintf("changepass-%d", time.Now().UnixNano())
	userID := createAuthTestUser(t, ctx, companyID, username)

	authService := newTestAuthService()

	err := authService.ChangePassword(ctx, userID, auth.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword456",
		ConfirmPassword: "newpassword456",
	})
	require.NoError(t, err)

	// Old password must stop working, new one must log in
	_, err = authService.Login(ctx, auth.LoginRequest{Username: username, Password: "password123"})
	assert.Equal(t, auth.ErrInvalidCredentials, err)

	response, err := authService.Login(ctx, auth.LoginRequest{Username: username, Password: "newpassword456"})
	assert.NoError(t, err)
	assert.False(t, response.MustChangePassword)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	companyID := createAuthTestCompany(t, ctx)
	username := fmt.Sprintf("wrongcurrent-%d", time.Now().UnixNano())
	userID := createAuthTestUser(t, ctx, companyID, username)

	authService := newTestAuthService()

	err := authService.ChangePassword(ctx, userID, auth.ChangePasswordRequest{
		CurrentPassword: "notmypassword",
		NewPassword:     "newpassword456",
		ConfirmPassword: "newpassword456",
	})
	assert.Equal(t, auth.ErrPasswordMismatch, err)
}

func TestAuthService_RefreshToken_Revoked(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	companyID := createAuthTestCompany(t, ctx)
	username := fmt.Sprintf("refresh-%d", time.Now().UnixNano())
	createAuthTestUser(t, ctx, companyID, username)

	authService := newTestAuthService()

	response, err := authService.Login(ctx, auth.LoginRequest{Username: username, Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, authService.Logout(ctx, response.RefreshToken))

	_, err = authService.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: response.RefreshToken})
	assert.Equal(t, auth.ErrRefreshTokenRevoked, err)
}
