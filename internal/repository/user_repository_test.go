package repository_test

import (
	"context"
	"testing"
	"time"

	"crm/internal/model"
	"crm/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

var userColumns = []string{"id", "email", "hashed_password", "name", "created_at"}

func TestUserRepository_Create(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewUserRepository(gormDB)

	user := &model.User{
		ID:             uuid.New(),
		Email:          "vendas@example.com",
		HashedPassword: "hashed_password",
		Name:           "Equipe de Vendas",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs(user.Email, user.HashedPassword, user.Name, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(user.ID.String()))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		queryErr error
		wantUser bool
		wantErr  bool
	}{
		{
			name: "found",
			rows: sqlmock.NewRows(userColumns).
				AddRow(userID.String(), "vendas@example.com", "hashed_password", "Equipe de Vendas", time.Now()),
			wantUser: true,
		},
		{name: "absent is not an error", queryErr: gorm.ErrRecordNotFound},
		{name: "database failure", queryErr: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, mock := setupMockDB(t)
			repo := repository.NewUserRepository(gormDB)

			q := mock.ExpectQuery(`SELECT .* FROM "users" WHERE email = .*`)
			if tt.queryErr != nil {
				q.WillReturnError(tt.queryErr)
			} else {
				q.WillReturnRows(tt.rows)
			}

			user, err := repo.FindByEmail(context.Background(), "vendas@example.com")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantUser {
				require.NotNil(t, user)
				assert.Equal(t, userID, user.ID)
				assert.Equal(t, "Equipe de Vendas", user.Name)
			} else {
				assert.Nil(t, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewUserRepository(gormDB)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE id = .*`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(userID.String(), "gerente@example.com", "hash", "Gerente", time.Now()))

	user, err := repo.GetByID(context.Background(), userID)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "gerente@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
