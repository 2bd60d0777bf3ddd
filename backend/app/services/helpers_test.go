package services

import (
	"board-guard/backend/app/db"
	"board-guard/backend/app/models"
	"board-guard/backend/app/repo"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: fmt.Sprintf("file:%s?mode=memory&cache=shared", name)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Board{}))
	return gdb
}

type fixture struct {
	users  *UserService
	boards *BoardService
}

func newFixture(t *testing.T) *fixture {
	gdb := newTestDB(t)
	return &fixture{
		users:  NewUserService(repo.NewUserRepository(gdb)),
		boards: NewBoardService(repo.NewBoardRepository(gdb)),
	}
}

func (f *fixture) user(t *testing.T, name, role string) *models.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), dtoSignup(name, role))
	require.NoError(t, err)
	return u
}
