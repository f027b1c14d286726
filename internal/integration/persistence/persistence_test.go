package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	"github.com/finanzas-pareja/ledger/internal/infra/db/dbtest"
)

func setup(t *testing.T) (*gorm.DB, *entity.User) {
	t.Helper()
	db := dbtest.New(t)

	user := entity.NewUser("ana@example.com", "Ana", "hash")
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return db, user
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
