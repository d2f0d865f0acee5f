package repository

import (
	"context"
	"testing"
	"time"

	"github.com/branchdesk/customer-intake/internal/domain/entity"
	domainRepo "github.com/branchdesk/customer-intake/internal/domain/repository"
	"github.com/branchdesk/customer-intake/internal/infrastructure/database"
	"github.com/branchdesk/customer-intake/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, zap.NewNop()))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seed(t *testing.T, repo domainRepo.CustomerRepository, customers ...entity.Customer) []entity.Customer {
	t.Helper()
	for i := range customers {
		require.NoError(t, repo.Create(context.Background(), &customers[i]))
	}
	return customers
}

func ids(customers []entity.Customer) []uint {
	out := make([]uint, 0, len(customers))
	for _, c := range customers {
		out = append(out, c.ID)
	}
	return out
}

func TestCreateAssignsID(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	customer := &entity.Customer{BranchName: "Main", CustomerMobile: "9876543210", CreatedAt: time.Now().UTC()}

	require.NoError(t, repo.Create(context.Background(), customer))

	assert.NotZero(t, customer.ID)
	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestCreateRejectsNonCanonicalMobile(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))

	err := repo.Create(context.Background(), &entity.Customer{CustomerMobile: "98765-43210"})

	assert.ErrorIs(t, err, apperror.ErrInvalidMobile)
	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestFindOrdering(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	// Inserted out of timestamp order, with a tie between the last two.
	seed(t, repo,
		entity.Customer{CustomerName: "late", CustomerMobile: "1111111111", CreatedAt: base.Add(2 * time.Hour)},
		entity.Customer{CustomerName: "early", CustomerMobile: "2222222222", CreatedAt: base},
		entity.Customer{CustomerName: "tie-a", CustomerMobile: "3333333333", CreatedAt: base.Add(time.Hour)},
		entity.Customer{CustomerName: "tie-b", CustomerMobile: "4444444444", CreatedAt: base.Add(time.Hour)},
	)

	newest, err := repo.Find(context.Background(), domainRepo.CustomerQuery{Order: domainRepo.OrderNewestFirst})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 4, 3, 2}, ids(newest))

	byID, err := repo.Find(context.Background(), domainRepo.CustomerQuery{Order: domainRepo.OrderOldestID})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3, 4}, ids(byID))
}

func TestFindSearch(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	now := time.Now().UTC()
	seed(t, repo,
		entity.Customer{BranchName: "Andheri West", BranchCode: "AW01", CustomerName: "Ravi Kumar", CustomerMobile: "9876543210", CreatedAt: now},
		entity.Customer{BranchName: "Pune", BranchCode: "PN02", CustomerName: "Asha", CustomerMobile: "9123456780", CustomerAddress: "andheri road", Remarks: "andheri", CreatedAt: now},
		entity.Customer{BranchName: "100% Branch", BranchCode: "X_1", CustomerName: "Zed", CustomerMobile: "9000000001", CreatedAt: now},
		entity.Customer{BranchName: "Lyon", BranchCode: "LY04", CustomerName: "ÉLODIE Ñandú", CustomerMobile: "9555555555", CreatedAt: now},
	)

	tests := []struct {
		name   string
		search string
		want   []uint
	}{
		{name: "branch name case-insensitive", search: "ANDHERI", want: []uint{1}},
		{name: "branch code", search: "pn0", want: []uint{2}},
		{name: "customer name", search: "ravi", want: []uint{1}},
		{name: "mobile substring", search: "345678", want: []uint{2}},
		{name: "address and remarks ignored", search: "road", want: []uint{}},
		{name: "percent is literal", search: "100%", want: []uint{3}},
		{name: "underscore is literal", search: "x_", want: []uint{3}},
		{name: "percent alone does not match everything", search: "%", want: []uint{3}},
		{name: "non-ascii exact case", search: "ÉLODIE", want: []uint{4}},
		{name: "non-ascii exact case second word", search: "Ñandú", want: []uint{4}},
		{name: "non-ascii letters with ascii case changed", search: "Élodie", want: []uint{4}},
		{name: "non-ascii mixed case", search: "ÑANDú", want: []uint{4}},
		{name: "ascii part of non-ascii value", search: "lodie", want: []uint{4}},
		{name: "empty matches all", search: "", want: []uint{4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Find(context.Background(), domainRepo.CustomerQuery{Search: tt.search})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}
