package repository

import (
	"context"

	"github.com/branchdesk/customer-intake/internal/domain/entity"
)

// CustomerOrder selects how a customer query is sorted
type CustomerOrder int

const (
	// OrderNewestFirst sorts by created_at descending, newest insert first on ties
	OrderNewestFirst CustomerOrder = iota
	// OrderOldestID sorts by primary key ascending
	OrderOldestID
)

// CustomerQuery describes which customers to read and in what order.
// An empty Search matches every record.
type CustomerQuery struct {
	Search string
	Order  CustomerOrder
}

// SearchableColumns are the columns a CustomerQuery.Search is matched against
var SearchableColumns = []string{"branch_name", "branch_code", "customer_name", "customer_mobile"}

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Find(ctx context.Context, query CustomerQuery) ([]entity.Customer, error)
	Count(ctx context.Context) (int64, error)
}
