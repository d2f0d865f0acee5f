package service

import (
	"context"
	"errors"
	"time"

	"github.com/branchdesk/customer-intake/internal/domain/entity"
	"github.com/branchdesk/customer-intake/internal/domain/repository"
	"github.com/branchdesk/customer-intake/pkg/apperror"
	"github.com/branchdesk/customer-intake/pkg/mobile"
)

// CustomerService owns the customer record store operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	now          func() time.Time
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, now: time.Now}
}

// CreateCustomerInput represents the create customer input.
// CustomerMobile may still contain formatting characters.
type CreateCustomerInput struct {
	BranchName      string
	BranchCode      string
	CustomerName    string
	CustomerAddress string
	CustomerMobile  string
	Remarks         string
}

// CreateCustomer validates the mobile number and stores a new record stamped
// with the current time.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	mobileNumber, err := mobile.Normalize(input.CustomerMobile)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		BranchName:      input.BranchName,
		BranchCode:      input.BranchCode,
		CustomerName:    input.CustomerName,
		CustomerAddress: input.CustomerAddress,
		CustomerMobile:  mobileNumber,
		Remarks:         input.Remarks,
		// Postgres keeps microseconds; truncate so the stored value reads back unchanged.
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, apperror.ErrInvalidMobile) {
			return nil, err
		}
		return nil, apperror.NewPersistenceError(err)
	}

	return customer, nil
}

// ListCustomers returns every record, most recently created first
func (s *CustomerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return s.find(ctx, repository.CustomerQuery{Order: repository.OrderNewestFirst})
}

// SearchCustomers returns records whose branch name, branch code, customer name
// or mobile contains term, ignoring case, most recently created first.
// An empty term lists everything.
func (s *CustomerService) SearchCustomers(ctx context.Context, term string) ([]entity.Customer, error) {
	if term == "" {
		return s.ListCustomers(ctx)
	}
	return s.find(ctx, repository.CustomerQuery{Search: term, Order: repository.OrderNewestFirst})
}

// ExportCustomers returns every record in insertion (primary key) order
func (s *CustomerService) ExportCustomers(ctx context.Context) ([]entity.Customer, error) {
	return s.find(ctx, repository.CustomerQuery{Order: repository.OrderOldestID})
}

// CountCustomers returns the number of stored records
func (s *CustomerService) CountCustomers(ctx context.Context) (int64, error) {
	total, err := s.customerRepo.Count(ctx)
	if err != nil {
		return 0, apperror.NewPersistenceError(err)
	}
	return total, nil
}

func (s *CustomerService) find(ctx context.Context, q repository.CustomerQuery) ([]entity.Customer, error) {
	customers, err := s.customerRepo.Find(ctx, q)
	if err != nil {
		return nil, apperror.NewPersistenceError(err)
	}
	return customers, nil
}
