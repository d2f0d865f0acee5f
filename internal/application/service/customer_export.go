package service

import (
	"context"
	"strconv"
	"time"

	"github.com/branchdesk/customer-intake/internal/domain/entity"
	"github.com/branchdesk/customer-intake/pkg/export"
)

const (
	// ExportBaseName names the download files and the spreadsheet sheet
	ExportBaseName = "customers_export"
	ExportSheet    = "Customers"

	createdAtLayout       = "2006-01-02 15:04:05"
	createdAtMicrosLayout = "2006-01-02 15:04:05.000000"
)

// ExportHeader is the fixed column order of every export
var ExportHeader = []string{"ID", "Branch Name", "Branch Code", "Customer Name", "Address", "Mobile", "Remarks", "Created At"}

// ExportTable returns every record in primary key order as export rows
func (s *CustomerService) ExportTable(ctx context.Context) (*export.Table, error) {
	customers, err := s.ExportCustomers(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(customers))
	for i := range customers {
		rows = append(rows, exportRow(&customers[i]))
	}
	return &export.Table{Header: ExportHeader, Rows: rows}, nil
}

func exportRow(c *entity.Customer) []string {
	return []string{
		strconv.FormatUint(uint64(c.ID), 10),
		c.BranchName,
		c.BranchCode,
		c.CustomerName,
		c.CustomerAddress,
		c.CustomerMobile,
		c.Remarks,
		formatCreatedAt(c.CreatedAt),
	}
}

// formatCreatedAt prints the fraction only when there are microseconds to show
func formatCreatedAt(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(createdAtLayout)
	}
	return t.Format(createdAtMicrosLayout)
}
