package request

import "strings"

// SubmitCustomerRequest is the intake form payload
type SubmitCustomerRequest struct {
	BranchName      string `form:"branch_name"`
	BranchCode      string `form:"branch_code"`
	CustomerName    string `form:"customer_name"`
	CustomerAddress string `form:"customer_address"`
	CustomerMobile  string `form:"customer_mobile"`
	Remarks         string `form:"remarks"`
}

// Trim strips leading and trailing whitespace from every field
func (r *SubmitCustomerRequest) Trim() {
	r.BranchName = strings.TrimSpace(r.BranchName)
	r.BranchCode = strings.TrimSpace(r.BranchCode)
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.CustomerAddress = strings.TrimSpace(r.CustomerAddress)
	r.CustomerMobile = strings.TrimSpace(r.CustomerMobile)
	r.Remarks = strings.TrimSpace(r.Remarks)
}
