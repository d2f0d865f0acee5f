package handler

import (
	"bytes"
	"errors"
	"strings"

	"github.com/branchdesk/customer-intake/internal/application/service"
	"github.com/branchdesk/customer-intake/internal/presentation/http/dto/request"
	"github.com/branchdesk/customer-intake/internal/presentation/http/dto/response"
	"github.com/branchdesk/customer-intake/pkg/apperror"
	"github.com/branchdesk/customer-intake/pkg/export"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SavedMessage is flashed after a record is stored
const SavedMessage = "Record saved successfully."

// CustomerHandler handles the intake form, listing and export requests
type CustomerHandler struct {
	customerService *service.CustomerService
	log             *zap.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, log: log}
}

// Form renders the intake form
func (h *CustomerHandler) Form(c *gin.Context) {
	response.Page(c, response.FormPage, gin.H{
		"Title":   "Customer intake",
		"Flashes": PopFlashes(c),
	})
}

// Submit stores a new record. An invalid mobile number sends the user back
// to the form with a flash message and stores nothing.
func (h *CustomerHandler) Submit(c *gin.Context) {
	var req request.SubmitCustomerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}
	req.Trim()

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		BranchName:      req.BranchName,
		BranchCode:      req.BranchCode,
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		CustomerMobile:  req.CustomerMobile,
		Remarks:         req.Remarks,
	})
	if errors.Is(err, apperror.ErrInvalidMobile) {
		AddFlash(c, apperror.MobileErrorMessage)
		response.Redirect(c, "/")
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	h.log.Info("customer record saved",
		zap.Uint("id", customer.ID),
		zap.String("branch_code", customer.BranchCode),
		zap.String("request_id", GetRequestID(c)),
	)

	AddFlash(c, SavedMessage)
	response.Redirect(c, "/view")
}

// View lists records, filtered by the optional q parameter
func (h *CustomerHandler) View(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	customers, err := h.customerService.SearchCustomers(c.Request.Context(), query)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Page(c, response.ViewPage, gin.H{
		"Title":     "Customer records",
		"Flashes":   PopFlashes(c),
		"Customers": customers,
		"Query":     query,
	})
}

// Export downloads every record as CSV in insertion order
func (h *CustomerHandler) Export(c *gin.Context) {
	table, err := h.customerService.ExportTable(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, table); err != nil {
		h.fail(c, err)
		return
	}

	response.Attachment(c, export.CSVContentType, export.AttachmentHeader(service.ExportBaseName+".csv"), buf.Bytes())
}

// ExportXLSX downloads the same rows as Export in a spreadsheet
func (h *CustomerHandler) ExportXLSX(c *gin.Context) {
	table, err := h.customerService.ExportTable(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, service.ExportSheet, table); err != nil {
		h.fail(c, err)
		return
	}

	response.Attachment(c, export.XLSXContentType, export.AttachmentHeader(service.ExportBaseName+".xlsx"), buf.Bytes())
}

// fail renders the error page. Storage failures are logged with their cause,
// which the page never shows.
func (h *CustomerHandler) fail(c *gin.Context, err error) {
	if apperror.IsPersistenceError(err) {
		h.log.Error("customer records unavailable",
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", GetRequestID(c)),
			zap.Error(err),
		)
	}
	response.Error(c, err)
}
