package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/invoicepress/internal/config"
	invoicedomain "github.com/smallbiznis/invoicepress/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockInvoiceService struct {
	mock.Mock
}

func (m *mockInvoiceService) Create(ctx context.Context, req invoicedomain.CreateInvoiceRequest) (invoicedomain.Invoice, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(invoicedomain.Invoice), args.Error(1)
}

func (m *mockInvoiceService) List(ctx context.Context, req invoicedomain.ListInvoiceRequest) (invoicedomain.ListInvoiceResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(invoicedomain.ListInvoiceResponse), args.Error(1)
}

func (m *mockInvoiceService) GetByID(ctx context.Context, id string) (invoicedomain.Invoice, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(invoicedomain.Invoice), args.Error(1)
}

func (m *mockInvoiceService) RenderDocument(ctx context.Context, id string) (invoicedomain.RenderDocumentResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(invoicedomain.RenderDocumentResponse), args.Error(1)
}

func (m *mockInvoiceService) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockInvoiceService) RenderReceipt(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func newTestServer(t *testing.T) (*Server, *mockInvoiceService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandlingMiddleware())

	svc := &mockInvoiceService{}
	srv := NewServer(ServerParams{
		Gin:        r,
		Cfg:        config.Config{},
		InvoiceSvc: svc,
	})
	return srv, svc
}

func testID(t *testing.T) string {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return node.Generate().String()
}

func TestGetInvoiceByID_RejectsMalformedID(t *testing.T) {
	srv, svc := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/not-an-id", nil)
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetByID")
}

func TestGetInvoiceByID_NotFoundMapsTo404(t *testing.T) {
	srv, svc := newTestServer(t)
	id := testID(t)

	svc.On("GetByID", mock.Anything, id).
		Return(invoicedomain.Invoice{}, invoicedomain.ErrInvoiceNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/"+id, nil)
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["error"]["type"])
}

func TestListInvoices_PassesStatusFilter(t *testing.T) {
	srv, svc := newTestServer(t)

	svc.On("List", mock.Anything, mock.MatchedBy(func(req invoicedomain.ListInvoiceRequest) bool {
		return req.Status != nil && *req.Status == invoicedomain.InvoiceStatusPaid
	})).Return(invoicedomain.ListInvoiceResponse{Invoices: []invoicedomain.Invoice{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices?status=paid", nil)
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreateInvoice_Returns201(t *testing.T) {
	srv, svc := newTestServer(t)

	svc.On("Create", mock.Anything, mock.MatchedBy(func(req invoicedomain.CreateInvoiceRequest) bool {
		return req.InvoiceNumber == "INV-0042"
	})).Return(invoicedomain.Invoice{InvoiceNumber: "INV-0042"}, nil)

	payload := `{"invoice_number":"INV-0042","customer_id":"1","company_id":"2","items":[{"description":"Work","quantity":1,"rate":50}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreateInvoice_DuplicateMapsToConflict(t *testing.T) {
	srv, svc := newTestServer(t)

	svc.On("Create", mock.Anything, mock.Anything).
		Return(invoicedomain.Invoice{}, invoicedomain.ErrDuplicateInvoiceNumber)

	payload := `{"invoice_number":"INV-0042","items":[{"description":"Work","quantity":1,"rate":50}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRenderInvoiceDocument_ReturnsHTML(t *testing.T) {
	srv, svc := newTestServer(t)
	id := testID(t)

	svc.On("RenderDocument", mock.Anything, id).
		Return(invoicedomain.RenderDocumentResponse{
			InvoiceNumber: "INV-0001",
			HTML:          "<!DOCTYPE html><html></html>",
			PageCount:     3,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/"+id+"/document", nil)
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "3", rec.Header().Get("X-Page-Count"))
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
}

func TestRenderInvoicePDF_SetsDisposition(t *testing.T) {
	srv, svc := newTestServer(t)
	id := testID(t)

	svc.On("RenderPDF", mock.Anything, id).Return([]byte("%PDF-1.4"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/"+id+"/pdf", nil)
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "inline")
}

func TestRenderInvoiceReceipt_UnpaidMapsToConflict(t *testing.T) {
	srv, svc := newTestServer(t)
	id := testID(t)

	svc.On("RenderReceipt", mock.Anything, id).
		Return(nil, invoicedomain.ErrInvoiceNotPaid)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/"+id+"/receipt", nil)
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
