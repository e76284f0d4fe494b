package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/rental-desk/internal/jobs"
	"github.com/sjperalta/rental-desk/internal/models"
	"github.com/sjperalta/rental-desk/internal/rentalapi"
	"github.com/sjperalta/rental-desk/internal/repository"
	"github.com/sjperalta/rental-desk/internal/session"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type mockRentalAPI struct {
	RentalAPI

	mu                 sync.Mutex
	createCalls        int
	paymentCalls       int
	lastPayload        rentalapi.ContractCreate
	lastPaymentAmount  decimal.Decimal
	lastPaymentMethod  string
	mockListVehicles   func(ctx context.Context, q rentalapi.VehicleQuery) ([]rentalapi.Vehicle, error)
	mockFindByPhone    func(ctx context.Context, phone string) (*rentalapi.Customer, error)
	mockCreateContract func(ctx context.Context, payload rentalapi.ContractCreate) (*rentalapi.ContractCreated, error)
	mockRecordPayment  func(ctx context.Context, contractID int64, amount decimal.Decimal, method string) error
}

func (m *mockRentalAPI) ListVehicles(ctx context.Context, q rentalapi.VehicleQuery) ([]rentalapi.Vehicle, error) {
	return m.mockListVehicles(ctx, q)
}

func (m *mockRentalAPI) FindCustomerByPhone(ctx context.Context, phone string) (*rentalapi.Customer, error) {
	return m.mockFindByPhone(ctx, phone)
}

func (m *mockRentalAPI) CreateContract(ctx context.Context, payload rentalapi.ContractCreate) (*rentalapi.ContractCreated, error) {
	m.mu.Lock()
	m.createCalls++
	m.lastPayload = payload
	m.mu.Unlock()
	if m.mockCreateContract == nil {
		return nil, fmt.Errorf("unexpected CreateContract call")
	}
	return m.mockCreateContract(ctx, payload)
}

func (m *mockRentalAPI) RecordPayment(ctx context.Context, contractID int64, amount decimal.Decimal, method string) error {
	m.mu.Lock()
	m.paymentCalls++
	m.lastPaymentAmount = amount
	m.lastPaymentMethod = method
	m.mu.Unlock()
	if m.mockRecordPayment == nil {
		return nil
	}
	return m.mockRecordPayment(ctx, contractID, amount, method)
}

// syncWorker runs every job inline
type syncWorker struct{}

func (syncWorker) Enqueue(job jobs.Job)      { _ = job(context.Background()) }
func (syncWorker) EnqueueAsync(job jobs.Job) { _ = job(context.Background()) }

type memoryStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (m *memoryStore) UploadFromBytes(data []byte, filename string, subDir string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.files == nil {
		m.files = map[string][]byte{}
	}
	path := subDir + "/" + filename
	m.files[path] = data
	return path, nil
}

type testEnv struct {
	api      *mockRentalAPI
	repos    *repository.Repositories
	store    *session.Store
	docs     *memoryStore
	sessions *SessionService
	catalog  *CatalogService
	contract *ContractService
	export   *ExportService
}

var staff = Actor{UserID: 7, Role: "staff", IP: "127.0.0.1", UserAgent: "test"}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Submission{}, &models.AuditLog{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	api := &mockRentalAPI{
		mockListVehicles: func(ctx context.Context, q rentalapi.VehicleQuery) ([]rentalapi.Vehicle, error) {
			return testVehicles(), nil
		},
	}
	repos := repository.NewRepositories(db)
	store := session.NewStore(node, "Cash")
	docs := &memoryStore{}

	exportSvc, err := NewExportService("VND")
	require.NoError(t, err)
	auditSvc := NewAuditService(repos.Audit)
	catalogSvc := NewCatalogService(api)
	sessionSvc := NewSessionService(store, catalogSvc, auditSvc)

	return &testEnv{
		api:      api,
		repos:    repos,
		store:    store,
		docs:     docs,
		sessions: sessionSvc,
		catalog:  catalogSvc,
		contract: NewContractService(api, sessionSvc, repos.Submission, auditSvc, exportSvc, docs, syncWorker{}),
		export:   exportSvc,
	}
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func int64Ptr(v int64) *int64 { return &v }

func testVehicles() []rentalapi.Vehicle {
	return []rentalapi.Vehicle{
		{CarID: 7, LicensePlate: "51A-123", DailyRate: decPtr(100), Status: "available", TypeID: int64Ptr(2)},
		{CarID: 8, LicensePlate: "51B-456", PricePerDay: decPtr(90), Status: "Rented", TypeID: int64Ptr(3)},
		{ID: 9, LicensePlate: "30A-789", Status: "maintenance"},
	}
}

func strPtr(s string) *string { return &s }

// readySession opens a draft with customer, vehicle 7 and a four day period
func (e *testEnv) readySession(t *testing.T) *session.Session {
	t.Helper()
	ctx := context.Background()
	sess := e.sessions.Create(ctx, staff)

	_, err := e.sessions.SelectCustomer(ctx, sess.ID(), staff, CustomerSelection{
		Customer: rentalapi.Customer{CustomerID: 5, FullName: "An Nguyen", Phone: "0901"},
	})
	require.NoError(t, err)
	_, err = e.sessions.SelectVehicle(ctx, sess.ID(), staff, 7)
	require.NoError(t, err)
	_, err = e.sessions.UpdateForm(ctx, sess.ID(), staff, session.Patch{
		StartDate: strPtr("2025-10-01"),
		EndDate:   strPtr("2025-10-05"),
	})
	require.NoError(t, err)
	return sess
}

func sessionNotes(notes string) session.Patch {
	return session.Patch{Notes: &notes}
}
