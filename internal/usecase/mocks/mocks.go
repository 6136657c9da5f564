package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
	"github.com/smallbatch-apps/cashfloat/internal/usecase"
)

// MockEntryRepository is a mock implementation of EntryRepository. The
// default behavior is an in-memory store that honors date filters and
// returns rows ordered by (date, seq).
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.CashEntry
	nextSeq int64

	CreateFunc  func(ctx context.Context, entry *domain.CashEntry) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.CashEntry, error)
	UpdateFunc  func(ctx context.Context, entry *domain.CashEntry) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context, filter usecase.EntryFilter) ([]*domain.CashEntry, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string]*domain.CashEntry),
	}
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *domain.CashEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry.Seq == 0 {
		m.nextSeq++
		entry.Seq = m.nextSeq
	} else if entry.Seq > m.nextSeq {
		m.nextSeq = entry.Seq
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id string) (*domain.CashEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockEntryRepository) Update(ctx context.Context, entry *domain.CashEntry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entry.ID]; !ok {
		return domain.ErrEntryNotFound
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return domain.ErrEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *MockEntryRepository) List(ctx context.Context, filter usecase.EntryFilter) ([]*domain.CashEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.CashEntry
	for _, e := range m.entries {
		if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && e.Date.After(*filter.EndDate) {
			continue
		}
		if filter.CreatedBy != "" && e.CreatedBy != filter.CreatedBy {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].Seq < entries[j].Seq
	})
	if filter.Limit > 0 && len(entries) > filter.Limit {
		entries = entries[:filter.Limit]
	}
	return entries, nil
}

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[string]*domain.Expense
	nextSeq  int64

	CreateFunc  func(ctx context.Context, expense *domain.Expense) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Expense, error)
	UpdateFunc  func(ctx context.Context, expense *domain.Expense) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context, filter usecase.ExpenseFilter) ([]*domain.Expense, error)
}

func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		expenses: make(map[string]*domain.Expense),
	}
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if expense.Seq == 0 {
		m.nextSeq++
		expense.Seq = m.nextSeq
	} else if expense.Seq > m.nextSeq {
		m.nextSeq = expense.Seq
	}
	m.expenses[expense.ID] = expense
	return nil
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if x, ok := m.expenses[id]; ok {
		return x, nil
	}
	return nil, domain.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.expenses[expense.ID]; !ok {
		return domain.ErrExpenseNotFound
	}
	m.expenses[expense.ID] = expense
	return nil
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.expenses[id]; !ok {
		return domain.ErrExpenseNotFound
	}
	delete(m.expenses, id)
	return nil
}

func (m *MockExpenseRepository) List(ctx context.Context, filter usecase.ExpenseFilter) ([]*domain.Expense, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var expenses []*domain.Expense
	for _, x := range m.expenses {
		if filter.StartDate != nil && x.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && x.Date.After(*filter.EndDate) {
			continue
		}
		expenses = append(expenses, x)
	}
	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Date.Before(expenses[j].Date)
		}
		return expenses[i].Seq < expenses[j].Seq
	})
	if filter.Limit > 0 && len(expenses) > filter.Limit {
		expenses = expenses[:filter.Limit]
	}
	return expenses, nil
}

// MockReconciliationRepository is a mock implementation of
// ReconciliationRepository.
type MockReconciliationRepository struct {
	mu   sync.RWMutex
	recs []*domain.CashReconciliation

	CreateFunc func(ctx context.Context, rec *domain.CashReconciliation) error
	ListFunc   func(ctx context.Context, limit, offset int) ([]*domain.CashReconciliation, error)
	LatestFunc func(ctx context.Context) (*domain.CashReconciliation, error)
}

func NewMockReconciliationRepository() *MockReconciliationRepository {
	return &MockReconciliationRepository{}
}

func (m *MockReconciliationRepository) Create(ctx context.Context, rec *domain.CashReconciliation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rec)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append(m.recs, rec)
	return nil
}

func (m *MockReconciliationRepository) List(ctx context.Context, limit, offset int) ([]*domain.CashReconciliation, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sorted := make([]*domain.CashReconciliation, len(m.recs))
	copy(sorted, m.recs)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if offset >= len(sorted) {
		return nil, nil
	}
	sorted = sorted[offset:]
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (m *MockReconciliationRepository) Latest(ctx context.Context) (*domain.CashReconciliation, error) {
	if m.LatestFunc != nil {
		return m.LatestFunc(ctx)
	}
	recs, err := m.List(ctx, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, domain.ErrReconciliationNotFound
	}
	return recs[0], nil
}

// MockSettingsRepository is a mock implementation of SettingsRepository.
type MockSettingsRepository struct {
	mu       sync.RWMutex
	settings *domain.Settings

	LoadFunc func(ctx context.Context) (domain.Settings, error)
	SaveFunc func(ctx context.Context, settings domain.Settings) error
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{}
}

func (m *MockSettingsRepository) Load(ctx context.Context) (domain.Settings, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return domain.DefaultSettings(), nil
	}
	return *m.settings, nil
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings domain.Settings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, settings)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &settings
	return nil
}

// MockAuditRepository is a mock implementation of AuditRepository.
type MockAuditRepository struct {
	mu   sync.RWMutex
	logs []*domain.AuditLog

	CreateFunc func(ctx context.Context, log *domain.AuditLog) error
	ListFunc   func(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, log)
	return nil
}

func (m *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var logs []*domain.AuditLog
	for _, l := range m.logs {
		if filter.Action != "" && l.Action != filter.Action {
			continue
		}
		if filter.UserID != "" && l.UserID != filter.UserID {
			continue
		}
		if filter.ResourceType != "" && l.ResourceType != filter.ResourceType {
			continue
		}
		if filter.ResourceID != "" && l.ResourceID != filter.ResourceID {
			continue
		}
		logs = append(logs, l)
	}
	return logs, nil
}

// Logs returns a snapshot of all recorded audit rows.
func (m *MockAuditRepository) Logs() []*domain.AuditLog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	logs := make([]*domain.AuditLog, len(m.logs))
	copy(logs, m.logs)
	return logs
}

// MockFlowStore is a mock implementation of FlowStore.
type MockFlowStore struct {
	mu    sync.RWMutex
	flows map[string]*domain.POSFlow

	SaveFunc   func(ctx context.Context, flow *domain.POSFlow) error
	GetFunc    func(ctx context.Context, id string) (*domain.POSFlow, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func NewMockFlowStore() *MockFlowStore {
	return &MockFlowStore{
		flows: make(map[string]*domain.POSFlow),
	}
}

func (m *MockFlowStore) Save(ctx context.Context, flow *domain.POSFlow) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, flow)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *flow
	m.flows[flow.ID] = &copied
	return nil
}

func (m *MockFlowStore) Get(ctx context.Context, id string) (*domain.POSFlow, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if f, ok := m.flows[id]; ok {
		copied := *f
		return &copied, nil
	}
	return nil, domain.ErrFlowNotFound
}

func (m *MockFlowStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flows, id)
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator producing
// predictable sequential IDs.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

// MockPaymentSyncer is a mock implementation of PaymentSyncer recording
// every call.
type MockPaymentSyncer struct {
	mu      sync.Mutex
	records []usecase.PaymentRecord

	RecordPaymentFunc func(ctx context.Context, record usecase.PaymentRecord) error
}

func NewMockPaymentSyncer() *MockPaymentSyncer {
	return &MockPaymentSyncer{}
}

func (m *MockPaymentSyncer) RecordPayment(ctx context.Context, record usecase.PaymentRecord) error {
	if m.RecordPaymentFunc != nil {
		return m.RecordPaymentFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

// Records returns a snapshot of recorded payments.
func (m *MockPaymentSyncer) Records() []usecase.PaymentRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	records := make([]usecase.PaymentRecord, len(m.records))
	copy(records, m.records)
	return records
}

// MockReceiptStore is a mock implementation of ReceiptStore.
type MockReceiptStore struct {
	mu    sync.Mutex
	blobs map[string][]byte

	StoreFunc func(ctx context.Context, name string, blob []byte) (string, error)
}

func NewMockReceiptStore() *MockReceiptStore {
	return &MockReceiptStore{
		blobs: make(map[string][]byte),
	}
}

func (m *MockReceiptStore) Store(ctx context.Context, name string, blob []byte) (string, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, name, blob)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	path := "receipts/" + name
	m.blobs[path] = blob
	return path, nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu     sync.Mutex
	values map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		values: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.values[key]; ok {
		return true, existing, nil
	}
	m.values[key] = response
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = response
	return nil
}

// MockMetricsRecorder is a mock implementation of MetricsRecorder that
// counts calls by name and label.
type MockMetricsRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewMockMetricsRecorder() *MockMetricsRecorder {
	return &MockMetricsRecorder{
		counts: make(map[string]int),
	}
}

// Count returns how often an observation was recorded. Labelled
// observations are keyed "name:label".
func (m *MockMetricsRecorder) Count(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key]
}

func (m *MockMetricsRecorder) bump(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
}

func (m *MockMetricsRecorder) EntryCreated(entryType string) { m.bump("entry_created:" + entryType) }
func (m *MockMetricsRecorder) EntryDeleted()                 { m.bump("entry_deleted") }

func (m *MockMetricsRecorder) CashInRecorded(amount decimal.Decimal) { m.bump("cash_in") }

func (m *MockMetricsRecorder) ExpenseCreated()    { m.bump("expense_created") }
func (m *MockMetricsRecorder) ExpenseReimbursed() { m.bump("expense_reimbursed") }

func (m *MockMetricsRecorder) ReconciliationRecorded(balanced bool, discrepancy decimal.Decimal) {
	outcome := "balanced"
	if !balanced {
		outcome = "discrepancy"
	}
	m.bump("reconciliation:" + outcome)
}

func (m *MockMetricsRecorder) FlowStarted()                { m.bump("flow_started") }
func (m *MockMetricsRecorder) FlowFinished(outcome string) { m.bump("flow_finished:" + outcome) }

func (m *MockMetricsRecorder) PaymentSyncAttempted(result string) { m.bump("payment_sync:" + result) }

func (m *MockMetricsRecorder) AuditLogged(action, status string) { m.bump("audit:" + action) }
