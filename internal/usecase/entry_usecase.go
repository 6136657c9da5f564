package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
)

// EntryUseCase handles cash entry business logic.
type EntryUseCase struct {
	entryRepo    EntryRepository
	settingsRepo SettingsRepository
	auditRepo    AuditRepository
	idGen        IDGenerator
	syncer       PaymentSyncer
	metrics      MetricsRecorder
}

// NewEntryUseCase creates a new EntryUseCase. syncer may be nil, in which
// case payments are recorded locally only; metrics may be nil.
func NewEntryUseCase(
	entryRepo EntryRepository,
	settingsRepo SettingsRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	syncer PaymentSyncer,
	metrics MetricsRecorder,
) *EntryUseCase {
	return &EntryUseCase{
		entryRepo:    entryRepo,
		settingsRepo: settingsRepo,
		auditRepo:    auditRepo,
		idGen:        idGen,
		syncer:       syncer,
		metrics:      ensureMetrics(metrics),
	}
}

// RecordCashInInput represents input for recording a customer payment.
type RecordCashInInput struct {
	Date          *time.Time
	Paid          decimal.Decimal
	InvoiceTotal  decimal.Decimal
	ToDeposit     decimal.Decimal
	ChangeSource  domain.Source
	Category      string
	CustomerName  string
	InvoiceNumber string
	Notes         string
	AllowPartial  bool
}

// EntryResult pairs a written entry with a warning when the best-effort
// external payment sync did not go through.
type EntryResult struct {
	Entry       *domain.CashEntry
	SyncWarning string
}

// RecordCashIn records a customer payment via the split calculator and, if
// the payment references an invoice, pushes it to the external payment
// system. A sync failure never unwinds the local write.
func (uc *EntryUseCase) RecordCashIn(ctx context.Context, input RecordCashInInput) (*EntryResult, error) {
	if err := domain.ValidateAmount(input.Paid); err != nil {
		return nil, err
	}

	if !input.AllowPartial && input.Paid.LessThan(input.InvoiceTotal) {
		return nil, domain.ErrPaymentShort
	}

	if err := domain.ValidateText(input.Notes, domain.MaxNotesLength); err != nil {
		return nil, err
	}

	splitIn := domain.SplitInput{
		Paid:         input.Paid,
		InvoiceTotal: input.InvoiceTotal,
		ToDeposit:    input.ToDeposit,
		ChangeSource: input.ChangeSource,
	}

	split, err := domain.ComputeSplit(splitIn)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	entry := split.Entry(splitIn)
	entry.ID = uc.idGen.Generate()
	entry.Date = domain.DateOf(now)
	if input.Date != nil {
		entry.Date = domain.DateOf(*input.Date)
	}
	entry.Category = input.Category
	entry.CustomerName = input.CustomerName
	entry.InvoiceNumber = input.InvoiceNumber
	entry.Notes = input.Notes
	entry.CreatedBy = callerID(ctx)
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	uc.audit(ctx, domain.AuditActionEntryCreate, "entry", entry.ID, nil, entry)
	uc.metrics.EntryCreated(string(entry.Type))
	uc.metrics.CashInRecorded(entry.Amount)

	result := &EntryResult{Entry: entry}
	if uc.syncer != nil && input.InvoiceNumber != "" {
		if err := uc.syncPayment(ctx, entry); err != nil {
			result.SyncWarning = "payment recorded locally but could not be synced to QuickBooks: " + err.Error()
		}
	}

	return result, nil
}

// RecordEntryInput represents input for recording a cash-out or a pool
// transfer. Customer payments go through RecordCashIn instead.
type RecordEntryInput struct {
	Date     *time.Time
	Type     domain.EntryType
	Source   domain.Source
	Category string
	Notes    string
	Amount   decimal.Decimal
}

// RecordEntry records a CASH_OUT, DEPOSIT or WITHDRAWAL entry.
func (uc *EntryUseCase) RecordEntry(ctx context.Context, input RecordEntryInput) (*domain.CashEntry, error) {
	if input.Type == domain.EntryCashIn {
		return nil, domain.ErrInvalidEntryType
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if err := domain.ValidateText(input.Notes, domain.MaxNotesLength); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	entry := &domain.CashEntry{
		ID:        uc.idGen.Generate(),
		Type:      input.Type,
		Source:    input.Source,
		Amount:    input.Amount,
		Category:  input.Category,
		Notes:     input.Notes,
		Date:      domain.DateOf(now),
		CreatedBy: callerID(ctx),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Date != nil {
		entry.Date = domain.DateOf(*input.Date)
	}

	entry.Normalize()

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	uc.audit(ctx, domain.AuditActionEntryCreate, "entry", entry.ID, nil, entry)
	uc.metrics.EntryCreated(string(entry.Type))

	return entry, nil
}

// GetEntry fetches a single entry by ID.
func (uc *EntryUseCase) GetEntry(ctx context.Context, id string) (*domain.CashEntry, error) {
	return uc.entryRepo.GetByID(ctx, id)
}

// ListEntriesInput represents input for listing entries.
type ListEntriesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	CreatedBy string
	Limit     int
	Offset    int
}

// ListEntries lists entries ordered by date then sequence.
func (uc *EntryUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.CashEntry, error) {
	if err := domain.ValidateDateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.entryRepo.List(ctx, EntryFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		CreatedBy: input.CreatedBy,
		Limit:     limit,
		Offset:    offset,
	})
}

// PatchEntryInput represents a partial update; nil fields are untouched.
type PatchEntryInput struct {
	Date          *time.Time
	Amount        *decimal.Decimal
	Category      *string
	CustomerName  *string
	InvoiceNumber *string
	Notes         *string
}

// PatchEntry applies a partial update to an entry. Changing the amount of
// a cash-in keeps the deposit portion and change fixed and re-derives the
// register share, so the split stays conserved.
func (uc *EntryUseCase) PatchEntry(ctx context.Context, id string, input PatchEntryInput) (*domain.CashEntry, error) {
	entry, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	before := *entry

	if input.Date != nil {
		entry.Date = domain.DateOf(*input.Date)
	}

	if input.Amount != nil {
		if err := domain.ValidateAmount(*input.Amount); err != nil {
			return nil, err
		}

		entry.Amount = *input.Amount
		if entry.Type == domain.EntryCashIn {
			entry.RegisterAmount = entry.Amount.Sub(entry.DepositAmount).Sub(entry.ChangeGiven)
		}
	}

	if input.Category != nil {
		entry.Category = *input.Category
	}

	if input.CustomerName != nil {
		entry.CustomerName = *input.CustomerName
	}

	if input.InvoiceNumber != nil {
		entry.InvoiceNumber = *input.InvoiceNumber
	}

	if input.Notes != nil {
		if err := domain.ValidateText(*input.Notes, domain.MaxNotesLength); err != nil {
			return nil, err
		}

		entry.Notes = *input.Notes
	}

	entry.Normalize()

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	entry.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	uc.audit(ctx, domain.AuditActionEntryPatch, "entry", entry.ID, &before, entry)

	return entry, nil
}

// DeleteEntry removes an entry. Admin only.
func (uc *EntryUseCase) DeleteEntry(ctx context.Context, id string) error {
	user, ok := domain.UserFromContext(ctx)
	if !ok || !user.Role.CanDelete() {
		return domain.ErrInsufficientRole
	}

	entry, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.entryRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit(ctx, domain.AuditActionEntryDelete, "entry", id, entry, nil)
	uc.metrics.EntryDeleted()

	return nil
}

func (uc *EntryUseCase) syncPayment(ctx context.Context, entry *domain.CashEntry) error {
	settings, err := uc.settingsRepo.Load(ctx)
	if err != nil {
		return err
	}

	return uc.syncer.RecordPayment(ctx, PaymentRecord{
		RealmID:     settings.QuickBooksRealmID,
		InvoiceRef:  entry.InvoiceNumber,
		CustomerRef: entry.CustomerName,
		MethodRef:   settings.QuickBooksDepositRef,
		Amount:      entry.Amount,
	})
}

func (uc *EntryUseCase) audit(ctx context.Context, action domain.AuditAction, resourceType, resourceID string, before, after any) {
	writeAudit(ctx, uc.auditRepo, uc.idGen, uc.metrics, action, resourceType, resourceID, before, after)
}
