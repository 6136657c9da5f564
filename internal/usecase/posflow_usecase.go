package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
)

// POSFlowUseCase drives the step-by-step POS cash-in wizard. Sessions live
// in the flow store until they finish or expire; the cash entry is written
// only when a flow reaches done.
type POSFlowUseCase struct {
	flows     FlowStore
	entryUC   *EntryUseCase
	auditRepo AuditRepository
	idGen     IDGenerator
	metrics   MetricsRecorder
}

// NewPOSFlowUseCase creates a new POSFlowUseCase. metrics may be nil.
func NewPOSFlowUseCase(flows FlowStore, entryUC *EntryUseCase, auditRepo AuditRepository, idGen IDGenerator, metrics MetricsRecorder) *POSFlowUseCase {
	return &POSFlowUseCase{
		flows:     flows,
		entryUC:   entryUC,
		auditRepo: auditRepo,
		idGen:     idGen,
		metrics:   ensureMetrics(metrics),
	}
}

// StartFlow opens a new wizard session at the amount step.
func (uc *POSFlowUseCase) StartFlow(ctx context.Context) (*domain.POSFlow, error) {
	flow := domain.NewPOSFlow(uc.idGen.Generate(), callerID(ctx), time.Now().UTC())

	if err := uc.flows.Save(ctx, flow); err != nil {
		return nil, err
	}

	uc.metrics.FlowStarted()

	return flow, nil
}

// GetFlow fetches a session by ID.
func (uc *POSFlowUseCase) GetFlow(ctx context.Context, id string) (*domain.POSFlow, error) {
	return uc.flows.Get(ctx, id)
}

// AdvanceFlowInput carries an operator action plus the payload fields the
// action consumes. Fields for other steps are ignored.
type AdvanceFlowInput struct {
	Action        domain.FlowAction
	Paid          decimal.Decimal
	InvoiceTotal  decimal.Decimal
	ToDeposit     decimal.Decimal
	ChangeSource  domain.Source
	Category      string
	CustomerName  string
	InvoiceNumber string
	SalesPerson   string
	AllowPartial  bool
}

// AdvanceFlowResult is the state after an action. Split is set once the
// flow has enough data to preview it (confirm step onward); Entry and
// SyncWarning are set only when the flow just finished.
type AdvanceFlowResult struct {
	Flow        *domain.POSFlow
	Split       *domain.Split
	Entry       *domain.CashEntry
	SyncWarning string
}

// AdvanceFlow applies one action to a session. Every transition is
// re-validated server-side; an out-of-order or malformed action leaves the
// stored session untouched.
func (uc *POSFlowUseCase) AdvanceFlow(ctx context.Context, id string, input AdvanceFlowInput) (*AdvanceFlowResult, error) {
	flow, err := uc.flows.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch input.Action {
	case domain.ActionEnterAmount:
		flow.Paid = input.Paid
		flow.InvoiceTotal = input.InvoiceTotal
		flow.AllowPartial = input.AllowPartial
		flow.Category = input.Category
		flow.CustomerName = input.CustomerName
		flow.InvoiceNumber = input.InvoiceNumber
		flow.SalesPerson = input.SalesPerson
	case domain.ActionSetSplit:
		flow.ToDeposit = input.ToDeposit
		flow.ChangeSource = input.ChangeSource
	}

	if err := flow.Transition(input.Action); err != nil {
		return nil, err
	}

	flow.UpdatedAt = time.Now().UTC()

	result := &AdvanceFlowResult{Flow: flow}

	if flow.State == domain.FlowConfirm || flow.State == domain.FlowDone {
		split, err := domain.ComputeSplit(flow.SplitInput())
		if err != nil {
			return nil, err
		}

		result.Split = &split
	}

	if flow.State == domain.FlowDone {
		entryResult, err := uc.commit(ctx, flow)
		if err != nil {
			return nil, err
		}

		result.Entry = entryResult.Entry
		result.SyncWarning = entryResult.SyncWarning

		if err := uc.flows.Delete(ctx, id); err != nil {
			return nil, err
		}

		uc.metrics.FlowFinished("completed")

		return result, nil
	}

	if flow.State == domain.FlowCancelled {
		if err := uc.flows.Delete(ctx, id); err != nil {
			return nil, err
		}

		uc.metrics.FlowFinished("cancelled")

		return result, nil
	}

	if err := uc.flows.Save(ctx, flow); err != nil {
		return nil, err
	}

	return result, nil
}

// CancelFlow abandons a session.
func (uc *POSFlowUseCase) CancelFlow(ctx context.Context, id string) (*domain.POSFlow, error) {
	result, err := uc.AdvanceFlow(ctx, id, AdvanceFlowInput{Action: domain.ActionCancel})
	if err != nil {
		return nil, err
	}

	return result.Flow, nil
}

func (uc *POSFlowUseCase) commit(ctx context.Context, flow *domain.POSFlow) (*EntryResult, error) {
	date := flow.Date

	entryResult, err := uc.entryUC.RecordCashIn(ctx, RecordCashInInput{
		Date:          &date,
		Paid:          flow.Paid,
		InvoiceTotal:  flow.InvoiceTotal,
		ToDeposit:     flow.ToDeposit,
		ChangeSource:  flow.ChangeSource,
		Category:      flow.Category,
		CustomerName:  flow.CustomerName,
		InvoiceNumber: flow.InvoiceNumber,
		AllowPartial:  flow.AllowPartial,
	})
	if err != nil {
		return nil, err
	}

	writeAudit(ctx, uc.auditRepo, uc.idGen, uc.metrics, domain.AuditActionFlowCommit, "flow", flow.ID, nil, flow)

	return entryResult, nil
}
