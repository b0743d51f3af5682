// Package sync contains client synchronization use cases.
package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/application/usecase/expense"
	"github.com/financehub/server/internal/application/usecase/target"
)

// Operation is a closed set of batch sync operations. Only the variants in
// this package satisfy it, so dispatch can match exhaustively.
type Operation interface {
	isOperation()
}

// CreateExpenseOperation creates a new expense from a client-local record.
type CreateExpenseOperation struct {
	ClientID    string
	Title       string
	Amount      int64
	Year        int
	Month       int
	Date        int
	TagIDs      []uuid.UUID
	NewTagNames []string
}

// UpdateExpenseOperation overwrites an expense the client already knows the
// server ID of.
type UpdateExpenseOperation struct {
	ServerID     uuid.UUID
	Title        string
	Amount       int64
	Year         int
	Month        int
	Date         int
	AddTagIDs    []uuid.UUID
	RemoveTagIDs []uuid.UUID
}

// DeleteExpenseOperation deletes an expense by its server ID.
type DeleteExpenseOperation struct {
	ServerID uuid.UUID
}

// CreateTargetOperation creates a budget target from a client-local record.
type CreateTargetOperation struct {
	ClientID string
	TagID    uuid.UUID
	Month    int
	Year     int
	Amount   int64
}

// UpdateTargetOperation overwrites the budgeted amount of a target the client
// already knows the server ID of. Spent counters stay server-maintained.
type UpdateTargetOperation struct {
	ServerID uuid.UUID
	Amount   int64
}

// DeleteTargetOperation deletes a target by its server ID.
type DeleteTargetOperation struct {
	ServerID uuid.UUID
}

func (CreateExpenseOperation) isOperation() {}
func (UpdateExpenseOperation) isOperation() {}
func (DeleteExpenseOperation) isOperation() {}
func (CreateTargetOperation) isOperation() {}
func (UpdateTargetOperation) isOperation() {}
func (DeleteTargetOperation) isOperation() {}

// OperationResult reports the outcome of one batch operation. ClientID maps a
// created record back to the client's local row; ServerID is the server-side
// identity.
type OperationResult struct {
	Success  bool
	ClientID string
	ServerID string
	Error    string
}

// ApplyBatchInput represents the input for a batch sync.
type ApplyBatchInput struct {
	Operations []Operation
}

// ApplyBatchOutput represents the output of a batch sync.
type ApplyBatchOutput struct {
	Results []OperationResult
}

// ApplyBatchUseCase applies a batch of client operations. Each operation runs
// through the regular expense and target use cases so tag counters, target
// spent counters, and graph edges stay consistent; one failing item does not
// abort the rest of the batch.
type ApplyBatchUseCase struct {
	createExpense *expense.CreateExpenseUseCase
	updateExpense *expense.UpdateExpenseUseCase
	deleteExpense *expense.DeleteExpenseUseCase
	createTarget  *target.CreateTargetUseCase
	updateTarget  *target.UpdateTargetUseCase
	deleteTarget  *target.DeleteTargetUseCase
}

// NewApplyBatchUseCase creates a new ApplyBatchUseCase instance.
func NewApplyBatchUseCase(
	createExpense *expense.CreateExpenseUseCase,
	updateExpense *expense.UpdateExpenseUseCase,
	deleteExpense *expense.DeleteExpenseUseCase,
	createTarget *target.CreateTargetUseCase,
	updateTarget *target.UpdateTargetUseCase,
	deleteTarget *target.DeleteTargetUseCase,
) *ApplyBatchUseCase {
	return &ApplyBatchUseCase{
		createExpense: createExpense,
		updateExpense: updateExpense,
		deleteExpense: deleteExpense,
		createTarget:  createTarget,
		updateTarget:  updateTarget,
		deleteTarget:  deleteTarget,
	}
}

// Execute applies the operations in order and collects per-item results.
func (uc *ApplyBatchUseCase) Execute(ctx context.Context, input ApplyBatchInput) (*ApplyBatchOutput, error) {
	results := make([]OperationResult, 0, len(input.Operations))

	for _, op := range input.Operations {
		result, err := uc.apply(ctx, op)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	slog.Info("Batch sync applied", "operations", len(input.Operations))

	return &ApplyBatchOutput{Results: results}, nil
}

// apply dispatches a single operation. A use case error becomes a failed
// result; only an unknown variant is surfaced as an error, since that is a
// programming mistake rather than bad client data.
func (uc *ApplyBatchUseCase) apply(ctx context.Context, op Operation) (OperationResult, error) {
	switch o := op.(type) {
	case CreateExpenseOperation:
		output, err := uc.createExpense.Execute(ctx, expense.CreateExpenseInput{
			Title:          o.Title,
			Amount:         o.Amount,
			Year:           o.Year,
			Month:          o.Month,
			Date:           o.Date,
			ExistingTagIDs: o.TagIDs,
			NewTagNames:    o.NewTagNames,
		})
		if err != nil {
			return OperationResult{ClientID: o.ClientID, Error: err.Error()}, nil
		}
		return OperationResult{
			Success:  true,
			ClientID: o.ClientID,
			ServerID: output.Expense.ID.String(),
		}, nil

	case UpdateExpenseOperation:
		_, err := uc.updateExpense.Execute(ctx, expense.UpdateExpenseInput{
			ExpenseID:         o.ServerID,
			Title:             o.Title,
			Amount:            o.Amount,
			Year:              o.Year,
			Month:             o.Month,
			Date:              o.Date,
			AddExistingTagIDs: o.AddTagIDs,
			RemoveTagIDs:      o.RemoveTagIDs,
		})
		if err != nil {
			return OperationResult{ServerID: o.ServerID.String(), Error: err.Error()}, nil
		}
		return OperationResult{Success: true, ServerID: o.ServerID.String()}, nil

	case DeleteExpenseOperation:
		_, err := uc.deleteExpense.Execute(ctx, expense.DeleteExpenseInput{ExpenseID: o.ServerID})
		if err != nil {
			return OperationResult{ServerID: o.ServerID.String(), Error: err.Error()}, nil
		}
		return OperationResult{Success: true, ServerID: o.ServerID.String()}, nil

	case CreateTargetOperation:
		output, err := uc.createTarget.Execute(ctx, target.CreateTargetInput{
			TagID:  o.TagID,
			Month:  o.Month,
			Year:   o.Year,
			Amount: o.Amount,
		})
		if err != nil {
			return OperationResult{ClientID: o.ClientID, Error: err.Error()}, nil
		}
		return OperationResult{
			Success:  true,
			ClientID: o.ClientID,
			ServerID: output.Target.ID.String(),
		}, nil

	case UpdateTargetOperation:
		_, err := uc.updateTarget.Execute(ctx, target.UpdateTargetInput{
			TargetID: o.ServerID,
			Amount:   o.Amount,
		})
		if err != nil {
			return OperationResult{ServerID: o.ServerID.String(), Error: err.Error()}, nil
		}
		return OperationResult{Success: true, ServerID: o.ServerID.String()}, nil

	case DeleteTargetOperation:
		_, err := uc.deleteTarget.Execute(ctx, target.DeleteTargetInput{TargetID: o.ServerID})
		if err != nil {
			return OperationResult{ServerID: o.ServerID.String(), Error: err.Error()}, nil
		}
		return OperationResult{Success: true, ServerID: o.ServerID.String()}, nil

	default:
		return OperationResult{}, fmt.Errorf("unknown sync operation type %T", op)
	}
}
