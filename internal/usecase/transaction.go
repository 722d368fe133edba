package usecase

import (
	"context"
	"fmt"
	"log"
)

// Transaction runs a sequence of repository operations and compensates the
// already-executed ones in reverse order when a later operation fails.
type Transaction struct {
	operations    []operation
	compensations []operation
}

type operation struct {
	Name string
	Fn   func(context.Context) error
}

func NewTransaction() *Transaction {
	return &Transaction{}
}

func (t *Transaction) AddOperation(name string, fn func(context.Context) error) {
	t.operations = append(t.operations, operation{name, fn})
}

// AddCompensation registers the undo for the operation added at the same
// position. Operations without a compensation cannot be undone.
func (t *Transaction) AddCompensation(name string, fn func(context.Context) error) {
	t.compensations = append(t.compensations, operation{name, fn})
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, op := range t.operations {
		if err := op.Fn(ctx); err != nil {
			t.rollback(ctx, i)
			return fmt.Errorf("operation '%s' failed: %w (rolled back %d operations)", op.Name, err, i)
		}
	}
	return nil
}

func (t *Transaction) rollback(ctx context.Context, failedAtIndex int) {
	for i := failedAtIndex - 1; i >= 0; i-- {
		if i < len(t.compensations) {
			comp := t.compensations[i]
			if err := comp.Fn(ctx); err != nil {
				log.Printf("WARNING: compensation '%s' failed: %v (inconsistency risk)", comp.Name, err)
			}
		}
	}
}
