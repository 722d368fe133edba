package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_RunsOperationsInOrder(t *testing.T) {
	tx := NewTransaction()
	var order []string

	tx.AddOperation("first", func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	tx.AddOperation("second", func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	err := tx.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestTransaction_CompensatesInReverseOrder(t *testing.T) {
	tx := NewTransaction()
	var order []string

	tx.AddOperation("a", func(ctx context.Context) error { return nil })
	tx.AddCompensation("undo a", func(ctx context.Context) error {
		order = append(order, "undo a")
		return nil
	})
	tx.AddOperation("b", func(ctx context.Context) error { return nil })
	tx.AddCompensation("undo b", func(ctx context.Context) error {
		order = append(order, "undo b")
		return nil
	})
	tx.AddOperation("c", func(ctx context.Context) error { return assert.AnError })

	err := tx.Execute(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "operation 'c' failed")
	assert.Equal(t, []string{"undo b", "undo a"}, order)
}

func TestTransaction_FailedOperationIsNotCompensated(t *testing.T) {
	tx := NewTransaction()
	compensated := false

	tx.AddOperation("only", func(ctx context.Context) error { return assert.AnError })
	tx.AddCompensation("undo only", func(ctx context.Context) error {
		compensated = true
		return nil
	})

	err := tx.Execute(context.Background())

	assert.Error(t, err)
	assert.False(t, compensated)
}
