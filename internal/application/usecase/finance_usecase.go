package usecase

import (
	"context"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/dto"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
)

// FinanceUseCase transacciones financieras manuales y presupuestos. Las
// transacciones de cascada nacen en ventas, inventario y compras.
type FinanceUseCase struct {
	store storage.TxStore
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(store storage.TxStore) *FinanceUseCase {
	return &FinanceUseCase{store: store}
}

// Transactions lista todas las transacciones.
func (uc *FinanceUseCase) Transactions(ctx context.Context) ([]entity.FinancialTransaction, error) {
	return storage.NewCollections(uc.store).Transactions(ctx)
}

// Budgets lista los presupuestos.
func (uc *FinanceUseCase) Budgets(ctx context.Context) ([]entity.Budget, error) {
	return storage.NewCollections(uc.store).Budgets(ctx)
}

// CreateTransaction registra una transacción manual. Status en blanco
// queda completed: el caso típico es asentar dinero ya movido.
func (uc *FinanceUseCase) CreateTransaction(ctx context.Context, in dto.CreateTransactionRequest) (*entity.FinancialTransaction, error) {
	status := entity.TransactionStatusCompleted
	if in.Status != "" {
		status = entity.TransactionStatus(in.Status)
	}
	date := in.Date
	if date == "" {
		date = today()
	}

	var txn *entity.FinancialTransaction
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		txns, err := col.Transactions(ctx)
		if err != nil {
			return err
		}
		t := entity.FinancialTransaction{
			ID:                newID("txn"),
			Date:              date,
			Type:              entity.TransactionType(in.Type),
			Category:          in.Category,
			Description:       in.Description,
			Amount:            in.Amount,
			Department:        in.Department,
			RelatedEmployeeID: in.RelatedEmployeeID,
			Status:            status,
		}
		txns = append([]entity.FinancialTransaction{t}, txns...)
		if err := col.SaveTransactions(ctx, txns); err != nil {
			return err
		}
		txn = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// UpdateTransaction fusión parcial con transición de estado validada.
func (uc *FinanceUseCase) UpdateTransaction(ctx context.Context, id string, in dto.UpdateTransactionRequest) (*entity.FinancialTransaction, error) {
	var txn *entity.FinancialTransaction
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		txns, err := col.Transactions(ctx)
		if err != nil {
			return err
		}
		idx := -1
		for i := range txns {
			if txns[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrNotFound
		}

		t := &txns[idx]
		if in.Status != nil {
			next := entity.TransactionStatus(*in.Status)
			if !t.Status.CanTransitionTo(next) {
				return domain.ErrInvalidTransition
			}
			t.Status = next
		}
		if in.Category != nil {
			t.Category = *in.Category
		}
		if in.Description != nil {
			t.Description = *in.Description
		}
		if in.Amount != nil {
			t.Amount = *in.Amount
		}
		if in.Department != nil {
			t.Department = *in.Department
		}

		if err := col.SaveTransactions(ctx, txns); err != nil {
			return err
		}
		txn = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}
