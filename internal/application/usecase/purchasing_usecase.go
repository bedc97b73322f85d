package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/dto"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
)

// PurchasingUseCase órdenes de compra. La recepción de una orden genera
// entradas de inventario por línea y acumula el total en el proveedor, por
// lo que reusa la lógica de movimientos del caso de uso de inventario.
type PurchasingUseCase struct {
	store     storage.TxStore
	inventory *InventoryUseCase
}

// NewPurchasingUseCase construye el caso de uso.
func NewPurchasingUseCase(store storage.TxStore, inventory *InventoryUseCase) *PurchasingUseCase {
	return &PurchasingUseCase{store: store, inventory: inventory}
}

// PurchaseOrders lista todas las órdenes de compra.
func (uc *PurchasingUseCase) PurchaseOrders(ctx context.Context) ([]entity.PurchaseOrder, error) {
	return storage.NewCollections(uc.store).PurchaseOrders(ctx)
}

// CreatePurchaseOrder registra una orden calculando el total desde las
// líneas y agrega la transacción de gasto espejo txn-po-<id>, completada
// solo si la orden nace received.
func (uc *PurchasingUseCase) CreatePurchaseOrder(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*entity.PurchaseOrder, error) {
	status := entity.PurchaseOrderPending
	if in.Status != "" {
		status = entity.PurchaseOrderStatus(in.Status)
	}
	date := in.Date
	if date == "" {
		date = today()
	}

	items := make([]entity.PurchaseOrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, it := range in.Items {
		items = append(items, entity.PurchaseOrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	var order *entity.PurchaseOrder
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		o := entity.PurchaseOrder{
			ID:               newID("po"),
			Supplier:         in.Supplier,
			Date:             date,
			ExpectedDelivery: in.ExpectedDelivery,
			Status:           status,
			Total:            total,
			Items:            items,
		}

		orders, err := col.PurchaseOrders(ctx)
		if err != nil {
			return err
		}
		orders = append([]entity.PurchaseOrder{o}, orders...)
		if err := col.SavePurchaseOrders(ctx, orders); err != nil {
			return err
		}

		txnStatus := entity.TransactionStatusPending
		if status == entity.PurchaseOrderReceived {
			txnStatus = entity.TransactionStatusCompleted
		}
		txns, err := col.Transactions(ctx)
		if err != nil {
			return err
		}
		txn := entity.FinancialTransaction{
			ID:          "txn-po-" + o.ID,
			Date:        date,
			Type:        entity.TransactionExpense,
			Category:    "Compras",
			Description: "Orden de compra a " + o.Supplier,
			Amount:      total,
			Department:  "Operaciones",
			Status:      txnStatus,
		}
		txns = append([]entity.FinancialTransaction{txn}, txns...)
		if err := col.SaveTransactions(ctx, txns); err != nil {
			return err
		}

		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdatePurchaseOrder fusión parcial con transición de estado validada. Al
// pasar de pending a received, en la misma transacción: una entrada de
// inventario por línea (costo cantidad por precio unitario, responsable el
// empleado que recibe), el total acumulado en el proveedor buscado por
// nombre (si no existe se omite sin error) y la transacción espejo marcada
// completed.
func (uc *PurchasingUseCase) UpdatePurchaseOrder(ctx context.Context, id string, in dto.UpdatePurchaseOrderRequest) (*entity.PurchaseOrder, error) {
	var order *entity.PurchaseOrder
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		orders, err := col.PurchaseOrders(ctx)
		if err != nil {
			return err
		}
		idx := -1
		for i := range orders {
			if orders[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrNotFound
		}

		o := &orders[idx]
		received := false
		if in.Status != nil {
			next := entity.PurchaseOrderStatus(*in.Status)
			if !o.Status.CanTransitionTo(next) {
				return domain.ErrInvalidTransition
			}
			received = o.Status == entity.PurchaseOrderPending && next == entity.PurchaseOrderReceived
			o.Status = next
		}
		if in.ExpectedDelivery != nil {
			o.ExpectedDelivery = *in.ExpectedDelivery
		}
		if received && in.ResponsibleID <= 0 {
			return domain.ErrInvalidInput
		}

		if err := col.SavePurchaseOrders(ctx, orders); err != nil {
			return err
		}

		if received {
			for _, item := range o.Items {
				cost := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
				_, err := uc.inventory.RegisterMovementInTx(ctx, col, MovementInput{
					ProductID:   item.ProductID,
					Type:        entity.MovementEntrada,
					Quantity:    item.Quantity,
					Reason:      "Recepción orden de compra " + o.ID,
					Responsible: in.ResponsibleID,
					Cost:        &cost,
					SkipExpense: true,
				})
				if err != nil {
					return err
				}
			}

			suppliers, err := col.Suppliers(ctx)
			if err != nil {
				return err
			}
			for i := range suppliers {
				if suppliers[i].Name == o.Supplier {
					suppliers[i].TotalPurchases = suppliers[i].TotalPurchases.Add(o.Total)
					if err := col.SaveSuppliers(ctx, suppliers); err != nil {
						return err
					}
					break
				}
			}

			txns, err := col.Transactions(ctx)
			if err != nil {
				return err
			}
			txnID := "txn-po-" + o.ID
			for i := range txns {
				if txns[i].ID == txnID {
					txns[i].Status = entity.TransactionStatusCompleted
					if err := col.SaveTransactions(ctx, txns); err != nil {
						return err
					}
					break
				}
			}
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
