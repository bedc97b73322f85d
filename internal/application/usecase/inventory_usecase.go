package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/dto"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
)

// InventoryUseCase productos, proveedores y movimientos de inventario. El
// stock de un producto solo se muta a través de movimientos.
type InventoryUseCase struct {
	store storage.TxStore
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(store storage.TxStore) *InventoryUseCase {
	return &InventoryUseCase{store: store}
}

// Products lista todos los productos.
func (uc *InventoryUseCase) Products(ctx context.Context) ([]entity.Product, error) {
	return storage.NewCollections(uc.store).Products(ctx)
}

// Suppliers lista todos los proveedores.
func (uc *InventoryUseCase) Suppliers(ctx context.Context) ([]entity.Supplier, error) {
	return storage.NewCollections(uc.store).Suppliers(ctx)
}

// Movements lista los movimientos de inventario.
func (uc *InventoryUseCase) Movements(ctx context.Context) ([]entity.InventoryMovement, error) {
	return storage.NewCollections(uc.store).Movements(ctx)
}

// CreateProduct registra un producto. Con SKU en blanco se genera uno con
// las tres primeras letras de la categoría y un consecutivo sobre el
// tamaño actual del catálogo.
func (uc *InventoryUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	var product *entity.Product
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		products, err := col.Products(ctx)
		if err != nil {
			return err
		}

		sku := in.SKU
		if sku == "" {
			runes := []rune(strings.ToUpper(in.Category))
			if len(runes) > 3 {
				runes = runes[:3]
			}
			sku = fmt.Sprintf("SKU-%s-%04d", string(runes), len(products)+1)
		}

		prod := entity.Product{
			ID:          newID("prod"),
			Name:        in.Name,
			SKU:         sku,
			Category:    in.Category,
			Description: in.Description,
			UnitPrice:   in.UnitPrice,
			Stock:       in.Stock,
			MinStock:    in.MinStock,
			MaxStock:    in.MaxStock,
			Supplier:    in.Supplier,
		}
		if prod.Stock > 0 {
			prod.LastRestockDate = today()
		}

		products = append([]entity.Product{prod}, products...)
		if err := col.SaveProducts(ctx, products); err != nil {
			return err
		}
		product = &prod
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct fusión parcial de un producto. Stock no es editable por
// esta vía.
func (uc *InventoryUseCase) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	var product *entity.Product
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		products, err := col.Products(ctx)
		if err != nil {
			return err
		}
		idx := -1
		for i := range products {
			if products[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrNotFound
		}

		prod := &products[idx]
		if in.Name != nil {
			prod.Name = *in.Name
		}
		if in.Category != nil {
			prod.Category = *in.Category
		}
		if in.Description != nil {
			prod.Description = *in.Description
		}
		if in.UnitPrice != nil {
			prod.UnitPrice = *in.UnitPrice
		}
		if in.MinStock != nil {
			prod.MinStock = *in.MinStock
		}
		if in.MaxStock != nil {
			prod.MaxStock = *in.MaxStock
		}
		if in.Supplier != nil {
			prod.Supplier = *in.Supplier
		}

		if err := col.SaveProducts(ctx, products); err != nil {
			return err
		}
		product = prod
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// CreateSupplier registra un proveedor con acumulado de compras en cero.
func (uc *InventoryUseCase) CreateSupplier(ctx context.Context, in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	status := in.Status
	if status == "" {
		status = "active"
	}

	var supplier *entity.Supplier
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		suppliers, err := col.Suppliers(ctx)
		if err != nil {
			return err
		}
		for i := range suppliers {
			if suppliers[i].Name == in.Name {
				return domain.ErrDuplicate
			}
		}

		sup := entity.Supplier{
			ID:             newID("sup"),
			Name:           in.Name,
			ContactPerson:  in.ContactPerson,
			Email:          in.Email,
			Phone:          in.Phone,
			Category:       in.Category,
			PaymentTerms:   in.PaymentTerms,
			TotalPurchases: decimal.Zero,
			Status:         status,
		}
		suppliers = append([]entity.Supplier{sup}, suppliers...)
		if err := col.SaveSuppliers(ctx, suppliers); err != nil {
			return err
		}
		supplier = &sup
		return nil
	})
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

// UpdateSupplier fusión parcial de un proveedor.
func (uc *InventoryUseCase) UpdateSupplier(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*entity.Supplier, error) {
	var supplier *entity.Supplier
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		suppliers, err := col.Suppliers(ctx)
		if err != nil {
			return err
		}
		idx := -1
		for i := range suppliers {
			if suppliers[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrNotFound
		}

		sup := &suppliers[idx]
		if in.Name != nil {
			sup.Name = *in.Name
		}
		if in.ContactPerson != nil {
			sup.ContactPerson = *in.ContactPerson
		}
		if in.Email != nil {
			sup.Email = *in.Email
		}
		if in.Phone != nil {
			sup.Phone = *in.Phone
		}
		if in.Category != nil {
			sup.Category = *in.Category
		}
		if in.PaymentTerms != nil {
			sup.PaymentTerms = *in.PaymentTerms
		}
		if in.Status != nil {
			sup.Status = *in.Status
		}

		if err := col.SaveSuppliers(ctx, suppliers); err != nil {
			return err
		}
		supplier = sup
		return nil
	})
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

// MovementInput movimiento ya validado, listo para aplicar dentro de una
// transacción. Lo comparte la recepción de órdenes de compra.
type MovementInput struct {
	ProductID   string
	Type        entity.MovementType
	Quantity    int
	Date        string
	Reason      string
	Responsible int
	Cost        *decimal.Decimal
	// SkipExpense omite la transacción de gasto espejo cuando el gasto ya
	// quedó registrado por otra vía (la orden de compra que origina la
	// entrada).
	SkipExpense bool
}

// CreateInventoryMovement aplica un movimiento sobre el stock del producto
// dentro de una transacción del almacén.
func (uc *InventoryUseCase) CreateInventoryMovement(ctx context.Context, in dto.CreateMovementRequest) (*entity.InventoryMovement, error) {
	input := MovementInput{
		ProductID:   in.ProductID,
		Type:        entity.MovementType(in.Type),
		Quantity:    in.Quantity,
		Date:        in.Date,
		Reason:      in.Reason,
		Responsible: in.Responsible,
		Cost:        in.Cost,
	}

	var movement *entity.InventoryMovement
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		mov, err := uc.RegisterMovementInTx(ctx, storage.NewCollections(tx), input)
		if err != nil {
			return err
		}
		movement = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// RegisterMovementInTx aplica el movimiento sobre las colecciones de una
// transacción ya abierta. entrada suma al stock y refresca la fecha de
// reposición; salida resta recortando en cero; ajuste fija el stock
// absoluto. Una entrada con costo agrega la transacción de gasto espejo
// txn-inventory-<id>.
func (uc *InventoryUseCase) RegisterMovementInTx(ctx context.Context, col *storage.Collections, in MovementInput) (*entity.InventoryMovement, error) {
	if !in.Type.Valid() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date == "" {
		date = today()
	}

	products, err := col.Products(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range products {
		if products[i].ID == in.ProductID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	prod := &products[idx]
	switch in.Type {
	case entity.MovementEntrada:
		prod.Stock += in.Quantity
		prod.LastRestockDate = date
	case entity.MovementSalida:
		prod.Stock -= in.Quantity
		if prod.Stock < 0 {
			prod.Stock = 0
		}
	case entity.MovementAjuste:
		prod.Stock = in.Quantity
	}
	if err := col.SaveProducts(ctx, products); err != nil {
		return nil, err
	}

	mov := entity.InventoryMovement{
		ID:          newID("mov"),
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Date:        date,
		Reason:      in.Reason,
		Responsible: in.Responsible,
		Cost:        in.Cost,
	}
	movements, err := col.Movements(ctx)
	if err != nil {
		return nil, err
	}
	movements = append([]entity.InventoryMovement{mov}, movements...)
	if err := col.SaveMovements(ctx, movements); err != nil {
		return nil, err
	}

	if in.Type == entity.MovementEntrada && in.Cost != nil && !in.SkipExpense {
		txns, err := col.Transactions(ctx)
		if err != nil {
			return nil, err
		}
		txn := entity.FinancialTransaction{
			ID:                "txn-inventory-" + mov.ID,
			Date:              date,
			Type:              entity.TransactionExpense,
			Category:          "Inventario",
			Description:       "Compra de inventario: " + in.Reason,
			Amount:            *in.Cost,
			Department:        "Operaciones",
			RelatedEmployeeID: in.Responsible,
			Status:            entity.TransactionStatusCompleted,
		}
		txns = append([]entity.FinancialTransaction{txn}, txns...)
		if err := col.SaveTransactions(ctx, txns); err != nil {
			return nil, err
		}
	}

	return &mov, nil
}
