package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/dto"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
)

// SalesUseCase clientes y ventas. Una venta completada acumula en el
// cliente y toda venta genera una transacción financiera espejo.
type SalesUseCase struct {
	store storage.TxStore
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(store storage.TxStore) *SalesUseCase {
	return &SalesUseCase{store: store}
}

// Customers lista todos los clientes.
func (uc *SalesUseCase) Customers(ctx context.Context) ([]entity.Customer, error) {
	return storage.NewCollections(uc.store).Customers(ctx)
}

// Sales lista todas las ventas.
func (uc *SalesUseCase) Sales(ctx context.Context) ([]entity.Sale, error) {
	return storage.NewCollections(uc.store).Sales(ctx)
}

// CreateCustomer registra un cliente. Status en blanco arranca en active y
// el acumulado de compras en cero.
func (uc *SalesUseCase) CreateCustomer(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	status := in.Status
	if status == "" {
		status = entity.CustomerStatusActive
	}

	var customer *entity.Customer
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		customers, err := col.Customers(ctx)
		if err != nil {
			return err
		}
		cust := entity.Customer{
			ID:             newID("customer"),
			Name:           in.Name,
			Email:          in.Email,
			Phone:          in.Phone,
			Company:        in.Company,
			Industry:       in.Industry,
			Status:         status,
			AssignedTo:     in.AssignedTo,
			CreatedDate:    today(),
			LastContact:    today(),
			TotalPurchases: decimal.Zero,
		}
		customers = append([]entity.Customer{cust}, customers...)
		if err := col.SaveCustomers(ctx, customers); err != nil {
			return err
		}
		customer = &cust
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomer fusión parcial de un cliente. TotalPurchases no se toca:
// es un acumulador de ventas completadas.
func (uc *SalesUseCase) UpdateCustomer(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*entity.Customer, error) {
	var customer *entity.Customer
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		customers, err := col.Customers(ctx)
		if err != nil {
			return err
		}
		idx := -1
		for i := range customers {
			if customers[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrNotFound
		}

		cust := &customers[idx]
		if in.Name != nil {
			cust.Name = *in.Name
		}
		if in.Email != nil {
			cust.Email = *in.Email
		}
		if in.Phone != nil {
			cust.Phone = *in.Phone
		}
		if in.Company != nil {
			cust.Company = *in.Company
		}
		if in.Industry != nil {
			cust.Industry = *in.Industry
		}
		if in.Status != nil {
			cust.Status = *in.Status
		}
		if in.AssignedTo != nil {
			cust.AssignedTo = *in.AssignedTo
		}
		if in.LastContact != nil {
			cust.LastContact = *in.LastContact
		}

		if err := col.SaveCustomers(ctx, customers); err != nil {
			return err
		}
		customer = cust
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// CreateSale registra una venta validando que el cliente exista. Si la
// venta nace completada acumula el monto en el cliente y actualiza su
// último contacto; en todos los casos agrega la transacción de ingreso
// espejo txn-sale-<id>, completada solo si la venta lo está. Todo ocurre
// en una sola transacción del almacén.
func (uc *SalesUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*entity.Sale, error) {
	status := entity.SaleStatusPending
	if in.Status != "" {
		status = entity.SaleStatus(in.Status)
	}
	date := in.Date
	if date == "" {
		date = today()
	}
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}

	var sale *entity.Sale
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		customers, err := col.Customers(ctx)
		if err != nil {
			return err
		}
		custIdx := -1
		for i := range customers {
			if customers[i].ID == in.CustomerID {
				custIdx = i
				break
			}
		}
		if custIdx < 0 {
			return domain.ErrNotFound
		}

		s := entity.Sale{
			ID:         newID("sale"),
			CustomerID: in.CustomerID,
			EmployeeID: in.EmployeeID,
			Date:       date,
			Amount:     in.Amount,
			Commission: in.Commission,
			Status:     status,
			Product:    in.Product,
			Quantity:   quantity,
		}

		if status == entity.SaleStatusCompleted {
			cust := &customers[custIdx]
			cust.TotalPurchases = cust.TotalPurchases.Add(s.Amount)
			cust.LastContact = s.Date
			if err := col.SaveCustomers(ctx, customers); err != nil {
				return err
			}
		}

		sales, err := col.Sales(ctx)
		if err != nil {
			return err
		}
		sales = append([]entity.Sale{s}, sales...)
		if err := col.SaveSales(ctx, sales); err != nil {
			return err
		}

		txnStatus := entity.TransactionStatusPending
		if status == entity.SaleStatusCompleted {
			txnStatus = entity.TransactionStatusCompleted
		}
		txns, err := col.Transactions(ctx)
		if err != nil {
			return err
		}
		txn := entity.FinancialTransaction{
			ID:                "txn-sale-" + s.ID,
			Date:              s.Date,
			Type:              entity.TransactionIncome,
			Category:          "Ventas",
			Description:       "Venta: " + s.Product,
			Amount:            s.Amount,
			Department:        "Ventas",
			RelatedEmployeeID: s.EmployeeID,
			Status:            txnStatus,
		}
		txns = append([]entity.FinancialTransaction{txn}, txns...)
		if err := col.SaveTransactions(ctx, txns); err != nil {
			return err
		}

		sale = &s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// UpdateSale fusión parcial de una venta con transición de estado
// validada. El monto y el estado se reflejan en la transacción espejo
// (completed solo cuando la venta queda completed). El acumulado del
// cliente no se recalcula retroactivamente.
func (uc *SalesUseCase) UpdateSale(ctx context.Context, id string, in dto.UpdateSaleRequest) (*entity.Sale, error) {
	var sale *entity.Sale
	err := uc.store.RunInTx(ctx, func(tx storage.KVStore) error {
		col := storage.NewCollections(tx)

		sales, err := col.Sales(ctx)
		if err != nil {
			return err
		}
		idx := -1
		for i := range sales {
			if sales[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrNotFound
		}

		s := &sales[idx]
		if in.Status != nil {
			next := entity.SaleStatus(*in.Status)
			if !s.Status.CanTransitionTo(next) {
				return domain.ErrInvalidTransition
			}
			s.Status = next
		}
		if in.Amount != nil {
			s.Amount = *in.Amount
		}
		if in.Commission != nil {
			s.Commission = *in.Commission
		}
		if in.Product != nil {
			s.Product = *in.Product
		}
		if in.Quantity != nil {
			s.Quantity = *in.Quantity
		}

		if err := col.SaveSales(ctx, sales); err != nil {
			return err
		}

		txns, err := col.Transactions(ctx)
		if err != nil {
			return err
		}
		txnID := "txn-sale-" + s.ID
		for i := range txns {
			if txns[i].ID != txnID {
				continue
			}
			txns[i].Amount = s.Amount
			if s.Status == entity.SaleStatusCompleted {
				txns[i].Status = entity.TransactionStatusCompleted
			} else {
				txns[i].Status = entity.TransactionStatusPending
			}
			if err := col.SaveTransactions(ctx, txns); err != nil {
				return err
			}
			break
		}

		sale = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}
