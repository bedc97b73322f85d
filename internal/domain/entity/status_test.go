package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/domain/entity"
)

func TestSaleStatus_Transiciones(t *testing.T) {
	// pending puede completarse o cancelarse
	assert.True(t, entity.SaleStatusPending.CanTransitionTo(entity.SaleStatusCompleted))
	assert.True(t, entity.SaleStatusPending.CanTransitionTo(entity.SaleStatusCancelled))

	// completed y cancelled son terminales
	assert.False(t, entity.SaleStatusCompleted.CanTransitionTo(entity.SaleStatusPending))
	assert.False(t, entity.SaleStatusCompleted.CanTransitionTo(entity.SaleStatusCancelled))
	assert.False(t, entity.SaleStatusCancelled.CanTransitionTo(entity.SaleStatusCompleted))

	// la transición identidad siempre es válida
	assert.True(t, entity.SaleStatusCompleted.CanTransitionTo(entity.SaleStatusCompleted))
}

func TestPurchaseOrderStatus_Transiciones(t *testing.T) {
	assert.True(t, entity.PurchaseOrderPending.CanTransitionTo(entity.PurchaseOrderReceived))
	assert.True(t, entity.PurchaseOrderPending.CanTransitionTo(entity.PurchaseOrderCancelled))

	assert.False(t, entity.PurchaseOrderReceived.CanTransitionTo(entity.PurchaseOrderPending))
	assert.False(t, entity.PurchaseOrderReceived.CanTransitionTo(entity.PurchaseOrderCancelled))
	assert.False(t, entity.PurchaseOrderCancelled.CanTransitionTo(entity.PurchaseOrderReceived))
}

func TestVacationStatus_Transiciones(t *testing.T) {
	assert.True(t, entity.VacationStatusPending.CanTransitionTo(entity.VacationStatusApproved))
	assert.True(t, entity.VacationStatusPending.CanTransitionTo(entity.VacationStatusRejected))

	assert.False(t, entity.VacationStatusApproved.CanTransitionTo(entity.VacationStatusRejected))
	assert.False(t, entity.VacationStatusRejected.CanTransitionTo(entity.VacationStatusApproved))
	assert.False(t, entity.VacationStatusApproved.CanTransitionTo(entity.VacationStatusPending))
}

func TestPayrollStatus_Transiciones(t *testing.T) {
	// flujo completo pending -> processing -> paid
	assert.True(t, entity.PayrollStatusPending.CanTransitionTo(entity.PayrollStatusProcessing))
	assert.True(t, entity.PayrollStatusProcessing.CanTransitionTo(entity.PayrollStatusPaid))
	// saltar processing también es válido
	assert.True(t, entity.PayrollStatusPending.CanTransitionTo(entity.PayrollStatusPaid))

	// sin retrocesos
	assert.False(t, entity.PayrollStatusPaid.CanTransitionTo(entity.PayrollStatusPending))
	assert.False(t, entity.PayrollStatusPaid.CanTransitionTo(entity.PayrollStatusProcessing))
	assert.False(t, entity.PayrollStatusProcessing.CanTransitionTo(entity.PayrollStatusPending))
}

func TestTransactionStatus_Transiciones(t *testing.T) {
	assert.True(t, entity.TransactionStatusPending.CanTransitionTo(entity.TransactionStatusCompleted))
	assert.False(t, entity.TransactionStatusCompleted.CanTransitionTo(entity.TransactionStatusPending))
}

func TestTiposValidos(t *testing.T) {
	assert.True(t, entity.AttendanceEntrada.Valid())
	assert.False(t, entity.AttendanceType("almuerzo").Valid())

	assert.True(t, entity.MovementAjuste.Valid())
	assert.False(t, entity.MovementType("traslado").Valid())

	assert.True(t, entity.VacationTypeMaternity.Valid())
	assert.False(t, entity.VacationType("feriado").Valid())
}
