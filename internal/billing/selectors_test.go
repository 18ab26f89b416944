package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paystate/internal/types"
)

func TestHasBillingAction(t *testing.T) {
	snap := types.BillingSnapshot{
		AvailableActions: []types.AvailableAction{types.ActionPortal, types.ActionCancel},
	}
	assert.True(t, HasBillingAction(snap, types.ActionPortal))
	assert.True(t, HasBillingAction(snap, types.ActionCancel))
	assert.False(t, HasBillingAction(snap, types.ActionCheckout))
	assert.False(t, HasBillingAction(types.BillingSnapshot{}, types.ActionPortal))
}

func TestIsOneTimeBilling(t *testing.T) {
	assert.True(t, IsOneTimeBilling(types.BillingSnapshot{BillingType: types.BillingOneTime}))
	assert.False(t, IsOneTimeBilling(types.BillingSnapshot{BillingType: types.BillingRecurring}))
	assert.False(t, IsOneTimeBilling(types.BillingSnapshot{}))
}

func TestIsEnterpriseBilling(t *testing.T) {
	assert.True(t, IsEnterpriseBilling(types.BillingSnapshot{ActiveCategory: types.CategoryEnterprise}))
	assert.False(t, IsEnterpriseBilling(types.BillingSnapshot{ActiveCategory: types.CategoryPaid}))
}

func TestShouldShowBillingCycleToggle(t *testing.T) {
	multi := []types.RecurringCycle{types.CycleMonthly, types.CycleYearly}

	toggle := types.BillingSnapshot{
		BillingType:            types.BillingRecurring,
		AvailableBillingCycles: multi,
		AvailableActions:       []types.AvailableAction{types.ActionPortal, types.ActionSwitchInterval},
	}
	assert.True(t, ShouldShowBillingCycleToggle(toggle))

	// Multiple cycles but switch_interval suppressed (e.g. enterprise):
	// the toggle must not render.
	suppressed := types.BillingSnapshot{
		BillingType:            types.BillingRecurring,
		AvailableBillingCycles: multi,
		AvailableActions:       []types.AvailableAction{types.ActionContactSales},
	}
	assert.False(t, ShouldShowBillingCycleToggle(suppressed))

	oneCycle := types.BillingSnapshot{
		BillingType:            types.BillingRecurring,
		AvailableBillingCycles: []types.RecurringCycle{types.CycleMonthly},
		AvailableActions:       []types.AvailableAction{types.ActionSwitchInterval},
	}
	assert.False(t, ShouldShowBillingCycleToggle(oneCycle))

	notRecurring := types.BillingSnapshot{
		BillingType:            types.BillingOneTime,
		AvailableBillingCycles: multi,
		AvailableActions:       []types.AvailableAction{types.ActionSwitchInterval},
	}
	assert.False(t, ShouldShowBillingCycleToggle(notRecurring))
}

func TestIsTerminalPaymentStatus(t *testing.T) {
	assert.True(t, IsTerminalPaymentStatus(types.PaymentPaid))
	assert.True(t, IsTerminalPaymentStatus(types.PaymentRefunded))
	assert.True(t, IsTerminalPaymentStatus(types.PaymentPartiallyRefunded))
	assert.False(t, IsTerminalPaymentStatus(types.PaymentPending))
	assert.False(t, IsTerminalPaymentStatus(types.PaymentStatus("")))
}
