package billing

import "paystate/internal/types"

// HasBillingAction reports whether the snapshot permits the given action.
func HasBillingAction(snapshot types.BillingSnapshot, action types.AvailableAction) bool {
	for _, a := range snapshot.AvailableActions {
		if a == action {
			return true
		}
	}
	return false
}

// IsOneTimeBilling reports whether the snapshot describes a one-time purchase.
func IsOneTimeBilling(snapshot types.BillingSnapshot) bool {
	return snapshot.BillingType == types.BillingOneTime
}

// IsEnterpriseBilling reports whether the active plan is an enterprise plan.
func IsEnterpriseBilling(snapshot types.BillingSnapshot) bool {
	return snapshot.ActiveCategory == types.CategoryEnterprise
}

// ShouldShowBillingCycleToggle reports whether a cycle toggle should render.
// All three conditions are required: a plan can list multiple cycles yet have
// switch_interval suppressed by the action builder, and the toggle must not
// render in that case.
func ShouldShowBillingCycleToggle(snapshot types.BillingSnapshot) bool {
	return snapshot.BillingType == types.BillingRecurring &&
		len(snapshot.AvailableBillingCycles) > 1 &&
		HasBillingAction(snapshot, types.ActionSwitchInterval)
}

// IsTerminalPaymentStatus reports whether a one-time payment has reached a
// state it will not leave. Only pending is non-terminal.
func IsTerminalPaymentStatus(status types.PaymentStatus) bool {
	switch status {
	case types.PaymentPaid, types.PaymentRefunded, types.PaymentPartiallyRefunded:
		return true
	default:
		return false
	}
}
