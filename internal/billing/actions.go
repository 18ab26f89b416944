package billing

import "paystate/internal/types"

// BuildActions computes the set of actions the caller may present to the
// user, returned as a deduplicated list in deterministic insertion order.
//
// The first three branches short-circuit: enterprise and one-time flows are
// mutually exclusive with the subscription-lifecycle vocabulary, and mixing
// them would let a UI offer e.g. "cancel" on a contact-sales-only plan.
func BuildActions(in types.BillingResolverInput, plan *types.PlanCatalogEntry, billingType types.BillingType) []types.AvailableAction {
	if plan != nil && plan.Category == types.CategoryEnterprise {
		return []types.AvailableAction{types.ActionContactSales}
	}

	if billingType == types.BillingOneTime {
		return []types.AvailableAction{types.ActionCheckout}
	}

	sub := in.CurrentSubscription
	if sub == nil {
		return []types.AvailableAction{types.ActionCheckout}
	}

	// A non-enterprise subscription exists. Portal is always on the table;
	// the lifecycle actions are added independently of one another.
	actions := []types.AvailableAction{types.ActionPortal}

	switch sub.Status {
	case types.SubStatusActive, types.SubStatusTrialing, types.SubStatusScheduledCancel:
		actions = append(actions, types.ActionCancel)
	}

	// A scheduled cancellation is still reversible up to period end, so
	// scheduled_cancel carries both cancel and reactivate.
	switch sub.Status {
	case types.SubStatusCanceled, types.SubStatusScheduledCancel:
		actions = append(actions, types.ActionReactivate)
	}

	if plan != nil && len(plan.BillingCycles) > 1 {
		actions = append(actions, types.ActionSwitchInterval)
	}

	if billingType == types.BillingRecurring {
		seatPriced := plan != nil && plan.PricingModel == types.PricingSeat
		if seatPriced || sub.Seats != nil {
			actions = append(actions, types.ActionUpdateSeats)
		}
	}

	return actions
}
