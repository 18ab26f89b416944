package billing

import "paystate/internal/types"

// ClassifyCategoryFromSubscription maps a subscription's status to a plan
// category. This is a fallback used only when no catalog plan can be matched
// to the subscription's product id: trialing means trial, the paid-lifecycle
// statuses mean paid, and everything else (including a nil subscription)
// means custom.
func ClassifyCategoryFromSubscription(sub *types.SubscriptionSnapshot) types.PlanCategory {
	if sub == nil {
		return types.CategoryCustom
	}
	switch sub.Status {
	case types.SubStatusTrialing:
		return types.CategoryTrial
	case types.SubStatusActive, types.SubStatusScheduledCancel, types.SubStatusPastDue, types.SubStatusCanceled:
		return types.CategoryPaid
	default:
		return types.CategoryCustom
	}
}

// ResolveBillingType determines how the resolved plan bills. A plan-declared
// billing type (already normalized) always wins over inference, which lets a
// plan explicitly opt out of inference even when both a subscription and a
// catalog entry exist. Without a declared type: a payment record implies
// onetime, a subscription implies recurring, and otherwise the type is
// custom.
func ResolveBillingType(plan *types.PlanCatalogEntry, in types.BillingResolverInput) types.BillingType {
	if plan != nil && plan.BillingType != "" {
		return plan.BillingType
	}
	if in.Payment != nil {
		return types.BillingOneTime
	}
	if in.CurrentSubscription != nil {
		return types.BillingRecurring
	}
	return types.BillingCustom
}
