package billing

import (
	"time"

	"paystate/internal/types"
)

// ResolveBillingSnapshot computes the canonical billing snapshot for the
// given input. It is total: it never panics or errors for any well-typed
// input, including the zero value, which resolves to category custom,
// billing type custom, and the minimal [checkout] action set.
//
// The catalog is threaded explicitly and no state is retained between calls,
// so concurrent resolution across tenants and catalog versions is safe by
// construction.
func ResolveBillingSnapshot(in types.BillingResolverInput) types.BillingSnapshot {
	catalog := NormalizeCatalog(in.Catalog)
	sub := in.CurrentSubscription

	var productID string
	if sub != nil {
		productID = sub.ProductID
	}

	// Product-id match always takes priority over the catalog default.
	activePlan := FindPlanByProductID(catalog, productID)
	if activePlan == nil && catalog != nil && catalog.DefaultPlanID != "" {
		activePlan = FindPlanByID(catalog, catalog.DefaultPlanID)
	}

	billingType := ResolveBillingType(activePlan, in)

	var cycle *types.RecurringCycle
	if sub != nil {
		cycle = NormalizeCycle(sub.RecurringInterval)
	}

	var availableCycles []types.RecurringCycle
	switch {
	case activePlan != nil && len(activePlan.BillingCycles) > 0:
		availableCycles = dedupeCycles(activePlan.BillingCycles)
	case cycle != nil:
		availableCycles = []types.RecurringCycle{*cycle}
	default:
		availableCycles = []types.RecurringCycle{}
	}

	category := types.PlanCategory("")
	if activePlan != nil {
		category = activePlan.Category
	}
	if category == "" {
		category = ClassifyCategoryFromSubscription(sub)
	}

	resolvedAt := time.Now().UTC()
	if in.Now != nil {
		resolvedAt = *in.Now
	}

	snapshot := types.BillingSnapshot{
		ResolvedAt:             resolvedAt,
		ActiveCategory:         category,
		BillingType:            billingType,
		RecurringCycle:         cycle,
		AvailableBillingCycles: availableCycles,
		Payment:                in.Payment,
		AvailableActions:       BuildActions(in, activePlan, billingType),
		Metadata: types.SnapshotMetadata{
			UserContext: in.UserContext,
		},
	}

	if catalog != nil {
		snapshot.CatalogVersion = catalog.Version
	}
	if activePlan != nil {
		snapshot.ActivePlanID = activePlan.PlanID
	}
	if sub != nil {
		snapshot.SubscriptionState = sub.Status
		snapshot.Seats = sub.Seats
		snapshot.Metadata.CancelAtPeriodEnd = sub.CancelAtPeriodEnd
		snapshot.Metadata.CurrentPeriodEnd = sub.CurrentPeriodEnd
	}

	return snapshot
}

// dedupeCycles removes duplicate cycle values while preserving first-seen
// order, so snapshot equality stays deterministic.
func dedupeCycles(cycles []types.RecurringCycle) []types.RecurringCycle {
	seen := make(map[types.RecurringCycle]struct{}, len(cycles))
	out := make([]types.RecurringCycle, 0, len(cycles))
	for _, c := range cycles {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
