// Package billing implements the billing snapshot resolver: given a plan
// catalog, a possibly-absent subscription, and an optional one-time payment
// record, it deterministically computes which plan is active, how it bills,
// and the exact set of actions a UI is permitted to present.
//
// Every function in this package is a pure, total mapping from immutable
// inputs to a freshly constructed output. Unknown upstream enum values
// degrade to the "custom" sentinel instead of raising; a billing UI that
// throws on unexpected data fails unsafely (blocks checkout entirely), while
// degrading hides advanced actions but preserves checkout/portal.
package billing

import "paystate/internal/types"

// NormalizeCycle coerces a raw cycle string into the closed RecurringCycle
// set. Empty input returns nil (no cycle). The four supported literals pass
// through unchanged; any other non-empty string becomes CycleCustom.
func NormalizeCycle(raw string) *types.RecurringCycle {
	if raw == "" {
		return nil
	}
	c := types.RecurringCycle(raw)
	switch c {
	case types.CycleMonthly, types.CycleQuarterly, types.CycleSemiannual, types.CycleYearly:
	default:
		c = types.CycleCustom
	}
	return &c
}

// NormalizeCategory coerces a raw category into the closed PlanCategory set.
// Absent or unrecognized values become CategoryCustom.
func NormalizeCategory(raw types.PlanCategory) types.PlanCategory {
	switch raw {
	case types.CategoryFree, types.CategoryTrial, types.CategoryPaid, types.CategoryEnterprise, types.CategoryCustom:
		return raw
	default:
		return types.CategoryCustom
	}
}

// NormalizeBillingType coerces a raw billing type into the closed BillingType
// set. Absent or unrecognized values become BillingCustom.
func NormalizeBillingType(raw types.BillingType) types.BillingType {
	switch raw {
	case types.BillingRecurring, types.BillingOneTime, types.BillingCustom:
		return raw
	default:
		return types.BillingCustom
	}
}

// NormalizeCatalog returns a structurally new catalog in which every entry's
// category and billing type are members of their closed sets and every
// billing cycle list contains only canonical cycle values. Empty cycle
// strings are dropped from the list entirely; unrecognized non-empty strings
// are kept as CycleCustom.
//
// A nil catalog returns nil: no catalog configured is a valid, silent state,
// not an error. The input is never mutated.
func NormalizeCatalog(catalog *types.PlanCatalog) *types.PlanCatalog {
	if catalog == nil {
		return nil
	}

	out := &types.PlanCatalog{
		Version:       catalog.Version,
		DefaultPlanID: catalog.DefaultPlanID,
	}
	if catalog.Plans != nil {
		out.Plans = make([]types.PlanCatalogEntry, 0, len(catalog.Plans))
	}

	for _, plan := range catalog.Plans {
		entry := plan
		entry.Category = NormalizeCategory(plan.Category)
		entry.BillingType = NormalizeBillingType(plan.BillingType)

		if len(plan.BillingCycles) > 0 {
			cycles := make([]types.RecurringCycle, 0, len(plan.BillingCycles))
			for _, raw := range plan.BillingCycles {
				if c := NormalizeCycle(string(raw)); c != nil {
					cycles = append(cycles, *c)
				}
			}
			entry.BillingCycles = cycles
		}

		out.Plans = append(out.Plans, entry)
	}

	return out
}
