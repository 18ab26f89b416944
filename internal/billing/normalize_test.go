package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paystate/internal/types"
)

func TestNormalizeCycle_Nil(t *testing.T) {
	if got := NormalizeCycle(""); got != nil {
		t.Fatalf("NormalizeCycle(\"\") = %v, want nil", *got)
	}
}

func TestNormalizeCycle_SupportedLiteralsPassThrough(t *testing.T) {
	for _, c := range []types.RecurringCycle{
		types.CycleMonthly,
		types.CycleQuarterly,
		types.CycleSemiannual,
		types.CycleYearly,
	} {
		got := NormalizeCycle(string(c))
		require.NotNil(t, got)
		assert.Equal(t, c, *got)
	}
}

func TestNormalizeCycle_UnknownBecomesCustom(t *testing.T) {
	for _, raw := range []string{"weekly", "every-2-years", "custom", "MONTHLY"} {
		got := NormalizeCycle(raw)
		require.NotNil(t, got, "input %q", raw)
		assert.Equal(t, types.CycleCustom, *got, "input %q", raw)
	}
}

func TestNormalizeCategory_Closure(t *testing.T) {
	known := map[types.PlanCategory]bool{
		types.CategoryFree:       true,
		types.CategoryTrial:      true,
		types.CategoryPaid:       true,
		types.CategoryEnterprise: true,
		types.CategoryCustom:     true,
	}
	inputs := []types.PlanCategory{
		"free", "trial", "paid", "enterprise", "custom",
		"", "premium", "FREE", "tier-3",
	}
	for _, in := range inputs {
		out := NormalizeCategory(in)
		assert.True(t, known[out], "NormalizeCategory(%q) = %q escaped the closed set", in, out)
	}
	assert.Equal(t, types.CategoryPaid, NormalizeCategory("paid"))
	assert.Equal(t, types.CategoryCustom, NormalizeCategory(""))
	assert.Equal(t, types.CategoryCustom, NormalizeCategory("premium"))
}

func TestNormalizeBillingType_Closure(t *testing.T) {
	assert.Equal(t, types.BillingRecurring, NormalizeBillingType("recurring"))
	assert.Equal(t, types.BillingOneTime, NormalizeBillingType("onetime"))
	assert.Equal(t, types.BillingCustom, NormalizeBillingType("custom"))
	assert.Equal(t, types.BillingCustom, NormalizeBillingType(""))
	assert.Equal(t, types.BillingCustom, NormalizeBillingType("subscription"))
}

func TestNormalizeCatalog_NilInNilOut(t *testing.T) {
	assert.Nil(t, NormalizeCatalog(nil))
}

func TestNormalizeCatalog_CoercesUnknownEnums(t *testing.T) {
	catalog := &types.PlanCatalog{
		Version: "v3",
		Plans: []types.PlanCatalogEntry{
			{
				PlanID:        "pro",
				Category:      "premium",
				BillingType:   "subscription",
				BillingCycles: []types.RecurringCycle{"every-month", "biweekly", "", "every-year"},
			},
			{
				PlanID: "bare",
			},
		},
		DefaultPlanID: "bare",
	}

	got := NormalizeCatalog(catalog)
	require.NotNil(t, got)
	assert.Equal(t, "v3", got.Version)
	assert.Equal(t, "bare", got.DefaultPlanID)
	require.Len(t, got.Plans, 2)

	pro := got.Plans[0]
	assert.Equal(t, types.CategoryCustom, pro.Category)
	assert.Equal(t, types.BillingCustom, pro.BillingType)
	// Empty cycle strings are dropped; unknown non-empty strings become custom.
	assert.Equal(t, []types.RecurringCycle{
		types.CycleMonthly, types.CycleCustom, types.CycleYearly,
	}, pro.BillingCycles)

	bare := got.Plans[1]
	assert.Equal(t, types.CategoryCustom, bare.Category)
	assert.Equal(t, types.BillingCustom, bare.BillingType)
}

func TestNormalizeCatalog_DoesNotMutateInput(t *testing.T) {
	catalog := &types.PlanCatalog{
		Plans: []types.PlanCatalogEntry{
			{PlanID: "p", Category: "weird", BillingCycles: []types.RecurringCycle{"odd"}},
		},
	}

	_ = NormalizeCatalog(catalog)

	assert.Equal(t, types.PlanCategory("weird"), catalog.Plans[0].Category)
	assert.Equal(t, []types.RecurringCycle{"odd"}, catalog.Plans[0].BillingCycles)
}

func TestNormalizeCatalog_Idempotent(t *testing.T) {
	catalog := &types.PlanCatalog{
		Version: "v1",
		Plans: []types.PlanCatalogEntry{
			{PlanID: "a", Category: "nope", BillingType: "x", BillingCycles: []types.RecurringCycle{"every-month", "huh"}},
			{PlanID: "b", Category: "enterprise", BillingType: "recurring"},
		},
	}

	once := NormalizeCatalog(catalog)
	twice := NormalizeCatalog(once)
	assert.Equal(t, once, twice)
}
