package types

// PlanCategory classifies a catalog plan into the closed set the resolver
// reasons about. Unrecognized upstream values are coerced to CategoryCustom
// rather than rejected.
type PlanCategory string

const (
	CategoryFree       PlanCategory = "free"
	CategoryTrial      PlanCategory = "trial"
	CategoryPaid       PlanCategory = "paid"
	CategoryEnterprise PlanCategory = "enterprise"
	CategoryCustom     PlanCategory = "custom"
)

// BillingType identifies how a plan or subscription bills.
type BillingType string

const (
	BillingRecurring BillingType = "recurring"
	BillingOneTime   BillingType = "onetime"
	BillingCustom    BillingType = "custom"
)

// RecurringCycle is the billing period granularity of a recurring plan.
type RecurringCycle string

const (
	CycleMonthly    RecurringCycle = "every-month"
	CycleQuarterly  RecurringCycle = "every-3-months"
	CycleSemiannual RecurringCycle = "every-6-months"
	CycleYearly     RecurringCycle = "every-year"
	CycleCustom     RecurringCycle = "custom"
)

// PricingModel distinguishes flat-priced plans from seat-priced plans.
type PricingModel string

const (
	PricingFlat PricingModel = "flat"
	PricingSeat PricingModel = "seat"
)

// SubscriptionStatus is the lifecycle state of a subscription as reported by
// the payment provider. It is deliberately an open string type: providers
// introduce new statuses over time, and the resolver only ever performs
// membership tests against the well-known constants below, never exhaustive
// switches.
type SubscriptionStatus string

const (
	SubStatusActive          SubscriptionStatus = "active"
	SubStatusTrialing        SubscriptionStatus = "trialing"
	SubStatusScheduledCancel SubscriptionStatus = "scheduled_cancel"
	SubStatusPastDue         SubscriptionStatus = "past_due"
	SubStatusCanceled        SubscriptionStatus = "canceled"
	SubStatusPaused          SubscriptionStatus = "paused"
	SubStatusUnpaid          SubscriptionStatus = "unpaid"
)

// PaymentStatus is the state of a one-time payment. Unlike subscription
// statuses this set is closed.
type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "pending"
	PaymentPaid              PaymentStatus = "paid"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentPartiallyRefunded PaymentStatus = "partially_refunded"
)

// AvailableAction is one of the fixed vocabulary of next steps a UI is
// permitted to offer the user. The resolver's output is authoritative: the UI
// must not infer additional actions from raw subscription fields.
type AvailableAction string

const (
	ActionCheckout       AvailableAction = "checkout"
	ActionPortal         AvailableAction = "portal"
	ActionCancel         AvailableAction = "cancel"
	ActionReactivate     AvailableAction = "reactivate"
	ActionSwitchInterval AvailableAction = "switch_interval"
	ActionUpdateSeats    AvailableAction = "update_seats"
	ActionContactSales   AvailableAction = "contact_sales"
)
