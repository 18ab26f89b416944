package types

import "time"

// PlanCatalogEntry is one sellable plan as declared by the catalog provider.
// Entries are constructed at resolve time and never mutated by the core.
type PlanCatalogEntry struct {
	PlanID        string           `json:"plan_id" validate:"required"`
	Category      PlanCategory     `json:"category,omitempty"`
	BillingType   BillingType      `json:"billing_type,omitempty"`
	BillingCycles []RecurringCycle `json:"billing_cycles,omitempty"`
	PricingModel  PricingModel     `json:"pricing_model,omitempty"`

	// CreemProductIDs maps an upstream cycle/key string to the external
	// product identifier sold under this plan. Lookup by product id is a
	// value-membership test; the key names are not interpreted.
	CreemProductIDs map[string]string `json:"creem_product_ids,omitempty"`

	ContactURL  string         `json:"contact_url,omitempty"`
	Recommended bool           `json:"recommended,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// PlanCatalog is the full set of sellable plans plus an optional fallback
// default. Version is opaque to the core and passed through for caller-side
// cache invalidation.
type PlanCatalog struct {
	Version       string             `json:"version,omitempty"`
	Plans         []PlanCatalogEntry `json:"plans" validate:"required,dive"`
	DefaultPlanID string             `json:"default_plan_id,omitempty"`
}

// SubscriptionSnapshot is a read-only projection of persisted subscription
// state, produced by the persistence collaborator. The core never mutates it
// and performs no deduplication: the collaborator guarantees at most one
// current subscription per customer.
type SubscriptionSnapshot struct {
	ID                string             `json:"id"`
	ProductID         string             `json:"product_id,omitempty"`
	Status            SubscriptionStatus `json:"status"`
	RecurringInterval string             `json:"recurring_interval,omitempty"`
	Seats             *int               `json:"seats,omitempty"`
	CancelAtPeriodEnd bool               `json:"cancel_at_period_end,omitempty"`
	CurrentPeriodEnd  *time.Time         `json:"current_period_end,omitempty"`
	TrialEnd          *time.Time         `json:"trial_end,omitempty"`
}

// PaymentSnapshot is a read-only projection of a one-time payment, produced
// by the persistence/webhook collaborator.
type PaymentSnapshot struct {
	Status     PaymentStatus `json:"status"`
	CheckoutID string        `json:"checkout_id,omitempty"`
	OrderID    string        `json:"order_id,omitempty"`
	CustomerID string        `json:"customer_id,omitempty"`
	ProductID  string        `json:"product_id,omitempty"`
	RequestID  string        `json:"request_id,omitempty"`
}

// BillingResolverInput is the sole input of the snapshot resolver. Every
// field is optional; the zero value is a valid input that resolves to a
// conservative snapshot.
type BillingResolverInput struct {
	Catalog             *PlanCatalog           `json:"catalog,omitempty"`
	CurrentSubscription *SubscriptionSnapshot  `json:"current_subscription,omitempty"`
	AllSubscriptions    []SubscriptionSnapshot `json:"all_subscriptions,omitempty"`
	Payment             *PaymentSnapshot       `json:"payment,omitempty"`
	UserContext         map[string]any         `json:"user_context,omitempty"`

	// Now overrides the resolution timestamp for deterministic tests.
	Now *time.Time `json:"now,omitempty"`
}

// SnapshotMetadata is the free-form bag carried on every BillingSnapshot.
type SnapshotMetadata struct {
	CancelAtPeriodEnd bool           `json:"cancel_at_period_end"`
	CurrentPeriodEnd  *time.Time     `json:"current_period_end,omitempty"`
	UserContext       map[string]any `json:"user_context,omitempty"`
}

// BillingSnapshot is the immutable output of the resolver: which abstract
// plan is active, how it bills, and exactly which actions the caller may
// present to the user.
type BillingSnapshot struct {
	ResolvedAt             time.Time          `json:"resolved_at"`
	CatalogVersion         string             `json:"catalog_version,omitempty"`
	ActivePlanID           string             `json:"active_plan_id,omitempty"`
	ActiveCategory         PlanCategory       `json:"active_category"`
	BillingType            BillingType        `json:"billing_type"`
	RecurringCycle         *RecurringCycle    `json:"recurring_cycle,omitempty"`
	AvailableBillingCycles []RecurringCycle   `json:"available_billing_cycles"`
	SubscriptionState      SubscriptionStatus `json:"subscription_state,omitempty"`
	Seats                  *int               `json:"seats,omitempty"`
	Payment                *PaymentSnapshot   `json:"payment,omitempty"`
	AvailableActions       []AvailableAction  `json:"available_actions"`
	Metadata               SnapshotMetadata   `json:"metadata"`
}

// CheckoutSuccessParams carries the identifiers Creem appends to the
// checkout success redirect URL.
type CheckoutSuccessParams struct {
	CheckoutID string `json:"checkout_id,omitempty"`
	OrderID    string `json:"order_id,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
	ProductID  string `json:"product_id,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	Signature  string `json:"signature,omitempty"`
}
