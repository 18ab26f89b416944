// Package handlers contains the HTTP handler implementations for the
// paystate API: the server endpoint that wraps the billing snapshot
// resolver, the normalized plan listing, and the checkout-success parser.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paystate/internal/billing"
	"paystate/internal/catalog"
	"paystate/internal/checkout"
	"paystate/internal/core"
	"paystate/internal/types"
)

// BillingHandler serves the billing snapshot resolver over HTTP. The catalog
// provider is optional: without one, requests resolve against whatever
// catalog the caller supplies inline, or none at all.
type BillingHandler struct {
	provider catalog.Provider
	logger   *slog.Logger
}

// NewBillingHandler creates a BillingHandler. provider may be nil.
func NewBillingHandler(provider catalog.Provider, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{
		provider: provider,
		logger:   logger,
	}
}

// RegisterRoutes mounts the billing and checkout endpoints.
func (h *BillingHandler) RegisterRoutes(r chi.Router) {
	r.Route("/billing", func(r chi.Router) {
		r.Post("/snapshot", h.HandleResolveSnapshot)
		r.Get("/plans", h.HandleListPlans)
	})
	r.Get("/checkout/success", h.HandleCheckoutSuccess)
}

// checkoutSuccessResponse is the response body for GET /v1/checkout/success.
type checkoutSuccessResponse struct {
	Params   types.CheckoutSuccessParams `json:"params"`
	Complete bool                        `json:"complete"`
}

// HandleResolveSnapshot resolves a BillingSnapshot for the posted input.
// When the body carries no catalog, the configured provider's catalog is
// injected before resolution. The resolver itself is total, so the only
// failure modes here are a malformed body and a failed catalog fetch.
func (h *BillingHandler) HandleResolveSnapshot(w http.ResponseWriter, r *http.Request) {
	var in types.BillingResolverInput
	if err := core.DecodeJSON(r, &in); err != nil {
		core.Error(w, r, err)
		return
	}

	if in.Catalog == nil && h.provider != nil {
		cat, err := h.provider.Catalog(r.Context())
		if err != nil {
			h.logger.Error("catalog fetch failed",
				"error", err,
				"request_id", types.GetRequestID(r.Context()),
			)
			core.Error(w, r, err)
			return
		}
		in.Catalog = cat
	}

	snapshot := billing.ResolveBillingSnapshot(in)
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: snapshot})
}

// HandleListPlans returns the normalized plan catalog for UI rendering.
func (h *BillingHandler) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		core.Error(w, r, types.NewAppError(types.ErrCodeNotFoundCatalog, "no catalog configured", nil))
		return
	}

	cat, err := h.provider.Catalog(r.Context())
	if err != nil {
		core.Error(w, r, err)
		return
	}
	if cat == nil {
		core.Error(w, r, types.NewAppError(types.ErrCodeNotFoundCatalog, "no catalog configured", nil))
		return
	}

	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: billing.NormalizeCatalog(cat)})
}

// HandleCheckoutSuccess parses the checkout-success redirect query string
// and reports whether it describes a completed checkout. Signature
// verification is the webhook collaborator's job, not this endpoint's.
func (h *BillingHandler) HandleCheckoutSuccess(w http.ResponseWriter, r *http.Request) {
	params := checkout.ParseSuccessParams(r.URL.Query())
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: checkoutSuccessResponse{
		Params:   params,
		Complete: checkout.HasSuccessParams(params),
	}})
}
