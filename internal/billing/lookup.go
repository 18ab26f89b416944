package billing

import "paystate/internal/types"

// FindPlanByID returns the first catalog entry whose PlanID matches id, or
// nil when the catalog is absent or contains no match. Catalogs are assumed
// not to contain duplicate plan ids; with duplicates the first listed wins.
func FindPlanByID(catalog *types.PlanCatalog, id string) *types.PlanCatalogEntry {
	if catalog == nil || id == "" {
		return nil
	}
	for i := range catalog.Plans {
		if catalog.Plans[i].PlanID == id {
			return &catalog.Plans[i]
		}
	}
	return nil
}

// FindPlanByProductID returns the first catalog entry whose CreemProductIDs
// value set contains productID, scanning plans in catalog order. The map keys
// are upstream cycle/key strings and are not interpreted here; membership is
// tested across all values. Returns nil when the catalog or product id is
// absent.
//
// Catalogs must not assign one product id to two plans, or the lookup
// becomes order-dependent.
func FindPlanByProductID(catalog *types.PlanCatalog, productID string) *types.PlanCatalogEntry {
	if catalog == nil || productID == "" {
		return nil
	}
	for i := range catalog.Plans {
		for _, pid := range catalog.Plans[i].CreemProductIDs {
			if pid == productID {
				return &catalog.Plans[i]
			}
		}
	}
	return nil
}
