package views

import (
	"context"
	"strings"
	"sync"

	"github.com/plantkeeper/plantkeeper/internal/client/api"
	"github.com/plantkeeper/plantkeeper/internal/client/models"
	"github.com/plantkeeper/plantkeeper/internal/logging"
)

// FilterFacts keeps facts whose plant type or text contains the query
// (case-insensitive), ANDed with an optional exact category match. An empty
// query with an empty category returns the input unchanged, in order.
func FilterFacts(facts []models.Fact, query, category string) []models.Fact {
	query = strings.ToLower(query)
	out := make([]models.Fact, 0, len(facts))
	for _, f := range facts {
		if query != "" &&
			!strings.Contains(strings.ToLower(f.PlantType), query) &&
			!strings.Contains(strings.ToLower(f.Fact), query) {
			continue
		}
		if category != "" && f.Category != category {
			continue
		}
		out = append(out, f)
	}
	return out
}

// FactCategories returns the distinct categories in first-seen order, for
// the category filter dropdown.
func FactCategories(facts []models.Fact) []string {
	seen := make(map[string]struct{}, len(facts))
	var out []string
	for _, f := range facts {
		if _, ok := seen[f.Category]; ok {
			continue
		}
		seen[f.Category] = struct{}{}
		out = append(out, f.Category)
	}
	return out
}

// FilterSuppliers keeps suppliers whose name, plant types or description
// contains the query, case-insensitive. Empty query returns the input
// unchanged.
func FilterSuppliers(suppliers []models.Supplier, query string) []models.Supplier {
	query = strings.ToLower(query)
	out := make([]models.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if query != "" &&
			!strings.Contains(strings.ToLower(s.Name), query) &&
			!strings.Contains(strings.ToLower(s.PlantTypes), query) &&
			!strings.Contains(strings.ToLower(s.Description), query) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FactsCatalog is the facts page view model. It is long-lived so the random
// fact survives navigation; re-rolling replaces it, a failed re-roll keeps
// the previous one. Filtering never touches the backend.
type FactsCatalog struct {
	client api.Client
	log    logging.Logger

	mu     sync.Mutex
	facts  []models.Fact
	random *models.Fact
	errMsg string
	loaded bool
}

// FactsSnapshot is the rendered view of the facts page for one filter
// combination.
type FactsSnapshot struct {
	Facts      []models.Fact
	Categories []string
	Random     *models.Fact
	ErrMsg     string
	Loaded     bool
}

func NewFactsCatalog(client api.Client, log logging.Logger) *FactsCatalog {
	return &FactsCatalog{client: client, log: log}
}

// Load fetches the full facts catalog, plus the random fact when none is
// held yet. The random fetch fails silently.
func (c *FactsCatalog) Load(ctx context.Context) {
	facts, err := c.client.ListFacts(ctx)

	c.mu.Lock()
	needRandom := c.random == nil
	if err != nil {
		c.log.Error(ctx, "loading facts failed", "error", err)
		c.errMsg = "Could not load facts."
	} else {
		c.facts = facts
		c.errMsg = ""
		c.loaded = true
	}
	c.mu.Unlock()

	if needRandom {
		c.Reroll(ctx)
	}
}

// Reroll fetches a fresh random fact. On failure the previous fact stays
// displayed; the error is only logged.
func (c *FactsCatalog) Reroll(ctx context.Context) {
	fact, err := c.client.RandomFact(ctx)
	if err != nil {
		c.log.Warn(ctx, "loading random fact failed", "error", err)
		return
	}
	c.mu.Lock()
	c.random = fact
	c.mu.Unlock()
}

// Snapshot filters the catalog locally for the given query and category.
func (c *FactsCatalog) Snapshot(query, category string) FactsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return FactsSnapshot{
		Facts:      FilterFacts(c.facts, query, category),
		Categories: FactCategories(c.facts),
		Random:     c.random,
		ErrMsg:     c.errMsg,
		Loaded:     c.loaded,
	}
}

// SupplierDirectory is the suppliers page view model.
type SupplierDirectory struct {
	client api.Client
	log    logging.Logger

	mu        sync.Mutex
	suppliers []models.Supplier
	errMsg    string
	loaded    bool
}

// SuppliersSnapshot is the rendered view of the suppliers page.
type SuppliersSnapshot struct {
	Suppliers []models.Supplier
	ErrMsg    string
	Loaded    bool
}

func NewSupplierDirectory(client api.Client, log logging.Logger) *SupplierDirectory {
	return &SupplierDirectory{client: client, log: log}
}

func (d *SupplierDirectory) Load(ctx context.Context) {
	suppliers, err := d.client.ListSuppliers(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.log.Error(ctx, "loading suppliers failed", "error", err)
		d.errMsg = "Could not load suppliers."
		return
	}
	d.suppliers = suppliers
	d.errMsg = ""
	d.loaded = true
}

func (d *SupplierDirectory) Snapshot(query string) SuppliersSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return SuppliersSnapshot{
		Suppliers: FilterSuppliers(d.suppliers, query),
		ErrMsg:    d.errMsg,
		Loaded:    d.loaded,
	}
}
