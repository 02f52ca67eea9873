package views

import (
	"context"
	"sync"
	"time"

	"github.com/plantkeeper/plantkeeper/internal/client/api"
	"github.com/plantkeeper/plantkeeper/internal/client/models"
	"github.com/plantkeeper/plantkeeper/internal/logging"
	"github.com/plantkeeper/plantkeeper/internal/timex"
)

// DemoPlants returns the hard-coded placeholder dataset shown when the
// backend is unreachable. Exactly two plants, never persisted.
func DemoPlants() []models.Plant {
	return []models.Plant{
		{
			ID:           1,
			Name:         "Cherry Tomato",
			Species:      "Tomato",
			PlantingDate: timex.NewDate(2024, time.January, 15),
			Description:  "First try at growing tomatoes",
		},
		{
			ID:           2,
			Name:         "Fragrant Basil",
			Species:      "Basil",
			PlantingDate: timex.NewDate(2024, time.January, 20),
			Description:  "Growing on the kitchen windowsill",
		},
	}
}

// PlantCollection is the plant list view model. It is long-lived: the demo
// mode a user opted into survives navigation until an explicit retry. Safe
// for concurrent use.
type PlantCollection struct {
	client api.Client
	guard  *SubmitGuard
	log    logging.Logger

	mu     sync.Mutex
	gen    uint64 // bumped on every state install; stale fetches are dropped
	plants []models.Plant
	demo   bool
	errMsg string
	loaded bool
}

// PlantListSnapshot is an immutable copy of the collection state for
// rendering.
type PlantListSnapshot struct {
	Plants   []models.Plant
	DemoMode bool
	ErrMsg   string
	Loaded   bool
}

// Empty reports the zero-plants, no-error state that renders the
// create-first-plant call to action.
func (s PlantListSnapshot) Empty() bool {
	return s.Loaded && s.ErrMsg == "" && len(s.Plants) == 0
}

func NewPlantCollection(client api.Client, guard *SubmitGuard, log logging.Logger) *PlantCollection {
	return &PlantCollection{client: client, guard: guard, log: log}
}

// Load fetches the full plant collection (no pagination). On failure the
// previous snapshot stays usable and an error banner is recorded. A load that
// was superseded by a newer load or by UseDemoData is dropped at apply time.
func (c *PlantCollection) Load(ctx context.Context) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	plants, err := c.client.ListPlants(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		c.log.Debug(ctx, "dropping stale plant list result", "gen", gen, "current", c.gen)
		return
	}
	c.loaded = true
	if err != nil {
		c.log.Error(ctx, "loading plants failed", "error", err)
		c.errMsg = "Could not load your plants. The backend may be unreachable."
		return
	}
	c.plants = plants
	c.demo = false
	c.errMsg = ""
}

// UseDemoData replaces the collection with the placeholder dataset and marks
// it as demo. No backend call is made, and any in-flight load is invalidated.
func (c *PlantCollection) UseDemoData() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.plants = DemoPlants()
	c.demo = true
	c.errMsg = "Showing demo data. The backend is unreachable."
	c.loaded = true
}

// DemoMode reports whether the demo dataset is active.
func (c *PlantCollection) DemoMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.demo
}

func (c *PlantCollection) Snapshot() PlantListSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	plants := make([]models.Plant, len(c.plants))
	copy(plants, c.plants)
	return PlantListSnapshot{
		Plants:   plants,
		DemoMode: c.demo,
		ErrMsg:   c.errMsg,
		Loaded:   c.loaded,
	}
}

// Create posts a new plant and re-fetches the collection before returning,
// so the caller always redirects to an up-to-date list. Duplicate
// submissions while one is in flight are refused with common.ErrBusy.
func (c *PlantCollection) Create(ctx context.Context, plant models.NewPlant) (*models.Plant, error) {
	if err := plant.Validate(); err != nil {
		return nil, err
	}
	if err := c.guard.Begin("plant-create"); err != nil {
		return nil, err
	}
	defer c.guard.End("plant-create")

	created, err := c.client.CreatePlant(ctx, plant)
	if err != nil {
		return nil, err
	}
	c.Load(ctx)
	return created, nil
}
