package views

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/plantkeeper/plantkeeper/internal/client/api"
	"github.com/plantkeeper/plantkeeper/internal/client/models"
	"github.com/plantkeeper/plantkeeper/internal/common"
	"github.com/plantkeeper/plantkeeper/internal/logging"
)

// Phase is the detail view's lifecycle state.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseReady   Phase = "ready"
)

// Tab identifies a display tab on the detail page. Pure UI state.
type Tab string

const (
	TabInfo   Tab = "info"
	TabGrowth Tab = "growth"
	TabTasks  Tab = "tasks"
)

// ParseTab maps a raw tab name to a known tab, falling back to info.
func ParseTab(raw string) Tab {
	switch Tab(raw) {
	case TabGrowth:
		return TabGrowth
	case TabTasks:
		return TabTasks
	default:
		return TabInfo
	}
}

// RecordForm holds the raw field values of the growth record entry form.
type RecordForm struct {
	Height    string
	LeafCount string
	Notes     string
}

// Parse validates the form and produces the creation payload. The record
// date is stamped from now, never from user input.
func (f RecordForm) Parse(now time.Time) (models.NewGrowthRecord, error) {
	height, err := strconv.ParseFloat(strings.TrimSpace(f.Height), 64)
	if err != nil {
		return models.NewGrowthRecord{}, fmt.Errorf("%w: height must be a decimal number", common.ErrValidation)
	}
	record := models.NewGrowthRecord{
		Height:     height,
		Notes:      f.Notes,
		RecordDate: now,
	}
	if f.LeafCount != "" {
		leaves, err := strconv.Atoi(strings.TrimSpace(f.LeafCount))
		if err != nil {
			return models.NewGrowthRecord{}, fmt.Errorf("%w: leaf count must be an integer", common.ErrValidation)
		}
		record.LeafCount = &leaves
	}
	if err := record.Validate(); err != nil {
		return models.NewGrowthRecord{}, err
	}
	return record, nil
}

// sortRecordsNewestFirst pins the ordering contract locally: even if the
// backend returned records oldest-first, index 0 is the current measurement.
func sortRecordsNewestFirst(records []models.GrowthRecord) {
	slices.SortStableFunc(records, func(a, b models.GrowthRecord) int {
		return b.RecordDate.Compare(a.RecordDate)
	})
}

// PlantDetail is the view model of one plant's page: the plant itself, its
// growth records and care tasks, and the record/task entry operations.
// Instances are request-scoped.
type PlantDetail struct {
	client api.Client
	guard  *SubmitGuard
	log    logging.Logger
	now    func() time.Time

	mu         sync.Mutex
	phase      Phase
	errMsg     string
	plantID    int
	plant      *models.Plant
	records    []models.GrowthRecord
	recordsErr string
	tasks      []models.CareTask
	tasksErr   string
}

// DetailSnapshot is the rendered view of the detail page.
type DetailSnapshot struct {
	Phase      Phase
	ErrMsg     string
	Plant      *models.Plant
	Records    []models.GrowthRecord
	RecordsErr string
	Pending    []models.CareTask
	Completed  []models.CareTask
	TasksErr   string
	Overdue    int

	// Derived stats, valid when the corresponding Has* flag is set.
	CurrentHeight    float64
	HasCurrentHeight bool
	TotalGrowth      float64
	HasTotalGrowth   bool
	LatestLeafCount  *int
}

func NewPlantDetail(client api.Client, guard *SubmitGuard, log logging.Logger) *PlantDetail {
	return &PlantDetail{client: client, guard: guard, log: log, now: time.Now, phase: PhaseLoading}
}

// Load drives the phase machine: parse the route id (validation failure goes
// straight to the error phase), fetch the plant (failure goes to the error
// phase), then fetch records and tasks independently; their failure leaves
// the page ready with a partial banner.
func (d *PlantDetail) Load(ctx context.Context, rawID string) {
	id, err := ParsePlantID(rawID)
	if err != nil {
		d.fail(fmt.Sprintf("Invalid plant id %q.", rawID))
		return
	}

	plant, err := d.client.GetPlant(ctx, id)
	if err != nil {
		d.log.Error(ctx, "loading plant failed", "plant_id", id, "error", err)
		if errors.Is(err, common.ErrNotFound) {
			d.fail(fmt.Sprintf("Plant %d does not exist or was removed.", id))
		} else {
			d.fail("Could not load the plant. The backend may be unreachable.")
		}
		return
	}

	records, recErr := d.client.ListGrowthRecords(ctx, id)
	if recErr != nil {
		d.log.Warn(ctx, "loading growth records failed", "plant_id", id, "error", recErr)
	}
	sortRecordsNewestFirst(records)

	tasks, taskErr := d.client.ListTasks(ctx, id)
	if taskErr != nil {
		d.log.Warn(ctx, "loading tasks failed", "plant_id", id, "error", taskErr)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.phase = PhaseReady
	d.errMsg = ""
	d.plantID = id
	d.plant = plant
	d.records = records
	d.tasks = tasks
	if recErr != nil {
		d.recordsErr = "Could not load growth records."
	}
	if taskErr != nil {
		d.tasksErr = "Could not load care tasks."
	}
}

func (d *PlantDetail) fail(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.phase = PhaseError
	d.errMsg = msg
}

func (d *PlantDetail) Snapshot() DetailSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := DetailSnapshot{
		Phase:      d.phase,
		ErrMsg:     d.errMsg,
		Plant:      d.plant,
		RecordsErr: d.recordsErr,
		TasksErr:   d.tasksErr,
	}
	snap.Records = make([]models.GrowthRecord, len(d.records))
	copy(snap.Records, d.records)

	pending, completed := Partition(d.tasks)
	snap.Pending = SortPending(pending)
	snap.Completed = completed
	snap.Overdue = CountOverdue(snap.Pending, d.now())

	if len(d.records) > 0 {
		snap.CurrentHeight = d.records[0].Height
		snap.HasCurrentHeight = true
		snap.LatestLeafCount = d.records[0].LeafCount
	}
	if len(d.records) >= 2 {
		snap.TotalGrowth = d.records[0].Height - d.records[len(d.records)-1].Height
		snap.HasTotalGrowth = true
	}
	return snap
}

// AddRecord stamps, validates and posts a growth record, then re-fetches the
// record list in full.
func (d *PlantDetail) AddRecord(ctx context.Context, rawID string, form RecordForm) error {
	id, err := ParsePlantID(rawID)
	if err != nil {
		return err
	}
	record, err := form.Parse(d.now())
	if err != nil {
		return err
	}

	key := fmt.Sprintf("record-create/%d", id)
	if err := d.guard.Begin(key); err != nil {
		return err
	}
	defer d.guard.End(key)

	if _, err := d.client.AddGrowthRecord(ctx, id, record); err != nil {
		return fmt.Errorf("adding growth record: %w", err)
	}

	records, err := d.client.ListGrowthRecords(ctx, id)
	if err != nil {
		return fmt.Errorf("refreshing growth records: %w", err)
	}
	sortRecordsNewestFirst(records)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.records = records
	d.recordsErr = ""
	return nil
}

// AddTask validates and posts a care task, then re-fetches the task list.
func (d *PlantDetail) AddTask(ctx context.Context, rawID string, form TaskForm) error {
	id, err := ParsePlantID(rawID)
	if err != nil {
		return err
	}
	task, err := form.Parse(d.now())
	if err != nil {
		return err
	}

	key := fmt.Sprintf("task-create/%d", id)
	if err := d.guard.Begin(key); err != nil {
		return err
	}
	defer d.guard.End(key)

	if _, err := d.client.CreateTask(ctx, id, task); err != nil {
		return fmt.Errorf("creating task: %w", err)
	}
	return d.refreshTasks(ctx, id)
}

// ToggleTask updates a task's completed flag, then re-fetches the task list.
func (d *PlantDetail) ToggleTask(ctx context.Context, rawID string, taskID int, completed bool) error {
	id, err := ParsePlantID(rawID)
	if err != nil {
		return err
	}
	if _, err := d.client.SetTaskStatus(ctx, id, taskID, completed); err != nil {
		return fmt.Errorf("updating task status: %w", err)
	}
	return d.refreshTasks(ctx, id)
}

func (d *PlantDetail) refreshTasks(ctx context.Context, id int) error {
	tasks, err := d.client.ListTasks(ctx, id)
	if err != nil {
		return fmt.Errorf("refreshing tasks: %w", err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tasks = tasks
	d.tasksErr = ""
	return nil
}
