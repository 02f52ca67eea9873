package views

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/plantkeeper/plantkeeper/internal/client/api"
	"github.com/plantkeeper/plantkeeper/internal/client/models"
	"github.com/plantkeeper/plantkeeper/internal/common"
	"github.com/plantkeeper/plantkeeper/internal/logging"
	"github.com/plantkeeper/plantkeeper/internal/timex"
)

// ErrConfirmationRequired is returned by TaskBoard.Delete when the user has
// not confirmed the deletion; no backend call is made in that case.
var ErrConfirmationRequired = errors.New("deletion requires confirmation")

// Partition splits tasks into the pending and completed subsets, preserving
// input order within each.
func Partition(tasks []models.CareTask) (pending, completed []models.CareTask) {
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return pending, completed
}

// SortPending orders tasks by priority (high first) and, within a priority,
// by due date (soonest first). The sort is stable and does not modify the
// input.
func SortPending(tasks []models.CareTask) []models.CareTask {
	sorted := make([]models.CareTask, len(tasks))
	copy(sorted, tasks)
	slices.SortStableFunc(sorted, func(a, b models.CareTask) int {
		if a.Priority != b.Priority {
			return int(a.Priority) - int(b.Priority)
		}
		return a.DueDate.Compare(b.DueDate)
	})
	return sorted
}

// IsOverdue reports whether a due date lies strictly before now. A task due
// exactly now is not overdue.
func IsOverdue(due timex.Date, now time.Time) bool {
	return due.Time().Before(now)
}

// CountOverdue counts the pending tasks whose due date has passed.
func CountOverdue(pending []models.CareTask, now time.Time) int {
	n := 0
	for _, t := range pending {
		if IsOverdue(t.DueDate, now) {
			n++
		}
	}
	return n
}

// TaskForm holds the raw field values of the task entry form, as submitted.
type TaskForm struct {
	TaskType    string
	Description string
	DueDate     string
	Priority    string
}

// Parse validates the form against the current date and produces the
// creation payload. An empty priority defaults to medium.
func (f TaskForm) Parse(now time.Time) (models.NewCareTask, error) {
	task := models.NewCareTask{
		TaskType:    models.TaskType(f.TaskType),
		Description: f.Description,
		Priority:    models.PriorityMedium,
	}
	if f.Priority != "" {
		p, err := strconv.Atoi(f.Priority)
		if err != nil {
			return models.NewCareTask{}, fmt.Errorf("%w: priority must be a number", common.ErrValidation)
		}
		task.Priority = models.Priority(p)
	}
	if f.DueDate != "" {
		due, err := timex.ParseDate(f.DueDate)
		if err != nil {
			return models.NewCareTask{}, fmt.Errorf("%w: due date must be a calendar date", common.ErrValidation)
		}
		task.DueDate = due
	}
	if err := task.Validate(timex.DateOf(now)); err != nil {
		return models.NewCareTask{}, err
	}
	return task, nil
}

// TaskBoard is the standalone per-plant task manager. Instances are
// request-scoped; the SubmitGuard they share is not.
type TaskBoard struct {
	client api.Client
	guard  *SubmitGuard
	log    logging.Logger
	now    func() time.Time

	mu      sync.Mutex
	plantID int
	tasks   []models.CareTask
	errMsg  string
	loaded  bool
}

// TaskBoardSnapshot is the rendered view of a task board: pending tasks
// sorted for display, completed tasks in fetch order, and the counts the
// stats card shows.
type TaskBoardSnapshot struct {
	PlantID   int
	Pending   []models.CareTask
	Completed []models.CareTask
	Overdue   int
	Total     int
	ErrMsg    string
	Loaded    bool
}

func NewTaskBoard(client api.Client, guard *SubmitGuard, log logging.Logger) *TaskBoard {
	return &TaskBoard{client: client, guard: guard, log: log, now: time.Now}
}

// Load parses the route id and fetches the plant's task list. Parse and
// fetch failures both degrade into an error banner rather than failing the
// page.
func (b *TaskBoard) Load(ctx context.Context, rawID string) {
	id, err := ParsePlantID(rawID)
	if err != nil {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.errMsg = "Invalid plant id."
		return
	}

	tasks, err := b.client.ListTasks(ctx, id)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.plantID = id
	if err != nil {
		b.log.Error(ctx, "loading tasks failed", "plant_id", id, "error", err)
		b.errMsg = "Could not load tasks for this plant."
		return
	}
	b.tasks = tasks
	b.errMsg = ""
	b.loaded = true
}

func (b *TaskBoard) Snapshot() TaskBoardSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	pending, completed := Partition(b.tasks)
	pending = SortPending(pending)
	return TaskBoardSnapshot{
		PlantID:   b.plantID,
		Pending:   pending,
		Completed: completed,
		Overdue:   CountOverdue(pending, b.now()),
		Total:     len(b.tasks),
		ErrMsg:    b.errMsg,
		Loaded:    b.loaded,
	}
}

// Create validates the form, posts the task and re-fetches the full list
// before returning.
func (b *TaskBoard) Create(ctx context.Context, rawID string, form TaskForm) error {
	id, err := ParsePlantID(rawID)
	if err != nil {
		return err
	}
	task, err := form.Parse(b.now())
	if err != nil {
		return err
	}

	key := fmt.Sprintf("task-create/%d", id)
	if err := b.guard.Begin(key); err != nil {
		return err
	}
	defer b.guard.End(key)

	if _, err := b.client.CreateTask(ctx, id, task); err != nil {
		return fmt.Errorf("creating task: %w", err)
	}
	b.Load(ctx, rawID)
	return nil
}

// SetStatus toggles a task's completed flag and re-fetches the list.
func (b *TaskBoard) SetStatus(ctx context.Context, rawID string, taskID int, completed bool) error {
	id, err := ParsePlantID(rawID)
	if err != nil {
		return err
	}
	if _, err := b.client.SetTaskStatus(ctx, id, taskID, completed); err != nil {
		return fmt.Errorf("updating task status: %w", err)
	}
	b.Load(ctx, rawID)
	return nil
}

// Delete removes a task after explicit confirmation. Without confirmation no
// DELETE call fires and the list is left unchanged.
func (b *TaskBoard) Delete(ctx context.Context, rawID string, taskID int, confirmed bool) error {
	id, err := ParsePlantID(rawID)
	if err != nil {
		return err
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := b.client.DeleteTask(ctx, id, taskID); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	b.Load(ctx, rawID)
	return nil
}

// Find returns the task with the given id from the last fetch, for the
// confirmation page.
func (b *TaskBoard) Find(taskID int) (models.CareTask, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, t := range b.tasks {
		if t.ID == taskID {
			return t, true
		}
	}
	return models.CareTask{}, false
}
