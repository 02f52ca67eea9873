package views

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/plantkeeper/plantkeeper/internal/client/api"
	"github.com/plantkeeper/plantkeeper/internal/client/models"
	"github.com/plantkeeper/plantkeeper/internal/logging"
)

func testLogger(t *testing.T) logging.Logger {
	t.Helper()
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type statusCall struct {
	plantID   int
	taskID    int
	completed bool
}

// fakeClient implements api.Client with preset results and call recording.
// Optional gate channels let tests hold a call open to exercise the
// generation counter and the submit guard.
type fakeClient struct {
	api.Client
	mu sync.Mutex

	plants          []models.Plant
	plantsErr       error
	listPlantsCalls int
	listPlantsGate  chan struct{}

	plant    *models.Plant
	plantErr error

	records    []models.GrowthRecord
	recordsErr error

	tasks         []models.CareTask
	tasksErr      error
	listTaskCalls int

	createdPlants   []models.NewPlant
	createPlantErr  error
	createPlantGate chan struct{}

	addedRecords []models.NewGrowthRecord

	createdTasks  []models.NewCareTask
	createTaskErr error

	statusCalls []statusCall

	deleteCalls []statusCall
	deleteErr   error

	facts     []models.Fact
	factsErr  error
	random    []models.Fact // consumed front-to-back by RandomFact
	randomErr error
	randCalls int

	suppliers    []models.Supplier
	suppliersErr error
}

func (f *fakeClient) ListPlants(ctx context.Context) ([]models.Plant, error) {
	f.mu.Lock()
	f.listPlantsCalls++
	gate := f.listPlantsGate
	plants, err := f.plants, f.plantsErr
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return plants, err
}

func (f *fakeClient) CreatePlant(ctx context.Context, plant models.NewPlant) (*models.Plant, error) {
	f.mu.Lock()
	f.createdPlants = append(f.createdPlants, plant)
	gate := f.createPlantGate
	err := f.createPlantErr
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return &models.Plant{ID: 99, Name: plant.Name, Species: plant.Species, PlantingDate: plant.PlantingDate}, nil
}

func (f *fakeClient) GetPlant(ctx context.Context, id int) (*models.Plant, error) {
	return f.plant, f.plantErr
}

func (f *fakeClient) ListGrowthRecords(ctx context.Context, plantID int) ([]models.GrowthRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.records, f.recordsErr
}

func (f *fakeClient) AddGrowthRecord(ctx context.Context, plantID int, record models.NewGrowthRecord) (*models.GrowthRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addedRecords = append(f.addedRecords, record)
	return &models.GrowthRecord{ID: 77, Height: record.Height, RecordDate: record.RecordDate}, nil
}

func (f *fakeClient) ListTasks(ctx context.Context, plantID int) ([]models.CareTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listTaskCalls++
	return f.tasks, f.tasksErr
}

func (f *fakeClient) CreateTask(ctx context.Context, plantID int, task models.NewCareTask) (*models.CareTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createTaskErr != nil {
		return nil, f.createTaskErr
	}
	f.createdTasks = append(f.createdTasks, task)
	return &models.CareTask{ID: 55, TaskType: task.TaskType, Description: task.Description, DueDate: task.DueDate, Priority: task.Priority}, nil
}

func (f *fakeClient) SetTaskStatus(ctx context.Context, plantID, taskID int, completed bool) (*models.CareTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls = append(f.statusCalls, statusCall{plantID, taskID, completed})
	return &models.CareTask{ID: taskID, Completed: completed}, nil
}

func (f *fakeClient) DeleteTask(ctx context.Context, plantID, taskID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls = append(f.deleteCalls, statusCall{plantID: plantID, taskID: taskID})
	return f.deleteErr
}

func (f *fakeClient) ListFacts(ctx context.Context) ([]models.Fact, error) {
	return f.facts, f.factsErr
}

func (f *fakeClient) RandomFact(ctx context.Context) (*models.Fact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.randCalls++
	if f.randomErr != nil {
		return nil, f.randomErr
	}
	if len(f.random) == 0 {
		return &models.Fact{}, nil
	}
	fact := f.random[0]
	if len(f.random) > 1 {
		f.random = f.random[1:]
	}
	return &fact, nil
}

func (f *fakeClient) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return f.suppliers, f.suppliersErr
}
