package api

import (
	"context"

	"github.com/plantkeeper/plantkeeper/internal/client/models"
)

// Client is the UI's contract with the plant backend. One method per REST
// endpoint; mutations return the created or updated entity where the backend
// sends one back.
type Client interface {
	ListPlants(ctx context.Context) ([]models.Plant, error)
	CreatePlant(ctx context.Context, plant models.NewPlant) (*models.Plant, error)
	GetPlant(ctx context.Context, id int) (*models.Plant, error)

	// ListGrowthRecords returns records newest-first (see package doc).
	ListGrowthRecords(ctx context.Context, plantID int) ([]models.GrowthRecord, error)
	AddGrowthRecord(ctx context.Context, plantID int, record models.NewGrowthRecord) (*models.GrowthRecord, error)

	ListTasks(ctx context.Context, plantID int) ([]models.CareTask, error)
	CreateTask(ctx context.Context, plantID int, task models.NewCareTask) (*models.CareTask, error)
	SetTaskStatus(ctx context.Context, plantID, taskID int, completed bool) (*models.CareTask, error)
	DeleteTask(ctx context.Context, plantID, taskID int) error

	ListFacts(ctx context.Context) ([]models.Fact, error)
	RandomFact(ctx context.Context) (*models.Fact, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
}
