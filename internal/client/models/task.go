package models

import (
	"fmt"

	"github.com/plantkeeper/plantkeeper/internal/common"
	"github.com/plantkeeper/plantkeeper/internal/timex"
)

// TaskType classifies a care task.
type TaskType string

const (
	TaskTypeWatering    TaskType = "watering"
	TaskTypeFertilizing TaskType = "fertilizing"
	TaskTypePruning     TaskType = "pruning"
	TaskTypeRepotting   TaskType = "repotting"
	TaskTypeOther       TaskType = "other"
)

// TaskTypes lists the valid types in display order.
func TaskTypes() []TaskType {
	return []TaskType{TaskTypeWatering, TaskTypeFertilizing, TaskTypePruning, TaskTypeRepotting, TaskTypeOther}
}

func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeWatering, TaskTypeFertilizing, TaskTypePruning, TaskTypeRepotting, TaskTypeOther:
		return true
	}
	return false
}

// Label returns the human-readable name shown in the UI.
func (t TaskType) Label() string {
	switch t {
	case TaskTypeWatering:
		return "Watering"
	case TaskTypeFertilizing:
		return "Fertilizing"
	case TaskTypePruning:
		return "Pruning"
	case TaskTypeRepotting:
		return "Repotting"
	case TaskTypeOther:
		return "Other"
	}
	return string(t)
}

// Priority orders tasks; lower values sort first.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	}
	return "Unset"
}

// CareTask is a scheduled or completed maintenance action tied to a plant.
type CareTask struct {
	ID          int        `json:"id"`
	PlantID     int        `json:"plantId,omitempty"`
	TaskType    TaskType   `json:"taskType"`
	Description string     `json:"description"`
	DueDate     timex.Date `json:"dueDate"`
	Priority    Priority   `json:"priority"`
	Completed   bool       `json:"completed"`
}

// NewCareTask is the creation payload for POST .../tasks.
type NewCareTask struct {
	TaskType    TaskType   `json:"taskType"`
	Description string     `json:"description"`
	DueDate     timex.Date `json:"dueDate"`
	Priority    Priority   `json:"priority"`
}

// Validate checks the payload against the submission rules: a known type, a
// description, and a due date no earlier than today.
func (t NewCareTask) Validate(today timex.Date) error {
	if !t.TaskType.Valid() {
		return fmt.Errorf("%w: unknown task type %q", common.ErrValidation, t.TaskType)
	}
	if t.Description == "" {
		return fmt.Errorf("%w: description is required", common.ErrValidation)
	}
	if t.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is required", common.ErrValidation)
	}
	if t.DueDate.Before(today) {
		return fmt.Errorf("%w: due date cannot be in the past", common.ErrValidation)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: priority must be 1, 2 or 3", common.ErrValidation)
	}
	return nil
}
