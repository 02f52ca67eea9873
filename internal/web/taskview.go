package web

import (
	"time"

	"github.com/plantkeeper/plantkeeper/internal/client/models"
	"github.com/plantkeeper/plantkeeper/internal/client/views"
)

// taskRow decorates a pending task with its overdue flag so the template
// stays free of date math.
type taskRow struct {
	models.CareTask
	Overdue bool
}

// taskListData feeds the shared task partials. From records which page the
// mutation forms redirect back to.
type taskListData struct {
	ID        string
	From      string
	Pending   []taskRow
	Completed []models.CareTask
}

func newTaskListData(id, from string, pending, completed []models.CareTask, now time.Time) taskListData {
	rows := make([]taskRow, 0, len(pending))
	for _, t := range pending {
		rows = append(rows, taskRow{CareTask: t, Overdue: views.IsOverdue(t.DueDate, now)})
	}
	return taskListData{ID: id, From: from, Pending: rows, Completed: completed}
}
