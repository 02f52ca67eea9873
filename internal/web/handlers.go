package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/plantkeeper/plantkeeper/internal/client/views"
)

// page is the envelope every template receives.
type page struct {
	Title  string
	Active string
	Flash  string
	Error  string
	Data   any
}

func (s *Server) newPage(c echo.Context, title, active string, data any) page {
	return page{
		Title:  title,
		Active: active,
		Flash:  flashMessage(c.QueryParam("flash")),
		Error:  c.QueryParam("err"),
		Data:   data,
	}
}

// flashMessage maps the post-redirect flash code to its banner text.
// Unknown codes render nothing.
func flashMessage(code string) string {
	switch code {
	case "plant-created":
		return "Plant added to your collection."
	case "record-added":
		return "Growth record saved."
	case "task-created":
		return "Care task created."
	case "task-updated":
		return "Task status updated."
	case "task-deleted":
		return "Task deleted."
	default:
		return ""
	}
}

func redirectWith(c echo.Context, path string, params url.Values) error {
	target := path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	return c.Redirect(http.StatusSeeOther, target)
}

func (s *Server) handlePlantList(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("demo") == "1" {
		s.plants.UseDemoData()
		return c.Redirect(http.StatusSeeOther, "/plants")
	}

	// Demo mode sticks until the user explicitly retries the backend.
	if c.QueryParam("retry") == "1" || !s.plants.DemoMode() {
		s.plants.Load(ctx)
	}

	snap := s.plants.Snapshot()
	return c.Render(http.StatusOK, "plants.html", s.newPage(c, "My Plants", "plants", snap))
}

type plantFormPage struct {
	Form views.PlantForm
}

func (s *Server) handlePlantNew(c echo.Context) error {
	form := views.NewPlantForm(s.now())
	return c.Render(http.StatusOK, "plant_form.html", s.newPage(c, "Add Plant", "plants", plantFormPage{Form: form}))
}

func (s *Server) handlePlantCreate(c echo.Context) error {
	ctx := c.Request().Context()

	form := views.PlantForm{
		Name:         c.FormValue("name"),
		Species:      c.FormValue("species"),
		PlantingDate: c.FormValue("plantingDate"),
		Description:  c.FormValue("description"),
		ImageURL:     c.FormValue("imageUrl"),
	}
	plant, ok := form.Validate()
	if !ok {
		p := s.newPage(c, "Add Plant", "plants", plantFormPage{Form: form})
		return c.Render(http.StatusUnprocessableEntity, "plant_form.html", p)
	}

	if _, err := s.plants.Create(ctx, plant); err != nil {
		p := s.newPage(c, "Add Plant", "plants", plantFormPage{Form: form})
		p.Error = mutationError(err)
		return c.Render(http.StatusOK, "plant_form.html", p)
	}

	return redirectWith(c, "/plants", url.Values{"flash": {"plant-created"}})
}

type detailPage struct {
	ID    string
	Tab   views.Tab
	Snap  views.DetailSnapshot
	Chart Chart
	Tasks taskListData
}

func (s *Server) handlePlantDetail(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	d := views.NewPlantDetail(s.client, s.guard, s.log)
	d.Load(ctx, id)
	snap := d.Snapshot()

	data := detailPage{
		ID:    id,
		Tab:   views.ParseTab(c.QueryParam("tab")),
		Snap:  snap,
		Chart: BuildChart(views.ChartSeries(snap.Records)),
		Tasks: newTaskListData(id, "detail", snap.Pending, snap.Completed, s.now()),
	}
	title := "Plant"
	if snap.Plant != nil {
		title = snap.Plant.Name
	}
	return c.Render(http.StatusOK, "detail.html", s.newPage(c, title, "plants", data))
}

func (s *Server) handleRecordCreate(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	form := views.RecordForm{
		Height:    c.FormValue("height"),
		LeafCount: c.FormValue("leafCount"),
		Notes:     c.FormValue("notes"),
	}

	d := views.NewPlantDetail(s.client, s.guard, s.log)
	params := url.Values{"tab": {"growth"}}
	if err := d.AddRecord(ctx, id, form); err != nil {
		params.Set("err", mutationError(err))
	} else {
		params.Set("flash", "record-added")
	}
	return redirectWith(c, "/plants/"+id, params)
}

// taskReturnTarget picks the page a task mutation redirects back to. The
// detail page's tasks tab and the standalone board both post here.
func taskReturnTarget(c echo.Context, id string) (path string, params url.Values) {
	if c.FormValue("from") == "detail" {
		return "/plants/" + id, url.Values{"tab": {"tasks"}}
	}
	return "/plants/" + id + "/tasks", url.Values{}
}

func (s *Server) handleTaskCreate(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	form := views.TaskForm{
		TaskType:    c.FormValue("taskType"),
		Description: c.FormValue("description"),
		DueDate:     c.FormValue("dueDate"),
		Priority:    c.FormValue("priority"),
	}

	board := views.NewTaskBoard(s.client, s.guard, s.log)
	path, params := taskReturnTarget(c, id)
	if err := board.Create(ctx, id, form); err != nil {
		params.Set("err", mutationError(err))
	} else {
		params.Set("flash", "task-created")
	}
	return redirectWith(c, path, params)
}

func (s *Server) handleTaskStatus(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	path, params := taskReturnTarget(c, id)
	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		params.Set("err", "Invalid task id.")
		return redirectWith(c, path, params)
	}
	completed := c.FormValue("completed") == "true"

	board := views.NewTaskBoard(s.client, s.guard, s.log)
	if err := board.SetStatus(ctx, id, taskID, completed); err != nil {
		params.Set("err", mutationError(err))
	} else {
		params.Set("flash", "task-updated")
	}
	return redirectWith(c, path, params)
}

type taskBoardPage struct {
	ID    string
	Snap  views.TaskBoardSnapshot
	Tasks taskListData
}

func (s *Server) handleTaskBoard(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	board := views.NewTaskBoard(s.client, s.guard, s.log)
	board.Load(ctx, id)

	snap := board.Snapshot()
	data := taskBoardPage{
		ID:    id,
		Snap:  snap,
		Tasks: newTaskListData(id, "board", snap.Pending, snap.Completed, s.now()),
	}
	return c.Render(http.StatusOK, "tasks.html", s.newPage(c, "Care Tasks", "plants", data))
}

type taskConfirmPage struct {
	ID   string
	Task taskConfirmView
}

type taskConfirmView struct {
	ID          int
	Label       string
	Description string
	DueDate     string
}

func (s *Server) handleTaskDeleteConfirm(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		return redirectWith(c, "/plants/"+id+"/tasks", url.Values{"err": {"Invalid task id."}})
	}

	board := views.NewTaskBoard(s.client, s.guard, s.log)
	board.Load(ctx, id)
	task, ok := board.Find(taskID)
	if !ok {
		return redirectWith(c, "/plants/"+id+"/tasks", url.Values{"err": {"That task no longer exists."}})
	}

	data := taskConfirmPage{
		ID: id,
		Task: taskConfirmView{
			ID:          task.ID,
			Label:       task.TaskType.Label(),
			Description: task.Description,
			DueDate:     task.DueDate.String(),
		},
	}
	return c.Render(http.StatusOK, "task_confirm.html", s.newPage(c, "Delete Task", "plants", data))
}

func (s *Server) handleTaskDelete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		return redirectWith(c, "/plants/"+id+"/tasks", url.Values{"err": {"Invalid task id."}})
	}
	confirmed := c.FormValue("confirmed") == "true"

	board := views.NewTaskBoard(s.client, s.guard, s.log)
	if err := board.Delete(ctx, id, taskID, confirmed); err != nil {
		if errors.Is(err, views.ErrConfirmationRequired) {
			return c.Redirect(http.StatusSeeOther, "/plants/"+id+"/tasks/"+strconv.Itoa(taskID)+"/delete")
		}
		return redirectWith(c, "/plants/"+id+"/tasks", url.Values{"err": {mutationError(err)}})
	}
	return redirectWith(c, "/plants/"+id+"/tasks", url.Values{"flash": {"task-deleted"}})
}

type factsPage struct {
	Query    string
	Category string
	Snap     views.FactsSnapshot
}

func (s *Server) handleFacts(c echo.Context) error {
	ctx := c.Request().Context()
	query := c.QueryParam("q")
	category := c.QueryParam("category")

	if c.QueryParam("reroll") == "1" {
		s.facts.Reroll(ctx)
		params := url.Values{}
		if query != "" {
			params.Set("q", query)
		}
		if category != "" {
			params.Set("category", category)
		}
		return redirectWith(c, "/facts", params)
	}

	s.facts.Load(ctx)
	data := factsPage{Query: query, Category: category, Snap: s.facts.Snapshot(query, category)}
	return c.Render(http.StatusOK, "facts.html", s.newPage(c, "Plant Facts", "facts", data))
}

type suppliersPage struct {
	Query string
	Snap  views.SuppliersSnapshot
}

func (s *Server) handleSuppliers(c echo.Context) error {
	ctx := c.Request().Context()
	query := c.QueryParam("q")

	s.suppliers.Load(ctx)
	data := suppliersPage{Query: query, Snap: s.suppliers.Snapshot(query)}
	return c.Render(http.StatusOK, "suppliers.html", s.newPage(c, "Suppliers", "suppliers", data))
}
