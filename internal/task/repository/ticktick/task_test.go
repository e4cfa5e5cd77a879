package ticktick

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"alice-ticktick/internal/task/repository"
	api "alice-ticktick/pkg/ticktick"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// newTestRepository backs the repository with a fake TickTick server
// serving two projects and counts project-list hits for cache checks.
func newTestRepository(t *testing.T, listCalls *atomic.Int32) repository.TickTickRepository {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/project", func(w http.ResponseWriter, r *http.Request) {
		listCalls.Add(1)
		json.NewEncoder(w).Encode([]api.Project{
			{ID: "p1", Name: "Входящие"},
			{ID: "p2", Name: "Работа"},
		})
	})
	mux.HandleFunc("/project/p1/data", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"project": api.Project{ID: "p1"},
			"tasks": []api.Task{
				{
					ID: "t1", ProjectID: "p1", Title: "купить молоко",
					DueDate: "2026-03-02T19:00:00.000+0300",
					Items:   []api.ChecklistItem{{ID: "i1", Title: "хлеб", Status: 0}},
				},
			},
		})
	})
	mux.HandleFunc("/project/p2/data", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"project": api.Project{ID: "p2"},
			"tasks":   []api.Task{{ID: "t2", ProjectID: "p2", Title: "отчёт", Status: 2}},
		})
	})
	mux.HandleFunc("/task", func(w http.ResponseWriter, r *http.Request) {
		var payload api.TaskPayload
		json.NewDecoder(r.Body).Decode(&payload)
		json.NewEncoder(w).Encode(api.Task{
			ID: "new", ProjectID: payload.ProjectID, ParentID: payload.ParentID,
			Title: payload.Title, DueDate: payload.DueDate,
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, 5*time.Second)
	return New(client, time.Minute, &mockLogger{})
}

func TestListTasksFanOut(t *testing.T) {
	var listCalls atomic.Int32
	repo := newTestRepository(t, &listCalls)

	tasks, err := repo.ListTasks(context.Background(), "token")
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2 across projects", len(tasks))
	}

	byID := map[string]int{}
	for i, task := range tasks {
		byID[task.ID] = i
	}
	milk := tasks[byID["t1"]]
	if milk.DueDate == nil {
		t.Fatal("due date was not parsed")
	}
	if got := milk.DueDate.Format("15:04"); got != "19:00" {
		t.Errorf("due time = %s, want 19:00", got)
	}
	if len(milk.Items) != 1 || milk.Items[0].Title != "хлеб" {
		t.Errorf("checklist items = %+v", milk.Items)
	}
	if report := tasks[byID["t2"]]; report.Active() {
		t.Error("completed task reported as active")
	}
}

func TestListTasksCaching(t *testing.T) {
	var listCalls atomic.Int32
	repo := newTestRepository(t, &listCalls)
	ctx := context.Background()

	if _, err := repo.ListTasks(ctx, "token"); err != nil {
		t.Fatalf("first ListTasks: %v", err)
	}
	if _, err := repo.ListTasks(ctx, "token"); err != nil {
		t.Fatalf("second ListTasks: %v", err)
	}
	if got := listCalls.Load(); got != 1 {
		t.Errorf("project list fetched %d times, want 1 (cached)", got)
	}

	// A different token must not see the first user's cache.
	if _, err := repo.ListTasks(ctx, "other"); err != nil {
		t.Fatalf("other token ListTasks: %v", err)
	}
	if got := listCalls.Load(); got != 2 {
		t.Errorf("project list fetched %d times, want 2", got)
	}
}

func TestCreateTaskInvalidatesCache(t *testing.T) {
	var listCalls atomic.Int32
	repo := newTestRepository(t, &listCalls)
	ctx := context.Background()

	if _, err := repo.ListTasks(ctx, "token"); err != nil {
		t.Fatalf("ListTasks: %v", err)
	}

	created, err := repo.CreateTask(ctx, "token", repository.CreateTaskOptions{
		Title:   "позвонить маме",
		DueDate: "2026-03-03T00:00:00.000+0300",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.Title != "позвонить маме" {
		t.Errorf("created title = %q", created.Title)
	}

	if _, err := repo.ListTasks(ctx, "token"); err != nil {
		t.Fatalf("ListTasks after create: %v", err)
	}
	if got := listCalls.Load(); got != 2 {
		t.Errorf("project list fetched %d times, want 2 (cache invalidated)", got)
	}
}

func TestParseWireTime(t *testing.T) {
	if got := parseWireTime(""); got != nil {
		t.Errorf("empty string parsed to %v", got)
	}
	if got := parseWireTime("not a date"); got != nil {
		t.Errorf("garbage parsed to %v", got)
	}
	if got := parseWireTime("2026-03-02T19:00:00.000+0300"); got == nil || got.Hour() != 19 {
		t.Errorf("wire layout parse = %v", got)
	}
	if got := parseWireTime("2026-03-02T19:00:00+03:00"); got == nil {
		t.Error("RFC3339 fallback failed")
	}
}
