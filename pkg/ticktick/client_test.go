package ticktick_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alice-ticktick/pkg/ticktick"
)

func TestClient(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/project", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode([]ticktick.Project{
			{ID: "inbox", Name: "Inbox"},
			{ID: "p1", Name: "Работа"},
		})
	})

	mux.HandleFunc("/project/p1/data", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"project": ticktick.Project{ID: "p1", Name: "Работа"},
			"tasks": []ticktick.Task{
				{ID: "t1", ProjectID: "p1", Title: "Купить молоко"},
			},
		})
	})

	mux.HandleFunc("/task", func(w http.ResponseWriter, r *http.Request) {
		var payload ticktick.TaskPayload
		json.NewDecoder(r.Body).Decode(&payload)
		json.NewEncoder(w).Encode(ticktick.Task{
			ID:        "t2",
			ProjectID: "inbox",
			Title:     payload.Title,
			DueDate:   payload.DueDate,
		})
	})

	mux.HandleFunc("/task/t1", func(w http.ResponseWriter, r *http.Request) {
		var payload ticktick.TaskPayload
		json.NewDecoder(r.Body).Decode(&payload)
		repeat := ""
		if payload.RepeatFlag != nil {
			repeat = *payload.RepeatFlag
		}
		json.NewEncoder(w).Encode(ticktick.Task{ID: "t1", ProjectID: "p1", Title: "Купить молоко", RepeatFlag: repeat})
	})

	mux.HandleFunc("/project/p1/task/t1/complete", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/project/p1/task/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := ticktick.NewClient(ts.URL, 3*time.Second)
	ctx := context.Background()

	t.Run("GetProjects", func(t *testing.T) {
		projects, err := client.GetProjects(ctx, "test-token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(projects) != 2 || projects[1].Name != "Работа" {
			t.Errorf("unexpected projects: %+v", projects)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		_, err := client.GetProjects(ctx, "bad-token")
		if !errors.Is(err, ticktick.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("GetProjectTasks", func(t *testing.T) {
		tasks, err := client.GetProjectTasks(ctx, "test-token", "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 1 || tasks[0].Title != "Купить молоко" {
			t.Errorf("unexpected tasks: %+v", tasks)
		}
	})

	t.Run("CreateTask", func(t *testing.T) {
		task, err := client.CreateTask(ctx, "test-token", ticktick.TaskPayload{
			Title:   "Позвонить врачу",
			DueDate: "2026-03-02T00:00:00.000+0300",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.ID != "t2" || task.Title != "Позвонить врачу" {
			t.Errorf("unexpected task: %+v", task)
		}
	})

	t.Run("UpdateTask clears recurrence", func(t *testing.T) {
		empty := ""
		task, err := client.UpdateTask(ctx, "test-token", ticktick.TaskPayload{
			ID:         "t1",
			ProjectID:  "p1",
			RepeatFlag: &empty,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.RepeatFlag != "" {
			t.Errorf("expected cleared repeat flag, got %q", task.RepeatFlag)
		}
	})

	t.Run("CompleteTask", func(t *testing.T) {
		if err := client.CompleteTask(ctx, "test-token", "p1", "t1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := client.GetTask(ctx, "test-token", "p1", "missing")
		if !errors.Is(err, ticktick.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
