package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"alice-ticktick/internal/model"
	"alice-ticktick/internal/task"
	"alice-ticktick/pkg/nlp"
)

var testScope = model.Scope{
	SessionID:   "s1",
	UserID:      "u1",
	AccessToken: "token",
	Now:         time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("MSK", 3*3600)),
}

func TestCreate(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(repo)

	due := &nlp.Moment{
		Time:     time.Date(2026, 3, 2, 19, 0, 0, 0, time.FixedZone("MSK", 3*3600)),
		HasClock: true,
	}
	high := nlp.PriorityHigh

	out, err := uc.Create(context.Background(), testScope, task.CreateInput{
		Name:       "купить молоко",
		Due:        due,
		Priority:   &high,
		Recurrence: "RRULE:FREQ=DAILY",
		Reminder:   "TRIGGER:-PT30M",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Task.Title != "купить молоко" {
		t.Errorf("created title = %q", out.Task.Title)
	}

	if len(repo.created) != 1 {
		t.Fatalf("created %d tasks, want 1", len(repo.created))
	}
	opt := repo.created[0]
	if opt.DueDate != "2026-03-02T19:00:00.000+0300" {
		t.Errorf("due date = %q", opt.DueDate)
	}
	if opt.Priority != 5 {
		t.Errorf("priority = %d, want 5", opt.Priority)
	}
	if opt.RepeatFlag != "RRULE:FREQ=DAILY" {
		t.Errorf("repeat flag = %q", opt.RepeatFlag)
	}
	if len(opt.Reminders) != 1 || opt.Reminders[0] != "TRIGGER:-PT30M" {
		t.Errorf("reminders = %v", opt.Reminders)
	}
}

func TestCreateRange(t *testing.T) {
	repo := &mockRepository{}
	uc := newTestUseCase(repo)

	msk := time.FixedZone("MSK", 3*3600)
	start := &nlp.Moment{Time: time.Date(2026, 3, 2, 19, 0, 0, 0, msk), HasClock: true}
	end := &nlp.Moment{Time: time.Date(2026, 3, 2, 21, 30, 0, 0, msk), HasClock: true}

	if _, err := uc.Create(context.Background(), testScope, task.CreateInput{
		Name:  "кино",
		Start: start,
		Due:   end,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	opt := repo.created[0]
	if opt.StartDate != "2026-03-02T19:00:00.000+0300" {
		t.Errorf("start date = %q", opt.StartDate)
	}
	if opt.DueDate != "2026-03-02T21:30:00.000+0300" {
		t.Errorf("due date = %q", opt.DueDate)
	}
}

func TestCreateEmptyName(t *testing.T) {
	uc := newTestUseCase(&mockRepository{})

	_, err := uc.Create(context.Background(), testScope, task.CreateInput{Name: "   "})
	if !errors.Is(err, task.ErrNameRequired) {
		t.Errorf("err = %v, want ErrNameRequired", err)
	}
}

func TestCreateRepositoryError(t *testing.T) {
	boom := errors.New("boom")
	uc := newTestUseCase(&mockRepository{err: boom})

	_, err := uc.Create(context.Background(), testScope, task.CreateInput{Name: "дело"})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped repository error", err)
	}
}
