package alice

import (
	"fmt"
	"strings"
	"time"

	"alice-ticktick/internal/model"
	"alice-ticktick/pkg/nlp"
)

// All user-facing phrases live here so the dialog reads consistently
// and the texts are easy to review in one place.

const (
	textGreeting = "Привет! Я помогу управлять задачами в TickTick. " +
		"Скажите, например: «добавь задачу купить молоко завтра в семь вечера». " +
		"Чтобы узнать, что я умею, скажите «помощь»."

	textHelp = "Я умею работать с задачами в TickTick. Скажите:\n" +
		"«добавь задачу позвонить маме завтра»,\n" +
		"«какие задачи на сегодня»,\n" +
		"«что просрочено»,\n" +
		"«отметь задачу купить молоко»,\n" +
		"«найди задачу про отчёт»,\n" +
		"«перенеси задачу отчёт на пятницу»,\n" +
		"«удали задачу купить молоко»,\n" +
		"«добавь подзадачу собрать коробки к задаче переезд»,\n" +
		"«добавь хлеб в список покупки»,\n" +
		"«напомни о задаче встреча за полчаса»."

	textNeedAuth = "Чтобы я могла работать с вашими задачами, привяжите " +
		"аккаунт TickTick в настройках навыка в приложении Яндекса."

	textUnknown = "Я не поняла. Скажите «помощь», чтобы узнать, что я умею."

	textError = "Что-то пошло не так, попробуйте ещё раз."

	textTaskNotFound = "Не нашла подходящей задачи."

	textItemNotFound = "Не нашла такого пункта в списке."

	textNameRequired = "Скажите название задачи."

	textNothingToChange = "Не поняла, что нужно изменить."

	textDeleteCancelled = "Хорошо, оставляю."
)

var taskForms = nlp.PluralForms{One: "задача", Few: "задачи", Many: "задач"}

var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

var priorityPhrases = map[nlp.Priority]string{
	nlp.PriorityLow:    "низким приоритетом",
	nlp.PriorityMedium: "средним приоритетом",
	nlp.PriorityHigh:   "высоким приоритетом",
}

// formatDay renders a moment relative to now: "сегодня", "завтра",
// a date, plus the clock time when the moment carries one.
func formatDay(m nlp.Moment, now time.Time) string {
	day := time.Date(m.Time.Year(), m.Time.Month(), m.Time.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var name string
	switch int(day.Sub(today).Hours() / 24) {
	case -1:
		name = "вчера"
	case 0:
		name = "сегодня"
	case 1:
		name = "завтра"
	case 2:
		name = "послезавтра"
	default:
		name = fmt.Sprintf("%d %s", m.Time.Day(), monthsGenitive[m.Time.Month()-1])
		if m.Time.Year() != now.Year() {
			name += fmt.Sprintf(" %d года", m.Time.Year())
		}
	}

	if m.HasClock {
		name += fmt.Sprintf(" в %d:%02d", m.Time.Hour(), m.Time.Minute())
	}
	return name
}

func taskCreatedText(t model.Task, input createdSummary, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Добавила задачу «%s»", t.Title)
	if input.Due != nil {
		b.WriteString(" на " + formatDay(*input.Due, now))
	}
	if input.Recurrence != "" {
		if phrase := nlp.FormatRecurrence(input.Recurrence); phrase != "" {
			b.WriteString(", " + phrase)
		}
	}
	if input.Reminder != "" {
		b.WriteString(", напомню " + nlp.FormatReminder(input.Reminder))
	}
	if input.Priority != nil {
		if phrase, ok := priorityPhrases[*input.Priority]; ok {
			b.WriteString(", с " + phrase)
		}
	}
	b.WriteString(".")
	return b.String()
}

// createdSummary is what the confirmation needs to echo back.
type createdSummary struct {
	Due        *nlp.Moment
	Recurrence string
	Reminder   string
	Priority   *nlp.Priority
}

func taskListText(day nlp.Moment, tasks []model.Task, now time.Time) string {
	dayName := formatDay(day, now)
	if len(tasks) == 0 {
		return fmt.Sprintf("На %s задач нет.", dayName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "На %s %s:\n", dayName, nlp.Pluralize(len(tasks), taskForms))
	writeTaskLines(&b, tasks, now)
	return b.String()
}

func overdueText(tasks []model.Task, now time.Time) string {
	if len(tasks) == 0 {
		return "Просроченных задач нет. Отличная работа!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Просрочено %s:\n", nlp.Pluralize(len(tasks), taskForms))
	writeTaskLines(&b, tasks, now)
	return b.String()
}

func searchResultText(tasks []model.Task, now time.Time) string {
	if len(tasks) == 0 {
		return textTaskNotFound
	}
	if len(tasks) == 1 {
		return fmt.Sprintf("Нашла задачу «%s».", tasks[0].Title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Нашла %s:\n", nlp.Pluralize(len(tasks), taskForms))
	writeTaskLines(&b, tasks, now)
	return b.String()
}

func writeTaskLines(b *strings.Builder, tasks []model.Task, now time.Time) {
	for i, t := range tasks {
		fmt.Fprintf(b, "%d. %s", i+1, t.Title)
		if t.DueDate != nil {
			due := nlp.Moment{Time: t.DueDate.In(now.Location())}
			fmt.Fprintf(b, " — %s", formatDay(due, now))
		}
		if i < len(tasks)-1 {
			b.WriteString("\n")
		}
	}
}

func subtaskListText(parent model.Task, subtasks []model.Task, now time.Time) string {
	if len(subtasks) == 0 {
		return fmt.Sprintf("У задачи «%s» нет подзадач.", parent.Title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "У задачи «%s» %s:\n", parent.Title, nlp.Pluralize(len(subtasks), nlp.PluralForms{
		One: "подзадача", Few: "подзадачи", Many: "подзадач",
	}))
	writeTaskLines(&b, subtasks, now)
	return b.String()
}

func checklistText(t model.Task, items []model.ChecklistItem) string {
	if len(items) == 0 {
		return fmt.Sprintf("В задаче «%s» пока нет списка.", t.Title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Список в задаче «%s»:\n", t.Title)
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s", i+1, it.Title)
		if it.Status != 0 {
			b.WriteString(" — готово")
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
