package demo

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/soda-dev/soda/internal/errors"
	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/soda"
	"github.com/soda-dev/soda/pkg/vdom"
)

// Todo is a single entry of the todo list.
type Todo struct {
	ID      int
	Content string
	Done    bool
}

// DefaultTodos seeds a new todo store.
var DefaultTodos = []Todo{
	{ID: 0, Content: "Write report about Soda", Done: true},
	{ID: 1, Content: "Study", Done: false},
}

// TodoStore holds the todo list outside the component tree. Changes
// re-render the mounted TodoContainer.
type TodoStore struct {
	todos     []Todo
	nextID    int
	container vdom.Ctx
	logger    *slog.Logger
}

// NewTodoStore returns a store holding a copy of todos.
func NewTodoStore(logger *slog.Logger, todos ...Todo) *TodoStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &TodoStore{todos: append([]Todo(nil), todos...), logger: logger}
	for _, t := range todos {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

// Todos returns a copy of the current list.
func (s *TodoStore) Todos() []Todo {
	return append([]Todo(nil), s.todos...)
}

// Add appends a todo. Blank content is ignored.
func (s *TodoStore) Add(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	s.todos = append(s.todos, Todo{ID: s.nextID, Content: content})
	s.nextID++
	return s.refresh()
}

// Toggle flips the done flag of the todo with the given id.
func (s *TodoStore) Toggle(id int) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("todo %d: %w", id, dom.ErrNotFound)
	}
	s.todos[i].Done = !s.todos[i].Done
	return s.refresh()
}

// Remove deletes the todo with the given id.
func (s *TodoStore) Remove(id int) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("todo %d: %w", id, dom.ErrNotFound)
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)
	return s.refresh()
}

func (s *TodoStore) index(id int) int {
	for i, t := range s.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *TodoStore) refresh() error {
	if s.container == nil {
		return nil
	}
	return s.container.Update()
}

// report logs errors raised inside event handlers.
func (s *TodoStore) report(action string, err error) {
	if err != nil {
		s.logger.Error("todo action failed", "action", action, "error", err)
	}
}

func storeOf(c vdom.Ctx) *TodoStore {
	store, _ := c.Attrs()["store"].(*TodoStore)
	if store == nil {
		panic("demo: component rendered without a todo store")
	}
	return store
}

// TodoApp is the root of the todo demo. It expects a "store" attribute
// holding a *TodoStore.
func TodoApp(c vdom.Ctx) *vdom.Element {
	store := storeOf(c)
	return vdom.Div(vdom.ID("app"),
		vdom.H(TodoInput, vdom.Attrs{"store": store}),
		vdom.H(TodoContainer, vdom.Attrs{"store": store}),
	)
}

// TodoInput renders the text field and the add button. The field is read
// and cleared through a ref.
func TodoInput(c vdom.Ctx) *vdom.Element {
	store := storeOf(c)
	input := soda.Ref(c)

	add := func() {
		if input.Node == nil {
			return
		}
		content := input.Node.GetAttribute("value")
		input.Node.RemoveAttribute("value")
		store.report("add", store.Add(content))
	}

	return vdom.Div(vdom.Class("input-bar"),
		vdom.Input(
			vdom.Ref(input),
			vdom.MaxLength(29),
			vdom.Type("text"),
			vdom.Class("input"),
			vdom.Placeholder("Todo..."),
		),
		vdom.Button(vdom.Class("add"), vdom.OnClick(add), "Add todo"),
	)
}

// TodoContainer renders the keyed list of todos and registers itself with
// the store so changes re-render it.
func TodoContainer(c vdom.Ctx) *vdom.Element {
	store := storeOf(c)
	store.container = c

	return vdom.Div(vdom.Class("todos"),
		vdom.Range(store.todos, func(t Todo, _ int) *vdom.Element {
			return vdom.H(TodoItem, vdom.Attrs{"key": t.ID, "todo": t, "store": store})
		}),
	)
}

// TodoItem renders one todo with its done and remove icons.
func TodoItem(c vdom.Ctx) *vdom.Element {
	store := storeOf(c)
	todo, _ := c.Attrs()["todo"].(Todo)

	return vdom.Div(vdom.Class("todo"),
		vdom.H(DoneIcon, vdom.Attrs{"onclick": func() {
			store.report("toggle", store.Toggle(todo.ID))
		}}),
		vdom.H(RemoveIcon, vdom.Attrs{"onclick": func() {
			store.report("remove", store.Remove(todo.ID))
		}}),
		vdom.Span(vdom.Classes("text", map[string]bool{"done": todo.Done}), todo.Content),
	)
}

// DoneIcon is a circled check mark.
func DoneIcon(c vdom.Ctx) *vdom.Element {
	return icon("done-icon", c.Attrs()["onclick"], "M9 12l2 2l4 -4")
}

// RemoveIcon is a circled cross.
func RemoveIcon(c vdom.Ctx) *vdom.Element {
	return icon("remove-icon", c.Attrs()["onclick"], "M10 10l4 4m0 -4l-4 4")
}

func icon(class string, onclick any, mark string) *vdom.Element {
	return vdom.Svg(
		vdom.Class("icon", class),
		vdom.OnClick(onclick),
		vdom.Width(32),
		vdom.Height(32),
		vdom.ViewBox("0 0 24 24"),
		vdom.StrokeWidth(1),
		vdom.Stroke("#000000"),
		vdom.Fill("none"),
		vdom.Attrs{"strokeLinecap": "round", "strokeLinejoin": "round"},
		vdom.Path(vdom.Stroke("none"), vdom.Attr{Key: "d", Value: "M0 0h24v24H0z"}, vdom.Fill("none")),
		vdom.Circle(vdom.Cx(12), vdom.Cy(12), vdom.R(9)),
		vdom.Path(vdom.Attr{Key: "d", Value: mark}),
	)
}

func newTodo() (*vdom.Element, StepFunc) {
	store := NewTodoStore(nil, DefaultTodos...)
	added := 0

	step := func(body *dom.Node, i int) (string, error) {
		switch i % 3 {
		case 0:
			input, err := first(body, "todo input", byTag("input"))
			if err != nil {
				return "", err
			}
			add, err := first(body, "add button", byClass("add"))
			if err != nil {
				return "", err
			}
			added++
			content := fmt.Sprintf("Task %d", added)
			input.SetAttribute("value", content)
			add.Click()
			return fmt.Sprintf("add %q", content), nil
		case 1:
			icons := findAll(body, byClass("done-icon"))
			if len(icons) == 0 {
				return "", errors.Errorf("E040", "no todo to toggle").Wrap(dom.ErrNotFound)
			}
			icons[len(icons)-1].Click()
			return "toggle last todo", nil
		default:
			remove, err := first(body, "remove icon", byClass("remove-icon"))
			if err != nil {
				return "", err
			}
			remove.Click()
			return "remove first todo", nil
		}
	}
	return vdom.H(TodoApp, vdom.Attrs{"store": store}), step
}
