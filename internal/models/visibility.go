package models

import "fmt"

type Component string

const (
	ComponentWeather  Component = "weather"
	ComponentCalendar Component = "calendar"
	ComponentTodos    Component = "todos"
	ComponentHabits   Component = "habits"
	ComponentNotes    Component = "notes"
	ComponentQuotes   Component = "quotes"
)

var Components = []Component{
	ComponentWeather,
	ComponentCalendar,
	ComponentTodos,
	ComponentHabits,
	ComponentNotes,
	ComponentQuotes,
}

func ParseComponent(name string) (Component, error) {
	for _, c := range Components {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidComponent, name)
}

// VisibilityFlags holds one flag per dashboard widget.
type VisibilityFlags struct {
	Weather  bool `json:"weather"`
	Calendar bool `json:"calendar"`
	Todos    bool `json:"todos"`
	Habits   bool `json:"habits"`
	Notes    bool `json:"notes"`
	Quotes   bool `json:"quotes"`
}

func DefaultVisibility() VisibilityFlags {
	return VisibilityFlags{
		Weather:  true,
		Calendar: true,
		Todos:    true,
		Habits:   true,
		Notes:    true,
		Quotes:   true,
	}
}

func (v *VisibilityFlags) field(c Component) (*bool, error) {
	switch c {
	case ComponentWeather:
		return &v.Weather, nil
	case ComponentCalendar:
		return &v.Calendar, nil
	case ComponentTodos:
		return &v.Todos, nil
	case ComponentHabits:
		return &v.Habits, nil
	case ComponentNotes:
		return &v.Notes, nil
	case ComponentQuotes:
		return &v.Quotes, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidComponent, string(c))
}

func (v VisibilityFlags) Get(c Component) (bool, error) {
	f, err := v.field(c)
	if err != nil {
		return false, err
	}
	return *f, nil
}

func (v *VisibilityFlags) Set(c Component, visible bool) error {
	f, err := v.field(c)
	if err != nil {
		return err
	}
	*f = visible
	return nil
}

func (v *VisibilityFlags) Toggle(c Component) error {
	f, err := v.field(c)
	if err != nil {
		return err
	}
	*f = !*f
	return nil
}
