package params

import (
	"fmt"
	"strconv"
	"strings"
)

// Value enumerates types a parameter can be read as.
type Value interface {
	string | int | float32 | float64 | bool
}

// UnusedParamsError lists options no constructor consumed.
type UnusedParamsError struct {
	Names []string
}

func (e *UnusedParamsError) Error() string {
	return fmt.Sprintf("params: unknown or unused parameters: %s", strings.Join(e.Names, ", "))
}

// MissingParamError reports a required option that is absent.
type MissingParamError struct {
	Name string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("params: missing required parameter %q", e.Name)
}

// Manager tracks which options of a Set were consumed.
type Manager struct {
	set  *Set
	used map[string]bool
}

// NewManager wraps set; a nil set behaves as empty.
func NewManager(set *Set) *Manager {
	return &Manager{set: set, used: map[string]bool{}}
}

// Required reads name as T, failing when it is absent.
func Required[T Value](m *Manager, name string) (T, error) {
	var zero T
	raw, ok := m.set.Get(name)
	if !ok {
		return zero, &MissingParamError{Name: name}
	}
	m.used[name] = true
	return convert[T](name, raw)
}

// Optional reads name as T, returning def when it is absent.
func Optional[T Value](m *Manager, name string, def T) (T, error) {
	raw, ok := m.set.Get(name)
	if !ok {
		return def, nil
	}
	m.used[name] = true
	return convert[T](name, raw)
}

// CheckUnused fails when any option was never read.
func (m *Manager) CheckUnused() error {
	var unused []string
	for _, name := range m.set.Names() {
		if !m.used[name] {
			unused = append(unused, name)
		}
	}
	if len(unused) > 0 {
		return &UnusedParamsError{Names: unused}
	}
	return nil
}

func convert[T Value](name, raw string) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *int:
		*p, err = strconv.Atoi(raw)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(raw, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(raw, 64)
	case *bool:
		*p, err = parseBool(raw)
	default:
		err = fmt.Errorf("unsupported type %T", out)
	}
	if err != nil {
		return out, fmt.Errorf("params: parameter %q=%q: %w", name, raw, err)
	}
	return out, nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(raw)
}
