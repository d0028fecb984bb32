package forms

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/nudostudio/nudo/pkg/validator"
)

// ErrUnknownForm is returned when no rule-set is registered under a name.
var ErrUnknownForm = errors.New("unknown form")

// Registry maps form names to their rule-sets. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	forms map[string]*validator.RuleSet
}

func NewRegistry() *Registry {
	return &Registry{forms: make(map[string]*validator.RuleSet)}
}

// Register stores rules under name, replacing any previous rule-set.
func (r *Registry) Register(name string, rules *validator.RuleSet) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms[name] = rules
	return r
}

// Get returns the rule-set registered under name.
func (r *Registry) Get(name string) (*validator.RuleSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules, ok := r.forms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}
	return rules, nil
}

// Validate runs the named rule-set against data. The error is non-nil only
// for unknown forms; validation failures are reported in the returned list.
func (r *Registry) Validate(name string, data map[string]any) (validator.ValidationErrors, error) {
	rules, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return validator.ValidateForm(data, rules), nil
}

// Names returns the registered form names in alphabetical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.forms))
	for name := range r.forms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
