package validator

import "regexp"

// CustomFunc validates a raw field value. It returns an empty string when the
// value is valid and the error message to report otherwise.
//
// Panics raised by a CustomFunc are not recovered by the validator.
type CustomFunc func(value any) string

// Rule describes the constraints applied to a single field.
// Zero values mean "not set": nil pointers, false flags, nil funcs.
type Rule struct {
	Required  bool
	MinLength *int
	MaxLength *int
	Pattern   *regexp.Regexp
	Email     bool
	Phone     bool
	Custom    CustomFunc
}

// Len returns a pointer to n, for the optional length members of Rule.
//
//	validator.Rule{Required: true, MinLength: validator.Len(2)}
func Len(n int) *int {
	return &n
}

// FieldRule binds a Rule to a field name.
type FieldRule struct {
	Name string
	Rule Rule
}

// Field is shorthand for constructing a FieldRule.
func Field(name string, rule Rule) FieldRule {
	return FieldRule{Name: name, Rule: rule}
}

// RuleSet maps field names to rules while preserving declaration order.
// Errors produced by ValidateForm follow that order.
type RuleSet struct {
	fields []FieldRule
	index  map[string]int
}

// NewRuleSet builds a RuleSet from the given fields in order.
func NewRuleSet(fields ...FieldRule) *RuleSet {
	rs := &RuleSet{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		rs.Add(f.Name, f.Rule)
	}
	return rs
}

// Add appends a field rule. Adding an existing field replaces its rule but
// keeps the original position, so keys stay unique.
func (rs *RuleSet) Add(name string, rule Rule) *RuleSet {
	if rs.index == nil {
		rs.index = make(map[string]int)
	}
	if i, ok := rs.index[name]; ok {
		rs.fields[i].Rule = rule
		return rs
	}
	rs.index[name] = len(rs.fields)
	rs.fields = append(rs.fields, FieldRule{Name: name, Rule: rule})
	return rs
}

// Get returns the rule declared for name.
func (rs *RuleSet) Get(name string) (Rule, bool) {
	if rs == nil {
		return Rule{}, false
	}
	i, ok := rs.index[name]
	if !ok {
		return Rule{}, false
	}
	return rs.fields[i].Rule, true
}

// Fields returns the declared field names in order.
func (rs *RuleSet) Fields() []string {
	if rs == nil {
		return nil
	}
	names := make([]string, len(rs.fields))
	for i, f := range rs.fields {
		names[i] = f.Name
	}
	return names
}

func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.fields)
}
