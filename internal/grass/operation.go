package grass

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Param is a single key=value module option.
type Param struct {
	Key   string
	Value string
}

// Operation is one GRASS module invocation.
type Operation struct {
	Module string
	Flags  string
	Params []Param
}

// NewOperation starts an operation for the named module.
func NewOperation(module string) *Operation {
	return &Operation{Module: module}
}

// Flag appends single-letter flags, e.g. Flag("a") for "-a".
func (o *Operation) Flag(flags string) *Operation {
	for _, f := range flags {
		if !strings.ContainsRune(o.Flags, f) {
			o.Flags += string(f)
		}
	}
	return o
}

// Set adds or replaces a parameter. An empty value leaves the module default
// in place, so the parameter is not sent.
func (o *Operation) Set(key, value string) *Operation {
	if value == "" {
		return o
	}
	for i := range o.Params {
		if o.Params[i].Key == key {
			o.Params[i].Value = value
			return o
		}
	}
	o.Params = append(o.Params, Param{Key: key, Value: value})
	return o
}

// SetFloat adds a numeric parameter, formatted without trailing zeros.
func (o *Operation) SetFloat(key string, v float64) *Operation {
	return o.Set(key, FormatNumber(v))
}

// SetList adds a comma separated list parameter.
func (o *Operation) SetList(key string, values []string) *Operation {
	return o.Set(key, strings.Join(values, ","))
}

// Param returns the value of a parameter.
func (o *Operation) Param(key string) (string, bool) {
	for _, p := range o.Params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Clone returns a deep copy.
func (o *Operation) Clone() *Operation {
	c := *o
	c.Params = append([]Param(nil), o.Params...)
	return &c
}

// Validate checks that the operation can be rendered into a command line.
func (o *Operation) Validate() error {
	var errs []error
	if o.Module == "" {
		errs = append(errs, errors.New("module name is empty"))
	}
	for _, f := range o.Flags {
		if !isAlnum(f) {
			errs = append(errs, fmt.Errorf("invalid flag %q", f))
		}
	}
	for _, p := range o.Params {
		if p.Key == "" || strings.ContainsAny(p.Key, "= \t") {
			errs = append(errs, fmt.Errorf("invalid parameter name %q", p.Key))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("operation %q: %w", o.Module, errors.Join(errs...))
	}
	return nil
}

// Args renders the module arguments: the flags as one "-abc" argument
// followed by key=value pairs in the order they were set.
func (o *Operation) Args() []string {
	args := make([]string, 0, len(o.Params)+1)
	if o.Flags != "" {
		args = append(args, "-"+o.Flags)
	}
	for _, p := range o.Params {
		args = append(args, p.Key+"="+p.Value)
	}
	return args
}

// String renders the full command line.
func (o *Operation) String() string {
	return strings.Join(append([]string{o.Module}, o.Args()...), " ")
}

// FormatNumber renders v the way a user would type it: 4, 20, 2.5.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
