package config

import (
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
)

// Server holds the @server options controlling the exposed endpoint.
// Pointer-typed options distinguish "unset" from a zero value so a merge can
// tell whether the right-hand document overrides them.
type Server struct {
	Port            *int       `json:"port,omitempty" yaml:"port,omitempty"`
	Hostname        *string    `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Introspection   *bool      `json:"introspection,omitempty" yaml:"introspection,omitempty"`
	QueryValidation *bool      `json:"queryValidation,omitempty" yaml:"queryValidation,omitempty"`
	BatchRequests   *bool      `json:"batchRequests,omitempty" yaml:"batchRequests,omitempty"`
	Headers         []KeyValue `json:"headers,omitempty" yaml:"headers,omitempty"`
	Vars            []KeyValue `json:"vars,omitempty" yaml:"vars,omitempty"`
}

func (s *Server) DirectiveName() string { return "server" }

func (s *Server) DirectiveArgs() []DirectiveArg {
	var args []DirectiveArg
	if s.BatchRequests != nil {
		args = append(args, DirectiveArg{"batchRequests", strconv.FormatBool(*s.BatchRequests)})
	}
	if len(s.Headers) > 0 {
		args = append(args, DirectiveArg{"headers", renderKeyValues(s.Headers)})
	}
	if s.Hostname != nil {
		args = append(args, DirectiveArg{"hostname", renderString(*s.Hostname)})
	}
	if s.Introspection != nil {
		args = append(args, DirectiveArg{"introspection", strconv.FormatBool(*s.Introspection)})
	}
	if s.Port != nil {
		args = append(args, DirectiveArg{"port", strconv.Itoa(*s.Port)})
	}
	if s.QueryValidation != nil {
		args = append(args, DirectiveArg{"queryValidation", strconv.FormatBool(*s.QueryValidation)})
	}
	if len(s.Vars) > 0 {
		args = append(args, DirectiveArg{"vars", renderKeyValues(s.Vars)})
	}
	return args
}

func serverFromDirective(d *ast.Directive) (*Server, error) {
	s := &Server{}
	if err := decodeBoolPtr(d, "batchRequests", &s.BatchRequests); err != nil {
		return nil, err
	}
	if err := decodeKeyValues(d, "headers", &s.Headers); err != nil {
		return nil, err
	}
	if err := decodeStringPtr(d, "hostname", &s.Hostname); err != nil {
		return nil, err
	}
	if err := decodeBoolPtr(d, "introspection", &s.Introspection); err != nil {
		return nil, err
	}
	if err := decodeIntPtr(d, "port", &s.Port); err != nil {
		return nil, err
	}
	if err := decodeBoolPtr(d, "queryValidation", &s.QueryValidation); err != nil {
		return nil, err
	}
	if err := decodeKeyValues(d, "vars", &s.Vars); err != nil {
		return nil, err
	}
	return s, nil
}

// merge folds other into s, other winning on every option it sets.
func (s *Server) merge(other *Server) *Server {
	if s == nil {
		return other
	}
	if other == nil {
		return s
	}
	if other.Port != nil {
		s.Port = other.Port
	}
	if other.Hostname != nil {
		s.Hostname = other.Hostname
	}
	if other.Introspection != nil {
		s.Introspection = other.Introspection
	}
	if other.QueryValidation != nil {
		s.QueryValidation = other.QueryValidation
	}
	if other.BatchRequests != nil {
		s.BatchRequests = other.BatchRequests
	}
	s.Headers = mergeKeyValues(s.Headers, other.Headers)
	s.Vars = mergeKeyValues(s.Vars, other.Vars)
	return s
}
