package typefile

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"member-template/internal/model"
)

// File is a parsed type-description document.
type File struct {
	Version string     `yaml:"version,omitempty"`
	Types   []TypeDecl `yaml:"types"`
}

// TypeDecl describes one type.
type TypeDecl struct {
	Name    string       `yaml:"name"`
	Fields  []FieldDecl  `yaml:"fields,omitempty"`
	Methods []MethodDecl `yaml:"methods,omitempty"`
}

// FieldDecl describes a declared field.
type FieldDecl struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// MethodDecl describes a declared method.
type MethodDecl struct {
	Name   string     `yaml:"name"`
	Params ParamCount `yaml:"params,omitempty"`
}

// ParamCount is a method's parameter count. In files it is written either
// as a number or as a list of parameter names.
type ParamCount int

// UnmarshalYAML implements custom YAML unmarshaling for ParamCount.
// Accepts either a non-negative integer or an array of names.
func (p *ParamCount) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int

		err := node.Decode(&n)
		if err != nil {
			return fmt.Errorf("params: %w", err)
		}

		if n < 0 {
			return fmt.Errorf("params: negative count %d", n)
		}

		*p = ParamCount(n)

		return nil

	case yaml.SequenceNode:
		*p = ParamCount(len(node.Content))

		return nil

	default:
		return fmt.Errorf("params: expected count or array, got %v", node.Kind)
	}
}

// Validate checks that names are present and unique.
func (f *File) Validate() error {
	var errs []error

	seenTypes := make(map[string]struct{}, len(f.Types))

	for i, t := range f.Types {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("types[%d]: missing name", i))
			continue
		}

		if _, dup := seenTypes[t.Name]; dup {
			errs = append(errs, fmt.Errorf("type %s: declared more than once", t.Name))
		}

		seenTypes[t.Name] = struct{}{}
		seenFields := make(map[string]struct{}, len(t.Fields))

		for j, field := range t.Fields {
			if field.Name == "" {
				errs = append(errs, fmt.Errorf("type %s: fields[%d]: missing name", t.Name, j))
				continue
			}

			if field.Type == "" {
				errs = append(errs, fmt.Errorf("type %s: field %s: missing type", t.Name, field.Name))
			}

			if _, dup := seenFields[field.Name]; dup {
				errs = append(errs, fmt.Errorf("type %s: field %s: declared more than once", t.Name, field.Name))
			}

			seenFields[field.Name] = struct{}{}
		}

		for j, method := range t.Methods {
			if method.Name == "" {
				errs = append(errs, fmt.Errorf("type %s: methods[%d]: missing name", t.Name, j))
			}
		}
	}

	return errors.Join(errs...)
}

// Model returns the described types as a model.StaticModel.
func (f *File) Model() *model.StaticModel {
	m := model.NewStaticModel()

	for _, t := range f.Types {
		info := model.TypeInfo{Ref: model.TypeRef(t.Name)}

		for _, field := range t.Fields {
			info.Fields = append(info.Fields, model.Field{Name: field.Name, Type: field.Type})
		}

		for _, method := range t.Methods {
			info.Methods = append(info.Methods, model.Method{Name: method.Name, ParamCount: int(method.Params)})
		}

		m.Add(info)
	}

	return m
}
