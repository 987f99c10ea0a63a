package model

import (
	"fmt"
	"slices"
)

// TypeInfo is the member listing of one type in a StaticModel.
type TypeInfo struct {
	Ref     TypeRef
	Fields  []Field
	Methods []Method
}

// StaticModel is an in-memory TypeModel.
type StaticModel struct {
	types map[TypeRef]*TypeInfo
}

// NewStaticModel creates a StaticModel holding the given types.
func NewStaticModel(types ...TypeInfo) *StaticModel {
	m := &StaticModel{types: make(map[TypeRef]*TypeInfo)}
	for _, t := range types {
		m.Add(t)
	}

	return m
}

// Add registers a type, replacing an earlier one with the same reference.
func (m *StaticModel) Add(t TypeInfo) {
	info := TypeInfo{
		Ref:     t.Ref,
		Fields:  slices.Clone(t.Fields),
		Methods: slices.Clone(t.Methods),
	}
	m.types[t.Ref] = &info
}

// Fields implements TypeModel.
func (m *StaticModel) Fields(ref TypeRef) ([]Field, error) {
	info, err := m.lookup(ref, OpFields)
	if err != nil {
		return nil, err
	}

	return slices.Clone(info.Fields), nil
}

// Methods implements TypeModel.
func (m *StaticModel) Methods(ref TypeRef) ([]Method, error) {
	info, err := m.lookup(ref, OpMethods)
	if err != nil {
		return nil, err
	}

	return slices.Clone(info.Methods), nil
}

func (m *StaticModel) lookup(ref TypeRef, op Op) (*TypeInfo, error) {
	info, ok := m.types[ref]
	if !ok {
		return nil, Unavailable(ref, op, fmt.Errorf("type %s not found", ref))
	}

	return info, nil
}
