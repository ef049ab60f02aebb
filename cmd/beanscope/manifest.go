package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/kvisser/beanscope/inspect"
	"github.com/kvisser/beanscope/managed"
)

// Member return categories accepted in manifests.
const (
	returnsValue = "value"
	returnsNone  = "none"
)

// Manifest is a static snapshot of both inspection collaborators: the
// registered instances (registry side) and the candidate classes with their
// managed members (graph side). It implements inspect.RegistryReader and
// inspect.GraphReader, so a manifest feeds inspect.Build directly.
type Manifest struct {
	Instances  []ManifestInstance `yaml:"instances"`
	ClassDecls []ManifestClass    `yaml:"classes"`
}

// ManifestInstance is one registered instance: class name plus canonical name.
type ManifestInstance struct {
	Class string `yaml:"class"`
	Name  string `yaml:"name"`
}

// ManifestClass is one candidate class and its managed-member declarations.
type ManifestClass struct {
	Name    string           `yaml:"name"`
	Members []ManifestMember `yaml:"members"`
}

// ManifestMember declares one managed member with its shape spelled out.
//
// Returns must be "value" or "none"; there is no reflection to fall back on,
// so the shape has to be complete in the manifest.
type ManifestMember struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Params      int    `yaml:"params"`
	Returns     string `yaml:"returns"`
}

// decodeManifest reads a manifest from r. Unknown fields are rejected so
// typos in manifests fail loudly instead of silently dropping members.
func decodeManifest(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("manifest is empty")
		}
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// validate checks the manifest for the mistakes the type system cannot catch.
func (m *Manifest) validate() error {
	for i, in := range m.Instances {
		if in.Class == "" {
			return fmt.Errorf("instances[%d]: class is required", i)
		}
		if in.Name == "" {
			return fmt.Errorf("instances[%d]: name is required", i)
		}
	}
	for i, c := range m.ClassDecls {
		if c.Name == "" {
			return fmt.Errorf("classes[%d]: name is required", i)
		}
		for j, mem := range c.Members {
			if mem.Name == "" {
				return fmt.Errorf("classes[%d].members[%d]: name is required", i, j)
			}
			if mem.Params < 0 {
				return fmt.Errorf("classes[%d].members[%d]: params must be >= 0", i, j)
			}
			if mem.Returns != returnsValue && mem.Returns != returnsNone {
				return fmt.Errorf("classes[%d].members[%d]: returns must be %q or %q, got %q",
					i, j, returnsValue, returnsNone, mem.Returns)
			}
		}
	}
	return nil
}

// QueryAll implements inspect.RegistryReader.
func (m *Manifest) QueryAll() ([]inspect.Instance, error) {
	out := make([]inspect.Instance, 0, len(m.Instances))
	for _, in := range m.Instances {
		out = append(out, inspect.Instance{ClassName: in.Class, Name: in.Name})
	}
	return out, nil
}

// Classes implements inspect.GraphReader.
func (m *Manifest) Classes() ([]inspect.Class, error) {
	out := make([]inspect.Class, 0, len(m.ClassDecls))
	for _, c := range m.ClassDecls {
		var members []managed.Member
		for _, mem := range c.Members {
			members = append(members, managed.Member{
				Name:         mem.Name,
				Description:  mem.Description,
				NumParams:    mem.Params,
				ReturnsValue: mem.Returns == returnsValue,
			})
		}
		out = append(out, inspect.Class{Name: c.Name, Members: members})
	}
	return out, nil
}
