package resindex

import (
	"fmt"

	"github.com/stackb/resname/pkg/resname"
)

// IndexSpec is the serializable form of a resource index.
type IndexSpec struct {
	// Entries is the list of registered resources.
	Entries []*EntrySpec `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// EntrySpec describes a single resource and its identifier.
type EntrySpec struct {
	// Namespace is the package that owns the resource.
	Namespace string `json:"namespace" yaml:"namespace"`
	// Type is the resource type, such as "string".
	Type string `json:"type" yaml:"type"`
	// Name is the leaf name of the resource.
	Name string `json:"name" yaml:"name"`
	// ID is the numeric resource identifier.
	ID int `json:"id" yaml:"id"`
}

// ResName returns the canonical name of the entry.
func (e *EntrySpec) ResName() resname.Name {
	return resname.New(e.Namespace, e.Type, e.Name)
}

type batchPutter interface {
	PutAll(entries []Entry) error
}

// Load registers every entry of the spec in the given index.
func (s *IndexSpec) Load(index Putter) error {
	entries := make([]Entry, 0, len(s.Entries))
	for i, e := range s.Entries {
		if e == nil {
			return fmt.Errorf("entry %d: missing", i)
		}
		if e.Type == "" || e.Name == "" {
			return fmt.Errorf("entry %d: type and name are required (%+v)", i, *e)
		}
		entries = append(entries, Entry{Name: e.ResName(), ID: e.ID})
	}
	if batch, ok := index.(batchPutter); ok {
		return batch.PutAll(entries)
	}
	for _, entry := range entries {
		if err := index.Put(entry.Name, entry.ID); err != nil {
			return err
		}
	}
	return nil
}

// SpecFromEntries builds a spec from index entries, preserving their order.
func SpecFromEntries(entries []Entry) *IndexSpec {
	spec := &IndexSpec{Entries: make([]*EntrySpec, len(entries))}
	for i, entry := range entries {
		spec.Entries[i] = &EntrySpec{
			Namespace: entry.Name.Namespace(),
			Type:      entry.Name.Type(),
			Name:      entry.Name.Entry(),
			ID:        entry.ID,
		}
	}
	return spec
}
