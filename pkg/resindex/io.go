package resindex

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"google.golang.org/protobuf/encoding/protowire"
	"gopkg.in/yaml.v3"
)

// ReadIndexSpec reads an index file.  The format is chosen by extension:
// ".json" (comments and trailing commas allowed), ".yaml"/".yml", ".pb" or
// ".db" (a bolt index).
func ReadIndexSpec(filename string) (*IndexSpec, error) {
	if filepath.Ext(filename) == ".db" {
		return readBoltFile(filename)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var spec IndexSpec
	switch ext := filepath.Ext(filename); ext {
	case ".json":
		if err := json.Unmarshal(jsonc.ToJSON(data), &spec); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", filename, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", filename, err)
		}
	case ".pb":
		if err := unmarshalProto(data, &spec); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", filename, err)
		}
	default:
		return nil, fmt.Errorf("%s: unknown index file extension %q", filename, ext)
	}
	return &spec, nil
}

// WriteIndexSpec writes an index file in the format chosen by extension, as
// for ReadIndexSpec.  An existing ".db" file is replaced, not merged into.
func WriteIndexSpec(filename string, spec *IndexSpec) error {
	if filepath.Ext(filename) == ".db" {
		return writeBoltFile(filename, spec)
	}
	var data []byte
	var err error
	switch ext := filepath.Ext(filename); ext {
	case ".json":
		data, err = json.MarshalIndent(spec, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(spec)
	case ".pb":
		data = marshalProto(spec)
	default:
		return fmt.Errorf("%s: unknown index file extension %q", filename, ext)
	}
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

func readBoltFile(filename string) (*IndexSpec, error) {
	db, err := OpenBoltIndex(filename, WithReadOnly())
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return SpecFromEntries(db.Entries()), nil
}

// writeBoltFile builds the database next to filename and renames it into
// place, so a failed write leaves any previous index untouched.
func writeBoltFile(filename string, spec *IndexSpec) error {
	tmp := filename + ".tmp"
	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", tmp, err)
	}
	db, err := OpenBoltIndex(tmp)
	if err != nil {
		return err
	}
	if err := spec.Load(db); err != nil {
		db.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", filename, err)
	}
	if err := db.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// Field numbers of resindex.proto.
const (
	indexEntriesField   protowire.Number = 1
	entryNamespaceField protowire.Number = 1
	entryTypeField      protowire.Number = 2
	entryNameField      protowire.Number = 3
	entryIDField        protowire.Number = 4
)

func marshalProto(spec *IndexSpec) []byte {
	var b []byte
	for _, e := range spec.Entries {
		var entry []byte
		if e.Namespace != "" {
			entry = protowire.AppendTag(entry, entryNamespaceField, protowire.BytesType)
			entry = protowire.AppendString(entry, e.Namespace)
		}
		if e.Type != "" {
			entry = protowire.AppendTag(entry, entryTypeField, protowire.BytesType)
			entry = protowire.AppendString(entry, e.Type)
		}
		if e.Name != "" {
			entry = protowire.AppendTag(entry, entryNameField, protowire.BytesType)
			entry = protowire.AppendString(entry, e.Name)
		}
		if e.ID != 0 {
			entry = protowire.AppendTag(entry, entryIDField, protowire.VarintType)
			entry = protowire.AppendVarint(entry, uint64(uint32(e.ID)))
		}
		b = protowire.AppendTag(b, indexEntriesField, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	return b
}

func unmarshalProto(b []byte, spec *IndexSpec) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if num == indexEntriesField && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			entry, err := unmarshalEntryProto(v)
			if err != nil {
				return fmt.Errorf("entry %d: %w", len(spec.Entries), err)
			}
			spec.Entries = append(spec.Entries, entry)
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

func unmarshalEntryProto(b []byte) (*EntrySpec, error) {
	entry := &EntrySpec{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case typ == protowire.BytesType && (num == entryNamespaceField || num == entryTypeField || num == entryNameField):
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			switch num {
			case entryNamespaceField:
				entry.Namespace = v
			case entryTypeField:
				entry.Type = v
			case entryNameField:
				entry.Name = v
			}
			b = b[n:]
		case typ == protowire.VarintType && num == entryIDField:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			entry.ID = int(uint32(v))
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return entry, nil
}
