package contact

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// seedDoc is the on-disk shape of a seed file.
type seedDoc struct {
	Contacts []Contact `yaml:"contacts"`
}

// DecodeSeed parses a YAML seed document of the form
//
//	contacts:
//	  - id: 1
//	    name: Aisha Kapoor
//	    phone: "9876543210"
//	    email: aisha@example.com
//
// Unknown fields are rejected. An empty document yields no contacts.
// The contacts are not validated here; Store.Seed does that.
func DecodeSeed(r io.Reader) ([]Contact, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("contact: reading seed: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc seedDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		// Comment-only documents decode to EOF.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("contact: parsing seed: %w", err)
	}
	return doc.Contacts, nil
}

// LoadSeed opens name in fsys and decodes it with DecodeSeed.
func LoadSeed(fsys fs.FS, name string) ([]Contact, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("contact: opening seed %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()
	return DecodeSeed(f)
}
