package content

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrMissingID   = errors.New("missing id")
	ErrEmptyFAQ    = errors.New("faq has no items")
)

// Load reads a YAML content file and layers it over the built-in registry.
// Lists in the file replace the default lists; scalar fields that the file
// leaves out keep their defaults. An empty path returns the defaults.
func Load(path string) (*Registry, error) {
	reg := Default()
	if path == "" {
		return reg, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}

	err := k.UnmarshalWithConf("", reg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			// Replace lists wholesale instead of merging element by element.
			ZeroFields:       true,
			WeaklyTypedInput: true,
			TagName:          "koanf",
			Result:           reg,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("decoding content %s: %w", path, err)
	}

	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return reg, nil
}

// Validate checks the invariants the page relies on: list ids are present and
// unique within their section, and the FAQ is not empty.
func (r *Registry) Validate() error {
	var errs []error

	check := func(section string, ids []string) {
		seen := make(map[string]bool, len(ids))
		for i, id := range ids {
			if id == "" {
				errs = append(errs, fmt.Errorf("%s[%d]: %w", section, i, ErrMissingID))
				continue
			}
			if seen[id] {
				errs = append(errs, fmt.Errorf("%s: %w %q", section, ErrDuplicateID, id))
			}
			seen[id] = true
		}
	}

	check("features", mapIDs(r.Features.Items, func(f Feature) string { return f.ID }))
	check("how_it_works", mapIDs(r.HowItWorks.Steps, func(s Step) string { return s.ID }))
	check("specs", mapIDs(r.Specs.Items, func(s Spec) string { return s.ID }))
	check("faq", r.FAQ.IDs())

	if len(r.FAQ.Items) == 0 {
		errs = append(errs, ErrEmptyFAQ)
	}
	return errors.Join(errs...)
}

// YAML renders the registry in the same shape Load accepts.
func (r *Registry) YAML() ([]byte, error) {
	data, err := yamlv3.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshalling content: %w", err)
	}
	return data, nil
}

func mapIDs[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = id(it)
	}
	return out
}
