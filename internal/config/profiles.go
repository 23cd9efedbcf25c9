package config

import (
	"os"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/zkcost/proof-cost-planner/internal/costmodel"
	"github.com/zkcost/proof-cost-planner/internal/validator"
)

// ProfilesFile is the on-disk format of additional proving-system profiles.
type ProfilesFile struct {
	Profiles []costmodel.Profile `json:"profiles" validate:"required,min=1,unique=Key,dive"`
}

// LoadCatalog returns the built-in catalog extended with the profiles found in path.
// An empty path returns the built-in catalog.
func LoadCatalog(path string) (*costmodel.Catalog, error) {
	catalog := costmodel.DefaultCatalog()
	if path == "" {
		return catalog, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading profiles file")
	}

	file, err := ParseProfiles(contents)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing profiles file %s", path)
	}

	return catalog.With(file.Profiles...), nil
}

// ParseProfiles decodes and validates a profiles document.
func ParseProfiles(contents []byte) (*ProfilesFile, error) {
	var file ProfilesFile
	if err := yaml.UnmarshalStrict(contents, &file); err != nil {
		return nil, errors.Wrap(err, "decoding profiles")
	}

	v := validator.NewValidator()
	v.Register(validator.NewProfileValidationRules()...)
	if err := v.Struct(file); err != nil {
		return nil, err
	}
	return &file, nil
}
