package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"fuelprice-validation/internal/model"
	"fuelprice-validation/internal/validation"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDatasetsRoot = "datasets"
	DefaultDatasetName  = "2022-04-30"
)

// Config is the on-disk configuration shape (YAML or TOML).
type Config struct {
	// DatasetsRoot holds one directory per export date. The API resolves
	// dataset names against it.
	DatasetsRoot string        `yaml:"datasets_root" toml:"datasets_root"`
	Dataset      DatasetConfig `yaml:"dataset" toml:"dataset"`
}

// DatasetConfig names the files of one dataset. File names are resolved
// against Dir unless they are absolute or s3:// URIs.
type DatasetConfig struct {
	Dir        string `yaml:"dir" toml:"dir"`
	Unleaded95 string `yaml:"ok_unleaded95" toml:"ok_unleaded95"`
	Diesel     string `yaml:"ok_diesel" toml:"ok_diesel"`
	Octane100  string `yaml:"ok_octane100" toml:"ok_octane100"`
	Export     string `yaml:"export" toml:"export"`
}

func Default() *Config {
	return &Config{
		DatasetsRoot: DefaultDatasetsRoot,
		Dataset:      DefaultDataset(filepath.Join(DefaultDatasetsRoot, DefaultDatasetName)),
	}
}

// DefaultDataset is the standard file layout inside dir.
func DefaultDataset(dir string) DatasetConfig {
	return DatasetConfig{
		Dir:        dir,
		Unleaded95: "ok_unleaded95.json",
		Diesel:     "ok_diesel.json",
		Octane100:  "ok_octane100.json",
		Export:     "dynamo_s3_export.json",
	}
}

// Load reads path and overlays it on the defaults. The format follows the
// file extension: .toml for TOML, anything else is YAML.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(raw, &c)
	default:
		err = yaml.Unmarshal(raw, &c)
	}
	if err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}

	out := Default()
	if c.DatasetsRoot != "" {
		out.DatasetsRoot = c.DatasetsRoot
	}
	out.Dataset = MergeDataset(out.Dataset, c.Dataset)
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Dataset.Validate()
}

// ForDataset returns the configured dataset with Dir pointed at name under
// DatasetsRoot. An empty name returns the configured dataset unchanged.
func (c *Config) ForDataset(name string) (DatasetConfig, error) {
	if name == "" {
		return c.Dataset, nil
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return DatasetConfig{}, fmt.Errorf("invalid dataset name %q", name)
	}
	ds := c.Dataset
	ds.Dir = join(c.DatasetsRoot, name)
	return ds, nil
}

func (d DatasetConfig) Validate() error {
	for field, v := range map[string]string{
		"ok_unleaded95": d.Unleaded95,
		"ok_diesel":     d.Diesel,
		"ok_octane100":  d.Octane100,
		"export":        d.Export,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("dataset.%s is required", field)
		}
	}
	return nil
}

// Resolve turns a configured file name into a path or URI.
func (d DatasetConfig) Resolve(name string) string {
	if strings.HasPrefix(name, "s3://") || filepath.IsAbs(name) || d.Dir == "" {
		return name
	}
	return join(d.Dir, name)
}

// OkFiles maps every fuel type to its resolved accepted-dates file.
func (d DatasetConfig) OkFiles() map[model.FuelType]string {
	return map[model.FuelType]string{
		model.FuelTypeUnleaded95: d.Resolve(d.Unleaded95),
		model.FuelTypeDiesel:     d.Resolve(d.Diesel),
		model.FuelTypeOctane100:  d.Resolve(d.Octane100),
	}
}

func (d DatasetConfig) ExportPath() string {
	return d.Resolve(d.Export)
}

// Inputs is the validation input set for this dataset.
func (d DatasetConfig) Inputs() validation.Inputs {
	return validation.Inputs{
		OkFiles: d.OkFiles(),
		Export:  d.ExportPath(),
	}
}

// URIs lists every resolved path, export last.
func (d DatasetConfig) URIs() []string {
	files := d.OkFiles()
	out := make([]string, 0, len(files)+1)
	for _, ft := range model.FuelTypes {
		out = append(out, files[ft])
	}
	return append(out, d.ExportPath())
}

// MergeDataset overlays non-empty fields from override onto base.
func MergeDataset(base, override DatasetConfig) DatasetConfig {
	out := base
	if override.Dir != "" {
		out.Dir = override.Dir
	}
	if override.Unleaded95 != "" {
		out.Unleaded95 = override.Unleaded95
	}
	if override.Diesel != "" {
		out.Diesel = override.Diesel
	}
	if override.Octane100 != "" {
		out.Octane100 = override.Octane100
	}
	if override.Export != "" {
		out.Export = override.Export
	}
	return out
}

// s3 prefixes are joined with "/", local paths with the OS separator.
func join(dir, name string) string {
	if strings.HasPrefix(dir, "s3://") {
		return strings.TrimSuffix(dir, "/") + "/" + path.Clean(name)
	}
	return filepath.Join(dir, name)
}
