package catalog

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// PriceRange is a [low, high) price interval in yuan.
type PriceRange [2]float64

func (r PriceRange) Low() float64  { return r[0] }
func (r PriceRange) High() float64 { return r[1] }

// Template describes one product archetype listings are sampled from.
type Template struct {
	Name       string     `yaml:"name"`
	CategoryID int        `yaml:"category_id"`
	PriceRange PriceRange `yaml:"price_range,flow"`
	Keywords   []string   `yaml:"keywords,flow"`
}

// Brand is the first keyword of the template, used in the description's detail section.
func (t Template) Brand() string {
	if len(t.Keywords) == 0 {
		return "品牌"
	}
	return t.Keywords[0]
}

type Catalog struct {
	Templates     []Template `yaml:"templates"`
	TimeUsed      []string   `yaml:"time_used"`
	Conditions    []string   `yaml:"conditions"`
	Channels      []string   `yaml:"channels"`
	Frequencies   []string   `yaml:"frequencies"`
	StatusDetails []string   `yaml:"status_details"`
	SellReasons   []string   `yaml:"sell_reasons"`
	ExtraInfos    []string   `yaml:"extra_infos"`
	Locations     []string   `yaml:"locations"`
}

func (c *Catalog) Validate() error {
	if len(c.Templates) == 0 {
		return fmt.Errorf("catalog has no product templates")
	}

	for i, t := range c.Templates {
		if t.Name == "" {
			return fmt.Errorf("template %d has an empty name", i+1)
		}
		if t.PriceRange.Low() <= 0 || t.PriceRange.Low() > t.PriceRange.High() {
			return fmt.Errorf("template %q has an invalid price range [%v, %v]", t.Name, t.PriceRange.Low(), t.PriceRange.High())
		}
	}

	pools := []struct {
		name   string
		values []string
	}{
		{"time_used", c.TimeUsed},
		{"conditions", c.Conditions},
		{"channels", c.Channels},
		{"frequencies", c.Frequencies},
		{"status_details", c.StatusDetails},
		{"sell_reasons", c.SellReasons},
		{"extra_infos", c.ExtraInfos},
		{"locations", c.Locations},
	}
	for _, p := range pools {
		if len(p.values) == 0 {
			return fmt.Errorf("catalog pool %s is empty", p.name)
		}
	}

	return nil
}

// LoadFile reads a YAML catalog. Pools the file leaves out keep their built-in values.
func LoadFile(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var parsed Catalog
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	cat := Default()
	cat.merge(&parsed)

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}

	return cat, nil
}

func (c *Catalog) merge(o *Catalog) {
	if len(o.Templates) > 0 {
		c.Templates = o.Templates
	}
	replace := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}
	replace(&c.TimeUsed, o.TimeUsed)
	replace(&c.Conditions, o.Conditions)
	replace(&c.Channels, o.Channels)
	replace(&c.Frequencies, o.Frequencies)
	replace(&c.StatusDetails, o.StatusDetails)
	replace(&c.SellReasons, o.SellReasons)
	replace(&c.ExtraInfos, o.ExtraInfos)
	replace(&c.Locations, o.Locations)
}

// YAML renders the catalog in the format LoadFile accepts.
func (c *Catalog) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return data, nil
}
