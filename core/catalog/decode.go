package catalog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"pricing-simulator/core/pricing/primitives"
	"pricing-simulator/internal/errors"
)

// hclCatalog is the HCL file shape. Numbers decode through their exact
// decimal text, so authors may write them bare or quoted.
type hclCatalog struct {
	Name     string       `hcl:"name,optional"`
	Currency string       `hcl:"currency,optional"`
	Sections []hclSection `hcl:"section,block"`
}

type hclSection struct {
	Type        string        `hcl:"type,label"`
	Progressive bool          `hcl:"progressive,optional"`
	Secability  *string       `hcl:"secability,optional"`
	Intervals   []hclInterval `hcl:"interval,block"`
}

type hclInterval struct {
	Min   string  `hcl:"min"`
	Max   *string `hcl:"max,optional"`
	Price string  `hcl:"price"`
}

// Load reads a catalog from a .hcl or .json file
func Load(path string) (*Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("catalog file", path)
		}
		return nil, errors.Wrapf(errors.TypeInput, err, "failed to read catalog %s", path)
	}
	return Parse(path, src)
}

// Parse decodes catalog source; the filename extension selects the syntax
func Parse(filename string, src []byte) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hcl":
		return parseHCL(filename, src)
	case ".json":
		return parseJSON(filename, src)
	default:
		return nil, errors.NotSupported("catalog format " + filepath.Ext(filename)).
			WithContext("file", filename)
	}
}

func parseJSON(filename string, src []byte) (*Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Parsing("failed to decode catalog "+filename, err)
	}
	return &c, nil
}

func parseHCL(filename string, src []byte) (*Catalog, error) {
	var file hclCatalog
	if err := hclsimple.Decode(filename, src, nil, &file); err != nil {
		return nil, errors.Parsing("failed to decode catalog "+filename, err)
	}

	c := &Catalog{
		Name:     file.Name,
		Currency: primitives.Currency(file.Currency),
		Sections: make([]primitives.Section, 0, len(file.Sections)),
	}
	for _, hs := range file.Sections {
		section, err := hs.section()
		if err != nil {
			return nil, errors.Parsing("failed to decode catalog "+filename, err).
				WithContext("section", hs.Type)
		}
		c.Sections = append(c.Sections, section)
	}
	return c, nil
}

// section converts the HCL block; a block without intervals is still loading
func (hs hclSection) section() (primitives.Section, error) {
	section := primitives.Section{
		Type:        primitives.SectionType(hs.Type),
		Progressive: hs.Progressive,
	}

	if hs.Secability != nil {
		secability, err := decimal.NewFromString(*hs.Secability)
		if err != nil {
			return section, err
		}
		section.Secability = secability
	}

	if len(hs.Intervals) == 0 {
		return section, nil
	}

	section.Intervals = make([]primitives.Interval, 0, len(hs.Intervals))
	for _, hi := range hs.Intervals {
		interval, err := hi.interval()
		if err != nil {
			return section, err
		}
		section.Intervals = append(section.Intervals, interval)
	}
	return section, nil
}

func (hi hclInterval) interval() (primitives.Interval, error) {
	var interval primitives.Interval
	var err error

	if interval.MinRange, err = decimal.NewFromString(hi.Min); err != nil {
		return interval, err
	}
	if interval.Price, err = decimal.NewFromString(hi.Price); err != nil {
		return interval, err
	}
	if hi.Max != nil {
		upper, err := decimal.NewFromString(*hi.Max)
		if err != nil {
			return interval, err
		}
		interval.MaxRange = &upper
	}
	return interval, nil
}
