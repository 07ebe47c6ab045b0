// Package catalog resolves IGDB identifier codes against a product catalog
// loaded from a YAML file.
package catalog

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/glasslab/gstr/glass"
)

// EnvCatalog names the environment variable holding the path of the default
// catalog file.
const EnvCatalog = "GSTR_CATALOG"

// Product is one catalog entry, keyed by its IGDB code.
type Product struct {
	Code         string  `yaml:"code"`
	Name         string  `yaml:"name"`
	Manufacturer string  `yaml:"manufacturer,omitempty"`
	Emissivity   float64 `yaml:"emissivity,omitempty"`
	Coated       bool    `yaml:"coated,omitempty"`
}

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// Catalog maps IGDB codes to products.
type Catalog struct {
	products map[string]Product
}

// Load reads a YAML catalog:
//
//	products:
//	  - code: "20"
//	    name: Clear float glass
//	    emissivity: 0.84
//
// A repeated code keeps the last product.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c := &Catalog{products: make(map[string]Product, len(file.Products))}
	for _, p := range file.Products {
		c.products[p.Code] = p
	}
	return c, nil
}

// LoadFile reads the catalog at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadDefault reads the catalog named by GSTR_CATALOG. When the variable is
// unset the catalog is empty, which resolves nothing but fails nothing.
func LoadDefault() (*Catalog, error) {
	if path := os.Getenv(EnvCatalog); path != "" {
		return LoadFile(path)
	}
	return &Catalog{products: map[string]Product{}}, nil
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// Lookup returns the product for an IGDB code.
func (c *Catalog) Lookup(code string) (Product, bool) {
	p, ok := c.products[code]
	return p, ok
}

// Products returns every product sorted by code.
func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Resolution pairs an IGDB code found in a buildup with its product, if the
// catalog knows it.
type Resolution struct {
	Code    string
	Product Product
	Known   bool
}

// Resolve walks a buildup outermost first and resolves every IGDB code it
// carries, including those on nested lites and plies.
func (c *Catalog) Resolve(b glass.Buildup) []Resolution {
	var out []Resolution
	glass.Walk(b, func(l glass.Layer) {
		child, ok := l.(glass.Buildup)
		if !ok {
			return
		}
		if code, ok := child.IGDBCode(); ok {
			p, known := c.Lookup(code)
			out = append(out, Resolution{Code: code, Product: p, Known: known})
		}
	})
	return out
}
