// Package content supplies the curio's fixed copy: region pages, shower
// fact templates, research modal layouts and the house overlay text.
package content

import (
	"fmt"
	"image/color"
	"io/fs"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"github.com/worldofwater/waterworld/internal/curio"
)

// FactCount is the size of the shower fact table: one template per
// comparison value the shower computes.
const FactCount = 3

// Region is one country page of the map screen.
type Region struct {
	ID     curio.RegionID `toml:"-"`
	Title  string         `toml:"title"`
	Image  string         `toml:"image"`
	Body   string         `toml:"body"`
	Marker [2]int         `toml:"marker"`
	Radius int            `toml:"radius"`
	Hex    string         `toml:"color"`

	Color color.RGBA `toml:"-"`
}

// Label is a text element positioned relative to its panel centre.
type Label struct {
	Text string `toml:"text"`
	At   [2]int `toml:"at"`
}

// Sprite is an image element positioned relative to its panel centre.
type Sprite struct {
	Image string  `toml:"image"`
	At    [2]int  `toml:"at"`
	Size  [2]int  `toml:"size"`
	Scale float64 `toml:"scale"`
}

// Modal is the layout of one research modal.
type Modal struct {
	ID      curio.ModalID `toml:"-"`
	Title   string        `toml:"title"`
	Image   string        `toml:"image"`
	Body    string        `toml:"body"`
	Labels  []Label       `toml:"labels"`
	Sprites []Sprite      `toml:"sprites"`
}

// House is the overlay copy of the entry screen.
type House struct {
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
	Layout   string `toml:"layout"`
}

// Shower is the copy of the shower calculator.
type Shower struct {
	Title        string   `toml:"title"`
	Subtitle     string   `toml:"subtitle"`
	Image        string   `toml:"image"`
	MinutesLabel string   `toml:"minutes_label"`
	Usage        string   `toml:"usage"`
	Facts        []string `toml:"facts"`
}

// Page is the heading block shared by the map and research screens.
type Page struct {
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
	Image    string `toml:"image"`
}

type document struct {
	House  House  `toml:"house"`
	Shower Shower `toml:"shower"`
	Map    struct {
		Title    string   `toml:"title"`
		Subtitle string   `toml:"subtitle"`
		Image    string   `toml:"image"`
		Regions  []Region `toml:"regions"`
	} `toml:"map"`
	Research struct {
		Title    string  `toml:"title"`
		Subtitle string  `toml:"subtitle"`
		Image    string  `toml:"image"`
		Modals   []Modal `toml:"modals"`
	} `toml:"research"`
}

// Provider serves content records by identifier.
type Provider struct {
	doc     document
	regions []Region
	byID    map[curio.RegionID]int
	modals  map[curio.ModalID]Modal
}

// Load reads and parses a content file from fsys.
func Load(fsys fs.FS, name string) (*Provider, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Parse(data)
}

// Parse decodes content TOML and checks every region and modal is present.
func Parse(data []byte) (*Provider, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	p := &Provider{
		doc:    doc,
		byID:   make(map[curio.RegionID]int),
		modals: make(map[curio.ModalID]Modal),
	}

	for _, r := range doc.Map.Regions {
		id, ok := curio.RegionByName(r.Title)
		if !ok {
			return nil, fmt.Errorf("region %q: not a known region", r.Title)
		}
		if _, dup := p.byID[id]; dup {
			return nil, fmt.Errorf("region %q: listed twice", r.Title)
		}
		c, err := colorful.Hex(r.Hex)
		if err != nil {
			return nil, fmt.Errorf("region %q: color: %w", r.Title, err)
		}
		red, green, blue := c.RGB255()
		r.ID = id
		r.Color = color.RGBA{red, green, blue, 255}
		p.byID[id] = len(p.regions)
		p.regions = append(p.regions, r)
	}
	for _, id := range curio.Regions() {
		if _, ok := p.byID[id]; !ok {
			return nil, fmt.Errorf("region %q: missing", id)
		}
	}

	for _, m := range doc.Research.Modals {
		id, ok := curio.ModalByName(m.Title)
		if !ok {
			return nil, fmt.Errorf("modal %q: not a known modal", m.Title)
		}
		m.ID = id
		p.modals[id] = m
	}
	for id := curio.ModalDesalination; id < curio.ModalCount; id++ {
		if _, ok := p.modals[id]; !ok {
			return nil, fmt.Errorf("modal %q: missing", id)
		}
	}

	if len(doc.Shower.Facts) != FactCount {
		return nil, fmt.Errorf("shower: %d fact templates, want %d", len(doc.Shower.Facts), FactCount)
	}
	return p, nil
}

// Region returns the page bound to id. Asking for an unknown region is a
// programming error.
func (p *Provider) Region(id curio.RegionID) Region {
	i, ok := p.byID[id]
	if !ok {
		panic(fmt.Sprintf("content: no region %s", id))
	}
	return p.regions[i]
}

// Regions returns every region in file order.
func (p *Provider) Regions() []Region {
	return append([]Region(nil), p.regions...)
}

// FactTemplates returns the shower fact format strings in order.
func (p *Provider) FactTemplates() []string {
	return append([]string(nil), p.doc.Shower.Facts...)
}

// Modal returns the layout of a research modal.
func (p *Provider) Modal(id curio.ModalID) Modal {
	m, ok := p.modals[id]
	if !ok {
		panic(fmt.Sprintf("content: no modal %s", id))
	}
	return m
}

// House returns the entry screen copy.
func (p *Provider) House() House { return p.doc.House }

// Shower returns the shower screen copy.
func (p *Provider) Shower() Shower { return p.doc.Shower }

// Map returns the map screen heading.
func (p *Provider) Map() Page {
	return Page{Title: p.doc.Map.Title, Subtitle: p.doc.Map.Subtitle, Image: p.doc.Map.Image}
}

// Research returns the research screen heading.
func (p *Provider) Research() Page {
	return Page{Title: p.doc.Research.Title, Subtitle: p.doc.Research.Subtitle, Image: p.doc.Research.Image}
}
