// Package config decodes the curio's tunables: window, timer intervals and
// animation timings.
package config

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Window controls the ebiten window.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	TPS    int    `toml:"tps"`
}

// Shower timings and the litres-per-minute rate.
type Shower struct {
	FlowInterval    float64 `toml:"flow_interval"`
	DropFall        float64 `toml:"drop_fall"`
	LitresPerMinute float64 `toml:"litres_per_minute"`
}

// Map camera and content timings.
type Map struct {
	CameraMove    float64 `toml:"camera_move"`
	Zoom          float64 `toml:"zoom"`
	ContentSlide  float64 `toml:"content_slide"`
	ContentOffset float64 `toml:"content_offset"`
}

// Research modal and diagram timings.
type Research struct {
	ModalIn         float64 `toml:"modal_in"`
	ModalOut        float64 `toml:"modal_out"`
	DiagramInterval float64 `toml:"diagram_interval"`
	WaterFlow       float64 `toml:"water_flow"`
	DropFall        float64 `toml:"drop_fall"`
}

// Transition settings shared by all screens.
type Transition struct {
	CoverSweep float64 `toml:"cover_sweep"`
	TitleFade  float64 `toml:"title_fade"`
	BlurRadius float64 `toml:"blur_radius"`
}

// Config is the whole tunables file.
type Config struct {
	Window     Window     `toml:"window"`
	Shower     Shower     `toml:"shower"`
	Map        Map        `toml:"map"`
	Research   Research   `toml:"research"`
	Transition Transition `toml:"transition"`
}

// Load reads and validates a config file from fsys.
func Load(fsys fs.FS, name string) (*Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates config TOML.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("tps %d", c.Window.TPS)
	}
	// Timers fire from the fixed step, so they cannot be faster than a tick.
	if c.Shower.FlowInterval*float64(c.Window.TPS) < 1 {
		return fmt.Errorf("shower.flow_interval %gs is shorter than one tick", c.Shower.FlowInterval)
	}
	if c.Research.DiagramInterval*float64(c.Window.TPS) < 1 {
		return fmt.Errorf("research.diagram_interval %gs is shorter than one tick", c.Research.DiagramInterval)
	}
	if c.Map.Zoom <= 0 {
		return fmt.Errorf("map.zoom %g", c.Map.Zoom)
	}
	if c.Shower.LitresPerMinute <= 0 {
		return fmt.Errorf("shower.litres_per_minute %g", c.Shower.LitresPerMinute)
	}
	return nil
}

// Step is the fixed duration of one game tick.
func (c *Config) Step() time.Duration {
	return time.Second / time.Duration(c.Window.TPS)
}

// Seconds converts a config duration to time.Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
