package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/worldofwater/waterworld/assets"
	"github.com/worldofwater/waterworld/internal/config"
	"github.com/worldofwater/waterworld/internal/content"
	"github.com/worldofwater/waterworld/internal/curio"
	"github.com/worldofwater/waterworld/internal/nav"
	"github.com/worldofwater/waterworld/internal/render"
	"github.com/worldofwater/waterworld/internal/scene"
	"github.com/worldofwater/waterworld/internal/sched"
	"github.com/worldofwater/waterworld/internal/screen"
	"github.com/worldofwater/waterworld/internal/world"
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All curio state lives in the screens behind router.
type Game struct {
	cfg      *config.Config
	store    *scene.Store
	hub      *nav.Hub
	router   *screen.Router
	house    *screen.House
	renderer *render.Renderer
	status   string
}

func NewGame() *Game {
	cfg, err := config.Load(assets.Data, "config.toml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	prov, err := content.Load(assets.Data, "content.toml")
	if err != nil {
		log.Fatalf("load content: %v", err)
	}
	layout, err := world.LoadHouseLayout(assets.Data, prov.House().Layout)
	if err != nil {
		log.Fatalf("load house: %v", err)
	}
	fonts, err := render.NewFonts()
	if err != nil {
		log.Fatalf("load fonts: %v", err)
	}

	store := scene.NewStore()
	d := screen.Deps{
		Store:   store,
		Hub:     nav.NewHub(store),
		Clock:   sched.NewClock(),
		Content: prov,
		Config:  cfg,
		Rand:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}

	house := screen.NewHouse(d, layout.ToTileGrid())
	router := screen.NewRouter(d,
		house,
		screen.NewShower(d),
		screen.NewMap(d),
		screen.NewResearch(d),
	)
	d.Hub.MustActivate(curio.ScreenHouse)
	log.Printf("[main] %s loaded: %d rooms, %d regions", layout.Name, len(layout.Rooms), len(prov.Regions()))

	return &Game{
		cfg:      cfg,
		store:    store,
		hub:      d.Hub,
		router:   router,
		house:    house,
		renderer: render.NewRenderer(fonts),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	p := scene.Vec{X: float64(mx), Y: float64(my)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.router.Click(p)
	}
	g.router.Advance(g.cfg.Step())

	g.status = ""
	if g.hub.IsActive(curio.ScreenHouse) && !g.house.Sweeping() {
		g.status = g.house.Describe(p)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.store)
	g.renderer.DrawStatus(screen, g.status)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	game := NewGame()

	ebiten.SetWindowSize(game.cfg.Window.Width, game.cfg.Window.Height)
	ebiten.SetWindowTitle(game.cfg.Window.Title)
	ebiten.SetTPS(game.cfg.Window.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
