package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/hollowmere/cardbound/component"
	"github.com/hollowmere/cardbound/config"
	"github.com/hollowmere/cardbound/content"
	"github.com/hollowmere/cardbound/core"
	"github.com/hollowmere/cardbound/engine"
	"github.com/hollowmere/cardbound/event"
	"github.com/hollowmere/cardbound/system"
)

const renderInterval = 33 * time.Millisecond

var enemyKinds = []string{"stalker", "thrall", "husk", "warden", "skitter"}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even on a crash so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\ncardbound crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	cfg, err := config.Load()
	if err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	world := engine.NewWorld(event.NewEventQueue())
	world.Resources.Config.TickInterval = cfg.TickInterval
	world.Resources.Config.AIInterval = cfg.AIInterval
	world.Resources.Config.ArenaWidth = cfg.ArenaWidth
	world.Resources.Config.ArenaHeight = cfg.ArenaHeight
	world.Resources.Config.PlayerImmortal = cfg.PlayerImmortal
	world.Resources.Content = content.DefaultService()

	cast := system.RegisterAll(world)

	world.RunSafe(func() {
		system.SpawnPlayer(world, cfg.ArenaWidth/2, cfg.ArenaHeight/2)
		for i := 0; i < 8; i++ {
			kind := enemyKinds[rand.Intn(len(enemyKinds))]
			x := rand.Float64() * cfg.ArenaWidth
			y := rand.Float64() * cfg.ArenaHeight
			system.SpawnEnemy(world, kind, x, y)
		}
	})

	scheduler := engine.NewScheduler(world)
	scheduler.Start()
	defer scheduler.Stop()

	quit := make(chan struct{})
	go pollInput(screen, world, quit)

	ticker := time.NewTicker(renderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			draw(screen, world, cast)
		}
	}
}

// pollInput translates terminal keys into simulation events. It runs on
// its own goroutine; the queue push is the only contact with the world
func pollInput(screen tcell.Screen, world *engine.World, quit chan struct{}) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				close(quit)
				return

			case tcell.KeyUp:
				world.PushEvent(event.EventMoveInput, &event.MoveInputPayload{X: 0, Y: -1})
			case tcell.KeyDown:
				world.PushEvent(event.EventMoveInput, &event.MoveInputPayload{X: 0, Y: 1})
			case tcell.KeyLeft:
				world.PushEvent(event.EventMoveInput, &event.MoveInputPayload{X: -1, Y: 0})
			case tcell.KeyRight:
				world.PushEvent(event.EventMoveInput, &event.MoveInputPayload{X: 1, Y: 0})

			case tcell.KeyRune:
				switch r := ev.Rune(); r {
				case 'k':
					world.PushEvent(event.EventMoveInput, &event.MoveInputPayload{X: 0, Y: -1})
				case 'j':
					world.PushEvent(event.EventMoveInput, &event.MoveInputPayload{X: 0, Y: 1})
				case 'h':
					world.PushEvent(event.EventMoveInput, &event.MoveInputPayload{X: -1, Y: 0})
				case 'l':
					world.PushEvent(event.EventMoveInput, &event.MoveInputPayload{X: 1, Y: 0})
				case ' ':
					world.PushEvent(event.EventMoveInput, &event.MoveInputPayload{X: 0, Y: 0})
				case 'f':
					world.PushEvent(event.EventDodgeRequest, nil)
				case '1', '2', '3', '4':
					world.PushEvent(event.EventCastRequest, &event.CastRequestPayload{Slot: int(r - '1')})
				}
			}
		}
	}
}

// draw renders one frame from component state under the world lock
func draw(screen tcell.Screen, world *engine.World, cast *system.CastSystem) {
	screen.Clear()

	world.RunSafe(func() {
		drawEntities(screen, world)
		drawHUD(screen, world, cast)
	})

	screen.Show()
}

func drawEntities(screen tcell.Screen, world *engine.World) {
	for _, e := range world.Components.Kinetic.GetAllEntities() {
		kin, _ := world.Components.Kinetic.GetComponent(e)
		kc, ok := world.Components.Kind.GetComponent(e)
		if !ok {
			continue
		}

		r, style := glyph(world, e, kc.Kind)
		if world.Components.Flash.HasEntity(e) {
			style = style.Reverse(true)
		}
		if world.Components.Fade.HasEntity(e) {
			style = style.Dim(true)
		}
		screen.SetContent(int(kin.X), int(kin.Y)+1, r, nil, style)
	}
}

func glyph(world *engine.World, e core.Entity, kind core.EntityKind) (rune, tcell.Style) {
	switch kind {
	case core.KindPlayer:
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
		if pc, ok := world.Components.Player.GetComponent(e); ok && pc.State == component.PlayerDodging {
			style = style.Foreground(tcell.ColorAqua)
		}
		return '@', style

	case core.KindSummon:
		return '*', tcell.StyleDefault.Foreground(tcell.ColorYellow)

	case core.KindEnemy:
		r := 'e'
		if ec, ok := world.Components.Enemy.GetComponent(e); ok && ec.Profile != nil {
			r = rune(ec.Profile.Kind[0])
		}
		return r, tcell.StyleDefault.Foreground(tcell.ColorRed)

	default:
		return '?', tcell.StyleDefault
	}
}

func drawHUD(screen tcell.Screen, world *engine.World, cast *system.CastSystem) {
	player := world.Resources.Player.Entity

	hp, _ := world.Components.Health.GetComponent(player)
	en, _ := world.Components.Energy.GetComponent(player)

	line := fmt.Sprintf(" HP %3.0f/%3.0f  EN %3.0f/%3.0f ", hp.Current, hp.Max, en.Current, en.Max)
	for i := 0; i < 4; i++ {
		line += fmt.Sprintf(" [%d:%s x%d]", i+1, cast.SlotAbility(i), cast.Charges(i))
	}
	if !hp.Alive {
		line += "  ** DEAD **"
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
	for i, r := range line {
		screen.SetContent(i, 0, r, nil, style)
	}
}
