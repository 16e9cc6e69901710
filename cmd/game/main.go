// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"cat-burrow-defense/internal/app"
	"cat-burrow-defense/internal/audio"
	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/internal/event"
	"cat-burrow-defense/internal/render"
	"cat-burrow-defense/internal/version"
)

func main() {
	seed := flag.Int64("seed", 0, "simulation seed, 0 for time-based")
	mute := flag.Bool("mute", false, "start with audio disabled")
	showVersion := flag.Bool("version", false, "print version and exit")
	skipUpdateCheck := flag.Bool("no-update-check", false, "skip the startup update check")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Current())
		return
	}

	if !*skipUpdateCheck {
		if latest := version.CheckForUpdate(context.Background()); latest != "" {
			fmt.Printf("A newer version is available: %s (you have %s).\n", latest, version.Current())
			fmt.Println("Update with: brew upgrade cat-burrow-defense")
			if askSkipRelease(latest) {
				if err := version.SkipRelease(latest); err != nil {
					log.Printf("could not save update preference: %v", err)
				}
			}
		}
	}

	if err := run(*seed, *mute); err != nil {
		log.Fatal(err)
	}
}

func askSkipRelease(latest string) bool {
	fmt.Printf("Skip reminders for %s? [y/N] ", latest)
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y"
}

func run(seed int64, mute bool) error {
	game := app.NewGame(seed)

	sound := audioSystem(game.Dispatcher)
	if sound != nil {
		defer sound.Close()
		if mute {
			sound.ToggleSfx()
			sound.ToggleMusic()
		}
		sound.SetMusicForMap(game.State.MapIndex)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	renderer := render.NewRenderer(screen)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(config.TickMs * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch tev := ev.(type) {
			case *tcell.EventKey:
				action, quit := decodeKey(tev)
				if quit {
					return nil
				}
				handleMeta(game, sound, action)
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			game.Tick()
			sfxOn, musicOn := true, true
			if sound != nil {
				sfxOn, musicOn = sound.SfxOn(), sound.MusicOn()
			}
			renderer.Draw(game.Snapshot(sfxOn, musicOn))
		}
	}
}

// audioSystem wires sound into the event stream. Audio failures degrade to a
// silent game rather than aborting.
func audioSystem(dispatcher *event.Dispatcher) *audio.System {
	cfgPath := ""
	if dir, err := os.UserConfigDir(); err == nil {
		cfgPath = filepath.Join(dir, "cat-burrow-defense", "audio.json")
	}
	cfg, err := audio.LoadConfig(cfgPath)
	if err != nil {
		log.Printf("audio config: %v", err)
	}
	sound := audio.NewSystem(cfg)
	if err := sound.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
		return nil
	}
	dispatcher.SubscribeAll(event.AllTypes, sound)
	return sound
}

// decodeKey maps terminal keys to game actions. The second result requests
// quitting the program.
func decodeKey(ev *tcell.EventKey) (app.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return app.Action{Kind: app.ActionMoveCursor, DY: -1}, false
	case tcell.KeyDown:
		return app.Action{Kind: app.ActionMoveCursor, DY: 1}, false
	case tcell.KeyLeft:
		return app.Action{Kind: app.ActionMoveCursor, DX: -1}, false
	case tcell.KeyRight:
		return app.Action{Kind: app.ActionMoveCursor, DX: 1}, false
	case tcell.KeyEscape:
		return app.Action{Kind: app.ActionCancel}, false
	case tcell.KeyCtrlC:
		return app.Action{}, true
	}

	switch ev.Rune() {
	case 'q':
		return app.Action{}, true
	case 'w':
		return app.Action{Kind: app.ActionMoveCursor, DY: -1}, false
	case 's':
		return app.Action{Kind: app.ActionMoveCursor, DY: 1}, false
	case 'a':
		return app.Action{Kind: app.ActionMoveCursor, DX: -1}, false
	case 'd':
		return app.Action{Kind: app.ActionMoveCursor, DX: 1}, false
	case ' ', 'c':
		return app.Action{Kind: app.ActionPlace}, false
	case 'n':
		return app.Action{Kind: app.ActionStartWave}, false
	case 'N':
		return app.Action{Kind: app.ActionStartAutoWaves}, false
	case 'f':
		return app.Action{Kind: app.ActionToggleFastForward}, false
	case '1', '2', '3', '4', '5', '6':
		kind := component.Kind(ev.Rune() - '1')
		return app.Action{Kind: app.ActionSelectTower, Cat: kind}, false
	case 'p':
		return app.Action{Kind: app.ActionToggleShop}, false
	case 'h':
		return app.Action{Kind: app.ActionToggleControls}, false
	case 'o':
		return app.Action{Kind: app.ActionToggleOverlay}, false
	case 'm':
		return app.Action{Kind: app.ActionPickUpOrPlace}, false
	case 'x':
		return app.Action{Kind: app.ActionSell}, false
	case 'u':
		return app.Action{Kind: app.ActionUpgrade}, false
	case 't':
		return app.Action{Kind: app.ActionToggleSfx}, false
	case 'y':
		return app.Action{Kind: app.ActionToggleMusic}, false
	case 'g':
		// Developer shortcut to jump maps.
		return app.Action{Kind: app.ActionSkipMap}, false
	}
	return app.Action{Kind: app.ActionNone}, false
}

// handleMeta routes audio toggles to the sound system and everything else to
// the game.
func handleMeta(game *app.Game, sound *audio.System, action app.Action) {
	switch action.Kind {
	case app.ActionNone:
		return
	case app.ActionToggleSfx:
		if sound != nil {
			sound.ToggleSfx()
		}
	case app.ActionToggleMusic:
		if sound != nil {
			sound.ToggleMusic()
		}
	default:
		game.HandleAction(action)
	}
}
