// cmd/game/main.go
package main

import (
	"flag"
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/defs"
	"go-dungeon-crawler/internal/state"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "зерно генерации мира; 0 — случайное")
	skipMenu := flag.Bool("skip-menu", false, "начинать сразу с игры")
	enemyDefs := flag.String("enemy-defs", "", "JSON с переопределением параметров врагов")
	weaponDefs := flag.String("weapon-defs", "", "JSON с переопределением параметров оружия")
	flag.Parse()

	if *enemyDefs != "" {
		if err := defs.LoadEnemyDefinitions(*enemyDefs); err != nil {
			log.Fatal(err)
		}
	}
	if *weaponDefs != "" {
		if err := defs.LoadWeaponDefinitions(*weaponDefs); err != nil {
			log.Fatal(err)
		}
	}

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, *seed))
	} else {
		sm.SetState(state.NewMenuState(sm, *seed))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Dungeon Crawler")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
