package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/core"
	"github.com/automoto/slingshot/shared/messages"
)

// Shot is the point the pull is released at.
type Shot struct {
	X, Y float64
}

// ParseShots reads "x,y;x,y;..." into shots.
func ParseShots(s string) ([]Shot, error) {
	var shots []Shot
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xy := strings.Split(part, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("shot %q: want x,y", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("shot %q: %w", part, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("shot %q: %w", part, err)
		}
		shots = append(shots, Shot{X: x, Y: y})
	}
	return shots, nil
}

// Result summarises a scripted run.
type Result struct {
	State     cfg.GameStateID
	Remaining int
	Targets   int
	Blocks    int
	Launches  int
	Ticks     int
	Events    map[string]int
}

// Runner plays scripted shots against a game, one tick per frame.
type Runner struct {
	game     *core.Game
	tickRate int // 0 runs as fast as possible
	maxTicks int // per shot
	verbose  bool
	stopChan chan struct{}
	result   Result
}

func NewRunner(game *core.Game, tickRate, maxTicks int, verbose bool) *Runner {
	return &Runner{
		game:     game,
		tickRate: tickRate,
		maxTicks: maxTicks,
		verbose:  verbose,
		stopChan: make(chan struct{}),
		result:   Result{Events: map[string]int{}},
	}
}

// Run fires each shot once the slingshot is ready and waits for the turn to
// end. It stops early when the game is over or Stop is called.
func (r *Runner) Run(shots []Shot) Result {
	r.record(r.game.DrainEvents())

	var ticker *time.Ticker
	if r.tickRate > 0 {
		ticker = time.NewTicker(time.Second / time.Duration(r.tickRate))
		defer ticker.Stop()
	}

	for i, shot := range shots {
		if r.game.State() != cfg.GameReady {
			break
		}
		for _, in := range messages.DragGesture(cfg.Slingshot.AnchorX, cfg.Slingshot.AnchorY, shot.X, shot.Y, 4) {
			r.game.HandlePointer(in)
		}
		r.record(r.game.DrainEvents())
		if r.game.State() != cfg.GameFlying {
			log.Printf("Shot %d to (%.0f, %.0f) did not launch", i+1, shot.X, shot.Y)
			continue
		}

		for t := 0; t < r.maxTicks; t++ {
			if ticker != nil {
				select {
				case <-r.stopChan:
					return r.finish()
				case <-ticker.C:
				}
			}
			r.game.Tick()
			r.result.Ticks++
			r.record(r.game.DrainEvents())
			if s := r.game.State(); s != cfg.GameFlying && s != cfg.GameSettling {
				break
			}
		}
	}
	return r.finish()
}

func (r *Runner) Stop() {
	close(r.stopChan)
}

func (r *Runner) record(events []messages.Event) {
	for _, ev := range events {
		r.result.Events[ev.EventName()]++
		switch ev := ev.(type) {
		case messages.LaunchEvent:
			r.result.Launches++
		case messages.StateChangeEvent:
			if r.verbose {
				log.Printf("tick %d: %s -> %s", r.result.Ticks, ev.From, ev.To)
			}
		case messages.TargetDestroyedEvent:
			if r.verbose {
				log.Printf("tick %d: target destroyed at (%.0f, %.0f)", r.result.Ticks, ev.X, ev.Y)
			}
		}
	}
}

func (r *Runner) finish() Result {
	store := r.game.Store()
	r.result.State = r.game.State()
	r.result.Remaining = store.Remaining()
	r.result.Targets = store.TargetCount()
	r.result.Blocks = store.BlockCount()
	return r.result
}
