// Command simulate plays a level headless with scripted shots and prints the
// outcome. It is handy for checking a level is winnable after editing it.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/automoto/slingshot/core"
	"github.com/automoto/slingshot/shared/leveldata"
)

func main() {
	levelDir := flag.String("levels", "assets/levels", "Directory of .tmx level files")
	levelName := flag.String("level", "", "Level to play (empty = built-in first level)")
	shotsFlag := flag.String("shots", "30,350", "Release points as x,y;x,y;...")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = as fast as possible)")
	maxTicks := flag.Int("maxticks", 5000, "Tick limit per shot")
	verbose := flag.Bool("v", false, "Log state changes and destroyed targets")
	flag.Parse()

	level := leveldata.Level01()
	if *levelName != "" {
		lvl, err := leveldata.LoadLevel(os.DirFS(*levelDir), *levelName+".tmx")
		if err != nil {
			log.Fatalf("Failed to load level %q: %v", *levelName, err)
		}
		level = *lvl
	}

	shots, err := ParseShots(*shotsFlag)
	if err != nil {
		log.Fatalf("Bad -shots: %v", err)
	}

	runner := NewRunner(core.NewGame(level), *tickRate, *maxTicks, *verbose)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		runner.Stop()
	}()

	log.Printf("Simulating %q with %d projectiles, %d shots", level.Name, level.Projectiles, len(shots))
	res := runner.Run(shots)

	log.Printf("Result: %s after %d launches and %d ticks", res.State, res.Launches, res.Ticks)
	log.Printf("Left: %d projectiles, %d targets, %d blocks", res.Remaining, res.Targets, res.Blocks)

	names := make([]string, 0, len(res.Events))
	for name := range res.Events {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		log.Printf("  %-18s %d", name, res.Events[name])
	}
}
