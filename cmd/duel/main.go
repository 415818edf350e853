package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomaskol/termduel/internal/loop"
	"github.com/tomaskol/termduel/internal/object"
)

func main() {
	arenaName := flag.String("arena", "large", "arena preset: small, medium or large")
	vsBot := flag.Bool("bot", false, "fill the right seat with a bot and skip the menu")
	seed := flag.Int64("seed", 0, "fix powerup and bot randomness (0 = time-based)")
	flag.Parse()

	arena, err := arenaPreset(*arenaName)
	if err != nil {
		log.Fatal("bad arena flag", "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatal("failed to enable raw mode", "err", err)
	}

	runErr := loop.Run(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Arena: arena,
		VsBot: *vsBot,
		Seed:  *seed,
	})

	// Restore before logging so a failure does not print into a raw
	// terminal.
	_ = term.Restore(fd, oldState)
	if runErr != nil {
		log.Fatal("session error", "err", runErr)
	}
}

func arenaPreset(name string) (object.Arena, error) {
	switch strings.ToLower(name) {
	case "small":
		return object.ArenaSmall, nil
	case "medium":
		return object.ArenaMedium, nil
	case "large":
		return object.ArenaLarge, nil
	}
	return object.Arena{}, fmt.Errorf("unknown arena %q (want small, medium or large)", name)
}
