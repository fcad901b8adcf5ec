// Command boxworld loads a scene file and plays its input script headless,
// reporting how the player moved through the world.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/akmonengine/boxworld/scene"
)

// defined flags
var (
	levelFlag   logLevelFlag
	logFileFlag = flag.String("logfile", "", "Write logs to this file instead of the console")
	framesFlag  = flag.Bool("frames", false, "Print every frame instead of a summary")
)

func init() {
	levelFlag.level = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] scene.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var w io.Writer = os.Stderr
	if *logFileFlag != "" {
		w = &lumberjack.Logger{
			Filename:   *logFileFlag,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		}
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelFlag.level}))
	slog.SetDefault(logger)

	s, err := scene.Load(flag.Arg(0), logger)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	var sum summary
	sum.subscribe(&s.World.Events, logger)

	logger.Info("scene loaded", "entities", len(s.World.Entities), "frames", countFrames(s))
	results := s.Run()
	sum.add(results)

	if *framesFlag {
		for _, r := range results {
			fmt.Printf("%5d moved=%-5t position=%v\n", r.Frame, r.Moved, r.Position)
		}
	}
	fmt.Println(sum)
	fmt.Printf("final position: %v\n", s.Player.GetTransform().Position)
}

func countFrames(s *scene.Scene) int {
	n := 0
	for _, step := range s.Script {
		n += step.Frames
	}
	return n
}
