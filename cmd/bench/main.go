package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/arty"
	"github.com/aretw0/arty/pkg/core"
)

func main() {
	count := flag.Int("count", 1000, "Number of images to generate")
	keep := flag.Bool("keep", false, "Keep the benchmark folder after running")
	format := flag.String("format", "json", "Sidecar format (json or yaml)")
	flag.Parse()

	// 1. Setup Folder
	benchDir, err := os.MkdirTemp("", "arty_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	fmt.Printf("Generating %d images in %s...\n", *count, benchDir)
	startGen := time.Now()

	// Direct writes simulate a folder filled outside the application.
	for i := 0; i < *count; i++ {
		filename := filepath.Join(benchDir, fmt.Sprintf("image_%05d.jpg", i))
		if err := os.WriteFile(filename, []byte{0xFF, 0xD8, 0xFF}, 0644); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	// 2. Initialize Service
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	service, err := arty.New(
		arty.WithLogger(logger),
		arty.WithFormat(*format),
	)
	if err != nil {
		panic(err)
	}

	ctx := context.TODO()

	// Run 1: Cold (no sidecar, every file is reconciled as new)
	fmt.Println("Running Load (Run 1 - Cold)...")
	c := timedLoad(ctx, service, benchDir)

	// Describe every image so the sidecar carries real metadata.
	images := c.Images()
	for i := range images {
		images[i].Title = fmt.Sprintf("Study %d", i)
		images[i].Artist = "Benchmark"
		images[i].Year = "1900"
	}
	startSave := time.Now()
	if err := c.SetCollection(ctx, images); err != nil {
		panic(err)
	}
	fmt.Printf("Save took: %v\n", time.Since(startSave))

	// Run 2: Warm (sidecar present, nothing new on disk)
	fmt.Println("Running Load (Run 2 - Warm)...")
	timedLoad(ctx, service, benchDir)

	info, err := os.Stat(filepath.Join(benchDir, ".collection"))
	if err == nil {
		fmt.Printf("Sidecar size: %d bytes\n", info.Size())
	}
}

func timedLoad(ctx context.Context, service *core.Service, dir string) *core.Collection {
	start := time.Now()
	c, err := service.Load(ctx, dir)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Result: %v (Items: %d)\n", time.Since(start), c.Len())
	return c
}
