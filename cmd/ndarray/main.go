// Package main provides the ndarray demo driver.
package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/born-ml/ndarray/backend/cpu"
	"github.com/born-ml/ndarray/tensor"
)

const version = "v0.1.0-dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "version":
		fmt.Printf("ndarray %s\n", version)
	case "info":
		info()
	case "demo":
		if err := demo(); err != nil {
			logger.Error("demo failed", "err", err)
			os.Exit(1)
		}
	default:
		usage()
		if cmd != "" {
			logger.Error("unknown command", "command", cmd)
			os.Exit(2)
		}
	}
}

func usage() {
	fmt.Println("ndarray - strided N-dimensional arrays for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  info       Show kernel configuration")
	fmt.Println("  demo       Run a short walkthrough")
}

func info() {
	fmt.Printf("Backend:        %s\n", cpu.Name())
	fmt.Printf("Tile row bytes: %d\n", cpu.TileRowBytes)
	fmt.Printf("Block float32:  %d\n", cpu.BlockSize[float32]())
	fmt.Printf("Block float64:  %d\n", cpu.BlockSize[float64]())
	fmt.Printf("Epsilon:        %g\n", tensor.Epsilon())
}

func demo() error {
	m, err := tensor.Arange(0, 24, 1)
	if err != nil {
		return err
	}
	cube, err := tensor.Reinterpret[int](m, 2, 3, 4)
	if err != nil {
		return err
	}
	fmt.Println("cube:", cube)

	v, err := cube.View(tensor.All(), tensor.Single(1), tensor.Span(0, -1))
	if err != nil {
		return err
	}
	if err := v.Fill(-1); err != nil {
		return err
	}
	slog.Info("view", "shape", v.Shape(), "strides", v.Strides(), "flags", v.Flags())
	fmt.Println("after fill:", cube)

	a, err := tensor.FromNested[int]([][]int{{1, 1, 4}, {5, 1, 4}})
	if err != nil {
		return err
	}
	b, err := tensor.FromNested[int]([][]int{{1, 2}, {3, 4}, {5, 6}})
	if err != nil {
		return err
	}
	c, err := tensor.MatMul(a, b)
	if err != nil {
		return err
	}
	fmt.Println("a·b:", c)

	rng := rand.New(rand.NewPCG(1, 2))
	r, err := tensor.Random(rng, tensor.UniformInt(0, 99), 10)
	if err != nil {
		return err
	}
	fmt.Println("random:", r)
	if err := tensor.Sort(r); err != nil {
		return err
	}
	fmt.Println("sorted:", r)

	mean, err := tensor.Mean(r)
	if err != nil {
		return err
	}
	slog.Info("stats", "size", r.Size(), "mean", mean)
	return nil
}
