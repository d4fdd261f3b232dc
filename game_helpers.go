package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// loadConfig falls back to defaults when config.json is missing or unreadable
func loadConfig(filename string) utils.Config {
	config, err := utils.LoadConfig(filename)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		return utils.DefaultConfig()
	}
	return config
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board) {
	fmt.Printf("Input: %s | Grid: %dx%d | Generations: %d | Interval: %s\n",
		config.InputPath, board.Columns(), board.Rows(), board.Generations(), config.Interval())
	fmt.Printf("Initial living cells: %d\n", board.Grid().CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// runGame drives the board until it finishes or a termination signal arrives.
// It returns true if the run was interrupted.
func runGame(ctx context.Context, driver *model.Driver) (bool, error) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		eg          errgroup.Group
		interrupted bool
	)

	driver.Start(ctx)

	eg.Go(func() error {
		defer cancel()
		return driver.Wait()
	})

	eg.Go(func() error {
		select {
		case <-sigChan:
			interrupted = true
			driver.Stop()
		case <-ctx.Done():
		}
		return nil
	})

	err := eg.Wait()
	if interrupted && errors.Is(err, context.Canceled) {
		err = nil
	}
	return interrupted, err
}
