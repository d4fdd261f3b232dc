package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sheikhrachel/go-life/model"
)

const configFile = "config.json"

func main() {
	config := loadConfig(configFile)

	board, err := model.LoadBoard(config.InputPath)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	if !config.ClearScreen {
		displayGameInfo(config, board)
	}

	driver := model.NewDriver(board, model.NewTerminalRenderer(config.ClearScreen), config.Interval())

	interrupted, err := runGame(context.Background(), driver)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if interrupted {
		fmt.Println("\n🛑 Shutting down gracefully...")
	}

	if config.ShowStats {
		fmt.Println(driver.Stats().Summary())
	}
}
