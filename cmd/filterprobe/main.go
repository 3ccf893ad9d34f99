// Command filterprobe reads queries from stdin and prints the time filter the model picks for each.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"timefilter-core/internal/adapter/client"
	"timefilter-core/internal/config"
	"timefilter-core/internal/logger"
	"timefilter-core/internal/usecase"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Options{Level: cfg.LogLevel, Format: "console", Service: "filterprobe", Writer: os.Stderr})
	ctx := context.Background()

	genaiClient, err := client.NewGeminiClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to init genai client")
	}
	provider := usecase.NewResilientProvider(client.NewGeminiCompleter(genaiClient, cfg.FilterModel), nil, cfg.ModelTimeout)
	interpreter := usecase.NewInterpreter(provider)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("Query to Extract Time: ")
	for scanner.Scan() {
		query := strings.TrimSpace(scanner.Text())
		if query != "" {
			decision, err := interpreter.Extract(ctx, query)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			cutoff := "none"
			if decision.Cutoff != nil {
				cutoff = decision.Cutoff.Format(time.RFC3339)
			}
			fmt.Printf("Time Cutoff: %s\nFavor Recent: %v\n", cutoff, decision.FavorRecent)
		}
		fmt.Print("Query to Extract Time: ")
	}
}
