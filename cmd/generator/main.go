package main

import (
	"context"
	"fmt"
	"transport-dataset/internal/adapters/csvfile"
	"transport-dataset/internal/adapters/random"
	"transport-dataset/internal/config"
	"transport-dataset/internal/platform/obs"
	"transport-dataset/internal/services"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// main is the generator composition root.
// It seeds the random source, runs the sample → price → write pipeline and prints the output path.
func main() {
	log := obs.NewLogger(logrus.InfoLevel)

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (using environment variables)")
	}

	cfg, err := config.LoadGenerator()
	if err != nil {
		log.Fatal(err)
	}

	ctx, runID := obs.WithRunID(context.Background())
	log.WithFields(logrus.Fields{
		"run_id":  runID,
		"samples": cfg.Samples,
		"seed":    cfg.Seed,
		"output":  cfg.OutputPath,
	}).Info("generating dataset")

	path, err := services.GenerateDataset(
		ctx,
		services.GenerateDatasetRequest{Samples: cfg.Samples},
		random.NewSeededSource(cfg.Seed),
		csvfile.NewWriter(cfg.OutputPath),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(path)
}
