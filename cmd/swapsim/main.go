package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Neocryptoquant/solana-security-template/protocols/constantproduct"
)

type simConfig struct {
	ReserveX  uint64
	ReserveY  uint64
	FeeBps    uint
	AmountIn  uint64
	MinOut    uint64
	Direction string
	Swaps     uint
}

func loadConfig() (*simConfig, error) {
	cfg := &simConfig{}
	flag.Uint64Var(&cfg.ReserveX, "reserve-x", 1_000_000_000, "initial X reserve")
	flag.Uint64Var(&cfg.ReserveY, "reserve-y", 1_000_000_000, "initial Y reserve")
	flag.UintVar(&cfg.FeeBps, "fee-bps", 30, "pool fee in basis points")
	flag.Uint64Var(&cfg.AmountIn, "amount-in", 1000, "input amount per swap")
	flag.Uint64Var(&cfg.MinOut, "min-out", 0, "minimum acceptable output (0 disables slippage protection)")
	flag.StringVar(&cfg.Direction, "direction", "x-for-y", "swap direction: x-for-y or y-for-x")
	flag.UintVar(&cfg.Swaps, "swaps", 1, "number of consecutive swaps to run")
	flag.Parse()

	if cfg.FeeBps >= 10000 {
		return nil, fmt.Errorf("fee-bps must be below 10000, got %d", cfg.FeeBps)
	}
	if cfg.Swaps == 0 {
		return nil, fmt.Errorf("swaps must be at least 1")
	}
	return cfg, nil
}

func parseDirection(s string) (constantproduct.Direction, error) {
	switch s {
	case "x-for-y":
		return constantproduct.DirectionXForY, nil
	case "y-for-x":
		return constantproduct.DirectionYForX, nil
	default:
		return constantproduct.DirectionUnknown, fmt.Errorf("unknown direction %q", s)
	}
}

func main() {
	rootLogger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := loadConfig()
	if err != nil {
		rootLogger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	dir, err := parseDirection(cfg.Direction)
	if err != nil {
		rootLogger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	system, err := constantproduct.NewSystem(&constantproduct.SystemConfig{
		Registry: prometheus.DefaultRegisterer,
		Logger:   rootLogger,
	})
	if err != nil {
		rootLogger.Error("Failed to create pool system", "error", err)
		os.Exit(1)
	}

	const poolID = 1
	if err := system.CreatePool(poolID, cfg.ReserveX, cfg.ReserveY, uint16(cfg.FeeBps)); err != nil {
		rootLogger.Error("Failed to create pool", "error", err)
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	for i := uint(0); i < cfg.Swaps; i++ {
		result, err := system.Swap(poolID, dir, cfg.AmountIn, cfg.MinOut)
		if err != nil {
			rootLogger.Error("Swap rejected", "swap", i+1, "error", err)
			os.Exit(1)
		}
		if err := encoder.Encode(result); err != nil {
			rootLogger.Error("Failed to encode result", "error", err)
			os.Exit(1)
		}
	}

	view, _ := system.View().Get(poolID)
	rootLogger.Info("simulation complete",
		"swaps", cfg.Swaps,
		"reserveX", view.ReserveX,
		"reserveY", view.ReserveY,
		"version", view.Version)
}
