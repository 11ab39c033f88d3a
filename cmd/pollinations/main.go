// Demo entry point exercising both endpoints. The library contract lives in
// the root package; nothing here is required to use it.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmorgan81/pollinations"
	"github.com/dmorgan81/pollinations/internal/inject"
	"github.com/dmorgan81/pollinations/internal/log"
	"github.com/go-logr/logr"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

func main() {
	logger := log.New(os.Stderr, slog.LevelInfo)
	ctx := log.NewContext(context.Background(), logger)
	ctx = logr.NewContext(ctx, logr.FromSlogHandler(logger.Handler()))

	injector := inject.Setup(ctx)
	defer func() { _ = injector.Shutdown() }()

	client := do.MustInvoke[*pollinations.Client](injector)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		reply, err := client.Chat(ctx, pollinations.ChatParams{Prompt: "Hi"})
		if err != nil {
			return err
		}
		logger.Info("chat reply", "text", reply)
		return nil
	})
	group.Go(func() error {
		result, err := client.GenerateImage(ctx, pollinations.ImageParams{
			Prompt: "A red dodge challenger on a street at night with neon lights",
			Model:  pollinations.ModelFlux3D,
		})
		if err != nil {
			return err
		}
		logger.Info("image generated", "result", result)
		return nil
	})
	if err := group.Wait(); err != nil {
		logger.Error("demo failed", "err", err)
		os.Exit(1)
	}
}
