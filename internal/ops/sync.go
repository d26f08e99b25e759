package ops

import (
	"context"
	"fmt"

	"agnoctl/internal/config"
	"agnoctl/internal/httpapi"
	"agnoctl/internal/ollama"
	"agnoctl/pkg/types"
)

// engine is the slice of the Ollama client the sync loop needs.
type engine interface {
	Tags(ctx context.Context) ([]ollama.Model, error)
	Pull(ctx context.Context, name string, onStatus func(string)) error
}

// syncModels ensures every catalogue identifier is cached by the engine.
// Already-cached models are skipped; a failed pull is logged as a warning
// and the loop continues, so one unavailable tag never aborts the batch.
// Only the up-front tags query is fatal.
func syncModels(ctx context.Context, eng engine, catalogue []string) (types.SyncResult, error) {
	var res types.SyncResult
	tags, err := eng.Tags(ctx)
	if err != nil {
		return res, fmt.Errorf("query cached models: %w", err)
	}
	cached := ollama.NewTagSet(tags)
	for _, name := range catalogue {
		if cached.Has(name) {
			info("[models] %s already cached", name)
			res.Present = append(res.Present, name)
			continue
		}
		info("[models] pulling %s ...", name)
		err := eng.Pull(ctx, name, func(status string) { debug("[models] %s: %s", name, status) })
		httpapi.RecordPull(err == nil)
		if err != nil {
			warn("[models] pull %s failed: %v", name, err)
			res.Failed = append(res.Failed, name)
			continue
		}
		info("[models] pulled %s", name)
		res.Pulled = append(res.Pulled, name)
	}
	info("[models] sync done: %d present, %d pulled, %d failed",
		len(res.Present), len(res.Pulled), len(res.Failed))
	return res, nil
}

func modelsSync(ctx context.Context, cfg config.Config) error {
	_, err := syncModels(ctx, ollama.New(cfg.OllamaHost), cfg.Models)
	return err
}

// modelsList prints the engine's cached models with their sizes.
func modelsList(ctx context.Context, cfg config.Config) error {
	tags, err := ollama.New(cfg.OllamaHost).Tags(ctx)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		fmt.Println("no models cached")
		return nil
	}
	for _, m := range tags {
		fmt.Printf("%-40s %8.1f MB\n", m.Name, float64(m.Size)/(1024*1024))
	}
	return nil
}
