package generate

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/tmelzer/cixforge/pkg/config"
	"github.com/tmelzer/cixforge/pkg/errors"
)

// BatchItem is the outcome for one catalog in a batch run. Exactly one of
// Result and Err is set.
type BatchItem struct {
	Catalog string
	Result  *Result
	Err     error
}

// BatchResult summarizes a folder run. Items appear in catalog-path order.
type BatchResult struct {
	RunID string
	Items []BatchItem
}

// Generated returns the number of catalogs that produced a program.
func (b *BatchResult) Generated() int {
	n := 0
	for _, item := range b.Items {
		if item.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of catalogs that errored.
func (b *BatchResult) Failed() int { return len(b.Items) - b.Generated() }

// GenerateFolder generates one program per *.xml catalog in folder. Each
// catalog gets its own output file, named after the catalog and placed in the
// directory of cfg.OutputFile.
//
// Failures are isolated: a bad catalog is logged and recorded, and the batch
// moves on to the next one. Only an empty or missing folder (or context
// cancellation) aborts the whole batch.
func (r *Runner) GenerateFolder(ctx context.Context, folder string, cfg config.Config) (*BatchResult, error) {
	catalogs, err := filepath.Glob(filepath.Join(folder, "*.xml"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalog, err, "scan tooling folder %s", folder)
	}
	if len(catalogs) == 0 {
		return nil, errors.New(errors.ErrCodeCatalogNotFound, "no XML catalogs in tooling folder: %s", folder)
	}
	sort.Strings(catalogs)

	batch := &BatchResult{RunID: uuid.NewString()}
	logger := r.Logger.With("run", batch.RunID)
	outDir := filepath.Dir(cfg.OutputFile)

	for _, catalog := range catalogs {
		if err := ctx.Err(); err != nil {
			return batch, err
		}

		// Each catalog writes its own file; reusing cfg.OutputFile verbatim
		// would make every generation overwrite the previous one.
		runCfg := cfg
		base := strings.TrimSuffix(filepath.Base(catalog), filepath.Ext(catalog))
		runCfg.OutputFile = filepath.Join(outDir, base+".cix")

		res, err := r.Generate(ctx, catalog, runCfg)
		if err != nil {
			logger.Error("generation failed", "catalog", catalog, "err", err)
		}
		batch.Items = append(batch.Items, BatchItem{Catalog: catalog, Result: res, Err: err})
	}

	logger.Info("batch complete", "generated", batch.Generated(), "failed", batch.Failed())
	return batch, nil
}
