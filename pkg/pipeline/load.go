package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/coursemap/pkg/catalog"
	"github.com/matzehuels/coursemap/pkg/observability"
)

// SourceBuiltin names the compiled-in catalog in hooks and logs.
const SourceBuiltin = "builtin"

// Load returns the catalog at path, or the compiled-in catalog when path is
// empty. Errors carry pkg/errors codes from [catalog.ImportFile].
func Load(ctx context.Context, path string) (reg *catalog.Registry, err error) {
	source := path
	if source == "" {
		source = SourceBuiltin
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()
	defer func() {
		hooks.OnLoadComplete(ctx, source, reg.Len(), time.Since(start), err)
	}()

	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.ImportFile(path)
}
