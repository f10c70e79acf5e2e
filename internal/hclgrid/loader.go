// Package hclgrid loads and decodes HCL grid files into the schema model.
package hclgrid

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/vk/codegrid/internal/ctxlog"
	"github.com/vk/codegrid/internal/schema"
)

// Load reads every grid file reachable from path (a single .hcl file or a
// directory searched recursively) and merges their run blocks into one
// GridConfig. Directory results are sorted so run order is stable across
// platforms.
func Load(ctx context.Context, path string) (*schema.GridConfig, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findGridFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl grid files found at %s", path)
	}
	logger.Debug("Found grid files to load.", "files", files)

	parser := hclparse.NewParser()
	evalCtx := newEvalContext()
	merged := &schema.GridConfig{}

	for _, filePath := range files {
		file, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %s", filePath, diags.Error())
		}

		var config schema.GridConfig
		if diags := gohcl.DecodeBody(file.Body, evalCtx, &config); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %s", filePath, diags.Error())
		}
		merged.Runs = append(merged.Runs, config.Runs...)
		logger.Debug("Decoded grid file.", "path", filePath, "runs_found", len(config.Runs))
	}

	return merged, nil
}

// newEvalContext exposes size constants to grid expressions, so symbol
// sizes can be written as multiples of kib or mib.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"kib": cty.NumberIntVal(1024),
			"mib": cty.NumberIntVal(1024 * 1024),
		},
	}
}

// findGridFiles resolves path to the list of grid files it names: the
// path itself when it is a file, otherwise every .hcl file under it.
func findGridFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("grid path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
