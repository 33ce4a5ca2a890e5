// Package resolver drives the single-file parser over a set of source
// buffers in an order that respects their import declarations, weaving
// already-resolved sibling modules in as each one completes.
package resolver

import (
	"github.com/GoNZooo/gotyno/internal/parser"
	"github.com/GoNZooo/gotyno/internal/types"
	"github.com/GoNZooo/gotyno/schema"
)

// Resolve parses every buffer into a schema.Module, keyed by module name
// (the buffer's filename stem), and returns the first *schema.ParseError
// encountered. Modules are processed in an order such that every import
// target is already resolved before its importer is parsed; if the input
// order already satisfies that, it is used unchanged.
func Resolve(buffers []schema.BufferData, logger types.Logger) (map[string]*schema.Module, error) {
	order, _, err := buildOrder(buffers, logger)
	if err != nil {
		return nil, err
	}

	modules := make(map[string]*schema.Module, len(buffers))
	for _, idx := range order {
		buf := buffers[idx]
		name := moduleName(buf.Filename)

		p := parser.New(buf.Filename, buf.Buffer, modules, logger.With("module", name))
		mod, err := p.ParseModule(name)
		if err != nil {
			return nil, err
		}
		modules[name] = mod
		logger.Debug("resolved module", "name", name, "definitions", len(mod.Definitions))
	}
	return modules, nil
}
