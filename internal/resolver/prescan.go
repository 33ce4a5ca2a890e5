package resolver

import (
	"github.com/GoNZooo/gotyno/internal/token"
	"github.com/GoNZooo/gotyno/internal/types"
	"github.com/GoNZooo/gotyno/schema"
)

// scanImports runs a lightweight token-level pass over a buffer to collect
// the set of module names it imports, without building an AST. It looks for
// a Symbol token reading "import" at the start of a logical line, followed
// by a Name or Symbol token naming the target module.
//
// This only needs to be approximately right for ordering purposes: a
// genuine syntax error in an import line is still caught properly later, by
// the real parser, once module order has been decided.
func scanImports(filename string, buffer []byte, logger types.Logger) []string {
	tz := token.New(filename, buffer, logger)
	var imports []string
	atLineStart := true
	for {
		tok, _, err := tz.Next()
		if err != nil {
			return imports
		}
		switch tok.Kind {
		case token.KindNewline:
			atLineStart = true
			continue
		case token.KindSpace:
			continue
		}
		wasLineStart := atLineStart
		atLineStart = false

		if wasLineStart && tok.Kind == token.KindSymbol && tok.Text == "import" {
			name, ok := nextNameOrSymbol(tz)
			if ok {
				imports = append(imports, name)
			}
		}
	}
}

// nextNameOrSymbol skips spaces and returns the text of the following Name
// or Symbol token, if any.
func nextNameOrSymbol(tz *token.Tokenizer) (string, bool) {
	for {
		tok, _, err := tz.Peek()
		if err != nil {
			return "", false
		}
		if tok.Kind != token.KindSpace {
			break
		}
		tz.Next()
	}
	tok, _, err := tz.Peek()
	if err != nil {
		return "", false
	}
	if tok.Kind != token.KindName && tok.Kind != token.KindSymbol {
		return "", false
	}
	tz.Next()
	return tok.Text, true
}

// moduleName derives a module's name from its filename: the basename with
// any trailing extension removed.
func moduleName(filename string) string {
	base := filename
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '/' {
			base = filename[i+1:]
			break
		}
	}
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			return base[:i]
		}
	}
	return base
}

// buildOrder computes a processing order over buffers such that every
// module is parsed after the modules it imports, preferring the input
// order when it is already valid (the common case where the driver supplies
// files bottom-up). Returns a *schema.ParseError when ordering is
// impossible: DuplicateDefinition for a module-name collision, or
// UnknownModule citing a module in an import cycle.
func buildOrder(buffers []schema.BufferData, logger types.Logger) ([]int, map[string][]string, error) {
	names := make([]string, len(buffers))
	indexByName := make(map[string]int, len(buffers))
	for i, b := range buffers {
		name := moduleName(b.Filename)
		if existing, ok := indexByName[name]; ok {
			return nil, nil, &schema.ParseError{
				Kind:     schema.ErrDuplicateDefinition,
				Location: schema.SourceLocation{Filename: b.Filename, Line: 1, Column: 1},
				Name:     name,
				Message:  "module name \"" + name + "\" also used by " + buffers[existing].Filename,
			}
		}
		names[i] = name
		indexByName[name] = i
	}

	deps := make(map[string][]string, len(buffers))
	for i, b := range buffers {
		deps[names[i]] = scanImports(b.Filename, b.Buffer, logger)
	}

	order, err := topoSort(names, deps, indexByName, buffers)
	if err != nil {
		return nil, deps, err
	}
	return order, deps, nil
}

// topoSort performs a stable Kahn's-algorithm topological sort over module
// names, processing ready nodes in their original input order so that an
// already-valid bottom-up ordering is returned unchanged.
func topoSort(
	names []string,
	deps map[string][]string,
	indexByName map[string]int,
	buffers []schema.BufferData,
) ([]int, error) {
	inDegree := make(map[string]int, len(names))
	dependents := make(map[string][]string, len(names))
	for _, name := range names {
		inDegree[name] = 0
	}
	for _, name := range names {
		for _, dep := range deps[name] {
			if _, ok := indexByName[dep]; !ok {
				// Unknown-target imports are reported properly by the real
				// parser once it reaches this module; skip here so a typo
				// doesn't block ordering of the modules that don't need it.
				continue
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	readySet := make(map[string]bool, len(names))
	for _, name := range names {
		if inDegree[name] == 0 {
			readySet[name] = true
		}
	}

	var orderedNames []string
	for len(readySet) > 0 {
		// Always emit the ready node with the lowest original index, so an
		// input order that already respects imports comes back unchanged.
		var next string
		best := len(names) + 1
		for name := range readySet {
			if idx := indexByName[name]; idx < best {
				best = idx
				next = name
			}
		}
		delete(readySet, next)
		orderedNames = append(orderedNames, next)
		for _, dependent := range dependents[next] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				readySet[dependent] = true
			}
		}
	}

	if len(orderedNames) != len(names) {
		for _, name := range names {
			if inDegree[name] > 0 {
				idx := indexByName[name]
				return nil, &schema.ParseError{
					Kind:     schema.ErrUnknownModule,
					Location: schema.SourceLocation{Filename: buffers[idx].Filename, Line: 1, Column: 1},
					Name:     name,
					Message:  "import cycle involving module \"" + name + "\"",
				}
			}
		}
	}

	order := make([]int, len(orderedNames))
	for i, name := range orderedNames {
		order[i] = indexByName[name]
	}
	return order, nil
}
