package main

import (
	"log/slog"

	"member-template/internal/analyze"
	"member-template/internal/config"
	"member-template/internal/model"
	"member-template/internal/typefile"
)

// openModel loads the configured type source and resolves the type
// reference against it.
func openModel(cfg *config.Config, ref model.TypeRef, logger *slog.Logger) (model.TypeModel, model.TypeRef, error) {
	switch cfg.Source {
	case config.SourceFile:
		if cfg.TypeFile == "" {
			return nil, "", usageError("source %q needs a type file (--file)", cfg.Source)
		}

		f, err := typefile.LoadFile(cfg.TypeFile)
		if err != nil {
			return nil, "", err
		}

		logger.Debug("loaded type file", "path", cfg.TypeFile, "types", len(f.Types))

		return f.Model(), ref, nil

	case config.SourceGo:
		patterns := cfg.Packages
		if len(patterns) == 0 {
			patterns = []string{"."}
		}

		analyzer := analyze.NewAnalyzer(analyze.WithDir(cfg.Dir), analyze.WithLogger(logger))

		graph, err := analyzer.LoadPackages(patterns...)
		if err != nil {
			return nil, "", err
		}

		return graph, qualify(graph, ref), nil

	default:
		return nil, "", usageError("unknown source %q", cfg.Source)
	}
}

// qualify prefixes a bare type name with the package path when exactly one
// package was loaded.
func qualify(graph *analyze.TypeGraph, ref model.TypeRef) model.TypeRef {
	id, err := analyze.ParseTypeID(ref)
	if err != nil || id.PkgPath != "" || len(graph.Packages) != 1 {
		return ref
	}

	for path := range graph.Packages {
		id.PkgPath = path
	}

	return id.Ref()
}
