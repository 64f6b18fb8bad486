package definitions

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadServices reads every regular file in dir as one service document.
//
// Files are returned in directory enumeration order (sorted by file name).
// Subdirectories are skipped. The first malformed document aborts the load.
func LoadServices(dir string) ([]Service, error) {
	paths, err := listFiles(dir)
	if err != nil {
		return nil, err
	}

	services := make([]Service, 0, len(paths))
	for _, path := range paths {
		var svc Service
		raw, err := decodeFile(path, &svc)
		if err != nil {
			return nil, err
		}
		svc.Source = path
		svc.Raw = raw
		services = append(services, svc)
	}

	return services, nil
}

// LoadCustomTypes reads every regular file in dir as one custom types document.
// A missing directory yields no documents.
func LoadCustomTypes(dir string) ([]CustomTypesDocument, error) {
	if dir == "" {
		return nil, nil
	}

	paths, err := listFiles(dir)
	if errors.Is(err, ErrDirectoryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	docs := make([]CustomTypesDocument, 0, len(paths))
	for _, path := range paths {
		var doc CustomTypesDocument
		raw, err := decodeFile(path, &doc)
		if err != nil {
			return nil, err
		}
		doc.Source = path
		doc.Raw = raw
		docs = append(docs, doc)
	}

	return docs, nil
}

// listFiles returns the regular files of dir in enumeration order
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read definitions directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// decodeFile parses a YAML file into out and also returns its plain decoded form.
// Parse errors carry the file path and the line reported by the YAML parser.
func decodeFile(path string, out any) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition %s: %w", path, err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, path, err)
	}
	if node.Kind == 0 || len(node.Content) == 0 {
		return nil, fmt.Errorf("%w: %w: %s", ErrMalformedDocument, ErrEmptyDocument, path)
	}

	root := node.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s: line %d, column %d: document root must be a mapping",
			ErrMalformedDocument, path, root.Line, root.Column)
	}

	if err := node.Decode(out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, path, err)
	}

	var raw any
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, path, err)
	}

	return raw, nil
}
