package dao

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Subdirectories of the data root holding instance and template catalogs
const (
	instancesDir    = "instances"
	templatesDir    = "templates"
	defaultTemplate = "default"
)

// Instance describes one catalog directory tree
type Instance struct {
	Name       string `json:"name"`
	Path       string `json:"-"`
	IsTemplate bool   `json:"isTemplate"`
}

// InstanceDAO resolves catalog instances on disk. An instance is a named
// directory under <root>/instances; the default template under
// <root>/templates serves as fallback when an instance has no content of
// its own.
type InstanceDAO struct {
	Root string
}

// FindAll lists every instance directory, sorted by name. Templates are
// appended with their flag set. An absent data root yields an empty list.
func (d *InstanceDAO) FindAll() ([]*Instance, error) {
	instances := d.listDir(filepath.Join(d.Root, instancesDir), false)
	instances = append(instances, d.listDir(filepath.Join(d.Root, templatesDir), true)...)

	sort.SliceStable(instances, func(i, j int) bool {
		if instances[i].IsTemplate != instances[j].IsTemplate {
			return !instances[i].IsTemplate
		}
		return instances[i].Name < instances[j].Name
	})
	return instances, nil
}

// Resolve maps an instance name to its base path, falling back to the
// default template when the instance directory does not exist.
func (d *InstanceDAO) Resolve(name string) (string, error) {
	name = filepath.Base(name)

	instancePath := filepath.Join(d.Root, instancesDir, name)
	if info, err := os.Stat(instancePath); err == nil && info.IsDir() {
		return instancePath, nil
	}

	templatePath := filepath.Join(d.Root, templatesDir, defaultTemplate)
	if info, err := os.Stat(templatePath); err == nil && info.IsDir() {
		return templatePath, nil
	}

	return "", fmt.Errorf("no instance or default template for %q", name)
}

func (d *InstanceDAO) listDir(dir string, isTemplate bool) []*Instance {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var instances []*Instance
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		instances = append(instances, &Instance{
			Name:       entry.Name(),
			Path:       filepath.Join(dir, entry.Name()),
			IsTemplate: isTemplate,
		})
	}
	return instances
}
