package service

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/lo"

	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/concurrent"
	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/data"
	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/parser"
)

// Flat catalog categories, each a directory of XML files under the
// instance base path
const (
	CategoryFunctions  = "functions"
	CategoryEnums      = "enums"
	CategoryTypes      = "types"
	CategoryExceptions = "exceptions"
)

// parseConcurrency bounds the per-collection file fan-out
const parseConcurrency = 8

// CatalogService assembles the flat entity collections of a catalog
// instance. It holds no state; every call is a fresh read-only traversal of
// the instance directory.
type CatalogService struct {
	ProcessService *ProcessService
}

// LoadFunctions loads and sorts the function summaries of an instance
func (s *CatalogService) LoadFunctions(basePath string) []data.FunctionSummary {
	functions := loadSummaries(
		filepath.Join(basePath, CategoryFunctions),
		"Function Loader",
		parser.ParseFunctionSummary,
	)
	sort.SliceStable(functions, func(i, j int) bool {
		return categoryNameLess(
			functions[i].Category.Default(), functions[i].Name,
			functions[j].Category.Default(), functions[j].Name,
		)
	})
	return functions
}

// LoadEnums loads the enumeration summaries of an instance, sorted by name
func (s *CatalogService) LoadEnums(basePath string) []data.EnumSummary {
	enums := loadSummaries(
		filepath.Join(basePath, CategoryEnums),
		"Enum Loader",
		parser.ParseEnumSummary,
	)
	sort.SliceStable(enums, func(i, j int) bool {
		return enums[i].Name < enums[j].Name
	})
	return enums
}

// LoadTypes loads and sorts the data-type summaries of an instance
func (s *CatalogService) LoadTypes(basePath string) []data.TypeSummary {
	types := loadSummaries(
		filepath.Join(basePath, CategoryTypes),
		"Type Loader",
		parser.ParseTypeSummary,
	)
	sort.SliceStable(types, func(i, j int) bool {
		return categoryNameLess(
			types[i].Category.Default(), types[i].Name,
			types[j].Category.Default(), types[j].Name,
		)
	})
	return types
}

// LoadExceptions loads and sorts the exception summaries of an instance
func (s *CatalogService) LoadExceptions(basePath string) []data.ExceptionSummary {
	exceptions := loadSummaries(
		filepath.Join(basePath, CategoryExceptions),
		"Exception Loader",
		parser.ParseExceptionSummary,
	)
	sort.SliceStable(exceptions, func(i, j int) bool {
		return categoryNameLess(
			exceptions[i].Category.Default(), exceptions[i].Name,
			exceptions[j].Category.Default(), exceptions[j].Name,
		)
	})
	return exceptions
}

// GroupFunctionsByCategory groups the sorted functions by category label,
// category order following first appearance
func (s *CatalogService) GroupFunctionsByCategory(basePath string) *data.Grouped[data.FunctionSummary] {
	grouped := data.NewGrouped[data.FunctionSummary]()
	for _, fn := range s.LoadFunctions(basePath) {
		grouped.Add(fn.Category.Default(), fn)
	}
	return grouped
}

// GroupEnumsByCategory groups the sorted enums by category label
func (s *CatalogService) GroupEnumsByCategory(basePath string) *data.Grouped[data.EnumSummary] {
	grouped := data.NewGrouped[data.EnumSummary]()
	for _, enum := range s.LoadEnums(basePath) {
		grouped.Add(enum.Category.Default(), enum)
	}
	return grouped
}

// GroupTypesByCategory groups the sorted types by category label
func (s *CatalogService) GroupTypesByCategory(basePath string) *data.Grouped[data.TypeSummary] {
	grouped := data.NewGrouped[data.TypeSummary]()
	for _, t := range s.LoadTypes(basePath) {
		grouped.Add(t.Category.Default(), t)
	}
	return grouped
}

// GroupExceptionsByCategory groups the sorted exceptions by category label
func (s *CatalogService) GroupExceptionsByCategory(basePath string) *data.Grouped[data.ExceptionSummary] {
	grouped := data.NewGrouped[data.ExceptionSummary]()
	for _, ex := range s.LoadExceptions(basePath) {
		grouped.Add(ex.Category.Default(), ex)
	}
	return grouped
}

// GroupExceptionsBySeverity groups the sorted exceptions by severity
func (s *CatalogService) GroupExceptionsBySeverity(basePath string) *data.Grouped[data.ExceptionSummary] {
	grouped := data.NewGrouped[data.ExceptionSummary]()
	for _, ex := range s.LoadExceptions(basePath) {
		grouped.Add(ex.Severity, ex)
	}
	return grouped
}

// GetFunctionDetail loads the full form of one function, nil when absent
func (s *CatalogService) GetFunctionDetail(basePath, id string) *data.FunctionDetail {
	return parser.ParseFunctionDetail(entityPath(basePath, CategoryFunctions, id))
}

// GetEnumDetail loads the full form of one enumeration, nil when absent
func (s *CatalogService) GetEnumDetail(basePath, id string) *data.EnumDetail {
	return parser.ParseEnumDetail(entityPath(basePath, CategoryEnums, id))
}

// GetTypeDetail loads the full form of one data type, nil when absent
func (s *CatalogService) GetTypeDetail(basePath, id string) *data.TypeDetail {
	return parser.ParseTypeDetail(entityPath(basePath, CategoryTypes, id))
}

// GetExceptionDetail loads the full form of one exception, nil when absent
func (s *CatalogService) GetExceptionDetail(basePath, id string) *data.ExceptionDetail {
	return parser.ParseExceptionDetail(entityPath(basePath, CategoryExceptions, id))
}

// GetOverview composes counts and category breakdowns across every entity
// kind of an instance. Absent category directories contribute zero counts.
func (s *CatalogService) GetOverview(basePath string) data.Overview {
	s.logInfo(fmt.Sprintf("Building overview for %v", basePath))

	functions := s.LoadFunctions(basePath)
	enums := s.LoadEnums(basePath)
	types := s.LoadTypes(basePath)
	exceptions := s.LoadExceptions(basePath)
	processes := s.ProcessService.LoadProcesses(basePath)
	chains := s.ProcessService.LoadProcessChains(basePath)

	return data.Overview{
		Functions: data.CategoryStats{
			Count: len(functions),
			Categories: lo.CountValuesBy(functions, func(f data.FunctionSummary) string {
				return f.Category.Default()
			}),
		},
		Enums: data.CategoryStats{
			Count: len(enums),
			Categories: lo.CountValuesBy(enums, func(e data.EnumSummary) string {
				return e.Category.Default()
			}),
		},
		Types: data.CategoryStats{
			Count: len(types),
			Categories: lo.CountValuesBy(types, func(t data.TypeSummary) string {
				return t.Category.Default()
			}),
		},
		Exceptions: data.CategoryStats{
			Count: len(exceptions),
			Categories: lo.CountValuesBy(exceptions, func(e data.ExceptionSummary) string {
				return e.Category.Default()
			}),
		},
		Processes: data.ProcessStats{
			Count: len(processes),
			Actors: lo.CountValuesBy(processes, func(p data.ProcessSummary) string {
				return p.Actor
			}),
			Diagrams: lo.CountValuesBy(processes, func(p data.ProcessSummary) string {
				return p.DiagramType
			}),
		},
		ProcessChains: data.ChainStats{
			Count: len(chains),
			Folders: lo.CountValuesBy(chains, func(c data.ProcessChainSummary) string {
				return c.Folder
			}),
		},
	}
}

// loadSummaries fans the per-file parses of one category directory out over
// the shared runner. Files whose normalizer yields nil are dropped
// silently; an unexpected panic excludes the single file, preserving the
// rest of the collection.
func loadSummaries[R any](dir, prefix string, parse func(path string) *R) []R {
	files := parser.ListXMLFiles(dir)
	if len(files) == 0 {
		return []R{}
	}

	runner := concurrent.NewRunner[parser.XMLFile, *R](concurrent.RunnerConfig{
		MaxConcurrency: parseConcurrency,
		LogPrefix:      prefix,
	})

	result := runner.Run(files, func(
		file parser.XMLFile,
		messages chan<- string,
		results chan<- *R,
		errors chan<- error,
	) {
		defer func() {
			if r := recover(); r != nil {
				errors <- fmt.Errorf("%s: %v", file.Name, r)
			}
		}()

		if record := parse(file.Path); record != nil {
			results <- record
		}
	})

	for _, err := range result.Errors {
		log.Warn(fmt.Sprintf("%s: excluded file: %v", prefix, err))
	}

	return lo.Map(result.Results, func(r *R, _ int) R { return *r })
}

// entityPath builds the XML path of one entity, keeping the id inside the
// category directory
func entityPath(basePath, category, id string) string {
	return filepath.Join(basePath, category, filepath.Base(id)+".xml")
}

func categoryNameLess(categoryA, nameA, categoryB, nameB string) bool {
	if categoryA != categoryB {
		return categoryA < categoryB
	}
	return nameA < nameB
}

func (s *CatalogService) logInfo(message string) {
	log.Info(fmt.Sprintf("Catalog Service: %v", message))
}
