package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gofiber/fiber/v2/log"

	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/concurrent"
	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/data"
	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/parser"
)

// processesDir is the directory holding both processes and process chains
const processesDir = "processes"

// ProcessService discovers processes and process chains in the nested
// directory tree under <basePath>/processes. Both entity kinds live under
// the same parent with no naming convention: a folder containing a flow or
// sequenz subfolder is an actor folder full of processes, anything else is
// a chain folder whose processChain-rooted files are chains.
type ProcessService struct{}

// processFile is one XML file classified by the discovery walk, carrying
// its directory-derived identity
type processFile struct {
	path        string
	actor       string
	diagramType string
}

type chainFile struct {
	path   string
	folder string
}

// LoadProcesses walks the actor folders and normalizes every process file,
// sorted by (actor, diagramType, id)
func (s *ProcessService) LoadProcesses(basePath string) []data.ProcessSummary {
	files := s.discoverProcessFiles(basePath)
	if len(files) == 0 {
		return []data.ProcessSummary{}
	}

	runner := concurrent.NewRunner[processFile, *data.ProcessSummary](concurrent.RunnerConfig{
		MaxConcurrency: parseConcurrency,
		LogPrefix:      "Process Loader",
	})

	result := runner.Run(files, func(
		file processFile,
		messages chan<- string,
		results chan<- *data.ProcessSummary,
		errors chan<- error,
	) {
		defer func() {
			if r := recover(); r != nil {
				errors <- fmt.Errorf("%s: %v", file.path, r)
			}
		}()

		if summary := parser.ParseProcessSummary(file.path, file.actor, file.diagramType); summary != nil {
			results <- summary
		}
	})

	for _, err := range result.Errors {
		log.Warn(fmt.Sprintf("Process Loader: excluded file: %v", err))
	}

	processes := make([]data.ProcessSummary, 0, len(result.Results))
	for _, p := range result.Results {
		processes = append(processes, *p)
	}

	sort.SliceStable(processes, func(i, j int) bool {
		a, b := processes[i], processes[j]
		if a.Actor != b.Actor {
			return a.Actor < b.Actor
		}
		if a.DiagramType != b.DiagramType {
			return a.DiagramType < b.DiagramType
		}
		return a.Id < b.Id
	})
	return processes
}

// LoadProcessChains walks the chain folders and normalizes every file
// rooted at a processChain element, sorted by (folder, id)
func (s *ProcessService) LoadProcessChains(basePath string) []data.ProcessChainSummary {
	files := s.discoverChainFiles(basePath)
	if len(files) == 0 {
		return []data.ProcessChainSummary{}
	}

	runner := concurrent.NewRunner[chainFile, *data.ProcessChainSummary](concurrent.RunnerConfig{
		MaxConcurrency: parseConcurrency,
		LogPrefix:      "Process Chain Loader",
	})

	result := runner.Run(files, func(
		file chainFile,
		messages chan<- string,
		results chan<- *data.ProcessChainSummary,
		errors chan<- error,
	) {
		defer func() {
			if r := recover(); r != nil {
				errors <- fmt.Errorf("%s: %v", file.path, r)
			}
		}()

		// non-chain files in a chain folder are ignored, not errors
		if summary := parser.ParseProcessChainSummary(file.path, file.folder); summary != nil {
			results <- summary
		}
	})

	for _, err := range result.Errors {
		log.Warn(fmt.Sprintf("Process Chain Loader: excluded file: %v", err))
	}

	chains := make([]data.ProcessChainSummary, 0, len(result.Results))
	for _, c := range result.Results {
		chains = append(chains, *c)
	}

	sort.SliceStable(chains, func(i, j int) bool {
		a, b := chains[i], chains[j]
		if a.Folder != b.Folder {
			return a.Folder < b.Folder
		}
		return a.Id < b.Id
	})
	return chains
}

// GetProcessDetail loads the full form of one process addressed by its
// composite identity, nil when absent
func (s *ProcessService) GetProcessDetail(basePath, actor, diagramType, id string) *data.ProcessDetail {
	path := filepath.Join(
		basePath, processesDir,
		filepath.Base(actor), filepath.Base(diagramType), filepath.Base(id)+".xml",
	)
	return parser.ParseProcessDetail(path, actor, diagramType)
}

// GetProcessChainDetail loads the full form of one process chain, nil when
// absent
func (s *ProcessService) GetProcessChainDetail(basePath, folder, id string) *data.ProcessChainDetail {
	path := filepath.Join(basePath, processesDir, filepath.Base(folder), filepath.Base(id)+".xml")
	return parser.ParseProcessChainDetail(path, folder)
}

// discoverProcessFiles applies the folder-shape rule: a top-level folder
// under processes/ containing a flow or sequenz subfolder is an actor
// folder, and every XML file under {actor}/{diagramType} is a process.
func (s *ProcessService) discoverProcessFiles(basePath string) []processFile {
	var files []processFile
	for _, folder := range s.topLevelFolders(basePath) {
		folderPath := filepath.Join(basePath, processesDir, folder)
		diagramTypes := diagramSubfolders(folderPath)
		if len(diagramTypes) == 0 {
			continue // chain folder
		}
		for _, diagramType := range diagramTypes {
			for _, file := range parser.ListXMLFiles(filepath.Join(folderPath, diagramType)) {
				files = append(files, processFile{
					path:        file.Path,
					actor:       folder,
					diagramType: diagramType,
				})
			}
		}
	}
	return files
}

// discoverChainFiles collects the XML files directly inside every folder
// that is not an actor folder. Whether a file really is a chain is decided
// by its root element during parsing.
func (s *ProcessService) discoverChainFiles(basePath string) []chainFile {
	var files []chainFile
	for _, folder := range s.topLevelFolders(basePath) {
		folderPath := filepath.Join(basePath, processesDir, folder)
		if len(diagramSubfolders(folderPath)) > 0 {
			continue // actor folder
		}
		for _, file := range parser.ListXMLFiles(folderPath) {
			files = append(files, chainFile{path: file.Path, folder: folder})
		}
	}
	return files
}

// topLevelFolders lists the immediate subfolders of processes/. Files
// directly under processes/ (map.xml) are never catalog entities.
func (s *ProcessService) topLevelFolders(basePath string) []string {
	entries, err := os.ReadDir(filepath.Join(basePath, processesDir))
	if err != nil {
		return nil
	}

	var folders []string
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, entry.Name())
		}
	}
	return folders
}

// diagramSubfolders returns which of the literal flow and sequenz
// subfolders exist, in that order
func diagramSubfolders(folderPath string) []string {
	var present []string
	for _, diagramType := range []string{data.DiagramTypeFlow, data.DiagramTypeSequenz} {
		info, err := os.Stat(filepath.Join(folderPath, diagramType))
		if err == nil && info.IsDir() {
			present = append(present, diagramType)
		}
	}
	return present
}
