package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"

	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/api"
	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/config"
	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/dao"
	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/service"
)

func main() {
	root := &cobra.Command{
		Use:   "catalog",
		Short: "TR-03151 interface-design catalog server",
	}
	root.AddCommand(serveCmd(), snapshotCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			applyLogLevel(cfg.LogLevel)

			instanceDAO := &dao.InstanceDAO{Root: cfg.DataDir}
			processService := &service.ProcessService{}
			catalogService := &service.CatalogService{ProcessService: processService}

			app := fiber.New()
			router := app.Group("/api")

			(&api.InstanceAPI{
				Router:      router,
				InstanceDAO: instanceDAO,
			}).Register()
			(&api.CatalogAPI{
				Router:         router,
				InstanceDAO:    instanceDAO,
				CatalogService: catalogService,
			}).Register()
			(&api.ProcessAPI{
				Router:         router,
				InstanceDAO:    instanceDAO,
				ProcessService: processService,
			}).Register()

			log.Info(fmt.Sprintf("Serving catalog from %v on :%v", cfg.DataDir, cfg.Port))
			return app.Listen(":" + cfg.Port)
		},
	}
}

func snapshotCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Dump every API payload to static JSON files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			instanceDAO := &dao.InstanceDAO{Root: cfg.DataDir}
			processService := &service.ProcessService{}
			catalogService := &service.CatalogService{ProcessService: processService}

			instances, err := instanceDAO.FindAll()
			if err != nil {
				return err
			}

			for _, instance := range instances {
				log.Info(fmt.Sprintf("Snapshot: instance %v", instance.Name))
				dir := filepath.Join(outDir, instance.Name)

				payloads := map[string]any{
					"functions.json":      catalogService.LoadFunctions(instance.Path),
					"enums.json":          catalogService.LoadEnums(instance.Path),
					"types.json":          catalogService.LoadTypes(instance.Path),
					"exceptions.json":     catalogService.LoadExceptions(instance.Path),
					"processes.json":      processService.LoadProcesses(instance.Path),
					"process-chains.json": processService.LoadProcessChains(instance.Path),
					"overview.json":       catalogService.GetOverview(instance.Path),
				}

				for name, payload := range payloads {
					if err := writeJSON(filepath.Join(dir, name), payload); err != nil {
						return fmt.Errorf("instance %s: %w", instance.Name, err)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "./snapshot", "output directory")
	return cmd
}

func applyLogLevel(level string) {
	switch level {
	case "warn":
		log.SetLevel(log.LevelWarn)
	case "error":
		log.SetLevel(log.LevelError)
	case "debug":
		log.SetLevel(log.LevelDebug)
	default:
		log.SetLevel(log.LevelInfo)
	}
}

func writeJSON(path string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	bytes, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0o644)
}
