package menu

import (
	"context"
	"strings"

	"github.com/pseudomuto/poise/pkg/consts"
	"github.com/pseudomuto/poise/pkg/export"
	"github.com/pseudomuto/poise/pkg/logging"
	"go.uber.org/zap"
)

func (m *Menu) exportProjects(ctx context.Context) error {
	path, err := m.prompt("Enter the file to write (leave blank for " + consts.DefaultExportFile + "): ")
	if err != nil {
		return err
	}

	path = strings.TrimSpace(path)
	if path == "" {
		path = consts.DefaultExportFile
	}

	projects, err := m.stores.Search.List(ctx)
	if err != nil {
		return err
	}

	if err := export.SaveProjects(path, projects); err != nil {
		return err
	}

	logging.FromContext(ctx, m.logger).Info("projects exported",
		zap.String("path", path),
		zap.Int("projects", len(projects)),
	)
	m.printf("Exported %d projects to %s.\n", len(projects), path)
	return nil
}
