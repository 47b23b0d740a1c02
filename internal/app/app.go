package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fnview/fnview/internal/awsconn"
	"github.com/fnview/fnview/internal/lambda"
	"github.com/fnview/fnview/internal/theme"
	"github.com/fnview/fnview/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Profile    string
	Region     string
	Width      int
	Height     int
	ShowFooter bool
}

// Run retrieves the complete function catalog and then hands it to the
// Bubble Tea program. Retrieval failures abort before any UI starts; no
// partial catalog is ever shown.
func Run(cfg Config) error {
	ctx := context.Background()

	awsCfg, err := awsconn.Load(ctx, cfg.Profile, cfg.Region)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	client := lambda.NewClient(awsCfg)
	catalog, err := lambda.FetchAll(ctx, client)
	if err != nil {
		return err
	}

	WriteReport(os.Stdout, catalog)

	model := ui.NewModel(catalog, theme.Default(), cfg.Width, cfg.Height, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
