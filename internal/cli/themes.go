package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sketchwire/sketchwire/pkg/sketch"
)

// themesCommand creates the themes command listing the built-in palettes.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available color themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range sketch.ThemeNames() {
				theme := sketch.LookupTheme(name)
				label := name
				if name == sketch.DefaultTheme {
					label += " (default)"
				}
				fmt.Println(StyleHighlight.Render(label))
				printSwatch("background", theme.Background)
				printSwatch("ink", theme.Ink)
				printSwatch("accent", theme.Accent)
				printNewline()
			}
			return nil
		},
	}
}

// printSwatch prints a colored block next to the role and hex value.
func printSwatch(role, hex string) {
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
	fmt.Println("  " + block + " " + StyleDim.Render(fmt.Sprintf("%-10s", role)) + " " + StyleValue.Render(hex))
}
