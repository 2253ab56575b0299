package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/idamarten/turnus/internal/cli/formatter"
	"github.com/idamarten/turnus/internal/domain"
)

// turnusHuhTheme returns a custom huh theme using the Gruvbox palette.
func turnusHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newSetupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure wage settings interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("setup requires an interactive terminal")
			}

			ctx := context.Background()
			current, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			mode := "tier"
			customRate := ""
			if current.Wage.CustomRate != nil {
				mode = "custom"
				customRate = current.Wage.CustomRate.String()
			}
			tier := "1"
			if current.Wage.PresetTier != nil {
				tier = strconv.Itoa(*current.Wage.PresetTier)
			}
			pauseEnabled := current.Pause.Enabled

			tierOptions := make([]huh.Option[string], 0, len(domain.PresetTierIDs()))
			for _, id := range domain.PresetTierIDs() {
				rate, _ := domain.PresetTierRate(id)
				label := fmt.Sprintf("Tier %d (%s kr/h)", id, rate.StringFixed(2))
				tierOptions = append(tierOptions, huh.NewOption(label, strconv.Itoa(id)))
			}

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("Hourly rate").
						Options(
							huh.NewOption("Preset tier", "tier"),
							huh.NewOption("Custom rate", "custom"),
						).
						Value(&mode),
				),
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("Which tier?").
						Options(tierOptions...).
						Value(&tier),
				).WithHideFunc(func() bool { return mode != "tier" }),
				huh.NewGroup(
					huh.NewInput().
						Title("Hourly rate (kr)").
						Placeholder("200.00").
						Value(&customRate).
						Validate(validateRate),
				).WithHideFunc(func() bool { return mode != "custom" }),
				huh.NewGroup(
					huh.NewConfirm().
						Title("Deduct pause from long shifts?").
						Description("Half an hour deducted from shifts over 5.5 hours.").
						Value(&pauseEnabled),
				),
			).WithTheme(turnusHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			next := *current
			next.Pause.Enabled = pauseEnabled
			if mode == "tier" {
				id, err := strconv.Atoi(tier)
				if err != nil {
					return fmt.Errorf("invalid tier: %w", err)
				}
				next.Wage.PresetTier = &id
				next.Wage.CustomRate = nil
			} else {
				rate, err := decimal.NewFromString(customRate)
				if err != nil {
					return fmt.Errorf("invalid rate: %w", err)
				}
				next.Wage.CustomRate = &rate
				next.Wage.PresetTier = nil
			}

			if err := app.Settings.Update(ctx, &next); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Settings saved."))
			return nil
		},
	}
	return cmd
}

func validateRate(s string) error {
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("enter a number like 200.00")
	}
	if rate.IsNegative() {
		return fmt.Errorf("rate cannot be negative")
	}
	return nil
}
