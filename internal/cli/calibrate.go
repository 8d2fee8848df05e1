package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/screenruler/pkg/errors"
	"github.com/matzehuels/screenruler/pkg/render/surface"
	"github.com/matzehuels/screenruler/pkg/ruler"
	"github.com/matzehuels/screenruler/pkg/view"
)

// Nominal terminal cell size in CSS pixels, used to turn the terminal size
// into a viewport.
const (
	cellWidthPx  = 8
	cellHeightPx = 16
)

// Density steps per key press.
const (
	fineStep   = 1
	coarseStep = 10
)

var (
	sliderFillStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	sliderTrackStyle = lipgloss.NewStyle().Foreground(colorDim)
	rulerStyle       = lipgloss.NewStyle().Foreground(colorWhite)
)

// calibrateModel is the bubbletea model for interactive calibration. Every
// key press becomes a control event on the controller.
type calibrateModel struct {
	ctrl     *view.Controller
	loc      *view.MemoryLocation
	cols     int
	err      error
	quitting bool
}

func newCalibrateModel(fragment string, dpr float64) calibrateModel {
	loc := view.NewMemoryLocation(fragment)
	ctrl := view.NewController(loc,
		view.WithDevicePixelRatio(dpr),
		view.WithViewport(ruler.Viewport{Width: 80 * cellWidthPx, Height: 24 * cellHeightPx}))
	ctrl.Load()
	return calibrateModel{ctrl: ctrl, loc: loc, cols: 80}
}

func (m calibrateModel) Init() tea.Cmd {
	return nil
}

func (m calibrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var e view.Event
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "left", "h":
			e = view.SliderInput(m.nudge(-fineStep))
		case "right", "l":
			e = view.SliderInput(m.nudge(fineStep))
		case "shift+left", "H":
			e = view.SliderInput(m.nudge(-coarseStep))
		case "shift+right", "L":
			e = view.SliderInput(m.nudge(coarseStep))
		case "enter":
			e = view.SliderChange(ruler.FormatPPI(m.ctrl.Controls().Slider.Value))
		case "u":
			e = view.UnitChange(string(otherUnit(m.ctrl.Config().Unit)))
		case "c":
			e = view.ToggleConfig()
		default:
			return m, nil
		}
		m.err = m.ctrl.Dispatch(e)
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.err = m.ctrl.Dispatch(view.Resize(float64(msg.Width*cellWidthPx), float64(msg.Height*cellHeightPx)))
	}
	return m, nil
}

// nudge returns the slider value moved by delta, as the slider would
// report it.
func (m calibrateModel) nudge(delta float64) string {
	return ruler.FormatPPI(m.ctrl.Controls().Slider.Value + delta)
}

func otherUnit(u ruler.Unit) ruler.Unit {
	if u == ruler.Inch {
		return ruler.Centimeter
	}
	return ruler.Inch
}

func (m calibrateModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Calibrate"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("Hold a real ruler against the screen and adjust until the marks match."))
	b.WriteString("\n\n")
	b.WriteString(rulerStrip(m.ctrl.Surface(), m.cols))
	b.WriteString("\n\n")

	ctl := m.ctrl.Controls()
	if ctl.PanelOpen {
		b.WriteString(renderSlider(ctl.Slider, max(m.cols-24, 10)))
		b.WriteString(fmt.Sprintf(" %s ppi\n", StyleHighlight.Render(fmt.Sprint(ctl.Number))))
		b.WriteString(renderRadios(ctl))
		b.WriteString("\n")
	}

	b.WriteString(StyleDim.Render("Saved: "))
	b.WriteString(StyleLink.Render(m.loc.String()))
	if decodeFragment(m.loc.Fragment(), m.ctrl.DevicePixelRatio()).Config != m.ctrl.Config() {
		b.WriteString(StyleWarning.Render("  (enter to save)"))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render("←/→ adjust  shift+←/→ ×10  ⏎ save  u unit  c controls  q quit"))
	return b.String()
}

// rulerStrip draws the active ruler's horizontal scale across cols terminal
// columns: a tick row and a label row.
func rulerStrip(s *surface.Surface, cols int) string {
	rl := s.Active()
	ppu := s.Scale.RealPixelsPerUnit
	if rl == nil || cols <= 0 || !(ppu > 0) {
		return ""
	}

	ticks := []rune(strings.Repeat("─", cols))
	labels := []rune(strings.Repeat(" ", cols))
	mark := func(units float64, r rune) int {
		col := int(math.Round(units * ppu / cellWidthPx))
		if col >= 0 && col < cols {
			ticks[col] = r
		}
		return col
	}

	mark(0, '┬')
	for i := 0.5; i*ppu/cellWidthPx < float64(cols); i += 0.5 {
		mark(i, '╷')
	}
	for _, l := range rl.Labels() {
		if l.Key.Axis != surface.AxisX {
			continue
		}
		col := mark(float64(l.Key.Offset), '┬')
		start := col - len(l.Text)/2
		if start < 0 || start+len(l.Text) > cols {
			continue
		}
		copy(labels[start:], []rune(l.Text))
	}

	return rulerStyle.Render(string(ticks)) + "\n" + StyleValue.Render(string(labels))
}

func renderSlider(sl view.Slider, width int) string {
	pos := 0
	if sl.Max > sl.Min {
		pos = int(math.Round((sl.Value - sl.Min) / (sl.Max - sl.Min) * float64(width-1)))
	}
	pos = min(max(pos, 0), width-1)

	return StyleDim.Render(ruler.FormatPPI(sl.Min)+" ") +
		sliderFillStyle.Render(strings.Repeat("━", pos)+"●") +
		sliderTrackStyle.Render(strings.Repeat("─", width-1-pos)) +
		StyleDim.Render(" "+ruler.FormatPPI(sl.Max))
}

func renderRadios(ctl view.Controls) string {
	var parts []string
	for _, u := range ruler.Units {
		box := "( )"
		if ctl.Checked(u) {
			box = StyleHighlight.Render("(•)")
		}
		parts = append(parts, box+" "+string(u))
	}
	return strings.Join(parts, "  ") + "\n"
}

// calibrateCommand creates the interactive calibrate command.
func (c *CLI) calibrateCommand() *cobra.Command {
	var fragment string
	dpr := 1.0

	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Adjust the density interactively in the terminal",
		Long: `Calibrate shows a ruler strip sized from the terminal and lets you adjust the
density until it matches a physical ruler. The terminal cell size is assumed
to be 8x16 pixels, so use the result as a starting point and confirm it with
'screenruler render'. On exit the saved fragment is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.config.Device.DPR != 0 && !cmd.Flags().Changed("dpr") {
				dpr = c.config.Device.DPR
			}
			if c.config.Render.Fragment != "" && !cmd.Flags().Changed("fragment") {
				fragment = c.config.Render.Fragment
			}
			if err := errors.ValidateDimension("dpr", dpr, maxPixelRatio); err != nil {
				return err
			}

			p := tea.NewProgram(newCalibrateModel(fragment, dpr), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "calibrate")
			}
			m := final.(calibrateModel)
			fmt.Fprintln(cmd.OutOrStdout(), m.loc.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&fragment, "fragment", "", "fragment to start from")
	cmd.Flags().Float64Var(&dpr, "dpr", dpr, "device pixel ratio of the display")
	return cmd
}
