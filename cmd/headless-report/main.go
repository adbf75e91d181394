package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Garsondee/deploy-menu/internal/config"
	"github.com/Garsondee/deploy-menu/internal/deploy"
)

type reportOptions struct {
	moves   string
	showLog bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var cfgFile string
	var opts reportOptions
	v := config.New()
	cmd := &cobra.Command{
		Use:   "headless-report",
		Short: "Print the deployment grid, draw order and a scripted cursor walk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			printReport(out, buildMenu(cfg), opts)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.SetOut(out)
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (toml, yaml or json)")
	cmd.Flags().Int("last-option", 12, "linear index of the initially selected cell")
	cmd.Flags().StringVar(&opts.moves, "moves", "", "cursor script, e.g. RRDLU")
	cmd.Flags().BoolVar(&opts.showLog, "log", false, "print the menu event log")
	return cmd
}

func buildMenu(cfg *config.Config) *deploy.Menu {
	region := &deploy.StubRegion{
		Faction: &deploy.StubFaction{Type: cfg.FactionType, Placeholders: map[int]bool{}},
		Storage: cfg.Storage,
	}
	return deploy.NewMenu(region, cfg.Deployed,
		deploy.WithScreenSize(cfg.ScreenWidth, cfg.ScreenHeight),
		deploy.WithGeometry(cfg.Geometry),
		deploy.WithLastOption(cfg.LastOption),
	)
}

func printReport(out io.Writer, m *deploy.Menu, opts reportOptions) {
	fmt.Fprintf(out, "=== Deployment Grid Report ===\n\n")
	fmt.Fprintf(out, "%s\n", renderQuota(m.Quota()))
	fmt.Fprintf(out, "%s\n", renderGrid(m))
	fmt.Fprintf(out, "draw order:\n")
	for _, p := range m.Plan() {
		fmt.Fprintf(out, "  row %d  (%d,%d)  at %4d,%4d  %s\n",
			p.Row, p.X, p.Y, p.ScreenX, p.ScreenY, m.Grid().Occupant(p.X, p.Y).Kind)
	}
	if opts.moves != "" {
		start := m.SelectedCell()
		moved := m.Press(opts.moves)
		end := m.SelectedCell()
		fmt.Fprintf(out, "\nmoves %q: %d/%d committed, (%d,%d) -> (%d,%d) option=%d\n",
			opts.moves, moved, countMoves(opts.moves), start.X, start.Y, end.X, end.Y, m.HexOption())
	}
	if opts.showLog {
		fmt.Fprintf(out, "\nevent log:\n%s", m.Events().Format())
	}
}

func countMoves(script string) int {
	n := 0
	for _, r := range script {
		if _, ok := deploy.ParseDirection(r); ok {
			n++
		}
	}
	return n
}

// renderQuota prints the remaining counts as a faction × kind table.
func renderQuota(q *deploy.QuotaTable) string {
	var sb strings.Builder
	sb.WriteString("quota   ")
	for k := 0; k < deploy.UnitKinds; k++ {
		fmt.Fprintf(&sb, "%4d", k)
	}
	sb.WriteByte('\n')
	for f := 0; f < deploy.FactionSlots; f++ {
		fmt.Fprintf(&sb, "  F%d    ", f+1)
		for k := 0; k < deploy.UnitKinds; k++ {
			fmt.Fprintf(&sb, "%4d", q.Remaining(f, k))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderGrid prints the square index space: '.' hidden, 'o' empty, 'U' unit, 'B' building,
// with the cursor cell wrapped in brackets.
func renderGrid(m *deploy.Menu) string {
	g := m.Grid()
	sel := m.SelectedCell()
	var sb strings.Builder
	sb.WriteString("grid (x down, y across):\n")
	for x := 0; x < g.Size(); x++ {
		sb.WriteString("  ")
		for y := 0; y < g.Size(); y++ {
			ch := "o"
			switch {
			case !g.Visible(x, y):
				ch = "."
			case g.Occupant(x, y).Kind == deploy.OccupantBuilding:
				ch = "B"
			case g.Occupant(x, y).Kind == deploy.OccupantUnit:
				ch = "U"
			}
			if sel.X == x && sel.Y == y {
				ch = "[" + ch + "]"
			} else {
				ch = " " + ch + " "
			}
			sb.WriteString(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
