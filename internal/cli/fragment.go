package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/screenruler/pkg/errors"
	"github.com/matzehuels/screenruler/pkg/ruler"
)

// fragmentCommand groups the fragment encode and decode subcommands.
func (c *CLI) fragmentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fragment",
		Short: "Encode and decode configuration fragments",
		Long: `A fragment is the part of a ruler link after "#", e.g. "#ppi=110&unit=inch".
Only values that differ from the defaults are written, so the default
configuration encodes to an empty fragment.`,
	}
	cmd.AddCommand(c.fragmentEncodeCommand())
	cmd.AddCommand(c.fragmentDecodeCommand())
	return cmd
}

func (c *CLI) fragmentEncodeCommand() *cobra.Command {
	var (
		ppi  float64
		unit string
	)
	dpr := 1.0

	cmd := &cobra.Command{
		Use:     "encode",
		Short:   "Print the fragment for a density and unit",
		Example: `  screenruler fragment encode --ppi 110 --unit inch`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.config.Device.DPR != 0 && !cmd.Flags().Changed("dpr") {
				dpr = c.config.Device.DPR
			}
			if err := errors.ValidateDimension("dpr", dpr, maxPixelRatio); err != nil {
				return err
			}

			var ppiOverride *float64
			var unitOverride *string
			if cmd.Flags().Changed("ppi") {
				ppiOverride = &ppi
			}
			if cmd.Flags().Changed("unit") {
				if err := validateUnitFlag(unit); err != nil {
					return err
				}
				unitOverride = &unit
			}

			ctrl, err := newController("", dpr, ruler.Viewport{}, ppiOverride, unitOverride)
			if err != nil {
				return err
			}
			frag := ctrl.Fragment()
			loggerFromContext(cmd.Context()).Debug("Encoded", "unit", ctrl.Config().Unit, "ppi", ctrl.Config().PPI)

			fmt.Fprintln(cmd.OutOrStdout(), "#"+frag)
			printNextStep(cmd.ErrOrStderr(), "Render it", fmt.Sprintf("%s render --fragment '#%s'", appName, frag))
			return nil
		},
	}

	cmd.Flags().Float64Var(&ppi, "ppi", 0, "pixel density in device pixels per inch")
	cmd.Flags().StringVar(&unit, "unit", "", "ruler unit: cm, inch")
	_ = cmd.RegisterFlagCompletionFunc("unit", completeUnits)
	cmd.Flags().Float64Var(&dpr, "dpr", dpr, "device pixel ratio the density was measured at")
	return cmd
}

// decodedFragment is the result of decoding a fragment for display.
type decodedFragment struct {
	Config    ruler.Config `json:"config"`
	Canonical string       `json:"canonical"`
	Ignored   []string     `json:"ignored,omitempty"`
	Adjusted  bool         `json:"adjusted"`
}

// decodeFragment applies fragment to the defaults for dpr and validates the
// result the way a page load does.
func decodeFragment(fragment string, dpr float64) decodedFragment {
	v := ruler.NewValidator(dpr)
	cfg := v.Defaults()

	applied := map[string]bool{}
	for _, k := range ruler.ApplyFragment(&cfg, fragment) {
		applied[k] = true
	}
	var ignored []string
	for _, p := range ruler.ParseFragment(fragment) {
		if !applied[p.Key] {
			ignored = append(ignored, p.Key)
		}
	}

	adjusted := v.Validate(&cfg)
	return decodedFragment{
		Config:    cfg,
		Canonical: ruler.EncodeFragment(cfg, v.Defaults()),
		Ignored:   ignored,
		Adjusted:  adjusted,
	}
}

func (c *CLI) fragmentDecodeCommand() *cobra.Command {
	var asJSON bool
	dpr := 1.0

	cmd := &cobra.Command{
		Use:     "decode <fragment>",
		Short:   "Print the configuration a fragment selects",
		Example: `  screenruler fragment decode '#unit=inch&ppi=150' --dpr 2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.config.Device.DPR != 0 && !cmd.Flags().Changed("dpr") {
				dpr = c.config.Device.DPR
			}
			if err := errors.ValidateDimension("dpr", dpr, maxPixelRatio); err != nil {
				return err
			}

			d := decodeFragment(args[0], dpr)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), d)
			}
			printDecoded(cmd.OutOrStdout(), d)
			return nil
		},
	}

	cmd.Flags().Float64Var(&dpr, "dpr", dpr, "device pixel ratio of the display")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

func printDecoded(w io.Writer, d decodedFragment) {
	printKeyValue(w, "Unit", string(d.Config.Unit))
	printKeyValue(w, "Density", ruler.FormatPPI(d.Config.PPI)+" ppi")
	printKeyValue(w, "Canonical", StyleLink.Render("#"+d.Canonical))
	for _, k := range d.Ignored {
		printWarning(w, "ignored unknown key %q", k)
	}
	if d.Adjusted {
		printWarning(w, "values were out of range and have been adjusted")
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write json")
	}
	return nil
}
