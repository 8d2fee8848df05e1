package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/screenruler/pkg/buildinfo"
	"github.com/matzehuels/screenruler/pkg/cache"
	"github.com/matzehuels/screenruler/pkg/errors"
	"github.com/matzehuels/screenruler/pkg/render/sink"
	"github.com/matzehuels/screenruler/pkg/ruler"
	"github.com/matzehuels/screenruler/pkg/view"
)

// defaultOutput is the base name used when --output is not given.
const defaultOutput = "ruler"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	fragment  string   // configuration fragment, with or without "#"
	ppi       float64  // density override, applied as a density change
	unit      string   // unit override, applied as a unit change
	dpr       float64  // device pixel ratio
	width     float64  // viewport width in CSS pixels
	height    float64  // viewport height in CSS pixels
	formats   []string // output formats: svg, html, json, png, pdf
	output    string   // output file (single format) or base path; "-" for stdout
	embedFont bool     // inline the label font into SVG and HTML
	scale     float64  // PNG resolution multiplier
	labels    bool     // print the label table
	noCache   bool     // always re-render PNG and PDF output

	setPPI  bool
	setUnit bool
}

// renderCommand creates the render command for writing rulers to files.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		dpr:    1,
		width:  defaultWidth,
		height: defaultHeight,
		scale:  1,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a calibrated ruler to SVG, HTML, JSON, PNG, or PDF",
		Long: `Render lays the ruler out for a viewport and writes it in one or more formats.

The configuration comes from --fragment, as found after the "#" in a shared
link. --ppi and --unit are applied on top of it the way the on-page controls
would, so values out of range are clamped rather than rejected.`,
		Example: `  screenruler render --ppi 110 --unit inch -f svg,pdf -o ruler
  screenruler render --fragment '#ppi=220' --dpr 2 -f png -o screen.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.applyFileConfig(cmd, &opts, &formatsStr)
			opts.formats = parseFormats(formatsStr)
			opts.setPPI = cmd.Flags().Changed("ppi")
			opts.setUnit = cmd.Flags().Changed("unit")
			if err := opts.validate(); err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.fragment, "fragment", "", `configuration fragment, e.g. "#ppi=110&unit=inch"`)
	cmd.Flags().Float64Var(&opts.ppi, "ppi", 0, "pixel density in device pixels per inch")
	cmd.Flags().StringVar(&opts.unit, "unit", "", "ruler unit: cm, inch")
	cmd.Flags().Float64Var(&opts.dpr, "dpr", opts.dpr, "device pixel ratio of the display")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "viewport width in CSS pixels")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "viewport height in CSS pixels")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), html, json, png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (single format) or base path (multiple); "-" for stdout`)
	cmd.Flags().BoolVar(&opts.embedFont, "embed-font", false, "embed the label font in SVG and HTML output")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "print the labels of the rendered ruler")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "re-render PNG and PDF output instead of reusing cached files")
	_ = cmd.RegisterFlagCompletionFunc("unit", completeUnits)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// applyFileConfig fills options the user did not set on the command line
// from the config file.
func (c *CLI) applyFileConfig(cmd *cobra.Command, opts *renderOpts, formats *string) {
	flags := cmd.Flags()
	dev, rc := c.config.Device, c.config.Render
	if dev.DPR != 0 && !flags.Changed("dpr") {
		opts.dpr = dev.DPR
	}
	if dev.Width != 0 && !flags.Changed("width") {
		opts.width = dev.Width
	}
	if dev.Height != 0 && !flags.Changed("height") {
		opts.height = dev.Height
	}
	if len(rc.Formats) > 0 && !flags.Changed("format") {
		*formats = strings.Join(rc.Formats, ",")
	}
	if rc.Output != "" && !flags.Changed("output") {
		opts.output = rc.Output
	}
	if rc.Fragment != "" && !flags.Changed("fragment") {
		opts.fragment = rc.Fragment
	}
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{sink.FormatSVG}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

func (o *renderOpts) validate() error {
	if len(o.formats) == 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "no output format given")
	}
	for _, f := range o.formats {
		if err := errors.ValidateFormat(f, sink.Formats...); err != nil {
			return err
		}
	}
	if o.output == "-" && len(o.formats) != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "stdout output needs exactly one format")
	}
	if o.output != "" && o.output != "-" {
		if err := errors.ValidateOutputPath(o.output); err != nil {
			return err
		}
	}
	if o.setUnit {
		if err := validateUnitFlag(o.unit); err != nil {
			return err
		}
	}
	for _, d := range []struct {
		name     string
		v, limit float64
	}{
		{"dpr", o.dpr, maxPixelRatio},
		{"width", o.width, maxViewportSide},
		{"height", o.height, maxViewportSide},
		{"scale", o.scale, maxRasterScale},
	} {
		if err := errors.ValidateDimension(d.name, d.v, d.limit); err != nil {
			return err
		}
	}
	return nil
}

func validateUnitFlag(u string) error {
	names := make([]string, len(ruler.Units))
	for i, v := range ruler.Units {
		names[i] = string(v)
	}
	return errors.ValidateUnit(u, names...)
}

// newController loads fragment into a controller for the given display and
// applies the overrides as control events.
func newController(fragment string, dpr float64, vp ruler.Viewport, ppi *float64, unit *string) (*view.Controller, error) {
	ctrl := view.NewController(view.NewMemoryLocation(fragment),
		view.WithDevicePixelRatio(dpr),
		view.WithViewport(vp))
	ctrl.Load()

	if ppi != nil {
		if err := ctrl.Dispatch(view.DensityChange(ruler.FormatPPI(*ppi))); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "apply density")
		}
	}
	if unit != nil {
		if err := ctrl.Dispatch(view.UnitChange(*unit)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "apply unit")
		}
	}
	return ctrl, nil
}

// runRender builds the ruler for opts and writes every requested format.
func runRender(ctx context.Context, w io.Writer, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var ppi *float64
	var unit *string
	if opts.setPPI {
		ppi = &opts.ppi
	}
	if opts.setUnit {
		unit = &opts.unit
	}
	ctrl, err := newController(opts.fragment, opts.dpr, ruler.Viewport{Width: opts.width, Height: opts.height}, ppi, unit)
	if err != nil {
		return err
	}
	cfg := ctrl.Config()
	logger.Infof("Rendering %s ruler at %s ppi for %gx%g px", cfg.Unit, ruler.FormatPPI(cfg.PPI), opts.width, opts.height)

	frag := ctrl.Fragment()
	sinkOpts := buildSinkOpts(frag, opts)
	toStdout := opts.output == "-"

	c, err := newCache(opts.noCache)
	if err != nil {
		logger.Warnf("Artifact cache unavailable: %v", err)
		c = cache.NewNullCache()
	}
	defer c.Close()
	r := &artifactRenderer{
		ctrl:  ctrl,
		opts:  sinkOpts,
		cache: c,
		keyer: cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":"),
		key: cache.ArtifactKeyOpts{
			Fragment:  frag,
			DPR:       opts.dpr,
			Width:     opts.width,
			Height:    opts.height,
			Scale:     opts.scale,
			EmbedFont: opts.embedFont,
		},
		quiet: toStdout,
	}
	base := basePath(opts.output)

	var written []string
	for _, format := range opts.formats {
		data, err := r.render(ctx, format)
		if err != nil {
			return err
		}
		logger.Debugf("Generated %s: %d bytes", format, len(data))

		if toStdout {
			if _, err := w.Write(data); err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "write stdout")
			}
			continue
		}

		path := outputPath(opts.output, base, format, len(opts.formats))
		if err := writeFile(path, data); err != nil {
			return err
		}
		written = append(written, path)
	}

	if toStdout {
		return nil
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(written)))
	printConfig(w, ctrl.Surface(), frag)
	for _, p := range written {
		printFile(w, p)
	}
	if opts.labels {
		printLabels(w, ctrl.Surface())
	}
	return nil
}

// artifactRenderer runs the sinks for one rendered surface.
type artifactRenderer struct {
	ctrl  *view.Controller
	opts  sink.Options
	cache cache.Cache
	keyer cache.Keyer
	key   cache.ArtifactKeyOpts
	quiet bool
}

// isSlow reports whether format is worth caching and showing a spinner for.
func isSlow(format string) bool {
	return format == sink.FormatPNG || format == sink.FormatPDF
}

// render runs one sink. Raster and PDF output is answered from the cache
// when possible and otherwise shows a spinner on an interactive terminal.
func (r *artifactRenderer) render(ctx context.Context, format string) ([]byte, error) {
	if !isSlow(format) {
		return sink.Render(ctx, r.ctrl.Surface(), format, r.opts)
	}
	logger := loggerFromContext(ctx)

	k := r.key
	k.Format = format
	key := r.keyer.ArtifactKey(k)
	if a, ok, err := r.cache.Get(ctx, key); err != nil {
		logger.Warnf("Cache read failed: %v", err)
	} else if ok && a.Format == format {
		logger.Debug("Cache hit", "format", format, "bytes", len(a.Data), "age", a.Age().Round(time.Second))
		return a.Data, nil
	}

	data, err := r.renderWithSpinner(ctx, format)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Put(ctx, key, cache.Artifact{Format: format, Data: data}, cache.DefaultTTL); err != nil {
		logger.Warnf("Cache write failed: %v", err)
	}
	return data, nil
}

func (r *artifactRenderer) renderWithSpinner(ctx context.Context, format string) ([]byte, error) {
	if r.quiet || !isatty.IsTerminal(os.Stderr.Fd()) {
		return sink.Render(ctx, r.ctrl.Surface(), format, r.opts)
	}

	spinner := newRenderSpinner(ctx, os.Stderr, format, r.ctrl.Viewport(), r.ctrl.DevicePixelRatio())
	spinner.Start()
	data, err := sink.Render(ctx, r.ctrl.Surface(), format, r.opts)
	if err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return nil, err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Rendered %s (%d bytes)", strings.ToUpper(format), len(data)))
	return data, nil
}

func buildSinkOpts(frag string, opts *renderOpts) sink.Options {
	svg := []sink.SVGOption{sink.WithPixelSize()}
	if opts.embedFont {
		svg = append(svg, sink.WithEmbeddedFont())
	}
	return sink.Options{
		SVG: svg,
		HTML: []sink.HTMLOption{
			sink.WithFragment(frag),
			sink.WithHTMLSVGOptions(svg...),
		},
		JSON: []sink.JSONOption{sink.WithJSONFragment(frag)},
		PNG:  []sink.PNGOption{sink.WithScale(opts.scale)},
		PDF:  []sink.PDFOption{sink.WithPDFCreator(buildinfo.Creator())},
	}
}

// basePath strips a known format extension from output, or returns the
// default base name when output is empty.
func basePath(output string) string {
	if output == "" {
		return defaultOutput
	}
	ext := filepath.Ext(output)
	if slices.Contains(sink.Formats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath picks the file for format. A single format written to an
// output with an explicit extension keeps that name as given.
func outputPath(output, base, format string, n int) string {
	if n == 1 && output != "" && filepath.Ext(output) != "" {
		return output
	}
	return base + "." + format
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
