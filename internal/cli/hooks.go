package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/screenruler/pkg/observability"
	"github.com/matzehuels/screenruler/pkg/ruler"
)

// installHooks routes view and sink events to l at debug level.
func installHooks(l *log.Logger) {
	observability.SetViewHooks(&logViewHooks{logger: l})
	observability.SetSinkHooks(&logSinkHooks{logger: l})
}

type logViewHooks struct {
	logger *log.Logger
}

func (h *logViewHooks) OnValidated(before, after ruler.Config) {
	if before == after {
		return
	}
	h.logger.Debug("Adjusted configuration",
		"unit", before.Unit, "ppi", ruler.FormatPPI(before.PPI),
		"to_unit", after.Unit, "to_ppi", ruler.FormatPPI(after.PPI))
}

func (h *logViewHooks) OnPersisted(fragment string) {
	h.logger.Debug("Persisted fragment", "fragment", "#"+fragment)
}

func (h *logViewHooks) OnRendered(unit ruler.Unit, added, total int, d time.Duration) {
	h.logger.Debug("Rendered surface", "unit", unit, "added", added, "labels", total, "took", d.Round(time.Microsecond))
}

type logSinkHooks struct {
	logger *log.Logger
}

func (h *logSinkHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debugf("Rendering %s", format)
}

func (h *logSinkHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("Render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("Rendered", "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}
