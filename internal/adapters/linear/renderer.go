// Package linear provides a synchronous, line-oriented renderer for evaluation results.
package linear

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/cgraph/internal/core/domain"
	"go.trai.ch/cgraph/internal/ui/output"
	"go.trai.ch/cgraph/internal/ui/style"
)

// Renderer implements ports.Renderer with one line per scenario.
// Results go to stdout and failures to stderr.
type Renderer struct {
	mu     sync.Mutex
	stdout *termenv.Output
	stderr *termenv.Output
}

// NewRenderer creates a new Renderer. Nil writers default to the process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Renderer{
		stdout: output.NewWithProfile(stdout, output.ColorProfileANSI),
		stderr: output.NewWithProfile(stderr, output.ColorProfileANSI),
	}
}

// OnPlan prints the graph name and the number of scenarios.
func (r *Renderer) OnPlan(graph string, scenarios []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	noun := "scenarios"
	if len(scenarios) == 1 {
		noun = "scenario"
	}
	icon := r.stdout.String(style.Dot).Foreground(termenv.RGBColor(string(style.Iris)))
	name := r.stdout.String(graph).Bold()
	_, _ = fmt.Fprintf(r.stdout, "%s %s (%d %s)\n", icon, name, len(scenarios), noun)
}

// OnReport prints the rounded result and which labelled nodes were recomputed.
func (r *Renderer) OnReport(report domain.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()

	icon := r.stdout.String(style.Check).Foreground(termenv.RGBColor(string(style.Green)))
	result := strconv.FormatFloat(report.Result, 'f', report.Precision, 64)
	detail := r.stdout.String(recomputeSummary(report)).Faint()
	_, _ = fmt.Fprintf(r.stdout, "%s %s = %s %s\n", icon, report.Scenario, result, detail)
}

// OnError prints the failed scenario together with the first line of the error.
func (r *Renderer) OnError(scenario string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	icon := r.stderr.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red)))
	msg, _, _ := strings.Cut(err.Error(), "\n")
	_, _ = fmt.Fprintf(r.stderr, "%s %s: %s\n", icon, scenario, msg)
}

func recomputeSummary(report domain.Report) string {
	if len(report.Recomputed) == 0 {
		return "[cached]"
	}
	total := len(report.Recomputed) + len(report.Reused)
	return fmt.Sprintf("[recomputed %d/%d: %s]",
		len(report.Recomputed), total, strings.Join(report.Recomputed, " "))
}
