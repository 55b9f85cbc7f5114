package demo

import (
	"fmt"
	"time"

	"github.com/joe/fstour/internal/logger"
	pkgerrors "github.com/joe/fstour/pkg/errors"
)

// ConsoleReporter prints runner events through a logger. Failures are
// enriched with suggestions for the user.
type ConsoleReporter struct {
	log      logger.Logger
	enricher pkgerrors.Enricher
}

// NewConsoleReporter creates a reporter writing to log.
func NewConsoleReporter(log logger.Logger) *ConsoleReporter {
	return &ConsoleReporter{
		log:      log,
		enricher: pkgerrors.NewEnricher(),
	}
}

// Emit implements EventEmitter.
func (c *ConsoleReporter) Emit(event Event) {
	switch e := event.(type) {
	case StepStarted:
		c.log.Step(fmt.Sprintf("%s: %s", e.Name, e.Description))
	case StepSucceeded:
		c.log.Info(e.Summary)
	case StepSkipped:
		c.log.Warnf("skipped %s: %s", e.Name, e.Reason)
	case StepFailed:
		c.reportError(e.Err)
	case RunComplete:
		c.reportResult(e.Result)
	}
}

func (c *ConsoleReporter) reportError(err error) {
	enriched := c.enricher.Enrich(err, "")

	kind := pkgerrors.KindOf(err)
	if actionable, ok := enriched.(pkgerrors.ActionableError); ok {
		kind = actionable.Kind()
	}

	c.log.Errorf("! %v (%s)", err, kind)

	if suggestions := pkgerrors.FormatSuggestions(enriched); suggestions != "" {
		c.log.Print(suggestions + "\n")
	}
}

func (c *ConsoleReporter) reportResult(result *RunResult) {
	if result.PrepareErr != nil {
		c.log.Error("could not prepare the workspace")
		c.reportError(result.PrepareErr)

		return
	}

	summary := fmt.Sprintf("%d succeeded, %d failed, %d skipped in %s",
		result.Succeeded, result.Failed, result.Skipped, result.Duration.Round(time.Millisecond))

	if result.Failed > 0 {
		c.log.Warn(summary)
		return
	}

	c.log.Info(summary)
}
