package cli

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/navgraph/pkg/observability"
)

// LogHooks reports graph validation, change and query events as debug logs.
// It implements both observability.GraphHooks and observability.QueryHooks.
type LogHooks struct {
	logger *log.Logger
}

var (
	_ observability.GraphHooks = (*LogHooks)(nil)
	_ observability.QueryHooks = (*LogHooks)(nil)
)

// NewLogHooks returns hooks that log through l.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{logger: l}
}

func (h *LogHooks) OnValidateStart(graph string, nodeCount, edgeCount int) {
	h.logger.Debug("validating graph", "graph", graph, "nodes", nodeCount, "edges", edgeCount)
}

func (h *LogHooks) OnValidateComplete(graph string, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("graph rejected", "graph", graph, "duration", duration, "err", err)
		return
	}
	h.logger.Debug("graph accepted", "graph", graph, "duration", duration)
}

func (h *LogHooks) OnChange(graph string, listenerCount int) {
	if listenerCount > 0 {
		h.logger.Debug("graph changed", "graph", graph, "listeners", listenerCount)
	}
}

func (h *LogHooks) OnQuery(graph, query string, found bool, duration time.Duration) {
	h.logger.Debug("query", "graph", graph, "query", query, "found", found, "duration", duration)
}
