package handler

import (
	"github.com/hashicorp/go-hclog"

	"github.com/philipp01105/applog/core"
)

// HclogHandler forwards entries to an hclog logger
type HclogHandler struct {
	logger hclog.Logger
}

// NewHclogHandler creates a handler writing to l. A nil logger discards.
func NewHclogHandler(l hclog.Logger) *HclogHandler {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	return &HclogHandler{logger: l}
}

// Handle writes the entry through hclog
func (h *HclogHandler) Handle(entry *core.Entry) error {
	lvl, fault := hclogLevel(entry.Level)

	args := make([]interface{}, 0, 6)
	args = append(args, "subsystem", entry.Subsystem, "category", entry.Category)
	if fault {
		args = append(args, "fault", true)
	}

	h.logger.Log(lvl, entry.Message, args...)
	return nil
}

// Close is a no-op; hclog writes synchronously
func (h *HclogHandler) Close() error {
	return nil
}

func hclogLevel(l core.Level) (hclog.Level, bool) {
	switch l {
	case core.DebugLevel:
		return hclog.Debug, false
	case core.InfoLevel:
		return hclog.Info, false
	case core.DefaultLevel:
		return hclog.Warn, false
	case core.ErrorLevel:
		return hclog.Error, false
	case core.FaultLevel:
		return hclog.Error, true
	default:
		return hclog.Info, false
	}
}
