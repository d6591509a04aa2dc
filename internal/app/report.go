package app

import (
	"github.com/dshills/kestrel/internal/config"
	"github.com/dshills/kestrel/internal/input/mode"
)

var displayKinds = map[config.DisplayMode]mode.Kind{
	config.DisplayError:   mode.Error,
	config.DisplayWarning: mode.Warning,
	config.DisplayNotify:  mode.Notify,
	config.DisplayInfo:    mode.Info,
}

// ReportError shows err the way the display policy asks for its class.
// Ignored classes leave the mode alone.
func (a *Application) ReportError(err error) {
	if err == nil {
		return
	}
	class := ClassifyError(err)
	display := a.cfg.DisplayFor(class)
	a.logger.WithField("class", class).Debug("report %v as %s", err, display)

	kind, ok := displayKinds[display]
	if !ok {
		return
	}
	a.ShowMessage(kind, err.Error())
}
