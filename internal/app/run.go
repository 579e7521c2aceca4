package app

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotCreated is returned by Run when no module can create the requested
// class/interface pair.
var ErrNotCreated = errors.New("no module can create the requested object")

// Run executes the command selected by the configuration: list the module
// search order, serve the inspection endpoints until ctx is done, or create
// a single object and report which module produced it.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")
	defer a.logger.Debug("App.Run method finished.")

	switch {
	case a.config.List:
		return a.printModules()
	case a.config.Serve:
		if err := a.healthCheckServer(); err != nil {
			return err
		}
		<-ctx.Done()
		return nil
	}

	if a.config.HealthcheckPort > 0 {
		if err := a.healthCheckServer(); err != nil {
			return err
		}
	}

	obj, module, ok := a.manager.Resolve(a.config.ClassName, a.config.InterfaceName)
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrNotCreated, a.config.ClassName, a.config.InterfaceName)
	}
	_, err := fmt.Fprintf(a.outW, "%s\t%T\n", module, obj)
	return err
}

func (a *App) printModules() error {
	for i, e := range a.platform.Entries {
		if _, err := fmt.Fprintf(a.outW, "%d\t%s\t%s\n", i+1, e.Role, e.Name); err != nil {
			return err
		}
	}
	return nil
}
