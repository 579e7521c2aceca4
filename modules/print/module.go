// Package print provides a writer that renders key/value maps in a stable
// order.
package print

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/vk/modfactory/internal/config"
	"github.com/vk/modfactory/internal/registry"
)

// Class names registered by this package.
const (
	ClassName     = "Printer"
	InterfaceName = "IWriter"
)

// Writer is the interface exposed under IWriter.
type Writer interface {
	Print(values map[string]string) error
}

// Printer writes maps to an io.Writer, one "key = value" line per entry.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

var _ Writer = (*Printer)(nil)

// New returns a Printer writing to out. A nil out means stdout.
func New(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

// Print writes values sorted by key. A nil map prints "(null)".
func (p *Printer) Print(values map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if values == nil {
		_, err := fmt.Fprintln(p.out, "      (null)")
		return err
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(p.out, "      %s = %q\n", k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// Module implements the registry.Module interface for this package.
// Out is where created Printers write; nil means stdout.
type Module struct {
	Out io.Writer
}

// Register adds the Printer class to the core module.
func (m *Module) Register(r *registry.Registry) {
	r.Module(config.CoreModule).RegisterClass(ClassName, InterfaceName, func() any {
		return New(m.Out)
	})
}
