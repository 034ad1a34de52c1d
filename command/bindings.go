package command

import (
	"fmt"
	"strings"

	"hotedge/zone"
)

// Bindings holds the argument vector bound to each bindable zone, tokenized
// once at startup. A nil vector means the zone triggers nothing. The fixed
// array gives every zone exactly one slot.
type Bindings struct {
	argv [zone.NumBindable][]string
}

// NewBindings tokenizes one raw command string per zone. Zones without an
// entry, or whose string resolves to nothing, stay unbound. A tokenizer
// SyntaxError is returned wrapped with the zone it belongs to.
func NewBindings(raw map[zone.Zone]string) (*Bindings, error) {
	b := &Bindings{}
	for z, s := range raw {
		if !z.Bindable() {
			return nil, fmt.Errorf("zone %s cannot be bound to a command", z)
		}
		args, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("zone %s: %w", z, err)
		}
		b.argv[z] = args
	}
	return b, nil
}

// Lookup returns the argument vector bound to z, or nil when z is unbound or
// not bindable.
func (b *Bindings) Lookup(z zone.Zone) []string {
	if !z.Bindable() {
		return nil
	}
	return b.argv[z]
}

// Bound returns the zones that have a command attached, in config key order.
func (b *Bindings) Bound() []zone.Zone {
	var zs []zone.Zone
	for _, z := range zone.Zones() {
		if b.argv[z] != nil {
			zs = append(zs, z)
		}
	}
	return zs
}

// Describe returns the bound command for z as a display string, or "" when
// the zone is unbound.
func (b *Bindings) Describe(z zone.Zone) string {
	return strings.Join(b.Lookup(z), " ")
}
