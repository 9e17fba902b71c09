// registry/registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
)

// Protocol is the static configuration of one supported DEX program: its
// deployed program identity and the instruction descriptors extracted from
// its interface description.
type Protocol struct {
	Name         string
	ProgramID    solana.PublicKey
	Instructions []*cpi.Descriptor
}

// Instruction looks up one of the protocol's descriptors by name.
func (p Protocol) Instruction(name string) (*cpi.Descriptor, bool) {
	for _, d := range p.Instructions {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

// Registry manages protocol registrations.
type Registry struct {
	mu        sync.RWMutex
	protocols map[string]Protocol
	byProgram map[solana.PublicKey]string
	logger    *zap.Logger
}

// New creates an empty protocol registry.
func New(logger *zap.Logger) *Registry {
	return &Registry{
		protocols: make(map[string]Protocol),
		byProgram: make(map[solana.PublicKey]string),
		logger:    logger.Named("protocol_registry"),
	}
}

// Register adds a protocol to the registry. It rejects duplicate protocol
// names, descriptors targeting a different program than the protocol's, and
// two instructions sharing a discriminator within the same protocol.
func (r *Registry) Register(p Protocol) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.protocols[p.Name]; exists {
		return fmt.Errorf("protocol %s already registered", p.Name)
	}
	if owner, exists := r.byProgram[p.ProgramID]; exists {
		return fmt.Errorf("program %s already registered as %s", p.ProgramID, owner)
	}

	seen := make(map[string]string, len(p.Instructions))
	for _, d := range p.Instructions {
		if !d.ProgramID.Equals(p.ProgramID) {
			return fmt.Errorf("protocol %s: instruction %s targets program %s, want %s",
				p.Name, d.Name, d.ProgramID, p.ProgramID)
		}
		if len(d.Tag) == 0 {
			// Native programs without a dispatch tag (the payload itself
			// selects the handler) are exempt from uniqueness.
			continue
		}
		tag := string(d.Tag)
		if other, dup := seen[tag]; dup {
			return fmt.Errorf("protocol %s: instructions %s and %s share discriminator %x",
				p.Name, other, d.Name, d.Tag)
		}
		seen[tag] = d.Name
	}

	r.protocols[p.Name] = p
	r.byProgram[p.ProgramID] = p.Name

	r.logger.Info("Protocol registered",
		zap.String("name", p.Name),
		zap.Stringer("program", p.ProgramID),
		zap.Int("instructions", len(p.Instructions)))

	return nil
}

// Get retrieves a protocol by name.
func (r *Registry) Get(name string) (Protocol, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.protocols[name]
	if !exists {
		return Protocol{}, fmt.Errorf("protocol %s not found", name)
	}
	return p, nil
}

// LookupProgram retrieves the protocol owning a program identity. Useful
// for callers that hold an account's owner and need the matching tables.
func (r *Registry) LookupProgram(program solana.PublicKey) (Protocol, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, exists := r.byProgram[program]
	if !exists {
		return Protocol{}, false
	}
	return r.protocols[name], true
}

// Instruction resolves one descriptor by protocol and instruction name.
func (r *Registry) Instruction(protocol, name string) (*cpi.Descriptor, error) {
	p, err := r.Get(protocol)
	if err != nil {
		return nil, err
	}
	d, ok := p.Instruction(name)
	if !ok {
		return nil, fmt.Errorf("protocol %s: instruction %s not found", protocol, name)
	}
	return d, nil
}

// List returns all registered protocol names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.protocols))
	for name := range r.protocols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
