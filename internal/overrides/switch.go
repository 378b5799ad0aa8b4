package overrides

import (
	"github.com/Elun4705/Interactive/internal/store"
)

// Switch is the interactive control for one feature's override. Every
// change is written through to the store immediately.
type Switch struct {
	Feature Feature

	state store.Store
	scope string
	value State
}

// NewSwitch loads the current value of f from s.
func NewSwitch(s store.Store, scope string, f Feature) (*Switch, error) {
	v, err := Load(s, scope, f.Name)
	if err != nil {
		return nil, err
	}
	return &Switch{Feature: f, state: s, scope: scope, value: v}, nil
}

// State returns the current value.
func (sw *Switch) State() State {
	return sw.value
}

// UsesDefault reports whether the "use default" checkbox is ticked.
func (sw *Switch) UsesDefault() bool {
	return sw.value == Default
}

// ToggleDefault handles the "use default" checkbox. Unticking it sets an
// explicit Never; ticking it clears any explicit value.
func (sw *Switch) ToggleDefault() error {
	if sw.value == Default {
		return sw.set(Never)
	}
	return sw.set(Default)
}

// Flip handles the on/off switch, which is only shown when an explicit value
// is set. It does nothing while the default is in use.
func (sw *Switch) Flip() error {
	switch sw.value {
	case Allowed:
		return sw.set(Never)
	case Never:
		return sw.set(Allowed)
	}
	return nil
}

// Set stores an explicit state.
func (sw *Switch) Set(state State) error {
	return sw.set(state)
}

func (sw *Switch) set(state State) error {
	if err := Save(sw.state, sw.scope, sw.Feature.Name, state); err != nil {
		return err
	}
	sw.value = state
	return nil
}
