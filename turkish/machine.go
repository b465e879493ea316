package turkish

import (
	"errors"
	"fmt"
)

type StateID string

// State is a node of a Machine. Suffixes lists the outgoing suffixes in
// table priority order.
type State struct {
	ID       StateID
	Initial  bool
	Final    bool
	Suffixes []*Suffix
}

// Edge sends every suffix in Suffixes to To.
type Edge struct {
	Suffixes []string
	To       StateID
}

type StateDef struct {
	ID      StateID
	Initial bool
	Final   bool
	Edges   []Edge
}

// Machine is a suffix-removal graph over one SuffixTable.
type Machine struct {
	Name    string
	Table   SuffixTable
	initial *State
	states  map[StateID]*State
	next    map[StateID]map[string]StateID
}

func NewMachine(name string, table SuffixTable, defs ...StateDef) (*Machine, error) {
	m := &Machine{
		Name:   name,
		Table:  table,
		states: make(map[StateID]*State, len(defs)),
		next:   make(map[StateID]map[string]StateID, len(defs)),
	}
	for _, def := range defs {
		if _, exists := m.states[def.ID]; exists {
			return nil, fmt.Errorf("%s: duplicate state %s", name, def.ID)
		}
		state := &State{ID: def.ID, Initial: def.Initial, Final: def.Final}
		m.states[def.ID] = state
		if def.Initial {
			if m.initial != nil {
				return nil, fmt.Errorf("%s: states %s and %s are both initial", name, m.initial.ID, def.ID)
			}
			m.initial = state
		}
		targets := make(map[string]StateID)
		for _, edge := range def.Edges {
			for _, id := range edge.Suffixes {
				targets[id] = edge.To
			}
		}
		m.next[def.ID] = targets
		for _, suffix := range table {
			if _, ok := targets[suffix.ID]; ok {
				state.Suffixes = append(state.Suffixes, suffix)
			}
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func mustMachine(name string, table SuffixTable, defs ...StateDef) *Machine {
	m, err := NewMachine(name, table, defs...)
	if err != nil {
		panic(err)
	}
	return m
}

// Validate checks that the machine has one initial state and that every
// edge names a known suffix and a declared state.
func (m *Machine) Validate() error {
	if m.initial == nil {
		return fmt.Errorf("%s: %w", m.Name, errNoInitialState)
	}
	for id, targets := range m.next {
		for suffixID, to := range targets {
			if m.Table.index(suffixID) < 0 {
				return fmt.Errorf("%s: state %s: unknown suffix %s", m.Name, id, suffixID)
			}
			if _, ok := m.states[to]; !ok {
				return fmt.Errorf("%s: state %s: suffix %s leads to undeclared state %s", m.Name, id, suffixID, to)
			}
		}
	}
	return nil
}

var errNoInitialState = errors.New("no initial state")

func (m *Machine) Initial() *State {
	return m.initial
}

func (m *Machine) State(id StateID) (*State, bool) {
	state, ok := m.states[id]
	return state, ok
}

// Next looks up the state reached from `from` by removing suffix.
func (m *Machine) Next(from *State, suffix *Suffix) (*State, bool) {
	to, ok := m.next[from.ID][suffix.ID]
	if !ok {
		return nil, false
	}
	return m.states[to], true
}

func edge(to StateID, suffixes ...string) Edge {
	return Edge{Suffixes: suffixes, To: to}
}

var nominalVerbMachine = mustMachine("nominal-verb", NominalVerbSuffixes,
	StateDef{ID: "A", Initial: true, Edges: []Edge{
		edge("B", "S1", "S2", "S3", "S4"),
		edge("C", "S5"),
		edge("D", "S6", "S7", "S8", "S9"),
		edge("E", "S10"),
		edge("F", "S12", "S13", "S14", "S15"),
		edge("H", "S11"),
	}},
	StateDef{ID: "B", Final: true, Edges: []Edge{edge("F", "S14")}},
	StateDef{ID: "C", Final: true, Edges: []Edge{edge("F", "S10", "S12", "S13", "S14")}},
	StateDef{ID: "D", Edges: []Edge{edge("F", "S12", "S13")}},
	StateDef{ID: "E", Final: true, Edges: []Edge{
		edge("G", "S1", "S2", "S3", "S4", "S5"),
		edge("F", "S14"),
	}},
	StateDef{ID: "F", Final: true},
	StateDef{ID: "G", Edges: []Edge{edge("F", "S14")}},
	StateDef{ID: "H", Edges: []Edge{
		edge("G", "S1", "S2", "S3", "S4", "S5"),
		edge("F", "S14"),
	}},
)

var nounMachine = mustMachine("noun", NounSuffixes,
	StateDef{ID: "A", Initial: true, Final: true, Edges: []Edge{
		edge("B", "S8", "S11", "S13"),
		edge("C", "S9", "S16"),
		edge("D", "S18"),
		edge("E", "S10", "S17"),
		edge("F", "S12", "S14"),
		edge("G", "S15"),
		edge("H", "S2", "S3", "S4", "S5", "S6"),
		edge("K", "S7"),
		edge("L", "S1"),
		edge("M", "S19"),
	}},
	StateDef{ID: "B", Final: true, Edges: []Edge{
		edge("L", "S1"),
		edge("H", "S2", "S3", "S4", "S5"),
	}},
	StateDef{ID: "C", Edges: []Edge{edge("H", "S6"), edge("K", "S7")}},
	StateDef{ID: "D", Edges: []Edge{edge("B", "S13"), edge("E", "S10"), edge("F", "S14")}},
	StateDef{ID: "E", Final: true, Edges: []Edge{
		edge("D", "S18"),
		edge("H", "S2", "S3", "S4", "S5", "S6"),
		edge("K", "S7"),
		edge("L", "S1"),
	}},
	StateDef{ID: "F", Edges: []Edge{edge("D", "S18"), edge("H", "S6"), edge("K", "S7")}},
	StateDef{ID: "G", Final: true, Edges: []Edge{
		edge("D", "S18"),
		edge("H", "S2", "S3", "S4", "S5"),
		edge("L", "S1"),
	}},
	StateDef{ID: "H", Final: true, Edges: []Edge{edge("L", "S1")}},
	StateDef{ID: "K", Final: true},
	StateDef{ID: "L", Final: true, Edges: []Edge{edge("D", "S18")}},
	StateDef{ID: "M", Final: true, Edges: []Edge{
		edge("H", "S2", "S3", "S4", "S5", "S6"),
		edge("K", "S7"),
		edge("L", "S1"),
	}},
)

var derivationalMachine = mustMachine("derivational", DerivationalSuffixes,
	StateDef{ID: "A", Initial: true, Edges: []Edge{edge("B", "S1")}},
	StateDef{ID: "B", Final: true},
)

// Machines returns the graphs in the order Stem runs them.
func Machines() []*Machine {
	return []*Machine{nominalVerbMachine, nounMachine, derivationalMachine}
}
