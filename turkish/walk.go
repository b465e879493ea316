package turkish

// transition is one pending suffix removal in a walk. rollback is the last
// word seen on this path at a final state; empty means none.
type transition struct {
	from     *State
	to       *State
	word     string
	suffix   *Suffix
	rollback string
	marked   bool
}

func (t *transition) similar(other *transition) bool {
	return t.from.ID == other.from.ID && t.to.ID == other.to.ID
}

// expand appends a transition for every suffix leaving state that matches word.
func (m *Machine) expand(queue []*transition, state *State, word, rollback string, marked bool) []*transition {
	for _, suffix := range state.Suffixes {
		if !suffix.Match(word) {
			continue
		}
		to, ok := m.Next(state, suffix)
		if !ok {
			continue
		}
		queue = append(queue, &transition{
			from:     state,
			to:       to,
			word:     word,
			suffix:   suffix,
			rollback: rollback,
			marked:   marked,
		})
	}
	return queue
}

// walk explores the suffix removals m allows on word breadth first and adds
// every stem it confirms to stems.
func (s *Stemmer) walk(m *Machine, word string, stems map[string]struct{}) {
	queue := m.expand(nil, m.initial, word, "", false)
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		stem := s.stemWord(t.word, t.suffix)
		if stem == t.word {
			if t.rollback != "" && !containsSimilar(queue, t) {
				stems[t.rollback] = struct{}{}
			}
			continue
		}

		if t.to.Final {
			pending := make([]*transition, 0, len(queue))
			for _, other := range queue {
				if other.marked || t.similar(other) {
					continue
				}
				pending = append(pending, other)
			}
			stems[stem] = struct{}{}
			queue = m.expand(pending, t.to, stem, "", false)
			continue
		}

		for _, other := range queue {
			if t.similar(other) {
				other.marked = true
			}
		}
		rollback := t.rollback
		if rollback == "" && t.from.Final {
			rollback = t.word
		}
		queue = m.expand(queue, t.to, stem, rollback, true)
	}
}

func containsSimilar(queue []*transition, t *transition) bool {
	for _, other := range queue {
		if t.similar(other) {
			return true
		}
	}
	return false
}
