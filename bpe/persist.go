package bpe

import (
	"encoding/json"
	"os"
)

// ruleFile is the on-disk JSON shape: each rule serializes as the 3-tuple
// [a, b, c].
type ruleFile struct {
	MergeRules [][3]int `json:"merge_rules"`
}

// Save writes t's rule table to path as JSON. Save fails if t has no rules
// (it has not been fitted or loaded).
func (t *Tokenizer) Save(path string) error {
	if !t.fitted || len(t.rules) == 0 {
		return NewPersistError("save", path, ErrNotFitted)
	}

	rf := ruleFile{MergeRules: make([][3]int, len(t.rules))}
	for i, r := range t.rules {
		rf.MergeRules[i] = [3]int{r.A, r.B, r.C}
	}

	data, err := json.MarshalIndent(rf, "", "  ")
	if err != nil {
		return NewPersistError("save", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return NewPersistError("save", path, err)
	}
	return nil
}

// Load reads a rule table previously written by Save, replacing whatever
// rules t currently holds. Load rebuilds the expansion cache and encode
// trie from the rule table alone: any base unit referenced by a rule but
// never itself expanded is seeded as its own one-unit expansion.
func (t *Tokenizer) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewPersistError("load", path, err)
	}

	var rf ruleFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return NewPersistError("load", path, ErrMalformedFile)
	}

	rules := make([]Rule, len(rf.MergeRules))
	expansion := make(expansionCache, len(rf.MergeRules)*2)
	maxUnit := -1

	for i, tuple := range rf.MergeRules {
		a, b, c := tuple[0], tuple[1], tuple[2]
		if a < 0 || b < 0 || c < 0 {
			return NewPersistError("load", path, ErrMalformedFile)
		}
		rules[i] = Rule{A: a, B: b, C: c}

		if _, ok := expansion[a]; !ok {
			expansion[a] = []int{a}
		}
		if _, ok := expansion[b]; !ok {
			expansion[b] = []int{b}
		}
		merged := make([]int, 0, len(expansion.get(a))+len(expansion.get(b)))
		merged = append(merged, expansion.get(a)...)
		merged = append(merged, expansion.get(b)...)
		expansion[c] = merged

		if c > maxUnit {
			maxUnit = c
		}
	}

	t.rules = rules
	t.expansion = expansion
	t.maxUnitSeen = maxUnit
	t.trieRoot = buildTrie(rules, expansion)
	t.fitted = true
	return nil
}
