package config

import (
	"regexp"
	"strings"
)

// Write list keywords.
const (
	WriteAll  = "all"
	WriteNone = "none"
)

// WriteMode selects which rules may apply fixes.
type WriteMode int

const (
	WriteNoRules WriteMode = iota
	WriteAllRules
	WriteSubset
)

func (m WriteMode) String() string {
	switch m {
	case WriteAllRules:
		return "all"
	case WriteSubset:
		return "subset"
	default:
		return "none"
	}
}

// WriteSet is the resolved form of --write / write_list.
type WriteSet struct {
	Mode  WriteMode
	rules []string
}

// AllRules returns a WriteSet enabling fixes for every rule.
func AllRules() WriteSet { return WriteSet{Mode: WriteAllRules} }

// NoRules returns a WriteSet disabling fixes.
func NoRules() WriteSet { return WriteSet{Mode: WriteNoRules} }

// SubsetOf returns a WriteSet limited to the given rule ids or tags.
func SubsetOf(rules ...string) WriteSet {
	ws := WriteSet{Mode: WriteSubset}
	for _, r := range rules {
		ws.add(r)
	}
	if len(ws.rules) == 0 {
		return NoRules()
	}
	return ws
}

func (ws *WriteSet) add(rule string) {
	for _, existing := range ws.rules {
		if existing == rule {
			return
		}
	}
	ws.rules = append(ws.rules, rule)
}

// Rules returns the subset members in first-seen order.
func (ws WriteSet) Rules() []string {
	return append([]string(nil), ws.rules...)
}

// Enabled reports whether fixes from the rule with the given id or tags apply.
func (ws WriteSet) Enabled(ids ...string) bool {
	switch ws.Mode {
	case WriteAllRules:
		return true
	case WriteSubset:
		for _, id := range ids {
			for _, r := range ws.rules {
				if r == id {
					return true
				}
			}
		}
	}
	return false
}

// Equal reports whether two write sets select the same rules.
func (ws WriteSet) Equal(other WriteSet) bool {
	if ws.Mode != other.Mode {
		return false
	}
	if ws.Mode != WriteSubset {
		return true
	}
	if len(ws.rules) != len(other.rules) {
		return false
	}
	return subsetOf(other.rules, ws)
}

func subsetOf(rules []string, ws WriteSet) bool {
	for _, r := range rules {
		if !ws.Enabled(r) {
			return false
		}
	}
	return true
}

// List returns the write_list form of ws.
func (ws WriteSet) List() []string {
	switch ws.Mode {
	case WriteAllRules:
		return []string{WriteAll}
	case WriteSubset:
		return ws.Rules()
	default:
		return []string{WriteNone}
	}
}

func (ws WriteSet) String() string {
	return strings.Join(ws.List(), ",")
}

// ParseWriteList folds accumulated write_list entries, in order, into a
// WriteSet. "all" enables every rule, "none" resets to nothing, and other
// entries add to the subset unless every rule is already enabled. An empty
// list means no rules.
func ParseWriteList(entries []string) WriteSet {
	ws := NoRules()
	for _, entry := range entries {
		for _, item := range splitWriteValue(entry) {
			switch item {
			case WriteAll:
				ws = AllRules()
			case WriteNone:
				ws = NoRules()
			default:
				if ws.Mode == WriteAllRules {
					continue
				}
				ws.Mode = WriteSubset
				ws.add(item)
			}
		}
	}
	return ws
}

// MergeWriteList combines the config file write_list with the --write values
// given on the command line. Any CLI occurrence replaces the file value
// outright; unlike other list options the two are never unioned.
func MergeWriteList(fromFile, fromCLI []string) []string {
	if len(fromCLI) > 0 {
		return fromCLI
	}
	return fromFile
}

func splitWriteValue(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var writeValueRe = regexp.MustCompile(`^[A-Za-z0-9_\-\[\]]+(,[A-Za-z0-9_\-\[\]]+)*$`)

// looksLikeWriteValue reports whether tok fits the --write vocabulary:
// all, none, or a comma-separated list of rule ids and tags.
func looksLikeWriteValue(tok string) bool {
	return tok == WriteAll || tok == WriteNone || writeValueRe.MatchString(tok)
}
