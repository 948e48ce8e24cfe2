package media

import "fmt"

// Group is an equivalence class of items sharing a content digest. Members
// keep their discovery order; the first member is the default keep
// selection.
type Group struct {
	Digest   string  `json:"digest"`
	Members  []*Item `json:"members"`
	KeepPath string  `json:"keep_path"`
}

// NewGroup builds a group over members, defaulting the keep selection to the
// first member and marking the rest as duplicates of it.
func NewGroup(digest string, members []*Item) *Group {
	g := &Group{Digest: digest, Members: members}
	if len(members) > 0 {
		g.KeepPath = members[0].Path
		g.markDuplicates()
	}
	return g
}

// SetKeep changes the keep selection. The path must belong to a member.
func (g *Group) SetKeep(path string) error {
	for _, m := range g.Members {
		if m.Path == path {
			g.KeepPath = path
			g.markDuplicates()
			return nil
		}
	}
	return fmt.Errorf("%s is not a member of group %s", path, g.Digest)
}

// ToDelete returns every member other than the kept one.
func (g *Group) ToDelete() []*Item {
	out := make([]*Item, 0, len(g.Members))
	for _, m := range g.Members {
		if m.Path != g.KeepPath {
			out = append(out, m)
		}
	}
	return out
}

// RecoverableBytes is the total size of the members slated for removal.
func (g *Group) RecoverableBytes() int64 {
	var total int64
	for _, m := range g.ToDelete() {
		total += m.Size
	}
	return total
}

func (g *Group) markDuplicates() {
	for _, m := range g.Members {
		if m.Path == g.KeepPath {
			m.IsDuplicate = false
			m.DuplicateOf = ""
		} else {
			m.IsDuplicate = true
			m.DuplicateOf = g.KeepPath
		}
	}
}
