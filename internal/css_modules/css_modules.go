// Package css_modules names the one external collaborator this subsystem
// defers to for CSS Modules support (spec.md §1 Non-goals: "the renaming
// table itself... is a collaborator, not a feature of this package"): the
// Renamer interface the Serializer consults when emitting a class or ID
// token outside a :global(...) wrapper. DefaultRenamer is a small,
// deterministic implementation that exercises the interface end to end;
// a real build pipeline would supply its own (content-hash, file-scoped,
// or pattern-interpolated).
package css_modules

import "strings"

// Renamer maps a local class/ID identifier, as written in the source
// selector, to the scoped name that should appear in the compiled output.
type Renamer interface {
	RenameLocal(name string) string
}

// DefaultRenamer implements Renamer with either literal pattern
// interpolation (Pattern, substituting the single placeholder
// "[local]") or a fixed per-file suffix. Pattern takes priority when set.
type DefaultRenamer struct {
	Pattern string
	Suffix  string
}

func (r DefaultRenamer) RenameLocal(name string) string {
	if r.Pattern != "" {
		return strings.ReplaceAll(r.Pattern, "[local]", name)
	}
	if r.Suffix == "" {
		return name
	}
	return name + "_" + r.Suffix
}
