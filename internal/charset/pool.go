package charset

import "github.com/verte-zerg/genpass/internal/model"

// Pool is the ordered, de-duplicated set of characters a password draws from.
type Pool struct {
	all     []rune
	classes []model.CharClass
	byClass map[model.CharClass][]rune
}

// BuildPool unions the enabled classes and drops ambiguous and similar
// characters when requested.
func BuildPool(cfg model.GenerationConfig) (Pool, error) {
	p := Pool{byClass: map[model.CharClass][]rune{}}
	seen := map[rune]struct{}{}
	for _, class := range cfg.EnabledClasses() {
		var members []rune
		for _, r := range Chars(class) {
			if (cfg.ExcludeAmbiguous && IsAmbiguous(r)) || (cfg.ExcludeSimilar && IsSimilar(r)) {
				continue
			}
			members = append(members, r)
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
			p.all = append(p.all, r)
		}
		if len(members) == 0 {
			continue
		}
		p.classes = append(p.classes, class)
		p.byClass[class] = members
	}
	if len(p.all) == 0 {
		return Pool{}, model.EmptyPoolf("no characters left after applying exclusions")
	}
	return p, nil
}

// Runes returns the pool characters in order.
func (p Pool) Runes() []rune {
	out := make([]rune, len(p.all))
	copy(out, p.all)
	return out
}

// Classes returns the classes that contributed characters, in canonical order.
func (p Pool) Classes() []model.CharClass {
	out := make([]model.CharClass, len(p.classes))
	copy(out, p.classes)
	return out
}

// ClassRunes returns the members of one class left after exclusions.
func (p Pool) ClassRunes(c model.CharClass) []rune {
	members := p.byClass[c]
	out := make([]rune, len(members))
	copy(out, members)
	return out
}
