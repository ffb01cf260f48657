package names

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

const aiSystemMessage = "You are a creative business name generator. Generate only the names requested, no explanations."

// aiNames asks the completion provider and splits its answer into lines.
// Any provider failure degrades to the canned per-language list; when count
// exceeds that list the deficit stays unfilled, which callers accept.
func (g *Generator) aiNames(ctx context.Context, req Request) []string {
	if g.completer == nil {
		return truncate(fallbackNames(req.Language), req.Count)
	}

	response, err := g.completer.Complete(ctx, aiSystemMessage, aiPrompt(req))
	if err != nil {
		g.logDegradation(ctx, err)
		return truncate(fallbackNames(req.Language), req.Count)
	}

	var names []string
	for _, line := range strings.Split(response, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	if len(names) == 0 {
		return truncate(fallbackNames(req.Language), req.Count)
	}
	return truncate(names, req.Count)
}

func aiPrompt(req Request) string {
	var b strings.Builder
	if req.Language.IsArabic() {
		b.WriteString("أنشئ ")
		b.WriteString(strconv.Itoa(req.Count))
		b.WriteString(" أسماء شركات إبداعية باللغة العربية")
		if req.Sector != "" {
			b.WriteString(" في قطاع ")
			b.WriteString(req.Sector)
		}
		if len(req.Keywords) > 0 {
			b.WriteString(" تتضمن كلمات: ")
			b.WriteString(strings.Join(req.Keywords, "، "))
		}
		b.WriteString(". اكتب الأسماء فقط، كل اسم في سطر منفصل، بدون ترقيم أو رموز.")
	} else {
		b.WriteString("Generate ")
		b.WriteString(strconv.Itoa(req.Count))
		b.WriteString(" creative company names in English")
		if req.Sector != "" {
			b.WriteString(" for ")
			b.WriteString(req.Sector)
			b.WriteString(" sector")
		}
		if len(req.Keywords) > 0 {
			b.WriteString(" incorporating: ")
			b.WriteString(strings.Join(req.Keywords, ", "))
		}
		b.WriteString(". Write only the names, each on a new line, no numbering or symbols.")
	}
	return b.String()
}

// sectorNames combines the sector with random affixes. The Arabic variant
// glues the prefix directly onto the sector word; the English variant has no
// prefix at all.
func (g *Generator) sectorNames(lang Language, sector string, count int) []string {
	names := make([]string, 0, count)
	for range count {
		if lang.IsArabic() {
			names = append(names, g.pick(prefixes(lang))+sector+" "+g.pick(suffixes(lang)))
		} else {
			names = append(names, sector+" "+g.pick(suffixes(lang)))
		}
	}
	return names
}

// abbreviatedNames builds an acronym from the first letters of up to three
// keywords; with fewer than two keywords it cycles fixed placeholders instead.
func (g *Generator) abbreviatedNames(lang Language, keywords []string, count int) []string {
	if len(keywords) >= 2 {
		abbrev := acronym(keywords, 3)
		names := make([]string, 0, count)
		for range count {
			if lang.IsArabic() {
				names = append(names, "شركة "+abbrev)
			} else {
				names = append(names, abbrev+" Corp")
			}
		}
		return names
	}

	abbrevs := defaultAbbrevsEN
	if lang.IsArabic() {
		abbrevs = defaultAbbrevsAR
	}
	names := make([]string, 0, count)
	for _, abbrev := range truncate(abbrevs, count) {
		if lang.IsArabic() {
			names = append(names, "مجموعة "+abbrev)
		} else {
			names = append(names, abbrev+" Group")
		}
	}
	return names
}

// acronym joins the upper-cased first rune of up to max words.
func acronym(words []string, max int) string {
	var b strings.Builder
	for i, word := range words {
		if i == max {
			break
		}
		runes := []rune(word)
		if len(runes) == 0 {
			continue
		}
		b.WriteRune(unicode.ToUpper(runes[0]))
	}
	return b.String()
}

// compoundNames glues a random prefix onto a random suffix.
func (g *Generator) compoundNames(lang Language, count int) []string {
	names := make([]string, 0, count)
	for range count {
		names = append(names, g.pick(prefixes(lang))+g.pick(suffixes(lang)))
	}
	return names
}

// smartRandomNames alternates consonants and vowels for a pronounceable
// random word of length 5 to 8.
func (g *Generator) smartRandomNames(lang Language, count int) []string {
	vowels, consonants := vowelsEN, consonantsEN
	if lang.IsArabic() {
		vowels, consonants = vowelsAR, consonantsAR
	}

	names := make([]string, 0, count)
	for range count {
		length := 5 + g.intn(4)
		var b strings.Builder
		for i := range length {
			if i%2 == 0 {
				b.WriteRune(g.randRune(consonants))
			} else {
				b.WriteRune(g.randRune(vowels))
			}
		}

		name := capitalize(b.String())
		if lang.IsArabic() {
			name = "شركة " + name
		}
		names = append(names, name)
	}
	return names
}

// geographicNames appends a random suffix to a location, either the supplied
// one or a random pick from the fixed list.
func (g *Generator) geographicNames(lang Language, location string, count int) []string {
	locs := locations(lang)
	if location != "" {
		locs = []string{location}
	}

	names := make([]string, 0, count)
	for range count {
		names = append(names, g.pick(locs)+" "+g.pick(suffixes(lang)))
	}
	return names
}

// lengthBasedNames builds a random word of the requested length. The Arabic
// path caps the random part at 8 characters and prefixes a generic
// institution noun; the English path honours the exact length.
func (g *Generator) lengthBasedNames(lang Language, length, count int) []string {
	names := make([]string, 0, count)
	for range count {
		if lang.IsArabic() {
			n := min(length, 8)
			var b strings.Builder
			for range n {
				b.WriteRune(g.randRune(alphabetAR))
			}
			names = append(names, "مؤسسة "+b.String())
		} else {
			var b strings.Builder
			for range length {
				b.WriteRune(g.randRune(alphabetEN))
			}
			names = append(names, capitalize(b.String()))
		}
	}
	return names
}

// personalityNames validates the trait against the per-language list,
// substituting a random valid trait for unrecognized input.
func (g *Generator) personalityNames(lang Language, personality string, count int) []string {
	traits := personalityTraits(lang)
	if !slices.Contains(traits, personality) {
		personality = g.pick(traits)
	}

	suffixes := personalitySuffixesEN
	if lang.IsArabic() {
		suffixes = personalitySuffixesAR
	}

	names := make([]string, 0, count)
	for range count {
		names = append(names, personality+" "+g.pick(suffixes))
	}
	return names
}

func truncate(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

