package names

// Strategy identifies one of the fixed name-generation algorithms.
type Strategy string

const (
	StrategyAI          Strategy = "ai"
	StrategySector      Strategy = "sector"
	StrategyAbbreviated Strategy = "abbreviated"
	StrategyCompound    Strategy = "compound"
	StrategySmartRandom Strategy = "smart_random"
	StrategyGeographic  Strategy = "geographic"
	StrategyLengthBased Strategy = "length_based"
	StrategyPersonality Strategy = "personality"
)

// Language selects the word lists and prompt language used for generation.
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

// IsArabic reports whether the language is Arabic. Any other value falls
// through to the English word lists rather than erroring.
func (l Language) IsArabic() bool { return l == LanguageArabic }

const defaultCount = 5

// Request carries the strategy tag and its parameters for one generation call.
type Request struct {
	Type        Strategy `json:"type"`
	Language    Language `json:"language"`
	Sector      string   `json:"sector,omitempty"`
	Length      int      `json:"length,omitempty"`
	Personality string   `json:"personality,omitempty"`
	Location    string   `json:"location,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Count       int      `json:"count,omitempty"`
}

// normalized returns a copy with defaults applied: count 5, length 6.
func (r Request) normalized() Request {
	if r.Count <= 0 {
		r.Count = defaultCount
	}
	if r.Length <= 0 {
		r.Length = 6
	}
	return r
}
