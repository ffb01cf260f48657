package names

// Fixed word lists backing the local strategies. The Arabic and English
// lists are intentionally parallel so every strategy works in both languages.

var prefixesAR = []string{"الـ", "نور", "دار", "بيت", "مؤسسة", "شركة", "مجموعة", "مركز"}

var suffixesAR = []string{"تك", "برو", "ماكس", "بلس", "سولوشن", "سيستم", "لاب", "ورك"}

var prefixesEN = []string{"Pro", "Smart", "Digital", "Global", "Prime", "Elite", "Ultra", "Neo"}

var suffixesEN = []string{"Tech", "Pro", "Max", "Plus", "Solutions", "Systems", "Lab", "Works"}

var personalityTraitsAR = []string{
	"قوي", "مبدع", "موثوق", "سريع", "ذكي", "عصري", "أنيق", "محترف",
	"دقيق", "مبتكر", "شامل", "متطور", "فعال", "متميز", "رائد",
}

var personalityTraitsEN = []string{
	"Strong", "Creative", "Reliable", "Fast", "Smart", "Modern", "Elegant", "Professional",
	"Precise", "Innovative", "Comprehensive", "Advanced", "Efficient", "Distinguished", "Pioneer",
}

var locationsAR = []string{
	"الرياض", "جدة", "الدمام", "مكة", "المدينة", "الخليج", "العربية", "الشرق",
	"الغرب", "الشمال", "الجنوب", "الوسط",
}

var locationsEN = []string{
	"Riyadh", "Jeddah", "Dammam", "Mecca", "Medina", "Gulf", "Arabia", "East",
	"West", "North", "South", "Central",
}

// Short suffix words used by the personality strategy only.
var personalitySuffixesAR = []string{"تك", "برو", "سولوشن"}

var personalitySuffixesEN = []string{"Tech", "Pro", "Solutions"}

// Placeholder abbreviations used when too few keywords are supplied.
var defaultAbbrevsAR = []string{"أ ب ج", "س ص ض", "ق ك ل", "م ن ه", "ت ث ج"}

var defaultAbbrevsEN = []string{"ABC", "XYZ", "PQR", "MNO", "DEF"}

// Canned names returned when the AI provider is unavailable.
var fallbackNamesAR = []string{"الرائد تك", "النجمة برو", "الإبداع سولوشن", "التميز جروب", "الابتكار لاب"}

var fallbackNamesEN = []string{"Pioneer Tech", "Star Pro", "Creative Solutions", "Excellence Group", "Innovation Lab"}

// Alphabets for the random-synthesis strategies. The Arabic vowel set keeps
// the Latin vowels alongside the alef on purpose: the blend produces
// pronounceable hybrid names.
const (
	vowelsAR     = "اeiou"
	vowelsEN     = "aeiou"
	consonantsAR = "بتثجحخدذرزسشصضطظعغفقكلمنهوي"
	consonantsEN = "bcdfghjklmnpqrstvwxyz"
	alphabetAR   = "ابتثجحخدذرزسشصضطظعغفقكلمنهوي"
	alphabetEN   = "abcdefghijklmnopqrstuvwxyz"
)

func prefixes(l Language) []string {
	if l.IsArabic() {
		return prefixesAR
	}
	return prefixesEN
}

func suffixes(l Language) []string {
	if l.IsArabic() {
		return suffixesAR
	}
	return suffixesEN
}

func personalityTraits(l Language) []string {
	if l.IsArabic() {
		return personalityTraitsAR
	}
	return personalityTraitsEN
}

func locations(l Language) []string {
	if l.IsArabic() {
		return locationsAR
	}
	return locationsEN
}

func fallbackNames(l Language) []string {
	if l.IsArabic() {
		return fallbackNamesAR
	}
	return fallbackNamesEN
}
