package timewords

// Stress marks ("+" before the stressed vowel) are part of the lexemes; the
// synthesizer reads them directly.

var unitsMasculine = [10]string{
	"ноль", "один", "два", "три", "чет+ыре",
	"пять", "шесть", "семь", "в+осемь", "д+евять",
}

var unitsFeminine = [10]string{
	"ноль", "одн+а", "две", "три", "чет+ыре",
	"пять", "шесть", "семь", "в+осемь", "д+евять",
}

var teens = [10]string{
	"д+есять", "од+иннадцать", "двен+адцать", "трин+адцать", "чет+ырнадцать",
	"пятн+адцать", "шестн+адцать", "семн+адцать", "восемн+адцать", "девятн+адцать",
}

// tens is indexed by n/10.
var tens = [6]string{
	2: "дв+адцать",
	3: "тр+идцать",
	4: "с+орок",
	5: "пятьдес+ят",
}

const (
	wordMidnight = "п+олночь"
	wordNoon     = "п+олдень"
	wordExactly  = "р+овно"
	wordHalf     = "полов+ина"
	wordQuarter  = "ч+етверть"
	wordQuarterT = "ч+етверти"
	wordWithout  = "без"
)

// forms holds singular, few and many forms of a countable noun.
type forms [3]string

var stressedForms = map[Noun]forms{
	NounHour:   {"час", "час+а", "час+ов"},
	NounMinute: {"мин+ута", "мин+уты", "мин+ут"},
	NounSecond: {"сек+унда", "сек+унды", "сек+унд"},
}

var plainForms = map[Noun]forms{
	NounHour:   {"час", "часа", "часов"},
	NounMinute: {"минута", "минуты", "минут"},
	NounSecond: {"секунда", "секунды", "секунд"},
}
