package plural

import (
	"math"
	"strings"
)

// Category is a CLDR plural category.
type Category string

// Plural categories as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	Zero  Category = "zero"
	One   Category = "one"
	Two   Category = "two"
	Few   Category = "few"
	Many  Category = "many"
	Other Category = "other"
)

// Rule maps a numeric operand to a plural category.
type Rule func(n float64) Category

// localeRules maps a base language code to its rule set index.
var localeRules = map[string]int{
	"af":  3,
	"ak":  4,
	"am":  4,
	"ar":  1,
	"asa": 3,
	"az":  0,
	"be":  11,
	"bem": 3,
	"bez": 3,
	"bg":  3,
	"bh":  4,
	"bm":  0,
	"bn":  3,
	"bo":  0,
	"br":  20,
	"brx": 3,
	"bs":  11,
	"ca":  3,
	"cgg": 3,
	"chr": 3,
	"cs":  12,
	"cy":  17,
	"da":  3,
	"de":  3,
	"dv":  3,
	"dz":  0,
	"ee":  3,
	"el":  3,
	"en":  3,
	"eo":  3,
	"es":  3,
	"et":  3,
	"eu":  3,
	"fa":  0,
	"ff":  5,
	"fi":  3,
	"fil": 4,
	"fo":  3,
	"fr":  5,
	"fur": 3,
	"fy":  3,
	"ga":  8,
	"gd":  24,
	"gl":  3,
	"gsw": 3,
	"gu":  3,
	"guw": 4,
	"gv":  23,
	"ha":  3,
	"haw": 3,
	"he":  2,
	"hi":  4,
	"hr":  11,
	"hu":  0,
	"id":  0,
	"ig":  0,
	"ii":  0,
	"is":  3,
	"it":  3,
	"iu":  7,
	"ja":  0,
	"jmc": 3,
	"jv":  0,
	"ka":  0,
	"kab": 5,
	"kaj": 3,
	"kcg": 3,
	"kde": 0,
	"kea": 0,
	"kk":  3,
	"kl":  3,
	"km":  0,
	"kn":  0,
	"ko":  0,
	"ksb": 3,
	"ksh": 21,
	"ku":  3,
	"kw":  7,
	"lag": 18,
	"lb":  3,
	"lg":  3,
	"ln":  4,
	"lo":  0,
	"lt":  10,
	"lv":  6,
	"mas": 3,
	"mg":  4,
	"mk":  16,
	"ml":  3,
	"mn":  3,
	"mo":  9,
	"mr":  3,
	"ms":  0,
	"mt":  15,
	"my":  0,
	"nah": 3,
	"naq": 7,
	"nb":  3,
	"nd":  3,
	"ne":  3,
	"nl":  3,
	"nn":  3,
	"no":  3,
	"nr":  3,
	"nso": 4,
	"ny":  3,
	"nyn": 3,
	"om":  3,
	"or":  3,
	"pa":  3,
	"pap": 3,
	"pl":  13,
	"ps":  3,
	"pt":  3,
	"rm":  3,
	"ro":  9,
	"rof": 3,
	"ru":  11,
	"rwk": 3,
	"sah": 0,
	"saq": 3,
	"se":  7,
	"seh": 3,
	"ses": 0,
	"sg":  0,
	"sh":  11,
	"shi": 19,
	"sk":  12,
	"sl":  14,
	"sma": 7,
	"smi": 7,
	"smj": 7,
	"smn": 7,
	"sms": 7,
	"sn":  3,
	"so":  3,
	"sq":  3,
	"sr":  11,
	"ss":  3,
	"ssy": 3,
	"st":  3,
	"sv":  3,
	"sw":  3,
	"syr": 3,
	"ta":  3,
	"te":  3,
	"teo": 3,
	"th":  0,
	"ti":  4,
	"tig": 3,
	"tk":  3,
	"tl":  4,
	"tn":  3,
	"to":  0,
	"tr":  0,
	"ts":  3,
	"tzm": 22,
	"uk":  11,
	"ur":  3,
	"ve":  3,
	"vi":  0,
	"vun": 3,
	"wa":  4,
	"wae": 3,
	"wo":  0,
	"xh":  3,
	"xog": 3,
	"yo":  0,
	"zh":  0,
	"zu":  3,
}

func mod(n, m float64) float64 { return math.Mod(n, m) }

func between(n, start, end float64) bool { return start <= n && n <= end }

func in(n float64, list ...float64) bool {
	for _, v := range list {
		if n == v {
			return true
		}
	}
	return false
}

func otherRule(float64) Category { return Other }

var ruleSets = [...]Rule{
	0: otherRule,
	1: func(n float64) Category {
		switch {
		case between(mod(n, 100), 3, 10):
			return Few
		case n == 0:
			return Zero
		case between(mod(n, 100), 11, 99):
			return Many
		case n == 2:
			return Two
		case n == 1:
			return One
		}
		return Other
	},
	2: func(n float64) Category {
		switch {
		case n != 0 && mod(n, 10) == 0:
			return Many
		case n == 2:
			return Two
		case n == 1:
			return One
		}
		return Other
	},
	3: func(n float64) Category {
		if n == 1 {
			return One
		}
		return Other
	},
	4: func(n float64) Category {
		if between(n, 0, 1) {
			return One
		}
		return Other
	},
	5: func(n float64) Category {
		if between(n, 0, 2) && n != 2 {
			return One
		}
		return Other
	},
	6: func(n float64) Category {
		switch {
		case n == 0:
			return Zero
		case mod(n, 10) == 1 && mod(n, 100) != 11:
			return One
		}
		return Other
	},
	7: func(n float64) Category {
		switch {
		case n == 2:
			return Two
		case n == 1:
			return One
		}
		return Other
	},
	8: func(n float64) Category {
		switch {
		case between(n, 3, 6):
			return Few
		case between(n, 7, 10):
			return Many
		case n == 2:
			return Two
		case n == 1:
			return One
		}
		return Other
	},
	9: func(n float64) Category {
		switch {
		case n == 0 || n != 1 && between(mod(n, 100), 1, 19):
			return Few
		case n == 1:
			return One
		}
		return Other
	},
	10: func(n float64) Category {
		switch {
		case between(mod(n, 10), 2, 9) && !between(mod(n, 100), 11, 19):
			return Few
		case mod(n, 10) == 1 && !between(mod(n, 100), 11, 19):
			return One
		}
		return Other
	},
	11: func(n float64) Category {
		switch {
		case between(mod(n, 10), 2, 4) && !between(mod(n, 100), 12, 14):
			return Few
		case mod(n, 10) == 0 || between(mod(n, 10), 5, 9) || between(mod(n, 100), 11, 14):
			return Many
		case mod(n, 10) == 1 && mod(n, 100) != 11:
			return One
		}
		return Other
	},
	12: func(n float64) Category {
		switch {
		case between(n, 2, 4):
			return Few
		case n == 1:
			return One
		}
		return Other
	},
	13: func(n float64) Category {
		switch {
		case between(mod(n, 10), 2, 4) && !between(mod(n, 100), 12, 14):
			return Few
		case n != 1 && between(mod(n, 10), 0, 1) || between(mod(n, 10), 5, 9) || between(mod(n, 100), 12, 14):
			return Many
		case n == 1:
			return One
		}
		return Other
	},
	14: func(n float64) Category {
		switch {
		case between(mod(n, 100), 3, 4):
			return Few
		case mod(n, 100) == 2:
			return Two
		case mod(n, 100) == 1:
			return One
		}
		return Other
	},
	15: func(n float64) Category {
		switch {
		case n == 0 || between(mod(n, 100), 2, 10):
			return Few
		case between(mod(n, 100), 11, 19):
			return Many
		case n == 1:
			return One
		}
		return Other
	},
	16: func(n float64) Category {
		if mod(n, 10) == 1 && n != 11 {
			return One
		}
		return Other
	},
	17: func(n float64) Category {
		switch n {
		case 3:
			return Few
		case 0:
			return Zero
		case 6:
			return Many
		case 2:
			return Two
		case 1:
			return One
		}
		return Other
	},
	18: func(n float64) Category {
		switch {
		case n == 0:
			return Zero
		case between(n, 0, 2) && n != 0 && n != 2:
			return One
		}
		return Other
	},
	19: func(n float64) Category {
		switch {
		case between(n, 2, 10):
			return Few
		case between(n, 0, 1):
			return One
		}
		return Other
	},
	20: func(n float64) Category {
		switch {
		case (between(mod(n, 10), 3, 4) || mod(n, 10) == 9) &&
			!(between(mod(n, 100), 10, 19) || between(mod(n, 100), 70, 79) || between(mod(n, 100), 90, 99)):
			return Few
		case mod(n, 1000000) == 0 && n != 0:
			return Many
		case mod(n, 10) == 2 && !in(mod(n, 100), 12, 72, 92):
			return Two
		case mod(n, 10) == 1 && !in(mod(n, 100), 11, 71, 91):
			return One
		}
		return Other
	},
	21: func(n float64) Category {
		switch n {
		case 0:
			return Zero
		case 1:
			return One
		}
		return Other
	},
	22: func(n float64) Category {
		if between(n, 0, 1) || between(n, 11, 99) {
			return One
		}
		return Other
	},
	23: func(n float64) Category {
		if between(mod(n, 10), 1, 2) || mod(n, 20) == 0 {
			return One
		}
		return Other
	},
	24: func(n float64) Category {
		switch {
		case between(n, 3, 10) || between(n, 13, 19):
			return Few
		case in(n, 2, 12):
			return Two
		case in(n, 1, 11):
			return One
		}
		return Other
	},
}

// RuleFor returns the plural rule of a language. Only the part of code before
// the first '-' is significant. Unknown languages always select Other.
func RuleFor(code string) Rule {
	base, _, _ := strings.Cut(code, "-")
	if idx, ok := localeRules[base]; ok {
		return ruleSets[idx]
	}
	return otherRule
}

// RuleSet returns the rule set with the given index.
func RuleSet(index int) (Rule, bool) {
	if index < 0 || index >= len(ruleSets) {
		return nil, false
	}
	return ruleSets[index], true
}

// Select is a shorthand for RuleFor(code)(n).
func Select(code string, n float64) Category {
	return RuleFor(code)(n)
}
