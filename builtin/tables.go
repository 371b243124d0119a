package builtin

import "github.com/npillmayer/transliterate"

var copticRules = []transliterate.Rule{
	{"th", "ⲑ"}, {"kh", "ⲭ"}, {"ps", "ⲯ"}, {"sh", "ϣ"}, {"a", "ⲁ"}, {"b", "ⲃ"},
	{"g", "ⲅ"}, {"d", "ⲇ"}, {"e", "ⲉ"}, {"z", "ⲍ"}, {"h", "ⲏ"}, {"i", "ⲓ"},
	{"k", "ⲕ"}, {"l", "ⲗ"}, {"m", "ⲙ"}, {"n", "ⲛ"}, {"x", "ⲝ"}, {"o", "ⲟ"},
	{"p", "ⲡ"}, {"r", "ⲣ"}, {"s", "ⲥ"}, {"t", "ⲧ"}, {"u", "ⲩ"}, {"f", "ϥ"},
	{"q", "ϩ"}, {"w", "ⲱ"},
}

var arabicRules = []transliterate.Rule{
	{"th", "ث"}, {"dh", "ذ"}, {"kh", "خ"}, {"sh", "ش"}, {"gh", "غ"}, {"a", "ا"},
	{"b", "ب"}, {"t", "ت"}, {"j", "ج"}, {"ḥ", "ح"}, {"d", "د"}, {"r", "ر"},
	{"z", "ز"}, {"s", "س"}, {"ṣ", "ص"}, {"ḍ", "ض"}, {"ṭ", "ط"}, {"ẓ", "ظ"},
	{"f", "ف"}, {"q", "ق"}, {"k", "ك"}, {"l", "ل"}, {"m", "م"}, {"n", "ن"},
	{"h", "ه"}, {"w", "و"}, {"y", "ي"},
}

var hebrewRules = []transliterate.Rule{
	{"kh", "ח"}, {"ts", "צ"}, {"sh", "ש"}, {"th", "ת"}, {"a", "א"}, {"b", "ב"},
	{"g", "ג"}, {"d", "ד"}, {"h", "ה"}, {"v", "ו"}, {"z", "ז"}, {"t", "ט"},
	{"y", "י"}, {"k", "כ"}, {"l", "ל"}, {"m", "מ"}, {"n", "נ"}, {"s", "ס"},
	{"e", "ע"}, {"p", "פ"}, {"q", "ק"}, {"r", "ר"}, {"o", "ו"}, {"u", "ו"},
	{"i", "י"}, {"c", "צ"}, {"f", "פ"}, {"x", "כ"}, {"j", "ח"}, {"w", "ו"},
}

var hebrewFinals = map[rune]rune{
	'מ': 'ם', 'נ': 'ן', 'פ': 'ף', 'צ': 'ץ', 'כ': 'ך',
}

var greekRules = []transliterate.Rule{
	{"th", "θ"}, {"ch", "χ"}, {"ps", "ψ"}, {"a", "α"}, {"b", "β"}, {"g", "γ"},
	{"d", "δ"}, {"e", "ε"}, {"z", "ζ"}, {"h", "η"}, {"i", "ι"}, {"k", "κ"},
	{"l", "λ"}, {"m", "μ"}, {"n", "ν"}, {"x", "ξ"}, {"o", "ο"}, {"p", "π"},
	{"r", "ρ"}, {"s", "σ"}, {"t", "τ"}, {"u", "υ"}, {"f", "φ"}, {"q", "θ"},
	{"w", "ω"},
}

var greekFinals = map[rune]rune{
	'σ': 'ς',
}

var betaRules = []transliterate.Rule{
	{"*/a", "Ά"}, {"*/e", "Έ"}, {"*/h", "Ή"}, {"*/i", "Ί"}, {"*/o", "Ό"},
	{"*/u", "Ύ"}, {"*/w", "Ώ"}, {"i/+", "ΐ"}, {"*a", "Α"}, {"*b", "Β"},
	{"*g", "Γ"}, {"*d", "Δ"}, {"*e", "Ε"}, {"*z", "Ζ"}, {"*h", "Η"},
	{"*q", "Θ"}, {"*i", "Ι"}, {"*k", "Κ"}, {"*l", "Λ"}, {"*m", "Μ"},
	{"*n", "Ν"}, {"*c", "Ξ"}, {"*o", "Ο"}, {"*p", "Π"}, {"*r", "Ρ"},
	{"*s", "Σ"}, {"*t", "Τ"}, {"*u", "Υ"}, {"*f", "Φ"}, {"*x", "Χ"},
	{"*y", "Ψ"}, {"*w", "Ω"}, {"*+i", "Ϊ"}, {"*+u", "Ϋ"}, {"a/", "ά"},
	{"e/", "έ"}, {"h/", "ή"}, {"i/", "ί"}, {"u/+", "ΰ"}, {"i+", "ϊ"},
	{"u+", "ϋ"}, {"o/", "ό"}, {"u/", "ύ"}, {"w/", "ώ"}, {"s3", "ϲ"},
	{"*s3", "Ϲ"}, {"a)", "ἀ"}, {"a(", "ἁ"}, {"a)\\", "ἂ"}, {"a(\\", "ἃ"},
	{"a)/", "ἄ"}, {"a(/", "ἅ"}, {"a)=", "ἆ"}, {"a(=", "ἇ"}, {"*)a", "Ἀ"},
	{"*(a", "Ἁ"}, {"*)\\a", "Ἂ"}, {"*(\\a", "Ἃ"}, {"*)/a", "Ἄ"}, {"*(/a", "Ἅ"},
	{"*)=a", "Ἆ"}, {"*(=a", "Ἇ"}, {"e)", "ἐ"}, {"e(", "ἑ"}, {"e)\\", "ἒ"},
	{"e(\\", "ἓ"}, {"e)/", "ἔ"}, {"e(/", "ἕ"}, {"*)e", "Ἐ"}, {"*(e", "Ἑ"},
	{"*)\\e", "Ἒ"}, {"*(\\e", "Ἓ"}, {"*)/e", "Ἔ"}, {"*(/e", "Ἕ"}, {"h)", "ἠ"},
	{"h(", "ἡ"}, {"h)\\", "ἢ"}, {"h(\\", "ἣ"}, {"h)/", "ἤ"}, {"h(/", "ἥ"},
	{"h)=", "ἦ"}, {"h(=", "ἧ"}, {"*)h", "Ἠ"}, {"*(h", "Ἡ"}, {"*)\\h", "Ἢ"},
	{"*(\\h", "Ἣ"}, {"*)/h", "Ἤ"}, {"*(/h", "Ἥ"}, {"*)=h", "Ἦ"}, {"*(=h", "Ἧ"},
	{"i)", "ἰ"}, {"i(", "ἱ"}, {"i)\\", "ἲ"}, {"i(\\", "ἳ"}, {"i)/", "ἴ"},
	{"i(/", "ἵ"}, {"i)=", "ἶ"}, {"i(=", "ἷ"}, {"*)i", "Ἰ"}, {"*(i", "Ἱ"},
	{"*)\\i", "Ἲ"}, {"*(\\i", "Ἳ"}, {"*)/i", "Ἴ"}, {"*(/i", "Ἵ"}, {"*)=i", "Ἶ"},
	{"*(=i", "Ἷ"}, {"o)", "ὀ"}, {"o(", "ὁ"}, {"o)\\", "ὂ"}, {"o(\\", "ὃ"},
	{"o)/", "ὄ"}, {"o(/", "ὅ"}, {"*)o", "Ὀ"}, {"*(o", "Ὁ"}, {"*)\\o", "Ὂ"},
	{"*(\\o", "Ὃ"}, {"*)/o", "Ὄ"}, {"*(/o", "Ὅ"}, {"u)", "ὐ"}, {"u(", "ὑ"},
	{"u)\\", "ὒ"}, {"u(\\", "ὓ"}, {"u)/", "ὔ"}, {"u(/", "ὕ"}, {"u)=", "ὖ"},
	{"u(=", "ὗ"}, {"*(u", "Ὑ"}, {"*(\\u", "Ὓ"}, {"*(/u", "Ὕ"}, {"*(=u", "Ὗ"},
	{"w)", "ὠ"}, {"w(", "ὡ"}, {"w)\\", "ὢ"}, {"w(\\", "ὣ"}, {"w)/", "ὤ"},
	{"w(/", "ὥ"}, {"w)=", "ὦ"}, {"w(=", "ὧ"}, {"*)w", "Ὠ"}, {"*(w", "Ὡ"},
	{"*)\\w", "Ὢ"}, {"*(\\w", "Ὣ"}, {"*)/w", "Ὤ"}, {"*(/w", "Ὥ"}, {"*)=w", "Ὦ"},
	{"*(=w", "Ὧ"}, {"a\\", "ὰ"}, {"e\\", "ὲ"}, {"h\\", "ὴ"}, {"i\\", "ὶ"},
	{"o\\", "ὸ"}, {"u\\", "ὺ"}, {"w\\", "ὼ"}, {"a)|", "ᾀ"}, {"a(|", "ᾁ"},
	{"a)\\|", "ᾂ"}, {"a(\\|", "ᾃ"}, {"a)/|", "ᾄ"}, {"a(/|", "ᾅ"}, {"a)=|", "ᾆ"},
	{"a(=|", "ᾇ"}, {"*)|a", "ᾈ"}, {"*(|a", "ᾉ"}, {"*)\\|a", "ᾊ"}, {"*(\\|a", "ᾋ"},
	{"*)/|a", "ᾌ"}, {"*(/|a", "ᾍ"}, {"*)=|a", "ᾎ"}, {"*(=|a", "ᾏ"}, {"h)|", "ᾐ"},
	{"h(|", "ᾑ"}, {"h)\\|", "ᾒ"}, {"h(\\|", "ᾓ"}, {"h)/|", "ᾔ"}, {"h(/|", "ᾕ"},
	{"h)=|", "ᾖ"}, {"h(=|", "ᾗ"}, {"*)|h", "ᾘ"}, {"*(|h", "ᾙ"}, {"*)\\|h", "ᾚ"},
	{"*(\\|h", "ᾛ"}, {"*)/|h", "ᾜ"}, {"*(/|h", "ᾝ"}, {"*)=|h", "ᾞ"}, {"*(=|h", "ᾟ"},
	{"w)|", "ᾠ"}, {"w(|", "ᾡ"}, {"w)\\|", "ᾢ"}, {"w(\\|", "ᾣ"}, {"w)/|", "ᾤ"},
	{"w(/|", "ᾥ"}, {"w)=|", "ᾦ"}, {"w(=|", "ᾧ"}, {"*)|w", "ᾨ"}, {"*(|w", "ᾩ"},
	{"*)\\|w", "ᾪ"}, {"*(\\|w", "ᾫ"}, {"*)/|w", "ᾬ"}, {"*(/|w", "ᾭ"}, {"*)=|w", "ᾮ"},
	{"*(=|w", "ᾯ"}, {"a\\|", "ᾲ"}, {"a|", "ᾳ"}, {"a/|", "ᾴ"}, {"a=", "ᾶ"},
	{"a=|", "ᾷ"}, {"*\\a", "Ὰ"}, {"*|a", "ᾼ"}, {"'", "᾽"}, {"h\\|", "ῂ"},
	{"h|", "ῃ"}, {"h/|", "ῄ"}, {"h=", "ῆ"}, {"h=|", "ῇ"}, {"*\\e", "Ὲ"},
	{"*\\h", "Ὴ"}, {"*|h", "ῌ"}, {"i\\+", "ῒ"}, {"i=", "ῖ"}, {"i=+", "ῗ"},
	{"*\\i", "Ὶ"}, {"u\\+", "ῢ"}, {"r)", "ῤ"}, {"r(", "ῥ"}, {"u=", "ῦ"},
	{"u=+", "ῧ"}, {"*\\u", "Ὺ"}, {"*(r", "Ῥ"}, {"w\\|", "ῲ"}, {"w|", "ῳ"},
	{"w/|", "ῴ"}, {"w=", "ῶ"}, {"w=|", "ῷ"}, {"*\\o", "Ὸ"}, {"*\\w", "Ὼ"},
	{"*|w", "ῼ"}, {"_", "—"},
}
