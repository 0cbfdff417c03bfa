package names

// builtinFamilies is the curated transliteration dictionary: canonical
// root spelling -> accepted Latin-script variants. It covers common
// Arabic-origin given names seen on UAE identity documents.
//
// The dictionary is deliberately curated rather than phonetic:
// transliteration equivalence is undecidable from spelling alone for
// novel names, so the system trades recall for precision and keeps
// every equivalence auditable.
var builtinFamilies = map[string][]string{
	"mohamed":  {"mohammed", "mohammad", "muhammad", "muhammed", "mohamad", "mohamud"},
	"ahmed":    {"ahmad", "ahmet", "achmed"},
	"ali":      {"aly", "alee"},
	"omar":     {"umar", "omer"},
	"khalid":   {"khaled", "kalid", "halid"},
	"abdullah": {"abdulla", "abdalla", "abdallah", "abdella"},
	"hassan":   {"hasan", "hassen"},
	"hussein":  {"hussain", "husain", "husayn", "hossein"},
	"ibrahim":  {"ebrahim", "ibraheem", "brahim"},
	"yousef":   {"yousuf", "yusuf", "youssef", "yusef"},
	"saeed":    {"said", "saeid", "sayeed"},
	"salem":    {"salim", "saleem"},
	"rashid":   {"rashed", "rasheed"},
	"mustafa":  {"mostafa", "moustafa", "mustapha"},
	"mahmoud":  {"mahmood", "mahmud"},
	"tariq":    {"tarek", "tarik"},
	"jamal":    {"jamaal", "gamal"},
	"osman":    {"othman", "usman", "uthman"},
	"khalil":   {"khaleel"},
	"samir":    {"sameer"},
	"karim":    {"kareem"},
	"nasser":   {"naser", "nassir"},
	"faisal":   {"faysal", "feisal"},
	"majid":    {"majed"},
	"waleed":   {"walid"},
	"hamdan":   {"hamdaan"},
	"sultan":   {"soltan"},
	"fatima":   {"fatimah", "fatma", "fatema"},
	"aisha":    {"aysha", "ayesha", "aishah"},
	"mariam":   {"maryam", "meriem", "miriam"},
	"zainab":   {"zaynab", "zeinab"},
	"khadija":  {"khadijah", "khadeeja"},
	"noor":     {"nour", "nur"},
	"layla":    {"laila", "leila", "leyla"},
	"amina":    {"aminah", "ameena"},
	"sara":     {"sarah", "saara"},
	"huda":     {"houda", "hoda"},
}
