package idgen

// gender selects the adjective ending a noun imposes on every token that
// precedes it (strong declension, nominative).
type gender int

const (
	masculine gender = iota
	feminine
	neuter
	plural
)

func (g gender) suffix() string {
	switch g {
	case masculine:
		return "er"
	case neuter:
		return "es"
	default:
		return "e"
	}
}

type noun struct {
	word   string
	gender gender
}

// All tokens are lowercase ASCII; umlauts and ß are transliterated so ids
// never need escaping inside a path segment.
var adjectives = []string{
	"klein", "gross", "schnell", "flink", "mutig", "frech", "lustig", "wild",
	"zahm", "klug", "schlau", "froh", "munter", "sanft", "stolz", "wach",
	"kuehn", "heiter", "fleissig", "neugierig", "ruhig", "emsig", "eifrig",
	"tapfer", "listig", "treu", "zart", "kraeftig", "wendig", "hungrig",
	"durstig", "verspielt", "vergnuegt", "gemuetlich", "freundlich",
	"froehlich", "flauschig", "pfiffig", "schlaefrig", "maechtig",
	"geduldig", "wachsam", "kuschelig", "glaenzend", "tanzend", "singend",
	"traeumend", "huepfend",
}

var colors = []string{
	"rot", "blau", "gruen", "gelb", "schwarz", "weiss", "braun", "grau",
	"violett", "golden", "silbern", "bronzen", "purpurn", "scharlachrot",
	"himmelblau", "smaragdgruen", "zitronengelb", "dunkelblau", "hellgruen",
	"tiefrot", "kupfern", "rostrot", "moosgruen", "nachtblau",
}

var nouns = []noun{
	{"fuchs", masculine}, {"baer", masculine}, {"hund", masculine},
	{"igel", masculine}, {"wal", masculine}, {"adler", masculine},
	{"falke", masculine}, {"biber", masculine}, {"dachs", masculine},
	{"hase", masculine}, {"luchs", masculine}, {"rabe", masculine},
	{"specht", masculine}, {"wolf", masculine}, {"hai", masculine},
	{"tiger", masculine}, {"loewe", masculine}, {"pinguin", masculine},
	{"papagei", masculine}, {"frosch", masculine}, {"elch", masculine},
	{"otter", masculine}, {"kater", masculine}, {"uhu", masculine},

	{"katze", feminine}, {"maus", feminine}, {"eule", feminine},
	{"ente", feminine}, {"gans", feminine}, {"robbe", feminine},
	{"schnecke", feminine}, {"taube", feminine}, {"ziege", feminine},
	{"kuh", feminine}, {"biene", feminine}, {"hummel", feminine},
	{"krabbe", feminine}, {"meise", feminine}, {"amsel", feminine},
	{"giraffe", feminine}, {"schildkroete", feminine}, {"libelle", feminine},
	{"muschel", feminine}, {"qualle", feminine}, {"moewe", feminine},
	{"spinne", feminine}, {"forelle", feminine}, {"lerche", feminine},

	{"pferd", neuter}, {"schaf", neuter}, {"reh", neuter},
	{"zebra", neuter}, {"kamel", neuter}, {"nashorn", neuter},
	{"eichhoernchen", neuter}, {"kaninchen", neuter}, {"krokodil", neuter},
	{"faultier", neuter}, {"erdmaennchen", neuter}, {"schwein", neuter},
	{"lama", neuter}, {"kueken", neuter}, {"murmeltier", neuter},
	{"walross", neuter}, {"stinktier", neuter}, {"kaenguru", neuter},
	{"nilpferd", neuter}, {"gnu", neuter}, {"huhn", neuter},
	{"pony", neuter}, {"wiesel", neuter}, {"chamaeleon", neuter},

	{"baeren", plural}, {"affen", plural}, {"delfine", plural},
	{"hasen", plural}, {"lemminge", plural}, {"kraniche", plural},
	{"moewen", plural}, {"spatzen", plural}, {"fuechse", plural},
	{"pinguine", plural}, {"ameisen", plural}, {"woelfe", plural},
}
