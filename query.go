package fehwiki

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Stat identifiers. BST is the base stat total.
const (
	StatHP  = "HP"
	StatATK = "ATK"
	StatSPD = "SPD"
	StatDEF = "DEF"
	StatRES = "RES"
	StatBST = "BST"
)

// Non-stat sort fields.
const (
	FieldName     = "Name"
	FieldColour   = "Colour"
	FieldWeapon   = "Weapon"
	FieldMovement = "Movement"
)

// Stats lists the stat identifiers usable in thresholds and compound keys.
var Stats = []string{StatHP, StatATK, StatSPD, StatDEF, StatRES, StatBST}

// Accepted filter values by bucket.
var (
	Colours   = []string{"Red", "Blue", "Green", "Colorless"}
	Weapons   = []string{"Sword", "Lance", "Axe", "Bow", "Staff", "Dagger", "Breath", "Tome"}
	Movements = []string{"Infantry", "Cavalry", "Armored", "Flying"}
)

// sortFields lists every scalar accepted as a sort key.
var sortFields = append(slices.Clone(Stats), FieldName, FieldColour, FieldWeapon, FieldMovement)

// tokenAliases maps title-cased shorthand to canonical tokens.
var tokenAliases = map[string]string{
	"R": "Red", "Re": "Red",
	"B": "Blue", "Bl": "Blue",
	"G": "Green", "Gr": "Green",
	"C": "Colorless", "Colourless": "Colorless", "Colorless": "Colorless", "Ne": "Colorless", "N": "Colorless",
	"Sw": "Sword",
	"La": "Lance",
	"Ax": "Axe",
	"Bo": "Bow",
	"St": "Staff", "Stave": "Staff",
	"Br": "Breath", "Dragon": "Breath",
	"Da": "Dagger", "Knife": "Dagger", "Knive": "Dagger", "Kn": "Dagger",
	"To": "Tome",
	"In": "Infantry",
	"Ca": "Cavalry", "Mo": "Cavalry", "Mounted": "Cavalry", "Horse": "Cavalry", "Cav": "Cavalry", "Cavalier": "Cavalry",
	"Ar": "Armored", "Armoured": "Armored", "Knight": "Armored", "Armour": "Armored", "Armor": "Armored",
	"Fl": "Flying", "Flier": "Flying",
	"Hp": StatHP, "Atk": StatATK, "Spd": StatSPD, "Def": StatDEF, "Res": StatRES, "Bst": StatBST,
	"Attack": StatATK, "Speed": StatSPD, "Defense": StatDEF, "Resistance": StatRES,
	"Total": StatBST, "Stat": StatBST,
	"Na": FieldName, "Co": FieldColour, "We": FieldWeapon, "Mov": FieldMovement,
}

// Comparator is a threshold comparison operator.
type Comparator string

// Comparators.
const (
	GreaterThan    Comparator = ">"
	GreaterOrEqual Comparator = ">="
	LessThan       Comparator = "<"
	LessOrEqual    Comparator = "<="
	Equal          Comparator = "="
	NotEqual       Comparator = "!="
)

// comparatorSyntax lists operator spellings longest first; "==" is read as "=".
var comparatorSyntax = []struct {
	text string
	op   Comparator
}{
	{">=", GreaterOrEqual},
	{"<=", LessOrEqual},
	{"!=", NotEqual},
	{"==", Equal},
	{">", GreaterThan},
	{"<", LessThan},
	{"=", Equal},
}

// Compare applies the comparator to a and b.
func (c Comparator) Compare(a, b int) bool {
	switch c {
	case GreaterThan:
		return a > b
	case GreaterOrEqual:
		return a >= b
	case LessThan:
		return a < b
	case LessOrEqual:
		return a <= b
	case Equal:
		return a == b
	case NotEqual:
		return a != b
	}
	return false
}

// SortKey is a single field, or the sum of two or more stats.
type SortKey struct {
	Fields []string
}

// Key returns a SortKey over the given fields.
func Key(fields ...string) SortKey {
	return SortKey{Fields: fields}
}

// Compound reports whether the key sums several stats.
func (k SortKey) Compound() bool {
	return len(k.Fields) > 1
}

// String returns the token form of the key, e.g. "HP+ATK".
func (k SortKey) String() string {
	return strings.Join(k.Fields, "+")
}

// Threshold is a (comparator, field, number) filter predicate.
type Threshold struct {
	Comparator Comparator
	Field      SortKey
	Value      int
}

// String returns the token form of the threshold, e.g. "ATK>40".
func (t Threshold) String() string {
	return t.Field.String() + string(t.Comparator) + strconv.Itoa(t.Value)
}

// FilterCriteria groups accepted filter values by bucket.
type FilterCriteria struct {
	Colour    []string
	Weapon    []string
	Movement  []string
	Threshold []Threshold
}

// Empty reports whether no criteria are set.
func (c *FilterCriteria) Empty() bool {
	return len(c.Colour) == 0 && len(c.Weapon) == 0 && len(c.Movement) == 0 && len(c.Threshold) == 0
}

// Tokens returns the canonical token form of the criteria.
func (c *FilterCriteria) Tokens() []string {
	var tokens []string
	tokens = append(tokens, c.Colour...)
	tokens = append(tokens, c.Weapon...)
	tokens = append(tokens, c.Movement...)
	for _, t := range c.Threshold {
		tokens = append(tokens, t.String())
	}
	return tokens
}

// QueryMode selects how a token list is interpreted.
type QueryMode int

// Query modes.
const (
	FilterMode QueryMode = iota
	SortMode
)

// Query is the typed result of normalizing a token list. Exactly one of
// Filter or Sort is set, according to Mode.
type Query struct {
	Mode   QueryMode
	Filter *FilterCriteria
	Sort   []SortKey
}

// NormalizeTokens canonicalizes raw tokens into filter criteria or sort
// keys. Any unrecognized token rejects the whole list with EINVALID.
func NormalizeTokens(tokens []string, mode QueryMode) (*Query, error) {
	switch mode {
	case FilterMode:
		c, err := NormalizeFilter(tokens)
		if err != nil {
			return nil, err
		}
		return &Query{Mode: mode, Filter: c}, nil
	case SortMode:
		keys, err := NormalizeSort(tokens)
		if err != nil {
			return nil, err
		}
		return &Query{Mode: mode, Sort: keys}, nil
	}
	return nil, Errorf(EINVALID, "unknown query mode %d", mode)
}

// NormalizeFilter canonicalizes filter tokens such as "red", "swords" or
// "atk>40".
func NormalizeFilter(tokens []string) (*FilterCriteria, error) {
	c := &FilterCriteria{}
	for _, raw := range tokens {
		tok, err := canonicalToken(raw)
		if err != nil {
			return nil, err
		}
		switch {
		case tok.threshold != nil:
			c.Threshold = append(c.Threshold, *tok.threshold)
		case tok.fields != nil:
			return nil, Errorf(EINVALID, "%q is not a filter; compare it with a number, e.g. %s>100", raw, Key(tok.fields...))
		case slices.Contains(Colours, tok.scalar):
			c.Colour = append(c.Colour, tok.scalar)
		case slices.Contains(Weapons, tok.scalar):
			c.Weapon = append(c.Weapon, tok.scalar)
		case slices.Contains(Movements, tok.scalar):
			c.Movement = append(c.Movement, tok.scalar)
		default:
			return nil, Errorf(EINVALID, "unknown filter %q", raw)
		}
	}
	return c, nil
}

// NormalizeSort canonicalizes sort tokens such as "spd" or "hp+atk".
func NormalizeSort(tokens []string) ([]SortKey, error) {
	keys := make([]SortKey, 0, len(tokens))
	for _, raw := range tokens {
		tok, err := canonicalToken(raw)
		if err != nil {
			return nil, err
		}
		switch {
		case tok.threshold != nil:
			return nil, Errorf(EINVALID, "%q is a filter, not a sort key", raw)
		case tok.fields != nil:
			keys = append(keys, Key(tok.fields...))
		case slices.Contains(sortFields, tok.scalar):
			keys = append(keys, Key(tok.scalar))
		default:
			return nil, Errorf(EINVALID, "unknown sort key %q", raw)
		}
	}
	return keys, nil
}

// token is one canonicalized input token. Exactly one form is set.
type token struct {
	scalar    string
	fields    []string
	threshold *Threshold
}

func canonicalToken(raw string) (token, error) {
	s := canonicalWord(raw)
	if s == "" {
		return token{}, Errorf(EINVALID, "empty token")
	}

	for _, c := range comparatorSyntax {
		if !strings.Contains(s, c.text) {
			continue
		}
		t, err := parseThreshold(s, c.text, c.op)
		if err != nil {
			return token{}, Errorf(EINVALID, "invalid comparison %q: %s", raw, ErrorMessage(err))
		}
		return token{threshold: t}, nil
	}

	hasPlus, hasComma := strings.Contains(s, "+"), strings.Contains(s, ",")
	if hasPlus && hasComma {
		return token{}, Errorf(EINVALID, "invalid compound key %q: use either + or , between stats", raw)
	}
	if hasPlus || hasComma {
		sep := "+"
		if hasComma {
			sep = ","
		}
		fields, err := compoundFields(strings.Split(s, sep))
		if err != nil {
			return token{}, Errorf(EINVALID, "invalid compound key %q: %s", raw, ErrorMessage(err))
		}
		return token{fields: fields}, nil
	}

	return token{scalar: s}, nil
}

// canonicalWord title-cases s, strips a plural "s" and applies the alias table.
func canonicalWord(s string) string {
	s = titleCase(strings.TrimSpace(s))
	if s != "Colourless" && s != "Colorless" && !strings.HasSuffix(strings.ToLower(s), "res") {
		s = strings.TrimSuffix(s, "s")
	}
	if alias, ok := tokenAliases[s]; ok {
		return alias
	}
	return s
}

// titleCase upper-cases the first letter of every run of letters and
// lower-cases the rest, so "hp+atk" becomes "Hp+Atk".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if inWord {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			inWord = true
			continue
		}
		inWord = false
		b.WriteRune(r)
	}
	return b.String()
}

func parseThreshold(s, sep string, op Comparator) (*Threshold, error) {
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return nil, Errorf(EINVALID, "expected one %s", sep)
	}

	field, number := parts[0], parts[1]
	if strings.TrimSpace(field) == "" {
		// Number first, field after: ">40atk".
		i := strings.IndexFunc(number, func(r rune) bool { return !unicode.IsDigit(r) })
		if i <= 0 {
			return nil, Errorf(EINVALID, "missing field")
		}
		number, field = number[:i], number[i:]
	}

	n, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil {
		return nil, Errorf(EINVALID, "%q is not a number", number)
	}

	tok, err := canonicalToken(field)
	if err != nil {
		return nil, err
	}
	switch {
	case tok.threshold != nil:
		return nil, Errorf(EINVALID, "nested comparison")
	case tok.fields != nil:
		return &Threshold{Comparator: op, Field: Key(tok.fields...), Value: n}, nil
	case !slices.Contains(Stats, tok.scalar):
		return nil, Errorf(EINVALID, "%q is not a stat", field)
	}
	return &Threshold{Comparator: op, Field: Key(tok.scalar), Value: n}, nil
}

func compoundFields(parts []string) ([]string, error) {
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, Errorf(EINVALID, "empty stat")
		}
		f := canonicalWord(p)
		if !slices.Contains(Stats, f) {
			return nil, Errorf(EINVALID, "%q is not a stat", p)
		}
		fields = append(fields, f)
	}
	return fields, nil
}
