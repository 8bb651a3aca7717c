// Package vocab holds the fixed present-tense conjugation table used by the quiz
package vocab

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"
)

// Class is a verb family identified by its infinitive suffix
type Class uint8

const (
	ClassAR Class = iota
	ClassER
)

// Suffix returns the two-letter infinitive ending of the class
func (c Class) Suffix() string {
	if c == ClassER {
		return "er"
	}
	return "ar"
}

// Pronoun is one of the six subject pronouns
type Pronoun uint8

const (
	Yo Pronoun = iota
	Tu
	ElElla
	Nosotros
	Vosotros
	EllosEllas
	pronounCount
)

var pronounNames = [pronounCount]string{"yo", "tú", "él/ella", "nosotros", "vosotros", "ellos/ellas"}

func (p Pronoun) String() string {
	if p >= pronounCount {
		return fmt.Sprintf("Pronoun(%d)", uint8(p))
	}
	return pronounNames[p]
}

// Pronouns returns all supported pronouns in table order
func Pronouns() []Pronoun {
	return []Pronoun{Yo, Tu, ElElla, Nosotros, Vosotros, EllosEllas}
}

// endings[class][pronoun]
var endings = [2][pronounCount]string{
	ClassAR: {"o", "as", "a", "amos", "áis", "an"},
	ClassER: {"o", "es", "e", "emos", "éis", "en"},
}

// DefaultVerbs is the built-in verb pool
var DefaultVerbs = []string{
	"hablar", "estudiar", "trabajar", "mirar", "viajar", "escuchar",
	"comer", "beber", "aprender", "correr", "vender", "leer",
}

// Sentinel errors
var (
	ErrEmptyVerb    = errors.New("empty verb")
	ErrUnknownClass = errors.New("verb does not end in a known class suffix")
	ErrNoVerbs      = errors.New("vocabulary has no verbs")
)

// Verb is a validated infinitive split into stem and class
type Verb struct {
	Infinitive string
	Stem       string
	Class      Class
}

// ParseVerb validates an infinitive and derives its stem and class
func ParseVerb(infinitive string) (Verb, error) {
	inf := strings.ToLower(strings.TrimSpace(infinitive))
	if inf == "" {
		return Verb{}, ErrEmptyVerb
	}

	for _, c := range []Class{ClassAR, ClassER} {
		suffix := c.Suffix()
		if strings.HasSuffix(inf, suffix) && len(inf) > len(suffix) {
			return Verb{Infinitive: inf, Stem: strings.TrimSuffix(inf, suffix), Class: c}, nil
		}
	}
	return Verb{}, fmt.Errorf("%q: %w", infinitive, ErrUnknownClass)
}

// Conjugate returns the present-tense form of v for pronoun p
func Conjugate(v Verb, p Pronoun) string {
	return v.Stem + endings[v.Class][p]
}

// Prompt is one quiz question with its accepted answer
type Prompt struct {
	Verb    Verb
	Pronoun Pronoun
	Answer  string
}

// Display renders the question as shown to the player
func (p Prompt) Display() string {
	return fmt.Sprintf("%s · %s (presente)", p.Verb.Infinitive, p.Pronoun)
}

// Table is an immutable verb pool
type Table struct {
	verbs []Verb
}

// NewTable validates every infinitive; all malformed entries are reported together
// Duplicate infinitives are collapsed
func NewTable(infinitives []string) (*Table, error) {
	var errs []error
	verbs := make([]Verb, 0, len(infinitives))
	for _, inf := range infinitives {
		v, err := ParseVerb(inf)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		verbs = append(verbs, v)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid vocabulary: %w", errors.Join(errs...))
	}
	if len(verbs) == 0 {
		return nil, ErrNoVerbs
	}

	return &Table{verbs: lo.UniqBy(verbs, func(v Verb) string { return v.Infinitive })}, nil
}

// MustDefault returns the built-in table, panicking if it is malformed
func MustDefault() *Table {
	t, err := NewTable(DefaultVerbs)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of verbs
func (t *Table) Len() int {
	return len(t.verbs)
}

// Verbs returns the infinitives in table order
func (t *Table) Verbs() []string {
	return lo.Map(t.verbs, func(v Verb, _ int) string { return v.Infinitive })
}

// Pick selects a verb and pronoun uniformly at random
func (t *Table) Pick(rng *rand.Rand) Prompt {
	v := t.verbs[rng.IntN(len(t.verbs))]
	p := Pronoun(rng.IntN(int(pronounCount)))
	return Prompt{Verb: v, Pronoun: p, Answer: Conjugate(v, p)}
}
