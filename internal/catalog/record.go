package catalog

import (
	"strconv"
	"strings"
)

const (
	// YearUnknown marks a title whose year could not be parsed.
	YearUnknown = -1
	// LengthUnparsed marks a running-time entry that was seen but not understood.
	LengthUnparsed = -1.0
)

// Record is the attribute bag accumulated for one title. The zero value has
// no attributes.
type Record struct {
	present uint16

	year             int
	genres           []string
	voteDistribution string
	votes            int
	rating           float64
	budget           int64
	revenue          int64
	length           float64
	country          string
	language         string
	mpaa             string
	mpaaReason       string
	directors        []string
}

// Has reports whether k is set on the record.
func (r *Record) Has(k Key) bool {
	return r.present&k.bit() != 0
}

// Clear removes k from the record.
func (r *Record) Clear(k Key) {
	r.present &^= k.bit()
	switch k {
	case KeyGenre:
		r.genres = nil
	case KeyDirector:
		r.directors = nil
	case KeyVoteDistribution:
		r.voteDistribution = ""
	case KeyCountry:
		r.country = ""
	case KeyLanguage:
		r.language = ""
	case KeyMPAA:
		r.mpaa = ""
	case KeyMPAAReason:
		r.mpaaReason = ""
	}
}

func (r *Record) mark(k Key) {
	r.present |= k.bit()
}

func (r *Record) Year() int                { return r.year }
func (r *Record) Genres() []string         { return r.genres }
func (r *Record) VoteDistribution() string { return r.voteDistribution }
func (r *Record) Votes() int               { return r.votes }
func (r *Record) Rating() float64          { return r.rating }
func (r *Record) Budget() int64            { return r.budget }
func (r *Record) Revenue() int64           { return r.revenue }
func (r *Record) Length() float64          { return r.length }
func (r *Record) Country() string          { return r.country }
func (r *Record) Language() string         { return r.language }
func (r *Record) MPAA() string             { return r.mpaa }
func (r *Record) MPAAReason() string       { return r.mpaaReason }
func (r *Record) Directors() []string      { return r.directors }

// SetYear stores the release year (YearUnknown when not known).
func (r *Record) SetYear(year int) {
	r.year = year
	r.mark(KeyYear)
}

// SetRating replaces the vote distribution, vote count, and rating together.
func (r *Record) SetRating(distribution string, votes int, rating float64) {
	r.voteDistribution = distribution
	r.votes = votes
	r.rating = rating
	r.mark(KeyVoteDistribution)
	r.mark(KeyVotes)
	r.mark(KeyRating)
}

func (r *Record) SetBudget(amount int64) {
	r.budget = amount
	r.mark(KeyBudget)
}

func (r *Record) SetRevenue(amount int64) {
	r.revenue = amount
	r.mark(KeyRevenue)
}

// SetLength stores the running time in minutes, or LengthUnparsed.
func (r *Record) SetLength(minutes float64) {
	r.length = minutes
	r.mark(KeyLength)
}

func (r *Record) SetCountry(country string) {
	r.country = country
	r.mark(KeyCountry)
}

func (r *Record) SetLanguage(language string) {
	r.language = language
	r.mark(KeyLanguage)
}

func (r *Record) SetMPAA(rating string) {
	r.mpaa = rating
	r.mark(KeyMPAA)
}

func (r *Record) SetMPAAReason(reason string) {
	r.mpaaReason = reason
	r.mark(KeyMPAAReason)
}

// AddGenre appends genre unless the record already lists it.
func (r *Record) AddGenre(genre string) bool {
	var added bool
	r.genres, added = appendUnique(r.genres, genre)
	if added {
		r.mark(KeyGenre)
	}
	return added
}

// HasGenre reports whether the record lists genre.
func (r *Record) HasGenre(genre string) bool {
	for _, g := range r.genres {
		if g == genre {
			return true
		}
	}
	return false
}

// AddDirector appends name unless the record already lists it.
func (r *Record) AddDirector(name string) bool {
	var added bool
	r.directors, added = appendUnique(r.directors, name)
	if added {
		r.mark(KeyDirector)
	}
	return added
}

// Value renders k as export text. The second result is false when k is not
// set.
func (r *Record) Value(k Key) (string, bool) {
	if !r.Has(k) {
		return "", false
	}
	switch k {
	case KeyYear:
		return strconv.Itoa(r.year), true
	case KeyRating:
		return formatFloat(r.rating), true
	case KeyLength:
		return formatFloat(r.length), true
	case KeyVotes:
		return strconv.Itoa(r.votes), true
	case KeyVoteDistribution:
		return r.voteDistribution, true
	case KeyBudget:
		return strconv.FormatInt(r.budget, 10), true
	case KeyRevenue:
		return strconv.FormatInt(r.revenue, 10), true
	case KeyCountry:
		return r.country, true
	case KeyLanguage:
		return r.language, true
	case KeyMPAA:
		return r.mpaa, true
	case KeyMPAAReason:
		return r.mpaaReason, true
	case KeyGenre:
		return strings.Join(r.genres, ", "), true
	case KeyDirector:
		return strings.Join(r.directors, ", "), true
	default:
		return "", false
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func appendUnique(list []string, value string) ([]string, bool) {
	for _, existing := range list {
		if existing == value {
			return list, false
		}
	}
	return append(list, value), true
}
