package catalog

import (
	"fmt"
	"strings"
)

// Key names one attribute of a Record.
type Key string

const (
	KeyYear             Key = "year"
	KeyRating           Key = "rating"
	KeyLength           Key = "length"
	KeyVotes            Key = "votes"
	KeyVoteDistribution Key = "vote_distribution"
	KeyBudget           Key = "budget"
	KeyRevenue          Key = "revenue"
	KeyCountry          Key = "country"
	KeyLanguage         Key = "language"
	KeyMPAA             Key = "mpaa"
	KeyMPAAReason       Key = "mpaa_reason"
	KeyGenre            Key = "genre"
	KeyDirector         Key = "director"
)

// AllKeys lists every key in canonical column order.
var AllKeys = []Key{
	KeyYear,
	KeyRating,
	KeyLength,
	KeyVotes,
	KeyVoteDistribution,
	KeyBudget,
	KeyRevenue,
	KeyCountry,
	KeyLanguage,
	KeyMPAA,
	KeyMPAAReason,
	KeyGenre,
	KeyDirector,
}

// Numeric reports whether missing values of k are substituted with the
// numeric placeholder on export.
func (k Key) Numeric() bool {
	switch k {
	case KeyYear, KeyVotes, KeyRating, KeyBudget, KeyRevenue, KeyLength:
		return true
	default:
		return false
	}
}

// MultiValued reports whether k holds a list.
func (k Key) MultiValued() bool {
	return k == KeyGenre || k == KeyDirector
}

func (k Key) bit() uint16 {
	for i, key := range AllKeys {
		if key == k {
			return 1 << uint(i)
		}
	}
	return 0
}

// ParseKey resolves a key name, ignoring case and surrounding space.
func ParseKey(name string) (Key, error) {
	candidate := Key(strings.ToLower(strings.TrimSpace(name)))
	if candidate.bit() == 0 {
		return "", fmt.Errorf("unknown attribute %q", name)
	}
	return candidate, nil
}

// ParseKeys resolves a list of key names, stopping at the first unknown one.
func ParseKeys(names []string) ([]Key, error) {
	keys := make([]Key, 0, len(names))
	for _, name := range names {
		key, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
