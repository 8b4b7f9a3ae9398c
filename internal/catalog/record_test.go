package catalog

import "testing"

func TestRecordPresence(t *testing.T) {
	var rec Record
	for _, k := range AllKeys {
		if rec.Has(k) {
			t.Fatalf("zero record should not have %s", k)
		}
	}
	rec.SetRating("0000.00005", 69, 7.8)
	for _, k := range []Key{KeyVoteDistribution, KeyVotes, KeyRating} {
		if !rec.Has(k) {
			t.Errorf("expected %s after SetRating", k)
		}
	}
	rec.SetBudget(0)
	if !rec.Has(KeyBudget) {
		t.Fatal("zero budget is still a value")
	}
}

func TestRecordAddGenreDeduplicates(t *testing.T) {
	var rec Record
	if !rec.AddGenre("Comedy") {
		t.Fatal("first genre should be added")
	}
	if rec.AddGenre("Comedy") {
		t.Fatal("repeat genre should be ignored")
	}
	rec.AddGenre("Animation")
	if got := rec.Genres(); len(got) != 2 || got[0] != "Comedy" || got[1] != "Animation" {
		t.Fatalf("genres = %v", got)
	}
	if !rec.HasGenre("Animation") || rec.HasGenre("Drama") {
		t.Fatal("HasGenre mismatch")
	}
}

func TestRecordValue(t *testing.T) {
	var rec Record
	rec.SetYear(YearUnknown)
	rec.SetLength(10 + 30.0/60)
	rec.SetRating("..........", 12, 6.5)
	rec.AddDirector("Lee, Ang")
	rec.AddDirector("Doe, John")

	tests := []struct {
		key  Key
		want string
	}{
		{KeyYear, "-1"},
		{KeyLength, "10.5"},
		{KeyRating, "6.5"},
		{KeyVotes, "12"},
		{KeyDirector, "Lee, Ang, Doe, John"},
	}
	for _, tt := range tests {
		got, ok := rec.Value(tt.key)
		if !ok || got != tt.want {
			t.Errorf("Value(%s) = %q, %v; want %q", tt.key, got, ok, tt.want)
		}
	}
	if _, ok := rec.Value(KeyCountry); ok {
		t.Fatal("unset key should report absent")
	}
}

func TestParseKey(t *testing.T) {
	key, err := ParseKey(" MPAA_Reason ")
	if err != nil || key != KeyMPAAReason {
		t.Fatalf("ParseKey = %q, %v", key, err)
	}
	if _, err := ParseKey("box_office"); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !KeyBudget.Numeric() || KeyCountry.Numeric() {
		t.Fatal("Numeric classification mismatch")
	}
}

func TestCounterSorted(t *testing.T) {
	var c Counter
	for _, label := range []string{"Drama", "Comedy", "Drama", "Action", "Comedy", "Drama"} {
		c.Add(label)
	}
	sorted := c.Sorted()
	if sorted[0].Label != "Drama" || sorted[0].Count != 3 {
		t.Fatalf("top entry = %+v", sorted[0])
	}
	if sorted[1].Label != "Comedy" || sorted[2].Label != "Action" {
		t.Fatalf("unexpected order: %+v", sorted)
	}
	if labels := c.Labels(); labels[0] != "Drama" || labels[2] != "Action" {
		t.Fatalf("first-seen order = %v", labels)
	}
}
