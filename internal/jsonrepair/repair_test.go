package jsonrepair

import (
	"reflect"
	"testing"
)

type sample struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Features []string `json:"features"`
}

func TestExtractWellFormed(t *testing.T) {
	raw := `{"name":"Sepatu Lari","category":"Olahraga","features":["ringan","empuk"]}`
	got, outcome := Extract(raw, sample{Name: "fallback"})
	if outcome != OutcomeParsed {
		t.Fatalf("outcome = %d, want OutcomeParsed", outcome)
	}
	want := sample{Name: "Sepatu Lari", Category: "Olahraga", Features: []string{"ringan", "empuk"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %#v, want %#v", got, want)
	}
}

func TestExtractCodeFence(t *testing.T) {
	raw := "```json\n{\"name\":\"Tas Kulit\",\"category\":\"Fashion\"}\n```"
	got, outcome := Extract(raw, sample{})
	if outcome != OutcomeParsed {
		t.Fatalf("outcome = %d, want OutcomeParsed", outcome)
	}
	if got.Name != "Tas Kulit" || got.Category != "Fashion" {
		t.Fatalf("Extract() = %#v", got)
	}
}

func TestExtractSurroundingProse(t *testing.T) {
	raw := "Berikut hasilnya:\n{\"name\":\"Gelang\"}\nSemoga membantu."
	got, outcome := Extract(raw, sample{})
	if outcome != OutcomeParsed {
		t.Fatalf("outcome = %d, want OutcomeParsed", outcome)
	}
	if got.Name != "Gelang" {
		t.Fatalf("Name = %q, want %q", got.Name, "Gelang")
	}
}

func TestExtractRepairsTruncatedString(t *testing.T) {
	raw := `{"name":"Sepatu","features":["ringan","awet","nyam`
	got, outcome := Extract(raw, sample{})
	if outcome != OutcomeRepaired {
		t.Fatalf("outcome = %d, want OutcomeRepaired", outcome)
	}
	if got.Name != "Sepatu" {
		t.Fatalf("Name = %q, want %q", got.Name, "Sepatu")
	}
	want := []string{"ringan", "awet"}
	if !reflect.DeepEqual(got.Features, want) {
		t.Fatalf("Features = %#v, want %#v", got.Features, want)
	}
}

func TestExtractRepairsDanglingKey(t *testing.T) {
	raw := `{"name":"Sepatu","category":"Olahraga","features":["ringan"],"brand`
	got, outcome := Extract(raw, sample{})
	if outcome != OutcomeRepaired {
		t.Fatalf("outcome = %d, want OutcomeRepaired", outcome)
	}
	if got.Category != "Olahraga" || len(got.Features) != 1 {
		t.Fatalf("Extract() = %#v", got)
	}
}

func TestExtractRepairsUnbalancedBrackets(t *testing.T) {
	raw := `{"name":"Jam Tangan","features":["tahan air"`
	got, outcome := Extract(raw, sample{})
	if outcome != OutcomeRepaired {
		t.Fatalf("outcome = %d, want OutcomeRepaired", outcome)
	}
	if got.Name != "Jam Tangan" || !reflect.DeepEqual(got.Features, []string{"tahan air"}) {
		t.Fatalf("Extract() = %#v", got)
	}
}

func TestExtractFallback(t *testing.T) {
	fallback := sample{Name: "Produk", Category: "Item Fashion"}
	got, outcome := Extract("bukan json sama sekali", fallback)
	if outcome != OutcomeFallback {
		t.Fatalf("outcome = %d, want OutcomeFallback", outcome)
	}
	if !reflect.DeepEqual(got, fallback) {
		t.Fatalf("Extract() = %#v, want fallback %#v", got, fallback)
	}
}

func TestExtractEmptyInputFallsBack(t *testing.T) {
	fallback := sample{Name: "Produk"}
	got, outcome := Extract("   ", fallback)
	if outcome != OutcomeFallback {
		t.Fatalf("outcome = %d, want OutcomeFallback", outcome)
	}
	if got.Name != "Produk" {
		t.Fatalf("Name = %q, want %q", got.Name, "Produk")
	}
}

func TestRepairBalancesNestedStructures(t *testing.T) {
	got := Repair(`{"a":{"b":["x","y"`)
	want := `{"a":{"b":["x","y"]}}`
	if got != want {
		t.Fatalf("Repair() = %q, want %q", got, want)
	}
}

func TestRepairKeepsEscapedQuotes(t *testing.T) {
	raw := `{"a":"nilai \"khusus\"","b":"terpotong`
	got, outcome := Extract(raw, map[string]string{})
	if outcome != OutcomeRepaired {
		t.Fatalf("outcome = %d, want OutcomeRepaired", outcome)
	}
	if got["a"] != `nilai "khusus"` {
		t.Fatalf("a = %q", got["a"])
	}
}
