package table

import (
	"errors"
	"testing"
)

func TestLoadCommaDelimited(t *testing.T) {
	tbl, err := Load("date,height,weight\n2020-01-01,100,16\n2020-07-01,103,17\n")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := len(tbl.Columns), 3; got != want {
		t.Fatalf("columns = %d, want %d", got, want)
	}
	if got, want := len(tbl.Rows), 2; got != want {
		t.Fatalf("rows = %d, want %d", got, want)
	}
	if got := tbl.Rows[1]["height"]; got != "103" {
		t.Fatalf("rows[1][height] = %q, want 103", got)
	}
}

func TestLoadTabWinsOverComma(t *testing.T) {
	// A tab anywhere selects TSV, even when commas are present in cells.
	text := "date\theight\n2020-01-01\t100,5\n"
	tbl, err := Load(text)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := tbl.Rows[0]["height"]; got != "100,5" {
		t.Fatalf("height cell = %q, want %q", got, "100,5")
	}
}

func TestLoadTSVNoQuoting(t *testing.T) {
	// Quotes are literal text in tab mode.
	tbl, err := Load("name\tage\n\"Ada\"\t2.5\n")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := tbl.Rows[0]["name"]; got != `"Ada"` {
		t.Fatalf("name cell = %q, want literal quotes", got)
	}
}

func TestLoadCSVQuoting(t *testing.T) {
	tbl, err := Load("name,age\n\"Lovelace, Ada\",2.5\n")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := tbl.Rows[0]["name"]; got != "Lovelace, Ada" {
		t.Fatalf("name cell = %q, want unquoted with comma", got)
	}
}

func TestLoadShortRowPadsEmpty(t *testing.T) {
	tbl, err := Load("age,height,weight\n2.5,100\n")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := tbl.Rows[0]["weight"]; got != "" {
		t.Fatalf("weight cell = %q, want empty", got)
	}
}

func TestLoadEmptyTable(t *testing.T) {
	for _, text := range []string{"", "age,height\n", "age\theight\n"} {
		if _, err := Load(text); !errors.Is(err, ErrEmptyTable) {
			t.Fatalf("Load(%q) err = %v, want ErrEmptyTable", text, err)
		}
	}
}
