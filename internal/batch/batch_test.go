package batch

import (
	"reflect"
	"testing"

	"github.com/talmon-lab/ristab/internal/row"
)

const sampleRIS = `T1 - Gut Microbiome Dynamics in Preterm Infants
Y1 - 2021
JF - Journal of Microbial Ecology
KW - microbiome
KW - preterm
A1 - Tanaka, Yuki
A1 - Okafor, Chidi
AD - Yuki Tanaka, y.tanaka@univ.ac.jp
ER - 
T1 - Soil Carbon Flux Under No-Till Agriculture
Y1 - 2019
JO - Agric Ecosyst Environ
A1 - Mueller, Hans
N1 - reprints via h.mueller@agrar.de
ER - 
`

func TestProcessEndToEnd(t *testing.T) {
	files := []File{{Name: "refs.ris", Data: []byte(sampleRIS)}}

	res, err := Process(files, PolicyExact)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	want := []row.Row{
		{
			Title:               "Gut Microbiome Dynamics in Preterm Infants",
			Year:                "2021",
			Journal:             "Journal of Microbial Ecology",
			CorrespondingAuthor: "Yuki Tanaka",
			Email:               "y.tanaka@univ.ac.jp",
			Authors:             "Tanaka, Yuki; Okafor, Chidi",
			Keywords:            "microbiome; preterm",
			SourceFile:          "refs.ris",
		},
		{
			Title:               "Soil Carbon Flux Under No-Till Agriculture",
			Year:                "2019",
			Journal:             "Agric Ecosyst Environ",
			CorrespondingAuthor: "Mueller, Hans",
			Email:               "h.mueller@agrar.de",
			Authors:             "Mueller, Hans",
			Keywords:            "",
			SourceFile:          "refs.ris",
		},
	}

	if !reflect.DeepEqual(res.Rows, want) {
		t.Errorf("rows mismatch:\ngot  %+v\nwant %+v", res.Rows, want)
	}
	if len(res.Skipped) != 0 {
		t.Errorf("expected no skipped files, got %v", res.Skipped)
	}
}

func TestProcessSkipsEmptyFiles(t *testing.T) {
	files := []File{
		{Name: "empty.ris", Data: nil},
		{Name: "blank.ris", Data: []byte("  \n\t")},
		{Name: "refs.ris", Data: []byte(sampleRIS)},
	}

	res, err := Process(files, PolicyExact)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if len(res.Rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(res.Rows))
	}
	wantSkipped := []string{"empty.ris", "blank.ris"}
	if !reflect.DeepEqual(res.Skipped, wantSkipped) {
		t.Errorf("skipped = %v, want %v", res.Skipped, wantSkipped)
	}
}

func TestProcessSameFileTwiceIsIdempotent(t *testing.T) {
	f := File{Name: "refs.ris", Data: []byte(sampleRIS)}

	for _, policy := range []Policy{PolicyExact, PolicyTitleEmail} {
		res, err := Process([]File{f, f}, policy)
		if err != nil {
			t.Fatalf("Process with policy %s failed: %v", policy, err)
		}
		if len(res.Rows) != 2 {
			t.Errorf("policy %s: expected 2 rows after dedup, got %d", policy, len(res.Rows))
		}
	}
}

func TestProcessRejectsUnknownPolicy(t *testing.T) {
	_, err := Process(nil, Policy("fuzzy"))
	if err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestProcessDropsEntriesWithoutTitleOrEmail(t *testing.T) {
	data := []byte(`A1 - Headless, Entry
AD - Jane Doe, jane@uni.edu
ER - 
T1 - Title Without Any Contact
A1 - Lonely, Author
ER - 
`)

	res, err := Process([]File{{Name: "partial.ris", Data: data}}, PolicyExact)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(res.Rows) != 0 {
		t.Errorf("expected no rows, got %+v", res.Rows)
	}
}

func TestProcessMultipleEmailsSortedOrder(t *testing.T) {
	data := []byte(`T1 - Shared Correspondence
A1 - First, Author
AD - Zoe Young, zoe@lab.org; Abe Adams, abe@lab.org
ER - 
`)

	res, err := Process([]File{{Name: "multi.ris", Data: data}}, PolicyExact)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}
	if res.Rows[0].Email != "abe@lab.org" || res.Rows[1].Email != "zoe@lab.org" {
		t.Errorf("emails not in sorted order: %s, %s", res.Rows[0].Email, res.Rows[1].Email)
	}
	if res.Rows[0].CorrespondingAuthor != "Abe Adams" {
		t.Errorf("wrong author for abe@lab.org: %s", res.Rows[0].CorrespondingAuthor)
	}
	if res.Rows[1].CorrespondingAuthor != "Zoe Young" {
		t.Errorf("wrong author for zoe@lab.org: %s", res.Rows[1].CorrespondingAuthor)
	}
}

func TestProcessSourceFilePerFile(t *testing.T) {
	a := []byte("T1 - From A\nAD - Ann Author, ann@a.org\nER - \n")
	b := []byte("T1 - From B\nAD - Ben Writer, ben@b.org\nER - \n")

	res, err := Process([]File{
		{Name: "a.ris", Data: a},
		{Name: "b.ris", Data: b},
	}, PolicyExact)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}
	if res.Rows[0].SourceFile != "a.ris" || res.Rows[1].SourceFile != "b.ris" {
		t.Errorf("source files = %s, %s", res.Rows[0].SourceFile, res.Rows[1].SourceFile)
	}
}
