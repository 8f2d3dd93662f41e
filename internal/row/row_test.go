package row

import "testing"

func TestExactKeyDistinguishesEveryField(t *testing.T) {
	base := Row{Title: "T", Year: "2020", Email: "a@x.org"}

	variants := []Row{
		{Title: "T2", Year: "2020", Email: "a@x.org"},
		{Title: "T", Year: "2021", Email: "a@x.org"},
		{Title: "T", Year: "2020", Email: "b@x.org"},
		{Title: "T", Year: "2020", Email: "a@x.org", SourceFile: "f.ris"},
	}

	for i, v := range variants {
		if v.ExactKey() == base.ExactKey() {
			t.Errorf("variant %d should have a distinct exact key", i)
		}
	}

	same := Row{Title: "T", Year: "2020", Email: "a@x.org"}
	if same.ExactKey() != base.ExactKey() {
		t.Error("identical rows should share an exact key")
	}
}

func TestTitleEmailKeyIgnoresOtherFields(t *testing.T) {
	a := Row{Title: "T", Email: "a@x.org", Year: "2020", SourceFile: "one.ris"}
	b := Row{Title: "T", Email: "a@x.org", Year: "2021", SourceFile: "two.ris"}

	if a.TitleEmailKey() != b.TitleEmailKey() {
		t.Error("rows sharing title and email should share a key")
	}

	c := Row{Title: "T", Email: "b@x.org"}
	if a.TitleEmailKey() == c.TitleEmailKey() {
		t.Error("different emails should produce different keys")
	}
}

func TestJoin(t *testing.T) {
	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q, want empty", got)
	}
	if got := Join([]string{"a"}); got != "a" {
		t.Errorf("Join single = %q", got)
	}
	if got := Join([]string{"a", "b"}); got != "a; b" {
		t.Errorf("Join pair = %q", got)
	}
}
