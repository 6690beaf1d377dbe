package palette

import "testing"

func TestExport(t *testing.T) {
	records := []Record{
		{Index: 1, Color: "#00ff00", Label: "Green"},
		{Index: 0, Color: "#ff0000", Label: "Red"},
		{Index: 2, Color: "#0000ff", Label: ""},
	}
	want := "#00ff00\tGreen\n#ff0000\tRed\n#0000ff\t"
	if got := Export(records); got != want {
		t.Errorf("Export() = %q, want %q", got, want)
	}
}

func TestExportEmpty(t *testing.T) {
	if got := Export(nil); got != "" {
		t.Errorf("Export(nil) = %q, want empty", got)
	}
}

func TestExportRoundTrip(t *testing.T) {
	inputs := []string{
		"#ff0000\tRed\n#00ff00\tGreen\n#0000ff\tBlue",
		"#eb6f92\tlove\n#31748f\tpine",
		"#000000\tLabel with spaces, and commas",
	}
	for _, in := range inputs {
		if got := Export(Parse(in)); got != in {
			t.Errorf("Export(Parse(%q)) = %q", in, got)
		}
	}
}
