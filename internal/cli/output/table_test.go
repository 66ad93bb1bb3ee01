package output

import (
	"bytes"
	"strings"
	"testing"
)

type tableRow struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact_person_name" table:"wide"`
	Hidden  string `json:"internal" table:"-"`
}

func TestTableFormatterSlice(t *testing.T) {
	rows := []tableRow{
		{ID: 1, Name: "Acme", Contact: "Ravi", Hidden: "x"},
		{ID: 2, Name: "", Contact: "Mina", Hidden: "y"},
	}

	var buf bytes.Buffer
	f := &TableFormatter{}
	if err := f.Format(&buf, rows); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "ID") || !strings.Contains(out, "NAME") {
		t.Errorf("headers missing:\n%s", out)
	}
	if strings.Contains(out, "CONTACT_PERSON_NAME") {
		t.Errorf("wide column shown in narrow mode:\n%s", out)
	}
	if strings.Contains(out, "INTERNAL") || strings.Contains(out, "x") {
		t.Errorf("hidden column leaked:\n%s", out)
	}
	if !strings.Contains(out, "Acme") {
		t.Errorf("row data missing:\n%s", out)
	}
	// Empty strings render as a dash.
	if !strings.Contains(out, "-") {
		t.Errorf("empty cell not dashed:\n%s", out)
	}
}

func TestTableFormatterWide(t *testing.T) {
	rows := []tableRow{{ID: 1, Name: "Acme", Contact: "Ravi"}}

	var buf bytes.Buffer
	f := &TableFormatter{Wide: true}
	if err := f.Format(&buf, rows); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "CONTACT_PERSON_NAME") || !strings.Contains(out, "Ravi") {
		t.Errorf("wide column missing in wide mode:\n%s", out)
	}
}

func TestTableFormatterSingleStruct(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	if err := f.Format(&buf, tableRow{ID: 5, Name: "Solo"}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "FIELD") || !strings.Contains(out, "VALUE") {
		t.Errorf("field/value headers missing:\n%s", out)
	}
	if !strings.Contains(out, "Solo") {
		t.Errorf("value missing:\n%s", out)
	}
}

func TestTableFormatterNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{NoHeaders: true}
	if err := f.Format(&buf, []tableRow{{ID: 1, Name: "Acme"}}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if strings.Contains(buf.String(), "NAME") {
		t.Errorf("headers printed with NoHeaders:\n%s", buf.String())
	}
}

func TestTableFormatterEmptySlice(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	if err := f.Format(&buf, []tableRow{}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
}

func TestTableFormatterNilPointer(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	var row *tableRow
	if err := f.Format(&buf, row); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
}

func TestManualTable(t *testing.T) {
	tbl := &Table{Headers: []string{"A", "B"}}
	tbl.AddRow("1", "2")
	tbl.AddRow("3", "4")

	var buf bytes.Buffer
	if err := tbl.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
}
