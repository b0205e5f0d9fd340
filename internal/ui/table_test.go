package ui

import (
	"strings"
	"testing"
)

func TestTruncateTableCellCountsRunes(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth-1) + "é"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellNormalizesLineBreaks(t *testing.T) {
	value := "Hello\nWorld\r\nAgain\tTab"

	got := TruncateTableCell(value)

	if got != "Hello World Again Tab" {
		t.Fatalf("expected line breaks to normalize, got %q", got)
	}
}

func TestTruncateTableCellIgnoresANSICodes(t *testing.T) {
	value := "\x1b[1m\x1b[36m" + strings.Repeat("a", tableCellMaxWidth) + "\x1b[0m"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellAddsEllipsis(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth+10)

	got := TruncateTableCell(value)

	if DisplayWidth(got) != tableCellMaxWidth {
		t.Fatalf("expected width %d, got %d", tableCellMaxWidth, DisplayWidth(got))
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Fatalf("expected ellipsis, got %q", got)
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"ID", "NAME"}
	rows := [][]string{
		{"a", "first"},
		{"\x1b[1mbcd\x1b[0m", "second"},
	}

	got := StripANSI(FormatTable(headers, rows))

	expected := "ID   NAME\na    first\nbcd  second\n"
	if got != expected {
		t.Fatalf("expected aligned table, got %q", got)
	}
}

func TestFormatTableNormalizesLineBreaks(t *testing.T) {
	got := FormatTable([]string{"A", "B"}, [][]string{{"x\ny", "z"}})

	expected := "A    B\nx y  z\n"
	if got != expected {
		t.Fatalf("expected normalized table output, got %q", got)
	}
}

func TestTableBuilder(t *testing.T) {
	builder := NewTableBuilder([]string{"PRI", "NAME"}, 2)
	builder.AddRow([]string{"★★★", "wide"})
	builder.AddRow([]string{"★", "narrow"})

	got := builder.String()
	expected := "PRI  NAME\n★★★  wide\n★    narrow\n"
	if got != expected {
		t.Fatalf("unexpected table %q", got)
	}
}

func TestDisplayWidthWideRunes(t *testing.T) {
	if got := DisplayWidth("日本"); got != 4 {
		t.Fatalf("expected 4 cells, got %d", got)
	}
}

func TestTruncateName(t *testing.T) {
	if got := TruncateName("buy some milk", 8); got != "buy som…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := TruncateName("short", 8); got != "short" {
		t.Fatalf("short names should be unchanged, got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Fatalf("unexpected padding %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("long values should not be cut, got %q", got)
	}
}
