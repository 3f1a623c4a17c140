package huffman

import (
	"errors"
	"strings"
	"testing"
)

func mustBuildTable(text string) *CodeTable {
	table, err := BuildTable(Count(text))
	if err != nil {
		panic(err)
	}
	return table
}

// makeTestText returns a text with frequencies a:5 b:9 c:12 d:13 e:16 f:45.
func makeTestText() string {
	return strings.Repeat("a", 5) +
		strings.Repeat("b", 9) +
		strings.Repeat("c", 12) +
		strings.Repeat("d", 13) +
		strings.Repeat("e", 16) +
		strings.Repeat("f", 45)
}

func TestBuildTree(t *testing.T) {
	tree, err := BuildTree(Count(makeTestText()))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if tree.NumLeaves() != 6 {
		t.Errorf("expected 6 leaves, got %d", tree.NumLeaves())
	}
	if tree.Weight() != 100 {
		t.Errorf("expected root weight 100, got %d", tree.Weight())
	}
}

func TestBuildTree_Empty(t *testing.T) {
	_, err := BuildTree(Count(""))
	var eae *EmptyAlphabetError
	if !errors.As(err, &eae) {
		t.Errorf("expected *EmptyAlphabetError, got %v", err)
	}
}

func TestDeriveTable(t *testing.T) {
	table := mustBuildTable(makeTestText())

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tDecode(\"0\") = 'f'\n",
		"\tDecode(\"100\") = 'c'\n",
		"\tDecode(\"101\") = 'd'\n",
		"\tDecode(\"111\") = 'e'\n",
		"\tDecode(\"1100\") = 'a'\n",
		"\tDecode(\"1101\") = 'b'\n",
		"}\n",
	}, "")
	actualDump := table.DebugString()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	expectString := "(Huffman code table with 6 symbols, with coded lengths of 1 .. 4 bits)"
	if actual := table.String(); expectString != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actual)
	}
}

func TestDeriveTable_TieBreak(t *testing.T) {
	type testRow struct {
		text   string
		expect map[Symbol]Code
	}

	testData := [...]testRow{
		{
			text:   "aaabbc",
			expect: map[Symbol]Code{'a': "0", 'c': "10", 'b': "11"},
		},
		{
			text:   "abcd",
			expect: map[Symbol]Code{'a': "00", 'b': "01", 'c': "10", 'd': "11"},
		},
		{
			text:   "dcba",
			expect: map[Symbol]Code{'d': "00", 'c': "01", 'b': "10", 'a': "11"},
		},
		{
			text:   "aaaa",
			expect: map[Symbol]Code{'a': "0"},
		},
	}
	for _, row := range testData {
		t.Run(row.text, func(t *testing.T) {
			table := mustBuildTable(row.text)
			if table.Len() != len(row.expect) {
				t.Errorf("expected %d codes, got %d", len(row.expect), table.Len())
			}
			for sym, expectCode := range row.expect {
				actualCode, found := table.Encode(sym)
				if !found {
					t.Errorf("no code for %s", sym)
					continue
				}
				if expectCode != actualCode {
					t.Errorf("Encode(%s): expected %s, got %s", sym, expectCode, actualCode)
				}
				if back, _ := table.Decode(actualCode); back != sym {
					t.Errorf("Decode(%s): expected %s, got %s", actualCode, sym, back)
				}
			}
		})
	}
}

func TestDeriveTable_PrefixFree(t *testing.T) {
	texts := [...]string{
		"aaabbc",
		makeTestText(),
		"the quick brown fox jumps over the lazy dog",
		"Ünïcödé ✓ текст 日本語",
	}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			table := mustBuildTable(text)
			codes := make([]Code, 0, table.Len())
			for _, hc := range table.forward {
				codes = append(codes, hc)
			}
			for i, a := range codes {
				if a.Size() == 0 {
					t.Errorf("empty code")
				}
				for j, b := range codes {
					if i != j && b.HasPrefix(a) {
						t.Errorf("code %s is a prefix of %s", a, b)
					}
				}
			}
			for sym, hc := range table.forward {
				if back, found := table.Decode(hc); !found || back != sym {
					t.Errorf("reverse mapping of %s: expected %s, got %s", hc, sym, back)
				}
			}
		})
	}
}

func TestDeriveTable_ZeroCountSymbols(t *testing.T) {
	ft := Count("aaabbc")
	ft.ExtendWithMissing("xyz")
	table, err := BuildTable(ft)
	if err != nil {
		t.Fatalf("BuildTable failed: %v", err)
	}

	expect := map[Symbol]Code{
		'a': "0",
		'b': "11",
		'c': "101",
		'z': "1000",
		'x': "10010",
		'y': "10011",
	}
	for sym, expectCode := range expect {
		if actual, _ := table.Encode(sym); expectCode != actual {
			t.Errorf("Encode(%s): expected %s, got %s", sym, expectCode, actual)
		}
	}
}

func TestBuildTable_Empty(t *testing.T) {
	table, err := BuildTable(Count(""))
	if err != nil {
		t.Fatalf("BuildTable failed: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("expected empty table, got %d codes", table.Len())
	}
	if expect, actual := "(Huffman code table with 0 symbols)", table.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestCodeTable_Equal(t *testing.T) {
	a := mustBuildTable("aaabbc")
	b := mustBuildTable("aaabbc")
	c := mustBuildTable("abbccc")

	if !a.Equal(b) || a.Fingerprint() != b.Fingerprint() {
		t.Errorf("tables built from identical text differ")
	}
	if a.Equal(c) {
		t.Errorf("tables built from different text compare equal")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Errorf("tables built from different text share fingerprint %#016x", a.Fingerprint())
	}
}
