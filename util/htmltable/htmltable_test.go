package htmltable

import (
	"strings"
	"testing"
)

func TestFromCsv(t *testing.T) {
	testCases := []struct {
		name     string
		csv      string
		expected string
	}{
		{
			"empty input",
			"",
			"<table class=\"table table-bordered table-striped table-condensed\">\n</table>",
		},
		{
			"single row",
			"a,b\n",
			"<table class=\"table table-bordered table-striped table-condensed\">\n<tr><td>a</td>\n<td>b</td>\n</tr>\n</table>",
		},
		{
			"blank lines and rows of empty fields are skipped",
			"Course ID,CS101\n\n,,\n\nName,Email\n",
			"<table class=\"table table-bordered table-striped table-condensed\">\n" +
				"<tr><td>Course ID</td>\n<td>CS101</td>\n</tr>\n" +
				"<tr><td>Name</td>\n<td>Email</td>\n</tr>\n</table>",
		},
		{
			"quoted fields keep commas and quotes",
			"\"Doe, John\",\"say \"\"hi\"\"\"\n",
			"<table class=\"table table-bordered table-striped table-condensed\">\n<tr><td>Doe, John</td>\n<td>say &#34;hi&#34;</td>\n</tr>\n</table>",
		},
		{
			"cells are escaped",
			"<script>,a&b\n",
			"<table class=\"table table-bordered table-striped table-condensed\">\n<tr><td>&lt;script&gt;</td>\n<td>a&amp;b</td>\n</tr>\n</table>",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			table, err := FromCsv(testCase.csv)
			if err != nil {
				t.Fatal(err)
			}
			if table != testCase.expected {
				t.Fatalf("expected\n\n%s\n\nbut got\n\n%s", testCase.expected, table)
			}
		})
	}
}

func TestFromCsvVariableFieldCounts(t *testing.T) {
	table, err := FromCsv("a\nb,c,d\n")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(table, "<tr>") != 2 || strings.Count(table, "<td>") != 4 {
		t.Fatalf("unexpected table: %s", table)
	}
}
