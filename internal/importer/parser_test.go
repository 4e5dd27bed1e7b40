package importer

import (
	"reflect"
	"testing"

	"github.com/somi-im/somi/internal/domain"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Candidate
		wantOK bool
	}{
		{
			name:   "full line",
			line:   "example.com,2000,GoDaddy,sold",
			want:   Candidate{Name: "example.com", Price: "2000", Provider: "GoDaddy", Status: domain.StatusSold},
			wantOK: true,
		},
		{
			name:   "name only",
			line:   "example.com",
			want:   Candidate{Name: "example.com", Provider: "Manual", Status: domain.StatusAvailable},
			wantOK: true,
		},
		{
			name:   "full-width comma separator",
			line:   "example.com，2000，Aliyun，reserved",
			want:   Candidate{Name: "example.com", Price: "2000", Provider: "Aliyun", Status: domain.StatusReserved},
			wantOK: true,
		},
		{
			name:   "whitespace trimmed per field",
			line:   "  example.com , 2000 , GoDaddy , sold  ",
			want:   Candidate{Name: "example.com", Price: "2000", Provider: "GoDaddy", Status: domain.StatusSold},
			wantOK: true,
		},
		{
			name:   "unknown status coerced",
			line:   "example.com,2000,GoDaddy,pending",
			want:   Candidate{Name: "example.com", Price: "2000", Provider: "GoDaddy", Status: domain.StatusAvailable},
			wantOK: true,
		},
		{
			name:   "uppercase status normalized",
			line:   "example.com,,GoDaddy,SOLD",
			want:   Candidate{Name: "example.com", Provider: "GoDaddy", Status: domain.StatusSold},
			wantOK: true,
		},
		{
			name:   "empty provider defaults to Manual",
			line:   "example.com,2000,,sold",
			want:   Candidate{Name: "example.com", Price: "2000", Provider: "Manual", Status: domain.StatusSold},
			wantOK: true,
		},
		{
			name:   "extra fields ignored",
			line:   "example.com,2000,GoDaddy,sold,whatever,else",
			want:   Candidate{Name: "example.com", Price: "2000", Provider: "GoDaddy", Status: domain.StatusSold},
			wantOK: true,
		},
		{
			name:   "quoted comma still splits",
			line:   `"example.com, the best",2000`,
			want:   Candidate{Name: `"example.com`, Price: `the best"`, Provider: "2000", Status: domain.StatusAvailable},
			wantOK: true,
		},
		{name: "blank line", line: "", wantOK: false},
		{name: "whitespace only", line: "   \t  ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseText(t *testing.T) {
	text := "a.com,100\n\n  \nb.net,200,Namecheap,sold\nc.org"
	got := ParseText(text)
	if len(got) != 3 {
		t.Fatalf("ParseText() returned %d candidates, want 3", len(got))
	}
	if got[0].Name != "a.com" || got[1].Name != "b.net" || got[2].Name != "c.org" {
		t.Errorf("ParseText() order wrong: %+v", got)
	}
	if got[1].Status != domain.StatusSold {
		t.Errorf("ParseText() status = %q, want sold", got[1].Status)
	}
}

func TestParseFile(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantNames []string
	}{
		{
			name:      "header row skipped",
			data:      "Domain,Price,Provider,Status\na.com,100\nb.net,200",
			wantNames: []string{"a.com", "b.net"},
		},
		{
			name:      "no header kept",
			data:      "a.com,100\nb.net,200",
			wantNames: []string{"a.com", "b.net"},
		},
		{
			name:      "crlf line endings",
			data:      "domain,price\r\na.com,100\r\nb.net,200\r\n",
			wantNames: []string{"a.com", "b.net"},
		},
		{
			name:      "first data line containing domain is lost",
			data:      "mydomain.com,100\nb.net,200",
			wantNames: []string{"b.net"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFile([]byte(tt.data))
			if len(got) != len(tt.wantNames) {
				t.Fatalf("ParseFile() returned %d candidates, want %d: %+v", len(got), len(tt.wantNames), got)
			}
			for i, want := range tt.wantNames {
				if got[i].Name != want {
					t.Errorf("ParseFile()[%d].Name = %q, want %q", i, got[i].Name, want)
				}
			}
		})
	}
}
