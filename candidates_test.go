package sdprompt

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractCandidates(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "commas and newlines",
			raw:  "sad, crying, melancholy\nsorrow",
			want: []string{"sad", "crying", "melancholy", "sorrow"},
		},
		{
			name: "list markers and quotes",
			raw:  "1. \"cute\"\n2) portrait\n- soft_lighting\n* 1girl",
			want: []string{"cute", "portrait", "soft_lighting", "1girl"},
		},
		{
			name: "english markers are dropped",
			raw:  "Keyword: 頭\nExample:\nhead, face",
			want: []string{"head", "face"},
		},
		{
			name: "echoed example tags after an arrow are dropped",
			raw:  "可愛い子 → cute, portrait, photorealistic, detailed, soft_lighting\nsad, tears",
			want: []string{"可愛い子", "sad", "tears"},
		},
		{
			name: "arrow-only lines leave nothing",
			raw:  "→ cute, 1girl\n悲しい→sad\nsorrow",
			want: []string{"悲しい", "sorrow"},
		},
		{
			name: "japanese markers are dropped",
			raw:  "キーワード: 悲しい\n例:\nsad, tears",
			want: []string{"sad", "tears"},
		},
		{
			name: "duplicates removed case-insensitively",
			raw:  "cute, 1girl, masterpiece\nCute, 1girl, smile",
			want: []string{"cute", "1girl", "masterpiece", "smile"},
		},
		{
			name: "blank lines and whitespace",
			raw:  "\n\n  sad  ,, \n\t crying \n",
			want: []string{"sad", "crying"},
		},
		{
			name: "nothing usable",
			raw:  "  \n , \nExample only",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCandidates(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractCandidates() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractCandidates_Cap(t *testing.T) {
	var parts []string
	for i := 0; i < 15; i++ {
		parts = append(parts, "tag"+strings.Repeat("x", i))
	}

	got := ExtractCandidates(strings.Join(parts, ", "))
	if len(got) != MaxCandidates {
		t.Fatalf("expected %d candidates, got %d", MaxCandidates, len(got))
	}
	if got[0] != "tag" {
		t.Errorf("expected vendor order to be kept, got first %q", got[0])
	}
}

func TestBuildInstruction(t *testing.T) {
	sd15, err := BuildInstruction("悲しい", StyleSD15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sd15, "「悲しい」") || !strings.Contains(sd15, "SD 1.5") {
		t.Errorf("sd15 instruction missing keyword or style wording: %s", sd15)
	}

	ill, err := BuildInstruction("悲しい", StyleIllustrious)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(ill, "1girl") || ill == sd15 {
		t.Errorf("illustrious instruction should differ from sd15: %s", ill)
	}

	def, err := BuildInstruction("悲しい", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def != sd15 {
		t.Error("empty style should render the sd15 template")
	}

	if _, err := BuildInstruction("悲しい", "sdxl"); err == nil {
		t.Error("expected error for unknown style")
	}
	if _, err := BuildInstruction("  ", StyleSD15); err == nil {
		t.Error("expected error for empty keyword")
	}
}
