package sheets

import "testing"

func TestConvertDriveURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"file share link",
			"https://drive.google.com/file/d/1a2B3c_D-4e/view?usp=sharing",
			"https://drive.google.com/uc?export=view&id=1a2B3c_D-4e",
		},
		{
			"open link with id param",
			"https://drive.google.com/open?id=xYz123",
			"https://drive.google.com/uc?export=view&id=xYz123",
		},
		{
			"uc link normalized",
			"https://drive.google.com/uc?id=abc&export=download",
			"https://drive.google.com/uc?export=view&id=abc",
		},
		{
			"non-drive url passes through",
			"https://images.example.com/medina.jpg",
			"https://images.example.com/medina.jpg",
		},
		{"empty stays empty", "", ""},
		{"whitespace only", "   ", ""},
		{
			"drive url without id passes through",
			"https://drive.google.com/drive/folders/abc",
			"https://drive.google.com/drive/folders/abc",
		},
	}
	for _, tt := range tests {
		if got := ConvertDriveURL(tt.input); got != tt.want {
			t.Errorf("%s: ConvertDriveURL(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
		}
	}
}
