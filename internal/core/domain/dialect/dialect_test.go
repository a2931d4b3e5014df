package dialect

import (
	"testing"

	"github.com/AntonioJCosta/aliaser/internal/core/domain/alias"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{name: "zsh", input: "zsh", want: Zsh},
		{name: "bash", input: "bash", want: Bash},
		{name: "fish", input: "fish", want: Fish},
		{name: "mixed case", input: "Zsh", want: Zsh},
		{name: "surrounding whitespace", input: " bash ", want: Bash},
		{name: "unsupported shell", input: "tcsh", want: Unknown, wantErr: true},
		{name: "empty", input: "", want: Unknown, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKind_FormatLine(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		alias alias.Alias
		want  string
	}{
		{
			name:  "bash simple",
			kind:  Bash,
			alias: alias.Alias{Name: "test", Command: "echo 'hello'"},
			want:  `alias test="echo 'hello'"`,
		},
		{
			name:  "zsh same as bash",
			kind:  Zsh,
			alias: alias.Alias{Name: "test", Command: "echo 'hello'"},
			want:  `alias test="echo 'hello'"`,
		},
		{
			name:  "bash escapes double quotes",
			kind:  Bash,
			alias: alias.Alias{Name: "test", Command: `echo "quoted"`},
			want:  `alias test="echo \"quoted\""`,
		},
		{
			name:  "fish simple",
			kind:  Fish,
			alias: alias.Alias{Name: "gs", Command: "git status"},
			want:  `alias gs 'git status'`,
		},
		{
			name:  "fish escapes single quotes",
			kind:  Fish,
			alias: alias.Alias{Name: "test", Command: "echo 'hello'"},
			want:  `alias test 'echo \'hello\''`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.FormatLine(tt.alias); got != tt.want {
				t.Errorf("FormatLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKind_MatchLine(t *testing.T) {
	tests := []struct {
		name      string
		kind      Kind
		line      string
		wantAlias alias.Alias
		wantOK    bool
		wantErr   bool
	}{
		{
			name:      "zsh double quoted",
			kind:      Zsh,
			line:      `alias gs="git status"`,
			wantAlias: alias.Alias{Name: "gs", Command: "git status"},
			wantOK:    true,
		},
		{
			name:      "zsh escaped double quotes",
			kind:      Zsh,
			line:      `alias test="echo \"quoted\""`,
			wantAlias: alias.Alias{Name: "test", Command: `echo "quoted"`},
			wantOK:    true,
		},
		{
			name:      "bash single quoted hand edit",
			kind:      Bash,
			line:      `alias gp='git push'`,
			wantAlias: alias.Alias{Name: "gp", Command: "git push"},
			wantOK:    true,
		},
		{
			name:      "bash bare command hand edit",
			kind:      Bash,
			line:      `alias g=git`,
			wantAlias: alias.Alias{Name: "g", Command: "git"},
			wantOK:    true,
		},
		{
			name:      "leading whitespace",
			kind:      Zsh,
			line:      `   alias k="kubectl"  `,
			wantAlias: alias.Alias{Name: "k", Command: "kubectl"},
			wantOK:    true,
		},
		{
			name:   "comment line is not an alias",
			kind:   Zsh,
			line:   `# alias l="ls -CF"`,
			wantOK: false,
		},
		{
			name:   "blank line is not an alias",
			kind:   Zsh,
			line:   ``,
			wantOK: false,
		},
		{
			name:   "unrelated line is not an alias",
			kind:   Zsh,
			line:   `export PATH="$PATH:/usr/local/bin"`,
			wantOK: false,
		},
		{
			name:    "missing closing quote is malformed",
			kind:    Zsh,
			line:    `alias broken="echo oops`,
			wantErr: true,
		},
		{
			name:    "missing name is malformed",
			kind:    Zsh,
			line:    `alias ="ls -l"`,
			wantErr: true,
		},
		{
			name:    "missing equals is malformed",
			kind:    Zsh,
			line:    `alias standalone`,
			wantErr: true,
		},
		{
			name:      "fish quoted",
			kind:      Fish,
			line:      `alias gs 'git status'`,
			wantAlias: alias.Alias{Name: "gs", Command: "git status"},
			wantOK:    true,
		},
		{
			name:      "fish escaped single quotes",
			kind:      Fish,
			line:      `alias test 'echo \'hello\''`,
			wantAlias: alias.Alias{Name: "test", Command: "echo 'hello'"},
			wantOK:    true,
		},
		{
			name:      "fish equals form hand edit",
			kind:      Fish,
			line:      `alias gs='git status'`,
			wantAlias: alias.Alias{Name: "gs", Command: "git status"},
			wantOK:    true,
		},
		{
			name:    "fish missing command is malformed",
			kind:    Fish,
			line:    `alias lonely`,
			wantErr: true,
		},
		{
			name:    "fish unterminated quote is malformed",
			kind:    Fish,
			line:    `alias broken 'echo oops`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := tt.kind.MatchLine(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MatchLine(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if ok != tt.wantOK {
				t.Fatalf("MatchLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && got != tt.wantAlias {
				t.Errorf("MatchLine(%q) = %+v, want %+v", tt.line, got, tt.wantAlias)
			}
		})
	}
}

// Formatting then matching must reproduce the original alias for every
// dialect.
func TestFormatMatchRoundTrip(t *testing.T) {
	commands := []string{
		"git status",
		"echo 'single quoted'",
		`echo "double quoted"`,
		`grep -r "needle" . | head -n 5`,
	}

	for _, kind := range []Kind{Zsh, Bash, Fish} {
		for _, command := range commands {
			original := alias.Alias{Name: "rt", Command: command}
			line := kind.FormatLine(original)
			got, ok, err := kind.MatchLine(line)
			if err != nil || !ok {
				t.Fatalf("%s: MatchLine(%q) ok=%v err=%v", kind, line, ok, err)
			}
			if got != original {
				t.Errorf("%s: round trip of %q gave %+v", kind, command, got)
			}
		}
	}
}
