package shelldetection

import (
	"testing"

	"github.com/AntonioJCosta/aliaser/internal/core/domain/dialect"
)

func TestEnvDetector_Detect(t *testing.T) {
	tests := []struct {
		name    string
		shell   string
		want    dialect.Kind
		wantErr bool
	}{
		{name: "zsh", shell: "/bin/zsh", want: dialect.Zsh},
		{name: "bash", shell: "/usr/bin/bash", want: dialect.Bash},
		{name: "fish", shell: "/usr/local/bin/fish", want: dialect.Fish},
		{name: "unsupported shell", shell: "/bin/tcsh", want: dialect.Unknown, wantErr: true},
		{name: "unset", shell: "", want: dialect.Unknown, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.shell)

			got, err := NewEnvDetector().Detect()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Detect() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}
