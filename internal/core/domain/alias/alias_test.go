package alias

import (
	"errors"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name      string
		aliasName string
		wantErr   bool
	}{
		{name: "simple name", aliasName: "gs"},
		{name: "underscores", aliasName: "my_alias"},
		{name: "digits after first char", aliasName: "alias123"},
		{name: "hyphen", aliasName: "git-st"},
		{name: "leading underscore", aliasName: "_private"},
		{name: "empty name", aliasName: "", wantErr: true},
		{name: "whitespace", aliasName: "my alias", wantErr: true},
		{name: "leading digit", aliasName: "1st", wantErr: true},
		{name: "semicolon", aliasName: "oops;rm", wantErr: true},
		{name: "dollar sign", aliasName: "pa$h", wantErr: true},
		{name: "equals sign", aliasName: "a=b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.aliasName)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.aliasName, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidName) {
				t.Errorf("ValidateName(%q) error = %v, want ErrInvalidName", tt.aliasName, err)
			}
		})
	}
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name    string
		command string
		wantErr bool
	}{
		{name: "simple command", command: "git status"},
		{name: "command with quotes", command: `echo "hello 'world'"`},
		{name: "empty command", command: "", wantErr: true},
		{name: "whitespace only", command: "   ", wantErr: true},
		{name: "embedded newline", command: "git status\nrm -rf /", wantErr: true},
		{name: "carriage return", command: "dir\r", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommand(tt.command)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCommand(%q) error = %v, wantErr %v", tt.command, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidCommand) {
				t.Errorf("ValidateCommand(%q) error = %v, want ErrInvalidCommand", tt.command, err)
			}
		})
	}
}

func TestAlias_Validate(t *testing.T) {
	if err := (Alias{Name: "gs", Command: "git status"}).Validate(); err != nil {
		t.Errorf("Validate() on valid alias returned %v", err)
	}
	if err := (Alias{Name: "bad name", Command: "git status"}).Validate(); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Validate() error = %v, want ErrInvalidName", err)
	}
	if err := (Alias{Name: "gs", Command: ""}).Validate(); !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("Validate() error = %v, want ErrInvalidCommand", err)
	}
}
