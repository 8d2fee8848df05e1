package cli

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestCompletionScripts(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, _, err := execute(t, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out, appName) {
				t.Errorf("%s script does not mention %s", shell, appName)
			}
		})
	}
}

func TestCompletionListsCommands(t *testing.T) {
	out, _, err := execute(t, cobra.ShellCompRequestCmd, "")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"render", "calibrate", "fragment"} {
		if !strings.Contains(out, want) {
			t.Errorf("command completion missing %q:\n%s", want, out)
		}
	}
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	if _, _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}

func TestCompleteUnits(t *testing.T) {
	got, _ := completeUnits(nil, nil, "")
	if want := []string{"cm", "inch"}; !reflect.DeepEqual(got, want) {
		t.Errorf("completeUnits = %v, want %v", got, want)
	}
}

func TestCompleteFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg", "html", "json", "png", "pdf"}},
		{"svg,", []string{"svg,html", "svg,json", "svg,png", "svg,pdf"}},
		{"svg,png,", []string{"svg,png,html", "svg,png,json", "svg,png,pdf"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, _ := completeFormats(nil, nil, tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("completeFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
